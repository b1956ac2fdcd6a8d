package assets

import (
	"reflect"
	"testing"
)

func TestParseOptions(t *testing.T) {
	tests := []struct {
		name     string
		config   string
		want     Options
		warnings int
		wantErr  bool
	}{
		{
			name:   "all options set",
			config: `{"types":["html","css"],"exclude":["/a/popup.js"],"output":false}`,
			want: Options{
				Types:   []string{"html", "css"},
				Exclude: []string{"/a/popup.js"},
				Output:  false,
			},
		},
		{
			name:   "empty config keeps defaults",
			config: `{}`,
			want:   DefaultOptions(),
		},
		{
			name:     "types not a list",
			config:   `{"types":"html"}`,
			want:     DefaultOptions(),
			warnings: 1,
		},
		{
			name:     "types list with non-string",
			config:   `{"types":["html",3]}`,
			want:     DefaultOptions(),
			warnings: 1,
		},
		{
			name:     "output not a boolean",
			config:   `{"output":"yes"}`,
			want:     DefaultOptions(),
			warnings: 1,
		},
		{
			name:     "exclude not a list",
			config:   `{"exclude":42}`,
			want:     DefaultOptions(),
			warnings: 1,
		},
		{
			name:    "malformed json",
			config:  `{"types":`,
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			opts, warnings, err := ParseOptions([]byte(tt.config))
			if tt.wantErr {
				if err == nil {
					t.Fatal("ParseOptions should return an error")
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseOptions returned error: %v", err)
			}
			if !reflect.DeepEqual(opts, tt.want) {
				t.Errorf("ParseOptions(%s) = %+v; want %+v", tt.config, opts, tt.want)
			}
			if len(warnings) != tt.warnings {
				t.Errorf("got %d warnings %v; want %d", len(warnings), warnings, tt.warnings)
			}
		})
	}
}

func TestNormalize(t *testing.T) {
	tests := []struct {
		name     string
		opts     Options
		types    []string
		warnings int
	}{
		{
			name:  "valid options",
			opts:  Options{Types: []string{"html", "css", "js"}, Output: true},
			types: []string{"html", "css", "js"},
		},
		{
			name:     "empty type list degrades to default",
			opts:     Options{Output: true},
			types:    DefaultTypes,
			warnings: 1,
		},
		{
			name:     "missing html type warns",
			opts:     Options{Types: []string{"css", "js"}, Output: true},
			types:    []string{"css", "js"},
			warnings: 1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			warnings := tt.opts.Normalize()
			if !reflect.DeepEqual(tt.opts.Types, tt.types) {
				t.Errorf("Normalize left types %v; want %v", tt.opts.Types, tt.types)
			}
			if len(warnings) != tt.warnings {
				t.Errorf("got %d warnings %v; want %d", len(warnings), warnings, tt.warnings)
			}
		})
	}
}
