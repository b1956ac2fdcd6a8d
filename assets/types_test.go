package assets

import "testing"

func TestNewTypeMatcherEmpty(t *testing.T) {
	if _, err := NewTypeMatcher(nil); err == nil {
		t.Fatal("NewTypeMatcher(nil) should return an error")
	}
}

func TestClassifyKey(t *testing.T) {
	matcher, err := NewTypeMatcher([]string{"html", "css", "js"})
	if err != nil {
		t.Fatalf("NewTypeMatcher failed: %v", err)
	}

	tests := []struct {
		name string
		key  string
		typ  string
		ok   bool
	}{
		{
			name: "script",
			key:  "/a/popup.js",
			typ:  "js",
			ok:   true,
		},
		{
			name: "stylesheet",
			key:  "/css/style.css",
			typ:  "css",
			ok:   true,
		},
		{
			name: "document",
			key:  "/index.html",
			typ:  "html",
			ok:   true,
		},
		{
			name: "hashed script",
			key:  "/a/popup.bca8d921.min.js",
			typ:  "js",
			ok:   true,
		},
		{
			name: "image out of scope",
			key:  "/img/logo.png",
			ok:   false,
		},
		{
			name: "no extension",
			key:  "/README",
			ok:   false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			typ, ok, ambiguous := matcher.Classify(tt.key)
			if ambiguous {
				t.Fatalf("Classify(%q) reported ambiguous", tt.key)
			}
			if ok != tt.ok || typ != tt.typ {
				t.Errorf("Classify(%q) = (%q, %v); want (%q, %v)", tt.key, typ, ok, tt.typ, tt.ok)
			}
		})
	}
}

func TestClassifyKeyAmbiguous(t *testing.T) {
	matcher, err := NewTypeMatcher([]string{"js", "min.js"})
	if err != nil {
		t.Fatalf("NewTypeMatcher failed: %v", err)
	}

	_, ok, ambiguous := matcher.Classify("/a/popup.min.js")
	if !ambiguous {
		t.Error("overlapping type suffixes should report ambiguous")
	}
	if ok {
		t.Error("ambiguous keys should not classify")
	}

	if _, ok, _ := matcher.Classify("/a/other.js"); !ok {
		t.Error("a key matching exactly one type should classify")
	}
}

func TestSplitLink(t *testing.T) {
	matcher, err := NewTypeMatcher([]string{"html", "css", "js"})
	if err != nil {
		t.Fatalf("NewTypeMatcher failed: %v", err)
	}

	tests := []struct {
		name   string
		link   string
		prefix string
		typ    string
		ok     bool
	}{
		{
			name:   "simple",
			link:   "/a/popup.js",
			prefix: "/a/popup",
			typ:    "js",
			ok:     true,
		},
		{
			name:   "dotted path segment",
			link:   "/a/v1.2/app.js",
			prefix: "/a/v1.2/app",
			typ:    "js",
			ok:     true,
		},
		{
			name:   "type suffix inside path",
			link:   "/a/app.css.js",
			prefix: "/a/app.css",
			typ:    "js",
			ok:     true,
		},
		{
			name: "unrecognized suffix",
			link: "/img/logo.png",
			ok:   false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			prefix, typ, ok := matcher.SplitLink(tt.link)
			if ok != tt.ok || prefix != tt.prefix || typ != tt.typ {
				t.Errorf("SplitLink(%q) = (%q, %q, %v); want (%q, %q, %v)",
					tt.link, prefix, typ, ok, tt.prefix, tt.typ, tt.ok)
			}
		})
	}
}
