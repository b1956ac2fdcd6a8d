package assets

import (
	"encoding/json"
	"fmt"
	"strings"
)

// DefaultTypes is the asset type list used when none is configured.
var DefaultTypes = []string{"html", "css", "js"}

// Options is the configuration surface of a fixing run.
type Options struct {
	// Types is the ordered list of asset type suffixes to recognize.
	// It must include "html" for any document to be fixed.
	Types []string

	// Exclude lists document keys and reference strings to skip.
	Exclude []string

	// Output controls whether a change summary is rendered.
	Output bool
}

// DefaultOptions returns the documented defaults.
func DefaultOptions() Options {
	return Options{
		Types:  append([]string(nil), DefaultTypes...),
		Output: true,
	}
}

// Normalize replaces invalid values with their defaults and returns
// warnings describing what was replaced. Configuration problems are
// never fatal.
func (o *Options) Normalize() []string {
	var warns []string
	if len(o.Types) == 0 {
		warns = append(warns, fmt.Sprintf("no asset types configured, using default %s", strings.Join(DefaultTypes, ",")))
		o.Types = append([]string(nil), DefaultTypes...)
	}
	hasHTML := false
	for _, t := range o.Types {
		if t == TypeHTML {
			hasHTML = true
			break
		}
	}
	if !hasHTML {
		warns = append(warns, `asset types do not include "html", no documents will be fixed`)
	}
	return warns
}

// ParseOptions decodes a JSON options document. Values of the wrong
// type are replaced by their defaults with a warning rather than
// rejected; unknown keys are ignored. Only malformed JSON is an error.
func ParseOptions(data []byte) (Options, []string, error) {
	opts := DefaultOptions()
	var raw map[string]any
	if err := json.Unmarshal(data, &raw); err != nil {
		return opts, nil, fmt.Errorf("parse options: %w", err)
	}
	var warns []string
	if v, ok := raw["types"]; ok {
		if list, ok := stringList(v); ok {
			opts.Types = list
		} else {
			warns = append(warns, `option "types" is not a list of strings, using default`)
		}
	}
	if v, ok := raw["exclude"]; ok {
		if list, ok := stringList(v); ok {
			opts.Exclude = list
		} else {
			warns = append(warns, `option "exclude" is not a list of strings, using default`)
		}
	}
	if v, ok := raw["output"]; ok {
		if b, ok := v.(bool); ok {
			opts.Output = b
		} else {
			warns = append(warns, `option "output" is not a boolean, using default`)
		}
	}
	return opts, warns, nil
}

func stringList(v any) ([]string, bool) {
	items, ok := v.([]any)
	if !ok {
		return nil, false
	}
	list := make([]string, 0, len(items))
	for _, item := range items {
		s, ok := item.(string)
		if !ok {
			return nil, false
		}
		list = append(list, s)
	}
	return list, true
}

// excludeSet builds the lookup set checked against document keys and
// individual references.
func (o Options) excludeSet() map[string]bool {
	set := make(map[string]bool, len(o.Exclude))
	for _, e := range o.Exclude {
		set[e] = true
	}
	return set
}
