// Package html extracts asset references from HTML document text.
package html

import (
	"fmt"
	"regexp"
	"strings"
)

// Extractor scans one HTML document for attribute-embedded asset
// references and returns them grouped by type, each group in first-seen
// order with duplicates retained. A nil result means the document has
// no usable references. Implementations are interchangeable; the
// matching and rewriting logic does not depend on how references were
// found.
type Extractor interface {
	Extract(doc string) map[string][]string
}

// RegexExtractor finds src/href attributes by pattern matching over the
// flattened document text.
type RegexExtractor struct {
	attr *regexp.Regexp
}

// Newlines and tabs are stripped before scanning so that attributes
// split across lines still match.
var flattener = strings.NewReplacer("\n", "", "\r", "", "\t", "")

// NewRegexExtractor compiles the attribute pattern for an ordered type
// list.
func NewRegexExtractor(types []string) (*RegexExtractor, error) {
	if len(types) == 0 {
		return nil, fmt.Errorf("no asset types configured")
	}
	quoted := make([]string, len(types))
	for i, t := range types {
		quoted[i] = regexp.QuoteMeta(t)
	}
	// The path capture stops at the first dot so the type suffix stays
	// unambiguous even when hashed multi-dot filenames appear in the
	// same document. A path segment that itself contains a dot will not
	// be extracted.
	attr := regexp.MustCompile(`(?:src|href)=["']([^"'.]*)\.(` + strings.Join(quoted, "|") + `)["']`)
	return &RegexExtractor{attr: attr}, nil
}

// Extract implements Extractor.
func (e *RegexExtractor) Extract(doc string) map[string][]string {
	doc = flattener.Replace(doc)
	matches := e.attr.FindAllStringSubmatch(doc, -1)
	if len(matches) == 0 {
		return nil
	}
	refs := make(map[string][]string)
	for _, m := range matches {
		path, typ := m[1], m[2]
		if path == "" || typ == "" {
			// An empty capture signals a malformed occurrence; treat
			// the whole document as having no references.
			return nil
		}
		refs[typ] = append(refs[typ], path+"."+typ)
	}
	return refs
}
