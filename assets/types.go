package assets

import (
	"fmt"
	"regexp"
	"strings"
)

// TypeHTML is the asset type whose artifacts are rewritten. The
// configured type list must include it, or there is nothing to fix.
const TypeHTML = "html"

// TypeMatcher recognizes the configured set of asset type suffixes. It
// is built once per run and reused for classification, extraction and
// link splitting.
type TypeMatcher struct {
	types  []string
	suffix *regexp.Regexp
}

// NewTypeMatcher compiles the suffix patterns for an ordered type list.
func NewTypeMatcher(types []string) (*TypeMatcher, error) {
	if len(types) == 0 {
		return nil, fmt.Errorf("no asset types configured")
	}
	return &TypeMatcher{
		types:  append([]string(nil), types...),
		suffix: regexp.MustCompile(`\.(` + alternation(types) + `)$`),
	}, nil
}

// alternation joins a type list into a quoted pattern alternation,
// preserving the configured order.
func alternation(types []string) string {
	quoted := make([]string, len(types))
	for i, t := range types {
		quoted[i] = regexp.QuoteMeta(t)
	}
	return strings.Join(quoted, "|")
}

// Types returns the configured type list in order.
func (m *TypeMatcher) Types() []string {
	return m.types
}

// Classify returns the configured type whose dot-suffix ends key.
// ambiguous reports that more than one configured type suffix matched,
// which happens only when the configured suffixes overlap (e.g. "js"
// and "min.js").
func (m *TypeMatcher) Classify(key string) (typ string, ok bool, ambiguous bool) {
	for _, t := range m.types {
		if !strings.HasSuffix(key, "."+t) {
			continue
		}
		if ok {
			return "", false, true
		}
		typ, ok = t, true
	}
	return typ, ok, false
}

// SplitLink splits a link at its end-anchored type suffix, returning
// the leading path and the matched type. Unlike extraction, this split
// tolerates dots anywhere in the path.
func (m *TypeMatcher) SplitLink(link string) (prefix, typ string, ok bool) {
	loc := m.suffix.FindStringSubmatchIndex(link)
	if loc == nil {
		return "", "", false
	}
	return link[:loc[0]], link[loc[2]:loc[3]], true
}
