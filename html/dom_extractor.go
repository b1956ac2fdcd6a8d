package html

import (
	"fmt"
	"strings"

	nethtml "golang.org/x/net/html"
)

// DOMExtractor walks the parsed node tree instead of pattern matching
// raw text. It tolerates dotted path segments that the regex strategy
// cannot extract, so the two strategies are not reference-for-reference
// identical on pathological input.
type DOMExtractor struct {
	types []string
}

// NewDOMExtractor builds a tree-walking extractor for an ordered type
// list.
func NewDOMExtractor(types []string) (*DOMExtractor, error) {
	if len(types) == 0 {
		return nil, fmt.Errorf("no asset types configured")
	}
	return &DOMExtractor{types: append([]string(nil), types...)}, nil
}

// Extract implements Extractor.
func (e *DOMExtractor) Extract(doc string) map[string][]string {
	root, err := nethtml.Parse(strings.NewReader(doc))
	if err != nil {
		return nil
	}
	refs := make(map[string][]string)
	var walk func(*nethtml.Node)
	walk = func(n *nethtml.Node) {
		if n.Type == nethtml.ElementNode {
			for _, attr := range n.Attr {
				if attr.Key != "src" && attr.Key != "href" {
					continue
				}
				if skipValue(attr.Val) {
					continue
				}
				for _, t := range e.types {
					if strings.HasSuffix(attr.Val, "."+t) {
						refs[t] = append(refs[t], attr.Val)
						break
					}
				}
			}
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(root)
	if len(refs) == 0 {
		return nil
	}
	return refs
}

// skipValue filters out link forms the fixer never rewrites: external,
// protocol-relative, anchor and data URLs.
func skipValue(val string) bool {
	return strings.HasPrefix(val, "http://") ||
		strings.HasPrefix(val, "https://") ||
		strings.HasPrefix(val, "//") ||
		strings.HasPrefix(val, "#") ||
		strings.HasPrefix(val, "data:")
}
