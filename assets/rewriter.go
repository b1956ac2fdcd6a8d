package assets

import (
	"regexp"
	"strings"

	"assetfix/html"
	"assetfix/report"
)

// infixPattern is the alphabet allowed between a stale link's path and
// its type suffix. It is what lets popup.js match popup.bca8d921.min.js
// while rejecting popup-another.js.
const infixPattern = `[a-zA-Z0-9.]*`

// Rewrite is the replacement body for one HTML artifact whose
// references changed. The host must overwrite its stored artifact with
// Body and Size.
type Rewrite struct {
	Key  string
	Body string
	Size int
}

// Fixer runs one reference-fixing pass over a build's artifact set:
// classify everything, then rewrite stale references in every HTML
// document. A Fixer holds the accumulating report for its run and must
// not be shared across concurrent runs.
type Fixer struct {
	opts      Options
	matcher   *TypeMatcher
	exclude   map[string]bool
	extractor html.Extractor
	rep       *report.Report
}

// NewFixer builds a fixer for the given options. Options should be
// normalized first; an empty type list is rejected here.
func NewFixer(opts Options) (*Fixer, error) {
	matcher, err := NewTypeMatcher(opts.Types)
	if err != nil {
		return nil, err
	}
	extractor, err := html.NewRegexExtractor(opts.Types)
	if err != nil {
		return nil, err
	}
	return &Fixer{
		opts:      opts,
		matcher:   matcher,
		exclude:   opts.excludeSet(),
		extractor: extractor,
		rep:       report.New(),
	}, nil
}

// SetExtractor swaps the reference extraction strategy.
func (f *Fixer) SetExtractor(e html.Extractor) {
	f.extractor = e
}

// Report returns the diagnostics and change records accumulated so far.
func (f *Fixer) Report() *report.Report {
	return f.rep
}

// Fix classifies the artifact set and rewrites stale references in
// every HTML document. It returns a replacement body for each document
// that changed; unchanged documents are omitted and must not be written
// back. When classification finds no HTML documents, an error is
// recorded on the report and no rewriting happens.
func (f *Fixer) Fix(artifacts []Artifact) []Rewrite {
	cls := Classify(artifacts, f.matcher, f.exclude)
	f.rep.AddWarnings(cls.Warnings)
	f.rep.AddErrors(cls.Errors)
	if len(cls.Errors) > 0 {
		return nil
	}
	var rewrites []Rewrite
	for _, key := range cls.Documents() {
		body, _ := cls.Document(key)
		fixed, changed := f.fixDocument(cls, key, body)
		if changed {
			rewrites = append(rewrites, Rewrite{Key: key, Body: fixed, Size: len(fixed)})
		}
	}
	return rewrites
}

// fixDocument rewrites one document's stale references against the
// classified set. For each extracted link it scans the same-type bucket
// in insertion order; the first real artifact that decomposes as
// prefix + alphanumeric-and-dot infix + "." + type wins, and every
// occurrence of the link in the body is replaced with its key.
func (f *Fixer) fixDocument(cls *Classification, key, body string) (string, bool) {
	refs := f.extractor.Extract(body)
	if len(refs) == 0 {
		return body, false
	}
	fixed := make(map[string]bool)
	changed := false
	for _, typ := range f.matcher.Types() {
		for _, link := range refs[typ] {
			if fixed[link] || f.exclude[link] {
				continue
			}
			// Re-anchored split, independent of the extraction-time
			// dot-bounded capture, so dots in the path are tolerated.
			prefix, ltyp, ok := f.matcher.SplitLink(link)
			if !ok {
				continue
			}
			pattern := regexp.MustCompile(`^` + regexp.QuoteMeta(prefix) + infixPattern + `\.` + regexp.QuoteMeta(ltyp) + `$`)
			for _, real := range cls.Bucket(ltyp).Keys() {
				if real == link {
					// Already correct: no rewrite, no record.
					continue
				}
				if !pattern.MatchString(real) {
					continue
				}
				body = strings.ReplaceAll(body, link, real)
				changed = true
				fixed[link] = true
				f.rep.Record(key, link, real)
				break
			}
		}
	}
	return body, changed
}
