package report

import (
	"fmt"
	"strings"
)

// Change is a single reference rewrite inside one document.
type Change struct {
	From string
	To   string
}

// Report accumulates the changes and diagnostics of one fixing run.
// Documents and the changes within each document are kept in the order
// they were recorded.
type Report struct {
	docs     []string
	changes  map[string][]Change
	warnings []string
	errors   []string
}

// New creates an empty report.
func New() *Report {
	return &Report{changes: make(map[string][]Change)}
}

// Record appends a from -> to rewrite for the given document key.
func (r *Report) Record(docKey, from, to string) {
	if _, ok := r.changes[docKey]; !ok {
		r.docs = append(r.docs, docKey)
	}
	r.changes[docKey] = append(r.changes[docKey], Change{From: from, To: to})
}

// Warn appends a warning message.
func (r *Report) Warn(msg string) {
	r.warnings = append(r.warnings, msg)
}

// Warnf appends a formatted warning message.
func (r *Report) Warnf(format string, args ...any) {
	r.warnings = append(r.warnings, fmt.Sprintf(format, args...))
}

// Error appends an error message.
func (r *Report) Error(msg string) {
	r.errors = append(r.errors, msg)
}

// AddWarnings appends a batch of warnings, preserving their order.
func (r *Report) AddWarnings(msgs []string) {
	r.warnings = append(r.warnings, msgs...)
}

// AddErrors appends a batch of errors, preserving their order.
func (r *Report) AddErrors(msgs []string) {
	r.errors = append(r.errors, msgs...)
}

// Documents returns the keys of all documents with recorded changes, in
// the order their first change was recorded.
func (r *Report) Documents() []string {
	return r.docs
}

// Changes returns the recorded changes for one document.
func (r *Report) Changes(docKey string) []Change {
	return r.changes[docKey]
}

// Warnings returns all accumulated warnings.
func (r *Report) Warnings() []string {
	return r.warnings
}

// Errors returns all accumulated errors.
func (r *Report) Errors() []string {
	return r.errors
}

// Render produces a terminal summary of all recorded changes, ordered by
// document and by change order within each document. Returns "" when
// nothing was changed.
func (r *Report) Render() string {
	if len(r.docs) == 0 {
		return ""
	}
	var b strings.Builder
	for _, doc := range r.docs {
		fmt.Fprintf(&b, "%s\n", doc)
		for _, ch := range r.changes[doc] {
			fmt.Fprintf(&b, "  %s -> %s\n", ch.From, ch.To)
		}
	}
	return b.String()
}
