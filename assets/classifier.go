package assets

import "fmt"

// Artifact is a named build output held in memory during a fixing run.
// Body is populated only for HTML documents; every other artifact
// participates by key alone.
type Artifact struct {
	Key  string
	Body string
}

// Bucket holds the artifact keys of one type in insertion order. The
// order is part of the contract: first-match resolution during
// rewriting follows it.
type Bucket struct {
	keys []string
	seen map[string]bool
}

func newBucket() *Bucket {
	return &Bucket{seen: make(map[string]bool)}
}

func (b *Bucket) add(key string) {
	if b.seen[key] {
		return
	}
	b.seen[key] = true
	b.keys = append(b.keys, key)
}

// Keys returns the bucket's keys in insertion order.
func (b *Bucket) Keys() []string {
	if b == nil {
		return nil
	}
	return b.keys
}

// Has reports whether key is in the bucket.
func (b *Bucket) Has(key string) bool {
	return b != nil && b.seen[key]
}

// Classification is the partition of one artifact set into per-type
// buckets, plus the diagnostics produced while building it. It is
// read-only after Classify returns.
type Classification struct {
	buckets map[string]*Bucket
	docs    map[string]string

	Warnings []string
	Errors   []string
}

// Bucket returns the bucket for a type; nil if no artifact of that type
// was classified.
func (c *Classification) Bucket(typ string) *Bucket {
	return c.buckets[typ]
}

// Documents returns the keys of all HTML documents in insertion order.
func (c *Classification) Documents() []string {
	return c.Bucket(TypeHTML).Keys()
}

// Document returns the stored body of an HTML document.
func (c *Classification) Document(key string) (string, bool) {
	body, ok := c.docs[key]
	return body, ok
}

// Classify partitions an ordered artifact set into per-type buckets.
// Excluded keys are skipped entirely, which is how excluded documents
// escape rewriting. Keys whose suffix matches more than one configured
// type are skipped with a warning; keys matching no configured type
// (images, fonts) are silently ignored. Finding no HTML documents at
// all is recorded as an error: there is nothing to fix.
func Classify(artifacts []Artifact, matcher *TypeMatcher, exclude map[string]bool) *Classification {
	c := &Classification{
		buckets: make(map[string]*Bucket),
		docs:    make(map[string]string),
	}
	for _, a := range artifacts {
		if exclude[a.Key] {
			continue
		}
		typ, ok, ambiguous := matcher.Classify(a.Key)
		if ambiguous {
			c.Warnings = append(c.Warnings, fmt.Sprintf("%s matches more than one configured type, skipping", a.Key))
			continue
		}
		if !ok {
			continue
		}
		if c.buckets[typ] == nil {
			c.buckets[typ] = newBucket()
		}
		c.buckets[typ].add(a.Key)
		if typ == TypeHTML {
			c.docs[a.Key] = a.Body
		}
	}
	if len(c.docs) == 0 {
		c.Errors = append(c.Errors, "no HTML documents found in the artifact set")
	}
	return c
}
