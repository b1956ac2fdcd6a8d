package assets

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"sync"
)

// readJob asks a worker to read one HTML document body.
type readJob struct {
	key  string
	path string
}

// readResult carries a finished read back to the collector.
type readResult struct {
	key  string
	body string
	err  error
}

// ConcurrentReader reads HTML document bodies with a worker pool. Only
// HTML artifacts need their content in memory; everything else is
// matched by key alone, so the pool never touches those files.
type ConcurrentReader struct {
	MaxWorkers int
	jobs       chan readJob
	results    chan readResult
	wg         sync.WaitGroup
}

// NewConcurrentReader creates a reader pool.
func NewConcurrentReader(maxWorkers int) *ConcurrentReader {
	if maxWorkers < 1 {
		maxWorkers = 1
	}
	return &ConcurrentReader{
		MaxWorkers: maxWorkers,
		jobs:       make(chan readJob, maxWorkers*2),
		results:    make(chan readResult, maxWorkers*2),
	}
}

// Start launches the worker pool.
func (cr *ConcurrentReader) Start() {
	for i := 0; i < cr.MaxWorkers; i++ {
		cr.wg.Add(1)
		go cr.worker()
	}
}

// AddJob queues one read.
func (cr *ConcurrentReader) AddJob(key, path string) {
	cr.jobs <- readJob{key: key, path: path}
}

// FinishJobs signals that no more jobs will be added.
func (cr *ConcurrentReader) FinishJobs() {
	close(cr.jobs)
}

// GetResults waits for the pool to drain and returns the bodies keyed
// by artifact key, plus the first read error encountered.
func (cr *ConcurrentReader) GetResults() (map[string]string, error) {
	go func() {
		cr.wg.Wait()
		close(cr.results)
	}()

	bodies := make(map[string]string)
	var firstErr error
	for result := range cr.results {
		if result.err != nil {
			if firstErr == nil {
				firstErr = fmt.Errorf("read %s: %w", result.key, result.err)
			}
			continue
		}
		bodies[result.key] = result.body
	}
	return bodies, firstErr
}

func (cr *ConcurrentReader) worker() {
	defer cr.wg.Done()
	for job := range cr.jobs {
		data, err := os.ReadFile(job.path)
		cr.results <- readResult{key: job.key, body: string(data), err: err}
	}
}

// LoadDir reads the build tree under root into an in-memory artifact
// set. Keys are slash-separated paths relative to root with a leading
// "/", in lexical walk order; that order becomes the classified set's
// insertion order.
func LoadDir(root string, workers int) ([]Artifact, error) {
	var keys []string
	paths := make(map[string]string)
	err := filepath.WalkDir(root, func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}
		rel, err := filepath.Rel(root, p)
		if err != nil {
			return err
		}
		key := "/" + filepath.ToSlash(rel)
		keys = append(keys, key)
		paths[key] = p
		return nil
	})
	if err != nil {
		return nil, err
	}

	reader := NewConcurrentReader(workers)
	reader.Start()
	go func() {
		for _, key := range keys {
			if strings.HasSuffix(key, "."+TypeHTML) {
				reader.AddJob(key, paths[key])
			}
		}
		reader.FinishJobs()
	}()
	bodies, err := reader.GetResults()
	if err != nil {
		return nil, err
	}

	artifacts := make([]Artifact, 0, len(keys))
	for _, key := range keys {
		artifacts = append(artifacts, Artifact{Key: key, Body: bodies[key]})
	}
	return artifacts, nil
}
