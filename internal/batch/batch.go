// Package batch defines the built-in placeholder batches and runs them.
package batch

import (
	"context"
	"errors"
	"fmt"
	"math/rand/v2"
	"path/filepath"
	"strings"

	"github.com/rs/zerolog/log"
	"github.com/sourcegraph/conc/pool"

	"github.com/bagtoad/placegen/internal/placeholder"
)

// ErrDuplicatePath is returned when two requests in a run share a destination.
var ErrDuplicatePath = errors.New("duplicate destination path")

// Batch is a fixed, ordered list of independent image requests that share a
// label placement, a fallback theme and a completion message.
type Batch struct {
	Name      string
	Message   string
	Placement placeholder.Placement
	Fallback  string
	Images    []placeholder.Request
}

// Result records what happened to a single request.
type Result struct {
	Batch   string
	Request placeholder.Request
	Err     error
}

// Options controls a run.
type Options struct {
	// Root is the directory relative request paths are resolved against.
	Root string
	// Workers bounds the number of images rendered at once. Values below 2
	// render strictly in declared order.
	Workers int
	// Seed makes decorations reproducible when non-zero. Each request gets
	// its own source derived from the seed and its position in the run.
	Seed int64
}

// Resolve returns the batches to use. Custom batches replace built-ins with
// the same name, compared case-insensitively; other custom batches are
// appended in the order given.
func Resolve(custom []Batch) []Batch {
	batches := Builtin()
	index := make(map[string]int, len(batches))
	for i, b := range batches {
		index[strings.ToLower(b.Name)] = i
	}

	for _, c := range custom {
		key := strings.ToLower(c.Name)
		if i, ok := index[key]; ok {
			batches[i] = c
			continue
		}
		index[key] = len(batches)
		batches = append(batches, c)
	}
	return batches
}

// Find returns the batch with the given name.
func Find(batches []Batch, name string) (Batch, bool) {
	for _, b := range batches {
		if strings.EqualFold(b.Name, name) {
			return b, true
		}
	}
	return Batch{}, false
}

// Select picks batches by name, in the order requested. No names selects all.
func Select(batches []Batch, names []string) ([]Batch, error) {
	if len(names) == 0 {
		return batches, nil
	}

	selected := make([]Batch, 0, len(names))
	for _, name := range names {
		b, ok := Find(batches, name)
		if !ok {
			return nil, fmt.Errorf("unknown batch %q", name)
		}
		selected = append(selected, b)
	}
	return selected, nil
}

// Requests returns every request of the given batches with its path resolved
// against root.
func Requests(batches []Batch, root string) []placeholder.Request {
	var reqs []placeholder.Request
	for _, b := range batches {
		for _, req := range b.Images {
			req.Path = resolvePath(root, req.Path)
			reqs = append(reqs, req)
		}
	}
	return reqs
}

func resolvePath(root, p string) string {
	if p == "" {
		return ""
	}
	p = filepath.FromSlash(p)
	if filepath.IsAbs(p) || root == "" {
		return filepath.Clean(p)
	}
	return filepath.Join(root, p)
}

type job struct {
	index int
	batch string
	gen   *placeholder.Generator
	req   placeholder.Request
}

// plan resolves paths and rejects runs in which two requests would write the
// same file.
func plan(gen *placeholder.Generator, batches []Batch, opts Options) ([]job, error) {
	var jobs []job
	seen := make(map[string]string)

	for _, b := range batches {
		bgen := gen.WithPolicy(b.Placement, b.Fallback)
		for _, req := range b.Images {
			req.Path = resolvePath(opts.Root, req.Path)
			if req.Path != "" {
				key := strings.ToLower(req.Path)
				if prev, ok := seen[key]; ok {
					return nil, fmt.Errorf("%w: %s (batches %s and %s)", ErrDuplicatePath, req.Path, prev, b.Name)
				}
				seen[key] = b.Name
			}

			j := job{index: len(jobs), batch: b.Name, gen: bgen, req: req}
			if opts.Seed != 0 {
				seed := uint64(opts.Seed)
				j.gen = bgen.WithRand(rand.New(rand.NewPCG(seed, uint64(j.index))))
			}
			jobs = append(jobs, j)
		}
	}
	return jobs, nil
}

// Run generates every image of the given batches. A failing request does not
// stop the others: its Result carries the error, and Run returns an error
// summarising all failures once every request has been attempted. Cancelling
// ctx stops further requests from starting.
func Run(ctx context.Context, gen *placeholder.Generator, batches []Batch, opts Options) ([]Result, error) {
	jobs, err := plan(gen, batches, opts)
	if err != nil {
		return nil, err
	}

	workers := opts.Workers
	if workers < 1 {
		workers = 1
	}

	results := make([]Result, len(jobs))
	p := pool.New().WithContext(ctx).WithMaxGoroutines(workers)

	for _, j := range jobs {
		if err := ctx.Err(); err != nil {
			results[j.index] = Result{Batch: j.batch, Request: j.req, Err: err}
			continue
		}
		p.Go(func(ctx context.Context) error {
			err := j.gen.Generate(ctx, j.req)
			if err != nil {
				log.Warn().Err(err).Str("batch", j.batch).Str("path", j.req.Path).Msg("Skipping image")
			}
			results[j.index] = Result{Batch: j.batch, Request: j.req, Err: err}
			return nil
		})
	}
	_ = p.Wait()

	var errs []error
	for _, r := range results {
		if r.Err != nil {
			errs = append(errs, r.Err)
		}
	}
	if len(errs) > 0 {
		return results, fmt.Errorf("%d of %d images failed: %w", len(errs), len(results), errors.Join(errs...))
	}
	return results, nil
}

// Failed reports whether any result in the batch carries an error.
func Failed(results []Result, batch string) bool {
	for _, r := range results {
		if r.Batch == batch && r.Err != nil {
			return true
		}
	}
	return false
}
