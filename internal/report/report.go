// Package report prints summaries of placeholder runs.
package report

import (
	"fmt"
	"io"

	"github.com/bagtoad/placegen/internal/batch"
)

// Print writes a per-batch summary of results to w, followed by the
// completion messages.
func Print(w io.Writer, batches []batch.Batch, results []batch.Result) {
	failed := 0
	for _, r := range results {
		if r.Err != nil {
			failed++
		}
	}

	fmt.Fprintln(w)
	fmt.Fprintln(w, "=== Summary ===")
	fmt.Fprintf(w, "Images generated:  %d\n", len(results)-failed)
	fmt.Fprintf(w, "Images failed:     %d\n", failed)

	if len(results) == 0 {
		fmt.Fprintln(w, "\nNothing to generate.")
		return
	}

	groups := make(map[string][]batch.Result)
	for _, r := range results {
		groups[r.Batch] = append(groups[r.Batch], r)
	}

	fmt.Fprintln(w)
	for _, b := range batches {
		items := groups[b.Name]
		if len(items) == 0 {
			continue
		}
		fmt.Fprintf(w, "  %s/ (%d images)\n", b.Name, len(items))
		for _, r := range items {
			if r.Err != nil {
				fmt.Fprintf(w, "    FAILED %s: %v\n", r.Request.Path, r.Err)
				continue
			}
			fmt.Fprintf(w, "    %s (%dx%d)\n", r.Request.Path, r.Request.Width, r.Request.Height)
		}
	}
	fmt.Fprintln(w)

	Confirm(w, batches, results)
}

// Confirm writes the completion message of every batch whose images were all
// generated.
func Confirm(w io.Writer, batches []batch.Batch, results []batch.Result) {
	ran := make(map[string]bool)
	for _, r := range results {
		ran[r.Batch] = true
	}

	for _, b := range batches {
		if !ran[b.Name] || batch.Failed(results, b.Name) {
			continue
		}
		msg := b.Message
		if msg == "" {
			msg = fmt.Sprintf("%s images generated successfully!", b.Name)
		}
		fmt.Fprintln(w, msg)
	}
}
