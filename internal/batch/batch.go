// Package batch renders many data files into one directory.
package batch

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"golang.org/x/sync/errgroup"

	"noticegen/internal/logger"
	"noticegen/internal/render"
	"noticegen/internal/source"
)

// Result is the outcome for one input file. Err is nil on success.
type Result struct {
	Input  string
	Output string
	Err    error
	Took   time.Duration
}

type Report struct {
	Results []Result
}

func (r Report) Failed() int {
	n := 0
	for _, res := range r.Results {
		if res.Err != nil {
			n++
		}
	}
	return n
}

func (r Report) Succeeded() int { return len(r.Results) - r.Failed() }

// OutputPath maps an input file to <outDir>/<base>.pptx.
func OutputPath(input, outDir string) string {
	base := filepath.Base(input)
	base = strings.TrimSuffix(base, filepath.Ext(base))
	return filepath.Join(outDir, base+".pptx")
}

// Run renders every input with at most parallel renders in flight. A
// failing input is recorded in the report and does not stop the others;
// the returned error is only set when ctx ends before all inputs ran.
func Run(ctx context.Context, r *render.Renderer, inputs []string, outDir string, parallel int) (Report, error) {
	log := logger.FromContext(ctx)
	if parallel < 1 {
		parallel = 1
	}

	results := make([]Result, len(inputs))
	seen := make(map[string]string, len(inputs))
	for i, in := range inputs {
		out := OutputPath(in, outDir)
		results[i] = Result{Input: in, Output: out}
		if prev, dup := seen[out]; dup {
			results[i].Err = fmt.Errorf("output %s already written for %s", out, prev)
			continue
		}
		seen[out] = in
	}

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(parallel)

	for i := range results {
		if results[i].Err != nil {
			continue
		}
		res := &results[i]
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				res.Err = err
				return err
			}
			start := time.Now()
			c, err := source.File{Path: res.Input}.Collect(gctx)
			if err == nil {
				err = r.RenderFile(c.Data, res.Output)
			}
			res.Took = time.Since(start)
			res.Err = err
			if err != nil {
				log.Warn("batch item failed", "input", res.Input, "err", err)
				return nil
			}
			log.Debug("batch item rendered", "input", res.Input, "output", res.Output, "dur_ms", res.Took.Milliseconds())
			return nil
		})
	}

	err := g.Wait()
	return Report{Results: results}, err
}
