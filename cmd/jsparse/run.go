package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"runtime"
	"sync"
	"time"

	humanize "github.com/dustin/go-humanize"
	"github.com/jsfront/parse/js"
	"github.com/montanaflynn/stats"
	"github.com/pkg/errors"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

type runner struct {
	Config
	st     *js.SourceType // forced by -type
	logger *zap.Logger

	mu sync.Mutex // guards w
	w  io.Writer
}

func newRunner(a args, cfg Config, logger *zap.Logger, w io.Writer) (*runner, error) {
	r := &runner{Config: cfg, logger: logger, w: w}
	if a.Type != "" {
		st, err := js.ParseSourceType(a.Type)
		if err != nil {
			return nil, err
		}
		r.st = &st
	}
	r.Print = r.Print || a.Print
	r.Positions = r.Positions || a.Positions
	r.Stats = r.Stats || a.Stats
	if a.Repeat != 0 {
		r.Repeat = a.Repeat
	}
	if a.Jobs != 0 {
		r.Jobs = a.Jobs
	}
	if r.Repeat < 1 {
		r.Repeat = 1
	}
	if r.Jobs < 1 {
		r.Jobs = runtime.GOMAXPROCS(0)
	}
	return r, nil
}

type result struct {
	path    string
	src     []byte
	program *js.Program
	ds      js.Diagnostics
	times   []float64
}

func (r *runner) parseFile(path string) (*result, error) {
	st := js.SourceType{}
	if r.st != nil {
		st = *r.st
	} else {
		var err error
		if st, err = r.sourceType(path); err != nil {
			return nil, errors.Wrap(err, path)
		}
	}

	src, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrap(err, "reading source")
	}

	res := &result{path: path, src: src}
	o := js.Options{SourceType: st, Logger: r.logger.With(zap.String("file", path))}
	for i := 0; i < r.Repeat; i++ {
		begin := time.Now()
		res.program, res.ds, _ = js.Parse(src, o)
		res.times = append(res.times, float64(time.Since(begin)))
	}
	return res, nil
}

// run parses all files in parallel and reports them in the given order. It returns true if any file has diagnostics.
func (r *runner) run(ctx context.Context, paths []string) (bool, error) {
	results := make([]*result, len(paths))
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(r.Jobs)
	for i, path := range paths {
		i, path := i, path
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			res, err := r.parseFile(path)
			results[i] = res
			return err
		})
	}
	if err := g.Wait(); err != nil {
		return false, err
	}

	failed := false
	for _, res := range results {
		if err := r.report(res); err != nil {
			return false, err
		}
		if 0 < len(res.ds) {
			failed = true
		}
	}
	return failed, nil
}

func (r *runner) report(res *result) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, d := range res.ds {
		err := d.Position(res.src)
		if _, e := fmt.Fprintf(r.w, "%s:%d:%d: %s\n%s\n", res.path, err.Line, err.Column, err.Message, err.Context); e != nil {
			return e
		}
	}
	if r.Positions {
		if err := js.PrintPositions(r.w, res.program, res.src); err != nil {
			return err
		}
	} else if r.Print {
		if err := js.Print(r.w, res.program); err != nil {
			return err
		}
	}
	if r.Stats {
		return r.printStats(res)
	}
	return nil
}

func (r *runner) printStats(res *result) error {
	nodes, size := res.program.Arena().Stats()
	fmt.Fprintf(r.w, "%s: %s source, %s nodes, %s arena\n", res.path,
		humanize.Bytes(uint64(len(res.src))), humanize.Comma(int64(nodes)), humanize.Bytes(size))

	if len(res.times) == 1 {
		_, err := fmt.Fprintf(r.w, "Parse time: %v\n", time.Duration(res.times[0]))
		return err
	}
	fmt.Fprintf(r.w, "Parse time over %d runs:\n", len(res.times))
	f, _ := stats.Median(res.times)
	fmt.Fprintf(r.w, "  Median: %v\n", time.Duration(f))
	f, _ = stats.Mean(res.times)
	fmt.Fprintf(r.w, "  Mean: %v\n", time.Duration(f))
	f, _ = stats.StdDevS(res.times)
	fmt.Fprintf(r.w, "  StdDev: %v\n", time.Duration(f))
	f, _ = stats.Min(res.times)
	fmt.Fprintf(r.w, "  Min: %v\n", time.Duration(f))
	f, _ = stats.Max(res.times)
	_, err := fmt.Fprintf(r.w, "  Max: %v\n", time.Duration(f))
	return err
}
