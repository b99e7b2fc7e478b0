package main

import (
	"context"
	"io"
	"os"
	"sync"

	"github.com/reusee/duet/duetasm"
	"github.com/reusee/duet/duetconfigs"
	"github.com/reusee/duet/duetvm"
	"github.com/reusee/duet/logs"
	"github.com/reusee/duet/reports"
	"github.com/reusee/duet/syncs"
)

// RunSource parses and runs one program. The returned program is the measured one in duet mode.
type RunSource func(ctx context.Context, name string, source io.Reader) (*duetvm.Program, reports.Report, error)

func (Module) RunSource(
	mode duetvm.Mode,
	maxSteps duetconfigs.MaxSteps,
	identity duetconfigs.IdentityRegister,
	measured duetconfigs.MeasuredProgram,
	newSpan logs.NewSpan,
	logger logs.Logger,
) RunSource {
	return func(ctx context.Context, name string, source io.Reader) (p *duetvm.Program, report reports.Report, err error) {
		ctx, _ = newSpan(ctx, "run "+name)
		defer func() {
			err = logs.WrapSpan(ctx, err)
		}()

		code, err := duetasm.Parse(name, source, duetasm.SetForMode(mode))
		if err != nil {
			return nil, report, err
		}
		logger.InfoContext(ctx, "parsed",
			"file", name,
			"mode", mode,
			"instructions", len(code),
		)

		switch mode {

		case duetvm.ModeSound:
			p, err = duetvm.RunSound(code, int(maxSteps))
			if err != nil {
				return p, report, err
			}
			return p, reports.FromSound(name, p), nil

		case duetvm.ModeCoprocessor:
			p, err = duetvm.RunProfiled(code, int(maxSteps))
			if err != nil {
				return p, report, err
			}
			return p, reports.FromProfiled(name, p), nil

		default:
			duet, err := duetvm.NewDuet(code, duetvm.DuetOptions{
				IdentityRegister: byte(identity),
				Measured:         int(measured),
				MaxSteps:         int(maxSteps),
				Logger:           logger,
			})
			if err != nil {
				return nil, report, err
			}
			res, err := duet.Run(ctx)
			if err != nil {
				return duet.Programs[duet.Measured], report, err
			}
			return res.Programs[duet.Measured], reports.FromDuet(name, res, duet.Measured), nil

		}
	}
}

type fileResult struct {
	program *duetvm.Program
	report  reports.Report
	err     error
}

// RunFiles runs the named files concurrently and returns results in input order.
type RunFiles func(ctx context.Context, names []string) []fileResult

func (Module) RunFiles(
	runSource RunSource,
	parallel duetconfigs.Parallel,
	mode duetvm.Mode,
	newSpan logs.NewSpan,
) RunFiles {
	return func(ctx context.Context, names []string) []fileResult {
		ctx, _ = newSpan(ctx, "batch")
		results := make([]fileResult, len(names))
		sem := syncs.NewSemaphore(int(parallel))
		var wg sync.WaitGroup
		for i, name := range names {
			r := &results[i]
			if err := sem.Acquire(ctx); err != nil {
				r.err = err
				r.report = reports.FromError(name, mode, err)
				continue
			}
			wg.Go(func() {
				defer sem.Release()
				r.program, r.report, r.err = runFile(ctx, runSource, name)
				if r.err != nil {
					r.report = reports.FromError(name, mode, r.err)
				}
			})
		}
		wg.Wait()
		return results
	}
}

func runFile(ctx context.Context, runSource RunSource, name string) (*duetvm.Program, reports.Report, error) {
	f, err := os.Open(name)
	if err != nil {
		return nil, reports.Report{}, err
	}
	defer f.Close()
	return runSource(ctx, name, f)
}
