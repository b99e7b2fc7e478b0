package main

import (
	"context"
	"fmt"
	"os"

	"github.com/reusee/dscope"
	"github.com/reusee/duet/cmds"
	"github.com/reusee/duet/debugs"
	"github.com/reusee/duet/logs"
	"github.com/reusee/duet/modes"
	"github.com/reusee/duet/reports"
)

var (
	fileFlags  = cmds.Collect[string]("-file", "program file to run, may be repeated")
	formatFlag = cmds.Var[reports.Format]("-format", "report format: text, json or yaml")
	replFlag   = cmds.Switch("-repl", "execute instructions typed at a prompt")
	tapFlag    = cmds.Switch("-tap", "open a starlark prompt on each finished program")
)

func main() {
	if err := cmds.Execute(os.Args[1:]); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		cmds.GlobalExecutor.PrintUsage(os.Stderr)
		os.Exit(2)
	}
	ctx := context.Background()

	scope := dscope.New(
		new(Module),
		modes.ForProduction(),
	)

	if *replFlag {
		scope.Call(func(
			logger logs.Logger,
		) {
			runREPL(logger)
		})
		return
	}

	if len(*fileFlags) == 0 {
		fmt.Fprintln(os.Stderr, "error: no input, use -file")
		os.Exit(2)
	}

	var failed bool
	scope.Call(func(
		runFiles RunFiles,
		tap debugs.Tap,
	) {
		results := runFiles(ctx, *fileFlags)

		rs := make([]reports.Report, 0, len(results))
		for _, result := range results {
			rs = append(rs, result.report)
			if result.err != nil {
				failed = true
				fmt.Fprintf(os.Stderr, "error: %v\n", result.err)
			}
		}
		if err := reports.Write(os.Stdout, *formatFlag, rs...); err != nil {
			fmt.Fprintf(os.Stderr, "error: %v\n", err)
			failed = true
		}

		if *tapFlag {
			for i, result := range results {
				if result.program == nil {
					continue
				}
				tap(ctx, (*fileFlags)[i], debugs.ProgramGlobals(result.program))
			}
		}
	})

	if failed {
		os.Exit(1)
	}
}
