package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/pkg/errors"

	"github.com/eaugeas/arbor/config"
	errs "github.com/eaugeas/arbor/errors"
	"github.com/eaugeas/arbor/logs"
	"github.com/eaugeas/arbor/script"
)

func main() {
	ctx := logs.WithTraceID(context.Background(), time.Now().UnixNano())
	os.Exit(run(ctx, os.Args[1:], os.Stdout, os.Stderr))
}

// run builds a tree as described by args, writes its diagram to
// stdout and returns the exit status of the command
func run(ctx context.Context, args []string, stdout, stderr io.Writer) int {
	opts := &options{}

	parser, err := config.Generate("arbor", opts)
	if err != nil {
		fmt.Fprintln(stderr, err)
		return errs.CodeConfig
	}

	parser.SetOutput(stderr)
	if err := parser.Parse(args); err != nil {
		fmt.Fprintln(stderr, err)
		_ = parser.Usage()
		return errs.CodeConfig
	}

	logger := logs.NewLogrus(logs.LogrusLoggerProperties{
		Level:  opts.log.Level,
		Output: stderr,
		Format: opts.log.Format,
	})

	if file := parser.File(); len(file) > 0 {
		logger.Debug(ctx, "configuration file read", logs.MapFields{"path": file})
	}

	if err := build(ctx, logger, &opts.tree, stdout); err != nil {
		var e *errs.Error
		if errors.As(err, &e) {
			logger.Error(ctx, "arbor failed", e)
			return e.ErrorCode
		}

		logger.Error(ctx, err.Error(), nil)
		return 1
	}

	return 0
}

func build(ctx context.Context, logger logs.Logger, opts *treeOptions, out io.Writer) error {
	tree, err := script.NewTree(opts.Kind)
	if err != nil {
		return errs.New(errs.CodeConfig, "cannot create tree", err)
	}

	steps, err := opts.steps()
	if err != nil {
		return errs.New(errs.CodeScript, "cannot read script", err)
	}

	runner := script.Runner{Logger: logger, Verify: opts.Verify}
	if err := runner.Run(ctx, tree, steps); err != nil {
		var invalid script.ErrInvalidTree
		if errors.As(err, &invalid) {
			return errs.New(errs.CodeInvalidTree, "tree failed validation", err)
		}
		return errs.New(errs.CodeScript, "cannot apply script", err)
	}

	if len(opts.Record) > 0 {
		if err := record(opts.Record, steps); err != nil {
			return errs.New(errs.CodeScript, "cannot record script", err)
		}
	}

	logger.Info(ctx, "tree built", logs.MapFields{
		"kind":  opts.Kind,
		"steps": len(steps),
		"len":   tree.Len(),
	})

	_, err = fmt.Fprintln(out, strings.TrimSuffix(tree.String(), "\n"))
	return err
}

// record writes steps to path so that the same tree can be built
// again with --script
func record(path string, steps []script.Step) error {
	f, err := os.Create(path)
	if err != nil {
		return errors.Wrapf(err, "failed to create %s", path)
	}

	if err := script.Encode(f, steps); err != nil {
		f.Close()
		return err
	}

	return f.Close()
}
