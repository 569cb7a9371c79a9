// Package pipeline coordinates the dependents fetch, the per-package
// download-count resolution, and the checkpoint file.
package pipeline

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"

	"github.com/charmbracelet/log"

	"deptally/pkg/checkpoint"
	"deptally/pkg/registry"
)

// DependentsFetcher produces the ranked dependents of a package.
// *librariesio.Client implements it.
type DependentsFetcher interface {
	Dependents(ctx context.Context, pkg string) ([]string, error)
}

// StatsFetcher resolves a single package's last-month download count.
// *pypistats.Client implements it.
type StatsFetcher interface {
	RecentDownloads(ctx context.Context, pkg string) (int, error)
}

// Runner executes the checkpointed resolution pipeline. It owns the
// in-memory table for the duration of a run and guarantees the checkpoint
// file reflects every resolution made, regardless of how the run ends.
//
// The Runner is stateless between runs; it holds only its collaborators.
type Runner struct {
	Dependents DependentsFetcher
	Stats      StatsFetcher
	Logger     *log.Logger
	Out        io.Writer
}

// NewRunner creates a runner with the given fetchers.
// If logger is nil, [log.Default] is used. Progress lines go to out;
// pass nil for os.Stdout.
func NewRunner(dependents DependentsFetcher, stats StatsFetcher, logger *log.Logger, out io.Writer) *Runner {
	if logger == nil {
		logger = log.Default()
	}
	if out == nil {
		out = os.Stdout
	}
	return &Runner{
		Dependents: dependents,
		Stats:      stats,
		Logger:     logger,
		Out:        out,
	}
}

// Run builds or resumes the checkpoint file at path for pkg.
//
// If the file does not exist, the ranked dependents of pkg are fetched and
// written with every row unresolved. An existing file is trusted as-is,
// even if it was produced for a different package; choosing the right path
// is the caller's responsibility.
//
// The table is then loaded and every unresolved row is resolved in order.
// A not-found response marks the row unavailable and processing continues;
// any other error stops the loop. In all cases the table is flushed back to
// path before Run returns, so no completed resolution is ever lost and a
// rerun resumes exactly where this one stopped.
func (r *Runner) Run(ctx context.Context, pkg, path string) error {
	if _, err := os.Stat(path); errors.Is(err, fs.ErrNotExist) {
		r.Logger.Debug("no checkpoint found, fetching dependents", "path", path)
		names, err := r.Dependents.Dependents(ctx, pkg)
		if err != nil {
			return err
		}
		if err := checkpoint.Save(path, checkpoint.New(names)); err != nil {
			return err
		}
		r.Logger.Info("wrote initial checkpoint", "packages", len(names), "path", path)
	} else if err != nil {
		return err
	}

	table, err := checkpoint.Load(path)
	if err != nil {
		return err
	}

	return r.resolve(ctx, table, path)
}

// resolve fills in unresolved rows in ranking order. The deferred flush is
// the durability guarantee: it runs on every exit path, and a flush failure
// surfaces only when the loop itself succeeded.
func (r *Runner) resolve(ctx context.Context, table *checkpoint.Table, path string) (err error) {
	defer func() {
		if werr := checkpoint.Save(path, table); werr != nil && err == nil {
			err = werr
		}
	}()

	total := table.Len()
	for i, rec := range table.Records() {
		if !rec.Downloads.IsUnresolved() {
			continue
		}

		n, ferr := r.Stats.RecentDownloads(ctx, rec.Name)
		switch {
		case ferr == nil:
			table.Resolve(rec.Name, n)
			fmt.Fprintf(r.Out, "(%d/%d) %s has %d downloads\n", i+1, total, rec.Name, n)
		case errors.Is(ferr, registry.ErrNotFound):
			table.MarkUnavailable(rec.Name)
			fmt.Fprintf(r.Out, "(%d/%d) Could not find %s, continuing...\n", i+1, total, rec.Name)
		default:
			return ferr
		}
	}
	return nil
}
