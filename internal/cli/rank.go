package cli

import (
	"context"
	"fmt"

	"deptally/internal/config"
	"deptally/pkg/pipeline"
	"deptally/pkg/registry/librariesio"
	"deptally/pkg/registry/pypistats"
)

type rankFlags struct {
	pkg    string
	output string
}

// runRank wires the registry clients and runs the checkpointed pipeline.
func (c *CLI) runRank(ctx context.Context, flags rankFlags) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	dependents, err := librariesio.NewClient(cfg.APIKey, cfg.LibrariesBaseURL, cfg.PerPage, c.Logger)
	if err != nil {
		return err
	}
	stats := pypistats.NewClient(cfg.PyPIStatsBaseURL)

	printInfo("Package: %s", StyleHighlight.Render(flags.pkg))

	p := newProgress(c.Logger)
	runner := pipeline.NewRunner(dependents, stats, c.Logger, nil)
	if err := runner.Run(ctx, flags.pkg, flags.output); err != nil {
		printDetail("progress saved to %s, rerun to resume", flags.output)
		return fmt.Errorf("resolve downloads: %w", err)
	}
	p.done("Resolved all dependents")

	printSuccess("All done!")
	printFile(flags.output)
	return nil
}
