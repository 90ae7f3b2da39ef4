package site

import (
	"context"
	"fmt"
	"os"
)

// stagePrepare creates the output directory, optionally clearing a previous
// build first.
func stagePrepare(_ context.Context, bs *BuildState) error {
	if bs.Cfg.Output.Clean {
		if err := os.RemoveAll(bs.OutputDir); err != nil {
			return fmt.Errorf("clean output dir: %w", err)
		}
	}
	if err := os.MkdirAll(bs.OutputDir, 0o755); err != nil {
		return fmt.Errorf("create output dir: %w", err)
	}
	return nil
}
