package main

import (
	"fmt"

	"github.com/bbdrive/runplot/pkg/figure"
	"github.com/bbdrive/runplot/pkg/telemetry"
)

// loadFigure loads the run log at path and builds its figure.
func loadFigure(path string) (*figure.Figure, *telemetry.Log, error) {
	logf("loading %s", path)
	run, err := telemetry.Load(path)
	if err != nil {
		return nil, nil, fmt.Errorf("load run log: %w", err)
	}
	logf("loaded %d samples", run.Len())

	fig := figure.New(run)
	fig.Title = path
	return fig, run, nil
}
