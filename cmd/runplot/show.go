package main

import (
	"fmt"
	"log"

	"github.com/bbdrive/runplot/pkg/telemetry"
	"github.com/bbdrive/runplot/pkg/tui"
)

type ShowCommand struct{}

func (c *ShowCommand) Execute(args []string) error {
	fig, run, err := loadFigure(telemetry.DefaultPath)
	if err != nil {
		log.Fatal(err)
	}

	msg := fmt.Sprintf("Loaded %d samples from %s", run.Len(), telemetry.DefaultPath)
	if err := tui.Run(fig, telemetry.DefaultPath, msg); err != nil {
		log.Fatalf("Error running viewer: %v", err)
	}
	return nil
}
