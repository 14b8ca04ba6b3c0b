package main

import (
	"log"

	"github.com/bbdrive/runplot/pkg/gui"
	"github.com/bbdrive/runplot/pkg/telemetry"
)

type WindowCommand struct{}

func (c *WindowCommand) Execute(args []string) error {
	fig, _, err := loadFigure(telemetry.DefaultPath)
	if err != nil {
		log.Fatal(err)
	}

	logf("opening window")
	if err := gui.Run(fig, "runplot - "+telemetry.DefaultPath); err != nil {
		log.Fatalf("Error running window: %v", err)
	}
	return nil
}
