package main

import (
	"log"
	"os"

	"github.com/jessevdk/go-flags"
)

type Options struct {
	Verbose bool          `short:"v" long:"verbose" description:"Log progress to stderr"`
	Show    ShowCommand   `command:"show" description:"Plot the run log in the terminal (default)"`
	Window  WindowCommand `command:"window" description:"Plot the run log in a desktop window"`
}

var opts Options
var parser = flags.NewParser(&opts, flags.Default)

func main() {
	log.SetFlags(0)
	log.SetPrefix("runplot: ")

	parser.LongDescription = "runplot - plot goal, position and orientation from a robot run log"
	parser.SubcommandsOptional = true

	_, err := parser.Parse()
	if err != nil {
		if flagsErr, ok := err.(*flags.Error); ok {
			if flagsErr.Type == flags.ErrHelp {
				os.Exit(0)
			}
		}
		os.Exit(1)
	}

	// No command given: same as "show".
	if parser.Active == nil {
		if err := opts.Show.Execute(nil); err != nil {
			log.Fatal(err)
		}
	}
}

func logf(format string, args ...any) {
	if opts.Verbose {
		log.Printf(format, args...)
	}
}
