// Package runplot plots the telemetry log of a differential-drive robot run.
//
// The robot writes one line per control step to run_on_bb.log:
//
//	gx;gy;px;py;phi
//
// with the goal position, the actual position (both in mm) and the heading
// (in rad). runplot draws goal, position and orientation as three lines on
// shared axes.
//
// # Installation
//
//	go install github.com/bbdrive/runplot/cmd/runplot@latest
//
// # Usage
//
// Run it in the directory that holds run_on_bb.log:
//
//	runplot
//
// or open a desktop window instead of the terminal chart:
//
//	runplot window
//
// # Packages
//
// The module is organized into the following packages:
//
//   - cmd/runplot: CLI with show and window commands
//   - pkg/telemetry: Run log parsing
//   - pkg/figure: Figure model and gonum/plot rendering
//   - pkg/tui: Terminal viewer
//   - pkg/gui: Desktop window viewer
package runplot
