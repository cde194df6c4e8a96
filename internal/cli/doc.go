// Package cli defines the Cobra command tree. The root command runs the
// scaffolder itself; the remaining files each register one subcommand. Commands
// handle flag parsing, I/O formatting, and user interaction, and delegate the
// work to the options and scaffold packages.
package cli
