package cli

import (
	"fmt"
	"os"

	goflags "github.com/jessevdk/go-flags"
)

// commands holds references to all subcommand structs for inspection/testing.
type commands struct {
	Review *ReviewCommand
	Stats  *StatsCommand
	Week   *WeekCommand
}

// buildParser constructs the go-flags parser with all subcommands registered.
func buildParser(version string) (*goflags.Parser, *GlobalFlags, *commands) {
	var globals GlobalFlags

	parser := goflags.NewParser(&globals, goflags.Default)
	parser.Name = "lookback"
	parser.LongDescription = "Local browsing history analysis: time-spent-by-category reports and daily/weekly statistics."

	cmds := &commands{
		Review: &ReviewCommand{globals: &globals, version: version},
		Stats:  &StatsCommand{globals: &globals, version: version},
		Week:   &WeekCommand{globals: &globals, version: version},
	}

	parser.AddCommand("review", "Generate a browsing review report", "Analyze recent Chrome history and print the time-spent-by-category report.", cmds.Review)
	parser.AddCommand("stats", "List daily browsing statistics", "List per-day browsing statistics for the last N days (default 7, max 30).", cmds.Stats)
	parser.AddCommand("week", "Show the weekly browsing summary", "Aggregate the last seven days into a weekly browsing summary.", cmds.Week)

	return parser, &globals, cmds
}

// Run is the main entry point for the lookback CLI using os.Args.
func Run(version string) error {
	return RunWithArgs(version, nil)
}

// RunWithArgs parses the given args (or os.Args if nil) and executes the matched subcommand.
func RunWithArgs(version string, args []string) error {
	// Handle --version before parser (go-flags requires a subcommand, but
	// --version is valid without one).
	checkArgs := args
	if checkArgs == nil {
		checkArgs = os.Args[1:]
	}
	for _, arg := range checkArgs {
		if arg == "--version" {
			fmt.Printf("lookback %s\n", version)
			return nil
		}
		if arg == "--" {
			break
		}
	}

	parser, _, _ := buildParser(version)

	var err error
	if args != nil {
		_, err = parser.ParseArgs(args)
	} else {
		_, err = parser.Parse()
	}

	if err != nil {
		if flagsErr, ok := err.(*goflags.Error); ok {
			if flagsErr.Type == goflags.ErrHelp {
				return nil
			}
		}
		return err
	}

	return nil
}
