package cli

// GlobalFlags holds flags available to all subcommands.
type GlobalFlags struct {
	Config  string `long:"config" description:"Path to config file" default:""`
	JSON    bool   `long:"json" description:"Output in JSON format"`
	Verbose bool   `long:"verbose" description:"Enable verbose output"`
	Version bool   `long:"version" description:"Show version and exit"`
}

// ReviewCommand — analyze recent history and print the review report.
// Positional args, if any, are joined into the free-text question carried
// through from the chat surface.
type ReviewCommand struct {
	Hours int `long:"hours" description:"Lookback window in hours" default:"24"`

	globals *GlobalFlags
	version string
}

// StatsCommand — list per-day browsing statistics.
type StatsCommand struct {
	Days int `long:"days" description:"Number of days to list (max 30)" default:"7"`

	globals *GlobalFlags
	version string
}

// WeekCommand — aggregate the last seven days into a weekly summary.
type WeekCommand struct {
	globals *GlobalFlags
	version string
}
