package logger

// Output controls what categories of information are shown at each verbosity level.
//
// Unlike log levels (which filter by severity), output categories control
// WHAT types of information are displayed regardless of severity.
//
// Verbosity Levels:
//
//	0 (default) - Generated code, errors with hints, final status
//	1 (-v)      - + Files written, reloads, server start/stop, client counts
//	2 (-vv)     - + File events, config loaded, HTTP requests, timing

// OutputCategory defines a category of output that can be enabled/disabled
type OutputCategory int

const (
	// Level 0 (default) - Always shown
	OutputResults    OutputCategory = iota // Generated Lua, preview HTML, tables
	OutputErrors                           // Errors with hints
	OutputUserStatus                       // Final success/failure status

	// Level 1 (-v) - Informational
	OutputFileWrites // Export files written
	OutputReloads    // Layout reloads from watch/serve
	OutputStartup    // Listen address, watched path, session id
	OutputClients    // Live-reload clients joining and leaving

	// Level 2 (-vv) - Detailed
	OutputFileEvents // Raw filesystem events before debouncing
	OutputConfig     // Config values loaded/applied
	OutputHTTPCalls  // Individual HTTP requests served
	OutputTiming     // Generation timing
)

// categoryLevels maps each output category to its minimum verbosity level
var categoryLevels = map[OutputCategory]int{
	OutputResults:    VerbosityUser,
	OutputErrors:     VerbosityUser,
	OutputUserStatus: VerbosityUser,

	OutputFileWrites: VerbosityInfo,
	OutputReloads:    VerbosityInfo,
	OutputStartup:    VerbosityInfo,
	OutputClients:    VerbosityInfo,

	OutputFileEvents: VerbosityDebug,
	OutputConfig:     VerbosityDebug,
	OutputHTTPCalls:  VerbosityDebug,
	OutputTiming:     VerbosityDebug,
}

// ShouldOutput returns true if the given category should be shown at the given verbosity
func ShouldOutput(verbosity int, category OutputCategory) bool {
	minLevel, ok := categoryLevels[category]
	if !ok {
		// Unknown category, default to highest verbosity required
		return verbosity >= VerbosityDebug
	}
	return verbosity >= minLevel
}

var categoryNames = map[OutputCategory]string{
	OutputResults:    "results",
	OutputErrors:     "errors",
	OutputUserStatus: "status",
	OutputFileWrites: "file-writes",
	OutputReloads:    "reloads",
	OutputStartup:    "startup",
	OutputClients:    "clients",
	OutputFileEvents: "file-events",
	OutputConfig:     "config",
	OutputHTTPCalls:  "http",
	OutputTiming:     "timing",
}

// CategoryName returns the human-readable name for an output category
func CategoryName(category OutputCategory) string {
	if name, ok := categoryNames[category]; ok {
		return name
	}
	return "unknown"
}

// VerbosityDescription returns a description of what's shown at each level
func VerbosityDescription(verbosity int) string {
	switch {
	case verbosity <= VerbosityUser:
		return "results and errors only"
	case verbosity == VerbosityInfo:
		return "results, errors, file writes and reloads"
	default:
		return "above + file events, config and HTTP requests"
	}
}
