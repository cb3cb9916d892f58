package inspect

import "io"

// ShowHelp prints usage information for the inspect tool.
func ShowHelp(w io.Writer) {
	_, _ = io.WriteString(w, `Matchup Inspect Tool
====================

Prints a pitcher's normalized arsenal and a batter's weighted matchup against it.

Usage:
  matchup-inspect -pitcher NAME [-batter NAME] [options]

Options:
  -pitcher string
        Pitcher as "Last, First" or "First Last"
  -batter string
        Batter as "Last, First" or "First Last"
  -arsenals string
        Pitch arsenal CSV (default from MATCHUP_ARSENAL_CSV or config)
  -batters string
        Batter pitch-type CSV (default from MATCHUP_BATTER_PITCH_CSV or config)
  -seasons string
        Optional season CSV
  -url string
        Query a running bot instead of local tables
  -timeout duration
        HTTP request timeout (default 30s)
  -compact
        Print single-line JSON
  -verbose
        Enable debug logging
  -help
        Show this help message

Examples:
  matchup-inspect -pitcher "Cole, Gerrit"
  matchup-inspect -pitcher "Gerrit Cole" -batter "Aaron Judge"
  matchup-inspect -url http://localhost:9080 -batter "Judge, Aaron"
`)
}
