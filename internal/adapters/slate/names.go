package slate

import (
	"regexp"
	"strings"
)

var (
	handedness    = regexp.MustCompile(`\([LRS]\)`)
	leadingOrder  = regexp.MustCompile(`^\d+\s+`)
	trailingOrder = regexp.MustCompile(`\s+\d+$`)

	// Positions sit at either end of the entry, never inside the name.
	leadingPosition  = regexp.MustCompile(`^(C|1B|2B|3B|SS|LF|CF|RF|DH)\s+`)
	trailingPosition = regexp.MustCompile(`\s+(C|1B|2B|3B|SS|LF|CF|RF|DH)$`)
)

var suffixes = map[string]struct{}{ //nolint:gochecknoglobals // read-only lookup
	"jr": {}, "jr.": {}, "sr": {}, "sr.": {}, "ii": {}, "iii": {},
}

// ParsePitcherName turns "(L) Patrick Corbin" or "Trevor Rogers (L)" into the
// leaderboard key form "Corbin, Patrick". Single-word names are returned as is.
func ParsePitcherName(s string) string {
	return keyName(strings.Fields(handedness.ReplaceAllString(s, "")))
}

// ParseBatterName turns a lineup entry such as "3   Corey Seager (L) SS" or
// "SS (L) Gunnar Henderson   3" into "Seager, Corey". Generational suffixes
// stay with the last name: "Bobby Witt Jr." becomes "Witt Jr., Bobby".
func ParseBatterName(s string) string {
	s = strings.TrimSpace(s)
	s = leadingOrder.ReplaceAllString(s, "")
	s = trailingOrder.ReplaceAllString(s, "")
	s = strings.TrimSpace(handedness.ReplaceAllString(s, ""))
	s = leadingPosition.ReplaceAllString(s, "")
	s = trailingPosition.ReplaceAllString(s, "")

	return keyName(strings.Fields(s))
}

// keyName joins name words as "Last, First", keeping a trailing suffix with
// the last name.
func keyName(parts []string) string {
	if len(parts) < 2 {
		return strings.Join(parts, " ")
	}
	split := len(parts) - 1
	if _, ok := suffixes[strings.ToLower(parts[split])]; ok && split > 1 {
		split--
	}
	return strings.Join(parts[split:], " ") + ", " + strings.Join(parts[:split], " ")
}
