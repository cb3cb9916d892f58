package statcast

import "strings"

// LastName returns the lower-cased last-name part of a "Last, First" key.
func LastName(name string) string {
	last, _, _ := strings.Cut(name, ",")
	return strings.ToLower(strings.TrimSpace(last))
}

// nameMatches reports whether key contains the query's last name,
// case-insensitively.
func nameMatches(key, query string) bool {
	last := LastName(query)
	if last == "" {
		return false
	}
	return strings.Contains(strings.ToLower(key), last)
}
