package repository

// DefaultHistorySize is the number of reports kept in memory.
const DefaultHistorySize = 30

// Option applies a configuration option to the History.
type Option func(*History)

// WithHistorySize bounds the number of reports kept; older ones are dropped.
func WithHistorySize(n int) Option {
	return func(h *History) {
		if n > 0 {
			h.size = n
		}
	}
}

// ArchiveOption applies a configuration option to the FileArchive.
type ArchiveOption func(*FileArchive)

// WithIndent pretty-prints archived reports.
func WithIndent(indent bool) ArchiveOption {
	return func(a *FileArchive) {
		a.indent = indent
	}
}
