// Package ranking selects the daily top-N lists from scored game reports.
package ranking

// Option applies a configuration option to the Selector.
type Option func(*Selector)

// WithThreshold sets the minimum strikeout-rate swing, in percentage points,
// for a pitcher to appear on either strikeout list.
func WithThreshold(points float64) Option {
	return func(s *Selector) {
		if points > 0 {
			s.threshold = points
		}
	}
}

// WithLeagueAverages sets the placeholders used for batters without season data.
func WithLeagueAverages(league LeagueAverages) Option {
	return func(s *Selector) {
		if league.StrikeoutRate > 0 {
			s.league.StrikeoutRate = league.StrikeoutRate
		}
		if league.BattingAverage > 0 {
			s.league.BattingAverage = league.BattingAverage
		}
	}
}

// WithLimits sets the list sizes.
func WithLimits(strikeoutTopN, batterTopN int) Option {
	return func(s *Selector) {
		if strikeoutTopN > 0 {
			s.strikeoutTopN = strikeoutTopN
		}
		if batterTopN > 0 {
			s.batterTopN = batterTopN
		}
	}
}

// WithExcludeMissingBaseline drops batters without a season strikeout rate
// from the lineup mean instead of substituting the league placeholder.
func WithExcludeMissingBaseline(exclude bool) Option {
	return func(s *Selector) {
		s.excludeMissingBaseline = exclude
	}
}
