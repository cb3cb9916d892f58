// Package arsenal turns a pitcher's raw leaderboard usage percentages into a
// normalized usage distribution.
package arsenal

import (
	"errors"
	"fmt"

	"github.com/okian/matchup/internal/domain/model"
	"github.com/okian/matchup/internal/domain/pitch"
	"github.com/okian/matchup/internal/domain/types"
)

// ErrDegenerateArsenal reports a pitcher with no qualifying pitch types.
var ErrDegenerateArsenal = errors.New("no qualifying pitch types")

// RawPitch is one pitch type as published on the arsenal leaderboard.
// UsagePercent is on the 0-100 scale.
type RawPitch struct {
	Type         pitch.Type
	Velocity     types.Stat
	UsagePercent types.Stat
}

// Normalize builds a PitcherArsenal whose usage rates sum to 1.0.
//
// Pitch types without a velocity or with non-positive usage are dropped and the
// remaining usage is rescaled by its own total, so mass lost to omitted rare
// pitches is redistributed rather than left missing. A pitcher with nothing
// left yields an empty arsenal and ErrDegenerateArsenal.
func Normalize(pitcher string, raw []RawPitch) (model.PitcherArsenal, error) {
	out := model.PitcherArsenal{
		Pitcher: pitcher,
		Entries: make(map[pitch.Type]model.ArsenalEntry),
	}

	kept := make([]RawPitch, 0, len(raw))
	seen := make(map[pitch.Type]struct{}, len(raw))
	var total float64
	for _, r := range raw {
		if _, dup := seen[r.Type]; dup {
			continue
		}
		if !r.Velocity.Valid() {
			continue
		}
		usage, ok := r.UsagePercent.Get()
		if !ok || usage <= 0 {
			continue
		}
		seen[r.Type] = struct{}{}
		kept = append(kept, r)
		total += usage
	}

	if total <= 0 {
		return out, fmt.Errorf("%s: %w", pitcher, ErrDegenerateArsenal)
	}

	for _, r := range kept {
		out.Entries[r.Type] = model.ArsenalEntry{
			PitchType:       r.Type,
			Name:            r.Type.Name(),
			AverageVelocity: r.Velocity.OrZero(),
			UsageRate:       r.UsagePercent.OrZero() / total,
		}
	}
	return out, nil
}
