// Package statcast loads the leaderboard tables a scoring run consumes and
// resolves player names against them. Tables are immutable once loaded.
package statcast

import (
	"bufio"
	"encoding/csv"
	"errors"
	"io"
	"math"
	"strconv"
	"strings"

	"github.com/okian/matchup/internal/domain/types"
)

// NameColumn is the player key column shared by every leaderboard export.
const NameColumn = "last_name, first_name"

const utf8BOM = "\ufeff"

// table is a parsed CSV with a header index.
type table struct {
	name   string
	header map[string]int
	rows   [][]string
}

// skipBOM drops a leading UTF-8 byte-order mark so the first header field
// parses as a quoted field.
func skipBOM(r io.Reader) io.Reader {
	br := bufio.NewReader(r)
	if b, err := br.Peek(len(utf8BOM)); err == nil && string(b) == utf8BOM {
		_, _ = br.Discard(len(utf8BOM))
	}
	return br
}

// readTable parses r and verifies that every required column is present.
func readTable(name string, r io.Reader, required ...string) (*table, error) {
	cr := csv.NewReader(skipBOM(r))
	cr.TrimLeadingSpace = true
	cr.FieldsPerRecord = -1

	head, err := cr.Read()
	if errors.Is(err, io.EOF) {
		return nil, &InputShapeError{Table: name, Missing: required, Detail: "empty input"}
	}
	if err != nil {
		return nil, &InputShapeError{Table: name, Detail: err.Error()}
	}

	t := &table{name: name, header: make(map[string]int, len(head))}
	for i, col := range head {
		col = strings.TrimSpace(col)
		t.header[col] = i
	}

	var missing []string
	for _, col := range required {
		if !t.has(col) {
			missing = append(missing, col)
		}
	}
	if len(missing) > 0 {
		return nil, &InputShapeError{Table: name, Missing: missing}
	}

	for row := 1; ; row++ {
		rec, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, &InputShapeError{Table: name, Row: row, Detail: err.Error()}
		}
		t.rows = append(t.rows, rec)
	}
	return t, nil
}

func (t *table) has(col string) bool {
	_, ok := t.header[col]
	return ok
}

func (t *table) cell(rec []string, col string) string {
	i, ok := t.header[col]
	if !ok || i >= len(rec) {
		return ""
	}
	return strings.TrimSpace(rec[i])
}

// stat parses a nullable numeric cell.
func (t *table) stat(rec []string, row int, col string) (types.Stat, error) {
	raw := t.cell(rec, col)
	switch strings.ToLower(raw) {
	case "", "null", "na", "nan", "none", "-", "--":
		return types.None(), nil
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return types.None(), &InputShapeError{Table: t.name, Row: row, Column: col, Detail: "not a number: " + raw}
	}
	return types.Some(v), nil
}

// count parses a nullable count cell; null counts are zero.
func (t *table) count(rec []string, row int, col string) (int, error) {
	s, err := t.stat(rec, row, col)
	if err != nil {
		return 0, err
	}
	return int(math.Round(s.OrZero())), nil
}
