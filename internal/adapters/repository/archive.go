package repository

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	json "github.com/goccy/go-json"
	"github.com/okian/matchup/internal/domain/model"
	"github.com/okian/matchup/pkg/metrics"
)

// ArchiveTimeLayout stamps archive file names.
const ArchiveTimeLayout = "20060102_150405"

// FileArchive writes each run report to its own JSON file.
type FileArchive struct {
	dir    string
	indent bool
}

// NewFileArchive creates an archive rooted at dir.
func NewFileArchive(dir string, opts ...ArchiveOption) *FileArchive {
	a := &FileArchive{dir: dir, indent: true}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

// FileName returns the archive file name of r.
func FileName(r *model.RunReport) string {
	return "mlb_matchups_" + r.Timestamp.UTC().Format(ArchiveTimeLayout) + ".json"
}

// Write stores r and returns the written path. The file appears atomically.
func (a *FileArchive) Write(_ context.Context, r model.RunReport) (string, error) { //nolint:gocritic // read-only copy
	path, err := a.write(&r)
	if err != nil {
		metrics.RecordArchiveWrite(metrics.StatusFailure)
		return "", err
	}
	metrics.RecordArchiveWrite(metrics.StatusSuccess)
	return path, nil
}

func (a *FileArchive) write(r *model.RunReport) (string, error) {
	if err := os.MkdirAll(a.dir, 0o755); err != nil {
		return "", fmt.Errorf("create archive dir: %w", err)
	}

	var (
		b   []byte
		err error
	)
	if a.indent {
		b, err = json.MarshalIndent(r, "", "  ")
	} else {
		b, err = json.Marshal(r)
	}
	if err != nil {
		return "", fmt.Errorf("encode run report: %w", err)
	}

	path := filepath.Join(a.dir, FileName(r))
	tmp, err := os.CreateTemp(a.dir, ".mlb_matchups_*.tmp")
	if err != nil {
		return "", fmt.Errorf("create archive file: %w", err)
	}
	defer os.Remove(tmp.Name())

	if _, err := tmp.Write(b); err != nil {
		tmp.Close()
		return "", fmt.Errorf("write archive file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return "", fmt.Errorf("close archive file: %w", err)
	}
	if err := os.Rename(tmp.Name(), path); err != nil {
		return "", fmt.Errorf("publish archive file: %w", err)
	}
	return path, nil
}

// Read loads an archived report.
func (a *FileArchive) Read(path string) (model.RunReport, error) {
	var r model.RunReport
	b, err := os.ReadFile(path)
	if err != nil {
		return r, fmt.Errorf("read archive: %w", err)
	}
	if err := json.Unmarshal(b, &r); err != nil {
		return r, fmt.Errorf("decode archive %s: %w", filepath.Base(path), err)
	}
	return r, nil
}
