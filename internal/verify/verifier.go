package verify

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"

	"torverify/internal/torrent_files"
	"torverify/internal/util"
)

// Checks a torrent's described files against local storage. This is a presence and
// size check only - file content is never opened, so piece hashes are not involved.

type MissingFile struct {
	Path     string
	Expected int64
}

type SizeMismatchFile struct {
	Path     string
	Expected int64
	Actual   int64
}

type ValidFile struct {
	Path   string
	Length int64
}

// FailedFile records a stat failure other than not-found (permissions, bad parent,
// I/O error). One failed entry never stops the rest of the pass.
type FailedFile struct {
	Path string
	Err  error
}

// Report places every described file in exactly one of the four lists. Each list
// preserves the torrent's own file order.
type Report struct {
	Missing      []MissingFile
	SizeMismatch []SizeMismatchFile
	Valid        []ValidFile
	Failed       []FailedFile
}

func (r Report) Total() int {
	return len(r.Missing) + len(r.SizeMismatch) + len(r.Valid) + len(r.Failed)
}

func (r Report) AllValid() bool {
	return len(r.Missing) == 0 && len(r.SizeMismatch) == 0 && len(r.Failed) == 0
}

type check_kind int

const (
	file_valid check_kind = iota
	file_missing
	file_mismatch
	file_failed
)

type check_result struct {
	kind   check_kind
	actual int64
	err    error
}

// CheckFiles resolves each described file under base_dir and classifies it. Checks
// run up to max_concurrent at a time; results are collected by index, so the report
// order always matches the torrent's file order no matter which check finishes
// first. progress may be nil - when set it is called once per completed entry,
// possibly from multiple goroutines.
func CheckFiles(metadata torrent_files.TorrentMetadata, base_dir string, max_concurrent int, progress func()) Report {
	ops := make([]util.Op[check_result], len(metadata.Files))
	for i, f := range metadata.Files {
		f := f
		ops[i] = func() (check_result, error) {
			result := check_entry(base_dir, f)
			if progress != nil {
				progress()
			}
			return result, nil
		}
	}

	results, _ := util.Concurrent(ops, max_concurrent)

	var report Report
	for i, f := range metadata.Files {
		switch result := results[i]; result.kind {
		case file_missing:
			report.Missing = append(report.Missing, MissingFile{Path: f.Path, Expected: f.Length})
		case file_mismatch:
			report.SizeMismatch = append(report.SizeMismatch, SizeMismatchFile{Path: f.Path, Expected: f.Length, Actual: result.actual})
		case file_valid:
			report.Valid = append(report.Valid, ValidFile{Path: f.Path, Length: f.Length})
		case file_failed:
			report.Failed = append(report.Failed, FailedFile{Path: f.Path, Err: result.err})
		}
	}
	return report
}

func check_entry(base_dir string, f torrent_files.TorrentFile) check_result {
	full_path := filepath.Join(base_dir, filepath.FromSlash(f.Path))

	info, err := os.Stat(full_path)
	if errors.Is(err, fs.ErrNotExist) {
		return check_result{kind: file_missing}
	}
	if err != nil {
		return check_result{kind: file_failed, err: err}
	}
	if info.Size() != f.Length {
		return check_result{kind: file_mismatch, actual: info.Size()}
	}
	return check_result{kind: file_valid}
}
