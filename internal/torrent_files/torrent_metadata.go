package torrent_files

import (
	"encoding/hex"
	"fmt"
	"time"
)

// Metadata extracted from a .torrent file, normalised for reporting and verification.
// Immutable once built - it keeps no reference to the raw file bytes.

type TorrentMetadata struct {
	Announcers   []string // de-duplicated, primary announce first
	InfoHash     [20]byte // SHA-1 over the canonical encoding of the info dict
	Name         string
	PieceLength  int64
	Pieces       []string // per-piece hashes, parsed but never checked here
	Length       int64    // sum of all file lengths
	Files        []TorrentFile
	CreationDate time.Time // zero when the torrent doesn't carry one
	CreatedBy    string
	Comment      string
}

// TorrentFile is one described file. Path is slash-joined and always starts with the
// torrent's top-level name.
type TorrentFile struct {
	Path   string
	Length int64
}

func (m TorrentMetadata) HexHash() string {
	return hex.EncodeToString(m.InfoHash[:])
}

// StructureError means the bytes were valid bencode but did not describe a torrent.
type StructureError struct {
	Key    string
	Reason string
}

func (e *StructureError) Error() string {
	if e.Key == "" {
		return "invalid torrent: " + e.Reason
	}
	return fmt.Sprintf("invalid torrent: %s (key %q)", e.Reason, e.Key)
}
