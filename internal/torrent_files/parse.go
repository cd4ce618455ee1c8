package torrent_files

import (
	"crypto/sha1"
	"path"
	"strings"
	"time"

	"torverify/internal/bencode"
)

// Decodes a torrent file into the relevant properties for reporting and verification

func ParseTorrentFile(file_data []byte) (TorrentMetadata, error) {
	var nil_torrent TorrentMetadata

	decoded, err := bencode.Decode(file_data)
	if err != nil {
		return nil_torrent, err
	}

	root, ok := decoded.(bencode.Dict)
	if !ok {
		return nil_torrent, &StructureError{Reason: "root is not a dictionary"}
	}

	info, err := bencode.Get[bencode.Dict](root, "info")
	if err != nil {
		return nil_torrent, &StructureError{Key: "info", Reason: "missing or not a dictionary"}
	}

	// the digest must be over the canonical re-encoding, never a sub-slice of the
	// input - unsorted input keys would otherwise change the hash
	hash := sha1.Sum(bencode.Encode(info))

	name := optional_text(info, "name")

	files, total, err := extract_files(info, name)
	if err != nil {
		return nil_torrent, err
	}

	piece_length, _ := bencode.Get[bencode.Integer](info, "piece length")

	pieces_parsed := []string{}
	if pieces, err := bencode.Get[bencode.String](info, "pieces"); err == nil {
		for i := 0; i+20 <= len(pieces); i += 20 {
			pieces_parsed = append(pieces_parsed, string(pieces[i:i+20]))
		}
	}

	metadata := TorrentMetadata{
		Announcers:  extract_trackers(root),
		InfoHash:    hash,
		Name:        name,
		PieceLength: int64(piece_length),
		Pieces:      pieces_parsed,
		Length:      total,
		Files:       files,
		CreatedBy:   optional_text(root, "created by"),
		Comment:     optional_text(root, "comment"),
	}

	if stamp, err := bencode.Get[bencode.Integer](root, "creation date"); err == nil {
		metadata.CreationDate = time.Unix(int64(stamp), 0)
	}

	return metadata, nil
}

func extract_files(info bencode.Dict, name string) ([]TorrentFile, int64, error) {
	files_val, multi_file := info.Get("files")

	if !multi_file {
		length, err := bencode.Get[bencode.Integer](info, "length")
		if err != nil {
			return nil, 0, &StructureError{Key: "length", Reason: "invalid files or missing length"}
		}
		if length < 0 {
			return nil, 0, &StructureError{Key: "length", Reason: "file length is negative"}
		}
		return []TorrentFile{{Path: name, Length: int64(length)}}, int64(length), nil
	}

	files_list, ok := files_val.(bencode.List)
	if !ok {
		return nil, 0, &StructureError{Key: "files", Reason: "files is not a list"}
	}

	file_set := []TorrentFile{}
	var total int64
	for _, entry := range files_list {
		entry_dict, ok := entry.(bencode.Dict)
		if !ok {
			return nil, 0, &StructureError{Key: "files", Reason: "file entries are not valid dictionaries"}
		}

		length, err := bencode.Get[bencode.Integer](entry_dict, "length")
		if err != nil {
			return nil, 0, &StructureError{Key: "length", Reason: "a file entry is missing a valid length"}
		}
		if length < 0 {
			return nil, 0, &StructureError{Key: "length", Reason: "file length is negative"}
		}

		segments, err := bencode.GetStrings(entry_dict, "path")
		if err != nil {
			return nil, 0, &StructureError{Key: "path", Reason: "a file entry is missing a valid path"}
		}

		parts := []string{name}
		for _, s := range segments {
			parts = append(parts, lossy_text(s))
		}

		file_set = append(file_set, TorrentFile{
			Path:   path.Join(parts...),
			Length: int64(length),
		})
		total += int64(length)
	}

	return file_set, total, nil
}

func extract_trackers(root bencode.Dict) []string {
	trackers := []string{}
	seen := map[string]bool{}

	add := func(url string) {
		if url == "" || seen[url] {
			return
		}
		seen[url] = true
		trackers = append(trackers, url)
	}

	if announce, err := bencode.Get[bencode.String](root, "announce"); err == nil {
		add(lossy_text(announce))
	}

	// announce-list is a list of tiers, each a list of urls; entries that aren't
	// shaped that way are skipped, not fatal
	if announce_list, err := bencode.Get[bencode.List](root, "announce-list"); err == nil {
		for _, tier := range announce_list {
			sub_list, ok := tier.(bencode.List)
			if !ok {
				continue
			}
			for _, entry := range sub_list {
				if url, ok := entry.(bencode.String); ok {
					add(lossy_text(url))
				}
			}
		}
	}

	return trackers
}

// lossy_text converts raw bytes to display text, replacing malformed sequences.
// Display strings are never used for integrity decisions, so this cannot fail.
func lossy_text(s bencode.String) string {
	return strings.ToValidUTF8(string(s), "�")
}

func optional_text(d bencode.Dict, key string) string {
	s, err := bencode.Get[bencode.String](d, key)
	if err != nil {
		return ""
	}
	return lossy_text(s)
}
