package torrent_files

import (
	"crypto/sha1"
	"errors"
	"reflect"
	"testing"
	"time"

	"torverify/internal/bencode"
)

const single_file_info = "d6:lengthi5e4:name5:a.txt12:piece lengthi16384ee"

func wrap_info(info string) []byte {
	return []byte("d4:info" + info + "e")
}

func TestParseSingleFileTorrent(t *testing.T) {
	metadata, err := ParseTorrentFile(wrap_info(single_file_info))
	if err != nil {
		t.Fatal(err)
	}

	want_files := []TorrentFile{{Path: "a.txt", Length: 5}}
	if !reflect.DeepEqual(metadata.Files, want_files) {
		t.Errorf("Files = %v, want %v", metadata.Files, want_files)
	}
	if metadata.Length != 5 {
		t.Errorf("Length = %d, want 5", metadata.Length)
	}
	if metadata.Name != "a.txt" {
		t.Errorf("Name = %q, want a.txt", metadata.Name)
	}
	if metadata.PieceLength != 16384 {
		t.Errorf("PieceLength = %d, want 16384", metadata.PieceLength)
	}

	// the input info dict is already canonical, so the digest must equal a SHA-1
	// taken directly over those bytes, independent of the codec
	want_hash := sha1.Sum([]byte(single_file_info))
	if metadata.InfoHash != want_hash {
		t.Errorf("InfoHash = %x, want %x", metadata.InfoHash, want_hash)
	}
}

func TestParseMultiFileTorrent(t *testing.T) {
	input := wrap_info("d5:filesld6:lengthi10e4:pathl3:sub5:b.bineee4:name3:pkge")
	metadata, err := ParseTorrentFile(input)
	if err != nil {
		t.Fatal(err)
	}

	want_files := []TorrentFile{{Path: "pkg/sub/b.bin", Length: 10}}
	if !reflect.DeepEqual(metadata.Files, want_files) {
		t.Errorf("Files = %v, want %v", metadata.Files, want_files)
	}
	if metadata.Length != 10 {
		t.Errorf("Length = %d, want 10", metadata.Length)
	}
}

func TestTotalLengthIsSumOfEntries(t *testing.T) {
	input := wrap_info("d5:filesld6:lengthi3e4:pathl5:a.txteed6:lengthi7e4:pathl4:docs5:b.txteee4:name3:pkge")
	metadata, err := ParseTorrentFile(input)
	if err != nil {
		t.Fatal(err)
	}

	var sum int64
	for _, f := range metadata.Files {
		sum += f.Length
	}
	if metadata.Length != sum || sum != 10 {
		t.Errorf("Length = %d, sum of entries = %d, want both 10", metadata.Length, sum)
	}

	want_files := []TorrentFile{
		{Path: "pkg/a.txt", Length: 3},
		{Path: "pkg/docs/b.txt", Length: 7},
	}
	if !reflect.DeepEqual(metadata.Files, want_files) {
		t.Errorf("Files = %v, want %v", metadata.Files, want_files)
	}
}

func TestEmptyFilesListIsLegal(t *testing.T) {
	metadata, err := ParseTorrentFile(wrap_info("d5:filesle4:name3:pkge"))
	if err != nil {
		t.Fatal(err)
	}
	if len(metadata.Files) != 0 {
		t.Errorf("Files = %v, want none", metadata.Files)
	}
	if metadata.Length != 0 {
		t.Errorf("Length = %d, want 0", metadata.Length)
	}
}

func TestDigestIgnoresInputKeyOrder(t *testing.T) {
	canonical := wrap_info(single_file_info)
	shuffled := wrap_info("d4:name5:a.txt12:piece lengthi16384e6:lengthi5ee")

	a, err := ParseTorrentFile(canonical)
	if err != nil {
		t.Fatal(err)
	}
	b, err := ParseTorrentFile(shuffled)
	if err != nil {
		t.Fatal(err)
	}

	if a.InfoHash != b.InfoHash {
		t.Errorf("digests differ: %s vs %s", a.HexHash(), b.HexHash())
	}
}

func TestTrackerDeduplication(t *testing.T) {
	input := []byte("d8:announce9:http://t113:announce-listll9:http://t1el9:http://t2ee4:info" + single_file_info + "e")
	metadata, err := ParseTorrentFile(input)
	if err != nil {
		t.Fatal(err)
	}

	want := []string{"http://t1", "http://t2"}
	if !reflect.DeepEqual(metadata.Announcers, want) {
		t.Errorf("Announcers = %v, want %v", metadata.Announcers, want)
	}
}

func TestCreationMetadata(t *testing.T) {
	input := []byte("d7:comment4:test10:created by4:mkbr13:creation datei1700000000e4:info" + single_file_info + "e")
	metadata, err := ParseTorrentFile(input)
	if err != nil {
		t.Fatal(err)
	}

	if !metadata.CreationDate.Equal(time.Unix(1700000000, 0)) {
		t.Errorf("CreationDate = %v", metadata.CreationDate)
	}
	if metadata.CreatedBy != "mkbr" {
		t.Errorf("CreatedBy = %q", metadata.CreatedBy)
	}
	if metadata.Comment != "test" {
		t.Errorf("Comment = %q", metadata.Comment)
	}
}

func TestStructureErrors(t *testing.T) {
	tests := []struct {
		name     string
		input    []byte
		want_key string
	}{
		{
			name:     "root is not a dictionary",
			input:    []byte("i1e"),
			want_key: "",
		},

		{
			name:     "missing info",
			input:    []byte("d8:announce9:http://t1e"),
			want_key: "info",
		},

		{
			name:     "info is not a dictionary",
			input:    []byte("d4:infoi1ee"),
			want_key: "info",
		},

		{
			name:     "missing both length and files",
			input:    wrap_info("d4:name5:a.txte"),
			want_key: "length",
		},

		{
			name:     "negative length",
			input:    wrap_info("d6:lengthi-5e4:name5:a.txte"),
			want_key: "length",
		},

		{
			name:     "files is not a list",
			input:    wrap_info("d5:filesi1e4:name3:pkge"),
			want_key: "files",
		},

		{
			name:     "file entry is not a dictionary",
			input:    wrap_info("d5:filesli1ee4:name3:pkge"),
			want_key: "files",
		},

		{
			name:     "file entry missing length",
			input:    wrap_info("d5:filesld4:pathl5:a.txteee4:name3:pkge"),
			want_key: "length",
		},

		{
			name:     "file entry missing path",
			input:    wrap_info("d5:filesld6:lengthi3eee4:name3:pkge"),
			want_key: "path",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseTorrentFile(tt.input)

			var structure_err *StructureError
			if !errors.As(err, &structure_err) {
				t.Fatalf("error = %v, want a *StructureError", err)
			}
			if structure_err.Key != tt.want_key {
				t.Errorf("Key = %q, want %q", structure_err.Key, tt.want_key)
			}
		})
	}
}

func TestDecodeErrorsPropagate(t *testing.T) {
	_, err := ParseTorrentFile([]byte("i-0e"))
	if !errors.Is(err, bencode.ErrMalformedInt) {
		t.Errorf("error = %v, want %v", err, bencode.ErrMalformedInt)
	}

	_, err = ParseTorrentFile([]byte("5:ab"))
	if !errors.Is(err, bencode.ErrTruncated) {
		t.Errorf("error = %v, want %v", err, bencode.ErrTruncated)
	}
}
