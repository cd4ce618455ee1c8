package torrent_files

import (
	"net/url"
	"strings"
)

const max_magnet_trackers = 5

// MagnetLink assembles a magnet URI from the info hash, display name and up to five
// trackers. Consumes only already-extracted fields, so it never fails.
func (m TorrentMetadata) MagnetLink() string {
	var link strings.Builder
	link.WriteString("magnet:?xt=urn:btih:")
	link.WriteString(m.HexHash())

	name := m.Name
	if name == "" && len(m.Files) > 0 {
		name = m.Files[0].Path
	}
	if name == "" {
		name = "unknown"
	}
	link.WriteString("&dn=")
	link.WriteString(url.QueryEscape(name))

	trackers := m.Announcers
	if len(trackers) > max_magnet_trackers {
		trackers = trackers[:max_magnet_trackers]
	}
	for _, tracker := range trackers {
		link.WriteString("&tr=")
		link.WriteString(url.QueryEscape(tracker))
	}

	return link.String()
}
