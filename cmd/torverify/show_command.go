package main

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/mitchellh/colorstring"
	"github.com/spf13/cobra"

	"torverify/internal/torrent_files"
)

const max_shown_trackers = 10

func new_show_command() *cobra.Command {
	return &cobra.Command{
		Use:   "show <torrent-file>",
		Short: "Print a summary of a torrent file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			metadata, err := load_torrent(args[0])
			if err != nil {
				return err
			}
			print_summary(metadata)
			return nil
		},
	}
}

func print_summary(metadata torrent_files.TorrentMetadata) {
	colorstring.Printf("[bold]info hash:[reset] %s\n", metadata.HexHash())
	if metadata.Name != "" {
		fmt.Printf("name: %s\n", metadata.Name)
	}
	fmt.Printf("files: %d\n", len(metadata.Files))
	fmt.Printf("total size: %s\n", humanize.IBytes(uint64(metadata.Length)))

	if len(metadata.Files) > 0 {
		rows := make([][]string, len(metadata.Files))
		for i, f := range metadata.Files {
			rows[i] = []string{strconv.Itoa(i + 1), f.Path, humanize.IBytes(uint64(f.Length))}
		}
		fmt.Println(render_table(
			[]string{"#", "path", "size"},
			rows,
			[]column_alignment{align_right, align_left, align_right},
		))
	}

	if len(metadata.Announcers) > 0 {
		colorstring.Printf("[bold]trackers[reset] (%d):\n", len(metadata.Announcers))
		shown := metadata.Announcers
		if len(shown) > max_shown_trackers {
			shown = shown[:max_shown_trackers]
		}
		for i, tracker := range shown {
			fmt.Printf("  %2d. %s\n", i+1, tracker)
		}
		if rest := len(metadata.Announcers) - len(shown); rest > 0 {
			fmt.Printf("  ... and %d more\n", rest)
		}
	}

	if !metadata.CreationDate.IsZero() {
		fmt.Printf("created: %s\n", metadata.CreationDate.Format(time.RFC1123))
	}
	if metadata.CreatedBy != "" {
		fmt.Printf("created by: %s\n", metadata.CreatedBy)
	}
	if strings.TrimSpace(metadata.Comment) != "" {
		fmt.Printf("comment: %s\n", metadata.Comment)
	}

	colorstring.Println("[bold]magnet:[reset]")
	fmt.Println(metadata.MagnetLink())
}
