package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"torverify/internal/torrent_files"
)

var verbose bool

func vprintfln(format string, a ...any) {
	if verbose {
		fmt.Printf(format+"\n", a...)
	}
}

func main() {
	cmd := new_root_command()
	if err := cmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func new_root_command() *cobra.Command {
	root_cmd := &cobra.Command{
		Use:           "torverify",
		Short:         "Inspect .torrent files and verify their files against local storage",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	root_cmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose output")

	root_cmd.AddCommand(new_show_command())
	root_cmd.AddCommand(new_verify_command())
	root_cmd.AddCommand(new_magnet_command())
	root_cmd.AddCommand(new_trackers_command())

	return root_cmd
}

// load_torrent reads and parses a torrent file. A file that can't be read is a
// single load failure, reported before any decoding happens.
func load_torrent(torrent_file_path string) (torrent_files.TorrentMetadata, error) {
	var nil_result torrent_files.TorrentMetadata

	d, err := os.ReadFile(torrent_file_path)
	if err != nil {
		return nil_result, fmt.Errorf("unable to read file at path %s: %v", torrent_file_path, err)
	}

	metadata, err := torrent_files.ParseTorrentFile(d)
	if err != nil {
		return nil_result, fmt.Errorf("unable to parse torrent file: %v", err)
	}

	vprintfln("parsed torrent successfully: %d file(s), %d tracker(s)", len(metadata.Files), len(metadata.Announcers))
	return metadata, nil
}
