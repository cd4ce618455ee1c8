package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

func new_magnet_command() *cobra.Command {
	return &cobra.Command{
		Use:   "magnet <torrent-file>",
		Short: "Print a magnet link for a torrent file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			metadata, err := load_torrent(args[0])
			if err != nil {
				return err
			}
			fmt.Println(metadata.MagnetLink())
			return nil
		},
	}
}
