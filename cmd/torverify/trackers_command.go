package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

func new_trackers_command() *cobra.Command {
	return &cobra.Command{
		Use:   "trackers <torrent-file>",
		Short: "List a torrent's trackers, primary announce first",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			metadata, err := load_torrent(args[0])
			if err != nil {
				return err
			}
			for _, tracker := range metadata.Announcers {
				fmt.Println(tracker)
			}
			return nil
		},
	}
}
