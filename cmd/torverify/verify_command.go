package main

import (
	"fmt"
	"os"

	"github.com/dustin/go-humanize"
	"github.com/mitchellh/colorstring"
	"github.com/schollz/progressbar/v3"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"torverify/internal/torrent_files"
	"torverify/internal/verify"
)

func new_verify_command() *cobra.Command {
	var base_dir string
	var parallel int

	cmd := &cobra.Command{
		Use:   "verify <torrent-file>",
		Short: "Check that a torrent's files exist locally with the right sizes",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			metadata, err := load_torrent(args[0])
			if err != nil {
				return err
			}
			return run_verify(metadata, base_dir, parallel)
		},
	}

	cmd.Flags().StringVarP(&base_dir, "base-dir", "d", ".", "directory the torrent's files live under")
	cmd.Flags().IntVarP(&parallel, "parallel", "p", 8, "max concurrent file checks")
	return cmd
}

func run_verify(metadata torrent_files.TorrentMetadata, base_dir string, parallel int) error {
	vprintfln("checking %d file(s) under %s", len(metadata.Files), base_dir)

	// progress only makes sense on an interactive terminal with enough entries
	var progress func()
	var bar *progressbar.ProgressBar
	if !verbose && len(metadata.Files) > 1 && term.IsTerminal(int(os.Stdout.Fd())) {
		bar = progressbar.NewOptions(len(metadata.Files),
			progressbar.OptionSetDescription("checking"),
			progressbar.OptionClearOnFinish(),
		)
		progress = func() { bar.Add(1) }
	}

	report := verify.CheckFiles(metadata, base_dir, parallel, progress)
	if bar != nil {
		bar.Finish()
	}

	print_report(report)

	if !report.AllValid() {
		problems := report.Total() - len(report.Valid)
		return fmt.Errorf("%d of %d file(s) failed verification", problems, report.Total())
	}
	return nil
}

func print_report(report verify.Report) {
	if len(report.Valid) > 0 {
		colorstring.Printf("[green]found %d file(s) with the correct size[reset]\n", len(report.Valid))
	}

	if len(report.Missing) > 0 {
		colorstring.Printf("[red]missing %d file(s):[reset]\n", len(report.Missing))
		for _, f := range report.Missing {
			fmt.Printf("  - %s (expected %s)\n", f.Path, humanize.IBytes(uint64(f.Expected)))
		}
	}

	if len(report.SizeMismatch) > 0 {
		colorstring.Printf("[yellow]%d file(s) with a size mismatch:[reset]\n", len(report.SizeMismatch))
		rows := make([][]string, len(report.SizeMismatch))
		for i, f := range report.SizeMismatch {
			rows[i] = []string{
				f.Path,
				humanize.IBytes(uint64(f.Expected)),
				humanize.IBytes(uint64(f.Actual)),
			}
		}
		fmt.Println(render_table(
			[]string{"path", "expected", "actual"},
			rows,
			[]column_alignment{align_left, align_right, align_right},
		))
	}

	if len(report.Failed) > 0 {
		colorstring.Printf("[red]%d file(s) could not be checked:[reset]\n", len(report.Failed))
		for _, f := range report.Failed {
			fmt.Printf("  - %s: %v\n", f.Path, f.Err)
		}
	}
}
