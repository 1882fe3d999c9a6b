package main

import (
	"context"
	"os"
	"runtime/debug"

	"github.com/spf13/cobra"

	decode_line "github.com/walteh/semlight/cmd/semlight/decode-line"
	export_theme "github.com/walteh/semlight/cmd/semlight/export-theme"
	"gitlab.com/tozd/go/errors"
)

func main() {
	if err := run(); err != nil {
		println(err.Error())
		os.Exit(1)
	}
}

func run() error {
	rootCmd := &cobra.Command{
		Use:   "semlight",
		Short: "tooling around the incremental semantic highlighting engine",
	}

	info, ok := debug.ReadBuildInfo()
	if !ok {
		rootCmd.Version = "unknown"
	} else {
		rootCmd.Version = info.Main.Version
	}

	cmdVersion := &cobra.Command{
		Use: "raw-version",
		Run: func(cmdz *cobra.Command, args []string) {
			cmdz.Println(rootCmd.Version)
		},
		Hidden: true,
	}

	rootCmd.AddCommand(cmdVersion)

	rootCmd.AddCommand(export_theme.NewExportThemeCommand())
	rootCmd.AddCommand(decode_line.NewDecodeLineCommand())

	if err := rootCmd.ExecuteContext(context.Background()); err != nil {
		return errors.Errorf("failed to execute command: %w", err)
	}

	return nil
}
