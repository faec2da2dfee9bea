// Package main provides the CLI entry point for excelcli.
package main

import (
	"context"
	"os"
	"os/signal"

	"github.com/spf13/cobra"
)

var version = "dev"

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	err := newRootCmd().ExecuteContext(ctx)
	stop()
	if err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "excelcli",
		Short: "Extract row and column slices from spreadsheets into CSV",
		Long: `excelcli reads one named sheet from every spreadsheet matched by a glob
pattern (xlsx, xls, csv) and writes a slice of each into a single CSV file.`,
		Version:      version,
		SilenceUsage: true,
	}

	rootCmd.AddCommand(newExtractRowCmd())
	rootCmd.AddCommand(newExtractColCmd())
	rootCmd.AddCommand(newSheetsCmd())

	return rootCmd
}
