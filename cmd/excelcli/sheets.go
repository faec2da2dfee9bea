package main

import (
	"encoding/json"
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"
	"github.com/zentall/excelcli/pkg/excelcli"
)

func newSheetsCmd() *cobra.Command {
	var (
		password   string
		jsonOutput bool
		pretty     bool
	)

	cmd := &cobra.Command{
		Use:   "sheets <file_pattern>",
		Short: "List the sheets and used ranges of matched files",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			infos, err := excelcli.ListSheets(cmd.Context(), args[0], password)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if jsonOutput {
				enc := json.NewEncoder(out)
				if pretty {
					enc.SetIndent("", "  ")
				}
				return enc.Encode(infos)
			}

			tw := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
			fmt.Fprintln(tw, "FILE\tSHEET\tRANGE\tROWS")
			for _, info := range infos {
				fmt.Fprintf(tw, "%s\t%s\t%s\t%d\n", info.File, info.Name, info.UsedRange, info.Rows)
			}
			return tw.Flush()
		},
	}

	cmd.Flags().StringVar(&password, "password", "", "Password for protected xlsx files")
	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Output JSON instead of a table")
	cmd.Flags().BoolVar(&pretty, "pretty", false, "Pretty-print JSON output")

	return cmd
}
