package main

import (
	"github.com/spf13/cobra"
	"github.com/zentall/excelcli/pkg/excelcli"
)

// cellFormatNote explains how cell values are rendered per input format.
const cellFormatNote = `
Cell values:
  xlsx  numbers are written as plain decimals (2.5, 1000000), booleans as
        true/false; dates and formula errors are written as empty fields.
  xls   cells are written exactly as the xls reader formats them, so dates
        appear as text and numbers may differ from the xlsx rendering.
  csv   fields are copied verbatim.
`

// commonFlags are shared by extract-row and extract-col.
type commonFlags struct {
	sheet        string
	headers      string
	output       string
	password     string
	withFilename bool
	jobs         int
}

func (f *commonFlags) register(cmd *cobra.Command) {
	flags := cmd.Flags()
	flags.StringVar(&f.sheet, "sheet", excelcli.DefaultSheet, "Sheet to read from every file")
	flags.StringVar(&f.headers, "headers", "", "CSV header fields, one per extracted value (e.g., name,sales,dept)")
	flags.StringVarP(&f.output, "output", "o", "", "Output CSV file")
	flags.StringVar(&f.password, "password", "", "Password for protected xlsx files")
	flags.BoolVar(&f.withFilename, "with-filename", false, "Prefix every record with the source file name")
	flags.IntVarP(&f.jobs, "jobs", "j", 1, "Number of files read concurrently (output order is preserved)")
	_ = cmd.MarkFlagRequired("headers")
	_ = cmd.MarkFlagRequired("output")
}

func (f *commonFlags) options(cmd *cobra.Command, pattern string) excelcli.Options {
	return excelcli.Options{
		Pattern:      pattern,
		Sheet:        f.sheet,
		Headers:      excelcli.ParseHeaders(f.headers),
		Output:       f.output,
		WithFilename: f.withFilename,
		Password:     f.password,
		Jobs:         f.jobs,
		Progress:     cmd.OutOrStdout(),
	}
}

func newExtractRowCmd() *cobra.Command {
	var (
		common    commonFlags
		rowRange  string
		columns   string
		filterCol string
	)

	cmd := &cobra.Command{
		Use:   "extract-row <file_pattern>",
		Short: "Extract a row range at selected columns",
		Long: `Extract rows start..end of one sheet, at the listed columns, from every file
matched by the pattern into a single CSV file.
` + cellFormatNote,
		Example: `  excelcli extract-row './reports/*.xlsx' --range 5:20 --columns B,D,E \
    --headers name,sales,dept --filter-col B --output sales.csv --with-filename`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			start, end, err := excelcli.ParseRowRange(rowRange)
			if err != nil {
				return err
			}
			cols, err := excelcli.ParseColumns(columns)
			if err != nil {
				return err
			}

			_, err = excelcli.ExtractRows(cmd.Context(), excelcli.RowRequest{
				Options:      common.options(cmd, args[0]),
				RowStart:     start,
				RowEnd:       end,
				Columns:      cols,
				FilterColumn: filterCol,
			})
			return err
		},
	}

	common.register(cmd)
	cmd.Flags().StringVar(&rowRange, "range", "", "Inclusive row range (e.g., 5:20)")
	cmd.Flags().StringVar(&columns, "columns", "", "Columns to extract (e.g., B,D,E)")
	cmd.Flags().StringVar(&filterCol, "filter-col", "", "Keep only rows whose cell in this column is not empty")
	_ = cmd.MarkFlagRequired("range")
	_ = cmd.MarkFlagRequired("columns")

	return cmd
}

func newExtractColCmd() *cobra.Command {
	var (
		common    commonFlags
		colRange  string
		rows      string
		filterRow string
	)

	cmd := &cobra.Command{
		Use:   "extract-col <file_pattern>",
		Short: "Extract a column range at selected rows",
		Long: `Extract the cells of a column range, at the listed rows, from one sheet of
every file matched by the pattern into a single CSV file.
` + cellFormatNote,
		Example: `  excelcli extract-col './reports/*.xlsx' --col-range B:E --rows 3,5,7 \
    --headers tokyo,osaka,nagoya --output cities.csv`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			start, end, err := excelcli.ParseColumnRange(colRange)
			if err != nil {
				return err
			}
			rowNums, err := excelcli.ParseRows(rows)
			if err != nil {
				return err
			}
			filter, err := excelcli.ParseFilterRow(filterRow)
			if err != nil {
				return err
			}

			_, err = excelcli.ExtractColumns(cmd.Context(), excelcli.ColumnRequest{
				Options:   common.options(cmd, args[0]),
				ColStart:  start,
				ColEnd:    end,
				Rows:      rowNums,
				FilterRow: filter,
			})
			return err
		},
	}

	common.register(cmd)
	cmd.Flags().StringVar(&colRange, "col-range", "", "Inclusive column range (e.g., B:E)")
	cmd.Flags().StringVar(&rows, "rows", "", "Row numbers to extract (e.g., 3,5,7)")
	cmd.Flags().StringVar(&filterRow, "filter-row", "", "Keep only this row, and only if it has a non-empty value")
	_ = cmd.MarkFlagRequired("col-range")
	_ = cmd.MarkFlagRequired("rows")

	return cmd
}
