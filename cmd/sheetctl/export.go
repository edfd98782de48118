package main

import (
	"encoding/csv"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/stocksheet/stocksheet/internal/sheetdb"
)

var exportOut string

var exportCmd = &cobra.Command{
	Use:   "export <sheet>",
	Short: "Export a sheet to CSV",
	Long: `Export writes a sheet as CSV, header row first, in the sheet's
canonical column order. Output goes to stdout unless --out is given.`,
	Args: cobra.ExactArgs(1),
	RunE: runExport,
}

func init() {
	exportCmd.Flags().StringVar(&exportOut, "out", "", "output file (default: stdout)")
}

func runExport(cmd *cobra.Command, args []string) error {
	entity := args[0]

	headers, err := store.Headers(cmd.Context(), entity)
	if err != nil {
		return fmt.Errorf("read headers: %w", err)
	}
	records, err := store.List(cmd.Context(), entity, sheetdb.Query{})
	if err != nil {
		return fmt.Errorf("list %s: %w", entity, err)
	}

	out := os.Stdout
	if exportOut != "" {
		f, err := os.Create(exportOut)
		if err != nil {
			return fmt.Errorf("create %s: %w", exportOut, err)
		}
		defer f.Close()
		out = f
	}

	w := csv.NewWriter(out)
	if err := w.Write(headers); err != nil {
		return fmt.Errorf("write header: %w", err)
	}
	row := make([]string, len(headers))
	for _, rec := range records {
		for i, h := range headers {
			row[i] = rec[h]
		}
		if err := w.Write(row); err != nil {
			return fmt.Errorf("write row: %w", err)
		}
	}
	w.Flush()
	return w.Error()
}
