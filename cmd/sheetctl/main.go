// Package main provides the sheetctl admin CLI for the stocksheet workbook.
package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/stocksheet/stocksheet/internal/sheetdb"
)

var (
	// workbookPath is set by the --workbook flag, falling back to the
	// WORKBOOK_PATH environment variable.
	workbookPath string

	// store is the shared workbook store, initialized on startup.
	store *sheetdb.Store
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "sheetctl",
	Short: "sheetctl administers the stocksheet workbook",
	Long: `sheetctl is the admin companion to the stocksheet server. It provisions
the workbook, lists sheet contents, and exports sheets to CSV without
going through the HTTP API.`,
	PersistentPreRunE: initStore,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&workbookPath, "workbook", "", "workbook path (default: $WORKBOOK_PATH or data/stocksheet.xlsx)")

	rootCmd.AddCommand(initCmd)
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(exportCmd)
}

// initStore resolves the workbook path and opens the store.
func initStore(cmd *cobra.Command, args []string) error {
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("load .env: %w", err)
	}
	path := workbookPath
	if path == "" {
		path = os.Getenv("WORKBOOK_PATH")
	}
	if path == "" {
		path = "data/stocksheet.xlsx"
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, nil))
	store = sheetdb.NewStore(path, logger)
	return nil
}
