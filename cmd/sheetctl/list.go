package main

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/stocksheet/stocksheet/internal/sheetdb"
)

var (
	listLimit  int
	listOffset int
)

var listCmd = &cobra.Command{
	Use:   "list <sheet> [filter...]",
	Short: "List records with optional filters",
	Long: `List prints the records of a sheet as JSON. Filters are key=value
pairs compared by exact string equality and ANDed together.

Example:
  sheetctl list Products
  sheetctl list Products category=Grocery
  sheetctl list Sales paymentMethod=cash --limit 10`,
	Args: cobra.MinimumNArgs(1),
	RunE: runList,
}

func init() {
	listCmd.Flags().IntVar(&listLimit, "limit", 0, "maximum records to print (0 = all)")
	listCmd.Flags().IntVar(&listOffset, "offset", 0, "records to skip")
}

func runList(cmd *cobra.Command, args []string) error {
	entity := args[0]

	filters := make(map[string]string, len(args)-1)
	for _, arg := range args[1:] {
		parts := strings.SplitN(arg, "=", 2)
		if len(parts) != 2 {
			return fmt.Errorf("invalid filter %q (expected key=value)", arg)
		}
		filters[parts[0]] = parts[1]
	}

	records, err := store.List(cmd.Context(), entity, sheetdb.Query{
		Filters: filters,
		Limit:   listLimit,
		Offset:  listOffset,
	})
	if err != nil {
		return fmt.Errorf("list %s: %w", entity, err)
	}

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(records)
}
