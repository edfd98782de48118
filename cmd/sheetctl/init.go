package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/stocksheet/stocksheet/internal/sheetdb"
)

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Provision every sheet with its header row",
	Long: `Init creates the workbook file when missing and provisions every
registered sheet with its canonical header row. Running init against an
already provisioned workbook changes nothing.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := store.InitAll(cmd.Context()); err != nil {
			return fmt.Errorf("provision workbook: %w", err)
		}
		fmt.Printf("workbook %s ready (%s)\n", store.Path(), strings.Join(sheetdb.Entities(), ", "))
		return nil
	},
}
