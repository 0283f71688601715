package main

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	adapthttp "bmicalc/internal/adapter/http"
)

var routesCmd = &cobra.Command{
	Use:   "routes",
	Short: "List the API endpoints",
	RunE: func(cmd *cobra.Command, args []string) error {
		bold := color.New(color.Bold)
		for _, r := range adapthttp.Routes() {
			fmt.Fprintf(cmd.OutOrStdout(), "%s %s\n", bold.Sprintf("%-6s", r.Method), r.Path)
		}
		return nil
	},
}
