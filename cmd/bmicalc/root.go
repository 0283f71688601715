package main

import (
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "bmicalc",
	Short: "Body Mass Index calculator and JSON API",
	Long: `bmicalc computes Body Mass Index from a weight in kilograms and a height
in meters, and serves the same calculation over a JSON API with an in-memory
history.

QUICK START:

  $ bmicalc calc --weight 70 --height 1.75   # One-off calculation
  $ bmicalc serve                             # Start the API on :3000
  $ bmicalc serve --config bmicalc.yaml       # Start with a config file
  $ bmicalc routes                            # List API endpoints

History lives in process memory only and is lost on restart.`,
	SilenceUsage: true,
}

func init() {
	rootCmd.AddCommand(serveCmd, calcCmd, routesCmd)
}
