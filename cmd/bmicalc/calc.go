package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"bmicalc/internal/domain"
)

var (
	calcWeight string
	calcHeight string
	calcJSON   bool
)

var calcCmd = &cobra.Command{
	Use:   "calc",
	Short: "Calculate a BMI locally",
	Long: `Calculate a BMI without starting the server. Uses the same validation
and classification as the API.

EXAMPLES:

  bmicalc calc --weight 70 --height 1.75
  bmicalc calc -w 90 -H 1.70 --json`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runCalc(cmd.OutOrStdout(), calcWeight, calcHeight, calcJSON)
	},
}

func init() {
	calcCmd.Flags().StringVarP(&calcWeight, "weight", "w", "", "weight in kilograms")
	calcCmd.Flags().StringVarP(&calcHeight, "height", "H", "", "height in meters, e.g. 1.75")
	calcCmd.Flags().BoolVar(&calcJSON, "json", false, "print the result as JSON")
}

func runCalc(out io.Writer, weight, height string, asJSON bool) error {
	var w, h domain.RawValue
	if weight != "" {
		w = domain.Text(weight)
	}
	if height != "" {
		h = domain.Text(height)
	}

	m, err := domain.Validate(w, h)
	if err != nil {
		var de *domain.Error
		if errors.As(err, &de) {
			return errors.New(de.Message)
		}
		return err
	}
	rec := domain.NewRecord(m, time.Now())

	if asJSON {
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		return enc.Encode(rec)
	}

	fmt.Fprintf(out, "BMI %.1f  %s\n", rec.BMI, categoryColor(rec.Category).Sprint(rec.Category))
	fmt.Fprintln(out, color.New(color.Faint).Sprint(rec.Advice))
	return nil
}

func categoryColor(c domain.Category) *color.Color {
	switch c {
	case domain.NormalWeight:
		return color.New(color.FgGreen, color.Bold)
	case domain.Underweight, domain.Overweight:
		return color.New(color.FgYellow, color.Bold)
	default:
		return color.New(color.FgRed, color.Bold)
	}
}
