// Package render writes rewards reports for people and other programs.
package render

import (
	"encoding/json"
	"fmt"
	"io"
	"text/tabwriter"

	"customer-rewards/internal/domain"
)

// JSON writes the report as indented JSON.
func JSON(w io.Writer, report *domain.RewardsReport) error {
	output, err := json.MarshalIndent(report, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to generate JSON report: %w", err)
	}
	if _, err := fmt.Fprintln(w, string(output)); err != nil {
		return fmt.Errorf("failed to write JSON report: %w", err)
	}
	return nil
}

// Table writes the monthly and total tables as aligned plain text.
func Table(w io.Writer, report *domain.RewardsReport) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)

	fmt.Fprintf(tw, "Customer Rewards (%s to %s, reference %s)\n\n", report.Window.StartMonth, report.Window.EndMonth, report.ReferenceDate)

	if len(report.MonthlySummaries) == 0 {
		fmt.Fprintln(tw, "No transactions found")
		return tw.Flush()
	}

	fmt.Fprintln(tw, "Monthly reward points")
	fmt.Fprintln(tw, "Customer\tMonth\tPoints\t")
	for _, s := range report.MonthlySummaries {
		fmt.Fprintf(tw, "%s\t%s\t%d\t\n", s.CustomerName, s.Month, s.Points)
	}

	fmt.Fprintln(tw)
	fmt.Fprintln(tw, "Customer total points")
	fmt.Fprintln(tw, "Customer\tTotal points\t")
	for _, total := range report.CustomerTotals {
		fmt.Fprintf(tw, "%s\t%d\t\n", total.CustomerName, total.TotalPoints)
	}

	return tw.Flush()
}

// Customers writes one customer per line as id and name.
func Customers(w io.Writer, customers []domain.Customer) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tName\t")
	for _, c := range customers {
		fmt.Fprintf(tw, "%d\t%s\t\n", c.ID, c.Name)
	}
	return tw.Flush()
}
