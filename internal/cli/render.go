package cli

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/carwise/carwise/internal/model"
	"github.com/carwise/carwise/internal/scoring"
)

// RenderComparison writes a full comparison report to w.
func RenderComparison(w io.Writer, c *model.Comparison) error {
	if c == nil {
		_, err := fmt.Fprintln(w, WarningStyle.Render("Nothing to compare: select two vehicles first."))
		return err
	}

	title := fmt.Sprintf("%s %s  vs  %s", CarIcon, c.Left.DisplayName(), c.Right.DisplayName())
	if _, err := fmt.Fprintln(w, TitleStyle.Render(title)); err != nil {
		return err
	}

	if err := renderRows(w, c); err != nil {
		return err
	}
	if err := renderReports(w, c); err != nil {
		return err
	}
	return renderRecommendation(w, c)
}

func renderRows(w io.Writer, c *model.Comparison) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)

	fmt.Fprintf(tw, "%s\t%s\t%s\n",
		BoldStyle.Render("Attribute"),
		BoldStyle.Render(c.Left.DisplayName()),
		BoldStyle.Render(c.Right.DisplayName()))
	fmt.Fprintf(tw, "%s\t%s\t%s\n",
		strings.Repeat("-", 12), strings.Repeat("-", 20), strings.Repeat("-", 20))

	for _, row := range c.Rows {
		left := formatValue(row.Left)
		right := formatValue(row.Right)
		switch row.Better {
		case model.SideLeft:
			left = WinnerStyle.Render(left + " " + SuccessIcon)
		case model.SideRight:
			right = WinnerStyle.Render(right + " " + SuccessIcon)
		}
		fmt.Fprintf(tw, "%s\t%s\t%s\n", row.Label, left, right)
	}

	return tw.Flush()
}

func renderReports(w io.Writer, c *model.Comparison) error {
	sides := []struct {
		name   string
		report model.SideReport
	}{
		{c.Left.DisplayName(), c.LeftReport},
		{c.Right.DisplayName(), c.RightReport},
	}

	for _, side := range sides {
		if _, err := fmt.Fprintf(w, "\n%s\n", SubtitleStyle.Render(side.name)); err != nil {
			return err
		}
		for _, pro := range side.report.Pros {
			fmt.Fprintf(w, "  %s %s\n", SuccessStyle.Render("+"), pro)
		}
		for _, con := range side.report.Cons {
			fmt.Fprintf(w, "  %s %s\n", ErrorStyle.Render("-"), con)
		}
		if len(side.report.UseCases) > 0 {
			fmt.Fprintf(w, "  %s %s\n", InfoStyle.Render("Best for:"),
				strings.Join(side.report.UseCases, ", "))
		}
	}
	return nil
}

func renderRecommendation(w io.Writer, c *model.Comparison) error {
	var banner string
	if recommended := c.Recommendation(); recommended != nil {
		banner = fmt.Sprintf("%s Recommended: %s (%s confidence)",
			TrophyIcon, recommended.DisplayName(), c.Confidence)
	} else {
		banner = "These vehicles are evenly matched."
	}
	_, err := fmt.Fprintf(w, "\n%s\n", BoxStyle.Render(banner))
	return err
}

// RenderScores writes a single-vehicle score breakdown to w.
func RenderScores(w io.Writer, v *model.Vehicle, value, environmental float64, cost *scoring.CostBreakdown) error {
	if v == nil {
		_, err := fmt.Fprintln(w, WarningStyle.Render("No vehicle selected."))
		return err
	}

	if _, err := fmt.Fprintln(w, TitleStyle.Render(CarIcon+" "+v.DisplayName())); err != nil {
		return err
	}

	fmt.Fprintf(w, "%s Value score:          %.1f / 100\n", ChartIcon, value)
	fmt.Fprintf(w, "%s Environmental score:  %.1f / 100\n", LeafIcon, environmental)

	if cost == nil {
		return nil
	}

	fmt.Fprintf(w, "%s 5-year ownership cost (assuming %d miles/year):\n", MoneyIcon, cost.AnnualMileage)

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintf(tw, "  Depreciation\t%s\n", formatMoney(cost.Depreciation))
	fmt.Fprintf(tw, "  Maintenance\t%s\n", formatMoney(cost.Maintenance))
	fmt.Fprintf(tw, "  Insurance\t%s\n", formatMoney(cost.Insurance))
	fmt.Fprintf(tw, "  Fuel\t%s\n", formatMoney(cost.Fuel))
	fmt.Fprintf(tw, "  Registration\t%s\n", formatMoney(cost.Registration))
	fmt.Fprintf(tw, "  %s\t%s\n", BoldStyle.Render("Total"), BoldStyle.Render(formatMoney(cost.Total)))
	return tw.Flush()
}

func formatValue(v any) string {
	switch val := v.(type) {
	case float64:
		if val == float64(int64(val)) {
			return fmt.Sprintf("%.0f", val)
		}
		return fmt.Sprintf("%.1f", val)
	case string:
		if val == "" {
			return SubtleStyle.Render("(unknown)")
		}
		return val
	default:
		return fmt.Sprintf("%v", v)
	}
}

func formatMoney(amount float64) string {
	return fmt.Sprintf("$%.0f", amount)
}
