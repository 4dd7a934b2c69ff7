package main

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/umithief/motovibe6/internal/domain/entity"
	"github.com/umithief/motovibe6/internal/storefront"
)

func dashboardCmd(sh *shell) *cobra.Command {
	var rangeName string

	cmd := &cobra.Command{
		Use:   "dashboard",
		Short: "Show the analytics dashboard (admin)",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := sh.requireSession(); err != nil {
				return err
			}

			r, err := entity.ParseTimeRange(rangeName)
			if err != nil {
				return err
			}
			sh.app.Navigate(storefront.ViewAdmin)

			d, err := sh.backend.Dashboard(cmd.Context(), sh.app.Token(), r)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Range %s\n", r)
			fmt.Fprintf(out, "  Product views:     %d\n", d.TotalProductViews)
			fmt.Fprintf(out, "  Added to cart:     %d\n", d.TotalAddToCart)
			fmt.Fprintf(out, "  Checkouts started: %d\n", d.TotalCheckouts)
			fmt.Fprintf(out, "  Avg. session:      %ds\n", d.AvgSessionDuration)

			printTop(cmd, "Most viewed", d.TopViewedProducts)
			printTop(cmd, "Most added", d.TopAddedProducts)

			w := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
			fmt.Fprintln(w, "\nTIME\tEVENTS")
			for _, p := range d.ActivityTimeline {
				fmt.Fprintf(w, "%s\t%d\n", p.Label, p.Value)
			}

			return w.Flush()
		},
	}

	cmd.Flags().StringVarP(&rangeName, "range", "r", string(entity.Range7d), "24h, 7d or 30d")

	return cmd
}

func printTop(cmd *cobra.Command, title string, counts []entity.ProductCount) {
	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "\n%s\n", title)
	for i, c := range counts {
		fmt.Fprintf(out, "  %d. %s (%d)\n", i+1, c.Name, c.Count)
	}
}

func statsCmd(sh *shell) *cobra.Command {
	return &cobra.Command{
		Use:   "stats",
		Short: "Show visitor counters",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			stats, err := sh.backend.VisitorStats(cmd.Context())
			if err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Total visits: %d\nToday:        %d\n", stats.TotalVisits, stats.TodayVisits)

			return nil
		},
	}
}

func logsCmd(sh *shell) *cobra.Command {
	var limit int

	cmd := &cobra.Command{
		Use:   "logs",
		Short: "Show recent activity (admin)",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := sh.requireSession(); err != nil {
				return err
			}

			entries, err := sh.backend.ActivityLogs(cmd.Context(), sh.app.Token(), limit)
			if err != nil {
				return err
			}

			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintln(w, "TIME\tTYPE\tEVENT\tDETAILS")
			for _, e := range entries {
				fmt.Fprintf(w, "%s\t%s\t%s\t%s\n", e.Timestamp.Format("02.01.2006 15:04"), e.Type, e.Event, e.Details)
			}

			return w.Flush()
		},
	}

	cmd.Flags().IntVarP(&limit, "limit", "n", 50, "Number of entries")

	return cmd
}
