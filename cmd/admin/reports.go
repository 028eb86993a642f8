package main

import (
	"errors"
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"animal-control-admin/internal/domain/reports"
)

func reportsCommand(a *app) *cobra.Command {
	var limit int

	cmd := &cobra.Command{
		Use:   "reports",
		Short: "Show the export history (needs db_dsn)",
		RunE: func(cmd *cobra.Command, args []string) error {
			if a.cfg.DBDSN == "" {
				return errors.New("the export history is only kept with db_dsn set")
			}
			svc := reports.NewService(a.reportRepo(cmd.Context()))
			items, err := svc.List(cmd.Context(), limit)
			if err != nil {
				return err
			}
			if len(items) == 0 {
				fmt.Fprintln(a.out, "No exports yet.")
				return nil
			}

			tw := tabwriter.NewWriter(a.out, 0, 4, 2, ' ', 0)
			fmt.Fprintln(tw, "GENERATED\tFILE\tSELECTOR\tROWS\tBY")
			for _, r := range items {
				fmt.Fprintf(tw, "%s\t%s\t%s\t%d\t%s\n",
					r.GeneratedAt.Format("2006-01-02 15:04"), r.Filename, r.Selector, r.Rows, r.GeneratedBy)
			}
			return tw.Flush()
		},
	}

	cmd.Flags().IntVar(&limit, "limit", 20, "Max rows")
	return cmd
}
