package main

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"animal-control-admin/internal/domain/animalcontrol"
	"animal-control-admin/internal/domain/reports"
	"animal-control-admin/internal/export"
)

func exportCommand(a *app) *cobra.Command {
	var (
		selector string
		date     string
		tab      string
		search   string
		format   string
		outDir   string
	)

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Write a PDF (or text) report of animal control records",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := a.requireSession(); err != nil {
				return err
			}
			ctx := a.ctx(cmd.Context())

			store := a.animalControlStore()
			if err := store.Load(ctx); err != nil {
				return err
			}

			ex := export.New(export.Config{
				Recorder: reports.NewService(a.reportRepo(ctx)),
				Metrics:  a.metrics,
				Log:      a.log,
			})

			var buf bytes.Buffer
			res, err := ex.Export(ctx, &buf, store.Records(), export.Options{
				Selector: export.Selector(strings.TrimSpace(selector)),
				Date:     date,
				Tab:      animalcontrol.RecordType(tab),
				Search:   search,
				Format:   export.Format(format),
			})
			if err != nil {
				return err
			}

			dir := outDir
			if dir == "" {
				dir = a.cfg.ExportDir
			}
			if err := os.MkdirAll(dir, 0o755); err != nil {
				return err
			}
			path := filepath.Join(dir, res.Filename)
			if err := os.WriteFile(path, buf.Bytes(), 0o644); err != nil {
				return fmt.Errorf("write %s: %w", path, err)
			}

			fmt.Fprintf(a.out, "Wrote %s (%d records)\n", path, res.Rows)
			return nil
		},
	}

	cmd.Flags().StringVar(&selector, "selector", string(export.SelectorCurrent), "Records: current, today, date, all")
	cmd.Flags().StringVar(&date, "date", "", "Day for --selector=date (YYYY-MM-DD)")
	cmd.Flags().StringVar(&tab, "tab", string(animalcontrol.RecordTypeCatch), "Tab for --selector=current")
	cmd.Flags().StringVar(&search, "search", "", "Search for --selector=current")
	cmd.Flags().StringVar(&format, "format", string(export.FormatPDF), "Format: pdf, txt")
	cmd.Flags().StringVarP(&outDir, "out", "o", "", "Output directory (default export_dir)")
	return cmd
}
