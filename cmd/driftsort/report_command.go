package main

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"driftsort/internal/catalog"
)

func newReportCommand(ctx *commandContext) *cobra.Command {
	var jsonOutput bool
	var runID int64

	cmd := &cobra.Command{
		Use:   "report",
		Short: "Summarize the most recent recorded scan",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}
			if cfg.Paths.CatalogPath == "" {
				return errors.New("catalog is disabled; run a scan with --json for direct output instead")
			}

			store, err := catalog.Open(cfg)
			if err != nil {
				return fmt.Errorf("open catalog: %w", err)
			}
			defer store.Close()

			run, err := resolveRun(cmd, store, runID)
			if err != nil {
				return err
			}
			if run == nil {
				fmt.Fprintln(cmd.OutOrStdout(), "Catalog is empty; run `driftsort scan` first")
				return nil
			}

			groups, err := store.GroupsByRun(cmd.Context(), run.ID)
			if err != nil {
				return fmt.Errorf("load groups: %w", err)
			}

			if jsonOutput {
				return writeJSON(cmd, reportOutput{Run: run, Groups: groups})
			}

			renderReport(cmd, run, groups)
			return nil
		},
	}

	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Emit the report as JSON")
	cmd.Flags().Int64Var(&runID, "run", 0, "Report a specific run instead of the latest")
	return cmd
}

type reportOutput struct {
	Run    *catalog.Run           `json:"run"`
	Groups []*catalog.GroupRecord `json:"groups"`
}

func resolveRun(cmd *cobra.Command, store *catalog.Store, runID int64) (*catalog.Run, error) {
	if runID <= 0 {
		return store.LatestRun(cmd.Context())
	}
	runs, err := store.Runs(cmd.Context(), 0)
	if err != nil {
		return nil, fmt.Errorf("load runs: %w", err)
	}
	for _, run := range runs {
		if run.ID == runID {
			return run, nil
		}
	}
	return nil, fmt.Errorf("run %d not found in catalog", runID)
}

func renderReport(cmd *cobra.Command, run *catalog.Run, groups []*catalog.GroupRecord) {
	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "Run %d over %q started %s\n", run.ID, run.RootID, run.StartedAt.Format("2006-01-02 15:04:05"))
	fmt.Fprintf(out, "Files scanned: %d, sessions: %d, rejected: %d\n",
		run.FilesScanned, run.GroupsValid, run.GroupsRejected)

	if len(groups) == 0 {
		return
	}

	rows := make([][]string, 0, len(groups))
	for _, group := range groups {
		week := "-"
		if group.Week != nil {
			week = strconv.Itoa(*group.Week)
		}
		date := group.Date
		if date == "" {
			date = "-"
		}
		status := "ok"
		if !group.Valid {
			status = strings.Join(group.RejectReasons, "; ")
		}
		rows = append(rows, []string{
			date,
			week,
			strings.Join(group.Participants, ", "),
			strconv.Itoa(len(group.Files)),
			strconv.Itoa(group.Confidence),
			status,
		})
	}
	fmt.Fprintln(out, renderTable(
		[]string{"Date", "Week", "Participants", "Files", "Confidence", "Status"},
		rows,
		[]columnAlignment{alignLeft, alignRight, alignLeft, alignRight, alignRight, alignLeft},
	))
}
