package main

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"driftsort/internal/catalog"
)

func newCatalogCommand(ctx *commandContext) *cobra.Command {
	catalogCmd := &cobra.Command{
		Use:   "catalog",
		Short: "Inspect recorded scans",
	}

	catalogCmd.AddCommand(newCatalogRunsCommand(ctx))
	catalogCmd.AddCommand(newCatalogDateCommand(ctx))
	catalogCmd.AddCommand(newCatalogClearCommand(ctx))
	return catalogCmd
}

func (c *commandContext) openCatalog() (*catalog.Store, error) {
	cfg, err := c.ensureConfig()
	if err != nil {
		return nil, err
	}
	if cfg.Paths.CatalogPath == "" {
		return nil, errors.New("catalog is disabled (paths.catalog_path is empty)")
	}
	store, err := catalog.Open(cfg)
	if err != nil {
		return nil, fmt.Errorf("open catalog: %w", err)
	}
	return store, nil
}

func newCatalogRunsCommand(ctx *commandContext) *cobra.Command {
	var limit int

	cmd := &cobra.Command{
		Use:   "runs",
		Short: "List recorded scan runs",
		RunE: func(cmd *cobra.Command, args []string) error {
			store, err := ctx.openCatalog()
			if err != nil {
				return err
			}
			defer store.Close()

			runs, err := store.Runs(cmd.Context(), limit)
			if err != nil {
				return err
			}
			if len(runs) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "Catalog is empty")
				return nil
			}

			rows := make([][]string, 0, len(runs))
			for _, run := range runs {
				finished := "-"
				if run.FinishedAt != nil {
					finished = run.FinishedAt.Format("2006-01-02 15:04:05")
				}
				rows = append(rows, []string{
					strconv.FormatInt(run.ID, 10),
					run.RootID,
					run.StartedAt.Format("2006-01-02 15:04:05"),
					finished,
					strconv.Itoa(run.FilesScanned),
					strconv.Itoa(run.GroupsValid),
					strconv.Itoa(run.GroupsRejected),
				})
			}
			fmt.Fprintln(cmd.OutOrStdout(), renderTable(
				[]string{"ID", "Root", "Started", "Finished", "Files", "Sessions", "Rejected"},
				rows,
				[]columnAlignment{alignRight, alignLeft, alignLeft, alignLeft, alignRight, alignRight, alignRight},
			))
			return nil
		},
	}

	cmd.Flags().IntVar(&limit, "limit", 20, "Maximum runs to list (0 for all)")
	return cmd
}

func newCatalogDateCommand(ctx *commandContext) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "date <yyyy-mm-dd>",
		Short: "Show recorded sessions for a date",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			store, err := ctx.openCatalog()
			if err != nil {
				return err
			}
			defer store.Close()

			groups, err := store.GroupsByDate(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			if len(groups) == 0 {
				fmt.Fprintf(cmd.OutOrStdout(), "No sessions recorded for %s\n", args[0])
				return nil
			}

			rows := make([][]string, 0, len(groups))
			for _, group := range groups {
				week := "-"
				if group.Week != nil {
					week = strconv.Itoa(*group.Week)
				}
				names := make([]string, 0, len(group.Files))
				for _, file := range group.Files {
					names = append(names, file.Name)
				}
				rows = append(rows, []string{
					strconv.FormatInt(group.RunID, 10),
					week,
					strings.Join(group.Participants, ", "),
					strconv.Itoa(group.Confidence),
					strings.Join(names, ", "),
				})
			}
			fmt.Fprintln(cmd.OutOrStdout(), renderTable(
				[]string{"Run", "Week", "Participants", "Confidence", "Files"},
				rows,
				[]columnAlignment{alignRight, alignRight, alignLeft, alignRight, alignLeft},
			))
			return nil
		},
	}
	return cmd
}

func newCatalogClearCommand(ctx *commandContext) *cobra.Command {
	var confirmed bool

	cmd := &cobra.Command{
		Use:   "clear",
		Short: "Delete all recorded runs",
		RunE: func(cmd *cobra.Command, args []string) error {
			if !confirmed {
				return errors.New("refusing to clear the catalog without --yes")
			}
			store, err := ctx.openCatalog()
			if err != nil {
				return err
			}
			defer store.Close()

			removed, err := store.Clear(cmd.Context())
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Removed %d runs\n", removed)
			return nil
		},
	}

	cmd.Flags().BoolVar(&confirmed, "yes", false, "Confirm deletion")
	return cmd
}
