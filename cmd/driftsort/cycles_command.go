package main

import (
	"fmt"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"driftsort/internal/catalog"
	"driftsort/internal/programcycle"
)

func newCyclesCommand(ctx *commandContext) *cobra.Command {
	cyclesCmd := &cobra.Command{
		Use:   "cycles",
		Short: "Resolve enrollment cycles for renewal students",
	}

	cyclesCmd.AddCommand(newCyclesDetectCommand(ctx))
	cyclesCmd.AddCommand(newCyclesBoundariesCommand(ctx))
	return cyclesCmd
}

func newCyclesDetectCommand(ctx *commandContext) *cobra.Command {
	var weekToken string

	cmd := &cobra.Command{
		Use:   "detect <student>",
		Short: "Resolve which cycle a week number belongs to",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}

			week, err := programcycle.ParseWeekToken(weekToken)
			if err != nil {
				return err
			}

			table, err := programcycle.LoadTable(cfg.Paths.RenewalTablePath)
			if err != nil {
				return err
			}

			result := table.Detect(args[0], week)
			out := cmd.OutOrStdout()
			if result.Cycle == 0 {
				fmt.Fprintf(out, "%s: single enrollment, week %s\n", args[0], formatWeek(result.CycleWeek))
				return nil
			}
			fmt.Fprintf(out, "%s: cycle %d, week %s (renewal: %s)\n",
				args[0], result.Cycle, formatWeek(result.CycleWeek), yesNo(result.IsRenewal))
			return nil
		},
	}

	cmd.Flags().StringVarP(&weekToken, "week", "w", "", "Week token as written in file names (e.g. 5, 00A)")
	_ = cmd.MarkFlagRequired("week")
	return cmd
}

func newCyclesBoundariesCommand(ctx *commandContext) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "boundaries <student>",
		Short: "Flag likely renewals in a student's recorded sessions",
		Long: "Inspects the catalog for sessions mentioning the student and flags\n" +
			"positions where the week number drops sharply or a long gap occurs,\n" +
			"suggesting a renewal missing from the renewal table.",
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}
			if cfg.Paths.CatalogPath == "" {
				return fmt.Errorf("catalog is disabled; boundary detection needs recorded scans")
			}

			store, err := catalog.Open(cfg)
			if err != nil {
				return fmt.Errorf("open catalog: %w", err)
			}
			defer store.Close()

			run, err := store.LatestRun(cmd.Context())
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

			sessions, dates := studentSessions(groups, args[0])
			if len(sessions) == 0 {
				fmt.Fprintf(cmd.OutOrStdout(), "No recorded sessions mention %s\n", args[0])
				return nil
			}

			boundaries := programcycle.DetectBoundaries(sessions)
			out := cmd.OutOrStdout()
			if len(boundaries) == 0 {
				fmt.Fprintf(out, "%d sessions, no cycle boundaries detected\n", len(sessions))
				return nil
			}
			fmt.Fprintf(out, "%d sessions, %d likely cycle boundaries:\n", len(sessions), len(boundaries))
			for _, idx := range boundaries {
				fmt.Fprintf(out, "  new cycle at %s (week %s, previous week %s)\n",
					dates[idx], formatWeek(sessions[idx].Week), formatWeek(sessions[idx-1].Week))
			}
			return nil
		},
	}
	return cmd
}

// studentSessions collects dated, week-numbered sessions mentioning the
// student, ordered by date. The parallel date-string slice feeds output.
func studentSessions(groups []*catalog.GroupRecord, student string) ([]programcycle.Session, []string) {
	type dated struct {
		session programcycle.Session
		iso     string
	}
	var collected []dated
	for _, group := range groups {
		if !group.Valid || group.Week == nil || group.Date == "" {
			continue
		}
		if !mentionsStudent(group.Participants, student) {
			continue
		}
		date, err := time.Parse("2006-01-02", group.Date)
		if err != nil {
			continue
		}
		collected = append(collected, dated{
			session: programcycle.Session{Week: float64(*group.Week), Date: date},
			iso:     group.Date,
		})
	}

	sort.Slice(collected, func(i, j int) bool {
		return collected[i].session.Date.Before(collected[j].session.Date)
	})

	sessions := make([]programcycle.Session, len(collected))
	dates := make([]string, len(collected))
	for i, d := range collected {
		sessions[i] = d.session
		dates[i] = d.iso
	}
	return sessions, dates
}

func mentionsStudent(participants []string, student string) bool {
	for _, participant := range participants {
		if strings.EqualFold(firstName(participant), firstName(student)) {
			return true
		}
	}
	return false
}

func firstName(name string) string {
	fields := strings.Fields(name)
	if len(fields) == 0 {
		return ""
	}
	return fields[0]
}

func formatWeek(week float64) string {
	if week == float64(int(week)) {
		return strconv.Itoa(int(week))
	}
	return strconv.FormatFloat(week, 'f', 1, 64)
}
