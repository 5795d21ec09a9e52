package main

import (
	"errors"
	"fmt"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/gofrs/flock"
	"github.com/spf13/cobra"

	"driftsort/internal/catalog"
	"driftsort/internal/matching"
	"driftsort/internal/patterns"
	"driftsort/internal/remote"
	"driftsort/internal/scanner"
)

func newScanCommand(ctx *commandContext) *cobra.Command {
	var (
		jsonOutput  bool
		noCatalog   bool
		showInvalid bool
	)

	cmd := &cobra.Command{
		Use:   "scan [root-id]",
		Short: "Scan the remote tree and assemble session groups",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}

			rootID := cfg.Remote.RootID
			if len(args) == 1 {
				rootID = args[0]
			}

			logger, err := ctx.logger()
			if err != nil {
				return err
			}

			store, err := ctx.openRemote()
			if err != nil {
				return err
			}

			useCatalog := !noCatalog && cfg.Paths.CatalogPath != ""
			if useCatalog {
				lock := flock.New(filepath.Join(filepath.Dir(cfg.Paths.CatalogPath), "scan.lock"))
				ok, err := lock.TryLock()
				if err != nil {
					return fmt.Errorf("acquire scan lock: %w", err)
				}
				if !ok {
					return errors.New("another driftsort scan is already running")
				}
				defer func() { _ = lock.Unlock() }()
			}

			acc := remote.NewAccessor(store, ctx.retryPolicy(), logger)
			var ext scanner.Extension
			if cfg.Scan.Learning {
				ext = patterns.New(logger)
			} else {
				ext = patterns.New(logger, patterns.WithoutLearning())
			}

			files, err := scanner.New(acc, logger, ext).Scan(cmd.Context(), rootID, scanner.Options{
				MaxDepth:        cfg.Scan.MaxDepth,
				MinFileSize:     cfg.Scan.MinFileSize,
				ExcludeFolders:  cfg.Scan.ExcludeFolders,
				IncludePatterns: cfg.Scan.IncludePatterns,
				PageDelay:       cfg.PageDelay(),
			})
			if err != nil {
				return fmt.Errorf("scan: %w", err)
			}

			engine := matching.NewEngine(cfg.Matching.SimilarityThreshold, logger)
			groups := engine.Match(files)
			result := matching.Validate(groups, cfg.Matching.ConfidenceFloor)

			if useCatalog {
				catalogStore, err := catalog.Open(cfg)
				if err != nil {
					return fmt.Errorf("open catalog: %w", err)
				}
				defer catalogStore.Close()

				runID, err := catalogStore.BeginRun(cmd.Context(), rootID)
				if err != nil {
					return fmt.Errorf("record run: %w", err)
				}
				if err := catalogStore.FinishRun(cmd.Context(), runID, len(files), result); err != nil {
					return fmt.Errorf("record run: %w", err)
				}
			}

			if jsonOutput {
				return writeJSON(cmd, scanOutput{
					RootID:       rootID,
					FilesScanned: len(files),
					Valid:        result.Valid,
					Invalid:      result.Invalid,
					Summary:      matching.Summarize(result.Valid),
				})
			}

			renderScanResult(cmd, len(files), result, showInvalid)
			return nil
		},
	}

	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Emit the full result as JSON")
	cmd.Flags().BoolVar(&noCatalog, "no-catalog", false, "Skip recording this scan in the catalog")
	cmd.Flags().BoolVar(&showInvalid, "show-invalid", false, "List rejected groups with reasons")
	return cmd
}

type scanOutput struct {
	RootID       string                   `json:"root_id"`
	FilesScanned int                      `json:"files_scanned"`
	Valid        []matching.SessionGroup  `json:"valid"`
	Invalid      []matching.RejectedGroup `json:"invalid"`
	Summary      matching.Summary         `json:"summary"`
}

func renderScanResult(cmd *cobra.Command, filesScanned int, result matching.ValidationResult, showInvalid bool) {
	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "Scanned %d files: %d sessions assembled, %d groups rejected\n",
		filesScanned, len(result.Valid), len(result.Invalid))

	if len(result.Valid) > 0 {
		rows := make([][]string, 0, len(result.Valid))
		for _, group := range result.Valid {
			rows = append(rows, []string{
				groupDate(group),
				groupWeek(group),
				strings.Join(group.Participants, ", "),
				strconv.Itoa(len(group.Files)),
				rolesSummary(group),
				strconv.Itoa(group.Confidence),
			})
		}
		fmt.Fprintln(out, renderTable(
			[]string{"Date", "Week", "Participants", "Files", "Roles", "Confidence"},
			rows,
			[]columnAlignment{alignLeft, alignRight, alignLeft, alignRight, alignLeft, alignRight},
		))
	}

	if showInvalid && len(result.Invalid) > 0 {
		fmt.Fprintln(out, "Rejected groups:")
		for _, rejected := range result.Invalid {
			names := make([]string, 0, len(rejected.Group.Files))
			for _, member := range rejected.Group.Files {
				names = append(names, member.Name)
			}
			fmt.Fprintf(out, "  %s: %s\n", strings.Join(names, " + "), strings.Join(rejected.Reasons, "; "))
		}
	}
}

func groupDate(group matching.SessionGroup) string {
	if group.Date == nil {
		return "-"
	}
	return group.Date.ISO()
}

func groupWeek(group matching.SessionGroup) string {
	if group.Week == nil {
		return "-"
	}
	return strconv.Itoa(group.Week.Number)
}

func rolesSummary(group matching.SessionGroup) string {
	var roles []string
	if group.HasVideo {
		roles = append(roles, "video")
	}
	if group.HasAudio {
		roles = append(roles, "audio")
	}
	if group.HasTranscript {
		roles = append(roles, "transcript")
	}
	if group.HasChat {
		roles = append(roles, "chat")
	}
	if len(roles) == 0 {
		return "-"
	}
	return strings.Join(roles, "+")
}
