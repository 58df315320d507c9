package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"mediarch/internal/capturedate"
	"mediarch/internal/event"
	"mediarch/internal/organizer"
)

func newOrganizeCommand(ctx *commandContext) *cobra.Command {
	var sourceFlag string
	var targetFlag string
	var eventsFlag string
	var dryRun bool
	var sortEvents bool

	cmd := &cobra.Command{
		Use:   "organize",
		Short: "File source media into the year/month archive",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}
			source, err := resolvePath(sourceFlag, cfg.Paths.SourceDir, cfg.ValidateSourceDir)
			if err != nil {
				return err
			}
			target, err := resolvePath(targetFlag, cfg.Paths.TargetDir, cfg.ValidateTargetDir)
			if err != nil {
				return err
			}

			var events []event.Event
			if sortEvents {
				eventsPath, err := resolvePath(eventsFlag, cfg.Paths.EventsFile, cfg.ValidateEventsFile)
				if err != nil {
					return err
				}
				events, err = event.Load(eventsPath)
				if err != nil {
					return err
				}
			}

			logger, err := ctx.ensureLogger()
			if err != nil {
				return err
			}

			classifier := cfg.Classifier()
			extractor := capturedate.New(classifier, cfg.FFprobeBinary(), logger)
			org := organizer.New(classifier, extractor, logger, dryRun)

			return ctx.withTargetLock(target, func() error {
				summary, err := org.Run(cmd.Context(), source, target)
				if err != nil {
					return err
				}

				grouped := 0
				if sortEvents {
					grouped, err = org.GroupByEvents(cmd.Context(), target, events)
					if err != nil {
						return err
					}
				}

				rows := [][]string{
					{"Organized", strconv.Itoa(summary.Organized)},
					{"Skipped", strconv.Itoa(summary.Skipped)},
				}
				if sortEvents {
					rows = append(rows, []string{"Grouped into events", strconv.Itoa(grouped)})
				}
				out := cmd.OutOrStdout()
				if dryRun {
					fmt.Fprintln(out, "Dry run: no files were moved or copied.")
				}
				fmt.Fprintln(out, renderTable([]string{"Result", "Files"}, rows, []columnAlignment{alignLeft, alignRight}))
				return nil
			})
		},
	}

	cmd.Flags().StringVarP(&sourceFlag, "source", "s", "", "Directory holding the media to organize")
	cmd.Flags().StringVarP(&targetFlag, "target", "t", "", "Archive root directory")
	cmd.Flags().StringVar(&eventsFlag, "events-file", "", "Events definition file used with --sort-events")
	cmd.Flags().BoolVar(&dryRun, "dry-run", false, "Report planned changes without touching files")
	cmd.Flags().BoolVar(&sortEvents, "sort-events", false, "Group organized files into event folders afterwards")
	return cmd
}
