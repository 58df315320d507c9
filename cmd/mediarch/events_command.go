package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"mediarch/internal/capturedate"
	"mediarch/internal/event"
	"mediarch/internal/organizer"
)

func newEventsCommand(ctx *commandContext) *cobra.Command {
	var targetFlag string
	var eventsFlag string
	var dryRun bool

	cmd := &cobra.Command{
		Use:   "events",
		Short: "Group already-organized media into event folders",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}
			target, err := resolvePath(targetFlag, cfg.Paths.TargetDir, cfg.ValidateTargetDir)
			if err != nil {
				return err
			}
			eventsPath, err := resolvePath(eventsFlag, cfg.Paths.EventsFile, cfg.ValidateEventsFile)
			if err != nil {
				return err
			}
			events, err := event.Load(eventsPath)
			if err != nil {
				return err
			}

			logger, err := ctx.ensureLogger()
			if err != nil {
				return err
			}

			classifier := cfg.Classifier()
			extractor := capturedate.New(classifier, cfg.FFprobeBinary(), logger)
			org := organizer.New(classifier, extractor, logger, dryRun)

			return ctx.withTargetLock(target, func() error {
				grouped, err := org.GroupByEvents(cmd.Context(), target, events)
				if err != nil {
					return err
				}
				out := cmd.OutOrStdout()
				if dryRun {
					fmt.Fprintln(out, "Dry run: no files were moved.")
				}
				rows := [][]string{
					{"Events defined", strconv.Itoa(len(events))},
					{"Files grouped", strconv.Itoa(grouped)},
				}
				fmt.Fprintln(out, renderTable([]string{"Result", "Count"}, rows, []columnAlignment{alignLeft, alignRight}))
				return nil
			})
		},
	}

	cmd.Flags().StringVarP(&targetFlag, "target", "t", "", "Archive root directory")
	cmd.Flags().StringVar(&eventsFlag, "events-file", "", "Events definition file")
	cmd.Flags().BoolVar(&dryRun, "dry-run", false, "Report planned changes without touching files")
	return cmd
}
