package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"mediarch/internal/dedupe"
	"mediarch/internal/media"
)

func newDedupeCommand(ctx *commandContext) *cobra.Command {
	var targetFlag string
	var kindFlag string
	var dryRun bool

	cmd := &cobra.Command{
		Use:   "dedupe",
		Short: "Find and delete exact duplicate files in the archive",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}
			target, err := resolvePath(targetFlag, cfg.Paths.TargetDir, cfg.ValidateTargetDir)
			if err != nil {
				return err
			}
			kind, err := parseKind(kindFlag)
			if err != nil {
				return err
			}

			logger, err := ctx.ensureLogger()
			if err != nil {
				return err
			}

			finder := dedupe.NewFinder(logger, dryRun)

			return ctx.withTargetLock(target, func() error {
				files, err := dedupe.CollectFiles(target, kind, cfg.Classifier())
				if err != nil {
					return err
				}
				groups := finder.FindDuplicates(files)
				stats := finder.DeleteDuplicates(groups)

				out := cmd.OutOrStdout()
				if dryRun {
					fmt.Fprintln(out, "Dry run: no files were deleted.")
				}
				rows := [][]string{
					{"Files scanned", strconv.Itoa(len(files))},
					{"Duplicate groups", strconv.Itoa(stats.Groups)},
					{"Duplicates found", strconv.Itoa(stats.Duplicates)},
					{"Files deleted", strconv.Itoa(stats.Removed)},
					{"Space reclaimable", formatBytes(stats.ReclaimableBytes)},
				}
				fmt.Fprintln(out, renderTable([]string{"Result", "Value"}, rows, []columnAlignment{alignLeft, alignRight}))
				return nil
			})
		},
	}

	cmd.Flags().StringVarP(&targetFlag, "target", "t", "", "Archive root directory")
	cmd.Flags().StringVar(&kindFlag, "kind", "photo", "Media kind to deduplicate (photo or video)")
	cmd.Flags().BoolVar(&dryRun, "dry-run", false, "Report duplicates without deleting anything")
	return cmd
}

func parseKind(value string) (media.Kind, error) {
	switch value {
	case "photo":
		return media.KindPhoto, nil
	case "video":
		return media.KindVideo, nil
	default:
		return media.KindUnknown, fmt.Errorf("--kind must be photo or video, got %q", value)
	}
}
