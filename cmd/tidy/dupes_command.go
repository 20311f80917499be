package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"tidy/internal/plan"
	"tidy/internal/services"
)

func newDupesCommand(ctx *commandContext) *cobra.Command {
	var recursive bool

	cmd := &cobra.Command{
		Use:   "dupes [directory]",
		Short: "Report files with identical content",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := *ctx.configValue()
			if cmd.Flags().Changed("recursive") {
				cfg.Scan.IncludeSubfolders = recursive
			}

			cache := openCache(ctx)
			defer cache.Close()

			builder := plan.NewBuilder(&cfg, ctx.loggerValue(), cache)
			groups, err := builder.DuplicateGroups(cmd.Context(), rootArg(args))
			if err != nil {
				if services.IsEmptyResult(err) {
					fmt.Fprintln(cmd.OutOrStdout(), "No files to inspect.")
					return nil
				}
				return err
			}

			out := cmd.OutOrStdout()
			if len(groups) == 0 {
				fmt.Fprintln(out, "No duplicates found.")
				return nil
			}

			duplicates := 0
			for _, group := range groups {
				duplicates += len(group.Paths) - 1
			}
			fmt.Fprintln(out, renderDupesTable(groups))
			fmt.Fprintf(out, "%s across %s.\n",
				pluralize(duplicates, "duplicate file"), pluralize(len(groups), "group"))
			return nil
		},
	}

	cmd.Flags().BoolVarP(&recursive, "recursive", "r", false, "Include files in subdirectories")
	return cmd
}
