package main

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"

	"tidy/internal/hashcache"
	"tidy/internal/plan"
	"tidy/internal/services"
)

func newPlanCommand(ctx *commandContext) *cobra.Command {
	flags := &strategyFlags{}

	cmd := &cobra.Command{
		Use:   "plan [directory]",
		Short: "Preview how files would be organized without moving anything",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, strategy, err := flags.resolve(cmd, ctx.configValue())
			if err != nil {
				return err
			}

			builder := plan.NewBuilder(cfg, ctx.loggerValue(), nil)
			p, err := builder.Build(cmd.Context(), rootArg(args), strategy)
			if err != nil {
				if services.IsEmptyResult(err) {
					fmt.Fprintln(cmd.OutOrStdout(), "No files to organize.")
					return nil
				}
				return err
			}

			printPlan(cmd, p)
			return nil
		},
	}

	flags.register(cmd)
	return cmd
}

func printPlan(cmd *cobra.Command, p *plan.Plan) {
	out := cmd.OutOrStdout()

	folders := make(map[string]struct{})
	for _, entry := range p.Entries {
		folders[filepath.Dir(entry.Destination)] = struct{}{}
	}

	fmt.Fprintln(out, renderPlanTable(p))
	fmt.Fprintf(out, "Plan %s: %s into %s under %s\n",
		shortID(p.ID), pluralize(len(p.Entries), "file"), pluralize(len(folders), "folder"), p.Root)
}

func shortID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}

// openCache opens the digest cache, degrading to no caching when the cache
// directory is unusable.
func openCache(ctx *commandContext) *hashcache.Store {
	cfg := ctx.configValue()
	if cfg == nil || cfg.Scan.CacheDir == "" {
		return nil
	}
	store, err := hashcache.Open(cfg.Scan.CacheDir)
	if err != nil {
		ctx.loggerValue().Warn("digest cache unavailable, hashing without cache")
		return nil
	}
	return store
}
