package main

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"tidy/internal/config"
	"tidy/internal/plan"
)

// strategyFlags collects the per-invocation overrides shared by plan and
// apply. Values only override the configuration when the user set them.
type strategyFlags struct {
	strategy            string
	recursive           bool
	dateSource          string
	dateGranularity     string
	locationGranularity string
}

func (f *strategyFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&f.strategy, "strategy", "s", "type", "Organization strategy: type, date, category, or location")
	cmd.Flags().BoolVarP(&f.recursive, "recursive", "r", false, "Include files in subdirectories")
	cmd.Flags().StringVar(&f.dateSource, "date-source", "", "Date source policy: all, filename, metadata, or filedate")
	cmd.Flags().StringVar(&f.dateGranularity, "granularity", "", "Date folder granularity: year, month, or day")
	cmd.Flags().StringVar(&f.locationGranularity, "location-granularity", "", "Location folder granularity: country, cityregion, or exact")
}

// resolve merges the flags into a copy of the loaded configuration and
// parses the strategy. The copy keeps command-line overrides from leaking
// into other commands sharing the context.
func (f *strategyFlags) resolve(cmd *cobra.Command, base *config.Config) (*config.Config, plan.Strategy, error) {
	strategy, err := plan.ParseStrategy(f.strategy)
	if err != nil {
		return nil, "", err
	}

	cfg := *base
	if cmd.Flags().Changed("recursive") {
		cfg.Scan.IncludeSubfolders = f.recursive
	}
	if f.dateSource != "" {
		cfg.Dates.Source = f.dateSource
	}
	if f.dateGranularity != "" {
		cfg.Dates.Granularity = f.dateGranularity
	}
	if f.locationGranularity != "" {
		cfg.Location.Granularity = f.locationGranularity
	}
	if err := cfg.Validate(); err != nil {
		return nil, "", err
	}
	return &cfg, strategy, nil
}

// rootArg resolves the positional target directory, defaulting to the
// current directory.
func rootArg(args []string) string {
	if len(args) > 0 && strings.TrimSpace(args[0]) != "" {
		return args[0]
	}
	return "."
}

// relativeTo renders path relative to root for display, falling back to the
// absolute path when it does not nest.
func relativeTo(root, path string) string {
	rel, err := filepath.Rel(root, path)
	if err != nil || strings.HasPrefix(rel, "..") {
		return path
	}
	return rel
}

func pluralize(n int, singular string) string {
	if n == 1 {
		return fmt.Sprintf("%d %s", n, singular)
	}
	return fmt.Sprintf("%d %ss", n, singular)
}
