package main

import (
	"bufio"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/spf13/cobra"

	"tidy/internal/organize"
	"tidy/internal/plan"
	"tidy/internal/services"
)

func newApplyCommand(ctx *commandContext) *cobra.Command {
	flags := &strategyFlags{}
	var force bool
	var deleteEmptyDirs bool

	cmd := &cobra.Command{
		Use:   "apply [directory]",
		Short: "Organize files by moving them into strategy folders",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, strategy, err := flags.resolve(cmd, ctx.configValue())
			if err != nil {
				return err
			}
			if cmd.Flags().Changed("delete-empty-dirs") {
				cfg.Scan.DeleteEmptyDirs = deleteEmptyDirs
			}

			runCtx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			builder := plan.NewBuilder(cfg, ctx.loggerValue(), nil)
			p, err := builder.Build(runCtx, rootArg(args), strategy)
			if err != nil {
				if services.IsEmptyResult(err) {
					fmt.Fprintln(cmd.OutOrStdout(), "No files to organize.")
					return nil
				}
				return err
			}

			if !force {
				ok, err := confirmApply(cmd, p)
				if err != nil {
					return err
				}
				if !ok {
					fmt.Fprintln(cmd.OutOrStdout(), "Aborted.")
					return nil
				}
			}

			executor := organize.NewExecutor(ctx.loggerValue(), cfg.Scan.DeleteEmptyDirs)
			progress := newProgressPrinter(cmd.ErrOrStderr())
			executor.OnProgress = progress.update

			result, execErr := executor.Execute(runCtx, p)
			progress.finish()
			if result != nil {
				printResult(cmd, p, result)
			}
			return execErr
		},
	}

	flags.register(cmd)
	cmd.Flags().BoolVarP(&force, "force", "f", false, "Skip the confirmation prompt")
	cmd.Flags().BoolVar(&deleteEmptyDirs, "delete-empty-dirs", false, "Remove directories left empty after the moves")
	return cmd
}

func confirmApply(cmd *cobra.Command, p *plan.Plan) (bool, error) {
	fmt.Fprintf(cmd.OutOrStdout(), "Apply %s under %s? [y/N]: ", pluralize(len(p.Entries), "move"), p.Root)
	reader := bufio.NewReader(cmd.InOrStdin())
	line, err := reader.ReadString('\n')
	if err != nil && line == "" {
		return false, nil
	}
	answer := strings.ToLower(strings.TrimSpace(line))
	return answer == "y" || answer == "yes", nil
}

func printResult(cmd *cobra.Command, p *plan.Plan, result *organize.Result) {
	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "Organized %d of %s, skipped %d.\n",
		result.Moved, pluralize(len(p.Entries), "file"), result.Skipped)
	if result.Failed == 0 {
		return
	}
	fmt.Fprintf(out, "%s failed:\n", pluralize(result.Failed, "move"))
	for _, failure := range result.Failures {
		fmt.Fprintf(out, "  %s: %v\n", relativeTo(p.Root, failure.Entry.Source), failure.Err)
	}
}
