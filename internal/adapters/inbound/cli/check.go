package cli

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/yeager/rpm-policy-checker/internal/adapters/outbound/gitinfo"
	"github.com/yeager/rpm-policy-checker/internal/adapters/outbound/rpmlint"
	"github.com/yeager/rpm-policy-checker/internal/adapters/outbound/rpmquery"
	"github.com/yeager/rpm-policy-checker/internal/adapters/outbound/settings"
	"github.com/yeager/rpm-policy-checker/internal/adapters/outbound/tui"
	"github.com/yeager/rpm-policy-checker/internal/application"
	"github.com/yeager/rpm-policy-checker/internal/domain"
)

func newCheckCmd() *cobra.Command {
	var (
		jsonOutput   bool
		noRpmlint    bool
		hideInfo     bool
		hidePedantic bool
		ciMode       bool
	)

	cmd := &cobra.Command{
		Use:   "check <file>...",
		Short: "Check .rpm packages or .spec files for policy violations",
		Long:  "Run all policy checks on the given artifacts. Files ending in .spec get the spec file analysis, files ending in .rpm the binary package analysis; rpmlint runs on both unless disabled.",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			svc := application.NewCheckService(rpmquery.New(), rpmlint.New())

			store := settings.New()
			cfg, err := store.Load()
			if err != nil {
				cfg = settings.Default()
			}
			opts := tui.Options{
				ShowPedantic: cfg.ShowPedantic && !hidePedantic,
				ShowInfo:     cfg.ShowInfo && !hideInfo,
			}

			if !jsonOutput && !cfg.WelcomeShown {
				fmt.Fprintln(cmd.OutOrStdout(),
					"Welcome to rpm-policy-checker! Every finding comes with a fix recommendation.")
				cfg.WelcomeShown = true
				// Best effort; a read-only config dir should not fail a check.
				_ = store.Save(cfg)
			}

			git := gitinfo.New()
			var errorCount int
			results := make(map[string][]domain.Finding, len(args))

			for _, path := range args {
				findings := svc.Check(cmd.Context(), path, !noRpmlint)
				results[path] = findings
				for _, f := range findings {
					if f.Severity == domain.SeverityError {
						errorCount++
					}
				}

				if jsonOutput {
					continue
				}
				pathOpts := opts
				if git.InRepo(path) {
					if c, err := git.HeadCommit(path); err == nil {
						pathOpts.Commit = c
					}
				}
				fmt.Fprint(cmd.OutOrStdout(), tui.RenderReport(path, findings, pathOpts))
				fmt.Fprintln(cmd.OutOrStdout())
			}

			if jsonOutput {
				enc := json.NewEncoder(cmd.OutOrStdout())
				enc.SetIndent("", "  ")
				if len(args) == 1 {
					if err := enc.Encode(results[args[0]]); err != nil {
						return err
					}
				} else if err := enc.Encode(results); err != nil {
					return err
				}
			}

			if ciMode && errorCount > 0 {
				return fmt.Errorf("%d error-severity finding(s)", errorCount)
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Output findings as JSON (unfiltered)")
	cmd.Flags().BoolVar(&noRpmlint, "no-rpmlint", false, "Skip running rpmlint")
	cmd.Flags().BoolVar(&hideInfo, "hide-info", false, "Hide Info-severity findings")
	cmd.Flags().BoolVar(&hidePedantic, "hide-pedantic", false, "Hide Pedantic-severity findings")
	cmd.Flags().BoolVar(&ciMode, "ci", false, "CI mode: exit 1 if any Error-severity finding")

	return cmd
}
