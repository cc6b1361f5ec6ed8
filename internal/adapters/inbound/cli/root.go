// Package cli is the cobra command tree.
package cli

import (
	"github.com/spf13/cobra"

	"github.com/yeager/rpm-policy-checker/internal/logger"
)

var (
	version = "dev"
	commit  = "none"
)

func newRootCmd() *cobra.Command {
	var verbose bool

	cmd := &cobra.Command{
		Use:           "rpmpolicy",
		Short:         "Validate RPM packages against Fedora packaging guidelines",
		Long:          "rpm-policy-checker analyzes .rpm packages and .spec files, reporting Fedora packaging guideline violations with fix recommendations.",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return logger.Setup(verbose)
		},
	}

	cmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable debug logging")

	cmd.AddCommand(newVersionCmd())
	cmd.AddCommand(newCheckCmd())
	cmd.AddCommand(newInspectCmd())
	cmd.AddCommand(newMCPCmd())
	return cmd
}

// NewRootCmdForTest returns the root command for testing.
func NewRootCmdForTest() *cobra.Command {
	return newRootCmd()
}

// Execute runs the CLI.
func Execute() error {
	return newRootCmd().Execute()
}
