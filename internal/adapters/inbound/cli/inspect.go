package cli

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/yeager/rpm-policy-checker/internal/adapters/outbound/rpmfile"
)

func newInspectCmd() *cobra.Command {
	var (
		jsonOutput bool
		listFiles  bool
	)

	cmd := &cobra.Command{
		Use:   "inspect <file.rpm>",
		Short: "Show the header of an RPM package without the rpm tool",
		Long:  "Read the RPM lead and header natively and print the package metadata. Works on systems where the rpm tool is not installed.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			info, err := rpmfile.Read(args[0])
			if err != nil {
				return fmt.Errorf("inspecting %s: %w", args[0], err)
			}

			if jsonOutput {
				enc := json.NewEncoder(cmd.OutOrStdout())
				enc.SetIndent("", "  ")
				return enc.Encode(info)
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Name       : %s\n", info.Name)
			fmt.Fprintf(out, "Version    : %s\n", info.Version)
			fmt.Fprintf(out, "Release    : %s\n", info.Release)
			fmt.Fprintf(out, "Arch       : %s\n", info.Arch)
			if info.Summary != "" {
				fmt.Fprintf(out, "Summary    : %s\n", info.Summary)
			}
			if info.License != "" {
				fmt.Fprintf(out, "License    : %s\n", info.License)
			}
			if info.URL != "" {
				fmt.Fprintf(out, "URL        : %s\n", info.URL)
			}
			if info.SourceRPM != "" {
				fmt.Fprintf(out, "Source RPM : %s\n", info.SourceRPM)
			}
			fmt.Fprintf(out, "Files      : %d\n", len(info.Files))
			if listFiles {
				for _, f := range info.Files {
					fmt.Fprintf(out, "  %s\n", f)
				}
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Output as JSON")
	cmd.Flags().BoolVarP(&listFiles, "files", "f", false, "List the package's files")

	return cmd
}
