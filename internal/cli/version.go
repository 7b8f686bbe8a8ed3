package cli

import (
	"github.com/spf13/cobra"

	"github.com/rshade/recview/pkg/version"
)

func newVersionCmd(ver string) *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print build information",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cmd.Printf("recview %s (commit %s, built %s)\n", ver, version.GetGitCommit(), version.GetBuildDate())
			return nil
		},
	}
}
