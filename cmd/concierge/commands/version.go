// ABOUTME: Version command to display build information
// ABOUTME: One-line by default, full build details with --verbose
package commands

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

// Build information, overwritten from main at startup.
var (
	buildVersion = "dev"
	buildCommit  = "none"
	buildDate    = "unknown"
)

// SetVersion sets the version information (called from main)
func SetVersion(version, commit, date string) {
	buildVersion = version
	buildCommit = commit
	buildDate = date
}

// NewVersionCmd creates the version command
func NewVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show version information",
		Long:  `Display the concierge CLI version. Add --verbose for commit and build date.`,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintln(cmd.OutOrStdout(), versionLine(verbose))
		},
	}
}

// versionLine renders "concierge <version>", with commit and build date
// appended when detailed is set.
func versionLine(detailed bool) string {
	var b strings.Builder
	fmt.Fprintf(&b, "concierge %s", buildVersion)
	if detailed {
		fmt.Fprintf(&b, " (commit %s, built %s)", buildCommit, buildDate)
	}
	return b.String()
}
