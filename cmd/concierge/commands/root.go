// ABOUTME: Root CLI command with global flags and subcommand registration
// ABOUTME: Entry point for the front-desk command line tool
package commands

import (
	"github.com/spf13/cobra"
)

var (
	verbose      bool
	quiet        bool
	outputFormat string
)

const banner = `
██████╗ ██╗███╗   ██╗██╗  ██╗    ██████╗ ███████╗██████╗ ██╗
██╔══██╗██║████╗  ██║██║ ██╔╝    ██╔══██╗██╔════╝██╔══██╗██║
██████╔╝██║██╔██╗ ██║█████╔╝     ██████╔╝█████╗  ██████╔╝██║
██╔═══╝ ██║██║╚██╗██║██╔═██╗     ██╔═══╝ ██╔══╝  ██╔══██╗██║
██║     ██║██║ ╚████║██║  ██╗    ██║     ███████╗██║  ██║███████╗
╚═╝     ╚═╝╚═╝  ╚═══╝╚═╝  ╚═╝    ╚═╝     ╚══════╝╚═╝  ╚═╝╚══════╝
`

// NewRootCmd creates the root command with all subcommands
func NewRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "concierge",
		Short: "Front-desk tool for the Pink Perl hotel concierge",
		Long: banner + `
Query and manage the hotel's guest and booking records from the
command line. Reads the same database the voice concierge writes to.

Examples:
  concierge bookings
  concierge guests
  concierge history u1
  concierge cancel room 42`,
		SilenceUsage: true,
	}

	cmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Verbose output")
	cmd.PersistentFlags().BoolVarP(&quiet, "quiet", "q", false, "Minimal output")
	cmd.PersistentFlags().StringVar(&outputFormat, "format", "auto", "Output format (auto, table, json)")

	cmd.AddCommand(NewBookingsCmd())
	cmd.AddCommand(NewGuestsCmd())
	cmd.AddCommand(NewHistoryCmd())
	cmd.AddCommand(NewCancelCmd())
	cmd.AddCommand(NewVersionCmd())

	return cmd
}

// Execute runs the root command
func Execute() error {
	return NewRootCmd().Execute()
}
