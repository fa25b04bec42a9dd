// Package main is the entry point for the serverboard CLI.
//
// Usage:
//
//	serverboard serve -c config.yaml              # Start the web dashboard
//	serverboard validate -c config.yaml           # Validate configuration
//	serverboard watch --url http://host/api/servers  # Terminal dashboard
//	serverboard render --url http://host/api/servers # Print one snapshot
//	serverboard version                           # Show version info
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// Version information - set at build time via ldflags.
// Example: go build -ldflags "-X main.version=1.0.0"
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

// newRootCmd builds the command tree. Each call returns fresh flag state.
func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "serverboard",
		Short: "A live status board for game servers",
		Long: `serverboard shows a live card per game server.

It polls a JSON endpoint listing server status and keeps one card per
server up to date, in a browser or in the terminal.

Quick start:
  1. Create a config file (serverboard.yaml)
  2. Run: serverboard serve -c serverboard.yaml
  3. Open http://localhost:8080 in your browser

Example config:
  title: Minecraft servers
  port: 8080
  source: http://127.0.0.1:5000/api/servers
  poll_interval: 5s`,
		SilenceUsage: true,
	}

	root.AddCommand(
		newServeCmd(),
		newValidateCmd(),
		newWatchCmd(),
		newRenderCmd(),
		newVersionCmd(),
	)
	return root
}

// newVersionCmd prints version information.
func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Long:  `Print the version, commit hash, and build date of this serverboard binary.`,
		Run: func(cmd *cobra.Command, args []string) {
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "serverboard %s\n", version)
			fmt.Fprintf(out, "  commit: %s\n", commit)
			fmt.Fprintf(out, "  built:  %s\n", date)
		},
	}
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		// cobra already printed the error
		os.Exit(1)
	}
}
