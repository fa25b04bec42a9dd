package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/jpalmerr/serverboard/internal/dom"
	"github.com/jpalmerr/serverboard/internal/poller"
	"github.com/jpalmerr/serverboard/internal/tui"
	"github.com/jpalmerr/serverboard/internal/view"
)

// fallbackWidth is used when stdout is not a terminal and --width is unset.
const fallbackWidth = 80

// newRenderCmd fetches the source once and prints the cards.
func newRenderCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "render",
		Short: "Fetch once and print the board",
		Long: `Fetch the source once, reconcile the cards and print them.

With --format text the cards are drawn for the terminal. With --format html
the container fragment served at /api/view is printed instead.

A failed fetch exits non-zero.

Example:
  serverboard render --url http://127.0.0.1:5000/api/servers
  serverboard render --url http://127.0.0.1:5000/api/servers --format html > view.html`,
		RunE: runRender,
	}

	addClientFlags(cmd)
	cmd.Flags().String("format", "text", "output format: text or html")
	cmd.Flags().Int("width", 0, "terminal width for text output (default: detected, else 80)")
	return cmd
}

func runRender(cmd *cobra.Command, args []string) error {
	settings, err := loadClientSettings(cmd)
	if err != nil {
		return err
	}

	format, _ := cmd.Flags().GetString("format")
	if format != "text" && format != "html" {
		return fmt.Errorf("unsupported format %q (expected text or html)", format)
	}

	client := poller.NewClient()
	defer client.Close()

	servers, _, err := client.FetchServers(cmd.Context(), settings.URL, settings.Timeout)
	if err != nil {
		return fmt.Errorf("failed to fetch %s: %w", settings.URL, err)
	}

	container := dom.New("section", "server-list", "")
	container.SetAttr("id", "server-list")
	reconciler := view.NewReconciler(view.NewDOMSurface(container, settings.Labels),
		view.WithLabels(settings.Labels),
		view.WithLocation(settings.Location),
	)
	reconciler.Render(servers)

	out := cmd.OutOrStdout()
	if format == "html" {
		_, err = fmt.Fprintln(out, container.HTML())
		return err
	}

	width, _ := cmd.Flags().GetInt("width")
	if width <= 0 {
		width = detectWidth()
	}
	_, err = fmt.Fprintln(out, tui.RenderView(container, width))
	return err
}

func detectWidth() int {
	fd := int(os.Stdout.Fd())
	if !term.IsTerminal(fd) {
		return fallbackWidth
	}
	w, _, err := term.GetSize(fd)
	if err != nil || w <= 0 {
		return fallbackWidth
	}
	return w
}
