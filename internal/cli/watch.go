package cli

import (
	"os"
	"os/signal"
	"syscall"
	"time"

	lipgloss "github.com/charmbracelet/lipgloss/v2"
	"github.com/spf13/cobra"

	"github.com/erg0nix/chatmeta/internal/history/metadata"
)

func newWatchCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "watch <scope>",
		Short: "Print a conversation's read marker whenever its metadata changes",
		Args:  cobra.ExactArgs(1),
		RunE:  runWatchCmd,
	}
}

func runWatchCmd(cmd *cobra.Command, args []string) error {
	app, err := newApp(cmd)
	if err != nil {
		return err
	}

	kind, err := scopeArg(args)
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	out := cmd.OutOrStdout()
	lipgloss.Fprintln(out, styleDim.Render("watching "+kind.String()+" (ctrl-c to stop)"))

	return app.Store.Watch(ctx, kind, func(md metadata.Metadata) {
		marker := styleDim.Render("none")
		if md.ReadMarker != nil {
			marker = md.ReadMarker.String()
		}
		lipgloss.Fprintf(out, "%s %s read marker %s\n",
			styleDim.Render(time.Now().Format(time.TimeOnly)), styleScope.Render(kind.String()), marker)
	})
}
