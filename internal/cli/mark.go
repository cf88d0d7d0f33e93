package cli

import (
	"time"

	lipgloss "github.com/charmbracelet/lipgloss/v2"
	"github.com/spf13/cobra"

	"github.com/erg0nix/chatmeta/internal/history/metadata"
)

func newMarkCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "mark <scope> [timestamp]",
		Short: "Advance the read marker of a conversation",
		Long: "Advance the read marker of a conversation to an RFC3339 timestamp (default: now).\n" +
			"A stored marker that is already newer is kept.",
		Args: cobra.RangeArgs(1, 2),
		RunE: runMarkCmd,
	}
}

func runMarkCmd(cmd *cobra.Command, args []string) error {
	app, err := newApp(cmd)
	if err != nil {
		return err
	}

	kind, err := scopeArg(args)
	if err != nil {
		return err
	}

	marker := metadata.NewReadMarker(time.Now())
	if len(args) > 1 {
		marker, err = metadata.ParseReadMarker(args[1])
		if err != nil {
			return err
		}
	}

	if err := app.Store.Update(cmd.Context(), kind, marker); err != nil {
		return err
	}

	md, err := app.Store.Load(cmd.Context(), kind)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	if md.ReadMarker != nil && md.ReadMarker.Time().After(marker.Time()) {
		lipgloss.Fprintf(out, "%s %s already read up to %s\n",
			styleDim.Render("Kept"), styleScope.Render(kind.String()), md.ReadMarker)
		return nil
	}

	lipgloss.Fprintf(out, "%s %s read marker at %s\n",
		styleSuccess.Render("Marked"), styleScope.Render(kind.String()), marker)
	return nil
}
