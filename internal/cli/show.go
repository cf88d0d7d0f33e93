package cli

import (
	"time"

	lipgloss "github.com/charmbracelet/lipgloss/v2"
	"github.com/spf13/cobra"

	"github.com/erg0nix/chatmeta/internal/history/metadata"
)

func newShowCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show <scope>",
		Short: "Show the stored metadata for a conversation",
		Long: "Show the stored metadata for a conversation.\n\n" +
			"Scopes: server:<server>, channel:<server>/<channel>, query:<server>/<nick>, logs, highlights.",
		Args: cobra.ExactArgs(1),
		RunE: runShowCmd,
	}
}

func runShowCmd(cmd *cobra.Command, args []string) error {
	app, err := newApp(cmd)
	if err != nil {
		return err
	}

	kind, err := scopeArg(args)
	if err != nil {
		return err
	}

	path, err := app.Store.Path(cmd.Context(), kind)
	if err != nil {
		return err
	}

	md, err := app.Store.Load(cmd.Context(), kind)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	lipgloss.Fprintln(out, kvLine("Scope", styleScope.Render(kind.String())))
	lipgloss.Fprintln(out, kvLine("File", path))

	t := newTable("FIELD", "VALUE", "AGE")
	t.Row(timeRow("read marker", readMarkerTime(md))...)
	t.Row(timeRow("last unread", md.LastTriggersUnread)...)

	if refs := md.ChathistoryReferences; refs != nil {
		id := refs.ID
		if id == "" {
			id = "-"
		}
		t.Row("reference", formatReferenceTime(refs.Timestamp)+" id="+id, formatAge(refs.Timestamp))
	} else {
		t.Row("reference", styleDim.Render("none"), "-")
	}

	lipgloss.Fprintln(out, t.Render())
	return nil
}

func readMarkerTime(md metadata.Metadata) *time.Time {
	if md.ReadMarker == nil {
		return nil
	}
	t := md.ReadMarker.Time()
	return &t
}

func timeRow(field string, t *time.Time) []string {
	if t == nil {
		return []string{field, styleDim.Render("none"), "-"}
	}
	return []string{field, formatReferenceTime(*t), formatAge(*t)}
}

func formatReferenceTime(t time.Time) string {
	return metadata.NewReadMarker(t).String()
}
