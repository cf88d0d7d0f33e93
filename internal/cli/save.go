package cli

import (
	lipgloss "github.com/charmbracelet/lipgloss/v2"
	"github.com/spf13/cobra"

	"github.com/erg0nix/chatmeta/internal/history/metadata"
	"github.com/erg0nix/chatmeta/internal/message"
)

func newSaveCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "save <scope> <messages.jsonl>",
		Short: "Rewrite a conversation's metadata from a message log",
		Long: "Rewrite a conversation's metadata from a JSONL message log.\n" +
			"The read marker defaults to the newest message that is not a status line.",
		Args: cobra.ExactArgs(2),
		RunE: runSaveCmd,
	}

	cmd.Flags().String("read-marker", "", "explicit RFC3339 read marker")
	cmd.Flags().Bool("no-read-marker", false, "store no read marker")

	return cmd
}

func runSaveCmd(cmd *cobra.Command, args []string) error {
	app, err := newApp(cmd)
	if err != nil {
		return err
	}

	kind, err := scopeArg(args)
	if err != nil {
		return err
	}

	loaded, err := message.NewFile(args[1]).LoadAll()
	if err != nil {
		return err
	}
	messages := metadata.Messages(loaded)

	readMarker, err := saveReadMarker(cmd, messages)
	if err != nil {
		return err
	}

	if err := app.Store.Save(cmd.Context(), kind, messages, readMarker); err != nil {
		return err
	}

	lipgloss.Fprintf(cmd.OutOrStdout(), "%s %s from %d messages\n",
		styleSuccess.Render("Saved"), styleScope.Render(kind.String()), len(messages))
	return nil
}

func saveReadMarker(cmd *cobra.Command, messages []metadata.Message) (*metadata.ReadMarker, error) {
	if skip, _ := cmd.Flags().GetBool("no-read-marker"); skip {
		return nil, nil
	}

	if explicit, _ := cmd.Flags().GetString("read-marker"); explicit != "" {
		marker, err := metadata.ParseReadMarker(explicit)
		if err != nil {
			return nil, err
		}
		return &marker, nil
	}

	marker, ok := metadata.LatestReadMarker(messages)
	if !ok {
		return nil, nil
	}
	return &marker, nil
}
