package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/erg0nix/chatmeta/internal/isupport"
)

func newReferenceCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "reference <scope>",
		Short: "Print the CHATHISTORY reference to resume a conversation from",
		Args:  cobra.ExactArgs(1),
		RunE:  runReferenceCmd,
	}

	cmd.Flags().String("types", "", "server MSGREFTYPES value, e.g. msgid,timestamp (default timestamp)")

	return cmd
}

func runReferenceCmd(cmd *cobra.Command, args []string) error {
	app, err := newApp(cmd)
	if err != nil {
		return err
	}

	kind, err := scopeArg(args)
	if err != nil {
		return err
	}

	preferred := isupport.DefaultMessageReferenceTypes()
	if cmd.Flags().Changed("types") {
		value, _ := cmd.Flags().GetString("types")
		preferred = isupport.ParseMessageReferenceTypes(value)
	}

	md, err := app.Store.Load(cmd.Context(), kind)
	if err != nil {
		return err
	}

	var reference isupport.MessageReference = isupport.None{}
	if md.ChathistoryReferences != nil {
		reference = md.ChathistoryReferences.MessageReference(preferred)
	}

	fmt.Fprintln(cmd.OutOrStdout(), reference)
	return nil
}
