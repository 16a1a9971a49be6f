package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"wordlister/internal/wordlist"
)

func newShowCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Print all words in the list",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			store, _, err := ctx.openStore(cmd)
			if err != nil {
				return err
			}
			if err := store.Show(cmd.OutOrStdout()); err != nil {
				if errors.Is(err, wordlist.ErrEmpty) {
					fmt.Fprintln(cmd.ErrOrStderr(), "Wordlist is empty.")
					return nil
				}
				return err
			}
			return nil
		},
	}
}
