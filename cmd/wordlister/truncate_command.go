package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"wordlister/internal/wordlist"
)

func newTruncateCommand(ctx *commandContext) *cobra.Command {
	var yes bool

	cmd := &cobra.Command{
		Use:   "truncate",
		Short: "Permanently delete the list",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			store, _, err := ctx.openStore(cmd)
			if err != nil {
				return err
			}
			stderr := cmd.ErrOrStderr()

			info, err := store.Stat()
			if err != nil {
				return err
			}
			if !info.Exists {
				fmt.Fprintln(stderr, "Wordlist is already empty.")
				return nil
			}

			if !yes {
				ok, err := confirm(cmd, fmt.Sprintf("Do you really want to remove %d words ?", info.Words))
				if err != nil {
					return err
				}
				if !ok {
					fmt.Fprintln(stderr, "Wordlist left untouched.")
					return nil
				}
			}

			if err := store.Truncate(); err != nil {
				if errors.Is(err, wordlist.ErrAlreadyEmpty) {
					fmt.Fprintln(stderr, "Wordlist is already empty.")
					return nil
				}
				return err
			}
			fmt.Fprintln(stderr, "Wordlist has been removed.")
			return nil
		},
	}

	cmd.Flags().BoolVarP(&yes, "yes", "y", false, "Don't ask for confirmation")
	return cmd
}
