package main

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"wordlister/internal/config"
	"wordlister/internal/logging"
)

var errNoInput = errors.New("no word or file given")

func newAddCommand(ctx *commandContext) *cobra.Command {
	var file string

	cmd := &cobra.Command{
		Use:   "add [words...]",
		Short: "Add new words",
		Long: `Add new words to the list, either inline or from a wordlist file.

When --file is given, inline words are ignored.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			file = strings.TrimSpace(file)
			if len(args) == 0 && file == "" {
				return errNoInput
			}

			store, logger, err := ctx.openStore(cmd)
			if err != nil {
				return err
			}

			before, err := store.Count()
			if err != nil {
				return err
			}

			var submitted int
			if file != "" {
				if len(args) > 0 {
					logging.WarnWithContext(logger, "inline words ignored", "add_inline_ignored",
						logging.Int("ignored_words", len(args)),
						logging.String(logging.FieldErrorHint, "run add separately for inline words"),
						logging.String(logging.FieldImpact, "only the file contents are added"),
					)
				}
				source, err := config.ExpandPath(file)
				if err != nil {
					return err
				}
				if submitted, err = store.AppendFromFile(source); err != nil {
					return err
				}
			} else {
				if submitted, err = store.AppendMany(args); err != nil {
					return err
				}
			}

			after, err := store.Count()
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.ErrOrStderr(), addedMessage(submitted, before, after))
			return nil
		},
	}

	cmd.Flags().StringVarP(&file, "file", "f", "", "Wordlist file")
	return cmd
}
