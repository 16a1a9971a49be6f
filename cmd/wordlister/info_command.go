package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
)

func newInfoCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "info",
		Short: "Summarize the wordlist store",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig(cmd)
			if err != nil {
				return err
			}
			store, _, err := ctx.openStore(cmd)
			if err != nil {
				return err
			}
			info, err := store.Stat()
			if err != nil {
				return err
			}

			usernames := "stripped"
			if cfg.Store.AcceptUsernames {
				usernames = "kept"
			}
			rows := [][]string{
				{"Store", info.Path},
				{"Exists", yesNo(info.Exists)},
				{"Words", strconv.Itoa(info.Words)},
				{"Size (bytes)", strconv.FormatInt(info.Size, 10)},
				{"Usernames", usernames},
			}
			fmt.Fprintln(cmd.OutOrStdout(), renderTable([]string{"Field", "Value"}, rows))
			return nil
		},
	}
}

func yesNo(value bool) string {
	if value {
		return "yes"
	}
	return "no"
}
