package main

import (
	"github.com/spf13/cobra"
)

func newRootCommand() *cobra.Command {
	flags := &globalFlags{}
	ctx := newCommandContext(flags)

	rootCmd := &cobra.Command{
		Use:           "wordlister",
		Short:         "Collect words into a sorted, deduplicated wordlist",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if shouldSkipConfig(cmd) {
				return nil
			}
			_, err := ctx.ensureConfig(cmd)
			return err
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	pf := rootCmd.PersistentFlags()
	pf.StringVarP(&flags.wordlist, "wordlist", "w", "", "The wordlist to read from/write to (default ~/.wordlist.lst)")
	// -o is kept for scripts written against the older --output spelling.
	pf.StringVarP(&flags.wordlist, "output", "o", "", "Alias of --wordlist")
	_ = pf.MarkHidden("output")
	pf.BoolVarP(&flags.username, "username", "u", false, "Keep username prefixes (ie. ^[^:]*:) instead of stripping them")
	pf.StringVarP(&flags.config, "config", "c", "", "Configuration file path")
	pf.StringVar(&flags.logLevel, "log-level", "", "Log level override (debug, info, warn, error)")

	rootCmd.AddCommand(newTruncateCommand(ctx))
	rootCmd.AddCommand(newShowCommand(ctx))
	rootCmd.AddCommand(newAddCommand(ctx))
	rootCmd.AddCommand(newExtractCommand(ctx))
	rootCmd.AddCommand(newInfoCommand(ctx))
	rootCmd.AddCommand(newConfigCommand(ctx))

	return rootCmd
}
