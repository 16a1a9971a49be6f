package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"wordlister/internal/config"
	"wordlister/internal/extract"
	"wordlister/internal/logging"
)

type extractFlags struct {
	depth   int
	length  int
	recurse bool
	ext     string
	keepExt bool
	hidden  bool
	show    bool
}

func newExtractCommand(ctx *commandContext) *cobra.Command {
	flags := &extractFlags{}
	defaults := config.Default().Extract

	cmd := &cobra.Command{
		Use:   "extract [path]",
		Short: "Extract from the arborescence of the given directory, or the content of its files",
		Long: `Extract candidate words from a directory tree or a single file.

Path segments of every entry become words. With --recurse and --ext, files
whose path contains the --ext substring contribute their tokenized contents
instead. A single file given as path is always tokenized.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			root := "."
			if len(args) == 1 {
				root = args[0]
			}

			cfg, err := ctx.ensureConfig(cmd)
			if err != nil {
				return err
			}
			opts := flags.resolve(cmd, cfg.ExtractOptions())

			store, logger, err := ctx.openStore(cmd)
			if err != nil {
				return err
			}

			if opts.RecurseIntoFiles && opts.ExtensionFilter == "" {
				logging.WarnWithContext(logger, "--recurse has no effect without --ext", "extract_recurse_without_filter",
					logging.String(logging.FieldErrorHint, "pass --ext with a substring such as .txt"),
					logging.String(logging.FieldImpact, "only path segments are extracted"),
				)
			}

			extractor, err := extract.New(opts, logger)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if flags.show {
				result := extractor.Extract(root)
				for _, word := range result.Words.Sorted() {
					fmt.Fprintln(out, word)
				}
				return nil
			}

			before, err := store.Count()
			if err != nil {
				return err
			}
			result := extractor.Extract(root)
			submitted, err := store.AppendSet(result.Words)
			if err != nil {
				return err
			}
			after, err := store.Count()
			if err != nil {
				return err
			}
			fmt.Fprintln(out, addedMessage(submitted, before, after))
			return nil
		},
	}

	f := cmd.Flags()
	f.IntVarP(&flags.depth, "depth", "d", defaults.Depth, "Maximum depth of extraction")
	f.IntVarP(&flags.length, "length", "l", defaults.Length, "Maximum word length")
	f.BoolVarP(&flags.recurse, "recurse", "r", false, "Extract the content of files matching --ext")
	f.StringVarP(&flags.ext, "ext", "e", "", "Extract content only from files whose path contains this string")
	f.BoolVarP(&flags.keepExt, "keep-ext", "k", false, "Keep file extension")
	f.BoolVar(&flags.hidden, "hidden", false, "Include entries whose name starts with a dot")
	f.BoolVarP(&flags.show, "show", "s", false, "Show the extracted words instead of adding them")
	return cmd
}

// resolve overlays explicitly set flags on the configured defaults.
func (f *extractFlags) resolve(cmd *cobra.Command, opts config.ExtractOptions) config.ExtractOptions {
	flags := cmd.Flags()
	if flags.Changed("depth") {
		opts.MaxDepth = f.depth
	}
	if flags.Changed("length") {
		opts.MaxLength = f.length
	}
	if flags.Changed("recurse") {
		opts.RecurseIntoFiles = f.recurse
	}
	if flags.Changed("ext") {
		opts.ExtensionFilter = f.ext
	}
	if flags.Changed("keep-ext") {
		opts.KeepExtension = f.keepExt
	}
	if flags.Changed("hidden") {
		opts.IncludeHidden = f.hidden
	}
	return opts
}
