package main

import (
	"github.com/spf13/cobra"
)

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "wordlexer",
		Short:         "Split sentences into annotated word tokens",
		Version:       Version,
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.AddCommand(newTokenizeCmd(), newSplittersCmd(), newServeCmd())
	return root
}
