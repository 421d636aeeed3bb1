package main

import (
	"bufio"
	"fmt"
	"io"

	"github.com/cockroachdb/errors"
	json "github.com/goccy/go-json"
	"github.com/spf13/cobra"

	"wordlexer/internal/analysis"
	"wordlexer/internal/lexer"
)

func newTokenizeCmd() *cobra.Command {
	var (
		punctuation  bool
		splitterName string
		asWords      bool
		length       int
	)

	cmd := &cobra.Command{
		Use:   "tokenize [sentence...]",
		Short: "Print the tokens of each sentence as a JSON array",
		Long: `Tokenize every argument as a separate sentence, or every line of stdin
when no arguments are given. With --words the arguments are taken as the
already split words of a single sentence.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			if asWords {
				return writeTokens(out, lexer.AnnotateWords(args, length))
			}

			splitter, err := analysis.NewRegistry().Get(splitterName)
			if err != nil {
				return err
			}
			lx := lexer.NewLexer(splitter)

			tokenize := func(sentence string) error {
				tokens, err := lx.Tokenize(sentence, lexer.WithPunctuation(punctuation))
				if err != nil {
					return errors.Wrapf(err, "tokenize %q", sentence)
				}
				return writeTokens(out, tokens)
			}

			if len(args) > 0 {
				for _, sentence := range args {
					if err := tokenize(sentence); err != nil {
						return err
					}
				}
				return nil
			}

			scanner := bufio.NewScanner(cmd.InOrStdin())
			for scanner.Scan() {
				if err := tokenize(scanner.Text()); err != nil {
					return err
				}
			}
			return errors.Wrap(scanner.Err(), "read stdin")
		},
	}

	cmd.Flags().BoolVarP(&punctuation, "punctuation", "p", false, "keep punctuation marks as tokens")
	cmd.Flags().StringVarP(&splitterName, "splitter", "s", "standard", "splitter to use")
	cmd.Flags().BoolVar(&asWords, "words", false, "treat arguments as pre-split words")
	cmd.Flags().IntVar(&length, "length", lexer.UnspecifiedLength, "sentence length in characters, with --words")
	return cmd
}

func newSplittersCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "splitters",
		Short: "List the available splitters",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			for _, name := range analysis.NewRegistry().Names() {
				fmt.Fprintln(cmd.OutOrStdout(), name)
			}
			return nil
		},
	}
}

func writeTokens(w io.Writer, tokens []lexer.Token) error {
	return json.NewEncoder(w).Encode(tokens)
}
