package main

import (
	"fmt"

	"github.com/kestrelscript/esfront/codepoint"
	"github.com/kestrelscript/esfront/diag"
	"github.com/kestrelscript/esfront/engine"
	"github.com/kestrelscript/esfront/lexer"
	"github.com/kestrelscript/esfront/source"
	"github.com/kestrelscript/esfront/span"
	"github.com/kestrelscript/esfront/textdecode"
	"github.com/spf13/cobra"
)

func newTokensCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "tokens <source>",
		Short: "Run the lexical stage only and print each token",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			url, err := source.Resolve(args[0])
			if err != nil {
				return fmt.Errorf("resolve source: %w", err)
			}

			ctx := cmd.Context()
			bytes, sourceErrs := source.Open(ctx, url)
			runes := textdecode.Decode(bytes)
			cps := codepoint.Stream(ctx, url.String(), runes)
			toks, lexErrs := engine.Run(ctx, cps, lexer.New())

			for batch := range toks {
				for _, tok := range batch {
					fmt.Fprintf(cmd.OutOrStdout(), "%-14s %s-%s %q\n", tok.Kind, tok.Span.Begin, tok.Span.End, tok.Payload)
				}
			}

			if err := drainFirst(sourceErrs, lexErrs); err != nil {
				return diag.FromEngineError(err, url.String(), span.Cursor{})
			}
			return nil
		},
	}

	return cmd
}

// drainFirst non-blockingly checks each error channel in order and returns
// the first non-nil error found, if any.
func drainFirst(chans ...<-chan error) error {
	for _, ch := range chans {
		select {
		case err := <-ch:
			if err != nil {
				return err
			}
		default:
		}
	}
	return nil
}
