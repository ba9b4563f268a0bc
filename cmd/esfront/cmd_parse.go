package main

import (
	"encoding/json"
	"fmt"

	"github.com/kestrelscript/esfront/generator"
	"github.com/kestrelscript/esfront/pipeline"
	"github.com/kestrelscript/esfront/source"
	"github.com/spf13/cobra"
)

func newParseCmd() *cobra.Command {
	var outputFormat string

	cmd := &cobra.Command{
		Use:   "parse <source>",
		Short: "Run the full pipeline and print the resulting statements",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			url, err := source.Resolve(args[0])
			if err != nil {
				return fmt.Errorf("resolve source: %w", err)
			}

			switch outputFormat {
			case "json", "source":
			default:
				return fmt.Errorf("unknown format: %s", outputFormat)
			}

			ctx := cmd.Context()
			stmts, errs := pipeline.Run(ctx, url)

			enc := json.NewEncoder(cmd.OutOrStdout())
			for batch := range stmts {
				for _, stmt := range batch {
					switch outputFormat {
					case "json":
						if err := enc.Encode(stmt); err != nil {
							return fmt.Errorf("encode json: %w", err)
						}
					case "source":
						fmt.Fprintln(cmd.OutOrStdout(), generator.Generate(stmt))
					}
				}
			}

			select {
			case err := <-errs:
				if err != nil {
					return err
				}
			default:
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&outputFormat, "format", "f", "json", "output format (json, source)")

	return cmd
}
