package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/jonathan/billbuddy/internal/observability"
	"github.com/jonathan/billbuddy/internal/rendering"
	"github.com/jonathan/billbuddy/internal/sections"
)

func newFormatCmd() *cobra.Command {
	var (
		draftPath string
		format    string
		outPath   string
	)

	cmd := &cobra.Command{
		Use:   "format",
		Short: "Render a draft as a formatted bill",
		Long:  "Render a draft JSON file as a plain-text bill (default), Markdown or an HTML preview.",
		RunE: func(cmd *cobra.Command, _ []string) error {
			draft, err := readDraft(draftPath, cmd.InOrStdin())
			if err != nil {
				return err
			}

			var out string
			switch format {
			case "", "text":
				out = rendering.FormatDraft(draft)
			case "markdown":
				out = rendering.RenderMarkdown(draft)
			case "html":
				if out, err = rendering.RenderHTML(draft); err != nil {
					return err
				}
			default:
				return fmt.Errorf("unsupported format %q (use text, markdown or html)", format)
			}

			if outPath == "" {
				_, err = io.WriteString(cmd.OutOrStdout(), out+"\n")
				return err
			}
			return writeFile(outPath, out)
		},
	}
	cmd.Flags().StringVarP(&draftPath, "draft", "d", "", "Path to draft JSON file, or - for stdin")
	cmd.Flags().StringVarP(&format, "format", "f", "text", "Output format: text, markdown or html")
	cmd.Flags().StringVarP(&outPath, "out", "o", "", "Write to this file instead of stdout")
	return cmd
}

func newSectionsCmd() *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "sections",
		Short: "List the bill sections and their drafting guidance",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if asJSON {
				return writeJSON(cmd.OutOrStdout(), sections.All())
			}
			observability.NewPrinter(cmd.OutOrStdout()).PrintSections(sections.All())
			return nil
		},
	}
	cmd.Flags().BoolVar(&asJSON, "json", false, "Print the catalog as JSON")
	return cmd
}
