package main

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/jonathan/billbuddy/internal/observability"
	"github.com/jonathan/billbuddy/internal/types"
)

func commandContext(cmd *cobra.Command) context.Context {
	if ctx := cmd.Context(); ctx != nil {
		return ctx
	}
	return context.Background()
}

func newFeedbackCmd(opts *rootOptions) *cobra.Command {
	var (
		draftPath string
		asJSON    bool
	)

	cmd := &cobra.Command{
		Use:   "feedback",
		Short: "Review a bill draft",
		Long:  "Review a draft JSON file and list feedback per section. Uses the language model when configured and rule-based checks otherwise.",
		RunE: func(cmd *cobra.Command, _ []string) error {
			draft, err := readDraft(draftPath, cmd.InOrStdin())
			if err != nil {
				return err
			}

			rt, err := newRuntime(commandContext(cmd), opts)
			if err != nil {
				return err
			}
			defer rt.Close()

			resp := rt.assistant.Feedback(commandContext(cmd), draft)
			if asJSON {
				return writeJSON(cmd.OutOrStdout(), resp)
			}
			observability.NewPrinter(cmd.OutOrStdout()).PrintFeedback(resp)
			return nil
		},
	}
	cmd.Flags().StringVarP(&draftPath, "draft", "d", "", "Path to draft JSON file, or - for stdin")
	cmd.Flags().BoolVar(&asJSON, "json", false, "Print the response as JSON")
	return cmd
}

func newCoachCmd(opts *rootOptions) *cobra.Command {
	var (
		draftPath string
		section   string
		asJSON    bool
	)

	cmd := &cobra.Command{
		Use:   "coach",
		Short: "Suggest a rewrite for one section",
		Long:  "Suggest improved text for one section of a draft. The section's current text is taken from the draft file.",
		RunE: func(cmd *cobra.Command, _ []string) error {
			id := types.SectionID(strings.ToLower(strings.TrimSpace(section)))
			if !id.Valid() {
				return fmt.Errorf("unknown section %q (run 'billbuddy sections' for the list)", section)
			}

			draft, err := readDraft(draftPath, cmd.InOrStdin())
			if err != nil {
				return err
			}

			rt, err := newRuntime(commandContext(cmd), opts)
			if err != nil {
				return err
			}
			defer rt.Close()

			resp := rt.assistant.Coach(commandContext(cmd), id, draft.Get(id), draft)
			if asJSON {
				return writeJSON(cmd.OutOrStdout(), resp)
			}
			observability.NewPrinter(cmd.OutOrStdout()).PrintSuggestion(id, resp)
			return nil
		},
	}
	cmd.Flags().StringVarP(&draftPath, "draft", "d", "", "Path to draft JSON file, or - for stdin")
	cmd.Flags().StringVarP(&section, "section", "s", "", "Section to coach (title, purpose, definitions, provisions, fiscal, enforcement)")
	cmd.Flags().BoolVar(&asJSON, "json", false, "Print the response as JSON")
	_ = cmd.MarkFlagRequired("section")
	return cmd
}

func newResearchCmd(opts *rootOptions) *cobra.Command {
	var (
		topic  string
		asJSON bool
	)

	cmd := &cobra.Command{
		Use:   "research [topic]",
		Short: "Gather research highlights for a topic",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if topic == "" && len(args) == 1 {
				topic = args[0]
			}

			rt, err := newRuntime(commandContext(cmd), opts)
			if err != nil {
				return err
			}
			defer rt.Close()

			resp := rt.assistant.Research(commandContext(cmd), topic)
			if asJSON {
				return writeJSON(cmd.OutOrStdout(), resp)
			}
			observability.NewPrinter(cmd.OutOrStdout()).PrintResearch(topic, resp)
			return nil
		},
	}
	cmd.Flags().StringVarP(&topic, "topic", "t", "", "Research topic")
	cmd.Flags().BoolVar(&asJSON, "json", false, "Print the response as JSON")
	return cmd
}

func newReviewCmd(opts *rootOptions) *cobra.Command {
	var (
		draftPath string
		asJSON    bool
	)

	cmd := &cobra.Command{
		Use:   "review",
		Short: "Review a draft and coach every section",
		RunE: func(cmd *cobra.Command, _ []string) error {
			draft, err := readDraft(draftPath, cmd.InOrStdin())
			if err != nil {
				return err
			}

			rt, err := newRuntime(commandContext(cmd), opts)
			if err != nil {
				return err
			}
			defer rt.Close()

			resp := rt.assistant.Review(commandContext(cmd), draft)
			if asJSON {
				return writeJSON(cmd.OutOrStdout(), resp)
			}
			observability.NewPrinter(cmd.OutOrStdout()).PrintReview(resp)
			return nil
		},
	}
	cmd.Flags().StringVarP(&draftPath, "draft", "d", "", "Path to draft JSON file, or - for stdin")
	cmd.Flags().BoolVar(&asJSON, "json", false, "Print the response as JSON")
	return cmd
}
