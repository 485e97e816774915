package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/kopigraph/kopigraph/internal/cli"
)

func historyCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "history",
		Short: "Show recent questions and answers",
		Long: `List the most recent questions asked of the knowledge graph,
newest first. Only the last 20 exchanges are retained.`,
		RunE: runHistory,
	}

	cmd.Flags().IntP("limit", "n", 0, "Maximum entries to show (0 = all retained)")
	cmd.Flags().Bool("clear", false, "Delete all history entries")

	return cmd
}

func runHistory(cmd *cobra.Command, _ []string) error {
	ctx := cmd.Context()
	limit, _ := cmd.Flags().GetInt("limit")
	clear, _ := cmd.Flags().GetBool("clear")
	out := cmd.OutOrStdout()

	store, err := initStorage(ctx)
	if err != nil {
		return fmt.Errorf("failed to open history database: %w", err)
	}
	defer func() { _ = store.Close() }()

	if clear {
		if err := store.ClearHistory(ctx); err != nil {
			return fmt.Errorf("failed to clear history: %w", err)
		}
		fmt.Fprintln(out, cli.FormatSuccess("History cleared."))
		return nil
	}

	entries, err := store.ListHistory(ctx, limit)
	if err != nil {
		return fmt.Errorf("failed to list history: %w", err)
	}

	if len(entries) == 0 {
		fmt.Fprintln(out, cli.StyleSubtle("No questions asked yet. Try: kopi ask"))
		return nil
	}

	fmt.Fprintln(out, cli.FormatTitle("Question History"))
	for _, entry := range entries {
		marker := cli.SuccessIcon
		if !entry.Success {
			marker = cli.ErrorIcon
		}
		fmt.Fprintf(out, "%s %s %s\n", marker,
			cli.StyleSubtle(entry.CreatedAt.Format("2006-01-02 15:04")),
			cli.BoldStyle.Render(entry.Question))
		if entry.Answer != "" {
			fmt.Fprintln(out, "  "+entry.Answer)
		}
	}

	return nil
}
