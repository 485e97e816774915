package main

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/kopigraph/kopigraph/internal/cli"
	"github.com/kopigraph/kopigraph/internal/model"
	"github.com/kopigraph/kopigraph/internal/rag"
)

func askCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "ask [question]",
		Short: "Ask the knowledge graph a question",
		Long: `Translate a natural-language question into Cypher, run it against the
graph, and summarize the results.

With no arguments an interactive session starts; type questions one per
line and 'exit' to leave.

Examples:
  kopi ask "which coffees are served in a tall glass?"
  kopi ask                  # Interactive session`,
		RunE: runAsk,
	}

	cmd.Flags().Bool("show-cypher", false, "Print the generated Cypher query")

	return cmd
}

func runAsk(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	showCypher, _ := cmd.Flags().GetBool("show-cypher")
	out := cmd.OutOrStdout()

	client, err := initGraph(ctx)
	if err != nil {
		return fmt.Errorf("failed to connect to graph: %w", err)
	}
	defer func() {
		if closeErr := client.Close(ctx); closeErr != nil {
			slog.Error("Failed to close graph connection", "error", closeErr)
		}
	}()

	translator, err := createTranslator(model.DefaultCatalog())
	if err != nil {
		return err
	}
	defer translator.Close()

	store, err := initStorage(ctx)
	if err != nil {
		return fmt.Errorf("failed to open history database: %w", err)
	}
	defer func() { _ = store.Close() }()

	engine := rag.New(client, translator, store, slog.Default())

	if len(args) > 0 {
		question := strings.Join(args, " ")
		printResult(out, engine.Query(ctx, question), showCypher)
		return nil
	}

	return runInteractive(cmd, engine, showCypher)
}

// runInteractive loops over questions from stdin until exit or interrupt.
func runInteractive(cmd *cobra.Command, engine *rag.Engine, showCypher bool) error {
	out := cmd.OutOrStdout()

	handler := cli.NewInterruptHandler(out)
	ctx := handler.HandleInterrupts(cmd.Context(), true)

	fmt.Fprintln(out, cli.FormatTitle("Coffee Knowledge Graph"))
	fmt.Fprintln(out, cli.StyleSubtle("Ask a question, or try one of these:"))
	for _, q := range rag.SampleQuestions()[:3] {
		fmt.Fprintln(out, cli.StyleSubtle("  • "+q))
	}
	fmt.Fprintln(out, cli.StyleSubtle("Type 'exit' to leave.\n"))

	reader := cli.NewNonBlockingReader(os.Stdin)
	for {
		fmt.Fprint(out, cli.FormatPrompt("kopi"))

		question, err := reader.ReadLine(ctx)
		if err != nil {
			if errors.Is(err, cli.ErrInputCancelled) {
				return nil
			}
			return err
		}

		switch strings.ToLower(question) {
		case "":
			continue
		case "exit", "quit":
			fmt.Fprintln(out, cli.FormatInfo("See you later! ☕"))
			return nil
		}

		printResult(out, engine.Query(ctx, question), showCypher)
		fmt.Fprintln(out)
	}
}

func printResult(out io.Writer, result rag.Result, showCypher bool) {
	if showCypher && result.Cypher != "" {
		fmt.Fprintln(out, cli.StyleSubtle("Cypher: "+result.Cypher))
	}

	if !result.Success {
		fmt.Fprintln(out, cli.FormatError(result.Answer))
		if result.Error != "" {
			fmt.Fprintln(out, cli.StyleSubtle(result.Error))
		}
		return
	}

	fmt.Fprintln(out, result.Answer)
}
