package cmd

import (
	"fmt"
	"os"

	"github.com/sahanr/persona/internal/app"
	"github.com/sahanr/persona/internal/bank"
	"github.com/sahanr/persona/internal/insight"
	"github.com/sahanr/persona/internal/llm"
	"github.com/sahanr/persona/internal/store"
	"github.com/spf13/cobra"
)

// runApp opens the store, builds dependencies, and launches the TUI.
func runApp(cmd *cobra.Command) error {
	ctx := cmd.Context()

	banks, err := bank.Load()
	if err != nil {
		return fmt.Errorf("load question banks: %w", err)
	}

	dbPath, err := resolveDBPath(cmd)
	if err != nil {
		return fmt.Errorf("resolve DB path: %w", err)
	}
	st, err := store.Open(dbPath)
	if err != nil {
		return fmt.Errorf("open store: %w", err)
	}
	defer st.Close()

	opts := app.Options{
		Banks:    banks,
		Attempts: st.AttemptRepo(),
	}

	provider, err := llm.NewProviderFromEnv(ctx, st.EventRepo())
	if err != nil {
		fmt.Fprintln(os.Stderr, "LLM provider not configured:", err)
		fmt.Fprintln(os.Stderr, "Result insights will be unavailable.")
	} else {
		opts.Insights = insight.NewService(provider, insight.DefaultConfig())
	}

	return app.Run(opts)
}
