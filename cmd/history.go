package cmd

import (
	"context"
	"fmt"
	"strings"

	"github.com/sahanr/persona/internal/quiz"
	"github.com/sahanr/persona/internal/store"
	"github.com/spf13/cobra"
)

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "List stored assessment attempts",
	RunE: func(cmd *cobra.Command, args []string) error {
		limit, _ := cmd.Flags().GetInt("limit")
		kindVal, _ := cmd.Flags().GetString("type")

		var kind quiz.AssessmentKind
		if kindVal != "" {
			k, err := parseKind(kindVal)
			if err != nil {
				return err
			}
			kind = k
		}

		dbPath, err := resolveDBPath(cmd)
		if err != nil {
			return fmt.Errorf("resolve database path: %w", err)
		}
		s, err := store.Open(dbPath)
		if err != nil {
			return fmt.Errorf("open database: %w", err)
		}
		defer s.Close()

		ctx := context.Background()
		attempts, err := s.AttemptRepo().List(ctx, store.QueryOpts{Kind: kind, Limit: limit})
		if err != nil {
			return fmt.Errorf("list attempts: %w", err)
		}

		if len(attempts) == 0 {
			fmt.Println("No attempts found.")
			return nil
		}

		fmt.Printf("%-5s  %-19s  %-10s  %-8s  %s\n",
			"ID", "Timestamp", "Type", "Result", "Score")
		fmt.Println(strings.Repeat("─", 60))

		for _, a := range attempts {
			fmt.Printf("%-5d  %-19s  %-10s  %-8s  %d\n",
				a.ID,
				a.Timestamp.Local().Format("2006-01-02 15:04:05"),
				a.Result.QuizType,
				a.Result.Type,
				a.Result.Score,
			)
		}
		return nil
	},
}

func init() {
	historyCmd.Flags().IntP("limit", "n", 20, "Number of attempts to show")
	historyCmd.Flags().StringP("type", "t", "", "Filter by assessment type (mbti or bigfive)")
}
