package cmd

import (
	"fmt"

	"github.com/sahanr/persona/internal/insight"
	"github.com/sahanr/persona/internal/llm"
	"github.com/sahanr/persona/internal/quiz"
	"github.com/sahanr/persona/internal/store"
	"github.com/spf13/cobra"
)

var insightCmd = &cobra.Command{
	Use:   "insight",
	Short: "Generate an LLM reading of the latest attempt",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
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

		latest, err := s.AttemptRepo().Latest(ctx, kind)
		if err != nil {
			return fmt.Errorf("load latest attempt: %w", err)
		}
		if latest == nil {
			return fmt.Errorf("no attempts stored yet")
		}

		provider, err := llm.NewProviderFromEnv(ctx, s.EventRepo())
		if err != nil {
			return fmt.Errorf("LLM provider: %w", err)
		}

		svc := insight.NewService(provider, insight.DefaultConfig())
		ins, err := svc.Generate(ctx, insight.Input{Result: latest.Result})
		if err != nil {
			return err
		}

		fmt.Printf("%s — %s (score %d)\n\n", latest.Result.QuizType, latest.Result.Type, latest.Result.Score)
		fmt.Println(ins.Headline)
		fmt.Println()
		fmt.Println(ins.Narrative)
		if len(ins.Suggestions) > 0 {
			fmt.Println()
			for _, sug := range ins.Suggestions {
				fmt.Println("•", sug)
			}
		}
		return nil
	},
}

func init() {
	insightCmd.Flags().StringP("type", "t", "", "Use the latest attempt of this type (mbti or bigfive)")
}
