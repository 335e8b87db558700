package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/sahanr/persona/internal/quiz"
	"github.com/sahanr/persona/internal/session"
	"github.com/sahanr/persona/internal/store"
	"github.com/spf13/cobra"
)

// exportedAttempt is the JSON shape written by the export command.
type exportedAttempt struct {
	SessionID string               `json:"sessionId"`
	Timestamp time.Time            `json:"timestamp"`
	Result    session.ResultRecord `json:"result"`
	Answers   []quiz.AnswerRecord  `json:"answers"`
}

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Write the latest attempt as JSON to stdout",
	RunE: func(cmd *cobra.Command, args []string) error {
		kindVal, _ := cmd.Flags().GetString("type")
		all, _ := cmd.Flags().GetBool("all")

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
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")

		if all {
			attempts, err := s.AttemptRepo().List(ctx, store.QueryOpts{Kind: kind})
			if err != nil {
				return fmt.Errorf("list attempts: %w", err)
			}
			out := make([]exportedAttempt, 0, len(attempts))
			for _, a := range attempts {
				out = append(out, toExported(a))
			}
			return enc.Encode(out)
		}

		latest, err := s.AttemptRepo().Latest(ctx, kind)
		if err != nil {
			return fmt.Errorf("load latest attempt: %w", err)
		}
		if latest == nil {
			return fmt.Errorf("no attempts stored yet")
		}
		return enc.Encode(toExported(*latest))
	},
}

func toExported(a store.Attempt) exportedAttempt {
	return exportedAttempt{
		SessionID: a.SessionID,
		Timestamp: a.Timestamp,
		Result:    a.Result,
		Answers:   a.Answers,
	}
}

func init() {
	exportCmd.Flags().StringP("type", "t", "", "Filter by assessment type (mbti or bigfive)")
	exportCmd.Flags().Bool("all", false, "Export every stored attempt instead of the latest")
}
