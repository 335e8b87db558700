package cmd

import (
	"bufio"
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/sahanr/persona/internal/bank"
	"github.com/sahanr/persona/internal/quiz"
	"github.com/sahanr/persona/internal/scoring"
	"github.com/sahanr/persona/internal/session"
	"github.com/spf13/cobra"
)

var takeCmd = &cobra.Command{
	Use:   "take",
	Short: "Take an assessment on stdin/stdout (no database)",
	Long: `Answer an assessment question by question in plain text.

This is a stateless mode — nothing is saved. Useful over SSH, in scripts,
or for checking bank content. Enter option numbers separated by commas,
or "b" to go back one question.`,
	RunE: runTake,
}

func init() {
	takeCmd.Flags().String("type", "mbti", "Assessment type: mbti or bigfive")
}

func runTake(cmd *cobra.Command, args []string) error {
	kindVal, _ := cmd.Flags().GetString("type")
	kind, err := parseKind(kindVal)
	if err != nil {
		return err
	}

	banks, err := bank.Load()
	if err != nil {
		return fmt.Errorf("load question banks: %w", err)
	}

	sess, err := session.New(banks, kind)
	if err != nil {
		return fmt.Errorf("start session: %w", err)
	}

	fmt.Printf("%s — %d questions\n", kind.DisplayName(), sess.Total())
	fmt.Println("Answer with option numbers (e.g. 1 or 1,3). Enter b to go back.")
	fmt.Println()

	scanner := bufio.NewScanner(os.Stdin)
	for !sess.Completed() {
		q, err := sess.CurrentQuestion()
		if err != nil {
			return err
		}

		fmt.Printf("── Question %d/%d ──\n", sess.CurrentIndex()+1, sess.Total())
		fmt.Println(q.Text)
		for i, opt := range q.Options {
			marker := " "
			if saved, ok := sess.SavedSelection(); ok && saved.Contains(i) {
				marker = "*"
			}
			fmt.Printf(" %s%d) %s\n", marker, i+1, opt.Text)
		}

		fmt.Print("\n> ")
		if !scanner.Scan() {
			fmt.Println("\n(input closed)")
			return nil
		}
		line := strings.TrimSpace(scanner.Text())

		if strings.EqualFold(line, "b") {
			if err := sess.GoBack(); err != nil {
				if errors.Is(err, quiz.ErrAtFirst) {
					fmt.Println("Already at the first question.")
					fmt.Println()
					continue
				}
				return err
			}
			fmt.Println()
			continue
		}

		selection, err := parseSelection(line, len(q.Options))
		if err != nil {
			fmt.Println(err)
			fmt.Println()
			continue
		}

		if err := sess.SubmitAnswer(selection); err != nil {
			if errors.Is(err, quiz.ErrEmptySelection) {
				fmt.Println("Pick at least one option.")
				fmt.Println()
				continue
			}
			return err
		}
		fmt.Println()
	}

	printOutcome(sess.Outcome())
	return nil
}

// parseSelection turns "1,3" into zero-based option indices.
func parseSelection(line string, optionCount int) (quiz.Selection, error) {
	fields := strings.FieldsFunc(line, func(r rune) bool {
		return r == ',' || r == ' '
	})
	var sel quiz.Selection
	for _, f := range fields {
		n, err := strconv.Atoi(f)
		if err != nil {
			return nil, fmt.Errorf("not a number: %q", f)
		}
		if n < 1 || n > optionCount {
			return nil, fmt.Errorf("option %d out of range (1-%d)", n, optionCount)
		}
		sel = append(sel, n-1)
	}
	return sel, nil
}

func printOutcome(out *session.Outcome) {
	fmt.Println(strings.Repeat("─", 60))
	fmt.Printf("%s  (score %d)\n", out.TypeLabel, out.Score)
	fmt.Println(strings.Repeat("─", 60))
	fmt.Println(out.Profile.Description)
	fmt.Println()
	fmt.Printf("Strength:  %s\n", out.Profile.Strength)
	fmt.Printf("Weakness:  %s\n", out.Profile.Weakness)
	fmt.Printf("Try:       %s\n", out.Profile.Improvement)
	fmt.Println()

	switch out.Kind {
	case quiz.KindMBTI:
		for _, p := range scoring.Pairs {
			fmt.Printf("%s %3d  /  %s %3d\n",
				p.First, out.Categorical[p.First],
				p.Second, out.Categorical[p.Second])
		}
	case quiz.KindBigFive:
		for _, tv := range out.Continuous {
			fmt.Printf("%-17s %3d / %d\n", tv.Trait, tv.Value, scoring.TraitScale)
		}
	}
}

// parseKind maps a CLI type flag to an assessment kind.
func parseKind(val string) (quiz.AssessmentKind, error) {
	kind := quiz.AssessmentKind(strings.ToLower(val))
	if !kind.Valid() {
		return "", fmt.Errorf("invalid type %q: must be mbti or bigfive", val)
	}
	return kind, nil
}
