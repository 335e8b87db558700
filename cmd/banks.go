package cmd

import (
	"fmt"

	"github.com/sahanr/persona/internal/bank"
	"github.com/sahanr/persona/internal/quiz"
	"github.com/spf13/cobra"
)

var banksCmd = &cobra.Command{
	Use:   "banks",
	Short: "Validate and summarize the embedded question banks",
	RunE: func(cmd *cobra.Command, args []string) error {
		banks, err := bank.Load()
		if err != nil {
			return fmt.Errorf("bank validation failed: %w", err)
		}

		for _, kind := range quiz.AllKinds() {
			b, err := banks.Bank(kind)
			if err != nil {
				return err
			}
			table, err := banks.ProfileTable(kind)
			if err != nil {
				return err
			}
			lo, hi := bank.ScoreDomain(kind)
			fmt.Printf("%-20s %3d questions, %3d profiles, score domain [%d, %d]\n",
				kind.DisplayName(), b.Len(), len(table.Records), lo, hi)
		}

		fmt.Println("\nAll banks valid.")
		return nil
	},
}
