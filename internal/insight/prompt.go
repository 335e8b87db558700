package insight

import (
	"fmt"
	"strings"

	"github.com/sahanr/persona/internal/scoring"
)

const insightSystemPrompt = `You are a thoughtful, grounded personality coach. You write short readings of self-assessment results for adults. You never overclaim: these are tendencies from a brief questionnaire, not clinical findings. Warm but plain language, no jargon, no flattery.`

func buildInsightUserMessage(input Input) string {
	var b strings.Builder

	b.WriteString(fmt.Sprintf("Assessment: %s\n", input.Result.QuizType))
	b.WriteString(fmt.Sprintf("Result: %s (score %d)\n", input.Result.Type, input.Result.Score))
	b.WriteString(fmt.Sprintf("Description: %s\n", input.Result.Description))
	b.WriteString(fmt.Sprintf("Strength: %s\n", input.Result.Strength))
	b.WriteString(fmt.Sprintf("Weakness: %s\n", input.Result.Weakness))
	b.WriteString(fmt.Sprintf("Improvement area: %s\n", input.Result.Improvement))

	if len(input.Categorical) > 0 {
		b.WriteString("\nDimension scores (each pair sums to 100):\n")
		for _, p := range scoring.Pairs {
			b.WriteString(fmt.Sprintf("- %s %d / %s %d\n",
				p.First, input.Categorical[p.First],
				p.Second, input.Categorical[p.Second]))
		}
	}

	if len(input.Continuous) > 0 {
		b.WriteString(fmt.Sprintf("\nTrait scores (0-%d):\n", scoring.TraitScale))
		for _, tv := range input.Continuous {
			b.WriteString(fmt.Sprintf("- %s: %d\n", tv.Trait, tv.Value))
		}
	}

	b.WriteString(`
Instructions:
Write a reading of this result:
1. A short headline (3-8 words) that captures the result without repeating the type label verbatim.
2. A 3-5 sentence narrative. Reference the strongest and weakest dimensions by name. Frame tendencies as leanings, not fixed traits.
3. 2-4 concrete suggestions the person could try this week, each one sentence, each tied to the improvement area or the weakest dimension.`)

	return b.String()
}
