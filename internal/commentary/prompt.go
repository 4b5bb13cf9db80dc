package commentary

import (
	"fmt"
	"strings"

	"github.com/abstractlab/yayi/internal/quiz"
	"github.com/abstractlab/yayi/internal/scoring"
)

// Score bands that switch the tone of the roast.
const (
	highScore = 70
	lowScore  = 30
)

func buildPrompt(mode quiz.Mode, scores scoring.Scores, language string) string {
	var b strings.Builder

	b.WriteString("You are a deadpan internet philosopher famous for roasting people with failure aesthetics and bottom-layer logic. ")
	b.WriteString("A user has just finished a psychological-style quiz called \"Are you repressed?\".\n\n")

	b.WriteString(fmt.Sprintf("Quiz mode: %s\n", mode.PromptLabel()))
	b.WriteString(fmt.Sprintf("Overall repression index: %d/100\n", scores.Overall))
	b.WriteString("Dimension scores:\n")
	if len(scores.Factors) == 0 {
		b.WriteString("None\n")
	}
	for _, f := range scores.Factors {
		b.WriteString(fmt.Sprintf("- %s: %.1f\n", f.Dimension, f.Score))
	}

	b.WriteString(fmt.Sprintf(`
Instructions:
Write a 100-150 word commentary on these results.
1. Be sharp-tongued and deconstructive, with a philosophical twist. Never sound official.
2. Work in at least two running jokes: the 15-yuan box lunch, eye contact with aunties in the lift, the "bottom-layer logic" of everything, the iOS vs Android theory of life.
3. End on a note of redemption through embracing failure.
4. If the overall index is above %d, say they could not even hold down a day-labour gig. If it is below %d, mock them for living too comfortably; this repression comes from having too much free time.
Reply in %s. Plain text only, no Markdown.`, highScore, lowScore, language))

	return b.String()
}
