package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"sort"
	"strings"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/abstractlab/yayi/internal/api"
	"github.com/abstractlab/yayi/internal/flow"
	"github.com/abstractlab/yayi/internal/llm"
	"github.com/abstractlab/yayi/internal/quiz"
)

var scoreCmd = &cobra.Command{
	Use:   "score",
	Short: "Score a saved answer set without the TUI",
	Long: "Reads a JSON object mapping question id to value, e.g. {\"n1\":3,\"n2\":1},\n" +
		"from --answers (or stdin with \"-\") and prints the scores and commentary.",
	RunE: func(cmd *cobra.Command, args []string) error {
		modeFlag, _ := cmd.Flags().GetString("mode")
		answersPath, _ := cmd.Flags().GetString("answers")
		noCommentary, _ := cmd.Flags().GetBool("no-commentary")
		asJSON, _ := cmd.Flags().GetBool("json")

		mode, err := quiz.ParseMode(modeFlag)
		if err != nil {
			return err
		}
		answers, err := readAnswers(cmd.InOrStdin(), answersPath)
		if err != nil {
			return err
		}

		d, err := buildDeps(cmd, !noCommentary)
		if err != nil {
			return err
		}
		defer d.Close()

		for _, id := range unknownQuestions(d.catalog, mode, answers) {
			fmt.Fprintf(os.Stderr, "warning: %q is not a %s question\n", id, mode)
		}

		ctx := llm.WithSession(cmd.Context(), uuid.NewString())
		res := d.evaluator.Evaluate(ctx, mode, answers)

		out := cmd.OutOrStdout()
		if asJSON {
			enc := json.NewEncoder(out)
			enc.SetIndent("", "  ")
			return enc.Encode(api.NewScoreResponse(res))
		}
		printResult(out, res, !noCommentary)
		return nil
	},
}

func readAnswers(stdin io.Reader, path string) (quiz.Answers, error) {
	if path == "" {
		return nil, fmt.Errorf("--answers is required")
	}
	r := stdin
	if path != "-" {
		f, err := os.Open(path)
		if err != nil {
			return nil, fmt.Errorf("open answers: %w", err)
		}
		defer f.Close()
		r = f
	}

	var answers quiz.Answers
	if err := json.NewDecoder(r).Decode(&answers); err != nil {
		return nil, fmt.Errorf("decode answers: %w", err)
	}
	if answers == nil {
		answers = quiz.Answers{}
	}
	return answers, nil
}

func unknownQuestions(c *quiz.Catalog, mode quiz.Mode, answers quiz.Answers) []string {
	var unknown []string
	for id := range answers {
		if _, ok := c.Question(mode, id); !ok {
			unknown = append(unknown, id)
		}
	}
	sort.Strings(unknown)
	return unknown
}

func printResult(w io.Writer, res flow.Result, withCommentary bool) {
	fmt.Fprintf(w, "Mode:              %s\n", res.Mode.DisplayName())
	fmt.Fprintf(w, "Repression index:  %d\n", res.Scores.Overall)

	if len(res.Scores.Factors) > 0 {
		width := 0
		for _, f := range res.Scores.Factors {
			if len(f.Dimension) > width {
				width = len(f.Dimension)
			}
		}
		fmt.Fprintln(w)
		fmt.Fprintln(w, "System defence factors")
		fmt.Fprintln(w, strings.Repeat("─", width+30))
		for _, f := range res.Scores.Factors {
			fmt.Fprintf(w, "%-*s  %6.1f  %s\n", width, f.Dimension, f.Score, bar(f.Score, 20))
		}
	}

	if withCommentary {
		fmt.Fprintln(w)
		fmt.Fprintf(w, "Commentary (%s)\n", res.Commentary.Source)
		fmt.Fprintln(w, strings.Repeat("─", 40))
		fmt.Fprintln(w, res.Commentary.Text)
	}
}

func bar(score float64, width int) string {
	n := int(score / 100 * float64(width))
	if n < 0 {
		n = 0
	}
	if n > width {
		n = width
	}
	return strings.Repeat("█", n) + strings.Repeat("·", width-n)
}

func init() {
	scoreCmd.Flags().StringP("mode", "m", string(quiz.ModeNormal), "Questionnaire mode: normal or detailed")
	scoreCmd.Flags().StringP("answers", "a", "", "Path to a JSON answers file, or - for stdin")
	scoreCmd.Flags().Bool("no-commentary", false, "Skip the LLM commentary")
	scoreCmd.Flags().Bool("json", false, "Print the result as JSON")
}
