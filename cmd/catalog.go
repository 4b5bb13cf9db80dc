package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/abstractlab/yayi/internal/quiz"
)

var catalogCmd = &cobra.Command{
	Use:   "catalog",
	Short: "Print the question catalog",
	Long: "Without --mode, prints the whole catalog as JSON in the format --catalog accepts.\n" +
		"With --mode, lists that questionnaire as text.",
	RunE: func(cmd *cobra.Command, args []string) error {
		modeFlag, _ := cmd.Flags().GetString("mode")

		c, _, err := loadCatalog(cmd)
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		if modeFlag == "" {
			enc := json.NewEncoder(out)
			enc.SetIndent("", "  ")
			return enc.Encode(c)
		}

		mode, err := quiz.ParseMode(modeFlag)
		if err != nil {
			return err
		}
		printQuestions(out, c, mode)
		return nil
	},
}

func printQuestions(w io.Writer, c *quiz.Catalog, mode quiz.Mode) {
	qs := c.Questions(mode)
	fmt.Fprintf(w, "%s (%d questions)\n", mode.DisplayName(), len(qs))
	fmt.Fprintln(w, strings.Repeat("─", 60))

	for _, q := range qs {
		fmt.Fprintf(w, "%-4s [%s] %s\n", q.ID, q.Dimension, q.Text)
		if len(q.Options) > 0 {
			for i, opt := range q.Options {
				fmt.Fprintf(w, "       %d. %s\n", i+1, opt)
			}
		}
	}

	if mode == quiz.ModeDetailed {
		fmt.Fprintln(w)
		fmt.Fprintf(w, "Scale: %s\n", likertScale())
	}
}

func likertScale() string {
	parts := make([]string, 0, len(quiz.LikertLabels))
	for i, label := range quiz.LikertLabels {
		parts = append(parts, fmt.Sprintf("%d=%s", i+quiz.LikertMin, label))
	}
	return strings.Join(parts, ", ")
}

func init() {
	catalogCmd.Flags().StringP("mode", "m", "", "List one questionnaire: normal or detailed")
}
