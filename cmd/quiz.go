package cmd

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/user/hip/internal/api"
	"github.com/user/hip/internal/config"
	"github.com/user/hip/internal/quiz"
)

var (
	quizCount       int
	jsonOutput      bool
	plaintextOutput bool
)

var quizCmd = &cobra.Command{
	Use:   "quiz",
	Short: "Fetch one quiz payload and print it",
	Long:  "Fetch a round of questions from the API and print them without playing. JSON output includes the answer keys; plain output hides them.",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load()
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}

		count := quizCount
		if count == 0 {
			count = cfg.Quiz.Count
		}

		client := api.NewClient(cfg.API.BaseURL, cfg.API.Timeout, cfg.Logger())
		resp, err := client.FetchQuiz(context.Background(), api.QuizParams{
			DayKey: resolveDayKey(),
			Count:  count,
		})
		if err != nil {
			return fmt.Errorf("failed to fetch quiz: %w", err)
		}

		if jsonOutput {
			data, err := json.MarshalIndent(resp, "", "  ")
			if err != nil {
				return err
			}
			fmt.Println(string(data))
			return nil
		}
		return printQuiz(resp.Questions)
	},
}

func printQuiz(questions []quiz.Question) error {
	view := quiz.BuildView(questions, nil, nil)
	if view.Notice != "" {
		fmt.Println(view.Notice)
		return nil
	}
	for _, qv := range view.Questions {
		fmt.Println(qv.Title)
		if qv.Description != "" && !plaintextOutput {
			fmt.Printf("   %s\n", qv.Description)
		}
		for i, opt := range qv.Options {
			fmt.Printf("   %c) %s\n", 'a'+i, opt.Label)
		}
		fmt.Println()
	}
	return nil
}

func init() {
	quizCmd.Flags().IntVarP(&quizCount, "count", "c", 0, "Number of questions (default from config)")
	quizCmd.Flags().BoolVarP(&jsonOutput, "json", "j", false, "Output as JSON (includes answer keys)")
	quizCmd.Flags().BoolVarP(&plaintextOutput, "plaintext", "p", false, "Compact plaintext output")
	rootCmd.AddCommand(quizCmd)
}
