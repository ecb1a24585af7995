package main

import (
	"bufio"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/cobra"
	"workwithme/internal/models/db_models"
	"workwithme/internal/models/response_models"
)

var wizardCmd = &cobra.Command{
	Use:   "wizard",
	Short: "Answer the questionnaire and get a shareable link",
	RunE:  runWizard,
}

func runWizard(cmd *cobra.Command, args []string) error {
	api := apiClient()
	reader := bufio.NewReader(os.Stdin)

	name := prompt(reader, "Your name: ")
	if strings.TrimSpace(name) == "" {
		return fmt.Errorf("name cannot be empty")
	}

	profile, err := api.CreateProfile(name)
	if err != nil {
		return err
	}

	categories, err := api.ActiveCategories()
	if err != nil {
		return err
	}
	questions, err := api.ActiveQuestions()
	if err != nil {
		return err
	}

	byCategory := make(map[string][]response_models.QuestionResponse)
	for _, q := range questions {
		byCategory[q.CategoryID] = append(byCategory[q.CategoryID], q)
	}

	// Answers live only here until the final submit.
	responses := db_models.ResponseMap{}

	for i, category := range categories {
		categoryQuestions := byCategory[category.ID]
		if len(categoryQuestions) == 0 {
			continue
		}

		fmt.Printf("\n[%d/%d] %s\n\n", i+1, len(categories), category.Name)
		answers := map[string]db_models.Answer{}

		for _, q := range categoryQuestions {
			value, answered := askQuestion(reader, q)
			if !answered {
				continue
			}
			answers[q.QuestionID] = db_models.Answer{
				Value:      value,
				AnsweredAt: time.Now().UTC(),
			}
		}

		if len(answers) > 0 {
			responses[category.ID] = answers
		}
	}

	fmt.Println("\nSummary:")
	for _, category := range categories {
		answers, ok := responses[category.ID]
		if !ok {
			continue
		}
		fmt.Printf("  %s: %d answered\n", category.Name, len(answers))
	}

	if !strings.EqualFold(prompt(reader, "\nSubmit profile? [y/N]: "), "y") {
		fmt.Println("Discarded. Nothing was saved.")
		return nil
	}

	updated, err := api.UpdateProfile(profile.ID, responses)
	if err != nil {
		return err
	}

	fmt.Printf("\nProfile saved. Share it with:\n  %s/api/profiles/share/%s\n", serverURL, updated.ShareableID)
	return nil
}

func askQuestion(reader *bufio.Reader, q response_models.QuestionResponse) (db_models.AnswerValue, bool) {
	fmt.Println(q.Text)

	switch q.Type {
	case string(db_models.TypeChoice):
		for i, choice := range q.Choices {
			fmt.Printf("  %d) %s\n", i+1, choice)
		}
		raw := prompt(reader, "Choice number (blank to skip): ")
		if raw == "" {
			return db_models.AnswerValue{}, false
		}
		n, err := strconv.Atoi(raw)
		if err != nil || n < 1 || n > len(q.Choices) {
			fmt.Println("  skipped (not a valid choice)")
			return db_models.AnswerValue{}, false
		}
		return db_models.TextValue(q.Choices[n-1]), true

	case string(db_models.TypeMultiChoice):
		for i, choice := range q.Choices {
			fmt.Printf("  %d) %s\n", i+1, choice)
		}
		raw := prompt(reader, "Choice numbers, comma separated (blank to skip): ")
		if raw == "" {
			return db_models.AnswerValue{}, false
		}
		var picked []string
		for _, part := range strings.Split(raw, ",") {
			n, err := strconv.Atoi(strings.TrimSpace(part))
			if err != nil || n < 1 || n > len(q.Choices) {
				continue
			}
			picked = append(picked, q.Choices[n-1])
		}
		if len(picked) == 0 {
			return db_models.AnswerValue{}, false
		}
		return db_models.MultiValue(picked), true

	default:
		if q.Placeholder != "" {
			fmt.Printf("  (%s)\n", q.Placeholder)
		}
		raw := prompt(reader, "> ")
		if strings.TrimSpace(raw) == "" {
			return db_models.AnswerValue{}, false
		}
		return db_models.TextValue(raw), true
	}
}

func prompt(reader *bufio.Reader, label string) string {
	fmt.Print(label)
	line, err := reader.ReadString('\n')
	if err != nil {
		return ""
	}
	return strings.TrimRight(line, "\r\n")
}
