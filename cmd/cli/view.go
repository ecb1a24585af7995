package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

var viewCmd = &cobra.Command{
	Use:   "view <shareableId>",
	Short: "View a shared profile read-only",
	Args:  cobra.ExactArgs(1),
	RunE:  runView,
}

func runView(cmd *cobra.Command, args []string) error {
	api := apiClient()

	profile, err := api.GetSharedProfile(args[0])
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

	categoryNames := make(map[string]string, len(categories))
	for _, c := range categories {
		categoryNames[c.ID] = c.Name
	}
	questionTexts := make(map[string]string, len(questions))
	for _, q := range questions {
		questionTexts[q.CategoryID+"/"+q.QuestionID] = q.Text
	}

	fmt.Printf("How to work with %s\n", profile.Name)
	fmt.Printf("Last updated %s\n", profile.UpdatedAt.Format("2006-01-02"))

	for categoryID, answers := range profile.Responses {
		name := categoryNames[categoryID]
		if name == "" {
			name = categoryID
		}
		fmt.Printf("\n%s\n", name)

		for questionKey, answer := range answers {
			text := questionTexts[categoryID+"/"+questionKey]
			if text == "" {
				text = questionKey
			}
			fmt.Printf("  %s\n", text)
			if answer.Value.IsList() {
				fmt.Printf("    %s\n", strings.Join(answer.Value.List(), ", "))
			} else {
				fmt.Printf("    %s\n", answer.Value.Single())
			}
		}
	}

	return nil
}
