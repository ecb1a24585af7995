package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"workwithme/internal/client"
)

var adminPassword string

var adminCmd = &cobra.Command{
	Use:   "admin",
	Short: "Manage the question catalog",
}

var adminCategoriesCmd = &cobra.Command{
	Use:   "categories",
	Short: "Category administration",
}

var adminCategoriesListCmd = &cobra.Command{
	Use:   "list",
	Short: "List all categories, including soft-deleted ones",
	RunE: func(cmd *cobra.Command, args []string) error {
		categories, err := adminClient().AdminListCategories()
		if err != nil {
			return err
		}
		for _, c := range categories {
			state := "active"
			if !c.Active {
				state = "inactive"
			}
			fmt.Printf("%s  order=%d  %-8s  %s\n", c.ID, c.Order, state, c.Name)
		}
		return nil
	},
}

var categoryOrder int

var adminCategoriesCreateCmd = &cobra.Command{
	Use:   "create <name>",
	Short: "Create a category",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		category, err := adminClient().AdminCreateCategory(args[0], categoryOrder)
		if err != nil {
			return err
		}
		fmt.Printf("Created category %s (%s)\n", category.Name, category.ID)
		return nil
	},
}

var deleteCascade bool

var adminCategoriesDeleteCmd = &cobra.Command{
	Use:   "delete <id>",
	Short: "Soft delete a category",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := adminClient().AdminDeleteCategory(args[0], deleteCascade); err != nil {
			return err
		}
		fmt.Println("Deleted.")
		return nil
	},
}

var questionsCategoryID string

var adminQuestionsCmd = &cobra.Command{
	Use:   "questions",
	Short: "List all questions, optionally per category",
	RunE: func(cmd *cobra.Command, args []string) error {
		questions, err := adminClient().AdminListQuestions(questionsCategoryID)
		if err != nil {
			return err
		}
		for _, q := range questions {
			state := "active"
			if !q.Active {
				state = "inactive"
			}
			fmt.Printf("%s  %-11s  %-8s  %s\n", q.ID, q.Type, state, q.Text)
		}
		return nil
	},
}

func adminClient() *client.Client {
	return apiClient().WithAdminPassword(adminPassword)
}

func init() {
	adminCmd.PersistentFlags().StringVar(&adminPassword, "password", "", "admin password")

	adminCategoriesCreateCmd.Flags().IntVar(&categoryOrder, "order", 0, "display order")
	adminCategoriesDeleteCmd.Flags().BoolVar(&deleteCascade, "cascade", false, "also soft delete the category's questions")
	adminQuestionsCmd.Flags().StringVar(&questionsCategoryID, "category", "", "filter by category id")

	adminCategoriesCmd.AddCommand(adminCategoriesListCmd)
	adminCategoriesCmd.AddCommand(adminCategoriesCreateCmd)
	adminCategoriesCmd.AddCommand(adminCategoriesDeleteCmd)

	adminCmd.AddCommand(adminCategoriesCmd)
	adminCmd.AddCommand(adminQuestionsCmd)
}
