/*
 * Copyright (c) DataOps Cloud, Inc.
 */

package recipe

import (
	"github.com/spf13/cobra"
)

// RecipeCmd set of commands are used to perform operations on managed
// ingestion recipes in the DataHub catalog
var RecipeCmd = &cobra.Command{
	Use:   "recipe",
	Short: "Manage DataHub ingestion recipes",
	Long: "Manage DataHub managed ingestion recipes. Recipes are YAML " +
		"documents describing an ingestion source and are executed by the " +
		"DataHub managed ingestion scheduler.",
	Run: func(cmd *cobra.Command, args []string) {
		cmd.Help()
	},
}

func init() {
	RecipeCmd.PersistentFlags().SortFlags = false
	RecipeCmd.Flags().SortFlags = false

	RecipeCmd.AddCommand(listRecipeCmd)
	RecipeCmd.AddCommand(pushRecipeCmd)
	RecipeCmd.AddCommand(pullRecipeCmd)
	RecipeCmd.AddCommand(runRecipeCmd)
	RecipeCmd.AddCommand(deleteRecipeCmd)
}
