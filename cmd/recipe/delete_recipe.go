/*
 * Copyright (c) DataOps Cloud, Inc.
 */

package recipe

import (
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/dataops-cloud/dhub-cli/cmd/util"
	dhubAuthClient "github.com/dataops-cloud/dhub-cli/internal/client"
	"github.com/dataops-cloud/dhub-cli/internal/formatter"
)

var deleteRecipeCmd = &cobra.Command{
	Use:     "delete",
	Aliases: []string{"remove", "rm"},
	Short:   "Delete a DataHub ingestion recipe",
	Long:    "Delete a DataHub managed ingestion recipe by name or URN",
	Example: `dhub recipe delete --name snowflake-prod`,
	PreRun: func(cmd *cobra.Command, args []string) {
		name, err := cmd.Flags().GetString("name")
		if err != nil {
			logrus.Fatalf(formatter.Colorize(err.Error()+"\n", formatter.RedColor))
		}
		if len(name) == 0 {
			cmd.Help()
			logrus.Fatalln(
				formatter.Colorize("No recipe name found to delete\n", formatter.RedColor))
		}
		skipConfirmation, err := cmd.Flags().GetBool("force")
		if err != nil {
			logrus.Fatalf(formatter.Colorize(err.Error()+"\n", formatter.RedColor))
		}
		err = util.ConfirmCommand(
			"Are you sure you want to delete recipe: "+name, skipConfirmation)
		if err != nil {
			logrus.Fatal(formatter.Colorize(err.Error(), formatter.RedColor))
		}
	},
	Run: func(cmd *cobra.Command, args []string) {
		authAPI := dhubAuthClient.NewAuthAPIClientAndVerify()

		name, err := cmd.Flags().GetString("name")
		if err != nil {
			logrus.Fatalf(formatter.Colorize(err.Error()+"\n", formatter.RedColor))
		}

		source, err := resolveSource(authAPI, name)
		if err != nil {
			logrus.Fatalf(formatter.Colorize(err.Error()+"\n", formatter.RedColor))
		}

		err = authAPI.DeleteIngestionSource(authAPI.Context(), source.URN)
		if err != nil {
			logrus.Fatalf(formatter.Colorize(err.Error()+"\n", formatter.RedColor))
		}

		logrus.Infof("The recipe %s has been deleted\n",
			formatter.Colorize(source.Name, formatter.GreenColor))

	},
}

func init() {
	deleteRecipeCmd.Flags().SortFlags = false
	deleteRecipeCmd.Flags().StringP("name", "n", "",
		"[Required] The name or URN of the recipe to delete.")
	deleteRecipeCmd.MarkFlagRequired("name")
	deleteRecipeCmd.Flags().BoolP("force", "f", false,
		"[Optional] Bypass the prompt for non-interactive usage.")
}
