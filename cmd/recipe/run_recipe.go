/*
 * Copyright (c) DataOps Cloud, Inc.
 */

package recipe

import (
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	dhubAuthClient "github.com/dataops-cloud/dhub-cli/internal/client"
	"github.com/dataops-cloud/dhub-cli/internal/formatter"
)

var runRecipeCmd = &cobra.Command{
	Use:     "run",
	Aliases: []string{"execute"},
	Short:   "Run an ingestion recipe now",
	Long: "Request an immediate execution of a managed ingestion recipe. " +
		"Waits for the run to finish unless --wait=false is set.",
	Example: `dhub recipe run --name snowflake-prod`,
	PreRun: func(cmd *cobra.Command, args []string) {
		name, err := cmd.Flags().GetString("name")
		if err != nil {
			logrus.Fatalf(formatter.Colorize(err.Error()+"\n", formatter.RedColor))
		}
		if len(name) == 0 {
			cmd.Help()
			logrus.Fatalln(
				formatter.Colorize("No recipe name found to run\n", formatter.RedColor))
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

		requestURN, err := authAPI.TriggerIngestion(authAPI.Context(), source.URN)
		if err != nil {
			logrus.Fatalf(formatter.Colorize(err.Error()+"\n", formatter.RedColor))
		}

		status, err := authAPI.WaitForExecution(requestURN,
			"Running recipe "+source.Name)
		if err != nil {
			logrus.Fatalf(formatter.Colorize(err.Error()+"\n", formatter.RedColor))
		}

		switch status {
		case dhubAuthClient.ExecutionSucceeded:
			logrus.Infof("The recipe %s run completed: %s\n",
				formatter.Colorize(source.Name, formatter.GreenColor),
				formatter.Colorize(status, formatter.GreenColor))
		case dhubAuthClient.ExecutionRunning:
			logrus.Infof("The recipe %s run is in progress: %s\n",
				formatter.Colorize(source.Name, formatter.GreenColor), requestURN)
		default:
			logrus.Fatalf(formatter.Colorize(
				"The recipe "+source.Name+" run finished with status "+status+"\n",
				formatter.RedColor))
		}

	},
}

func init() {
	runRecipeCmd.Flags().SortFlags = false
	runRecipeCmd.Flags().StringP("name", "n", "",
		"[Required] The name or URN of the recipe to run.")
	runRecipeCmd.MarkFlagRequired("name")
}
