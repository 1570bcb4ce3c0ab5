/*
 * Copyright (c) DataOps Cloud, Inc.
 */

package glossary

import (
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/dataops-cloud/dhub-cli/cmd/util"
	dhubAuthClient "github.com/dataops-cloud/dhub-cli/internal/client"
	"github.com/dataops-cloud/dhub-cli/internal/formatter"
)

var deleteGlossaryTermCmd = &cobra.Command{
	Use:     "delete",
	Aliases: []string{"remove", "rm"},
	Short:   "Delete a DataHub glossary term",
	Long:    "Delete a DataHub glossary term by name or URN",
	Example: `dhub glossary delete --name Sensitive`,
	PreRun: func(cmd *cobra.Command, args []string) {
		name, err := cmd.Flags().GetString("name")
		if err != nil {
			logrus.Fatalf(formatter.Colorize(err.Error()+"\n", formatter.RedColor))
		}
		if len(name) == 0 {
			cmd.Help()
			logrus.Fatalln(
				formatter.Colorize("No glossary term name found to delete\n", formatter.RedColor))
		}
		skipConfirmation, err := cmd.Flags().GetBool("force")
		if err != nil {
			logrus.Fatalf(formatter.Colorize(err.Error()+"\n", formatter.RedColor))
		}
		err = util.ConfirmCommand(
			"Are you sure you want to delete glossary term: "+name, skipConfirmation)
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
		urn := name
		if !util.IsValidURN(urn) {
			urn = util.GlossaryTermURN(name)
		}

		err = authAPI.DeleteEntity(authAPI.Context(), urn)
		if err != nil {
			logrus.Fatalf(formatter.Colorize(err.Error()+"\n", formatter.RedColor))
		}

		logrus.Infof("The glossary term %s has been deleted\n",
			formatter.Colorize(name, formatter.GreenColor))

	},
}

func init() {
	deleteGlossaryTermCmd.Flags().SortFlags = false
	deleteGlossaryTermCmd.Flags().StringP("name", "n", "",
		"[Required] The name or URN of the glossary term to delete.")
	deleteGlossaryTermCmd.MarkFlagRequired("name")
	deleteGlossaryTermCmd.Flags().BoolP("force", "f", false,
		"[Optional] Bypass the prompt for non-interactive usage.")
}
