/*
 * Copyright (c) DataOps Cloud, Inc.
 */

package secret

import (
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/dataops-cloud/dhub-cli/cmd/util"
	dhubAuthClient "github.com/dataops-cloud/dhub-cli/internal/client"
	"github.com/dataops-cloud/dhub-cli/internal/formatter"
)

var deleteSecretCmd = &cobra.Command{
	Use:     "delete",
	Aliases: []string{"remove", "rm"},
	Short:   "Delete a DataHub ingestion secret",
	Long:    "Delete a DataHub ingestion secret by name or URN",
	Example: `dhub secret delete --name SNOWFLAKE_PASSWORD`,
	PreRun: func(cmd *cobra.Command, args []string) {
		name, err := cmd.Flags().GetString("name")
		if err != nil {
			logrus.Fatalf(formatter.Colorize(err.Error()+"\n", formatter.RedColor))
		}
		if len(name) == 0 {
			cmd.Help()
			logrus.Fatalln(
				formatter.Colorize("No secret name found to delete\n", formatter.RedColor))
		}
		skipConfirmation, err := cmd.Flags().GetBool("force")
		if err != nil {
			logrus.Fatalf(formatter.Colorize(err.Error()+"\n", formatter.RedColor))
		}
		err = util.ConfirmCommand(
			"Are you sure you want to delete secret: "+name, skipConfirmation)
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
			urn = util.SecretURN(name)
		}

		err = authAPI.DeleteSecret(authAPI.Context(), urn)
		if err != nil {
			logrus.Fatalf(formatter.Colorize(err.Error()+"\n", formatter.RedColor))
		}

		logrus.Infof("The secret %s has been deleted\n",
			formatter.Colorize(name, formatter.GreenColor))

	},
}

func init() {
	deleteSecretCmd.Flags().SortFlags = false
	deleteSecretCmd.Flags().StringP("name", "n", "",
		"[Required] The name or URN of the secret to delete.")
	deleteSecretCmd.MarkFlagRequired("name")
	deleteSecretCmd.Flags().BoolP("force", "f", false,
		"[Optional] Bypass the prompt for non-interactive usage.")
}
