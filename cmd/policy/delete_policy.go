/*
 * Copyright (c) DataOps Cloud, Inc.
 */

package policy

import (
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/dataops-cloud/dhub-cli/cmd/util"
	dhubAuthClient "github.com/dataops-cloud/dhub-cli/internal/client"
	"github.com/dataops-cloud/dhub-cli/internal/formatter"
)

var deletePolicyCmd = &cobra.Command{
	Use:     "delete",
	Aliases: []string{"remove", "rm"},
	Short:   "Delete a DataHub access policy",
	Long:    "Delete a DataHub access policy by URN",
	Example: `dhub policy delete --urn urn:li:dataHubPolicy:readers`,
	PreRun: func(cmd *cobra.Command, args []string) {
		urn, err := cmd.Flags().GetString("urn")
		if err != nil {
			logrus.Fatalf(formatter.Colorize(err.Error()+"\n", formatter.RedColor))
		}
		if len(urn) == 0 {
			cmd.Help()
			logrus.Fatalln(
				formatter.Colorize("No policy urn found to delete\n", formatter.RedColor))
		}
		skipConfirmation, err := cmd.Flags().GetBool("force")
		if err != nil {
			logrus.Fatalf(formatter.Colorize(err.Error()+"\n", formatter.RedColor))
		}
		err = util.ConfirmCommand(
			"Are you sure you want to delete policy: "+urn, skipConfirmation)
		if err != nil {
			logrus.Fatal(formatter.Colorize(err.Error(), formatter.RedColor))
		}
	},
	Run: func(cmd *cobra.Command, args []string) {
		authAPI := dhubAuthClient.NewAuthAPIClientAndVerify()

		urn, err := cmd.Flags().GetString("urn")
		if err != nil {
			logrus.Fatalf(formatter.Colorize(err.Error()+"\n", formatter.RedColor))
		}

		err = authAPI.DeletePolicy(authAPI.Context(), urn)
		if err != nil {
			logrus.Fatalf(formatter.Colorize(err.Error()+"\n", formatter.RedColor))
		}

		logrus.Infof("The policy %s has been deleted\n",
			formatter.Colorize(urn, formatter.GreenColor))

	},
}

func init() {
	deletePolicyCmd.Flags().SortFlags = false
	deletePolicyCmd.Flags().String("urn", "",
		"[Required] The URN of the policy to delete.")
	deletePolicyCmd.MarkFlagRequired("urn")
	deletePolicyCmd.Flags().BoolP("force", "f", false,
		"[Optional] Bypass the prompt for non-interactive usage.")
}
