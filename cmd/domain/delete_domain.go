/*
 * Copyright (c) DataOps Cloud, Inc.
 */

package domain

import (
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/dataops-cloud/dhub-cli/cmd/util"
	dhubAuthClient "github.com/dataops-cloud/dhub-cli/internal/client"
	"github.com/dataops-cloud/dhub-cli/internal/formatter"
)

var deleteDomainCmd = &cobra.Command{
	Use:     "delete",
	Aliases: []string{"remove", "rm"},
	Short:   "Delete a DataHub domain",
	Long:    "Delete a DataHub domain by id or URN",
	Example: `dhub domain delete --name marketing`,
	PreRun: func(cmd *cobra.Command, args []string) {
		name, err := cmd.Flags().GetString("name")
		if err != nil {
			logrus.Fatalf(formatter.Colorize(err.Error()+"\n", formatter.RedColor))
		}
		if len(name) == 0 {
			cmd.Help()
			logrus.Fatalln(
				formatter.Colorize("No domain name found to delete\n", formatter.RedColor))
		}
		skipConfirmation, err := cmd.Flags().GetBool("force")
		if err != nil {
			logrus.Fatalf(formatter.Colorize(err.Error()+"\n", formatter.RedColor))
		}
		err = util.ConfirmCommand(
			"Are you sure you want to delete domain: "+name, skipConfirmation)
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
			urn = util.DomainURN(name)
		}

		err = authAPI.DeleteEntity(authAPI.Context(), urn)
		if err != nil {
			logrus.Fatalf(formatter.Colorize(err.Error()+"\n", formatter.RedColor))
		}

		logrus.Infof("The domain %s has been deleted\n",
			formatter.Colorize(name, formatter.GreenColor))

	},
}

func init() {
	deleteDomainCmd.Flags().SortFlags = false
	deleteDomainCmd.Flags().StringP("name", "n", "",
		"[Required] The id or URN of the domain to delete.")
	deleteDomainCmd.MarkFlagRequired("name")
	deleteDomainCmd.Flags().BoolP("force", "f", false,
		"[Optional] Bypass the prompt for non-interactive usage.")
}
