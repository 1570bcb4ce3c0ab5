/*
 * Copyright (c) DataOps Cloud, Inc.
 */

package domain

import (
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	dhubAuthClient "github.com/dataops-cloud/dhub-cli/internal/client"
	"github.com/dataops-cloud/dhub-cli/internal/formatter"
	"github.com/dataops-cloud/dhub-cli/internal/formatter/domain"
)

var createDomainCmd = &cobra.Command{
	Use:     "create",
	Aliases: []string{"add"},
	Short:   "Create a DataHub domain",
	Long:    "Create a DataHub domain",
	Example: `dhub domain create --id marketing --name Marketing`,
	PreRun: func(cmd *cobra.Command, args []string) {
		id, err := cmd.Flags().GetString("id")
		if err != nil {
			logrus.Fatalf(formatter.Colorize(err.Error()+"\n", formatter.RedColor))
		}
		if len(id) == 0 {
			cmd.Help()
			logrus.Fatalln(
				formatter.Colorize("No domain id found to create\n", formatter.RedColor))
		}
	},
	Run: func(cmd *cobra.Command, args []string) {
		authAPI := dhubAuthClient.NewAuthAPIClientAndVerify()

		id, err := cmd.Flags().GetString("id")
		if err != nil {
			logrus.Fatalf(formatter.Colorize(err.Error()+"\n", formatter.RedColor))
		}
		name, err := cmd.Flags().GetString("name")
		if err != nil {
			logrus.Fatalf(formatter.Colorize(err.Error()+"\n", formatter.RedColor))
		}
		if name == "" {
			name = id
		}
		description, err := cmd.Flags().GetString("description")
		if err != nil {
			logrus.Fatalf(formatter.Colorize(err.Error()+"\n", formatter.RedColor))
		}
		parent, err := cmd.Flags().GetString("parent")
		if err != nil {
			logrus.Fatalf(formatter.Colorize(err.Error()+"\n", formatter.RedColor))
		}

		urn, err := authAPI.CreateDomain(authAPI.Context(), id, name, description, parent)
		if err != nil {
			logrus.Fatalf(formatter.Colorize(err.Error()+"\n", formatter.RedColor))
		}

		r, err := authAPI.GetDomain(authAPI.Context(), urn)
		if err != nil {
			logrus.Fatalf(formatter.Colorize(err.Error()+"\n", formatter.RedColor))
		}
		if r == nil {
			r = &dhubAuthClient.Domain{URN: urn, Name: name, Description: description}
		}

		domainCtx := formatter.Context{
			Command: "create",
			Output:  os.Stdout,
			Format:  domain.NewDomainFormat(viper.GetString("output")),
		}
		domain.Write(domainCtx, []dhubAuthClient.Domain{*r})

	},
}

func init() {
	createDomainCmd.Flags().SortFlags = false
	createDomainCmd.Flags().String("id", "",
		"[Required] The id of the domain to create.")
	createDomainCmd.MarkFlagRequired("id")
	createDomainCmd.Flags().StringP("name", "n", "",
		"[Optional] The display name of the domain. Defaults to the id.")
	createDomainCmd.Flags().String("description", "",
		"[Optional] The description of the domain.")
	createDomainCmd.Flags().String("parent", "",
		"[Optional] The URN of the parent domain.")
}
