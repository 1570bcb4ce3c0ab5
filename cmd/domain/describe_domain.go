/*
 * Copyright (c) DataOps Cloud, Inc.
 */

package domain

import (
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/dataops-cloud/dhub-cli/cmd/util"
	dhubAuthClient "github.com/dataops-cloud/dhub-cli/internal/client"
	"github.com/dataops-cloud/dhub-cli/internal/formatter"
	"github.com/dataops-cloud/dhub-cli/internal/formatter/domain"
)

var describeDomainCmd = &cobra.Command{
	Use:     "describe",
	Aliases: []string{"get"},
	Short:   "Describe a DataHub domain",
	Long:    "Describe a DataHub domain by id or URN",
	Example: `dhub domain describe --name marketing`,
	PreRun: func(cmd *cobra.Command, args []string) {
		name, err := cmd.Flags().GetString("name")
		if err != nil {
			logrus.Fatalf(formatter.Colorize(err.Error()+"\n", formatter.RedColor))
		}
		if len(name) == 0 {
			cmd.Help()
			logrus.Fatalln(
				formatter.Colorize("No domain name found to describe\n", formatter.RedColor))
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

		r, err := authAPI.GetDomain(authAPI.Context(), urn)
		if err != nil {
			logrus.Fatalf(formatter.Colorize(err.Error()+"\n", formatter.RedColor))
		}
		if r == nil {
			logrus.Fatalf(
				formatter.Colorize("Domain "+name+" not found\n", formatter.RedColor))
		}

		domainCtx := formatter.Context{
			Command: "describe",
			Output:  os.Stdout,
			Format:  domain.NewDomainFormat(viper.GetString("output")),
		}
		domain.Write(domainCtx, []dhubAuthClient.Domain{*r})

	},
}

func init() {
	describeDomainCmd.Flags().SortFlags = false
	describeDomainCmd.Flags().StringP("name", "n", "",
		"[Required] The id or URN of the domain to describe.")
	describeDomainCmd.MarkFlagRequired("name")
}
