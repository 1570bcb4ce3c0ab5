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

var listDomainCmd = &cobra.Command{
	Use:     "list",
	Aliases: []string{"ls"},
	Short:   "List all DataHub domains",
	Long:    "List all DataHub domains",
	Example: `dhub domain list`,
	Run: func(cmd *cobra.Command, args []string) {
		authAPI := dhubAuthClient.NewAuthAPIClientAndVerify()

		r, err := authAPI.ListDomains(authAPI.Context())
		if err != nil {
			logrus.Fatalf(formatter.Colorize(err.Error()+"\n", formatter.RedColor))
		}

		domainCtx := formatter.Context{
			Command: "list",
			Output:  os.Stdout,
			Format:  domain.NewDomainFormat(viper.GetString("output")),
		}
		if len(r) < 1 {
			if util.IsOutputType(formatter.TableFormatKey) {
				logrus.Info("No domains found\n")
			} else {
				logrus.Info("[]\n")
			}
			return
		}
		domain.Write(domainCtx, r)

	},
}

func init() {
	listDomainCmd.Flags().SortFlags = false
}
