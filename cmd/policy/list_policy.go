/*
 * Copyright (c) DataOps Cloud, Inc.
 */

package policy

import (
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/dataops-cloud/dhub-cli/cmd/util"
	dhubAuthClient "github.com/dataops-cloud/dhub-cli/internal/client"
	"github.com/dataops-cloud/dhub-cli/internal/formatter"
	"github.com/dataops-cloud/dhub-cli/internal/formatter/policy"
)

var listPolicyCmd = &cobra.Command{
	Use:     "list",
	Aliases: []string{"ls"},
	Short:   "List all DataHub access policies",
	Long:    "List all DataHub access policies",
	Example: `dhub policy list`,
	Run: func(cmd *cobra.Command, args []string) {
		authAPI := dhubAuthClient.NewAuthAPIClientAndVerify()

		r, err := authAPI.ListPolicies(authAPI.Context())
		if err != nil {
			logrus.Fatalf(formatter.Colorize(err.Error()+"\n", formatter.RedColor))
		}

		policyCtx := formatter.Context{
			Command: "list",
			Output:  os.Stdout,
			Format:  policy.NewPolicyFormat(viper.GetString("output")),
		}
		if len(r) < 1 {
			if util.IsOutputType(formatter.TableFormatKey) {
				logrus.Info("No policies found\n")
			} else {
				logrus.Info("[]\n")
			}
			return
		}
		policy.Write(policyCtx, r)

	},
}

func init() {
	listPolicyCmd.Flags().SortFlags = false
}
