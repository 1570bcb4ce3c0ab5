/*
 * Copyright (c) DataOps Cloud, Inc.
 */

package policy

import (
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	dhubAuthClient "github.com/dataops-cloud/dhub-cli/internal/client"
	"github.com/dataops-cloud/dhub-cli/internal/formatter"
	"github.com/dataops-cloud/dhub-cli/internal/formatter/policy"
)

var describePolicyCmd = &cobra.Command{
	Use:     "describe",
	Aliases: []string{"get"},
	Short:   "Describe a DataHub access policy",
	Long:    "Describe a DataHub access policy by name or URN",
	Example: `dhub policy describe --name "Metadata editors"`,
	PreRun: func(cmd *cobra.Command, args []string) {
		name, err := cmd.Flags().GetString("name")
		if err != nil {
			logrus.Fatalf(formatter.Colorize(err.Error()+"\n", formatter.RedColor))
		}
		if len(name) == 0 {
			cmd.Help()
			logrus.Fatalln(
				formatter.Colorize("No policy name found to describe\n", formatter.RedColor))
		}
	},
	Run: func(cmd *cobra.Command, args []string) {
		authAPI := dhubAuthClient.NewAuthAPIClientAndVerify()

		name, err := cmd.Flags().GetString("name")
		if err != nil {
			logrus.Fatalf(formatter.Colorize(err.Error()+"\n", formatter.RedColor))
		}

		r, err := authAPI.GetPolicy(authAPI.Context(), name)
		if err != nil {
			logrus.Fatalf(formatter.Colorize(err.Error()+"\n", formatter.RedColor))
		}
		if r == nil {
			logrus.Fatalf(
				formatter.Colorize("Policy "+name+" not found\n", formatter.RedColor))
		}

		policyCtx := formatter.Context{
			Command: "describe",
			Output:  os.Stdout,
			Format:  policy.NewPolicyFormat(viper.GetString("output")),
		}
		policy.Write(policyCtx, []dhubAuthClient.Policy{*r})

	},
}

func init() {
	describePolicyCmd.Flags().SortFlags = false
	describePolicyCmd.Flags().StringP("name", "n", "",
		"[Required] The name or URN of the policy to describe.")
	describePolicyCmd.MarkFlagRequired("name")
}
