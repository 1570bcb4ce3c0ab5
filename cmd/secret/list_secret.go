/*
 * Copyright (c) DataOps Cloud, Inc.
 */

package secret

import (
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/dataops-cloud/dhub-cli/cmd/util"
	dhubAuthClient "github.com/dataops-cloud/dhub-cli/internal/client"
	"github.com/dataops-cloud/dhub-cli/internal/formatter"
	"github.com/dataops-cloud/dhub-cli/internal/formatter/secret"
)

var listSecretCmd = &cobra.Command{
	Use:     "list",
	Aliases: []string{"ls"},
	Short:   "List all DataHub ingestion secrets",
	Long:    "List the names of all DataHub ingestion secrets. Secret values are never returned.",
	Example: `dhub secret list`,
	Run: func(cmd *cobra.Command, args []string) {
		authAPI := dhubAuthClient.NewAuthAPIClientAndVerify()

		r, err := authAPI.ListSecrets(authAPI.Context())
		if err != nil {
			logrus.Fatalf(formatter.Colorize(err.Error()+"\n", formatter.RedColor))
		}

		secretCtx := formatter.Context{
			Command: "list",
			Output:  os.Stdout,
			Format:  secret.NewSecretFormat(viper.GetString("output")),
		}
		if len(r) < 1 {
			if util.IsOutputType(formatter.TableFormatKey) {
				logrus.Info("No secrets found\n")
			} else {
				logrus.Info("[]\n")
			}
			return
		}
		secret.Write(secretCtx, r)

	},
}

func init() {
	listSecretCmd.Flags().SortFlags = false
}
