/*
 * Copyright (c) DataOps Cloud, Inc.
 */

package recipe

import (
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/dataops-cloud/dhub-cli/cmd/util"
	dhubAuthClient "github.com/dataops-cloud/dhub-cli/internal/client"
	"github.com/dataops-cloud/dhub-cli/internal/formatter"
	"github.com/dataops-cloud/dhub-cli/internal/formatter/ingestionsource"
)

var listRecipeCmd = &cobra.Command{
	Use:     "list",
	Aliases: []string{"ls"},
	Short:   "List all DataHub ingestion recipes",
	Long:    "List all DataHub managed ingestion recipes",
	Example: `dhub recipe list`,
	Run: func(cmd *cobra.Command, args []string) {
		authAPI := dhubAuthClient.NewAuthAPIClientAndVerify()

		r, err := authAPI.ListIngestionSources(authAPI.Context())
		if err != nil {
			logrus.Fatalf(formatter.Colorize(err.Error()+"\n", formatter.RedColor))
		}

		sourceCtx := formatter.Context{
			Command: "list",
			Output:  os.Stdout,
			Format:  ingestionsource.NewIngestionSourceFormat(viper.GetString("output")),
		}
		if len(r) < 1 {
			if util.IsOutputType(formatter.TableFormatKey) {
				logrus.Info("No recipes found\n")
			} else {
				logrus.Info("[]\n")
			}
			return
		}
		ingestionsource.Write(sourceCtx, r)

	},
}

func init() {
	listRecipeCmd.Flags().SortFlags = false
}
