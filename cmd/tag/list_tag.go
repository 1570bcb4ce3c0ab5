/*
 * Copyright (c) DataOps Cloud, Inc.
 */

package tag

import (
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/dataops-cloud/dhub-cli/cmd/util"
	dhubAuthClient "github.com/dataops-cloud/dhub-cli/internal/client"
	"github.com/dataops-cloud/dhub-cli/internal/formatter"
	"github.com/dataops-cloud/dhub-cli/internal/formatter/tag"
)

var listTagCmd = &cobra.Command{
	Use:     "list",
	Aliases: []string{"ls"},
	Short:   "List all DataHub tags",
	Long:    "List all DataHub tags",
	Example: `dhub tag list`,
	Run: func(cmd *cobra.Command, args []string) {
		authAPI := dhubAuthClient.NewAuthAPIClientAndVerify()

		r, err := authAPI.ListTags(authAPI.Context())
		if err != nil {
			logrus.Fatalf(formatter.Colorize(err.Error()+"\n", formatter.RedColor))
		}

		tagCtx := formatter.Context{
			Command: "list",
			Output:  os.Stdout,
			Format:  tag.NewTagFormat(viper.GetString("output")),
		}
		if len(r) < 1 {
			if util.IsOutputType(formatter.TableFormatKey) {
				logrus.Info("No tags found\n")
			} else {
				logrus.Info("[]\n")
			}
			return
		}
		tag.Write(tagCtx, r)

	},
}

func init() {
	listTagCmd.Flags().SortFlags = false
}
