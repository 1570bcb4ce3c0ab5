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

var describeTagCmd = &cobra.Command{
	Use:     "describe",
	Aliases: []string{"get"},
	Short:   "Describe a DataHub tag",
	Long:    "Describe a DataHub tag by name or URN",
	Example: `dhub tag describe --name pii`,
	PreRun: func(cmd *cobra.Command, args []string) {
		name, err := cmd.Flags().GetString("name")
		if err != nil {
			logrus.Fatalf(formatter.Colorize(err.Error()+"\n", formatter.RedColor))
		}
		if len(name) == 0 {
			cmd.Help()
			logrus.Fatalln(
				formatter.Colorize("No tag name found to describe\n", formatter.RedColor))
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
			urn = util.TagURN(name)
		}

		r, err := authAPI.GetTag(authAPI.Context(), urn)
		if err != nil {
			logrus.Fatalf(formatter.Colorize(err.Error()+"\n", formatter.RedColor))
		}
		if r == nil {
			logrus.Fatalf(
				formatter.Colorize("Tag "+name+" not found\n", formatter.RedColor))
		}

		tagCtx := formatter.Context{
			Command: "describe",
			Output:  os.Stdout,
			Format:  tag.NewTagFormat(viper.GetString("output")),
		}
		tag.Write(tagCtx, []dhubAuthClient.Tag{*r})

	},
}

func init() {
	describeTagCmd.Flags().SortFlags = false
	describeTagCmd.Flags().StringP("name", "n", "",
		"[Required] The name or URN of the tag to describe.")
	describeTagCmd.MarkFlagRequired("name")
}
