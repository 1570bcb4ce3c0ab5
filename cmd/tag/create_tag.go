/*
 * Copyright (c) DataOps Cloud, Inc.
 */

package tag

import (
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	dhubAuthClient "github.com/dataops-cloud/dhub-cli/internal/client"
	"github.com/dataops-cloud/dhub-cli/internal/formatter"
	"github.com/dataops-cloud/dhub-cli/internal/formatter/tag"
)

var createTagCmd = &cobra.Command{
	Use:     "create",
	Aliases: []string{"add"},
	Short:   "Create a DataHub tag",
	Long:    "Create a DataHub tag",
	Example: `dhub tag create --name pii --description "Personally identifiable information"`,
	PreRun: func(cmd *cobra.Command, args []string) {
		name, err := cmd.Flags().GetString("name")
		if err != nil {
			logrus.Fatalf(formatter.Colorize(err.Error()+"\n", formatter.RedColor))
		}
		if len(name) == 0 {
			cmd.Help()
			logrus.Fatalln(
				formatter.Colorize("No tag name found to create\n", formatter.RedColor))
		}
	},
	Run: func(cmd *cobra.Command, args []string) {
		authAPI := dhubAuthClient.NewAuthAPIClientAndVerify()

		name, err := cmd.Flags().GetString("name")
		if err != nil {
			logrus.Fatalf(formatter.Colorize(err.Error()+"\n", formatter.RedColor))
		}
		description, err := cmd.Flags().GetString("description")
		if err != nil {
			logrus.Fatalf(formatter.Colorize(err.Error()+"\n", formatter.RedColor))
		}

		urn, err := authAPI.CreateTag(authAPI.Context(), name, description)
		if err != nil {
			logrus.Fatalf(formatter.Colorize(err.Error()+"\n", formatter.RedColor))
		}

		r, err := authAPI.GetTag(authAPI.Context(), urn)
		if err != nil {
			logrus.Fatalf(formatter.Colorize(err.Error()+"\n", formatter.RedColor))
		}
		if r == nil {
			r = &dhubAuthClient.Tag{URN: urn, Name: name, Description: description}
		}

		tagCtx := formatter.Context{
			Command: "create",
			Output:  os.Stdout,
			Format:  tag.NewTagFormat(viper.GetString("output")),
		}
		tag.Write(tagCtx, []dhubAuthClient.Tag{*r})

	},
}

func init() {
	createTagCmd.Flags().SortFlags = false
	createTagCmd.Flags().StringP("name", "n", "",
		"[Required] The name of the tag to create.")
	createTagCmd.MarkFlagRequired("name")
	createTagCmd.Flags().String("description", "",
		"[Optional] The description of the tag.")
}
