/*
 * Copyright (c) DataOps Cloud, Inc.
 */

package glossary

import (
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/dataops-cloud/dhub-cli/cmd/util"
	dhubAuthClient "github.com/dataops-cloud/dhub-cli/internal/client"
	"github.com/dataops-cloud/dhub-cli/internal/formatter"
	"github.com/dataops-cloud/dhub-cli/internal/formatter/glossaryterm"
)

var describeGlossaryTermCmd = &cobra.Command{
	Use:     "describe",
	Aliases: []string{"get"},
	Short:   "Describe a DataHub glossary term",
	Long:    "Describe a DataHub glossary term by name or URN",
	Example: `dhub glossary describe --name Sensitive`,
	PreRun: func(cmd *cobra.Command, args []string) {
		name, err := cmd.Flags().GetString("name")
		if err != nil {
			logrus.Fatalf(formatter.Colorize(err.Error()+"\n", formatter.RedColor))
		}
		if len(name) == 0 {
			cmd.Help()
			logrus.Fatalln(
				formatter.Colorize("No glossary term name found to describe\n", formatter.RedColor))
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
			urn = util.GlossaryTermURN(name)
		}

		r, err := authAPI.GetGlossaryTerm(authAPI.Context(), urn)
		if err != nil {
			logrus.Fatalf(formatter.Colorize(err.Error()+"\n", formatter.RedColor))
		}
		if r == nil {
			logrus.Fatalf(
				formatter.Colorize("Glossary term "+name+" not found\n", formatter.RedColor))
		}

		termCtx := formatter.Context{
			Command: "describe",
			Output:  os.Stdout,
			Format:  glossaryterm.NewGlossaryTermFormat(viper.GetString("output")),
		}
		glossaryterm.Write(termCtx, []dhubAuthClient.GlossaryTerm{*r})

	},
}

func init() {
	describeGlossaryTermCmd.Flags().SortFlags = false
	describeGlossaryTermCmd.Flags().StringP("name", "n", "",
		"[Required] The name or URN of the glossary term to describe.")
	describeGlossaryTermCmd.MarkFlagRequired("name")
}
