/*
 * Copyright (c) DataOps Cloud, Inc.
 */

package glossary

import (
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	dhubAuthClient "github.com/dataops-cloud/dhub-cli/internal/client"
	"github.com/dataops-cloud/dhub-cli/internal/formatter"
	"github.com/dataops-cloud/dhub-cli/internal/formatter/glossaryterm"
)

var createGlossaryTermCmd = &cobra.Command{
	Use:     "create",
	Aliases: []string{"add"},
	Short:   "Create a DataHub glossary term",
	Long:    "Create a DataHub glossary term",
	Example: `dhub glossary create --name Sensitive --definition "Sensitive data"`,
	PreRun: func(cmd *cobra.Command, args []string) {
		name, err := cmd.Flags().GetString("name")
		if err != nil {
			logrus.Fatalf(formatter.Colorize(err.Error()+"\n", formatter.RedColor))
		}
		if len(name) == 0 {
			cmd.Help()
			logrus.Fatalln(
				formatter.Colorize("No glossary term name found to create\n", formatter.RedColor))
		}
	},
	Run: func(cmd *cobra.Command, args []string) {
		authAPI := dhubAuthClient.NewAuthAPIClientAndVerify()

		name, err := cmd.Flags().GetString("name")
		if err != nil {
			logrus.Fatalf(formatter.Colorize(err.Error()+"\n", formatter.RedColor))
		}
		definition, err := cmd.Flags().GetString("definition")
		if err != nil {
			logrus.Fatalf(formatter.Colorize(err.Error()+"\n", formatter.RedColor))
		}
		parentNode, err := cmd.Flags().GetString("parent-node")
		if err != nil {
			logrus.Fatalf(formatter.Colorize(err.Error()+"\n", formatter.RedColor))
		}

		urn, err := authAPI.CreateGlossaryTerm(authAPI.Context(), name, definition, parentNode)
		if err != nil {
			logrus.Fatalf(formatter.Colorize(err.Error()+"\n", formatter.RedColor))
		}

		r, err := authAPI.GetGlossaryTerm(authAPI.Context(), urn)
		if err != nil {
			logrus.Fatalf(formatter.Colorize(err.Error()+"\n", formatter.RedColor))
		}
		if r == nil {
			r = &dhubAuthClient.GlossaryTerm{URN: urn, Name: name, Definition: definition}
		}

		termCtx := formatter.Context{
			Command: "create",
			Output:  os.Stdout,
			Format:  glossaryterm.NewGlossaryTermFormat(viper.GetString("output")),
		}
		glossaryterm.Write(termCtx, []dhubAuthClient.GlossaryTerm{*r})

	},
}

func init() {
	createGlossaryTermCmd.Flags().SortFlags = false
	createGlossaryTermCmd.Flags().StringP("name", "n", "",
		"[Required] The name of the glossary term to create.")
	createGlossaryTermCmd.MarkFlagRequired("name")
	createGlossaryTermCmd.Flags().String("definition", "",
		"[Optional] The definition of the glossary term.")
	createGlossaryTermCmd.Flags().String("parent-node", "",
		"[Optional] The URN of the parent glossary node.")
}
