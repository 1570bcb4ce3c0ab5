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

var listGlossaryTermCmd = &cobra.Command{
	Use:     "list",
	Aliases: []string{"ls"},
	Short:   "List all DataHub glossary terms",
	Long:    "List all DataHub glossary terms",
	Example: `dhub glossary list`,
	Run: func(cmd *cobra.Command, args []string) {
		authAPI := dhubAuthClient.NewAuthAPIClientAndVerify()

		r, err := authAPI.ListGlossaryTerms(authAPI.Context())
		if err != nil {
			logrus.Fatalf(formatter.Colorize(err.Error()+"\n", formatter.RedColor))
		}

		termCtx := formatter.Context{
			Command: "list",
			Output:  os.Stdout,
			Format:  glossaryterm.NewGlossaryTermFormat(viper.GetString("output")),
		}
		if len(r) < 1 {
			if util.IsOutputType(formatter.TableFormatKey) {
				logrus.Info("No glossary terms found\n")
			} else {
				logrus.Info("[]\n")
			}
			return
		}
		glossaryterm.Write(termCtx, r)

	},
}

func init() {
	listGlossaryTermCmd.Flags().SortFlags = false
}
