/*
 * Copyright (c) DataOps Cloud, Inc.
 */

package recipe

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v2"

	"github.com/dataops-cloud/dhub-cli/cmd/util"
	dhubAuthClient "github.com/dataops-cloud/dhub-cli/internal/client"
	"github.com/dataops-cloud/dhub-cli/internal/formatter"
)

var pullRecipeCmd = &cobra.Command{
	Use:     "pull",
	Aliases: []string{"export"},
	Short:   "Pull an ingestion recipe from DataHub",
	Long: "Pull a managed ingestion recipe from DataHub and render it as the " +
		"YAML document accepted by 'dhub recipe push'. Written to stdout " +
		"unless --file is set.",
	Example: `dhub recipe pull --name snowflake-prod --file snowflake.yaml`,
	PreRun: func(cmd *cobra.Command, args []string) {
		name, err := cmd.Flags().GetString("name")
		if err != nil {
			logrus.Fatalf(formatter.Colorize(err.Error()+"\n", formatter.RedColor))
		}
		if len(name) == 0 {
			cmd.Help()
			logrus.Fatalln(
				formatter.Colorize("No recipe name found to pull\n", formatter.RedColor))
		}
	},
	Run: func(cmd *cobra.Command, args []string) {
		authAPI := dhubAuthClient.NewAuthAPIClientAndVerify()

		name, err := cmd.Flags().GetString("name")
		if err != nil {
			logrus.Fatalf(formatter.Colorize(err.Error()+"\n", formatter.RedColor))
		}
		file, err := cmd.Flags().GetString("file")
		if err != nil {
			logrus.Fatalf(formatter.Colorize(err.Error()+"\n", formatter.RedColor))
		}

		source, err := resolveSource(authAPI, name)
		if err != nil {
			logrus.Fatalf(formatter.Colorize(err.Error()+"\n", formatter.RedColor))
		}

		parsed := recipeFile{
			Name:       source.Name,
			Type:       source.Type,
			Schedule:   source.Schedule,
			Timezone:   source.Timezone,
			ExecutorID: source.ExecutorID,
		}
		if source.Recipe != "" {
			recipeDoc := map[string]interface{}{}
			if err := json.Unmarshal([]byte(source.Recipe), &recipeDoc); err != nil {
				logrus.Fatalf(formatter.Colorize(
					"Could not parse stored recipe document: "+err.Error()+"\n",
					formatter.RedColor))
			}
			parsed.Recipe = recipeDoc
		}

		out, err := yaml.Marshal(&parsed)
		if err != nil {
			logrus.Fatalf(formatter.Colorize(err.Error()+"\n", formatter.RedColor))
		}

		if file == "" {
			fmt.Print(string(out))
			return
		}
		if err := os.WriteFile(file, out, 0644); err != nil {
			logrus.Fatalf(formatter.Colorize(err.Error()+"\n", formatter.RedColor))
		}
		logrus.Infof("The recipe %s has been written to %s\n",
			formatter.Colorize(source.Name, formatter.GreenColor), file)

	},
}

func init() {
	pullRecipeCmd.Flags().SortFlags = false
	pullRecipeCmd.Flags().StringP("name", "n", "",
		"[Required] The name or URN of the recipe to pull.")
	pullRecipeCmd.MarkFlagRequired("name")
	pullRecipeCmd.Flags().StringP("file", "f", "",
		"[Optional] Path to write the YAML recipe to. Defaults to stdout.")
}

// resolveSource fetches an ingestion source by URN or name
func resolveSource(
	authAPI *dhubAuthClient.AuthAPIClient,
	name string,
) (*dhubAuthClient.IngestionSource, error) {
	urn := name
	if !util.IsValidURN(urn) {
		urn = util.IngestionSourceURN(name)
	}
	source, err := authAPI.GetIngestionSource(authAPI.Context(), urn)
	if err == nil && source != nil {
		return source, nil
	}
	source, err = findSourceByName(authAPI, name)
	if err != nil {
		return nil, err
	}
	if source == nil {
		return nil, fmt.Errorf("recipe %s not found", name)
	}
	return source, nil
}
