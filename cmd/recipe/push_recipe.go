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

	dhubAuthClient "github.com/dataops-cloud/dhub-cli/internal/client"
	"github.com/dataops-cloud/dhub-cli/internal/formatter"
)

// recipeFile is the on-disk YAML shape of a managed ingestion recipe
type recipeFile struct {
	Name       string                 `yaml:"name"`
	Type       string                 `yaml:"type"`
	Schedule   string                 `yaml:"schedule,omitempty"`
	Timezone   string                 `yaml:"timezone,omitempty"`
	ExecutorID string                 `yaml:"executor_id,omitempty"`
	Recipe     map[string]interface{} `yaml:"recipe"`
}

var pushRecipeCmd = &cobra.Command{
	Use:     "push",
	Aliases: []string{"apply"},
	Short:   "Push an ingestion recipe to DataHub",
	Long: "Push a YAML ingestion recipe to DataHub, creating the ingestion " +
		"source or updating it in place when a source with the same name exists.",
	Example: `dhub recipe push --file snowflake.yaml`,
	PreRun: func(cmd *cobra.Command, args []string) {
		file, err := cmd.Flags().GetString("file")
		if err != nil {
			logrus.Fatalf(formatter.Colorize(err.Error()+"\n", formatter.RedColor))
		}
		if len(file) == 0 {
			cmd.Help()
			logrus.Fatalln(
				formatter.Colorize("No recipe file found to push\n", formatter.RedColor))
		}
	},
	Run: func(cmd *cobra.Command, args []string) {
		authAPI := dhubAuthClient.NewAuthAPIClientAndVerify()

		file, err := cmd.Flags().GetString("file")
		if err != nil {
			logrus.Fatalf(formatter.Colorize(err.Error()+"\n", formatter.RedColor))
		}

		source, err := loadRecipeFile(file)
		if err != nil {
			logrus.Fatalf(formatter.Colorize(err.Error()+"\n", formatter.RedColor))
		}

		existing, err := findSourceByName(authAPI, source.Name)
		if err != nil {
			logrus.Fatalf(formatter.Colorize(err.Error()+"\n", formatter.RedColor))
		}

		if existing != nil {
			err = authAPI.UpdateIngestionSource(authAPI.Context(), existing.URN, *source)
			if err != nil {
				logrus.Fatalf(formatter.Colorize(err.Error()+"\n", formatter.RedColor))
			}
			logrus.Infof("The recipe %s (%s) has been updated\n",
				formatter.Colorize(source.Name, formatter.GreenColor), existing.URN)
			return
		}

		urn, err := authAPI.CreateIngestionSource(authAPI.Context(), *source)
		if err != nil {
			logrus.Fatalf(formatter.Colorize(err.Error()+"\n", formatter.RedColor))
		}
		logrus.Infof("The recipe %s (%s) has been created\n",
			formatter.Colorize(source.Name, formatter.GreenColor), urn)

	},
}

func init() {
	pushRecipeCmd.Flags().SortFlags = false
	pushRecipeCmd.Flags().StringP("file", "f", "",
		"[Required] Path to the YAML recipe file to push.")
	pushRecipeCmd.MarkFlagRequired("file")
}

// loadRecipeFile parses a YAML recipe file into an ingestion source,
// serializing the nested recipe document to the JSON string the API expects
func loadRecipeFile(path string) (*dhubAuthClient.IngestionSource, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("could not read recipe file %s: %w", path, err)
	}
	parsed := recipeFile{}
	if err := yaml.Unmarshal(data, &parsed); err != nil {
		return nil, fmt.Errorf("could not parse recipe file %s: %w", path, err)
	}
	if parsed.Name == "" {
		return nil, fmt.Errorf("recipe file %s has no name", path)
	}
	if parsed.Type == "" {
		return nil, fmt.Errorf("recipe file %s has no type", path)
	}
	if len(parsed.Recipe) == 0 {
		return nil, fmt.Errorf("recipe file %s has no recipe document", path)
	}

	recipeJSON, err := json.Marshal(normalizeYAML(parsed.Recipe))
	if err != nil {
		return nil, fmt.Errorf("could not serialize recipe document: %w", err)
	}

	return &dhubAuthClient.IngestionSource{
		Name:       parsed.Name,
		Type:       parsed.Type,
		Recipe:     string(recipeJSON),
		ExecutorID: parsed.ExecutorID,
		Schedule:   parsed.Schedule,
		Timezone:   parsed.Timezone,
	}, nil
}

// normalizeYAML rewrites the map[interface{}]interface{} values produced
// by the YAML decoder into JSON-marshalable values
func normalizeYAML(value interface{}) interface{} {
	switch typed := value.(type) {
	case map[interface{}]interface{}:
		normalized := make(map[string]interface{}, len(typed))
		for k, v := range typed {
			normalized[fmt.Sprintf("%v", k)] = normalizeYAML(v)
		}
		return normalized
	case map[string]interface{}:
		normalized := make(map[string]interface{}, len(typed))
		for k, v := range typed {
			normalized[k] = normalizeYAML(v)
		}
		return normalized
	case []interface{}:
		normalized := make([]interface{}, len(typed))
		for i, v := range typed {
			normalized[i] = normalizeYAML(v)
		}
		return normalized
	default:
		return value
	}
}

// findSourceByName returns the ingestion source with the given name, or
// nil when no source matches
func findSourceByName(
	authAPI *dhubAuthClient.AuthAPIClient,
	name string,
) (*dhubAuthClient.IngestionSource, error) {
	sources, err := authAPI.ListIngestionSources(authAPI.Context())
	if err != nil {
		return nil, err
	}
	for i := range sources {
		if sources[i].Name == name {
			return &sources[i], nil
		}
	}
	return nil, nil
}
