/*
 * Copyright (c) DataOps Cloud, Inc.
 */

package cmd

import (
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/dataops-cloud/dhub-cli/cmd/domain"
	"github.com/dataops-cloud/dhub-cli/cmd/glossary"
	"github.com/dataops-cloud/dhub-cli/cmd/migrate"
	"github.com/dataops-cloud/dhub-cli/cmd/policy"
	"github.com/dataops-cloud/dhub-cli/cmd/recipe"
	"github.com/dataops-cloud/dhub-cli/cmd/secret"
	"github.com/dataops-cloud/dhub-cli/cmd/tag"
	"github.com/dataops-cloud/dhub-cli/internal/formatter"
	"github.com/dataops-cloud/dhub-cli/internal/log"

	"github.com/common-nighthawk/go-figure"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var (
	cfgFile      string
	cfgDirectory string
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use: "dhub",
	Short: "dhub - Command line tools to manage the metadata of your " +
		"DataHub data catalog environments.",
	Long: `
	DataHub is a metadata platform for the modern data stack, cataloging
	datasets, tags, glossary terms, domains and ingestion pipelines across
	environments. The dhub CLI provides ease of access to metadata
	operations, including cross-environment metadata migration, via the
	command line.`,

	Run: func(cmd *cobra.Command, args []string) {
		myFigure := figure.NewFigure("dhub", "", true)
		myFigure.Print()
		logrus.Printf("\n")
		cmd.Help()
	},

	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		if strings.HasPrefix(cmd.CommandPath(), "dhub completion") {
			return
		}
	},
}

// called on module init
func init() {
	cobra.OnInitialize(initConfig)
	cobra.EnableCaseInsensitive = true

	setDefaults()
	rootCmd.PersistentFlags().SortFlags = false
	rootCmd.PersistentFlags().StringVar(&cfgDirectory, "directory", "",
		"Directory containing dhub CLI configuration and generated files. "+
			"If specified, the CLI will look for a configuration file named '.dhub-cli.yaml' in this directory. "+
			"Defaults to '$HOME/.dhub-cli/'.")
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "",
		"Full path to a specific configuration file for dhub CLI. "+
			"If provided, this takes precedence over the directory specified via --directory, "+
			"and the generated files are added to the same path. "+
			"If not provided, the CLI will look for '.dhub-cli.yaml' in the directory specified by --directory. "+
			"Defaults to '$HOME/.dhub-cli/.dhub-cli.yaml'.")
	rootCmd.PersistentFlags().StringP("host", "H", "http://localhost:8080",
		"DataHub GMS host")
	rootCmd.PersistentFlags().StringP("token", "a", "", "DataHub personal access token.")
	rootCmd.PersistentFlags().StringP("env", "e", "",
		"Named environment profile from the configuration file to run against. "+
			"Uses the top level host and token when unset.")
	rootCmd.PersistentFlags().StringP("output", "o", formatter.TableFormatKey,
		"Select the desired output format. Allowed values: table, json, pretty.")
	rootCmd.PersistentFlags().StringP("logLevel", "l", "info",
		"Select the desired log level format. Allowed values: debug, info, warn, error, fatal.")
	rootCmd.PersistentFlags().Bool("debug", false, "Use debug mode, same as --logLevel debug.")
	rootCmd.PersistentFlags().
		Bool("disable-color", false, "Disable colors in output. (default false)")
	rootCmd.PersistentFlags().Bool("wait", true,
		"Wait until the ingestion run is completed, otherwise it will exit immediately.")
	rootCmd.PersistentFlags().Duration("timeout", 7*24*time.Hour,
		"Wait command timeout, example: 5m, 1h.")
	rootCmd.PersistentFlags().Bool("insecure", false,
		"Allow insecure connections to DataHub."+
			" Value ignored for http endpoints. Defaults to false for https.")

	//Bind peristents flags to viper
	viper.BindPFlag("host", rootCmd.PersistentFlags().Lookup("host"))
	viper.BindPFlag("token", rootCmd.PersistentFlags().Lookup("token"))
	viper.BindPFlag("env", rootCmd.PersistentFlags().Lookup("env"))
	viper.BindPFlag("output", rootCmd.PersistentFlags().Lookup("output"))
	viper.BindPFlag("logLevel", rootCmd.PersistentFlags().Lookup("logLevel"))
	viper.BindPFlag("debug", rootCmd.PersistentFlags().Lookup("debug"))
	viper.BindPFlag("disable-color", rootCmd.PersistentFlags().Lookup("disable-color"))
	viper.BindPFlag("wait", rootCmd.PersistentFlags().Lookup("wait"))
	viper.BindPFlag("timeout", rootCmd.PersistentFlags().Lookup("timeout"))
	viper.BindPFlag("insecure", rootCmd.PersistentFlags().Lookup("insecure"))

	rootCmd.AddCommand(authCmd)
	rootCmd.AddCommand(loginCmd)
	rootCmd.AddCommand(tag.TagCmd)
	rootCmd.AddCommand(domain.DomainCmd)
	rootCmd.AddCommand(glossary.GlossaryCmd)
	rootCmd.AddCommand(policy.PolicyCmd)
	rootCmd.AddCommand(secret.SecretCmd)
	rootCmd.AddCommand(recipe.RecipeCmd)
	rootCmd.AddCommand(migrate.MigrateCmd)

	addGroupsCmd(rootCmd)
}

// Execute commands
func Execute(version string) {
	rootCmd.Version = version
	rootCmd.SetVersionTemplate("DataHub CLI (dhub) version: {{.Version}}\n")
	if err := rootCmd.Execute(); err != nil {
		// Set log level and formatter for this error
		log.SetLogLevel(viper.GetString("logLevel"), viper.GetBool("debug"))
		logrus.Fatal(formatter.Colorize(err.Error()+"\n", formatter.RedColor))
	}
}

func setDefaults() {
	viper.SetDefault("host", "http://localhost:8080")
	viper.SetDefault("output", formatter.TableFormatKey)
	viper.SetDefault("logLevel", "info")
	viper.SetDefault("debug", false)
	viper.SetDefault("disable-color", false)
	viper.SetDefault("wait", true)
	viper.SetDefault("timeout", time.Duration(7*24*time.Hour))
	viper.SetDefault("insecure", false)
}

// initConfig reads in config file and ENV variables if set.
func initConfig() {
	if cfgFile != "" {
		// Use config file from the flag.
		viper.SetConfigFile(cfgFile)
	} else if cfgDirectory != "" {
		// Check if the directory exists
		if stat, err := os.Stat(cfgDirectory); err == nil && stat.IsDir() {
			configPath := filepath.Join(cfgDirectory, ".dhub-cli.yaml")
			viper.AddConfigPath(cfgDirectory)
			viper.SetConfigType("yaml")
			viper.SetConfigName(".dhub-cli")
			viper.SetConfigFile(configPath)
		} else {
			viper.SetDefault("output", formatter.TableFormatKey)
			viper.SetDefault("logLevel", "info")
			viper.SetDefault("debug", false)
			logrus.Fatalf("%s",
				formatter.Colorize(
					"Provided configuration directory does not exist: "+cfgDirectory, formatter.RedColor,
				))
		}
	} else {
		// Find home directory.
		home, err := os.UserHomeDir()
		cobra.CheckErr(err)
		homeDir, err := os.Stat(home)
		if err != nil {
			cobra.CheckErr(err)
		}
		homePerms := homeDir.Mode().Perm()
		os.Mkdir(home+"/.dhub-cli", homePerms)
		// Search config in home directory with name ".dhub-cli" (without extension).
		viper.AddConfigPath(home + "/.dhub-cli")
		viper.SetConfigType("yaml")
		viper.SetConfigName(".dhub-cli")
		viper.SetConfigFile(home + "/.dhub-cli/.dhub-cli.yaml")
	}

	//Will check every environment variable starting with DHUB_
	viper.SetEnvPrefix("dhub")
	//Read all enviromnent variable that match DHUB_ENVNAME
	viper.AutomaticEnv() // read in environment variables that match
	// Set log level and formatter
	log.SetLogLevel(viper.GetString("logLevel"), viper.GetBool("debug"))
	// If a config file is found, read it in.
	if err := viper.ReadInConfig(); err == nil {
		logrus.Debugf("Using config file: %s\n", viper.ConfigFileUsed())
	}

}

func addGroupsCmd(rootCmd *cobra.Command) {

	rootCmd.AddGroup(
		&cobra.Group{
			ID:    "authentication",
			Title: "Authentication Commands",
		},
	)

	authCmd.GroupID = "authentication"
	loginCmd.GroupID = "authentication"

	rootCmd.AddGroup(
		&cobra.Group{
			ID:    "metadata",
			Title: "Metadata Entity Commands",
		},
	)

	tag.TagCmd.GroupID = "metadata"
	domain.DomainCmd.GroupID = "metadata"
	glossary.GlossaryCmd.GroupID = "metadata"
	policy.PolicyCmd.GroupID = "metadata"

	rootCmd.AddGroup(
		&cobra.Group{
			ID:    "ingestion",
			Title: "Ingestion Commands",
		},
	)

	secret.SecretCmd.GroupID = "ingestion"
	recipe.RecipeCmd.GroupID = "ingestion"

	rootCmd.AddGroup(
		&cobra.Group{
			ID:    "migration",
			Title: "Migration Commands",
		},
	)

	migrate.MigrateCmd.GroupID = "migration"
}
