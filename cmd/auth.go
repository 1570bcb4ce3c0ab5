/*
 * Copyright (c) DataOps Cloud, Inc.
 */

package cmd

import (
	"fmt"
	"os"
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"golang.org/x/term"

	dhubAuthClient "github.com/dataops-cloud/dhub-cli/internal/client"
	"github.com/dataops-cloud/dhub-cli/internal/formatter"
)

var authCmd = &cobra.Command{
	Use:   "auth",
	Short: "Authenticate dhub cli",
	Long:  "Authenticate the dhub cli through this command by providing the host and access token.",
	Run: func(cmd *cobra.Command, args []string) {
		var token string
		var host string
		var data []byte
		var err error

		// Prompt for the host
		fmt.Print("Enter Host: ")
		_, err = fmt.Scanln(&host)
		if err != nil {
			logrus.Fatalln(
				formatter.Colorize("Could not read host: "+err.Error(), formatter.RedColor))
		}
		if len(host) == 0 {
			logrus.Fatalln(formatter.Colorize("Host cannot be empty.", formatter.RedColor))
		}
		viper.GetViper().Set("host", &host)

		// Prompt for the access token
		fmt.Print("Enter Access Token: ")
		data, err = term.ReadPassword(int(os.Stdin.Fd()))
		if err != nil {
			logrus.Fatalln(
				formatter.Colorize("Could not read token: "+err.Error(), formatter.RedColor))
		}
		token = string(data)

		if strings.TrimSpace(token) == "" {
			logrus.Fatalln(formatter.Colorize("Token cannot be empty.", formatter.RedColor))
		}
		viper.GetViper().Set("token", &token)

		// Before writing the config, validate that the data is correct
		url, err := dhubAuthClient.ParseURL(host)
		if err != nil {
			logrus.Fatal(formatter.Colorize(err.Error(), formatter.RedColor))
		}

		authAPI, _ := dhubAuthClient.NewAuthAPIClientInitialize(url, token)
		config, err := authAPI.GetServerConfig(authAPI.Context())
		if err != nil {
			logrus.Fatalf(formatter.Colorize(err.Error()+"\n", formatter.RedColor))
		}
		logrus.Debugf("Connected to DataHub version %s\n", config.Version())

		writeConfigFile()
	},
}

var loginCmd = &cobra.Command{
	Use:   "login",
	Short: "Authenticate dhub cli using non-interactive mode",
	Long: "Authenticate the dhub cli using the --host and --token flags. " +
		"When --env is set the credentials are stored under that environment profile.",
	Example: `dhub login --host https://datahub.example.com --token <token> --env prod`,
	Run: func(cmd *cobra.Command, args []string) {
		host := viper.GetString("host")
		token := viper.GetString("token")
		env := viper.GetString("env")

		if len(host) == 0 {
			logrus.Fatalln(formatter.Colorize("Host cannot be empty.", formatter.RedColor))
		}
		if strings.TrimSpace(token) == "" {
			logrus.Fatalln(formatter.Colorize("Token cannot be empty.", formatter.RedColor))
		}

		url, err := dhubAuthClient.ParseURL(host)
		if err != nil {
			logrus.Fatal(formatter.Colorize(err.Error(), formatter.RedColor))
		}

		authAPI, _ := dhubAuthClient.NewAuthAPIClientInitialize(url, token)
		config, err := authAPI.GetServerConfig(authAPI.Context())
		if err != nil {
			logrus.Fatalf(formatter.Colorize(err.Error()+"\n", formatter.RedColor))
		}
		logrus.Debugf("Connected to DataHub version %s\n", config.Version())

		if env != "" {
			viper.GetViper().Set(fmt.Sprintf("environments.%s.host", env), host)
			viper.GetViper().Set(fmt.Sprintf("environments.%s.token", env), token)
		} else {
			viper.GetViper().Set("host", &host)
			viper.GetViper().Set("token", &token)
		}

		writeConfigFile()
	},
}

func writeConfigFile() {
	err := viper.WriteConfig()
	if err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); ok {
			fmt.Fprintln(os.Stdout, "No config was found a new one will be created.")
			//Try to create the file
			err = viper.SafeWriteConfig()
			if err != nil {
				logrus.Fatalf(
					formatter.Colorize(
						"Error when writing new config file: %v\n"+err.Error(),
						formatter.RedColor))

			}
		} else {
			logrus.Fatalf(
				formatter.Colorize(
					"Error when writing config file: %v\n"+err.Error(), formatter.RedColor))
		}
	}
	configFileUsed := viper.GetViper().ConfigFileUsed()
	if len(configFileUsed) > 0 {
		logrus.Infof("Configuration file '%v' sucessfully updated.\n",
			configFileUsed)
	} else {
		configFileUsed = "$HOME/.dhub-cli.yaml"
		logrus.Infof("Configuration file '%v' sucessfully updated.\n",
			configFileUsed)
	}
}
