/*
 * Copyright (c) DataOps Cloud, Inc.
 */

package secret

import (
	"fmt"
	"os"
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	dhubAuthClient "github.com/dataops-cloud/dhub-cli/internal/client"
	"github.com/dataops-cloud/dhub-cli/internal/formatter"
)

var createSecretCmd = &cobra.Command{
	Use:     "create",
	Aliases: []string{"add"},
	Short:   "Create a DataHub ingestion secret",
	Long: "Create a DataHub ingestion secret. The value is read from the " +
		"--value flag, or prompted for interactively when the flag is unset.",
	Example: `dhub secret create --name SNOWFLAKE_PASSWORD`,
	PreRun: func(cmd *cobra.Command, args []string) {
		name, err := cmd.Flags().GetString("name")
		if err != nil {
			logrus.Fatalf(formatter.Colorize(err.Error()+"\n", formatter.RedColor))
		}
		if len(name) == 0 {
			cmd.Help()
			logrus.Fatalln(
				formatter.Colorize("No secret name found to create\n", formatter.RedColor))
		}
	},
	Run: func(cmd *cobra.Command, args []string) {
		authAPI := dhubAuthClient.NewAuthAPIClientAndVerify()

		name, err := cmd.Flags().GetString("name")
		if err != nil {
			logrus.Fatalf(formatter.Colorize(err.Error()+"\n", formatter.RedColor))
		}
		value, err := cmd.Flags().GetString("value")
		if err != nil {
			logrus.Fatalf(formatter.Colorize(err.Error()+"\n", formatter.RedColor))
		}
		description, err := cmd.Flags().GetString("description")
		if err != nil {
			logrus.Fatalf(formatter.Colorize(err.Error()+"\n", formatter.RedColor))
		}

		if value == "" {
			// Prompt for the secret value
			fmt.Print("Enter Secret Value: ")
			data, err := term.ReadPassword(int(os.Stdin.Fd()))
			if err != nil {
				logrus.Fatalln(
					formatter.Colorize("Could not read secret value: "+err.Error(),
						formatter.RedColor))
			}
			value = string(data)
			fmt.Println()
		}
		if strings.TrimSpace(value) == "" {
			logrus.Fatalln(
				formatter.Colorize("Secret value cannot be empty.", formatter.RedColor))
		}

		urn, err := authAPI.CreateSecret(authAPI.Context(), name, value, description)
		if err != nil {
			logrus.Fatalf(formatter.Colorize(err.Error()+"\n", formatter.RedColor))
		}

		logrus.Infof("The secret %s (%s) has been created\n",
			formatter.Colorize(name, formatter.GreenColor), urn)

	},
}

func init() {
	createSecretCmd.Flags().SortFlags = false
	createSecretCmd.Flags().StringP("name", "n", "",
		"[Required] The name of the secret to create.")
	createSecretCmd.MarkFlagRequired("name")
	createSecretCmd.Flags().String("value", "",
		"[Optional] The value of the secret. Prompted for interactively when unset.")
	createSecretCmd.Flags().String("description", "",
		"[Optional] The description of the secret.")
}
