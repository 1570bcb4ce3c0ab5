/*
 * Copyright (c) DataOps Cloud, Inc.
 */

package secret

import (
	"github.com/spf13/cobra"
)

// SecretCmd set of commands are used to perform operations on
// ingestion secrets in the DataHub catalog
var SecretCmd = &cobra.Command{
	Use:   "secret",
	Short: "Manage DataHub ingestion secrets",
	Long:  "Manage DataHub ingestion secrets",
	Run: func(cmd *cobra.Command, args []string) {
		cmd.Help()
	},
}

func init() {
	SecretCmd.PersistentFlags().SortFlags = false
	SecretCmd.Flags().SortFlags = false

	SecretCmd.AddCommand(listSecretCmd)
	SecretCmd.AddCommand(createSecretCmd)
	SecretCmd.AddCommand(deleteSecretCmd)
}
