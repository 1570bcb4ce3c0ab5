/*
 * Copyright (c) DataOps Cloud, Inc.
 */

package policy

import (
	"github.com/spf13/cobra"
)

// PolicyCmd set of commands are used to perform operations on access
// policies in the DataHub catalog
var PolicyCmd = &cobra.Command{
	Use:   "policy",
	Short: "Manage DataHub access policies",
	Long:  "Manage DataHub access policies",
	Run: func(cmd *cobra.Command, args []string) {
		cmd.Help()
	},
}

func init() {
	PolicyCmd.PersistentFlags().SortFlags = false
	PolicyCmd.Flags().SortFlags = false

	PolicyCmd.AddCommand(listPolicyCmd)
	PolicyCmd.AddCommand(describePolicyCmd)
	PolicyCmd.AddCommand(createPolicyCmd)
	PolicyCmd.AddCommand(deletePolicyCmd)
}
