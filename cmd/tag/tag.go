/*
 * Copyright (c) DataOps Cloud, Inc.
 */

package tag

import (
	"github.com/spf13/cobra"
)

// TagCmd set of commands are used to perform operations on tags
// in the DataHub catalog
var TagCmd = &cobra.Command{
	Use:   "tag",
	Short: "Manage DataHub tags",
	Long:  "Manage DataHub tags",
	Run: func(cmd *cobra.Command, args []string) {
		cmd.Help()
	},
}

func init() {
	TagCmd.PersistentFlags().SortFlags = false
	TagCmd.Flags().SortFlags = false

	TagCmd.AddCommand(listTagCmd)
	TagCmd.AddCommand(describeTagCmd)
	TagCmd.AddCommand(createTagCmd)
	TagCmd.AddCommand(deleteTagCmd)
}
