/*
 * Copyright (c) DataOps Cloud, Inc.
 */

package domain

import (
	"github.com/spf13/cobra"
)

// DomainCmd set of commands are used to perform operations on domains
// in the DataHub catalog
var DomainCmd = &cobra.Command{
	Use:   "domain",
	Short: "Manage DataHub domains",
	Long:  "Manage DataHub domains",
	Run: func(cmd *cobra.Command, args []string) {
		cmd.Help()
	},
}

func init() {
	DomainCmd.PersistentFlags().SortFlags = false
	DomainCmd.Flags().SortFlags = false

	DomainCmd.AddCommand(listDomainCmd)
	DomainCmd.AddCommand(describeDomainCmd)
	DomainCmd.AddCommand(createDomainCmd)
	DomainCmd.AddCommand(deleteDomainCmd)
}
