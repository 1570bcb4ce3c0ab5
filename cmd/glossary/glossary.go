/*
 * Copyright (c) DataOps Cloud, Inc.
 */

package glossary

import (
	"github.com/spf13/cobra"
)

// GlossaryCmd set of commands are used to perform operations on
// glossary terms in the DataHub catalog
var GlossaryCmd = &cobra.Command{
	Use:   "glossary",
	Short: "Manage DataHub glossary terms",
	Long:  "Manage DataHub glossary terms",
	Run: func(cmd *cobra.Command, args []string) {
		cmd.Help()
	},
}

func init() {
	GlossaryCmd.PersistentFlags().SortFlags = false
	GlossaryCmd.Flags().SortFlags = false

	GlossaryCmd.AddCommand(listGlossaryTermCmd)
	GlossaryCmd.AddCommand(describeGlossaryTermCmd)
	GlossaryCmd.AddCommand(createGlossaryTermCmd)
	GlossaryCmd.AddCommand(deleteGlossaryTermCmd)
}
