/*
 * Copyright (c) DataOps Cloud, Inc.
 */

package policy

import (
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/dataops-cloud/dhub-cli/cmd/util"
	dhubAuthClient "github.com/dataops-cloud/dhub-cli/internal/client"
	"github.com/dataops-cloud/dhub-cli/internal/formatter"
)

var createPolicyCmd = &cobra.Command{
	Use:     "create",
	Aliases: []string{"add"},
	Short:   "Create a DataHub access policy",
	Long:    "Create a DataHub access policy",
	Example: `dhub policy create --name readers --privileges VIEW_ENTITY_PAGE --users urn:li:corpuser:jdoe`,
	PreRun: func(cmd *cobra.Command, args []string) {
		name, err := cmd.Flags().GetString("name")
		if err != nil {
			logrus.Fatalf(formatter.Colorize(err.Error()+"\n", formatter.RedColor))
		}
		if len(name) == 0 {
			cmd.Help()
			logrus.Fatalln(
				formatter.Colorize("No policy name found to create\n", formatter.RedColor))
		}
	},
	Run: func(cmd *cobra.Command, args []string) {
		authAPI := dhubAuthClient.NewAuthAPIClientAndVerify()

		name, err := cmd.Flags().GetString("name")
		if err != nil {
			logrus.Fatalf(formatter.Colorize(err.Error()+"\n", formatter.RedColor))
		}
		description, err := cmd.Flags().GetString("description")
		if err != nil {
			logrus.Fatalf(formatter.Colorize(err.Error()+"\n", formatter.RedColor))
		}
		policyType, err := cmd.Flags().GetString("type")
		if err != nil {
			logrus.Fatalf(formatter.Colorize(err.Error()+"\n", formatter.RedColor))
		}
		state, err := cmd.Flags().GetString("state")
		if err != nil {
			logrus.Fatalf(formatter.Colorize(err.Error()+"\n", formatter.RedColor))
		}
		privileges, err := cmd.Flags().GetStringSlice("privileges")
		if err != nil {
			logrus.Fatalf(formatter.Colorize(err.Error()+"\n", formatter.RedColor))
		}
		users, err := cmd.Flags().GetStringSlice("users")
		if err != nil {
			logrus.Fatalf(formatter.Colorize(err.Error()+"\n", formatter.RedColor))
		}
		groups, err := cmd.Flags().GetStringSlice("groups")
		if err != nil {
			logrus.Fatalf(formatter.Colorize(err.Error()+"\n", formatter.RedColor))
		}

		urn, err := authAPI.CreatePolicy(authAPI.Context(), dhubAuthClient.Policy{
			Name:        name,
			Type:        policyType,
			State:       state,
			Description: description,
			Privileges:  privileges,
			Users:       users,
			Groups:      groups,
		})
		if err != nil {
			logrus.Fatalf(formatter.Colorize(err.Error()+"\n", formatter.RedColor))
		}

		logrus.Infof("The policy %s (%s) has been created\n",
			formatter.Colorize(name, formatter.GreenColor), urn)

	},
}

func init() {
	createPolicyCmd.Flags().SortFlags = false
	createPolicyCmd.Flags().StringP("name", "n", "",
		"[Required] The name of the policy to create.")
	createPolicyCmd.MarkFlagRequired("name")
	createPolicyCmd.Flags().String("description", "",
		"[Optional] The description of the policy.")
	createPolicyCmd.Flags().String("type", util.MetadataPolicyType,
		"[Optional] The type of the policy. Allowed values: METADATA, PLATFORM.")
	createPolicyCmd.Flags().String("state", util.ActivePolicyState,
		"[Optional] The state of the policy. Allowed values: ACTIVE, INACTIVE.")
	createPolicyCmd.Flags().StringSlice("privileges", []string{},
		"[Required] Comma separated list of privileges granted by the policy.")
	createPolicyCmd.MarkFlagRequired("privileges")
	createPolicyCmd.Flags().StringSlice("users", []string{},
		"[Optional] Comma separated list of user URNs the policy applies to. "+
			"Applies to all users when users and groups are unset.")
	createPolicyCmd.Flags().StringSlice("groups", []string{},
		"[Optional] Comma separated list of group URNs the policy applies to.")
}
