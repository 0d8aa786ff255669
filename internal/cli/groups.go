package cli

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/pratik-mahalle/scimctl/pkg/scim"
)

func newGroupsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "groups",
		Aliases: []string{"group"},
		Short:   "Manage SCIM groups",
	}

	cmd.AddCommand(newGroupsListCmd())
	cmd.AddCommand(newGroupsCreateCmd())
	cmd.AddCommand(newGroupsDeleteCmd())
	cmd.AddCommand(newGroupsAddMemberCmd())

	return cmd
}

func newGroupsListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List all groups",
		RunE: func(cmd *cobra.Command, args []string) error {
			list, err := apiClient.Groups().ListAll(cmd.Context())
			if err != nil {
				return fmt.Errorf("failed to list groups: %w", err)
			}

			if getOutputFormat() != "pretty" {
				return printOutput(list)
			}

			groups, err := list.Groups()
			if err != nil {
				return fmt.Errorf("failed to decode groups: %w", err)
			}

			t := NewTable("DISPLAY NAME", "ID", "EXTERNAL ID", "MEMBERS", "LAST MODIFIED")
			for _, g := range groups {
				lastModified := "N/A"
				if g.Meta != nil && g.Meta.LastModified != "" {
					lastModified = g.Meta.LastModified
				}
				t.AddRow(
					truncate(g.DisplayName, 40),
					g.ID,
					displayString(g.ExternalID),
					fmt.Sprintf("%d", len(g.Members)),
					lastModified,
				)
			}
			t.Render()
			fmt.Printf("\nTotal Groups found: %d\n", len(groups))
			return nil
		},
	}
}

func newGroupsCreateCmd() *cobra.Command {
	var displayName, externalID, members string

	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create a new group",
		RunE: func(cmd *cobra.Command, args []string) error {
			var memberIDs []string
			if members != "" {
				memberIDs = strings.Split(members, ",")
			}

			group, err := apiClient.Groups().Create(cmd.Context(), scim.CreateGroupRequest{
				DisplayName: displayName,
				ExternalID:  externalID,
				MemberIDs:   memberIDs,
			})
			if err != nil {
				return fmt.Errorf("failed to create group: %w", err)
			}

			if getOutputFormat() != "pretty" {
				return printOutput(group)
			}

			fmt.Println("Group created successfully:")
			printGroup(group)
			return nil
		},
	}

	cmd.Flags().StringVar(&displayName, "display-name", "", "display name for the new group")
	cmd.Flags().StringVar(&externalID, "external-id", "", "external ID for the new group")
	cmd.Flags().StringVar(&members, "members", "", "comma-separated list of member IDs")
	_ = cmd.MarkFlagRequired("display-name")

	return cmd
}

func newGroupsDeleteCmd() *cobra.Command {
	var delay time.Duration
	var skipConfirm bool

	cmd := &cobra.Command{
		Use:   "delete [id]",
		Short: "Delete a group, or every group when no ID is given",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if !cmd.Flags().Changed("delay") {
				delay = defaultDeleteDelay()
			}

			if len(args) == 1 {
				if err := apiClient.Groups().Delete(cmd.Context(), args[0]); err != nil {
					return fmt.Errorf("failed to delete group %s: %w", args[0], err)
				}
				fmt.Printf("Group %s deleted successfully\n", args[0])
				return nil
			}

			if !skipConfirm && !confirmDeleteAll(scim.ResourceTypeGroups) {
				fmt.Println("Operation cancelled.")
				return nil
			}

			list, err := apiClient.Groups().ListAll(cmd.Context())
			if err != nil {
				return fmt.Errorf("failed to list groups: %w", err)
			}
			ids, err := list.ResourceIDs()
			if err != nil {
				return fmt.Errorf("failed to decode group IDs: %w", err)
			}

			outcome, err := apiClient.Groups().DeleteMany(cmd.Context(), ids, delay)
			if err != nil {
				return err
			}
			return printDeletionSummary(outcome)
		},
	}

	cmd.Flags().DurationVar(&delay, "delay", 500*time.Millisecond, "delay between delete requests")
	cmd.Flags().BoolVarP(&skipConfirm, "yes", "y", false, "skip the confirmation prompt")

	return cmd
}

func newGroupsAddMemberCmd() *cobra.Command {
	var groupID, userID string

	cmd := &cobra.Command{
		Use:   "add-member",
		Short: "Add a user to a group",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := apiClient.Groups().AddMember(cmd.Context(), groupID, userID); err != nil {
				return fmt.Errorf("failed to add user %s to group %s: %w", userID, groupID, err)
			}
			fmt.Printf("Successfully added user %s to group %s\n", userID, groupID)
			return nil
		},
	}

	cmd.Flags().StringVar(&groupID, "group-id", "", "group ID")
	cmd.Flags().StringVar(&userID, "user-id", "", "user ID to add")
	_ = cmd.MarkFlagRequired("group-id")
	_ = cmd.MarkFlagRequired("user-id")

	return cmd
}

func printGroup(g *scim.Group) {
	fmt.Printf("Display Name:   %s\n", g.DisplayName)
	fmt.Printf("ID:             %s\n", g.ID)
	fmt.Printf("External ID:    %s\n", displayString(g.ExternalID))
	fmt.Printf("Members:        %d\n", len(g.Members))
	if g.Meta != nil && g.Meta.LastModified != "" {
		fmt.Printf("Last Modified:  %s\n", g.Meta.LastModified)
	}
}
