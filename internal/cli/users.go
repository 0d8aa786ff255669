package cli

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/pratik-mahalle/scimctl/pkg/scim"
)

func newUsersCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "users",
		Aliases: []string{"user"},
		Short:   "Manage SCIM users",
	}

	cmd.AddCommand(newUsersListCmd())
	cmd.AddCommand(newUsersCreateCmd())
	cmd.AddCommand(newUsersDeleteCmd())

	return cmd
}

func newUsersListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List all users",
		RunE: func(cmd *cobra.Command, args []string) error {
			list, err := apiClient.Users().ListAll(cmd.Context())
			if err != nil {
				return fmt.Errorf("failed to list users: %w", err)
			}

			if getOutputFormat() != "pretty" {
				return printOutput(list)
			}

			users, err := list.Users()
			if err != nil {
				return fmt.Errorf("failed to decode users: %w", err)
			}

			t := NewTable("USERNAME", "ID", "NAME", "EMAIL", "STATUS")
			for _, u := range users {
				t.AddRow(
					truncate(u.UserName, 30),
					u.ID,
					truncate(u.Name.GivenName+" "+u.Name.FamilyName, 30),
					truncate(u.PrimaryEmail(), 40),
					formatActive(u.Active),
				)
			}
			t.Render()
			fmt.Printf("\nTotal Users found: %d\n", len(users))
			return nil
		},
	}
}

func newUsersCreateCmd() *cobra.Command {
	var username, email, firstName, lastName, externalID string

	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create a new user",
		RunE: func(cmd *cobra.Command, args []string) error {
			user, err := apiClient.Users().Create(cmd.Context(), scim.CreateUserRequest{
				UserName:   username,
				Email:      email,
				GivenName:  firstName,
				FamilyName: lastName,
				ExternalID: externalID,
			})
			if err != nil {
				return fmt.Errorf("failed to create user: %w", err)
			}

			if getOutputFormat() != "pretty" {
				return printOutput(user)
			}

			fmt.Println("User created successfully:")
			printUser(user)
			return nil
		},
	}

	cmd.Flags().StringVar(&username, "username", "", "username for the new user")
	cmd.Flags().StringVar(&email, "email", "", "email for the new user")
	cmd.Flags().StringVar(&firstName, "first-name", "", "first name for the new user")
	cmd.Flags().StringVar(&lastName, "last-name", "", "last name for the new user")
	cmd.Flags().StringVar(&externalID, "external-id", "", "external ID for the new user")
	_ = cmd.MarkFlagRequired("username")

	return cmd
}

func newUsersDeleteCmd() *cobra.Command {
	var delay time.Duration
	var skipConfirm bool

	cmd := &cobra.Command{
		Use:   "delete [id]",
		Short: "Delete a user, or every user when no ID is given",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if !cmd.Flags().Changed("delay") {
				delay = defaultDeleteDelay()
			}

			if len(args) == 1 {
				if err := apiClient.Users().Delete(cmd.Context(), args[0]); err != nil {
					return fmt.Errorf("failed to delete user %s: %w", args[0], err)
				}
				fmt.Printf("User %s deleted successfully\n", args[0])
				return nil
			}

			if !skipConfirm && !confirmDeleteAll(scim.ResourceTypeUsers) {
				fmt.Println("Operation cancelled.")
				return nil
			}

			list, err := apiClient.Users().ListAll(cmd.Context())
			if err != nil {
				return fmt.Errorf("failed to list users: %w", err)
			}
			ids, err := list.ResourceIDs()
			if err != nil {
				return fmt.Errorf("failed to decode user IDs: %w", err)
			}

			outcome, err := apiClient.Users().DeleteMany(cmd.Context(), ids, delay)
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

func printUser(u *scim.User) {
	fmt.Printf("Username:  %s\n", u.UserName)
	fmt.Printf("ID:        %s\n", u.ID)
	fmt.Printf("Name:      %s %s\n", u.Name.GivenName, u.Name.FamilyName)
	fmt.Printf("Status:    %s\n", formatActive(u.Active))
	fmt.Printf("Email:     %s\n", u.PrimaryEmail())
	fmt.Printf("External:  %s\n", displayString(u.ExternalID))
}

func printDeletionSummary(outcome *scim.DeleteOutcome) error {
	if getOutputFormat() != "pretty" {
		return printOutput(outcome.AsMap())
	}

	fmt.Println("\nDeletion Summary:")
	fmt.Printf("Successfully deleted: %d\n", outcome.Succeeded())
	fmt.Printf("Failed to delete: %d\n", outcome.Failed())
	return nil
}
