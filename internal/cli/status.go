package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

func newStatusCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "Show resource totals reported by the backend",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			users, usersErr := apiClient.Users().Count(ctx)
			groups, groupsErr := apiClient.Groups().Count(ctx)

			if getOutputFormat() != "pretty" {
				summary := map[string]interface{}{}
				if usersErr == nil {
					summary["users"] = users
				}
				if groupsErr == nil {
					summary["groups"] = groups
				}
				return printOutput(summary)
			}

			fmt.Println("SCIM Directory")
			fmt.Println(strings.Repeat("=", 40))

			if usersErr != nil {
				fmt.Printf("  Users:   (error: %v)\n", usersErr)
			} else {
				fmt.Printf("  Users:   %d\n", users)
			}
			if groupsErr != nil {
				fmt.Printf("  Groups:  (error: %v)\n", groupsErr)
			} else {
				fmt.Printf("  Groups:  %d\n", groups)
			}

			return nil
		},
	}
}
