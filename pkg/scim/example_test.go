package scim_test

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/pratik-mahalle/scimctl/pkg/scim"
)

// Example demonstrates basic usage of the SCIM client
func Example() {
	c := scim.NewClient(scim.Config{
		BaseURL: "https://idp.example.com",
		Token:   "bearer-token",
	})

	ctx := context.Background()

	// List every user across all pages
	users, err := c.Users().ListAll(ctx)
	if err != nil {
		log.Fatal(err)
	}

	fmt.Printf("Found %d users\n", users.TotalResults)
}

// ExampleUserService_Create demonstrates user creation
func ExampleUserService_Create() {
	c := scim.NewClient(scim.Config{
		BaseURL: "https://idp.example.com",
		Token:   "bearer-token",
	})

	user, err := c.Users().Create(context.Background(), scim.CreateUserRequest{
		UserName:   "jdoe",
		Email:      "jane@example.com",
		GivenName:  "Jane",
		FamilyName: "Doe",
	})
	if err != nil {
		log.Fatal(err)
	}

	fmt.Printf("Created user %s\n", user.ID)
}

// ExampleUserService_DeleteMany demonstrates bulk deletion with a
// pause between requests
func ExampleUserService_DeleteMany() {
	c := scim.NewClient(scim.Config{
		BaseURL: "https://idp.example.com",
		Token:   "bearer-token",
	})

	ctx := context.Background()

	list, err := c.Users().ListAll(ctx)
	if err != nil {
		log.Fatal(err)
	}
	ids, err := list.ResourceIDs()
	if err != nil {
		log.Fatal(err)
	}

	outcome, err := c.Users().DeleteMany(ctx, ids, 500*time.Millisecond)
	if err != nil {
		log.Fatal(err)
	}

	fmt.Printf("Deleted %d, failed %d\n", outcome.Succeeded(), outcome.Failed())
}
