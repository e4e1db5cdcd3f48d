package client_test

import (
	"context"
	"fmt"
	"log"
	"strings"

	"github.com/fraudlens/fraudlens/pkg/client"
)

// Example demonstrates basic usage of the FraudLens client
func Example() {
	// Create a new client
	c := client.NewClient(client.Config{
		BaseURL: "https://api.fraudlens.io",
	})

	ctx := context.Background()

	// Login
	account, err := c.Login(ctx, "user@example.com", "password")
	if err != nil {
		log.Fatal(err)
	}

	fmt.Printf("Logged in as: %s\n", account.Email)

	// List cases
	list, err := c.Cases().List(ctx, 1, 20)
	if err != nil {
		log.Fatal(err)
	}

	fmt.Printf("Found %d cases\n", list.Total)
}

// ExampleClient_Signup demonstrates account registration
func ExampleClient_Signup() {
	c := client.NewClient(client.Config{
		BaseURL: "https://api.fraudlens.io",
	})

	name := "Jane Auditor"
	account, err := c.Signup(context.Background(), client.SignupRequest{
		Email:    "jane@example.com",
		Password: "a-strong-password",
		Name:     &name,
	})
	if err != nil {
		log.Fatal(err)
	}

	fmt.Printf("Registered account %s on the %s plan\n", account.ID, account.Subscription.Tier)
}

// ExampleCaseService_Upload demonstrates uploading a CSV file to a case
func ExampleCaseService_Upload() {
	c := client.NewClient(client.Config{
		BaseURL: "https://api.fraudlens.io",
	})

	ctx := context.Background()
	if _, err := c.Login(ctx, "user@example.com", "password"); err != nil {
		log.Fatal(err)
	}

	created, err := c.Cases().Create(ctx, client.CreateCaseRequest{Name: "Q3 ledger review"})
	if err != nil {
		log.Fatal(err)
	}

	csv := strings.NewReader("amount,vendor\n120.00,Acme\n")
	uploaded, err := c.Cases().Upload(ctx, created.ID, "ledger.csv", csv)
	if err != nil {
		log.Fatal(err)
	}

	fmt.Printf("Case %s status: %s\n", uploaded.ID, uploaded.Status)
}
