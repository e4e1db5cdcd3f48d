package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

func newStatusCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "Show account summary",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()

			format := getOutputFormat()
			if format != "table" {
				summary := map[string]interface{}{}

				if account, err := apiClient.Me(ctx); err == nil {
					summary["email"] = account.Email
					if account.Subscription != nil {
						summary["tier"] = account.Subscription.Tier
						summary["uploads_this_month"] = account.Subscription.CSVUploadsThisMonth
					}
				}
				if list, err := apiClient.Cases().List(ctx, 1, 1); err == nil {
					summary["cases"] = list.Total
				}
				if integrations, err := apiClient.Integrations().List(ctx); err == nil {
					summary["integrations"] = len(integrations)
				}
				return printOutput(summary)
			}

			fmt.Println("FraudLens Dashboard")
			fmt.Println(strings.Repeat("=", 40))

			account, err := apiClient.Me(ctx)
			if err != nil {
				fmt.Printf("  Account:       (error: %v)\n", err)
			} else {
				fmt.Printf("  Account:       %s\n", account.Email)
				if account.Subscription != nil {
					fmt.Printf("  Plan:          %s\n", account.Subscription.Tier)
					fmt.Printf("  Uploads:       %d this month\n", account.Subscription.CSVUploadsThisMonth)
				}
			}

			list, err := apiClient.Cases().List(ctx, 1, 1)
			if err != nil {
				fmt.Printf("  Cases:         (error: %v)\n", err)
			} else {
				fmt.Printf("  Cases:         %d total\n", list.Total)
			}

			integrations, err := apiClient.Integrations().List(ctx)
			if err != nil {
				fmt.Printf("  Integrations:  (error: %v)\n", err)
			} else {
				active := 0
				for _, i := range integrations {
					if i.IsActive {
						active++
					}
				}
				fmt.Printf("  Integrations:  %d active (%d total)\n", active, len(integrations))
			}

			return nil
		},
	}
}
