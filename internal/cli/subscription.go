package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
)

func newSubscriptionCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "subscription",
		Short: "Inspect and change the subscription",
	}

	cmd.AddCommand(newSubscriptionShowCmd())
	cmd.AddCommand(newSubscriptionTierCmd())

	return cmd
}

func newSubscriptionShowCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Show the current subscription",
		RunE: func(cmd *cobra.Command, args []string) error {
			sub, err := apiClient.Subscription().Get(context.Background())
			if err != nil {
				return fmt.Errorf("failed to get subscription: %w", err)
			}

			format := getOutputFormat()
			if format != "table" {
				return printOutput(sub)
			}

			active := "no"
			if sub.IsActive {
				active = "yes"
			}
			fmt.Printf("Tier:    %s\n", sub.Tier)
			fmt.Printf("Active:  %s\n", active)
			fmt.Printf("Uploads: %d this month\n", sub.CSVUploadsThisMonth)
			fmt.Printf("Since:   %s\n", sub.StartDate.Format("2006-01-02"))
			if sub.EndDate != nil {
				fmt.Printf("Ends:    %s\n", sub.EndDate.Format("2006-01-02"))
			}
			return nil
		},
	}
}

func newSubscriptionTierCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "tier <free|standard|pro>",
		Short: "Change the subscription tier",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			sub, err := apiClient.Subscription().ChangeTier(context.Background(), args[0])
			if err != nil {
				return fmt.Errorf("failed to change tier: %w", err)
			}

			fmt.Printf("Subscription moved to the %s tier\n", sub.Tier)
			return nil
		},
	}
}
