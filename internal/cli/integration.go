package cli

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/fraudlens/fraudlens/pkg/client"
)

func newIntegrationCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "integration",
		Aliases: []string{"integrations"},
		Short:   "Manage data-source integrations",
	}

	cmd.AddCommand(newIntegrationListCmd())
	cmd.AddCommand(newIntegrationCreateCmd())
	cmd.AddCommand(newIntegrationGetCmd())
	cmd.AddCommand(newIntegrationDeactivateCmd())
	cmd.AddCommand(newIntegrationDeleteCmd())

	return cmd
}

func newIntegrationListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List integrations",
		RunE: func(cmd *cobra.Command, args []string) error {
			list, err := apiClient.Integrations().List(context.Background())
			if err != nil {
				return fmt.Errorf("failed to list integrations: %w", err)
			}

			format := getOutputFormat()
			if format != "table" {
				return printOutput(list)
			}

			table := NewTable("ID", "NAME", "TYPE", "ACTIVE", "CREATED")
			for _, i := range list {
				active := "no"
				if i.IsActive {
					active = "yes"
				}
				table.AddRow(
					i.ID,
					truncate(i.Name, 40),
					i.Type,
					active,
					i.CreatedAt.Format("2006-01-02 15:04"),
				)
			}
			table.Render()
			return nil
		},
	}
}

func newIntegrationCreateCmd() *cobra.Command {
	var name, typ, config string

	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create a new integration",
		RunE: func(cmd *cobra.Command, args []string) error {
			if name == "" {
				name = promptInput("Integration name: ")
			}
			if typ == "" {
				typ = promptInput("Type (api/sql): ")
			}

			req := client.CreateIntegrationRequest{Name: name, Type: typ}
			if config != "" {
				if !json.Valid([]byte(config)) {
					return fmt.Errorf("config must be valid JSON")
				}
				req.Config = json.RawMessage(config)
			}

			i, err := apiClient.Integrations().Create(context.Background(), req)
			if err != nil {
				return fmt.Errorf("failed to create integration: %w", err)
			}

			fmt.Printf("Integration %s created\n", i.ID)
			return nil
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "integration name")
	cmd.Flags().StringVar(&typ, "type", "", "integration type: api or sql")
	cmd.Flags().StringVar(&config, "config", "", "integration config as JSON")

	return cmd
}

func newIntegrationGetCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "get <id>",
		Short: "Show one integration",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			i, err := apiClient.Integrations().Get(context.Background(), args[0])
			if err != nil {
				return fmt.Errorf("failed to get integration: %w", err)
			}

			format := getOutputFormat()
			if format != "table" {
				return printOutput(i)
			}

			active := "no"
			if i.IsActive {
				active = "yes"
			}
			fmt.Printf("ID:      %s\n", i.ID)
			fmt.Printf("Name:    %s\n", i.Name)
			fmt.Printf("Type:    %s\n", i.Type)
			fmt.Printf("Active:  %s\n", active)
			fmt.Printf("Created: %s\n", i.CreatedAt.Format("2006-01-02 15:04:05"))
			if len(i.Config) > 0 {
				fmt.Printf("Config:  %s\n", string(i.Config))
			}
			return nil
		},
	}
}

func newIntegrationDeactivateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "deactivate <id>",
		Short: "Flag an integration inactive",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := apiClient.Integrations().Deactivate(context.Background(), args[0]); err != nil {
				return fmt.Errorf("failed to deactivate integration: %w", err)
			}

			fmt.Printf("Integration %s deactivated\n", args[0])
			return nil
		},
	}
}

func newIntegrationDeleteCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete an integration permanently",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := apiClient.Integrations().Delete(context.Background(), args[0]); err != nil {
				return fmt.Errorf("failed to delete integration: %w", err)
			}

			fmt.Printf("Integration %s deleted\n", args[0])
			return nil
		},
	}
}
