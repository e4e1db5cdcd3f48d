package cli

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/fraudlens/fraudlens/pkg/client"
)

func newCaseCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "case",
		Aliases: []string{"cases"},
		Short:   "Manage fraud cases",
	}

	cmd.AddCommand(newCaseListCmd())
	cmd.AddCommand(newCaseCreateCmd())
	cmd.AddCommand(newCaseGetCmd())
	cmd.AddCommand(newCaseUploadCmd())
	cmd.AddCommand(newCaseStatusCmd())
	cmd.AddCommand(newCaseDeleteCmd())

	return cmd
}

func newCaseListCmd() *cobra.Command {
	var page, pageSize int

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List cases",
		RunE: func(cmd *cobra.Command, args []string) error {
			list, err := apiClient.Cases().List(context.Background(), page, pageSize)
			if err != nil {
				return fmt.Errorf("failed to list cases: %w", err)
			}

			format := getOutputFormat()
			if format != "table" {
				return printOutput(list)
			}

			table := NewTable("ID", "NAME", "STATUS", "FILE", "CREATED")
			for _, c := range list.Cases {
				file := "-"
				if c.FileURL != nil {
					file = "yes"
				}
				table.AddRow(
					c.ID,
					truncate(c.Name, 40),
					formatStatus(c.Status),
					file,
					c.CreatedAt.Format("2006-01-02 15:04"),
				)
			}
			table.Render()
			fmt.Printf("\n%d cases total\n", list.Total)
			return nil
		},
	}

	cmd.Flags().IntVar(&page, "page", 1, "page number")
	cmd.Flags().IntVar(&pageSize, "page-size", 50, "cases per page")

	return cmd
}

func newCaseCreateCmd() *cobra.Command {
	var name, description string

	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create a new case",
		RunE: func(cmd *cobra.Command, args []string) error {
			if name == "" {
				name = promptInput("Case name: ")
			}

			req := client.CreateCaseRequest{Name: name}
			if description != "" {
				req.Description = &description
			}

			c, err := apiClient.Cases().Create(context.Background(), req)
			if err != nil {
				return fmt.Errorf("failed to create case: %w", err)
			}

			fmt.Printf("Case %s created (status: %s)\n", c.ID, c.Status)
			return nil
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "case name")
	cmd.Flags().StringVar(&description, "description", "", "case description")

	return cmd
}

func newCaseGetCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "get <id>",
		Short: "Show one case",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := apiClient.Cases().Get(context.Background(), args[0])
			if err != nil {
				return fmt.Errorf("failed to get case: %w", err)
			}

			format := getOutputFormat()
			if format != "table" {
				return printOutput(c)
			}

			fmt.Printf("ID:          %s\n", c.ID)
			fmt.Printf("Name:        %s\n", c.Name)
			fmt.Printf("Status:      %s\n", formatStatus(c.Status))
			fmt.Printf("Description: %s\n", formatOptional(c.Description))
			fmt.Printf("File:        %s\n", formatOptional(c.FileURL))
			fmt.Printf("Created:     %s\n", c.CreatedAt.Format("2006-01-02 15:04:05"))
			if len(c.Results) > 0 {
				fmt.Printf("Results:     %s\n", string(c.Results))
			}
			return nil
		},
	}
}

func newCaseUploadCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "upload <id> <file>",
		Short: "Upload a CSV file to a case",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			f, err := os.Open(args[1])
			if err != nil {
				return fmt.Errorf("failed to open file: %w", err)
			}
			defer f.Close()

			c, err := apiClient.Cases().Upload(context.Background(), args[0], filepath.Base(args[1]), f)
			if err != nil {
				return fmt.Errorf("upload failed: %w", err)
			}

			fmt.Printf("Uploaded %s to case %s\n", filepath.Base(args[1]), c.ID)
			return nil
		},
	}
}

func newCaseStatusCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "status <id> <status>",
		Short: "Report a case status transition",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := apiClient.Cases().UpdateStatus(context.Background(), args[0], client.UpdateCaseStatusRequest{
				Status: args[1],
			})
			if err != nil {
				return fmt.Errorf("failed to update status: %w", err)
			}

			fmt.Printf("Case %s is now %s\n", c.ID, c.Status)
			return nil
		},
	}
}

func newCaseDeleteCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete a case",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := apiClient.Cases().Delete(context.Background(), args[0]); err != nil {
				return fmt.Errorf("failed to delete case: %w", err)
			}

			fmt.Printf("Case %s deleted\n", args[0])
			return nil
		},
	}
}
