package client

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	forgev1alpha1 "github.com/KirkDiggler/rpg-character-forge/internal/handlers/forge/v1alpha1"
)

var seeds forgev1alpha1.GenerateCharacterRequest

var generateCmd = &cobra.Command{
	Use:   "generate [session-id]",
	Short: "Generate a complete character with AI",
	Long: `Generate a complete character. Every seed is optional. Example:

  generate sess_123 --race Dwarf --class Cleric --level 3`,
	Args: cobra.ExactArgs(1),
	RunE: func(_ *cobra.Command, args []string) error {
		client, cleanup, err := createForgeClient()
		if err != nil {
			return err
		}
		defer cleanup()

		ctx, cancel := context.WithTimeout(context.Background(), timeout)
		defer cancel()

		req := seeds
		req.SessionID = args[0]
		resp, err := client.GenerateCharacter(ctx, &req)
		if err != nil {
			return fmt.Errorf("failed to generate character: %w", err)
		}

		printSession(resp.Session)
		for _, w := range resp.Warnings {
			fmt.Printf("  warning: %s\n", w)
		}
		return nil
	},
}

var backstoryCmd = &cobra.Command{
	Use:   "backstory [session-id]",
	Short: "Generate a backstory for the current character",
	Args:  cobra.ExactArgs(1),
	RunE: func(_ *cobra.Command, args []string) error {
		client, cleanup, err := createForgeClient()
		if err != nil {
			return err
		}
		defer cleanup()

		ctx, cancel := context.WithTimeout(context.Background(), timeout)
		defer cancel()

		resp, err := client.GenerateBackstory(ctx, &forgev1alpha1.GenerateBackstoryRequest{SessionID: args[0]})
		if err != nil {
			return fmt.Errorf("failed to generate backstory: %w", err)
		}

		fmt.Println(resp.Backstory)
		return nil
	},
}

var referenceSession string

var referenceCmd = &cobra.Command{
	Use:   "reference",
	Short: "Print the race, class and background catalog",
	Args:  cobra.NoArgs,
	RunE: func(_ *cobra.Command, _ []string) error {
		client, cleanup, err := createForgeClient()
		if err != nil {
			return err
		}
		defer cleanup()

		ctx, cancel := context.WithTimeout(context.Background(), timeout)
		defer cancel()

		resp, err := client.GetReference(ctx, &forgev1alpha1.GetReferenceRequest{SessionID: referenceSession})
		if err != nil {
			return fmt.Errorf("failed to get reference: %w", err)
		}

		return printJSON(resp)
	},
}

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show whether AI generation is available",
	Args:  cobra.NoArgs,
	RunE: func(_ *cobra.Command, _ []string) error {
		client, cleanup, err := createForgeClient()
		if err != nil {
			return err
		}
		defer cleanup()

		ctx, cancel := context.WithTimeout(context.Background(), timeout)
		defer cancel()

		resp, err := client.Status(ctx, &forgev1alpha1.StatusRequest{})
		if err != nil {
			return fmt.Errorf("failed to get status: %w", err)
		}

		if resp.AIEnabled {
			fmt.Printf("AI generation enabled (model: %s)\n", resp.Model)
		} else {
			fmt.Println("AI generation disabled: manual mode")
		}
		return nil
	},
}

func init() {
	generateCmd.Flags().StringVar(&seeds.Name, "name", "", "character name")
	generateCmd.Flags().StringVar(&seeds.Race, "race", "", "race")
	generateCmd.Flags().StringVar(&seeds.Class, "class", "", "class")
	generateCmd.Flags().IntVar(&seeds.Level, "level", 0, "level")
	generateCmd.Flags().StringVar(&seeds.Background, "background", "", "background")
	generateCmd.Flags().StringVar(&seeds.Alignment, "alignment", "", "alignment")

	referenceCmd.Flags().StringVar(&referenceSession, "session", "", "session whose class drives the recommended abilities")
}
