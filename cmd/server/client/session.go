package client

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/KirkDiggler/rpg-character-forge/internal/entities/dnd5e"
	forgev1alpha1 "github.com/KirkDiggler/rpg-character-forge/internal/handlers/forge/v1alpha1"
)

var startMethod string

var startSessionCmd = &cobra.Command{
	Use:   "start",
	Short: "Start a new wizard session",
	Args:  cobra.NoArgs,
	RunE: func(_ *cobra.Command, _ []string) error {
		client, cleanup, err := createForgeClient()
		if err != nil {
			return err
		}
		defer cleanup()

		ctx, cancel := context.WithTimeout(context.Background(), timeout)
		defer cancel()

		resp, err := client.StartSession(ctx, &forgev1alpha1.StartSessionRequest{Method: startMethod})
		if err != nil {
			return fmt.Errorf("failed to start session: %w", err)
		}

		printSession(resp.Session)
		printAllocation(resp.Allocation)
		return nil
	},
}

var getSessionCmd = &cobra.Command{
	Use:   "get [session-id]",
	Short: "Show a wizard session",
	Args:  cobra.ExactArgs(1),
	RunE: func(_ *cobra.Command, args []string) error {
		client, cleanup, err := createForgeClient()
		if err != nil {
			return err
		}
		defer cleanup()

		ctx, cancel := context.WithTimeout(context.Background(), timeout)
		defer cancel()

		resp, err := client.GetSession(ctx, &forgev1alpha1.GetSessionRequest{SessionID: args[0]})
		if err != nil {
			return fmt.Errorf("failed to get session: %w", err)
		}

		printSession(resp.Session)
		printAllocation(resp.Allocation)
		return nil
	},
}

var setFieldCmd = &cobra.Command{
	Use:   "set [session-id] [field] [value]",
	Short: "Set one character field",
	Long: `Set one character field. Examples:

  set sess_123 name "Thorin Oakenshield"
  set sess_123 race Dwarf
  set sess_123 class Fighter
  set sess_123 level 3`,
	Args: cobra.ExactArgs(3),
	RunE: func(_ *cobra.Command, args []string) error {
		update, err := fieldUpdate(args[1], args[2])
		if err != nil {
			return err
		}

		client, cleanup, err := createForgeClient()
		if err != nil {
			return err
		}
		defer cleanup()

		ctx, cancel := context.WithTimeout(context.Background(), timeout)
		defer cancel()

		resp, err := client.UpdateCharacter(ctx, &forgev1alpha1.UpdateCharacterRequest{
			SessionID: args[0],
			Update:    update,
		})
		if err != nil {
			return fmt.Errorf("failed to update character: %w", err)
		}

		printSession(resp.Session)
		return nil
	},
}

func fieldUpdate(field, value string) (*dnd5e.CharacterUpdate, error) {
	update := &dnd5e.CharacterUpdate{}
	switch strings.ToLower(field) {
	case "name":
		update.Name = dnd5e.Ptr(value)
	case "race":
		update.Race = dnd5e.Ptr(dnd5e.Race(value))
	case "class":
		update.Class = dnd5e.Ptr(dnd5e.Class(value))
	case "background":
		update.Background = dnd5e.Ptr(dnd5e.Background(value))
	case "alignment":
		update.Alignment = dnd5e.Ptr(dnd5e.Alignment(value))
	case "level":
		level, err := strconv.Atoi(value)
		if err != nil {
			return nil, fmt.Errorf("level must be a number: %w", err)
		}
		update.Level = dnd5e.Ptr(level)
	case "backstory":
		update.Backstory = dnd5e.Ptr(value)
	case "appearance":
		update.Appearance = dnd5e.Ptr(value)
	default:
		return nil, fmt.Errorf("unsupported field %q", field)
	}
	return update, nil
}

var navigateCmd = &cobra.Command{
	Use:   "navigate [session-id] [next|previous|review|complete]",
	Short: "Move through the wizard",
	Args:  cobra.ExactArgs(2),
	RunE: func(_ *cobra.Command, args []string) error {
		client, cleanup, err := createForgeClient()
		if err != nil {
			return err
		}
		defer cleanup()

		ctx, cancel := context.WithTimeout(context.Background(), timeout)
		defer cancel()

		resp, err := client.Navigate(ctx, &forgev1alpha1.NavigateRequest{SessionID: args[0], Action: args[1]})
		if err != nil {
			return fmt.Errorf("failed to navigate: %w", err)
		}

		printSession(resp.Session)
		if resp.CanceledGenerations > 0 {
			fmt.Printf("  canceled %d pending generation(s)\n", resp.CanceledGenerations)
		}
		return nil
	},
}

var startOverCmd = &cobra.Command{
	Use:   "start-over [session-id]",
	Short: "Reset the character and return to the first step",
	Args:  cobra.ExactArgs(1),
	RunE: func(_ *cobra.Command, args []string) error {
		client, cleanup, err := createForgeClient()
		if err != nil {
			return err
		}
		defer cleanup()

		ctx, cancel := context.WithTimeout(context.Background(), timeout)
		defer cancel()

		resp, err := client.StartOver(ctx, &forgev1alpha1.StartOverRequest{SessionID: args[0]})
		if err != nil {
			return fmt.Errorf("failed to start over: %w", err)
		}

		printSession(resp.Session)
		printAllocation(resp.Allocation)
		return nil
	},
}

func init() {
	startSessionCmd.Flags().StringVar(&startMethod, "method", "", "allocation method: point_buy, standard_array or roll")
}
