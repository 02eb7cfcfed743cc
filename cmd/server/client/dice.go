package client

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	forgev1alpha1 "github.com/KirkDiggler/rpg-character-forge/internal/handlers/forge/v1alpha1"
)

var rollDiceCmd = &cobra.Command{
	Use:   "roll-dice [session-id] [notation]",
	Short: "Roll dice using dice notation",
	Long: `Roll dice and see the animation frames and history. Examples:

  roll-dice sess_123 d20
  roll-dice sess_123 2d6+3`,
	Args: cobra.ExactArgs(2),
	RunE: func(_ *cobra.Command, args []string) error {
		client, cleanup, err := createForgeClient()
		if err != nil {
			return err
		}
		defer cleanup()

		ctx, cancel := context.WithTimeout(context.Background(), timeout)
		defer cancel()

		resp, err := client.RollDice(ctx, &forgev1alpha1.RollDiceRequest{SessionID: args[0], Notation: args[1]})
		if err != nil {
			return fmt.Errorf("failed to roll dice: %w", err)
		}

		fmt.Printf("Frames: %v\n", resp.Frames)
		fmt.Printf("Rolled %s: %v = %d", resp.Roll.Notation, resp.Roll.Dice, resp.Roll.Total)
		if resp.Roll.Critical {
			fmt.Print(" CRITICAL!")
		}
		fmt.Println()

		fmt.Println("History:")
		for _, r := range resp.History {
			fmt.Printf("  %s = %d\n", r.Notation, r.Total)
		}
		return nil
	},
}

var clearHistory bool

var diceHistoryCmd = &cobra.Command{
	Use:   "dice-history [session-id]",
	Short: "Show or clear a session's recent rolls",
	Args:  cobra.ExactArgs(1),
	RunE: func(_ *cobra.Command, args []string) error {
		client, cleanup, err := createForgeClient()
		if err != nil {
			return err
		}
		defer cleanup()

		ctx, cancel := context.WithTimeout(context.Background(), timeout)
		defer cancel()

		req := &forgev1alpha1.DiceHistoryRequest{SessionID: args[0]}
		if clearHistory {
			resp, err := client.ClearDiceHistory(ctx, req)
			if err != nil {
				return fmt.Errorf("failed to clear history: %w", err)
			}
			fmt.Printf("Deleted %d roll(s)\n", resp.RollsDeleted)
			return nil
		}

		resp, err := client.GetDiceHistory(ctx, req)
		if err != nil {
			return fmt.Errorf("failed to get history: %w", err)
		}
		return printJSON(resp.Rolls)
	},
}

var exportOut string

var exportCmd = &cobra.Command{
	Use:   "export [session-id]",
	Short: "Export the character sheet as a PDF",
	Args:  cobra.ExactArgs(1),
	RunE: func(_ *cobra.Command, args []string) error {
		client, cleanup, err := createForgeClient()
		if err != nil {
			return err
		}
		defer cleanup()

		ctx, cancel := context.WithTimeout(context.Background(), timeout)
		defer cancel()

		resp, err := client.ExportCharacterSheet(ctx, &forgev1alpha1.ExportCharacterSheetRequest{SessionID: args[0]})
		if err != nil {
			return fmt.Errorf("failed to export: %w", err)
		}

		path := exportOut
		if path == "" {
			path = resp.Filename
		}
		if err := os.WriteFile(path, resp.Content, 0o600); err != nil {
			return fmt.Errorf("failed to write %s: %w", path, err)
		}
		fmt.Printf("Wrote %s (%d bytes)\n", path, len(resp.Content))
		return nil
	},
}

func init() {
	diceHistoryCmd.Flags().BoolVar(&clearHistory, "clear", false, "delete the history instead of printing it")
	exportCmd.Flags().StringVar(&exportOut, "out", "", "output path (defaults to the generated filename)")
}
