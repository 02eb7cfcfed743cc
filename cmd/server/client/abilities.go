package client

import (
	"context"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	forgev1alpha1 "github.com/KirkDiggler/rpg-character-forge/internal/handlers/forge/v1alpha1"
)

var resetScores bool

var setMethodCmd = &cobra.Command{
	Use:   "set-method [session-id] [point_buy|standard_array|roll]",
	Short: "Switch the ability score method",
	Args:  cobra.ExactArgs(2),
	RunE: func(_ *cobra.Command, args []string) error {
		client, cleanup, err := createForgeClient()
		if err != nil {
			return err
		}
		defer cleanup()

		ctx, cancel := context.WithTimeout(context.Background(), timeout)
		defer cancel()

		resp, err := client.SetAllocationMethod(ctx, &forgev1alpha1.SetAllocationMethodRequest{
			SessionID:   args[0],
			Method:      args[1],
			ResetScores: resetScores,
		})
		if err != nil {
			return fmt.Errorf("failed to set method: %w", err)
		}

		printSession(resp.Session)
		printAllocation(resp.Allocation)
		return nil
	},
}

var setScoreCmd = &cobra.Command{
	Use:   "set-score [session-id] [ability] [value]",
	Short: "Set or assign one ability score",
	Args:  cobra.ExactArgs(3),
	RunE: func(_ *cobra.Command, args []string) error {
		value, err := strconv.Atoi(args[2])
		if err != nil {
			return fmt.Errorf("value must be a number: %w", err)
		}

		client, cleanup, err := createForgeClient()
		if err != nil {
			return err
		}
		defer cleanup()

		ctx, cancel := context.WithTimeout(context.Background(), timeout)
		defer cancel()

		resp, err := client.SetAbilityScore(ctx, &forgev1alpha1.SetAbilityScoreRequest{
			SessionID: args[0],
			Ability:   args[1],
			Value:     value,
		})
		if err != nil {
			return fmt.Errorf("failed to set score: %w", err)
		}

		if !resp.Applied {
			fmt.Println("Score not applied.")
		}
		printSession(resp.Session)
		printAllocation(resp.Allocation)
		return nil
	},
}

var rollScoresCmd = &cobra.Command{
	Use:   "roll-scores [session-id] [ability]",
	Short: "Roll ability scores, or auto-assign the standard array",
	Args:  cobra.RangeArgs(1, 2),
	RunE: func(_ *cobra.Command, args []string) error {
		req := &forgev1alpha1.RollAbilityScoresRequest{SessionID: args[0]}
		if len(args) == 2 {
			req.Ability = args[1]
		}

		client, cleanup, err := createForgeClient()
		if err != nil {
			return err
		}
		defer cleanup()

		ctx, cancel := context.WithTimeout(context.Background(), timeout)
		defer cancel()

		resp, err := client.RollAbilityScores(ctx, req)
		if err != nil {
			return fmt.Errorf("failed to roll scores: %w", err)
		}

		printSession(resp.Session)
		printAllocation(resp.Allocation)
		return nil
	},
}

func init() {
	setMethodCmd.Flags().BoolVar(&resetScores, "reset", false, "replace scores with the method's starting values")
}
