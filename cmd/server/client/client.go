// Package client provides test commands for the Character Forge gRPC service
package client

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/spf13/cobra"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"

	forgev1alpha1 "github.com/KirkDiggler/rpg-character-forge/internal/handlers/forge/v1alpha1"
)

var (
	// Connection flags
	serverAddr string
	timeout    time.Duration
)

// ClientCmd is the root command for all client test commands
var ClientCmd = &cobra.Command{
	Use:   "client",
	Short: "Test client commands for Character Forge",
	Long:  `Client commands allow you to exercise Character Forge by making real gRPC requests.`,
}

func init() {
	ClientCmd.PersistentFlags().StringVar(&serverAddr, "server", "localhost:50051", "gRPC server address")
	ClientCmd.PersistentFlags().DurationVar(&timeout, "timeout", 90*time.Second, "Request timeout")

	// Session commands
	ClientCmd.AddCommand(startSessionCmd)
	ClientCmd.AddCommand(getSessionCmd)
	ClientCmd.AddCommand(setFieldCmd)
	ClientCmd.AddCommand(navigateCmd)
	ClientCmd.AddCommand(startOverCmd)

	// Ability score commands
	ClientCmd.AddCommand(setMethodCmd)
	ClientCmd.AddCommand(setScoreCmd)
	ClientCmd.AddCommand(rollScoresCmd)

	// Generation commands
	ClientCmd.AddCommand(generateCmd)
	ClientCmd.AddCommand(backstoryCmd)
	ClientCmd.AddCommand(referenceCmd)
	ClientCmd.AddCommand(statusCmd)

	// Dice and export
	ClientCmd.AddCommand(rollDiceCmd)
	ClientCmd.AddCommand(diceHistoryCmd)
	ClientCmd.AddCommand(exportCmd)
}

// createForgeClient creates a forge service client
func createForgeClient() (*forgev1alpha1.CharacterForgeServiceClient, func(), error) {
	conn, err := grpc.NewClient(serverAddr,
		grpc.WithTransportCredentials(insecure.NewCredentials()),
	)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to connect to server: %w", err)
	}

	cleanup := func() {
		_ = conn.Close() // nolint:errcheck // safe to ignore in cleanup
	}

	return forgev1alpha1.NewCharacterForgeServiceClient(conn), cleanup, nil
}

func printJSON(v any) error {
	out, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}
	fmt.Println(string(out))
	return nil
}

// printSession prints the step, the derived stats and any recorded error.
func printSession(s *forgev1alpha1.Session) {
	if s == nil {
		return
	}
	fmt.Printf("Session: %s (step: %s, generated: %v)\n", s.ID, s.Step, s.Generated)
	if c := s.Character; c != nil {
		fmt.Printf("  %s, level %d %s %s\n", orDash(c.Name), c.Level, orDash(string(c.Race)), orDash(string(c.Class)))
		fmt.Printf("  STR %d DEX %d CON %d INT %d WIS %d CHA %d\n",
			c.AbilityScores.Strength, c.AbilityScores.Dexterity, c.AbilityScores.Constitution,
			c.AbilityScores.Intelligence, c.AbilityScores.Wisdom, c.AbilityScores.Charisma)
		fmt.Printf("  AC %d, HP %d/%d, initiative %+d, speed %d\n",
			c.ArmorClass, c.HitPoints.Current, c.HitPoints.Value(), c.Initiative, c.Speed)
	}
	if s.LastError != "" {
		fmt.Printf("  last error: %s\n", s.LastError)
	}
}

func printAllocation(a *forgev1alpha1.Allocation) {
	if a == nil {
		return
	}
	fmt.Printf("  allocation: %s, %d spent, %d remaining\n", a.Method, a.PointsSpent, a.RemainingPoints)
	for _, v := range a.Violations {
		fmt.Printf("  ! %s\n", v.Message)
	}
}

func orDash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}
