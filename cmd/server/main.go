// Package main is the entry point for the character forge gRPC server
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/KirkDiggler/rpg-character-forge/cmd/server/client"
)

var rootCmd = &cobra.Command{
	Use:   "character-forge",
	Short: "Character Forge gRPC Server",
	Long:  `Character Forge walks a player through building a D&D 5e character, with optional AI drafting, dice and PDF export.`,
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.AddCommand(serverCmd)
	rootCmd.AddCommand(client.ClientCmd)
}
