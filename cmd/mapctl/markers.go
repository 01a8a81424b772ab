package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/maxvelasco/portuguese-map/internal/markers"
)

// addMarkersCmd adds 'markers' with list, clear and seed subcommands.
func addMarkersCmd(rootCmd *cobra.Command, a *app) {
	markersCmd := &cobra.Command{
		Use:   "markers",
		Short: "Manage the saved marker list",
	}

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "List saved markers",
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := a.store(cmd.Context())
			if err != nil {
				return err
			}

			saved := s.List(cmd.Context())
			if len(saved) == 0 {
				cmd.Println("No saved markers.")
				return nil
			}
			for _, m := range saved {
				cmd.Println(fmt.Sprintf("%s\t%s\t%s", m.Coordinates.Key(), m.Title, m.Description))
			}
			return nil
		},
	}

	clearCmd := &cobra.Command{
		Use:   "clear",
		Short: "Remove every saved marker",
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := a.store(cmd.Context())
			if err != nil {
				return err
			}
			if err := s.Clear(cmd.Context()); err != nil {
				return err
			}
			cmd.Println("Saved markers cleared.")
			return nil
		},
	}

	seedCmd := &cobra.Command{
		Use:   "seed [file]",
		Short: "Append markers from a JSON file (defaults to SEED_PATH)",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := a.cfg.SeedPath
			if len(args) == 1 {
				path = args[0]
			}

			s, err := a.store(cmd.Context())
			if err != nil {
				return err
			}
			n, err := markers.SeedFromJSON(cmd.Context(), s, path)
			if err != nil {
				return err
			}
			cmd.Println(fmt.Sprintf("Seeded %d markers from %s", n, path))
			return nil
		},
	}

	markersCmd.AddCommand(listCmd, clearCmd, seedCmd)
	rootCmd.AddCommand(markersCmd)
}
