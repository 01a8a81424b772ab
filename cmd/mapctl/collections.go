package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/maxvelasco/portuguese-map/internal/catalog"
	"github.com/maxvelasco/portuguese-map/internal/navigator"
)

// addCollectionsCmd adds 'collections', which prints every popup group the
// curated content produces.
func addCollectionsCmd(rootCmd *cobra.Command, a *app) {
	cmd := &cobra.Command{
		Use:   "collections",
		Short: "List curated collections grouped by shared location",
		RunE: func(cmd *cobra.Command, args []string) error {
			for _, col := range catalog.Collections() {
				store := navigator.NewPopupGroupStore()
				skipped := 0
				for _, m := range col.Markers {
					if _, err := store.Register(m.Entry); err != nil {
						skipped++
					}
				}

				cmd.Println(fmt.Sprintf("Collection: %s (%d markers, %d groups, %d routes)",
					col.Name, len(col.Markers), store.Len(), len(col.Routes)))
				for _, key := range store.Keys() {
					g, _ := store.Group(key)
					cmd.Println(fmt.Sprintf("--- %s (%d)", key, g.Len()))
					for i, e := range g.Entries() {
						cmd.Println(fmt.Sprintf("  %d. %s", i+1, e.Title))
					}
				}
				if skipped > 0 {
					cmd.Println(fmt.Sprintf("Skipped %d entries without coordinates", skipped))
				}
			}
			return nil
		},
	}

	rootCmd.AddCommand(cmd)
}
