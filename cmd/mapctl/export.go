package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/maxvelasco/portuguese-map/internal/adapters/objectstore"
	"github.com/maxvelasco/portuguese-map/internal/catalog"
	"github.com/maxvelasco/portuguese-map/internal/geojson"
)

// addExportCmd adds 'export', which writes the map as GeoJSON to a file
// or, with --s3, to the configured bucket.
func addExportCmd(rootCmd *cobra.Command, a *app) {
	var (
		outputFile string
		toS3       bool
		objectKey  string
	)

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Export collections and saved markers as GeoJSON",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			s, err := a.store(ctx)
			if err != nil {
				return err
			}
			cols := catalog.Collections()
			saved := s.List(ctx)

			if toS3 {
				dst, err := objectstore.NewS3Store(a.cfg.S3)
				if err != nil {
					return err
				}
				if err := dst.EnsureBucket(ctx); err != nil {
					return err
				}
				n, err := geojson.Publish(ctx, dst, objectKey, cols, saved)
				if err != nil {
					return err
				}
				cmd.Println(fmt.Sprintf("Uploaded %d bytes to %s/%s", n, dst.Bucket(), objectKey))
				return nil
			}

			b, err := geojson.Marshal(cols, saved)
			if err != nil {
				return err
			}
			if err := os.WriteFile(outputFile, b, 0o644); err != nil {
				return fmt.Errorf("write %s: %w", outputFile, err)
			}
			cmd.Println(fmt.Sprintf("GeoJSON saved to %s", outputFile))
			return nil
		},
	}

	cmd.Flags().StringVarP(&outputFile, "output", "o", "map.geojson", "Output GeoJSON file path")
	cmd.Flags().BoolVar(&toS3, "s3", false, "Upload to the S3 bucket instead of writing a file")
	cmd.Flags().StringVar(&objectKey, "key", "exports/map.geojson", "Object key used with --s3")

	rootCmd.AddCommand(cmd)
}
