package cmd

import (
	"user-service/core/database"
	"user-service/core/storage"
	"user-service/feature/users"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// exportCmd represents the export command
var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Upload a JSON snapshot of all users to object storage",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, logg, err := loadRuntime()
		if err != nil {
			return err
		}
		defer logg.Sync()

		db, err := connectDatabase(cfg.Database)
		if err != nil {
			return err
		}
		defer database.Close(db)

		store, err := storage.NewClient(cfg.Storage)
		if err != nil {
			return err
		}

		exp := users.NewExporter(users.NewRepository(db), store, cfg.Storage.Bucket, cfg.Storage.Region, logg)
		key, snap, err := exp.Export(cmd.Context())
		if err != nil {
			return err
		}
		logg.Info("Export finished", zap.String("key", key), zap.Int("count", snap.Count))
		return nil
	},
}

func init() {
	RootCmd.AddCommand(exportCmd)
}
