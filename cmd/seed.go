package cmd

import (
	"user-service/core/database"
	"user-service/feature/users"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// seedCmd represents the seed command
var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Insert the sample users",
	Long:  `Inserts the sample users regardless of environment. Users that already exist are skipped.`,
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

		result, err := users.NewSeeder(users.NewRepository(db), logg).InsertSampleUsers(cmd.Context())
		if err != nil {
			return err
		}
		logg.Info("Seeding finished",
			zap.Int("inserted", result.Inserted),
			zap.Int("duplicates", result.Duplicates),
		)
		return nil
	},
}

func init() {
	RootCmd.AddCommand(seedCmd)
}
