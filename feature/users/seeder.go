package users

import (
	"context"

	"user-service/core/database"
	"user-service/feature/users/models"

	"go.uber.org/multierr"
	"go.uber.org/zap"
)

var sampleUsers = []models.User{
	{Name: "alice", Email: "alice@example.com"},
	{Name: "bob", Email: "bob@example.com"},
	{Name: "carol", Email: "carol@example.com"},
	{Name: "dave", Email: "dave@example.com"},
}

// SampleUsers returns a copy of the users inserted by the seeder.
func SampleUsers() []models.User {
	out := make([]models.User, len(sampleUsers))
	copy(out, sampleUsers)
	return out
}

// SeedResult summarizes a seeding run.
type SeedResult struct {
	Inserted   int `json:"inserted"`
	Duplicates int `json:"duplicates"`
}

// Seeder inserts the sample users for non-production environments.
type Seeder struct {
	repo   Repository
	logger *zap.Logger
}

// NewSeeder creates a seeder writing through repo.
func NewSeeder(repo Repository, logger *zap.Logger) *Seeder {
	return &Seeder{repo: repo, logger: logger}
}

// InsertSampleUsers inserts every sample user independently, so users that do not
// collide are stored even when others already exist. Duplicate key failures are
// ignored; every other failure is logged and returned.
func (s *Seeder) InsertSampleUsers(ctx context.Context) (SeedResult, error) {
	var (
		result SeedResult
		errs   error
	)

	for _, sample := range SampleUsers() {
		if err := ctx.Err(); err != nil {
			errs = multierr.Append(errs, err)
			break
		}

		user := sample
		err := s.repo.Create(ctx, &user)
		switch {
		case err == nil:
			result.Inserted++
		case database.IsDuplicateKey(err):
			result.Duplicates++
		default:
			errs = multierr.Append(errs, err)
		}
	}

	if errs != nil {
		s.logger.Error("Error inserting sample users",
			zap.Int("inserted", result.Inserted),
			zap.Error(errs),
		)
		return result, errs
	}

	if result.Duplicates > 0 {
		s.logger.Info("Some sample users already existed; duplicates ignored",
			zap.Int("inserted", result.Inserted),
			zap.Int("duplicates", result.Duplicates),
		)
	} else {
		s.logger.Info("Sample users inserted", zap.Int("inserted", result.Inserted))
	}
	return result, nil
}
