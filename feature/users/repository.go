package users

import (
	"context"

	"user-service/core/database"
	"user-service/feature/users/models"

	"gorm.io/gorm"
)

// Repository persists users.
type Repository interface {
	List(ctx context.Context) ([]models.User, error)
	Get(ctx context.Context, id uint) (*models.User, error)
	Create(ctx context.Context, user *models.User) error
	Save(ctx context.Context, user *models.User) error
	Delete(ctx context.Context, id uint) error
	Count(ctx context.Context) (int64, error)
}

type gormRepository struct {
	db *gorm.DB
}

// NewRepository returns a GORM backed Repository. Errors are translated with database.MapError.
func NewRepository(db *gorm.DB) Repository {
	return &gormRepository{db: db}
}

// Migrate creates or updates the users table and its unique indexes.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(&models.User{})
}

func (r *gormRepository) List(ctx context.Context) ([]models.User, error) {
	var users []models.User
	if err := r.db.WithContext(ctx).Order("id").Find(&users).Error; err != nil {
		return nil, database.MapError(err)
	}
	return users, nil
}

func (r *gormRepository) Get(ctx context.Context, id uint) (*models.User, error) {
	var user models.User
	if err := r.db.WithContext(ctx).First(&user, id).Error; err != nil {
		return nil, database.MapError(err)
	}
	return &user, nil
}

func (r *gormRepository) Create(ctx context.Context, user *models.User) error {
	return database.MapError(r.db.WithContext(ctx).Create(user).Error)
}

func (r *gormRepository) Save(ctx context.Context, user *models.User) error {
	return database.MapError(r.db.WithContext(ctx).Save(user).Error)
}

func (r *gormRepository) Delete(ctx context.Context, id uint) error {
	result := r.db.WithContext(ctx).Delete(&models.User{}, id)
	if result.Error != nil {
		return database.MapError(result.Error)
	}
	if result.RowsAffected == 0 {
		return database.ErrNotFound
	}
	return nil
}

func (r *gormRepository) Count(ctx context.Context) (int64, error) {
	var n int64
	if err := r.db.WithContext(ctx).Model(&models.User{}).Count(&n).Error; err != nil {
		return 0, database.MapError(err)
	}
	return n, nil
}
