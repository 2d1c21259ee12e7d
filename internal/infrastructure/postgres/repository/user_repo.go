package repository

import (
	"context"
	"errors"

	adminapp "github.com/agenda23/restaurant-media-api/internal/admin/application"
	admindomain "github.com/agenda23/restaurant-media-api/internal/admin/domain"
	"github.com/agenda23/restaurant-media-api/internal/infrastructure/postgres/models"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// UserRepository は管理ユーザーのアカウントを扱う。
// パスワードハッシュはドメイン型に載せず、この層でのみ触る。
type UserRepository struct {
	db *gorm.DB
}

func NewUserRepository(db *gorm.DB) *UserRepository {
	return &UserRepository{db: db}
}

func (r *UserRepository) Find(ctx context.Context) ([]admindomain.User, error) {
	var rows []models.UserModel
	if err := r.db.WithContext(ctx).Order("created_at").Find(&rows).Error; err != nil {
		return nil, err
	}
	users := make([]admindomain.User, 0, len(rows))
	for i := range rows {
		users = append(users, userToDomain(&rows[i]))
	}
	return users, nil
}

func (r *UserRepository) FindByID(ctx context.Context, id string) (*admindomain.User, error) {
	var model models.UserModel
	err := r.db.WithContext(ctx).First(&model, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	user := userToDomain(&model)
	return &user, nil
}

func (r *UserRepository) FindByEmail(ctx context.Context, email string) (*admindomain.User, error) {
	var model models.UserModel
	err := r.db.WithContext(ctx).First(&model, "email = ?", email).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	user := userToDomain(&model)
	return &user, nil
}

func (r *UserRepository) Create(ctx context.Context, user *admindomain.User, passwordHash string) error {
	user.ID = uuid.NewString()
	model := models.UserModel{
		ID:             user.ID,
		Email:          user.Email,
		PasswordHash:   passwordHash,
		FirstName:      user.FirstName,
		LastName:       user.LastName,
		ProfilePicture: user.ProfilePicture,
		Role:           string(user.Role),
	}
	if err := r.db.WithContext(ctx).Create(&model).Error; err != nil {
		return err
	}
	user.CreatedAt = model.CreatedAt
	user.UpdatedAt = model.UpdatedAt
	return nil
}

func (r *UserRepository) Update(ctx context.Context, user *admindomain.User) error {
	result := r.db.WithContext(ctx).Model(&models.UserModel{}).Where("id = ?", user.ID).Updates(map[string]any{
		"email":           user.Email,
		"first_name":      user.FirstName,
		"last_name":       user.LastName,
		"profile_picture": user.ProfilePicture,
		"role":            string(user.Role),
	})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return adminapp.ErrNotFound
	}
	return nil
}

func (r *UserRepository) UpdatePassword(ctx context.Context, id string, passwordHash string) error {
	result := r.db.WithContext(ctx).Model(&models.UserModel{}).
		Where("id = ?", id).
		Update("password_hash", passwordHash)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return adminapp.ErrNotFound
	}
	return nil
}

func (r *UserRepository) PasswordHashByEmail(ctx context.Context, email string) (string, *admindomain.User, error) {
	var model models.UserModel
	err := r.db.WithContext(ctx).First(&model, "email = ?", email).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return "", nil, nil
	}
	if err != nil {
		return "", nil, err
	}
	user := userToDomain(&model)
	return model.PasswordHash, &user, nil
}

func (r *UserRepository) Delete(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Delete(&models.UserModel{}, "id = ?", id).Error
}
