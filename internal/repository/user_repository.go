package repository

import (
	"github.com/lshigami/Formlink/internal/model"
	"gorm.io/gorm"
)

type UserRepository interface {
	FindByID(id uint) (*model.User, error)
	FindByEmail(email string) (*model.User, error)
	FindByIDs(ids []uint) ([]model.User, error)
	FindNonAdmins() ([]model.User, error)
	FindByIDAndRefreshToken(id uint, token string) (*model.User, error)
	UpdateRefreshToken(userID uint, token *string) error
	ClearRefreshTokenByValue(token string) error
}

type userRepository struct {
	db *gorm.DB
}

func NewUserRepository(db *gorm.DB) UserRepository {
	return &userRepository{db: db}
}

func (r *userRepository) FindByID(id uint) (*model.User, error) {
	var user model.User
	if err := r.db.First(&user, id).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *userRepository) FindByEmail(email string) (*model.User, error) {
	var user model.User
	if err := r.db.Where("email = ?", email).First(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *userRepository) FindByIDs(ids []uint) ([]model.User, error) {
	var users []model.User
	if err := r.db.Where("id IN ?", ids).Find(&users).Error; err != nil {
		return nil, err
	}
	return users, nil
}

func (r *userRepository) FindNonAdmins() ([]model.User, error) {
	var users []model.User
	if err := r.db.Where("role <> ?", model.RoleAdmin).Order("name").Find(&users).Error; err != nil {
		return nil, err
	}
	return users, nil
}

func (r *userRepository) FindByIDAndRefreshToken(id uint, token string) (*model.User, error) {
	var user model.User
	if err := r.db.Where("id = ? AND refresh_token = ?", id, token).First(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *userRepository) UpdateRefreshToken(userID uint, token *string) error {
	return r.db.Model(&model.User{}).Where("id = ?", userID).Update("refresh_token", token).Error
}

// ClearRefreshTokenByValue invalidates a stored refresh token wherever it
// appears. A token that matches no row is a no-op, not an error.
func (r *userRepository) ClearRefreshTokenByValue(token string) error {
	return r.db.Model(&model.User{}).Where("refresh_token = ?", token).Update("refresh_token", nil).Error
}
