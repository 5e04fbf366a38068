package repository

import (
	"cms_backend/internal/model"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

type UserRepository struct {
	DB *gorm.DB
}

func NewUserRepository(db *gorm.DB) *UserRepository {
	return &UserRepository{DB: db}
}

func (r *UserRepository) Create(user *model.User) error {
	return errors.Wrap(r.DB.Create(user).Error, "create user")
}

func (r *UserRepository) FindByID(id uint) (*model.User, error) {
	var user model.User
	err := r.DB.First(&user, id).Error
	return &user, err
}

func (r *UserRepository) FindByEmail(email string) (*model.User, error) {
	var user model.User
	err := r.DB.Where("email = ?", email).First(&user).Error
	return &user, err
}

func (r *UserRepository) FindByNickname(nickname string) (*model.User, error) {
	var user model.User
	err := r.DB.Where("nickname = ?", nickname).First(&user).Error
	return &user, err
}

// NicknameTaken reports whether another user already holds the nickname.
func (r *UserRepository) NicknameTaken(nickname string, excludeID uint) (bool, error) {
	var count int64
	err := r.DB.Model(&model.User{}).
		Where("nickname = ? AND id <> ?", nickname, excludeID).
		Count(&count).Error
	return count > 0, err
}

func (r *UserRepository) Update(user *model.User) error {
	return errors.Wrap(r.DB.Save(user).Error, "update user")
}
