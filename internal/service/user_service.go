package service

import (
	"cms_backend/internal/model"
	"cms_backend/internal/repository"
	"cms_backend/internal/util"
	"strconv"
	"time"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

type UserService struct {
	Repo *repository.UserRepository
}

func NewUserService(repo *repository.UserRepository) *UserService {
	return &UserService{Repo: repo}
}

// NicknameRequest is the self-edit form payload.
type NicknameRequest struct {
	Nickname string `form:"nickname" binding:"required"`
}

func (s *UserService) Get(id uint) (*model.User, error) {
	user, err := s.Repo.FindByID(id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, util.ErrNotFound
	}
	return user, err
}

func (s *UserService) GetByNickname(nickname string) (*model.User, error) {
	user, err := s.Repo.FindByNickname(nickname)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, util.ErrNotFound
	}
	return user, err
}

// UpdateNickname renames the user. Renaming to the current nickname succeeds
// trivially; a nickname held by any other user fails validation.
func (s *UserService) UpdateNickname(user *model.User, nickname string) error {
	if nickname == user.Nickname {
		return nil
	}
	taken, err := s.Repo.NicknameTaken(nickname, user.ID)
	if err != nil {
		return err
	}
	if taken {
		fields := util.FieldErrors{}
		fields.Add("nickname", "This nickname is already in use. Please choose another one.")
		return util.NewValidationError(fields)
	}
	user.Nickname = nickname
	return s.Repo.Update(user)
}

// MakeUniqueNickname probes for a free variant of the requested nickname by
// appending 2, 3, ... until no other user holds it.
func (s *UserService) MakeUniqueNickname(nickname string) (string, error) {
	taken, err := s.Repo.NicknameTaken(nickname, 0)
	if err != nil {
		return "", err
	}
	if !taken {
		return nickname, nil
	}
	for version := 2; ; version++ {
		candidate := nickname + strconv.Itoa(version)
		taken, err := s.Repo.NicknameTaken(candidate, 0)
		if err != nil {
			return "", err
		}
		if !taken {
			return candidate, nil
		}
	}
}

// Provision creates a local account with a uniqueness-probed nickname. Used
// for administrator-managed provisioning (first-run seeding included); the
// login path never calls it.
func (s *UserService) Provision(nickname, email string, permission int) (*model.User, error) {
	unique, err := s.MakeUniqueNickname(nickname)
	if err != nil {
		return nil, err
	}
	user := &model.User{
		Nickname:     unique,
		Email:        email,
		Permission:   permission,
		RegisterDate: time.Now(),
	}
	if err := s.Repo.Create(user); err != nil {
		return nil, err
	}
	return user, nil
}
