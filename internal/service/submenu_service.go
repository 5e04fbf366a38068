package service

import (
	"cms_backend/internal/model"
	"cms_backend/internal/repository"
	"cms_backend/internal/util"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

type SubmenuService struct {
	Repo  *repository.SubmenuRepository
	Menus *repository.MenuRepository
}

func NewSubmenuService(repo *repository.SubmenuRepository, menus *repository.MenuRepository) *SubmenuService {
	return &SubmenuService{Repo: repo, Menus: menus}
}

// SubmenuRequest is the validated admin form payload for a submenu. MenuID
// is chosen from the live list of container menus rendered into the form.
type SubmenuRequest struct {
	Sequence  int    `form:"sequence" binding:"required"`
	Link      string `form:"link" binding:"required"`
	Caption   string `form:"caption" binding:"required"`
	CaptionEn string `form:"caption_en" binding:"required"`
	MenuID    uint   `form:"menu_id" binding:"required"`
}

func (r *SubmenuRequest) apply(submenu *model.Submenu) {
	submenu.Sequence = r.Sequence
	submenu.Link = r.Link
	submenu.Caption = r.Caption
	submenu.CaptionEn = r.CaptionEn
	submenu.MenuID = r.MenuID
}

// validate checks the caption uniqueness invariant and that the selected
// parent exists and is a container menu (type=1).
func (s *SubmenuService) validate(req SubmenuRequest, excludeID uint) error {
	fields := util.FieldErrors{}

	if taken, err := s.Repo.CaptionTaken(req.Caption, req.CaptionEn, excludeID); err != nil {
		return err
	} else if taken {
		fields.Add("caption", "A submenu with this caption already exists.")
	}

	parent, err := s.Menus.FindByID(req.MenuID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		fields.Add("menu_id", "Selected menu does not exist.")
	} else if err != nil {
		return err
	} else if !parent.IsContainer() {
		fields.Add("menu_id", "Selected menu cannot hold submenus.")
	}

	if fields.Has() {
		return util.NewValidationError(fields)
	}
	return nil
}

func (s *SubmenuService) Create(req SubmenuRequest) (*model.Submenu, error) {
	if err := s.validate(req, 0); err != nil {
		return nil, err
	}
	submenu := &model.Submenu{}
	req.apply(submenu)
	if err := s.Repo.Create(submenu); err != nil {
		return nil, err
	}
	return submenu, nil
}

func (s *SubmenuService) Get(id uint) (*model.Submenu, error) {
	submenu, err := s.Repo.FindByID(id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, util.ErrNotFound
	}
	return submenu, err
}

func (s *SubmenuService) List() ([]model.Submenu, error) {
	return s.Repo.List()
}

// ParentChoices returns the menus eligible as a submenu's parent, for the
// form's select control.
func (s *SubmenuService) ParentChoices() ([]model.Menu, error) {
	return s.Menus.ListContainers()
}

func (s *SubmenuService) Update(id uint, req SubmenuRequest) (*model.Submenu, error) {
	submenu, err := s.Get(id)
	if err != nil {
		return nil, err
	}
	if err := s.validate(req, id); err != nil {
		return nil, err
	}
	req.apply(submenu)
	if err := s.Repo.Update(submenu); err != nil {
		return nil, err
	}
	return submenu, nil
}

func (s *SubmenuService) Delete(id uint) (bool, error) {
	return s.Repo.Delete(id)
}
