package service

import (
	"cms_backend/internal/model"
	"cms_backend/internal/repository"
	"cms_backend/internal/util"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

type MenuService struct {
	Repo *repository.MenuRepository
}

func NewMenuService(repo *repository.MenuRepository) *MenuService {
	return &MenuService{Repo: repo}
}

// MenuRequest is the validated admin form payload for a menu entry.
type MenuRequest struct {
	Sequence  int    `form:"sequence" binding:"required"`
	Link      string `form:"link" binding:"required"`
	Type      int    `form:"type" binding:"oneof=0 1"`
	Caption   string `form:"caption" binding:"required"`
	CaptionEn string `form:"caption_en" binding:"required"`
}

func (r *MenuRequest) apply(menu *model.Menu) {
	menu.Sequence = r.Sequence
	menu.Link = r.Link
	menu.Type = r.Type
	menu.Caption = r.Caption
	menu.CaptionEn = r.CaptionEn
}

// checkUnique enforces the sequence and caption uniqueness invariants,
// excluding the row being edited.
func (s *MenuService) checkUnique(req MenuRequest, excludeID uint) error {
	fields := util.FieldErrors{}
	if taken, err := s.Repo.SequenceTaken(req.Sequence, excludeID); err != nil {
		return err
	} else if taken {
		fields.Add("sequence", "This order value is already in use.")
	}
	if taken, err := s.Repo.CaptionTaken(req.Caption, req.CaptionEn, excludeID); err != nil {
		return err
	} else if taken {
		fields.Add("caption", "A menu with this caption already exists.")
	}
	if fields.Has() {
		return util.NewValidationError(fields)
	}
	return nil
}

func (s *MenuService) Create(req MenuRequest) (*model.Menu, error) {
	if err := s.checkUnique(req, 0); err != nil {
		return nil, err
	}
	menu := &model.Menu{}
	req.apply(menu)
	if err := s.Repo.Create(menu); err != nil {
		return nil, err
	}
	return menu, nil
}

func (s *MenuService) Get(id uint) (*model.Menu, error) {
	menu, err := s.Repo.FindByID(id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, util.ErrNotFound
	}
	return menu, err
}

func (s *MenuService) List() ([]model.Menu, error) {
	return s.Repo.ListOrdered()
}

func (s *MenuService) Update(id uint, req MenuRequest) (*model.Menu, error) {
	menu, err := s.Get(id)
	if err != nil {
		return nil, err
	}
	if err := s.checkUnique(req, id); err != nil {
		return nil, err
	}
	req.apply(menu)
	if err := s.Repo.Update(menu); err != nil {
		return nil, err
	}
	return menu, nil
}

func (s *MenuService) Delete(id uint) (bool, error) {
	return s.Repo.Delete(id)
}
