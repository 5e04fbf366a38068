package repository

import (
	"cms_backend/internal/model"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

type SubmenuRepository struct {
	DB *gorm.DB
}

func NewSubmenuRepository(db *gorm.DB) *SubmenuRepository {
	return &SubmenuRepository{DB: db}
}

func (r *SubmenuRepository) Create(submenu *model.Submenu) error {
	return errors.Wrap(r.DB.Create(submenu).Error, "create submenu")
}

func (r *SubmenuRepository) FindByID(id uint) (*model.Submenu, error) {
	var submenu model.Submenu
	err := r.DB.Preload("Menu").First(&submenu, id).Error
	return &submenu, err
}

func (r *SubmenuRepository) List() ([]model.Submenu, error) {
	var submenus []model.Submenu
	err := r.DB.Preload("Menu").Order("sequence asc").Find(&submenus).Error
	return submenus, err
}

// CaptionTaken reports whether another submenu already uses either caption.
func (r *SubmenuRepository) CaptionTaken(caption, captionEn string, excludeID uint) (bool, error) {
	var count int64
	err := r.DB.Model(&model.Submenu{}).
		Where("(caption = ? OR caption_en = ?) AND id <> ?", caption, captionEn, excludeID).
		Count(&count).Error
	return count > 0, err
}

func (r *SubmenuRepository) Update(submenu *model.Submenu) error {
	return errors.Wrap(r.DB.Save(submenu).Error, "update submenu")
}

func (r *SubmenuRepository) Delete(id uint) (bool, error) {
	res := r.DB.Delete(&model.Submenu{}, id)
	if res.Error != nil {
		return false, errors.Wrap(res.Error, "delete submenu")
	}
	return res.RowsAffected > 0, nil
}
