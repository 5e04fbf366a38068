package repository

import (
	"cms_backend/internal/model"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

type MenuRepository struct {
	DB *gorm.DB
}

func NewMenuRepository(db *gorm.DB) *MenuRepository {
	return &MenuRepository{DB: db}
}

func (r *MenuRepository) Create(menu *model.Menu) error {
	return errors.Wrap(r.DB.Create(menu).Error, "create menu")
}

func (r *MenuRepository) FindByID(id uint) (*model.Menu, error) {
	var menu model.Menu
	err := r.DB.First(&menu, id).Error
	return &menu, err
}

// ListOrdered returns all menus by ascending sequence, each with its
// submenus ordered by their own sequence. This is the navigation read path.
func (r *MenuRepository) ListOrdered() ([]model.Menu, error) {
	var menus []model.Menu
	err := r.DB.
		Preload("Submenus", func(db *gorm.DB) *gorm.DB {
			return db.Order("submenus.sequence asc")
		}).
		Order("sequence asc").
		Find(&menus).Error
	return menus, err
}

// ListContainers returns the menus eligible as a submenu's parent (type=1).
func (r *MenuRepository) ListContainers() ([]model.Menu, error) {
	var menus []model.Menu
	err := r.DB.Where("type = ?", model.MenuTypeContainer).Order("sequence asc").Find(&menus).Error
	return menus, err
}

// SequenceTaken reports whether another menu already uses the ordering key.
func (r *MenuRepository) SequenceTaken(sequence int, excludeID uint) (bool, error) {
	var count int64
	err := r.DB.Model(&model.Menu{}).
		Where("sequence = ? AND id <> ?", sequence, excludeID).
		Count(&count).Error
	return count > 0, err
}

// CaptionTaken reports whether another menu already uses either caption.
func (r *MenuRepository) CaptionTaken(caption, captionEn string, excludeID uint) (bool, error) {
	var count int64
	err := r.DB.Model(&model.Menu{}).
		Where("(caption = ? OR caption_en = ?) AND id <> ?", caption, captionEn, excludeID).
		Count(&count).Error
	return count > 0, err
}

func (r *MenuRepository) Update(menu *model.Menu) error {
	return errors.Wrap(r.DB.Save(menu).Error, "update menu")
}

// Delete removes the menu and, via the cascading foreign key, its submenus.
func (r *MenuRepository) Delete(id uint) (bool, error) {
	res := r.DB.Delete(&model.Menu{}, id)
	if res.Error != nil {
		return false, errors.Wrap(res.Error, "delete menu")
	}
	return res.RowsAffected > 0, nil
}
