package repository

import (
	"cms_backend/internal/model"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

type PageRepository struct {
	DB *gorm.DB
}

func NewPageRepository(db *gorm.DB) *PageRepository {
	return &PageRepository{DB: db}
}

func (r *PageRepository) Create(page *model.Page) error {
	return errors.Wrap(r.DB.Create(page).Error, "create page")
}

func (r *PageRepository) FindByID(id uint) (*model.Page, error) {
	var page model.Page
	err := r.DB.First(&page, id).Error
	return &page, err
}

// FindBySlugOrID resolves a page by its link and falls back to treating the
// key as a numeric id. Both misses return gorm.ErrRecordNotFound.
func (r *PageRepository) FindBySlugOrID(key string) (*model.Page, error) {
	var page model.Page
	err := r.DB.Where("link = ?", key).First(&page).Error
	if err == nil {
		return &page, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}
	err = r.DB.Where("id = ?", key).First(&page).Error
	return &page, err
}

func (r *PageRepository) List() ([]model.Page, error) {
	var pages []model.Page
	err := r.DB.Order("id asc").Find(&pages).Error
	return pages, err
}

func (r *PageRepository) Update(page *model.Page) error {
	return errors.Wrap(r.DB.Save(page).Error, "update page")
}

// Delete removes the page when it exists and reports whether a row was
// removed. A missing id is a silent no-op.
func (r *PageRepository) Delete(id uint) (bool, error) {
	res := r.DB.Delete(&model.Page{}, id)
	if res.Error != nil {
		return false, errors.Wrap(res.Error, "delete page")
	}
	return res.RowsAffected > 0, nil
}
