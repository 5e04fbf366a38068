package service

import (
	"cms_backend/internal/model"
	"cms_backend/internal/repository"
	"cms_backend/internal/util"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

type PageService struct {
	Repo *repository.PageRepository
}

func NewPageService(repo *repository.PageRepository) *PageService {
	return &PageService{Repo: repo}
}

// PageRequest is the validated admin form payload for a page.
type PageRequest struct {
	Link      string `form:"link" binding:"required"`
	Title     string `form:"title" binding:"required"`
	TitleEn   string `form:"title_en" binding:"required"`
	Content   string `form:"content" binding:"required"`
	ContentEn string `form:"content_en" binding:"required"`
	ImgName   string `form:"img_name" binding:"required"`
}

func (r *PageRequest) apply(page *model.Page) {
	page.Link = r.Link
	page.Title = r.Title
	page.TitleEn = r.TitleEn
	page.Content = r.Content
	page.ContentEn = r.ContentEn
	page.ImgName = r.ImgName
}

func (s *PageService) Create(req PageRequest) (*model.Page, error) {
	page := &model.Page{}
	req.apply(page)
	if err := s.Repo.Create(page); err != nil {
		return nil, err
	}
	return page, nil
}

func (s *PageService) Get(id uint) (*model.Page, error) {
	page, err := s.Repo.FindByID(id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, util.ErrNotFound
	}
	return page, err
}

// Resolve looks a page up for the public route: by link, then by id.
func (s *PageService) Resolve(key string) (*model.Page, error) {
	page, err := s.Repo.FindBySlugOrID(key)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, util.ErrNotFound
	}
	return page, err
}

func (s *PageService) List() ([]model.Page, error) {
	return s.Repo.List()
}

func (s *PageService) Update(id uint, req PageRequest) (*model.Page, error) {
	page, err := s.Get(id)
	if err != nil {
		return nil, err
	}
	req.apply(page)
	if err := s.Repo.Update(page); err != nil {
		return nil, err
	}
	return page, nil
}

func (s *PageService) Delete(id uint) (bool, error) {
	return s.Repo.Delete(id)
}
