package service

import (
	"cms_backend/internal/model"
	"cms_backend/internal/repository"
)

// NavigationService assembles the two-level navigation rendered on every
// page: menus in ascending sequence order, each container menu carrying its
// submenus sorted by their own sequence. An empty menu set yields an empty
// navigation.
type NavigationService struct {
	Menus *repository.MenuRepository
}

func NewNavigationService(menus *repository.MenuRepository) *NavigationService {
	return &NavigationService{Menus: menus}
}

func (s *NavigationService) Build() ([]model.Menu, error) {
	return s.Menus.ListOrdered()
}
