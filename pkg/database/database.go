package database

import (
	"cms_backend/internal/config"
	"cms_backend/internal/model"
	"cms_backend/internal/repository"
	"cms_backend/internal/service"
	"fmt"
	"log"

	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func InitDB(cfg *config.Config) (*gorm.DB, error) {
	dsn := fmt.Sprintf("%s:%s@tcp(%s:%d)/%s?charset=%s&parseTime=%t&loc=Local",
		cfg.Database.User,
		cfg.Database.Password,
		cfg.Database.Host,
		cfg.Database.Port,
		cfg.Database.DBName,
		cfg.Database.Charset,
		cfg.Database.ParseTime,
	)

	db, err := gorm.Open(mysql.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Info),
	})
	if err != nil {
		return nil, err
	}

	log.Println("Database connection established")

	if err := Migrate(db); err != nil {
		return nil, err
	}

	log.Println("Database migration completed")

	if err := Seed(db, cfg); err != nil {
		return nil, err
	}

	return db, nil
}

// Migrate creates or updates the schema for all CMS entities. Foreign keys
// carry ON DELETE CASCADE, so removing a quiz or menu removes its subtree.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&model.User{},
		&model.Page{},
		&model.Menu{},
		&model.Submenu{},
		&model.Quiz{},
		&model.QuizQuestion{},
		&model.QuizAnswerOption{},
		&model.QuizUserAnswer{},
	)
}

// Seed provisions the first admin account and the home page when the store is
// empty. Federated login only matches existing emails, so without this row
// nobody could ever reach the panel.
func Seed(db *gorm.DB, cfg *config.Config) error {
	var userCount int64
	db.Model(&model.User{}).Count(&userCount)
	if userCount == 0 && cfg.Admin.Email != "" {
		nickname := cfg.Admin.Nickname
		if nickname == "" {
			nickname = "admin"
		}
		users := service.NewUserService(repository.NewUserRepository(db))
		if _, err := users.Provision(nickname, cfg.Admin.Email, model.PermissionAdmin); err != nil {
			return err
		}
	}

	var pageCount int64
	db.Model(&model.Page{}).Count(&pageCount)
	if pageCount == 0 {
		home := &model.Page{
			Link:    "index",
			Title:   "Strona główna",
			TitleEn: "Home",
		}
		if err := db.Create(home).Error; err != nil {
			return err
		}
	}

	return nil
}
