// Seeds demo content: a menu tree, an about page and a sample quiz.
//
// Intended for a fresh deployment or a local environment. Running it against
// a store that already holds content is a no-op.
//
// Usage: go run scripts/seed_demo.go
package main

import (
	"cms_backend/internal/config"
	"cms_backend/internal/model"
	"cms_backend/pkg/database"
	"cms_backend/pkg/logger"
	"log"
)

func main() {
	cfg, err := config.LoadConfig("configs")
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	logger.InitLogger(cfg)

	db, err := database.InitDB(cfg)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	if err := database.Migrate(db); err != nil {
		log.Fatalf("Failed to migrate database: %v", err)
	}

	var menus int64
	db.Model(&model.Menu{}).Count(&menus)
	if menus == 0 {
		tree := []*model.Menu{
			{Sequence: 10, Link: "index", Caption: "Start", CaptionEn: "Home"},
			{Sequence: 20, Link: "about", Caption: "O nas", CaptionEn: "About"},
			{
				Sequence: 30, Type: model.MenuTypeContainer,
				Caption: "Uzależnienia", CaptionEn: "Addictions",
				Submenus: []model.Submenu{
					{Sequence: 1, Link: "alcohol", Caption: "Alkohol", CaptionEn: "Alcohol"},
					{Sequence: 2, Link: "internet", Caption: "Internet", CaptionEn: "Internet"},
				},
			},
		}
		for _, m := range tree {
			if err := db.Create(m).Error; err != nil {
				log.Fatalf("Failed to seed menu: %v", err)
			}
		}
		log.Println("Seeded demo menu")
	}

	var pages int64
	db.Model(&model.Page{}).Where("link = ?", "about").Count(&pages)
	if pages == 0 {
		about := &model.Page{
			Link:      "about",
			Title:     "O nas",
			TitleEn:   "About us",
			Content:   "Serwis o uzależnieniach.",
			ContentEn: "A site about addictions.",
		}
		if err := db.Create(about).Error; err != nil {
			log.Fatalf("Failed to seed page: %v", err)
		}
		log.Println("Seeded demo page")
	}

	var quizzes int64
	db.Model(&model.Quiz{}).Count(&quizzes)
	if quizzes == 0 {
		quiz := &model.Quiz{
			Name:   "uzaleznienia",
			NameEn: "addictions",
			Questions: []model.QuizQuestion{
				{
					Question:   "Czy korzystasz z internetu codziennie?",
					QuestionEn: "Do you use the internet every day?",
					Answers: []model.QuizAnswerOption{
						{Answer: "Tak", AnswerEn: "Yes"},
						{Answer: "Nie", AnswerEn: "No"},
					},
				},
				{
					Question:   "Ile godzin dziennie spędzasz w sieci?",
					QuestionEn: "How many hours a day do you spend online?",
					Answers: []model.QuizAnswerOption{
						{Answer: "Mniej niż 2", AnswerEn: "Less than 2"},
						{Answer: "2-6", AnswerEn: "2-6"},
						{Answer: "Więcej niż 6", AnswerEn: "More than 6"},
					},
				},
			},
		}
		if err := db.Create(quiz).Error; err != nil {
			log.Fatalf("Failed to seed quiz: %v", err)
		}
		log.Println("Seeded demo quiz")
	}

	log.Println("Demo seeding complete")
}
