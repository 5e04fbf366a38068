package repository

import (
	"cms_backend/internal/model"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

type QuizRepository struct {
	DB *gorm.DB
}

func NewQuizRepository(db *gorm.DB) *QuizRepository {
	return &QuizRepository{DB: db}
}

func (r *QuizRepository) Create(quiz *model.Quiz) error {
	return errors.Wrap(r.DB.Create(quiz).Error, "create quiz")
}

func (r *QuizRepository) FindByID(id uint) (*model.Quiz, error) {
	var quiz model.Quiz
	err := r.DB.First(&quiz, id).Error
	return &quiz, err
}

// FindBySlugOrID resolves a quiz by name, falling back to a numeric id.
func (r *QuizRepository) FindBySlugOrID(key string) (*model.Quiz, error) {
	var quiz model.Quiz
	err := r.DB.Where("name = ?", key).First(&quiz).Error
	if err == nil {
		return &quiz, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}
	err = r.DB.Where("id = ?", key).First(&quiz).Error
	return &quiz, err
}

// FindFull loads a quiz with questions and their answer options, both in
// creation (id) order - the order tallies are aligned to.
func (r *QuizRepository) FindFull(id uint) (*model.Quiz, error) {
	var quiz model.Quiz
	err := r.DB.
		Preload("Questions", func(db *gorm.DB) *gorm.DB {
			return db.Order("quiz_questions.id asc")
		}).
		Preload("Questions.Answers", func(db *gorm.DB) *gorm.DB {
			return db.Order("quiz_answer_options.id asc")
		}).
		First(&quiz, id).Error
	return &quiz, err
}

func (r *QuizRepository) List() ([]model.Quiz, error) {
	var quizzes []model.Quiz
	err := r.DB.Order("id asc").Find(&quizzes).Error
	return quizzes, err
}

func (r *QuizRepository) Update(quiz *model.Quiz) error {
	return errors.Wrap(r.DB.Save(quiz).Error, "update quiz")
}

// Delete removes the quiz; questions, options and recorded responses go with
// it through the cascading foreign keys.
func (r *QuizRepository) Delete(id uint) (bool, error) {
	res := r.DB.Delete(&model.Quiz{}, id)
	if res.Error != nil {
		return false, errors.Wrap(res.Error, "delete quiz")
	}
	return res.RowsAffected > 0, nil
}

// --- questions ---

func (r *QuizRepository) CreateQuestion(question *model.QuizQuestion) error {
	return errors.Wrap(r.DB.Create(question).Error, "create quiz question")
}

func (r *QuizRepository) FindQuestionByID(id uint) (*model.QuizQuestion, error) {
	var question model.QuizQuestion
	err := r.DB.Preload("Quiz").First(&question, id).Error
	return &question, err
}

func (r *QuizRepository) ListQuestions() ([]model.QuizQuestion, error) {
	var questions []model.QuizQuestion
	err := r.DB.Preload("Quiz").Order("id asc").Find(&questions).Error
	return questions, err
}

func (r *QuizRepository) UpdateQuestion(question *model.QuizQuestion) error {
	return errors.Wrap(r.DB.Save(question).Error, "update quiz question")
}

func (r *QuizRepository) DeleteQuestion(id uint) (bool, error) {
	res := r.DB.Delete(&model.QuizQuestion{}, id)
	if res.Error != nil {
		return false, errors.Wrap(res.Error, "delete quiz question")
	}
	return res.RowsAffected > 0, nil
}

// --- answer options ---

func (r *QuizRepository) CreateAnswerOption(option *model.QuizAnswerOption) error {
	return errors.Wrap(r.DB.Create(option).Error, "create quiz answer option")
}

func (r *QuizRepository) FindAnswerOptionByID(id uint) (*model.QuizAnswerOption, error) {
	var option model.QuizAnswerOption
	err := r.DB.Preload("QuizQuestion").First(&option, id).Error
	return &option, err
}

func (r *QuizRepository) ListAnswerOptions() ([]model.QuizAnswerOption, error) {
	var options []model.QuizAnswerOption
	err := r.DB.Preload("QuizQuestion").Order("id asc").Find(&options).Error
	return options, err
}

func (r *QuizRepository) UpdateAnswerOption(option *model.QuizAnswerOption) error {
	return errors.Wrap(r.DB.Save(option).Error, "update quiz answer option")
}

func (r *QuizRepository) DeleteAnswerOption(id uint) (bool, error) {
	res := r.DB.Delete(&model.QuizAnswerOption{}, id)
	if res.Error != nil {
		return false, errors.Wrap(res.Error, "delete quiz answer option")
	}
	return res.RowsAffected > 0, nil
}
