package service

import (
	"cms_backend/internal/model"
	"cms_backend/internal/repository"
	"cms_backend/internal/util"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// QuizService covers the admin CRUD over quizzes, their questions and their
// answer options. The public response path lives in PollService.
type QuizService struct {
	Repo *repository.QuizRepository
}

func NewQuizService(repo *repository.QuizRepository) *QuizService {
	return &QuizService{Repo: repo}
}

type QuizRequest struct {
	Name   string `form:"name" binding:"required"`
	NameEn string `form:"name_en" binding:"required"`
}

type QuizQuestionRequest struct {
	Question   string `form:"question" binding:"required"`
	QuestionEn string `form:"question_en" binding:"required"`
	QuizID     uint   `form:"quiz_id" binding:"required"`
}

type AnswerOptionRequest struct {
	Answer         string `form:"answer" binding:"required"`
	AnswerEn       string `form:"answer_en" binding:"required"`
	QuizQuestionID uint   `form:"quiz_question_id" binding:"required"`
}

// --- quizzes ---

func (s *QuizService) Create(req QuizRequest) (*model.Quiz, error) {
	quiz := &model.Quiz{Name: req.Name, NameEn: req.NameEn}
	if err := s.Repo.Create(quiz); err != nil {
		return nil, err
	}
	return quiz, nil
}

func (s *QuizService) Get(id uint) (*model.Quiz, error) {
	quiz, err := s.Repo.FindByID(id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, util.ErrNotFound
	}
	return quiz, err
}

func (s *QuizService) List() ([]model.Quiz, error) {
	return s.Repo.List()
}

func (s *QuizService) Update(id uint, req QuizRequest) (*model.Quiz, error) {
	quiz, err := s.Get(id)
	if err != nil {
		return nil, err
	}
	quiz.Name = req.Name
	quiz.NameEn = req.NameEn
	if err := s.Repo.Update(quiz); err != nil {
		return nil, err
	}
	return quiz, nil
}

func (s *QuizService) Delete(id uint) (bool, error) {
	return s.Repo.Delete(id)
}

// --- questions ---

// validateQuizRef confirms the selected parent quiz exists.
func (s *QuizService) validateQuizRef(quizID uint) error {
	if _, err := s.Repo.FindByID(quizID); errors.Is(err, gorm.ErrRecordNotFound) {
		fields := util.FieldErrors{}
		fields.Add("quiz_id", "Selected quiz does not exist.")
		return util.NewValidationError(fields)
	} else if err != nil {
		return err
	}
	return nil
}

func (s *QuizService) CreateQuestion(req QuizQuestionRequest) (*model.QuizQuestion, error) {
	if err := s.validateQuizRef(req.QuizID); err != nil {
		return nil, err
	}
	question := &model.QuizQuestion{
		Question:   req.Question,
		QuestionEn: req.QuestionEn,
		QuizID:     req.QuizID,
	}
	if err := s.Repo.CreateQuestion(question); err != nil {
		return nil, err
	}
	return question, nil
}

func (s *QuizService) GetQuestion(id uint) (*model.QuizQuestion, error) {
	question, err := s.Repo.FindQuestionByID(id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, util.ErrNotFound
	}
	return question, err
}

func (s *QuizService) ListQuestions() ([]model.QuizQuestion, error) {
	return s.Repo.ListQuestions()
}

func (s *QuizService) UpdateQuestion(id uint, req QuizQuestionRequest) (*model.QuizQuestion, error) {
	question, err := s.GetQuestion(id)
	if err != nil {
		return nil, err
	}
	if err := s.validateQuizRef(req.QuizID); err != nil {
		return nil, err
	}
	question.Question = req.Question
	question.QuestionEn = req.QuestionEn
	question.QuizID = req.QuizID
	if err := s.Repo.UpdateQuestion(question); err != nil {
		return nil, err
	}
	return question, nil
}

func (s *QuizService) DeleteQuestion(id uint) (bool, error) {
	return s.Repo.DeleteQuestion(id)
}

// --- answer options ---

func (s *QuizService) validateQuestionRef(questionID uint) error {
	if _, err := s.Repo.FindQuestionByID(questionID); errors.Is(err, gorm.ErrRecordNotFound) {
		fields := util.FieldErrors{}
		fields.Add("quiz_question_id", "Selected question does not exist.")
		return util.NewValidationError(fields)
	} else if err != nil {
		return err
	}
	return nil
}

func (s *QuizService) CreateAnswerOption(req AnswerOptionRequest) (*model.QuizAnswerOption, error) {
	if err := s.validateQuestionRef(req.QuizQuestionID); err != nil {
		return nil, err
	}
	option := &model.QuizAnswerOption{
		Answer:         req.Answer,
		AnswerEn:       req.AnswerEn,
		QuizQuestionID: req.QuizQuestionID,
	}
	if err := s.Repo.CreateAnswerOption(option); err != nil {
		return nil, err
	}
	return option, nil
}

func (s *QuizService) GetAnswerOption(id uint) (*model.QuizAnswerOption, error) {
	option, err := s.Repo.FindAnswerOptionByID(id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, util.ErrNotFound
	}
	return option, err
}

func (s *QuizService) ListAnswerOptions() ([]model.QuizAnswerOption, error) {
	return s.Repo.ListAnswerOptions()
}

func (s *QuizService) UpdateAnswerOption(id uint, req AnswerOptionRequest) (*model.QuizAnswerOption, error) {
	option, err := s.GetAnswerOption(id)
	if err != nil {
		return nil, err
	}
	if err := s.validateQuestionRef(req.QuizQuestionID); err != nil {
		return nil, err
	}
	option.Answer = req.Answer
	option.AnswerEn = req.AnswerEn
	option.QuizQuestionID = req.QuizQuestionID
	if err := s.Repo.UpdateAnswerOption(option); err != nil {
		return nil, err
	}
	return option, nil
}

func (s *QuizService) DeleteAnswerOption(id uint) (bool, error) {
	return s.Repo.DeleteAnswerOption(id)
}
