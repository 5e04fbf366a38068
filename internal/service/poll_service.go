package service

import (
	"cms_backend/internal/model"
	"cms_backend/internal/repository"
	"cms_backend/internal/util"
	"cms_backend/pkg/logger"
	"strconv"

	"github.com/pkg/errors"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// PollService is the public quiz path: resolve a quiz for display, record an
// anonymous submission atomically, and tally all responses ever made for the
// chart.
type PollService struct {
	Quizzes   *repository.QuizRepository
	Responses *repository.ResponseRepository
}

func NewPollService(quizzes *repository.QuizRepository, responses *repository.ResponseRepository) *PollService {
	return &PollService{Quizzes: quizzes, Responses: responses}
}

// Resolve loads a quiz by name (falling back to numeric id) with its
// questions and options in creation order.
func (s *PollService) Resolve(key string) (*model.Quiz, error) {
	quiz, err := s.Quizzes.FindBySlugOrID(key)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, util.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return s.Quizzes.FindFull(quiz.ID)
}

// Submit records one anonymous submission. The payload maps question id to
// the chosen option id, one entry per answered question. Every entry is
// recorded as-is: whether the question belongs to this quiz, or the option
// to that question, is deliberately not checked. The batch is atomic - an
// entry whose ids do not parse, or that the foreign keys reject, aborts the
// whole submission with zero rows persisted.
func (s *PollService) Submit(payload map[string]string) error {
	if len(payload) == 0 {
		return util.ErrEmptySubmission
	}

	answers := make([]model.QuizUserAnswer, 0, len(payload))
	for questionKey, optionValue := range payload {
		questionID, err := strconv.ParseUint(questionKey, 10, 32)
		if err != nil {
			return util.ErrMalformedSubmission
		}
		optionID, err := strconv.ParseUint(optionValue, 10, 32)
		if err != nil {
			return util.ErrMalformedSubmission
		}
		answers = append(answers, model.QuizUserAnswer{
			QuizQuestionID:     uint(questionID),
			QuizAnswerOptionID: uint(optionID),
		})
	}

	if err := s.Responses.RecordBatch(answers); err != nil {
		logger.Log.Warn("poll submission rejected", zap.Error(err))
		return util.ErrMalformedSubmission
	}
	return nil
}

// OptionCount is one option of a question with its cumulative response count.
type OptionCount struct {
	Option model.QuizAnswerOption
	Count  int64
}

// QuestionTally is the tally of one question, option counts aligned to the
// question's option order.
type QuestionTally struct {
	Question model.QuizQuestion
	Counts   []OptionCount
}

// Tally computes the cumulative per-option response counts for the quiz:
// questions in creation order, options in creation order, each count covering
// every submission ever recorded for that exact (question, option) pair.
// Recomputed fresh on every chart render.
func (s *PollService) Tally(quiz *model.Quiz) ([]QuestionTally, error) {
	questionIDs := make([]uint, len(quiz.Questions))
	for i, q := range quiz.Questions {
		questionIDs[i] = q.ID
	}

	pairs, err := s.Responses.CountByPair(questionIDs)
	if err != nil {
		return nil, err
	}

	type pairKey struct{ question, option uint }
	counts := make(map[pairKey]int64, len(pairs))
	for _, p := range pairs {
		counts[pairKey{p.QuizQuestionID, p.QuizAnswerOptionID}] = p.Count
	}

	tallies := make([]QuestionTally, len(quiz.Questions))
	for i, question := range quiz.Questions {
		tally := QuestionTally{Question: question, Counts: make([]OptionCount, len(question.Answers))}
		for j, option := range question.Answers {
			tally.Counts[j] = OptionCount{
				Option: option,
				Count:  counts[pairKey{question.ID, option.ID}],
			}
		}
		tallies[i] = tally
	}
	return tallies, nil
}

// CountMatrix flattens a tally into the per-question count sequences the
// chart is drawn from.
func CountMatrix(tallies []QuestionTally) [][]int64 {
	matrix := make([][]int64, len(tallies))
	for i, t := range tallies {
		row := make([]int64, len(t.Counts))
		for j, c := range t.Counts {
			row[j] = c.Count
		}
		matrix[i] = row
	}
	return matrix
}
