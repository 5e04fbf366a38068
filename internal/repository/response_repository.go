package repository

import (
	"cms_backend/internal/model"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// ResponseRepository persists anonymous poll responses and computes tallies.
type ResponseRepository struct {
	DB *gorm.DB
}

func NewResponseRepository(db *gorm.DB) *ResponseRepository {
	return &ResponseRepository{DB: db}
}

// RecordBatch inserts every answer of one submission in a single
// transaction. A failing row (for instance an unknown question or option id
// rejected by the foreign keys) rolls the whole batch back, so either all
// rows of a submission persist or none do.
func (r *ResponseRepository) RecordBatch(answers []model.QuizUserAnswer) error {
	if len(answers) == 0 {
		return nil
	}
	err := r.DB.Transaction(func(tx *gorm.DB) error {
		for i := range answers {
			if err := tx.Create(&answers[i]).Error; err != nil {
				return err
			}
		}
		return nil
	})
	return errors.Wrap(err, "record answer batch")
}

// PairCount is one (question, option) tally row.
type PairCount struct {
	QuizQuestionID     uint
	QuizAnswerOptionID uint
	Count              int64
}

// CountByPair tallies all responses ever recorded for the given questions,
// grouped by the exact (question, chosen option) pair. One grouped count
// query; recomputed on every chart render, never cached.
func (r *ResponseRepository) CountByPair(questionIDs []uint) ([]PairCount, error) {
	var counts []PairCount
	if len(questionIDs) == 0 {
		return counts, nil
	}
	err := r.DB.Model(&model.QuizUserAnswer{}).
		Select("quiz_question_id, quiz_answer_option_id, COUNT(*) as count").
		Where("quiz_question_id IN ?", questionIDs).
		Group("quiz_question_id, quiz_answer_option_id").
		Scan(&counts).Error
	return counts, errors.Wrap(err, "count answers by pair")
}
