package model

// QuizUserAnswer is one recorded choice of an anonymous respondent: a
// (question, chosen option) pair. No user identity is attached. Rows
// accumulate across all submissions ever made; tallies count them fresh on
// every chart render.
type QuizUserAnswer struct {
	BaseModel
	QuizQuestionID     uint              `gorm:"index" json:"quizQuestionId"`
	QuizQuestion       *QuizQuestion     `gorm:"foreignKey:QuizQuestionID;constraint:OnDelete:CASCADE" json:"quizQuestion,omitempty"`
	QuizAnswerOptionID uint              `gorm:"index" json:"quizAnswerOptionId"`
	QuizAnswerOption   *QuizAnswerOption `gorm:"foreignKey:QuizAnswerOptionID;constraint:OnDelete:CASCADE" json:"quizAnswerOption,omitempty"`
}

func (QuizUserAnswer) TableName() string {
	return "quiz_user_answers"
}
