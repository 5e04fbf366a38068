package model

// QuizAnswerOption is one selectable answer of a quiz question.
type QuizAnswerOption struct {
	BaseModel
	Answer         string        `gorm:"type:text" json:"answer"`
	AnswerEn       string        `gorm:"type:text" json:"answerEn"`
	QuizQuestionID uint          `gorm:"index" json:"quizQuestionId"`
	QuizQuestion   *QuizQuestion `gorm:"foreignKey:QuizQuestionID" json:"quizQuestion,omitempty"`
}

func (QuizAnswerOption) TableName() string {
	return "quiz_answer_options"
}

// LocalizedAnswer returns the answer text for the given language code.
func (a *QuizAnswerOption) LocalizedAnswer(lang string) string {
	if lang == "en" {
		return a.AnswerEn
	}
	return a.Answer
}
