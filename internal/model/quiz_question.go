package model

// QuizQuestion is a single question of a quiz, in both languages.
type QuizQuestion struct {
	BaseModel
	Question   string             `gorm:"size:255" json:"question"`
	QuestionEn string             `gorm:"size:255" json:"questionEn"`
	QuizID     uint               `gorm:"index" json:"quizId"`
	Quiz       *Quiz              `gorm:"foreignKey:QuizID" json:"quiz,omitempty"`
	Answers    []QuizAnswerOption `gorm:"foreignKey:QuizQuestionID;constraint:OnDelete:CASCADE" json:"answers,omitempty"`
}

func (QuizQuestion) TableName() string {
	return "quiz_questions"
}

// LocalizedQuestion returns the question text for the given language code.
func (q *QuizQuestion) LocalizedQuestion(lang string) string {
	if lang == "en" {
		return q.QuestionEn
	}
	return q.Question
}
