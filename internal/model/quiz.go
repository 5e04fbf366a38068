package model

// Quiz is a poll or quiz shown on the public site. Resolution on the public
// route is by name first, numeric id second.
type Quiz struct {
	BaseModel
	Name      string         `gorm:"size:100;index" json:"name"`
	NameEn    string         `gorm:"size:100" json:"nameEn"`
	Questions []QuizQuestion `gorm:"foreignKey:QuizID;constraint:OnDelete:CASCADE" json:"questions,omitempty"`
}

func (Quiz) TableName() string {
	return "quizzes"
}

// LocalizedName returns the quiz name for the given language code.
func (q *Quiz) LocalizedName(lang string) string {
	if lang == "en" {
		return q.NameEn
	}
	return q.Name
}
