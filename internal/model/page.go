package model

// Page is a static content page in both languages. Link is the public
// lookup key; resolution falls back to the numeric id when no link matches.
type Page struct {
	BaseModel
	Link      string `gorm:"size:50;index" json:"link"`
	Title     string `gorm:"size:50" json:"title"`
	TitleEn   string `gorm:"size:50" json:"titleEn"`
	Content   string `gorm:"type:text" json:"content"`
	ContentEn string `gorm:"type:text" json:"contentEn"`
	ImgName   string `gorm:"size:100" json:"imgName"`
}

func (Page) TableName() string {
	return "pages"
}

// LocalizedTitle returns the title for the given language code.
func (p *Page) LocalizedTitle(lang string) string {
	if lang == "en" {
		return p.TitleEn
	}
	return p.Title
}

// LocalizedContent returns the content for the given language code.
func (p *Page) LocalizedContent(lang string) string {
	if lang == "en" {
		return p.ContentEn
	}
	return p.Content
}
