package model

// Submenu belongs to exactly one container menu (Menu with type=1).
type Submenu struct {
	BaseModel
	Sequence  int    `gorm:"index" json:"sequence"`
	Link      string `gorm:"size:50" json:"link"`
	Caption   string `gorm:"size:50;uniqueIndex" json:"caption"`
	CaptionEn string `gorm:"size:50;uniqueIndex" json:"captionEn"`
	MenuID    uint   `gorm:"index" json:"menuId"`
	Menu      *Menu  `gorm:"foreignKey:MenuID" json:"menu,omitempty"`
}

func (Submenu) TableName() string {
	return "submenus"
}

// LocalizedCaption returns the caption for the given language code.
func (s *Submenu) LocalizedCaption(lang string) string {
	if lang == "en" {
		return s.CaptionEn
	}
	return s.Caption
}
