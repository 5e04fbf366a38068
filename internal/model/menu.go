package model

// Menu types. Only container menus may own submenus.
const (
	MenuTypeItem      = 0
	MenuTypeContainer = 1
)

// Menu is a top-level navigation entry. Sequence is the unique ordering key
// the navigation is sorted by.
type Menu struct {
	BaseModel
	Sequence  int       `gorm:"uniqueIndex" json:"sequence"`
	Link      string    `gorm:"size:50" json:"link"`
	Type      int       `gorm:"default:0" json:"type"`
	Caption   string    `gorm:"size:50;uniqueIndex" json:"caption"`
	CaptionEn string    `gorm:"size:50;uniqueIndex" json:"captionEn"`
	Submenus  []Submenu `gorm:"foreignKey:MenuID;constraint:OnDelete:CASCADE" json:"submenus,omitempty"`
}

func (Menu) TableName() string {
	return "menus"
}

// IsContainer reports whether the menu may own submenus.
func (m *Menu) IsContainer() bool {
	return m.Type == MenuTypeContainer
}

// LocalizedCaption returns the caption for the given language code.
func (m *Menu) LocalizedCaption(lang string) string {
	if lang == "en" {
		return m.CaptionEn
	}
	return m.Caption
}
