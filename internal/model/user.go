package model

import (
	"crypto/md5"
	"fmt"
	"time"
)

// Permission levels. The scale is open ended; PermissionAdmin is the highest
// level the panel hands out.
const (
	PermissionNone  = 0
	PermissionAdmin = 100
)

// User is a locally provisioned account. Login never creates users: the
// federated callback only matches the returned email against existing rows.
type User struct {
	BaseModel
	Nickname     string    `gorm:"size:32;uniqueIndex" json:"nickname"`
	Email        string    `gorm:"size:80;uniqueIndex" json:"email"`
	Permission   int       `gorm:"default:0" json:"permission"`
	RegisterDate time.Time `json:"registerDate"`
}

func (User) TableName() string {
	return "users"
}

// AvatarURL returns the gravatar source for the user's email.
func (u *User) AvatarURL(size int) string {
	return fmt.Sprintf("https://www.gravatar.com/avatar/%x?d=mm&s=%d", md5.Sum([]byte(u.Email)), size)
}
