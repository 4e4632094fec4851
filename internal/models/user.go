package models

// User is an admin account for the dashboard.
type User struct {
	ID       uint   `gorm:"primaryKey" json:"id"`
	Username string `gorm:"type:varchar(50);uniqueIndex;not null" json:"username"`
	Password string `gorm:"type:varchar(255);not null" json:"-"` // Never expose password hash in JSON
}

// PublicUser is the response shape of a user; it carries no credential material.
type PublicUser struct {
	ID       uint   `json:"id"`
	Username string `json:"username"`
}

func (u *User) Public() PublicUser {
	return PublicUser{ID: u.ID, Username: u.Username}
}
