package models

import "time"

// ContactSubmission is a message left through the public contact form.
// CreatedAt and Read are owned by the server; Read only ever moves to true.
type ContactSubmission struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Name      string    `gorm:"type:text;not null" json:"name"`
	Email     string    `gorm:"type:text;not null" json:"email"`
	Phone     *string   `gorm:"type:text" json:"phone"`
	EventType *string   `gorm:"column:event_type;type:text" json:"eventType"`
	Message   string    `gorm:"type:text;not null" json:"message"`
	CreatedAt time.Time `gorm:"not null;index" json:"createdAt"`
	Read      bool      `gorm:"not null;default:false" json:"read"`
}
