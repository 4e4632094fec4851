package models

const (
	MinRating = 1
	MaxRating = 5
)

type Testimonial struct {
	ID             uint   `gorm:"primaryKey" json:"id"`
	Rating         int    `gorm:"not null" json:"rating"`
	Content        string `gorm:"type:text;not null" json:"content"`
	Author         string `gorm:"type:text;not null" json:"author"`
	Position       string `gorm:"type:text;not null" json:"position"`
	AvatarInitials string `gorm:"column:avatar_initials;type:text;not null" json:"avatarInitials"`
}

type TestimonialPatch struct {
	Rating         *int
	Content        *string
	Author         *string
	Position       *string
	AvatarInitials *string
}

func (p TestimonialPatch) Apply(t *Testimonial) {
	if p.Rating != nil {
		t.Rating = *p.Rating
	}
	if p.Content != nil {
		t.Content = *p.Content
	}
	if p.Author != nil {
		t.Author = *p.Author
	}
	if p.Position != nil {
		t.Position = *p.Position
	}
	if p.AvatarInitials != nil {
		t.AvatarInitials = *p.AvatarInitials
	}
}
