package models

// PortfolioItem is a showcased event.
// Role and Tags are stored as JSON so the schema works on postgres and sqlite alike.
type PortfolioItem struct {
	ID          uint     `gorm:"primaryKey" json:"id"`
	Title       string   `gorm:"type:text;not null" json:"title"`
	Category    string   `gorm:"type:text;not null" json:"category"`
	Venue       *string  `gorm:"type:text" json:"venue"`
	ImageURL    string   `gorm:"column:image_url;type:text;not null" json:"imageUrl"`
	Description string   `gorm:"type:text;not null" json:"description"`
	Overview    string   `gorm:"type:text;not null" json:"overview"`
	Role        []string `gorm:"type:text;serializer:json;not null" json:"role"`
	Results     string   `gorm:"type:text;not null" json:"results"`
	Tags        []string `gorm:"type:text;serializer:json;not null" json:"tags"`
	Featured    bool     `gorm:"not null;default:false" json:"featured"`
}

// PortfolioPatch carries a partial update; nil fields are left untouched.
type PortfolioPatch struct {
	Title       *string
	Category    *string
	Venue       *string
	ImageURL    *string
	Description *string
	Overview    *string
	Role        []string
	Results     *string
	Tags        []string
	Featured    *bool
}

// Apply copies the supplied fields onto item.
func (p PortfolioPatch) Apply(item *PortfolioItem) {
	if p.Title != nil {
		item.Title = *p.Title
	}
	if p.Category != nil {
		item.Category = *p.Category
	}
	if p.Venue != nil {
		// A blank venue clears it, as a blank venue on create is stored as null
		item.Venue = nil
		if v := *p.Venue; v != "" {
			item.Venue = &v
		}
	}
	if p.ImageURL != nil {
		item.ImageURL = *p.ImageURL
	}
	if p.Description != nil {
		item.Description = *p.Description
	}
	if p.Overview != nil {
		item.Overview = *p.Overview
	}
	if p.Role != nil {
		item.Role = append([]string(nil), p.Role...)
	}
	if p.Results != nil {
		item.Results = *p.Results
	}
	if p.Tags != nil {
		item.Tags = append([]string(nil), p.Tags...)
	}
	if p.Featured != nil {
		item.Featured = *p.Featured
	}
}
