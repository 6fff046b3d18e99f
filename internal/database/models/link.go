package models

// Link is one clickable entry on a profile's page. Position is a zero-based
// rank within the owning profile; it is assigned on insert and rewritten as
// a whole only by reorder. Hidden links keep their slot in the sequence.
type Link struct {
	ID        uint   `json:"id" gorm:"primaryKey"`
	ProfileID uint   `json:"profile_id" gorm:"not null;index" validate:"required"`
	Title     string `json:"title" gorm:"not null;size:100" validate:"required,min=1,max=100"`
	URL       string `json:"url" gorm:"not null;size:2000" validate:"required,url,max=2000"`
	Icon      string `json:"icon" gorm:"size:50" validate:"max=50"` // lucide icon name
	Position  int    `json:"order" gorm:"column:position;not null"`
	// No DB default on purpose: gorm skips zero-valued fields that carry a
	// default tag, which would turn an explicit false back into true.
	IsVisible bool `json:"is_visible" gorm:"not null"`
}

// TableName returns the table name for Link
func (Link) TableName() string {
	return "links"
}
