package model

// LostFoundItem statuses.
const (
	LostFoundStatusLost    = "Lost"
	LostFoundStatusFound   = "Found"
	LostFoundStatusClaimed = "Claimed"
)

// LostFoundItem is a reported lost or found belonging.
type LostFoundItem struct {
	Record
	Title       string  `json:"title" gorm:"size:255;not null"`
	Description string  `json:"description" gorm:"type:text;not null"`
	Category    string  `json:"category" gorm:"size:64;not null"`
	Location    string  `json:"location" gorm:"size:255;not null"`
	Status      string  `json:"status" gorm:"size:32"`
	ReportedBy  string  `json:"reportedBy" gorm:"size:255"`
	Contact     string  `json:"contact" gorm:"size:255"`
	Image       *string `json:"image" gorm:"size:512"`
	Date        string  `json:"date" gorm:"size:16"`
}

// TableName overrides the default pluralization.
func (LostFoundItem) TableName() string { return "lostfound_items" }
