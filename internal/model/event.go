package model

// Event default values applied at creation.
const (
	EventDefaultCategory = "General"
	EventDefaultStatus   = "Upcoming"
)

// Event is a campus event announcement.
type Event struct {
	Record
	Title       string `json:"title" gorm:"size:255;not null"`
	Date        string `json:"date" gorm:"size:32;not null"`
	Time        string `json:"time" gorm:"size:64;not null"`
	Location    string `json:"location" gorm:"size:255;not null"`
	Description string `json:"description" gorm:"type:text"`
	Category    string `json:"category" gorm:"size:64"`
	Status      string `json:"status" gorm:"size:32"`
}
