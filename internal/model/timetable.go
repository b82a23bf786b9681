package model

// TimetableEntry is one scheduled class slot.
type TimetableEntry struct {
	Record
	Subject string `json:"subject" gorm:"size:255;not null"`
	Time    string `json:"time" gorm:"size:64;not null"`
	Room    string `json:"room" gorm:"size:64;not null"`
	Faculty string `json:"faculty" gorm:"size:255;not null"`
	Day     string `json:"day" gorm:"size:32;not null"`
}

// TableName overrides the default pluralization.
func (TimetableEntry) TableName() string { return "timetable_entries" }
