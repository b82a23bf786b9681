package model

// FeedbackDefaultUserName is used when a submission carries no name.
const FeedbackDefaultUserName = "Anonymous"

// Feedback is a rating left for a cafeteria menu item.
type Feedback struct {
	Record
	ItemID   string  `json:"itemId" gorm:"size:36;not null;index"`
	Rating   float64 `json:"rating" gorm:"not null"`
	Comment  string  `json:"comment" gorm:"type:text"`
	UserName string  `json:"userName" gorm:"size:255"`
}

// TableName overrides the irregular default pluralization.
func (Feedback) TableName() string { return "feedback" }
