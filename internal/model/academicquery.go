package model

// AcademicQuery statuses and default priority.
const (
	QueryStatusOpen       = "Open"
	QueryStatusInProgress = "InProgress"
	QueryStatusResolved   = "Resolved"

	QueryDefaultPriority = "Medium"
)

// AcademicQuery is a student question routed to faculty. The response fields
// stay null until staff answer through an update.
type AcademicQuery struct {
	Record
	Title        string  `json:"title" gorm:"size:255;not null"`
	Description  string  `json:"description" gorm:"type:text;not null"`
	Category     string  `json:"category" gorm:"size:64;not null"`
	Priority     string  `json:"priority" gorm:"size:32"`
	Status       string  `json:"status" gorm:"size:32"`
	StudentName  string  `json:"studentName" gorm:"size:255"`
	StudentEmail string  `json:"studentEmail" gorm:"size:255"`
	Response     *string `json:"response" gorm:"type:text"`
	RespondedBy  *string `json:"respondedBy" gorm:"size:255"`
	ResponseDate *string `json:"responseDate" gorm:"size:32"`
}

// TableName overrides the default pluralization.
func (AcademicQuery) TableName() string { return "academic_queries" }
