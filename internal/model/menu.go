package model

// MenuItem is a cafeteria menu entry. Rating is derived: the mean of all
// feedback ratings for this item rounded to one decimal place, kept
// consistent by bumping rating_sum and rating_count atomically with each
// feedback insert.
type MenuItem struct {
	Record
	Name        string  `json:"name" gorm:"size:255;not null"`
	Price       float64 `json:"price" gorm:"not null"`
	Category    string  `json:"category" gorm:"size:64;not null"`
	Description string  `json:"description" gorm:"type:text"`
	Available   bool    `json:"available"`
	Image       *string `json:"image" gorm:"size:512"`
	Rating      float64 `json:"rating"`
	RatingSum   float64 `json:"-"`
	RatingCount int64   `json:"reviewCount"`
}

// TableName pins the name referenced by the feedback aggregate statement.
func (MenuItem) TableName() string { return "menu_items" }

// MenuItemRatingColumns are maintained solely by the feedback aggregate
// statement; the generic menu write-back must never touch them, or a stale
// read would revert a concurrent feedback bump.
var MenuItemRatingColumns = []string{"rating", "rating_sum", "rating_count"}
