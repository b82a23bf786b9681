package repository

import (
	"context"

	"gorm.io/gorm"

	"smartcampus/internal/model"
)

// CafeteriaRepository covers the feedback operations that go beyond plain
// resource CRUD: the insert-plus-aggregate write and the per-item listing.
type CafeteriaRepository interface {
	CreateFeedback(ctx context.Context, fb *model.Feedback) error
	FeedbackByItem(ctx context.Context, itemID string) ([]model.Feedback, error)
}

type cafeteriaRepository struct {
	db *gorm.DB
}

// NewCafeteriaRepository creates a new cafeteria repository.
func NewCafeteriaRepository(db *gorm.DB) CafeteriaRepository {
	return &cafeteriaRepository{db: db}
}

// CreateFeedback persists the feedback and folds its rating into the menu
// item's aggregate within one transaction. The aggregate bump is a single
// UPDATE so concurrent submissions for the same item cannot lose ratings;
// MySQL applies SET assignments left to right, so rating sees the new sum
// and count. A feedback referencing no menu item still persists: the update
// then touches zero rows.
func (r *cafeteriaRepository) CreateFeedback(ctx context.Context, fb *model.Feedback) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(fb).Error; err != nil {
			return err
		}
		return tx.Exec(
			`UPDATE menu_items
			    SET rating_sum = rating_sum + ?,
			        rating_count = rating_count + 1,
			        rating = ROUND(rating_sum / rating_count, 1),
			        updated_at = ?
			  WHERE id = ?`,
			fb.Rating, fb.UpdatedAt, fb.ItemID,
		).Error
	})
}

// FeedbackByItem returns all feedback for one menu item, unordered.
func (r *cafeteriaRepository) FeedbackByItem(ctx context.Context, itemID string) ([]model.Feedback, error) {
	var fbs []model.Feedback
	if err := r.db.WithContext(ctx).Where("item_id = ?", itemID).Find(&fbs).Error; err != nil {
		return nil, err
	}
	return fbs, nil
}
