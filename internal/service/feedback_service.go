package service

import (
	"context"
	"time"

	"github.com/google/uuid"

	apperrors "smartcampus/internal/errors"
	"smartcampus/internal/model"
	"smartcampus/internal/repository"
)

// FeedbackService handles feedback submission and the derived menu rating.
type FeedbackService interface {
	// Submit stores the feedback and folds its rating into the menu item's
	// aggregate. The created feedback is returned, not the updated item.
	Submit(ctx context.Context, fb *model.Feedback) (*model.Feedback, error)
	ListByItem(ctx context.Context, itemID string) ([]model.Feedback, error)
}

type feedbackService struct {
	repo repository.CafeteriaRepository
	now  func() time.Time
}

// NewFeedbackService builds a FeedbackService over the cafeteria repository.
func NewFeedbackService(repo repository.CafeteriaRepository) FeedbackService {
	return &feedbackService{repo: repo, now: time.Now}
}

func (s *feedbackService) Submit(ctx context.Context, fb *model.Feedback) (*model.Feedback, error) {
	if fb.ItemID == "" || fb.Rating == 0 {
		return nil, apperrors.ErrMissingFields
	}
	if fb.UserName == "" {
		fb.UserName = model.FeedbackDefaultUserName
	}
	fb.StampNew(uuid.New().String(), s.now().UTC())
	if err := s.repo.CreateFeedback(ctx, fb); err != nil {
		return nil, err
	}
	return fb, nil
}

func (s *feedbackService) ListByItem(ctx context.Context, itemID string) ([]model.Feedback, error) {
	if itemID == "" {
		return nil, apperrors.ErrMissingItemID
	}
	return s.repo.FeedbackByItem(ctx, itemID)
}
