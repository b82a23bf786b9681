package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	apperrors "smartcampus/internal/errors"
	"smartcampus/internal/model"
)

// MockMenuService is a mock implementation of the menu resource service.
type MockMenuService struct {
	mock.Mock
}

func (m *MockMenuService) List(ctx context.Context) ([]model.MenuItem, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.MenuItem), args.Error(1)
}

func (m *MockMenuService) Create(ctx context.Context, rec *model.MenuItem) (*model.MenuItem, error) {
	args := m.Called(ctx, rec)
	if args.Error(1) != nil {
		return nil, args.Error(1)
	}
	rec.ID = "item-1"
	return rec, nil
}

func (m *MockMenuService) Update(ctx context.Context, id string, apply func(*model.MenuItem)) (*model.MenuItem, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	rec := args.Get(0).(*model.MenuItem)
	apply(rec)
	return rec, args.Error(1)
}

func (m *MockMenuService) Delete(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// MockImageStore is a mock implementation of storage.ImageStore.
type MockImageStore struct {
	mock.Mock
}

func (m *MockImageStore) Store(ctx context.Context, prefix, id, dataURI string) (string, error) {
	args := m.Called(ctx, prefix, id, dataURI)
	return args.String(0), args.Error(1)
}

func TestMenuUpdateMissingIDSkipsUpload(t *testing.T) {
	svc := new(MockMenuService)
	store := new(MockImageStore)
	h := NewCafeteriaHandler(svc, nil, nil, store)

	body := `{"image":"data:image/jpeg;base64,Zm9v","price":90}`
	c, _ := newTestContext(http.MethodPut, "/cafeteria", body)

	assert.ErrorIs(t, h.UpdateMenuItem(c), apperrors.ErrMissingID)
	// nothing may reach the object store for a request that cannot succeed
	store.AssertNotCalled(t, "Store", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	svc.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
}

func TestMenuUpdateWithImage(t *testing.T) {
	svc := new(MockMenuService)
	store := new(MockImageStore)
	h := NewCafeteriaHandler(svc, nil, nil, store)

	stored := &model.MenuItem{Name: "Veg Thali", Price: 80, Category: "Meals", Available: true}
	stored.ID = "item-1"
	svc.On("Update", mock.Anything, "item-1").Return(stored, nil)
	store.On("Store", mock.Anything, "cafeteria", "item-1", "data:image/jpeg;base64,Zm9v").
		Return("https://files.example/file/campus/cafeteria/item-1.jpg", nil)

	body := `{"id":"item-1","price":90,"image":"data:image/jpeg;base64,Zm9v"}`
	c, rec := newTestContext(http.MethodPut, "/cafeteria", body)

	assert.NoError(t, h.UpdateMenuItem(c))
	assert.Equal(t, http.StatusOK, rec.Code)

	var got model.MenuItem
	assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	assert.Equal(t, float64(90), got.Price)
	assert.NotNil(t, got.Image)
	assert.Equal(t, "https://files.example/file/campus/cafeteria/item-1.jpg", *got.Image)
	store.AssertExpectations(t)
}

func TestMenuCreateDefaultsAvailable(t *testing.T) {
	svc := new(MockMenuService)
	h := NewCafeteriaHandler(svc, nil, nil, nil)

	svc.On("Create", mock.Anything, mock.AnythingOfType("*model.MenuItem")).Return(nil, nil)

	body := `{"name":"Veg Thali","price":80,"category":"Meals"}`
	c, rec := newTestContext(http.MethodPost, "/cafeteria", body)

	assert.NoError(t, h.CreateMenuItem(c))
	assert.Equal(t, http.StatusCreated, rec.Code)

	var got model.MenuItem
	assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	assert.True(t, got.Available)
}
