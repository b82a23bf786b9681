package repository

import (
	"context"
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"

	"smartcampus/internal/model"
)

// newMockDB opens GORM over a sqlmock connection. Expectations are matched by
// substring; every executed statement is also recorded so tests can assert on
// the generated SQL itself.
func newMockDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock, *[]string) {
	t.Helper()

	var executed []string
	conn, smock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherFunc(
		func(expected, actual string) error {
			executed = append(executed, actual)
			if !strings.Contains(actual, expected) {
				return fmt.Errorf("statement %q does not contain %q", actual, expected)
			}
			return nil
		},
	)))
	assert.NoError(t, err)
	t.Cleanup(func() { conn.Close() })

	gdb, err := gorm.Open(mysql.New(mysql.Config{
		Conn:                      conn,
		SkipInitializeWithVersion: true,
	}), &gorm.Config{})
	assert.NoError(t, err)

	return gdb, smock, &executed
}

func TestCreateFeedbackTransaction(t *testing.T) {
	gdb, smock, executed := newMockDB(t)
	repo := NewCafeteriaRepository(gdb)

	fb := &model.Feedback{ItemID: "item-1", Rating: 4, Comment: "good", UserName: "John Doe"}
	fb.StampNew("fb-1", time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC))

	smock.ExpectBegin()
	smock.ExpectExec("INSERT INTO `feedback`").WillReturnResult(sqlmock.NewResult(1, 1))
	smock.ExpectExec("UPDATE menu_items").
		WithArgs(fb.Rating, fb.UpdatedAt, fb.ItemID).
		WillReturnResult(sqlmock.NewResult(0, 1))
	smock.ExpectCommit()

	assert.NoError(t, repo.CreateFeedback(context.Background(), fb))
	assert.NoError(t, smock.ExpectationsWereMet())

	// the bump and the derived mean ride a single statement
	update := (*executed)[len(*executed)-1]
	assert.Contains(t, update, "rating_sum = rating_sum + ?")
	assert.Contains(t, update, "rating_count = rating_count + 1")
	assert.Contains(t, update, "ROUND(rating_sum / rating_count, 1)")
}

func TestCreateFeedbackDanglingItem(t *testing.T) {
	gdb, smock, _ := newMockDB(t)
	repo := NewCafeteriaRepository(gdb)

	fb := &model.Feedback{ItemID: "no-such-item", Rating: 5}
	fb.StampNew("fb-1", time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC))

	smock.ExpectBegin()
	smock.ExpectExec("INSERT INTO `feedback`").WillReturnResult(sqlmock.NewResult(1, 1))
	// zero rows touched is not an error
	smock.ExpectExec("UPDATE menu_items").
		WithArgs(fb.Rating, fb.UpdatedAt, fb.ItemID).
		WillReturnResult(sqlmock.NewResult(0, 0))
	smock.ExpectCommit()

	assert.NoError(t, repo.CreateFeedback(context.Background(), fb))
	assert.NoError(t, smock.ExpectationsWereMet())
}

func TestCreateFeedbackInsertFailureRollsBack(t *testing.T) {
	gdb, smock, _ := newMockDB(t)
	repo := NewCafeteriaRepository(gdb)

	fb := &model.Feedback{ItemID: "item-1", Rating: 4}
	fb.StampNew("fb-1", time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC))

	smock.ExpectBegin()
	smock.ExpectExec("INSERT INTO `feedback`").WillReturnError(assert.AnError)
	smock.ExpectRollback()

	assert.Error(t, repo.CreateFeedback(context.Background(), fb))
	assert.NoError(t, smock.ExpectationsWereMet())
}
