package store

import (
	"context"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/instaboost/apiserver/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReviewCreate(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO reviews (user_id, rating, comment, created_at)")).
		WithArgs(1, 5, "great", sqlmock.AnyArg()).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(3))

	repo := NewReviewRepository(db)
	review, err := repo.Create(context.Background(), types.Review{UserID: 1, Rating: 5, Comment: "great"})
	require.NoError(t, err)
	assert.Equal(t, 3, review.ID)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestReviewList(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	rows := sqlmock.NewRows([]string{"id", "user_id", "rating", "comment", "created_at"}).
		AddRow(1, 1, 5, "first", time.Now()).
		AddRow(2, 1, 2, "second", time.Now())
	mock.ExpectQuery(regexp.QuoteMeta("SELECT id, user_id, rating, comment, created_at FROM reviews ORDER BY id")).
		WillReturnRows(rows)

	repo := NewReviewRepository(db)
	reviews, err := repo.List(context.Background())
	require.NoError(t, err)
	require.Len(t, reviews, 2)
	assert.Equal(t, "first", reviews[0].Comment)
	assert.Equal(t, 2, reviews[1].Rating)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestReviewListEmpty(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectQuery(regexp.QuoteMeta("SELECT id, user_id, rating, comment, created_at FROM reviews")).
		WillReturnRows(sqlmock.NewRows([]string{"id", "user_id", "rating", "comment", "created_at"}))

	repo := NewReviewRepository(db)
	reviews, err := repo.List(context.Background())
	require.NoError(t, err)
	assert.NotNil(t, reviews)
	assert.Empty(t, reviews)
}
