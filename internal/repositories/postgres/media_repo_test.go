package postgres

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/atelier-works/portfolio-api/internal/models"
	"github.com/atelier-works/portfolio-api/internal/utils"
)

func testMedia(age time.Duration, url string) *models.Media {
	now := time.Now().UTC().Add(-age)
	return &models.Media{
		MediaID:   uuid.NewString(),
		Name:      "file",
		Type:      "application/pdf",
		Size:      123,
		URL:       url,
		Mime:      "application/pdf",
		CreatedAt: now,
		UpdatedAt: now,
	}
}

func TestMediaRepoCRUD(t *testing.T) {
	db := newTestDB(t)
	repo := NewMediaRepo(db)
	ctx := context.Background()

	m := testMedia(0, "uploads/documents/cv.pdf")
	require.NoError(t, repo.Insert(ctx, m))

	got, err := repo.GetByMediaID(ctx, m.MediaID)
	require.NoError(t, err)
	assert.Equal(t, m.URL, got.URL)

	exists, err := repo.Exists(ctx, m.MediaID)
	require.NoError(t, err)
	assert.True(t, exists)

	require.NoError(t, repo.Delete(ctx, m.MediaID))
	_, err = repo.GetByMediaID(ctx, m.MediaID)
	assert.ErrorIs(t, err, utils.ErrNotFound)
	assert.ErrorIs(t, repo.Delete(ctx, m.MediaID), utils.ErrNotFound)
}

func TestMediaRepoListPDFOlderThan(t *testing.T) {
	db := newTestDB(t)
	repo := NewMediaRepo(db)
	ctx := context.Background()

	agedPDF := testMedia(50*24*time.Hour, "uploads/documents/old.pdf")
	freshPDF := testMedia(10*24*time.Hour, "uploads/documents/new.pdf")
	agedImage := testMedia(50*24*time.Hour, "uploads/images/old.png")
	for _, m := range []*models.Media{agedPDF, freshPDF, agedImage} {
		require.NoError(t, repo.Insert(ctx, m))
	}

	rows, err := repo.ListPDFOlderThan(ctx, time.Now().UTC().Add(-45*24*time.Hour))
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, agedPDF.MediaID, rows[0].MediaID)
}
