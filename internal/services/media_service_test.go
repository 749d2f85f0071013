package services

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/atelier-works/portfolio-api/internal/models"
	pgrepo "github.com/atelier-works/portfolio-api/internal/repositories/postgres"
	"github.com/atelier-works/portfolio-api/internal/utils"
)

func newMediaTestService(t *testing.T) (MediaService, *fakeStore, pgrepo.MediaRepository, pgrepo.WorkRepository) {
	t.Helper()
	db := newTestDB(t)
	media := pgrepo.NewMediaRepo(db)
	works := pgrepo.NewWorkRepo(db)
	details := pgrepo.NewWorkDetailRepo(db)
	store := newFakeStore()
	return NewMediaService(media, works, details, store, quietLogger()), store, media, works
}

func pngUpload(name, content string) UploadInput {
	return UploadInput{
		FileName: name,
		Mimetype: "image/png",
		Size:     int64(len(content)),
		Body:     strings.NewReader(content),
	}
}

func TestMediaUpload(t *testing.T) {
	svc, store, _, _ := newMediaTestService(t)
	ctx := context.Background()

	m, err := svc.Upload(ctx, pngUpload("logo.png", "fake png bytes"))
	require.NoError(t, err)
	assert.NotEmpty(t, m.MediaID)
	assert.True(t, strings.HasPrefix(m.URL, "uploads/images/"))
	assert.True(t, strings.HasSuffix(m.URL, ".png"))
	assert.True(t, store.Exists(m.URL))

	got, err := svc.Get(ctx, m.MediaID)
	require.NoError(t, err)
	assert.Equal(t, m.URL, got.URL)
}

func TestMediaUploadGate(t *testing.T) {
	svc, store, _, _ := newMediaTestService(t)
	ctx := context.Background()

	_, err := svc.Upload(ctx, UploadInput{
		FileName: "anim.gif", Mimetype: "image/gif", Size: 10, Body: strings.NewReader("GIF89a"),
	})
	require.Error(t, err)
	assert.Equal(t, "File type not allowed.", utils.Message(err, ""))

	_, err = svc.Upload(ctx, UploadInput{
		FileName: "logo.jpg", Mimetype: "image/png", Size: 10, Body: strings.NewReader("x"),
	})
	require.Error(t, err)
	assert.Equal(t, "Invalid file extension.", utils.Message(err, ""))

	// rejected PDFs leave nothing behind
	evil := "%PDF-1.4 << /OpenAction << /S /JavaScript /JS (x) >> >>"
	_, err = svc.Upload(ctx, UploadInput{
		FileName: "cv.pdf", Mimetype: "application/pdf", Size: int64(len(evil)), Body: strings.NewReader(evil),
	})
	require.Error(t, err)
	assert.Equal(t, "PDF security check failed: High-risk content detected", utils.Message(err, ""))
	assert.Empty(t, store.files)
}

func TestMediaUploadAcceptsBenignPDF(t *testing.T) {
	svc, _, _, _ := newMediaTestService(t)

	content := "%PDF-1.4 1 0 obj << /Type /Catalog >> endobj"
	m, err := svc.Upload(context.Background(), UploadInput{
		FileName: "cv.pdf", Mimetype: "application/pdf", Size: int64(len(content)), Body: strings.NewReader(content),
	})
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(m.URL, "uploads/documents/"))
}

func TestMediaDeleteReferentialGuard(t *testing.T) {
	svc, store, media, works := newMediaTestService(t)
	ctx := context.Background()

	m, err := svc.Upload(ctx, pngUpload("hero.png", "fake png bytes"))
	require.NoError(t, err)

	now := time.Now().UTC()
	require.NoError(t, works.Insert(ctx, &models.Work{
		WorkID:         uuid.NewString(),
		Name:           "Campaign",
		Slug:           "campaign",
		LandscapeImage: m.MediaID,
		CreatedAt:      now,
		UpdatedAt:      now,
	}))

	err = svc.Delete(ctx, m.MediaID)
	require.Error(t, err)
	assert.True(t, utils.IsCode(err, utils.CodeConflict))
	assert.Equal(t, "Cannot delete media as it is being used in work data or work details", utils.Message(err, ""))

	// row and file both survive
	_, err = media.GetByMediaID(ctx, m.MediaID)
	assert.NoError(t, err)
	assert.True(t, store.Exists(m.URL))
}

func TestMediaDeleteUnreferenced(t *testing.T) {
	svc, store, _, _ := newMediaTestService(t)
	ctx := context.Background()

	m, err := svc.Upload(ctx, pngUpload("logo.png", "fake png bytes"))
	require.NoError(t, err)

	require.NoError(t, svc.Delete(ctx, m.MediaID))
	assert.False(t, store.Exists(m.URL))

	err = svc.Delete(ctx, m.MediaID)
	assert.True(t, utils.IsCode(err, utils.CodeNotFound))
}

func TestMediaBulkDeleteAccounting(t *testing.T) {
	svc, _, _, works := newMediaTestService(t)
	ctx := context.Background()

	deletable, err := svc.Upload(ctx, pngUpload("a.png", "a"))
	require.NoError(t, err)
	inUse, err := svc.Upload(ctx, pngUpload("b.png", "b"))
	require.NoError(t, err)

	now := time.Now().UTC()
	require.NoError(t, works.Insert(ctx, &models.Work{
		WorkID:      uuid.NewString(),
		Name:        "Campaign",
		Slug:        "campaign",
		SquareImage: inUse.MediaID,
		CreatedAt:   now,
		UpdatedAt:   now,
	}))

	missing := uuid.NewString()
	res := svc.BulkDelete(ctx, []string{deletable.MediaID, inUse.MediaID, missing})

	assert.Equal(t, []string{deletable.MediaID}, res.Success)
	require.Len(t, res.Failed, 2)
	assert.Equal(t, inUse.MediaID, res.Failed[0].MediaID)
	assert.Equal(t, "Media is in use", res.Failed[0].Reason)
	assert.Equal(t, missing, res.Failed[1].MediaID)
	assert.Equal(t, "Media not found", res.Failed[1].Reason)
}
