package services

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	pgrepo "github.com/atelier-works/portfolio-api/internal/repositories/postgres"
	"github.com/atelier-works/portfolio-api/internal/utils"
)

func TestWorkCreateDerivesUniqueSlugs(t *testing.T) {
	db := newTestDB(t)
	svc := NewWorkService(pgrepo.NewWorkRepo(db), pgrepo.NewMediaRepo(db))
	ctx := context.Background()

	first, err := svc.Create(ctx, WorkRequest{Name: "Brand Film"})
	require.NoError(t, err)
	assert.Equal(t, "brand-film", first.Slug)

	second, err := svc.Create(ctx, WorkRequest{Name: "Brand Film"})
	require.NoError(t, err)
	assert.Equal(t, "brand-film-1", second.Slug)

	third, err := svc.Create(ctx, WorkRequest{Name: "Brand Film"})
	require.NoError(t, err)
	assert.Equal(t, "brand-film-2", third.Slug)
}

func TestWorkCreateChecksMediaReferences(t *testing.T) {
	db := newTestDB(t)
	svc := NewWorkService(pgrepo.NewWorkRepo(db), pgrepo.NewMediaRepo(db))

	_, err := svc.Create(context.Background(), WorkRequest{
		Name:           "Campaign",
		LandscapeImage: uuid.NewString(),
	})
	require.Error(t, err)
	assert.True(t, utils.IsCode(err, utils.CodeNotFound))
	assert.Equal(t, "landscapeImage media not found", utils.Message(err, ""))
}

func TestWorkGetBySlug(t *testing.T) {
	db := newTestDB(t)
	svc := NewWorkService(pgrepo.NewWorkRepo(db), pgrepo.NewMediaRepo(db))
	ctx := context.Background()

	created, err := svc.Create(ctx, WorkRequest{Name: "Showreel", Data: "{\"theme\":\"dark\"}"})
	require.NoError(t, err)

	got, err := svc.GetBySlug(ctx, "showreel")
	require.NoError(t, err)
	assert.Equal(t, created.WorkID, got.WorkID)

	_, err = svc.GetBySlug(ctx, "no-such-slug")
	assert.True(t, utils.IsCode(err, utils.CodeNotFound))
}

func TestWorkUpdateAndDelete(t *testing.T) {
	db := newTestDB(t)
	svc := NewWorkService(pgrepo.NewWorkRepo(db), pgrepo.NewMediaRepo(db))
	ctx := context.Background()

	created, err := svc.Create(ctx, WorkRequest{Name: "Campaign"})
	require.NoError(t, err)

	updated, err := svc.Update(ctx, created.WorkID, WorkRequest{Name: "Campaign", WebsiteLink: "https://example.com"})
	require.NoError(t, err)
	assert.Equal(t, "https://example.com", updated.WebsiteLink)
	// the slug is minted once at creation and survives updates
	assert.Equal(t, created.Slug, updated.Slug)

	require.NoError(t, svc.Delete(ctx, created.WorkID))
	_, err = svc.GetByID(ctx, created.WorkID)
	assert.True(t, utils.IsCode(err, utils.CodeNotFound))
}

func TestWorkValidation(t *testing.T) {
	db := newTestDB(t)
	svc := NewWorkService(pgrepo.NewWorkRepo(db), pgrepo.NewMediaRepo(db))

	_, err := svc.Create(context.Background(), WorkRequest{})
	require.Error(t, err)
	assert.True(t, utils.IsCode(err, utils.CodeInvalidArgument))

	_, err = svc.Create(context.Background(), WorkRequest{Name: "X", LandscapeImage: "not-a-uuid"})
	require.Error(t, err)
	assert.True(t, utils.IsCode(err, utils.CodeInvalidArgument))
}
