package postgres

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	gormsqlite "gorm.io/driver/sqlite"
	"gorm.io/gorm"
	_ "modernc.org/sqlite"

	"github.com/atelier-works/portfolio-api/internal/models"
)

// Opens the schema with foreign key enforcement switched on, using the same
// gorm settings as production. Media is referenced optionally from several
// tables, so migration must not emit FK constraints in either direction: a
// media row has to be insertable before anything references it, and works
// with empty image slots have to be insertable at all.
func newEnforcingDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared&_pragma=foreign_keys(1)", uuid.NewString())
	db, err := gorm.Open(gormsqlite.Dialector{DriverName: "sqlite", DSN: dsn}, &gorm.Config{
		DisableForeignKeyConstraintWhenMigrating: true,
	})
	require.NoError(t, err)

	require.NoError(t, db.AutoMigrate(
		&models.Media{},
		&models.Work{},
		&models.WorkDetail{},
		&models.InstagramPost{},
		&models.ContactSubmission{},
		&models.CareerSubmission{},
	))
	return db
}

func TestSchemaAllowsUnreferencedMedia(t *testing.T) {
	db := newEnforcingDB(t)
	ctx := context.Background()

	media := NewMediaRepo(db)
	require.NoError(t, media.Insert(ctx, testMedia(0, "uploads/images/fresh.png")))

	works := NewWorkRepo(db)
	now := time.Now().UTC()
	require.NoError(t, works.Insert(ctx, &models.Work{
		WorkID:    uuid.NewString(),
		Name:      "No images yet",
		Slug:      "no-images-yet",
		CreatedAt: now,
		UpdatedAt: now,
	}))
}

func TestSchemaAssociationsResolveToMedia(t *testing.T) {
	db := newEnforcingDB(t)
	ctx := context.Background()

	media := NewMediaRepo(db)
	works := NewWorkRepo(db)
	details := NewWorkDetailRepo(db)

	img := testMedia(0, "uploads/images/hero.png")
	attach := testMedia(0, "uploads/images/still.png")
	require.NoError(t, media.Insert(ctx, img))
	require.NoError(t, media.Insert(ctx, attach))

	now := time.Now().UTC()
	workID := uuid.NewString()
	require.NoError(t, works.Insert(ctx, &models.Work{
		WorkID:         workID,
		Name:           "Feature",
		Slug:           "feature",
		LandscapeImage: img.MediaID,
		CreatedAt:      now,
		UpdatedAt:      now,
	}))
	require.NoError(t, details.Insert(ctx, &models.WorkDetail{
		WorkDetailID: uuid.NewString(),
		Name:         "Still frame",
		VideoURL:     "https://example.com/v",
		Media:        attach.MediaID,
		WorkID:       workID,
		CreatedAt:    now,
		UpdatedAt:    now,
	}))

	got, err := works.GetByWorkID(ctx, workID)
	require.NoError(t, err)
	require.NotNil(t, got.LandscapeImageData)
	assert.Equal(t, img.MediaID, got.LandscapeImageData.MediaID)
	assert.Nil(t, got.VerticalImageData)
	require.Len(t, got.WorkDetails, 1)
	require.NotNil(t, got.WorkDetails[0].MediaData)
	assert.Equal(t, attach.MediaID, got.WorkDetails[0].MediaData.MediaID)
}
