package postgres

import (
	"fmt"
	"testing"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/require"
	gormsqlite "gorm.io/driver/sqlite"
	"gorm.io/gorm"
	_ "modernc.org/sqlite"

	"github.com/atelier-works/portfolio-api/internal/crypto"
	"github.com/atelier-works/portfolio-api/internal/models"
)

// newTestDB opens a private in-memory SQLite database per test and migrates
// the full schema. The repositories only use portable gorm operations, so
// SQLite stands in for postgres here.
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", uuid.NewString())
	db, err := gorm.Open(gormsqlite.Dialector{DriverName: "sqlite", DSN: dsn}, &gorm.Config{})
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

func newTestFieldCodec(t *testing.T) *crypto.FieldCodec {
	t.Helper()
	log := logrus.New()
	log.SetLevel(logrus.PanicLevel)
	codec, err := crypto.NewFieldCodec("repo-test-secret", log)
	require.NoError(t, err)
	return codec
}
