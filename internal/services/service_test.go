package services

import (
	"context"
	"fmt"
	"io"
	"sync"
	"testing"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/require"
	gormsqlite "gorm.io/driver/sqlite"
	"gorm.io/gorm"
	_ "modernc.org/sqlite"

	"github.com/atelier-works/portfolio-api/internal/crypto"
	"github.com/atelier-works/portfolio-api/internal/mailer"
	"github.com/atelier-works/portfolio-api/internal/models"
)

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

func quietLogger() *logrus.Logger {
	log := logrus.New()
	log.SetLevel(logrus.PanicLevel)
	return log
}

func newTestCodec(t *testing.T) *crypto.FieldCodec {
	t.Helper()
	codec, err := crypto.NewFieldCodec("service-test-secret", quietLogger())
	require.NoError(t, err)
	return codec
}

// fakeMailer records sent messages and reports the configured outcome.
type fakeMailer struct {
	mu       sync.Mutex
	sent     []mailer.Message
	failNext bool
}

func (m *fakeMailer) Send(_ context.Context, msg mailer.Message) mailer.Result {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.sent = append(m.sent, msg)
	if m.failNext {
		return mailer.Result{Err: fmt.Errorf("smtp down")}
	}
	return mailer.Result{Success: true, MessageID: "<test@local>"}
}

func (m *fakeMailer) messages() []mailer.Message {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]mailer.Message(nil), m.sent...)
}

// fakeStore is an in-memory storage.Store.
type fakeStore struct {
	mu      sync.Mutex
	files   map[string][]byte
	saveErr error
}

func newFakeStore() *fakeStore {
	return &fakeStore{files: map[string][]byte{}}
}

func (s *fakeStore) Save(_ context.Context, subdir, filename string, r io.Reader) (string, error) {
	if s.saveErr != nil {
		return "", s.saveErr
	}
	data, err := io.ReadAll(r)
	if err != nil {
		return "", err
	}
	rel := "uploads/" + subdir + "/" + filename
	s.mu.Lock()
	s.files[rel] = data
	s.mu.Unlock()
	return rel, nil
}

func (s *fakeStore) Remove(relPath string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.files[relPath]; !ok {
		return fmt.Errorf("no such file: %s", relPath)
	}
	delete(s.files, relPath)
	return nil
}

func (s *fakeStore) Exists(relPath string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	_, ok := s.files[relPath]
	return ok
}
