package workers

import (
	"context"
	"sync"
	"time"

	"github.com/robfig/cron/v3"
	"github.com/sirupsen/logrus"

	pgrepo "github.com/atelier-works/portfolio-api/internal/repositories/postgres"
	"github.com/atelier-works/portfolio-api/internal/storage"
)

const cleanupSchedule = "0 2 * * *"

// CleanupWorker purges submissions and orphaned resume PDFs past the retention
// window. The three purge tasks run concurrently and are fault-independent:
// one failing leaves the others untouched, and the next daily run retries.
type CleanupWorker struct {
	contacts pgrepo.ContactRepository
	careers  pgrepo.CareerRepository
	media    pgrepo.MediaRepository
	store    storage.Store
	log      *logrus.Logger

	retention time.Duration
	cron      *cron.Cron
}

func NewCleanupWorker(
	contacts pgrepo.ContactRepository,
	careers pgrepo.CareerRepository,
	media pgrepo.MediaRepository,
	store storage.Store,
	retentionDays int,
	log *logrus.Logger,
) *CleanupWorker {
	return &CleanupWorker{
		contacts:  contacts,
		careers:   careers,
		media:     media,
		store:     store,
		log:       log,
		retention: time.Duration(retentionDays) * 24 * time.Hour,
	}
}

// Start schedules the daily run. Returns after registering; the cron runner
// owns its own goroutine.
func (w *CleanupWorker) Start() error {
	w.cron = cron.New()
	if _, err := w.cron.AddFunc(cleanupSchedule, func() {
		w.Run(context.Background())
	}); err != nil {
		return err
	}
	w.cron.Start()
	w.log.WithField("schedule", cleanupSchedule).Info("cleanup worker scheduled")
	return nil
}

func (w *CleanupWorker) Stop() {
	if w.cron != nil {
		ctx := w.cron.Stop()
		<-ctx.Done()
	}
}

// Run executes one cleanup cycle against the current retention cutoff.
func (w *CleanupWorker) Run(ctx context.Context) {
	cutoff := time.Now().UTC().Add(-w.retention)

	var (
		wg                        sync.WaitGroup
		contactCount, careerCount int64
		pdfCount                  int
	)

	wg.Add(3)

	go func() {
		defer wg.Done()
		n, err := w.contacts.DeleteOlderThan(ctx, cutoff)
		if err != nil {
			w.log.WithError(err).Error("contact cleanup failed")
			return
		}
		contactCount = n
	}()

	go func() {
		defer wg.Done()
		n, err := w.careers.DeleteOlderThan(ctx, cutoff)
		if err != nil {
			w.log.WithError(err).Error("career cleanup failed")
			return
		}
		careerCount = n
	}()

	go func() {
		defer wg.Done()
		pdfCount = w.purgeAgedPDFs(ctx, cutoff)
	}()

	wg.Wait()

	w.log.WithFields(logrus.Fields{
		"cutoff":           cutoff.Format(time.RFC3339),
		"contacts_deleted": contactCount,
		"careers_deleted":  careerCount,
		"pdfs_deleted":     pdfCount,
	}).Info("cleanup cycle completed")
}

// purgeAgedPDFs removes resume files and their metadata rows. A missing or
// undeletable file is logged but the row still goes; keeping metadata for a
// file past retention would defeat the purge.
func (w *CleanupWorker) purgeAgedPDFs(ctx context.Context, cutoff time.Time) int {
	rows, err := w.media.ListPDFOlderThan(ctx, cutoff)
	if err != nil {
		w.log.WithError(err).Error("pdf cleanup scan failed")
		return 0
	}

	deleted := 0
	for _, m := range rows {
		if err := w.store.Remove(m.URL); err != nil {
			w.log.WithError(err).WithField("url", m.URL).Warn("pdf file removal failed")
		}
		if err := w.media.Delete(ctx, m.MediaID); err != nil {
			w.log.WithError(err).WithField("media_id", m.MediaID).Error("pdf row removal failed")
			continue
		}
		deleted++
	}
	return deleted
}
