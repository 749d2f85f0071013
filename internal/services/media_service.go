package services

import (
	"bytes"
	"context"
	"errors"
	"io"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/atelier-works/portfolio-api/internal/models"
	pgrepo "github.com/atelier-works/portfolio-api/internal/repositories/postgres"
	"github.com/atelier-works/portfolio-api/internal/storage"
	"github.com/atelier-works/portfolio-api/internal/utils"
)

// UploadInput carries one multipart file through the upload gate.
type UploadInput struct {
	FileName string
	Mimetype string
	Size     int64
	Body     io.Reader
}

// BulkDeleteResult accounts per-item outcomes of a bulk delete; one item's
// failure does not abort the rest.
type BulkDeleteResult struct {
	Success []string         `json:"success"`
	Failed  []BulkDeleteFail `json:"failed"`
}

type BulkDeleteFail struct {
	MediaID string `json:"mediaId"`
	Reason  string `json:"reason"`
}

type MediaService interface {
	Upload(ctx context.Context, in UploadInput) (*models.Media, error)
	Get(ctx context.Context, mediaID string) (*models.Media, error)
	List(ctx context.Context, page, limit int) ([]models.Media, Pagination, error)
	Delete(ctx context.Context, mediaID string) error
	BulkDelete(ctx context.Context, mediaIDs []string) BulkDeleteResult
}

type mediaService struct {
	media       pgrepo.MediaRepository
	works       pgrepo.WorkRepository
	workDetails pgrepo.WorkDetailRepository
	store       storage.Store
	log         *logrus.Logger
}

func NewMediaService(media pgrepo.MediaRepository, works pgrepo.WorkRepository, workDetails pgrepo.WorkDetailRepository, store storage.Store, log *logrus.Logger) MediaService {
	return &mediaService{media: media, works: works, workDetails: workDetails, store: store, log: log}
}

// Upload runs the upload gate (allow-list, size cap, PDF content scan) and
// only then persists the file and its metadata row. Rejections leave nothing
// on disk: the scan happens on the buffered body before the file is written.
func (s *mediaService) Upload(ctx context.Context, in UploadInput) (*models.Media, error) {
	const op = "MediaService.Upload"

	ext := strings.TrimPrefix(strings.ToLower(extOf(in.FileName)), ".")
	if err := storage.CheckFile(in.Mimetype, ext, in.Size); err != nil {
		return nil, utils.E(utils.CodeInvalidArgument, op, err.Error(), nil)
	}

	content, err := io.ReadAll(io.LimitReader(in.Body, storage.MaxUploadSize+1))
	if err != nil {
		return nil, utils.E(utils.CodeInternal, op, "Error uploading media", err)
	}
	if int64(len(content)) > storage.MaxUploadSize {
		return nil, utils.E(utils.CodeInvalidArgument, op, "File is too large. Maximum size allowed is 5MB", nil)
	}

	if in.Mimetype == "application/pdf" {
		scan := storage.ScanPDF(content)
		if !scan.OK {
			return nil, utils.E(utils.CodeInvalidArgument, op, scan.Reason, nil)
		}
		if scan.Warning != "" {
			s.log.WithField("file", in.FileName).Warn(scan.Warning)
		}
	}

	filename := uuid.NewString() + "." + ext
	relPath, err := s.store.Save(ctx, storage.Subdir(in.Mimetype), filename, bytes.NewReader(content))
	if err != nil {
		return nil, utils.E(utils.CodeInternal, op, "Error uploading media", err)
	}

	now := time.Now().UTC()
	row := &models.Media{
		MediaID:   uuid.NewString(),
		Name:      filename,
		Type:      in.Mimetype,
		Size:      int64(len(content)),
		URL:       relPath,
		Mime:      in.Mimetype,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := s.media.Insert(ctx, row); err != nil {
		// keep disk and database consistent on metadata failure
		if rmErr := s.store.Remove(relPath); rmErr != nil {
			s.log.WithError(rmErr).WithField("path", relPath).Warn("orphan cleanup failed")
		}
		return nil, utils.E(utils.CodeInternal, op, "Error uploading media", err)
	}
	return row, nil
}

func (s *mediaService) Get(ctx context.Context, mediaID string) (*models.Media, error) {
	const op = "MediaService.Get"

	m, err := s.media.GetByMediaID(ctx, mediaID)
	if err != nil {
		if errors.Is(err, utils.ErrNotFound) {
			return nil, utils.E(utils.CodeNotFound, op, "Media not found", err)
		}
		return nil, utils.E(utils.CodeInternal, op, "Error retrieving media", err)
	}
	return m, nil
}

func (s *mediaService) List(ctx context.Context, page, limit int) ([]models.Media, Pagination, error) {
	const op = "MediaService.List"

	offset, page, limit := PageToOffset(page, limit)
	rows, total, err := s.media.List(ctx, offset, limit)
	if err != nil {
		return nil, Pagination{}, utils.E(utils.CodeInternal, op, "Error retrieving media", err)
	}
	return rows, NewPagination(total, page, limit), nil
}

// canDelete is the referential guard: a media row referenced by any work
// image slot or work detail must not be deleted.
func (s *mediaService) canDelete(ctx context.Context, mediaID string) (bool, error) {
	if used, err := s.works.ReferencesMedia(ctx, mediaID); err != nil || used {
		return false, err
	}
	if used, err := s.workDetails.ReferencesMedia(ctx, mediaID); err != nil || used {
		return false, err
	}
	return true, nil
}

// Delete removes the row and the stored file. A filesystem failure is logged
// but does not block the database deletion.
func (s *mediaService) Delete(ctx context.Context, mediaID string) error {
	const op = "MediaService.Delete"

	ok, err := s.canDelete(ctx, mediaID)
	if err != nil {
		return utils.E(utils.CodeInternal, op, "Error deleting media", err)
	}
	if !ok {
		return utils.E(utils.CodeConflict, op, "Cannot delete media as it is being used in work data or work details", nil)
	}

	m, err := s.media.GetByMediaID(ctx, mediaID)
	if err != nil {
		if errors.Is(err, utils.ErrNotFound) {
			return utils.E(utils.CodeNotFound, op, "Media not found", err)
		}
		return utils.E(utils.CodeInternal, op, "Error deleting media", err)
	}

	if err := s.store.Remove(m.URL); err != nil {
		s.log.WithError(err).WithField("url", m.URL).Warn("file not found or could not be deleted")
	}

	if err := s.media.Delete(ctx, mediaID); err != nil {
		return utils.E(utils.CodeInternal, op, "Error deleting media", err)
	}
	return nil
}

// BulkDelete walks the ids sequentially with independent per-item accounting.
func (s *mediaService) BulkDelete(ctx context.Context, mediaIDs []string) BulkDeleteResult {
	res := BulkDeleteResult{Success: []string{}, Failed: []BulkDeleteFail{}}

	for _, id := range mediaIDs {
		err := s.Delete(ctx, id)
		switch {
		case err == nil:
			res.Success = append(res.Success, id)
		case utils.IsCode(err, utils.CodeConflict):
			res.Failed = append(res.Failed, BulkDeleteFail{MediaID: id, Reason: "Media is in use"})
		case utils.IsCode(err, utils.CodeNotFound):
			res.Failed = append(res.Failed, BulkDeleteFail{MediaID: id, Reason: "Media not found"})
		default:
			res.Failed = append(res.Failed, BulkDeleteFail{MediaID: id, Reason: utils.Message(err, "delete failed")})
		}
	}
	return res
}

func extOf(name string) string {
	if i := strings.LastIndex(name, "."); i >= 0 {
		return name[i:]
	}
	return ""
}
