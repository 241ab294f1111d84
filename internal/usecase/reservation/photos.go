package reservation

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/BruksfildServices01/autoservice-booking/internal/audit"
	domain "github.com/BruksfildServices01/autoservice-booking/internal/domain/reservation"
	"github.com/BruksfildServices01/autoservice-booking/internal/httperr"
	"github.com/BruksfildServices01/autoservice-booking/internal/media"
	"github.com/BruksfildServices01/autoservice-booking/internal/models"
)

type AttachPhoto struct {
	repo     domain.Repository
	uploader media.Uploader
	audit    *audit.Dispatcher
}

// NewAttachPhoto builds the use case; a nil uploader makes every call fail
// with storage_unavailable.
func NewAttachPhoto(
	repo domain.Repository,
	uploader media.Uploader,
	audit *audit.Dispatcher,
) *AttachPhoto {
	return &AttachPhoto{
		repo:     repo,
		uploader: uploader,
		audit:    audit,
	}
}

func (uc *AttachPhoto) Execute(
	ctx context.Context,
	reservationID uuid.UUID,
	data []byte,
) (*models.ReservationPhoto, error) {

	if uc.uploader == nil {
		return nil, httperr.ErrBusiness(httperr.CodeStorageUnavailable)
	}

	r, err := uc.repo.GetReservation(ctx, reservationID)
	if err != nil {
		return nil, notFound(err, httperr.CodeReservationNotFound)
	}

	img, err := media.ToWebP(data)
	switch {
	case errors.Is(err, media.ErrTooLarge):
		return nil, httperr.ErrBusiness(httperr.CodeFileTooLarge)
	case errors.Is(err, media.ErrUnsupportedType):
		return nil, httperr.ErrBusiness(httperr.CodeUnsupportedMedia)
	case err != nil:
		return nil, err
	}

	key := fmt.Sprintf("reservations/%s/%s.webp", r.ID, uuid.New())
	url, err := uc.uploader.Upload(ctx, key, img.Data, img.ContentType)
	if err != nil {
		return nil, err
	}

	photo := &models.ReservationPhoto{
		ReservationID: r.ID,
		Key:           key,
		URL:           url,
		ContentType:   img.ContentType,
		Size:          int64(len(img.Data)),
	}
	if err := uc.repo.CreatePhoto(ctx, photo); err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		Action:   audit.ActionPhotoUploaded,
		Entity:   audit.EntityReservation,
		EntityID: &r.ID,
		Metadata: map[string]any{"key": key, "size": photo.Size},
	})

	return photo, nil
}

type ListPhotos struct {
	repo domain.Repository
}

func NewListPhotos(repo domain.Repository) *ListPhotos {
	return &ListPhotos{repo: repo}
}

func (uc *ListPhotos) Execute(
	ctx context.Context,
	reservationID uuid.UUID,
) ([]models.ReservationPhoto, error) {

	if _, err := uc.repo.GetReservation(ctx, reservationID); err != nil {
		return nil, notFound(err, httperr.CodeReservationNotFound)
	}
	return uc.repo.ListPhotos(ctx, reservationID)
}
