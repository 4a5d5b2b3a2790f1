package app

import (
	"context"
	"encoding/json"
	"io"

	"hotelhub/internal/domain"
)

// FileUpload is one incoming multipart file, opened lazily so the service
// reads and stores files strictly in arrival order.
type FileUpload struct {
	Field string
	Open  func() (io.ReadCloser, error)
}

type CreateHotelInput struct {
	Slug            string
	Title           string
	Description     *string
	GuestCount      *int
	BedroomCount    *int
	BathroomCount   *int
	Amenities       domain.Document
	HostInformation domain.Document
	Address         *string
	Latitude        *float64
	Longitude       *float64
}

type HotelService struct {
	repo domain.HotelRepository
	sink domain.UploadSink
}

func NewHotelService(r domain.HotelRepository, s domain.UploadSink) *HotelService {
	return &HotelService{repo: r, sink: s}
}

// Create validates the required fields, stores the uploaded images, then
// inserts the row. Files written before a later failure are not rolled back;
// the database row is only created once every file landed.
func (s *HotelService) Create(ctx context.Context, in CreateHotelInput, files []FileUpload) (domain.Hotel, error) {
	if in.Slug == "" || in.Title == "" {
		return domain.Hotel{}, &domain.ValidationError{Reason: "Slug and title are required"}
	}

	paths := make([]string, 0, len(files))
	for _, f := range files {
		rc, err := f.Open()
		if err != nil {
			return domain.Hotel{}, err
		}
		p, err := s.sink.Store(ctx, f.Field, rc)
		rc.Close()
		if err != nil {
			return domain.Hotel{}, err
		}
		paths = append(paths, p)
	}
	images, err := json.Marshal(paths)
	if err != nil {
		return domain.Hotel{}, err
	}

	return s.repo.CreateHotel(ctx, domain.Hotel{
		Slug:            in.Slug,
		Images:          images,
		Title:           in.Title,
		Description:     in.Description,
		GuestCount:      in.GuestCount,
		BedroomCount:    in.BedroomCount,
		BathroomCount:   in.BathroomCount,
		Amenities:       in.Amenities,
		HostInformation: in.HostInformation,
		Address:         in.Address,
		Latitude:        in.Latitude,
		Longitude:       in.Longitude,
	})
}

func (s *HotelService) List(ctx context.Context) ([]domain.Hotel, error) {
	return s.repo.ListHotels(ctx)
}

func (s *HotelService) GetBySlug(ctx context.Context, slug string) (domain.Hotel, error) {
	return s.repo.GetHotelBySlug(ctx, slug)
}

func (s *HotelService) UpdateBySlug(ctx context.Context, slug string, upd domain.HotelUpdate) (domain.Hotel, error) {
	return s.repo.UpdateHotelBySlug(ctx, slug, upd)
}

func (s *HotelService) DeleteBySlug(ctx context.Context, slug string) (domain.Hotel, error) {
	return s.repo.DeleteHotelBySlug(ctx, slug)
}
