package app

import (
	"context"

	"hotelhub/internal/domain"
)

type CreateRoomInput struct {
	Slug         string
	Images       domain.Document
	Title        *string
	BedroomCount *int
}

// RoomService scopes every operation except ListAll under a parent hotel.
// The parent is resolved by slug first; a missing hotel short-circuits with
// ErrHotelNotFound before the room table is touched.
type RoomService struct {
	hotels domain.HotelRepository
	rooms  domain.RoomRepository
}

func NewRoomService(h domain.HotelRepository, r domain.RoomRepository) *RoomService {
	return &RoomService{hotels: h, rooms: r}
}

func (s *RoomService) ListAll(ctx context.Context) ([]domain.Room, error) {
	return s.rooms.ListRooms(ctx)
}

func (s *RoomService) ListForHotel(ctx context.Context, hotelSlug string) ([]domain.Room, error) {
	id, err := s.hotels.HotelIDBySlug(ctx, hotelSlug)
	if err != nil {
		return nil, err
	}
	return s.rooms.ListRoomsByHotel(ctx, id)
}

func (s *RoomService) Get(ctx context.Context, hotelSlug, roomSlug string) (domain.Room, error) {
	id, err := s.hotels.HotelIDBySlug(ctx, hotelSlug)
	if err != nil {
		return domain.Room{}, err
	}
	return s.rooms.GetRoom(ctx, id, roomSlug)
}

func (s *RoomService) Create(ctx context.Context, hotelSlug string, in CreateRoomInput) (domain.Room, error) {
	id, err := s.hotels.HotelIDBySlug(ctx, hotelSlug)
	if err != nil {
		return domain.Room{}, err
	}
	return s.rooms.CreateRoom(ctx, domain.Room{
		HotelID:      id,
		Slug:         in.Slug,
		Images:       in.Images,
		Title:        in.Title,
		BedroomCount: in.BedroomCount,
	})
}

func (s *RoomService) Update(ctx context.Context, hotelSlug, roomSlug string, upd domain.RoomUpdate) (domain.Room, error) {
	id, err := s.hotels.HotelIDBySlug(ctx, hotelSlug)
	if err != nil {
		return domain.Room{}, err
	}
	return s.rooms.UpdateRoom(ctx, id, roomSlug, upd)
}

func (s *RoomService) Delete(ctx context.Context, hotelSlug, roomSlug string) (domain.Room, error) {
	id, err := s.hotels.HotelIDBySlug(ctx, hotelSlug)
	if err != nil {
		return domain.Room{}, err
	}
	return s.rooms.DeleteRoom(ctx, id, roomSlug)
}
