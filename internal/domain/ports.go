package domain

import (
	"context"
	"io"
)

type HotelRepository interface {
	CreateHotel(ctx context.Context, h Hotel) (Hotel, error)
	ListHotels(ctx context.Context) ([]Hotel, error)
	GetHotelBySlug(ctx context.Context, slug string) (Hotel, error)
	UpdateHotelBySlug(ctx context.Context, slug string, upd HotelUpdate) (Hotel, error)
	DeleteHotelBySlug(ctx context.Context, slug string) (Hotel, error)

	// HotelIDBySlug resolves a hotel slug to its numeric id; room operations
	// use it before touching the room table.
	HotelIDBySlug(ctx context.Context, slug string) (int64, error)
}

type RoomRepository interface {
	CreateRoom(ctx context.Context, rm Room) (Room, error)
	ListRooms(ctx context.Context) ([]Room, error)
	ListRoomsByHotel(ctx context.Context, hotelID int64) ([]Room, error)
	GetRoom(ctx context.Context, hotelID int64, slug string) (Room, error)
	UpdateRoom(ctx context.Context, hotelID int64, slug string, upd RoomUpdate) (Room, error)
	DeleteRoom(ctx context.Context, hotelID int64, slug string) (Room, error)
}

// UploadSink durably stores one uploaded file and returns the stable path
// assigned to it. A failed write must not be reported as success.
type UploadSink interface {
	Store(ctx context.Context, field string, r io.Reader) (string, error)
}
