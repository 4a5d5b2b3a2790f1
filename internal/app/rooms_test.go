package app_test

import (
	"context"
	"errors"
	"testing"

	"hotelhub/internal/app"
	"hotelhub/internal/domain"
)

// fakeHotelIDs resolves slugs only; the other repository methods are unused
// by RoomService.
type fakeHotelIDs struct {
	fakeHotelRepo
	ids map[string]int64
}

func (f *fakeHotelIDs) HotelIDBySlug(ctx context.Context, slug string) (int64, error) {
	if id, ok := f.ids[slug]; ok {
		return id, nil
	}
	return 0, domain.ErrHotelNotFound
}

type fakeRoomRepo struct {
	touched bool
	rooms   []domain.Room
}

func (f *fakeRoomRepo) CreateRoom(ctx context.Context, rm domain.Room) (domain.Room, error) {
	f.touched = true
	rm.ID = int64(len(f.rooms) + 1)
	f.rooms = append(f.rooms, rm)
	return rm, nil
}
func (f *fakeRoomRepo) ListRooms(ctx context.Context) ([]domain.Room, error) {
	f.touched = true
	return f.rooms, nil
}
func (f *fakeRoomRepo) ListRoomsByHotel(ctx context.Context, hotelID int64) ([]domain.Room, error) {
	f.touched = true
	out := []domain.Room{}
	for _, rm := range f.rooms {
		if rm.HotelID == hotelID {
			out = append(out, rm)
		}
	}
	return out, nil
}
func (f *fakeRoomRepo) GetRoom(ctx context.Context, hotelID int64, slug string) (domain.Room, error) {
	f.touched = true
	for _, rm := range f.rooms {
		if rm.HotelID == hotelID && rm.Slug == slug {
			return rm, nil
		}
	}
	return domain.Room{}, domain.ErrRoomNotFound
}
func (f *fakeRoomRepo) UpdateRoom(ctx context.Context, hotelID int64, slug string, upd domain.RoomUpdate) (domain.Room, error) {
	rm, err := f.GetRoom(ctx, hotelID, slug)
	if err != nil {
		return domain.Room{}, err
	}
	rm.Images = upd.Images
	rm.Title = upd.Title
	rm.BedroomCount = upd.BedroomCount
	for i := range f.rooms {
		if f.rooms[i].ID == rm.ID {
			f.rooms[i] = rm
		}
	}
	return rm, nil
}
func (f *fakeRoomRepo) DeleteRoom(ctx context.Context, hotelID int64, slug string) (domain.Room, error) {
	rm, err := f.GetRoom(ctx, hotelID, slug)
	if err != nil {
		return domain.Room{}, err
	}
	kept := f.rooms[:0]
	for _, r := range f.rooms {
		if r.ID != rm.ID {
			kept = append(kept, r)
		}
	}
	f.rooms = kept
	return rm, nil
}

func TestRooms_MissingHotelShortCircuits(t *testing.T) {
	hotels := &fakeHotelIDs{ids: map[string]int64{}}
	ctx := context.Background()

	ops := map[string]func(svc *app.RoomService) error{
		"list": func(svc *app.RoomService) error {
			_, err := svc.ListForHotel(ctx, "ghost")
			return err
		},
		"get": func(svc *app.RoomService) error {
			_, err := svc.Get(ctx, "ghost", "101")
			return err
		},
		"create": func(svc *app.RoomService) error {
			_, err := svc.Create(ctx, "ghost", app.CreateRoomInput{Slug: "101"})
			return err
		},
		"update": func(svc *app.RoomService) error {
			_, err := svc.Update(ctx, "ghost", "101", domain.RoomUpdate{})
			return err
		},
		"delete": func(svc *app.RoomService) error {
			_, err := svc.Delete(ctx, "ghost", "101")
			return err
		},
	}
	for name, op := range ops {
		rooms := &fakeRoomRepo{}
		svc := app.NewRoomService(hotels, rooms)
		if err := op(svc); !errors.Is(err, domain.ErrHotelNotFound) {
			t.Fatalf("%s: expected ErrHotelNotFound, got %v", name, err)
		}
		if rooms.touched {
			t.Fatalf("%s: room repo touched for missing hotel", name)
		}
	}
}

func TestRooms_CreateUsesResolvedHotelID(t *testing.T) {
	hotels := &fakeHotelIDs{ids: map[string]int64{"grand-1": 7}}
	rooms := &fakeRoomRepo{}
	svc := app.NewRoomService(hotels, rooms)

	rm, err := svc.Create(context.Background(), "grand-1", app.CreateRoomInput{
		Slug:         "101",
		Title:        ptr("Suite"),
		BedroomCount: ptr(2),
	})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if rm.HotelID != 7 {
		t.Fatalf("expected hotel_id 7, got %d", rm.HotelID)
	}
	if rm.ID == 0 {
		t.Fatalf("expected generated id")
	}
}

func TestRooms_SameSlugUnderDifferentHotels(t *testing.T) {
	hotels := &fakeHotelIDs{ids: map[string]int64{"grand-1": 1, "grand-2": 2}}
	rooms := &fakeRoomRepo{}
	svc := app.NewRoomService(hotels, rooms)
	ctx := context.Background()

	if _, err := svc.Create(ctx, "grand-1", app.CreateRoomInput{Slug: "101", Title: ptr("A")}); err != nil {
		t.Fatalf("create under grand-1: %v", err)
	}
	if _, err := svc.Create(ctx, "grand-2", app.CreateRoomInput{Slug: "101", Title: ptr("B")}); err != nil {
		t.Fatalf("create under grand-2: %v", err)
	}

	if _, err := svc.Update(ctx, "grand-1", "101", domain.RoomUpdate{Title: ptr("A2")}); err != nil {
		t.Fatalf("update: %v", err)
	}

	other, err := svc.Get(ctx, "grand-2", "101")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if other.Title == nil || *other.Title != "B" {
		t.Fatalf("sibling room affected by update: %+v", other)
	}
}

func TestRooms_GetMissingRoom(t *testing.T) {
	hotels := &fakeHotelIDs{ids: map[string]int64{"grand-1": 1}}
	svc := app.NewRoomService(hotels, &fakeRoomRepo{})

	_, err := svc.Get(context.Background(), "grand-1", "nope")
	if !errors.Is(err, domain.ErrRoomNotFound) {
		t.Fatalf("expected ErrRoomNotFound, got %v", err)
	}
}
