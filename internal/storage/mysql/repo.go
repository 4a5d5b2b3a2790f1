package mysql

import (
	"context"
	"database/sql"

	"hotelhub/internal/domain"
)

func valStr(p *string) any {
	if p == nil {
		return nil
	}
	return *p
}
func valInt(p *int) any {
	if p == nil {
		return nil
	}
	return *p
}
func valF64(p *float64) any {
	if p == nil {
		return nil
	}
	return *p
}
func valDoc(d domain.Document) any {
	if len(d) == 0 {
		return nil
	}
	return []byte(d)
}

func ptrStr(n sql.NullString) *string {
	if !n.Valid {
		return nil
	}
	s := n.String
	return &s
}
func ptrInt(n sql.NullInt64) *int {
	if !n.Valid {
		return nil
	}
	v := int(n.Int64)
	return &v
}
func ptrF64(n sql.NullFloat64) *float64 {
	if !n.Valid {
		return nil
	}
	f := n.Float64
	return &f
}
func doc(b []byte) domain.Document {
	if len(b) == 0 {
		return nil
	}
	return append(domain.Document(nil), b...)
}

type Repo struct{ db *sql.DB }

func New(db *sql.DB) *Repo { return &Repo{db: db} }

type scanner interface {
	Scan(dest ...any) error
}

func scanHotel(s scanner) (domain.Hotel, error) {
	var h domain.Hotel
	var desc, address sql.NullString
	var guests, bedrooms, bathrooms sql.NullInt64
	var lat, lon sql.NullFloat64
	var images, amenities, hostInfo []byte

	if err := s.Scan(
		&h.ID,
		&h.Slug,
		&images,
		&h.Title,
		&desc,
		&guests, &bedrooms, &bathrooms,
		&amenities, &hostInfo,
		&address,
		&lat, &lon,
	); err != nil {
		return domain.Hotel{}, err
	}
	h.Images = doc(images)
	h.Description = ptrStr(desc)
	h.GuestCount = ptrInt(guests)
	h.BedroomCount = ptrInt(bedrooms)
	h.BathroomCount = ptrInt(bathrooms)
	h.Amenities = doc(amenities)
	h.HostInformation = doc(hostInfo)
	h.Address = ptrStr(address)
	h.Latitude = ptrF64(lat)
	h.Longitude = ptrF64(lon)
	return h, nil
}

func scanRoom(s scanner) (domain.Room, error) {
	var rm domain.Room
	var title sql.NullString
	var bedrooms sql.NullInt64
	var images []byte

	if err := s.Scan(&rm.ID, &rm.HotelID, &rm.Slug, &images, &title, &bedrooms); err != nil {
		return domain.Room{}, err
	}
	rm.Images = doc(images)
	rm.Title = ptrStr(title)
	rm.BedroomCount = ptrInt(bedrooms)
	return rm, nil
}

// ---- hotels ----

func (r *Repo) CreateHotel(ctx context.Context, h domain.Hotel) (domain.Hotel, error) {
	res, err := r.db.ExecContext(ctx, insertHotelSQL,
		h.Slug,
		valDoc(h.Images),
		h.Title,
		valStr(h.Description),
		valInt(h.GuestCount),
		valInt(h.BedroomCount),
		valInt(h.BathroomCount),
		valDoc(h.Amenities),
		valDoc(h.HostInformation),
		valStr(h.Address),
		valF64(h.Latitude),
		valF64(h.Longitude),
	)
	if err != nil {
		return domain.Hotel{}, err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return domain.Hotel{}, err
	}
	return r.getHotelByID(ctx, id)
}

func (r *Repo) getHotelByID(ctx context.Context, id int64) (domain.Hotel, error) {
	h, err := scanHotel(r.db.QueryRowContext(ctx, getHotelByIDSQL, id))
	if err == sql.ErrNoRows {
		return domain.Hotel{}, domain.ErrHotelNotFound
	}
	return h, err
}

func (r *Repo) ListHotels(ctx context.Context) ([]domain.Hotel, error) {
	rows, err := r.db.QueryContext(ctx, listHotelsSQL)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []domain.Hotel{}
	for rows.Next() {
		h, err := scanHotel(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, h)
	}
	return out, rows.Err()
}

func (r *Repo) GetHotelBySlug(ctx context.Context, slug string) (domain.Hotel, error) {
	h, err := scanHotel(r.db.QueryRowContext(ctx, getHotelBySlugSQL, slug))
	if err == sql.ErrNoRows {
		return domain.Hotel{}, domain.ErrHotelNotFound
	}
	return h, err
}

func (r *Repo) UpdateHotelBySlug(ctx context.Context, slug string, upd domain.HotelUpdate) (domain.Hotel, error) {
	id, err := r.HotelIDBySlug(ctx, slug)
	if err != nil {
		return domain.Hotel{}, err
	}
	if _, err := r.db.ExecContext(ctx, updateHotelSQL,
		valDoc(upd.Images),
		valStr(upd.Title),
		valStr(upd.Description),
		valInt(upd.GuestCount),
		valInt(upd.BedroomCount),
		valInt(upd.BathroomCount),
		valDoc(upd.Amenities),
		valDoc(upd.HostInformation),
		valStr(upd.Address),
		valF64(upd.Latitude),
		valF64(upd.Longitude),
		id,
	); err != nil {
		return domain.Hotel{}, err
	}
	return r.getHotelByID(ctx, id)
}

func (r *Repo) DeleteHotelBySlug(ctx context.Context, slug string) (domain.Hotel, error) {
	h, err := r.GetHotelBySlug(ctx, slug)
	if err != nil {
		return domain.Hotel{}, err
	}
	if _, err := r.db.ExecContext(ctx, deleteHotelSQL, h.ID); err != nil {
		return domain.Hotel{}, err
	}
	return h, nil
}

func (r *Repo) HotelIDBySlug(ctx context.Context, slug string) (int64, error) {
	var id int64
	err := r.db.QueryRowContext(ctx, hotelIDBySlugSQL, slug).Scan(&id)
	if err == sql.ErrNoRows {
		return 0, domain.ErrHotelNotFound
	}
	return id, err
}

// ---- rooms ----

func (r *Repo) CreateRoom(ctx context.Context, rm domain.Room) (domain.Room, error) {
	res, err := r.db.ExecContext(ctx, insertRoomSQL,
		rm.HotelID,
		rm.Slug,
		valDoc(rm.Images),
		valStr(rm.Title),
		valInt(rm.BedroomCount),
	)
	if err != nil {
		return domain.Room{}, err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return domain.Room{}, err
	}
	return r.getRoomByID(ctx, id)
}

func (r *Repo) getRoomByID(ctx context.Context, id int64) (domain.Room, error) {
	rm, err := scanRoom(r.db.QueryRowContext(ctx, getRoomByIDSQL, id))
	if err == sql.ErrNoRows {
		return domain.Room{}, domain.ErrRoomNotFound
	}
	return rm, err
}

func (r *Repo) ListRooms(ctx context.Context) ([]domain.Room, error) {
	return r.listRooms(ctx, listRoomsSQL)
}

func (r *Repo) ListRoomsByHotel(ctx context.Context, hotelID int64) ([]domain.Room, error) {
	return r.listRooms(ctx, listRoomsByHotelSQL, hotelID)
}

func (r *Repo) listRooms(ctx context.Context, query string, args ...any) ([]domain.Room, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []domain.Room{}
	for rows.Next() {
		rm, err := scanRoom(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, rm)
	}
	return out, rows.Err()
}

func (r *Repo) GetRoom(ctx context.Context, hotelID int64, slug string) (domain.Room, error) {
	rm, err := scanRoom(r.db.QueryRowContext(ctx, getRoomSQL, hotelID, slug))
	if err == sql.ErrNoRows {
		return domain.Room{}, domain.ErrRoomNotFound
	}
	return rm, err
}

func (r *Repo) UpdateRoom(ctx context.Context, hotelID int64, slug string, upd domain.RoomUpdate) (domain.Room, error) {
	var id int64
	err := r.db.QueryRowContext(ctx, roomIDSQL, hotelID, slug).Scan(&id)
	if err == sql.ErrNoRows {
		return domain.Room{}, domain.ErrRoomNotFound
	}
	if err != nil {
		return domain.Room{}, err
	}
	if _, err := r.db.ExecContext(ctx, updateRoomSQL,
		valDoc(upd.Images),
		valStr(upd.Title),
		valInt(upd.BedroomCount),
		id,
	); err != nil {
		return domain.Room{}, err
	}
	return r.getRoomByID(ctx, id)
}

func (r *Repo) DeleteRoom(ctx context.Context, hotelID int64, slug string) (domain.Room, error) {
	rm, err := r.GetRoom(ctx, hotelID, slug)
	if err != nil {
		return domain.Room{}, err
	}
	if _, err := r.db.ExecContext(ctx, deleteRoomSQL, rm.ID); err != nil {
		return domain.Room{}, err
	}
	return rm, nil
}
