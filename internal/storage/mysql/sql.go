package mysql

const hotelColumns = "id, slug, images, title, description, guest_count, bedroom_count, bathroom_count, amenities, host_information, address, latitude, longitude"

const insertHotelSQL = `
INSERT INTO hotel
  (slug, images, title, description, guest_count, bedroom_count, bathroom_count, amenities, host_information, address, latitude, longitude)
VALUES
  (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
`

// MySQL has no RETURNING; mutations read the row back by id afterwards.
const (
	getHotelByIDSQL   = "SELECT " + hotelColumns + " FROM hotel WHERE id = ?"
	getHotelBySlugSQL = "SELECT " + hotelColumns + " FROM hotel WHERE slug = ?"
	listHotelsSQL     = "SELECT " + hotelColumns + " FROM hotel"
	hotelIDBySlugSQL  = "SELECT id FROM hotel WHERE slug = ?"
	deleteHotelSQL    = "DELETE FROM hotel WHERE id = ?"
)

const updateHotelSQL = `
UPDATE hotel SET
  images = ?,
  title = ?,
  description = ?,
  guest_count = ?,
  bedroom_count = ?,
  bathroom_count = ?,
  amenities = ?,
  host_information = ?,
  address = ?,
  latitude = ?,
  longitude = ?
WHERE id = ?
`

const roomColumns = "id, hotel_id, slug, images, title, bedroom_count"

const insertRoomSQL = `
INSERT INTO room (hotel_id, slug, images, title, bedroom_count)
VALUES (?, ?, ?, ?, ?)
`

const (
	getRoomByIDSQL      = "SELECT " + roomColumns + " FROM room WHERE id = ?"
	getRoomSQL          = "SELECT " + roomColumns + " FROM room WHERE hotel_id = ? AND slug = ?"
	listRoomsSQL        = "SELECT " + roomColumns + " FROM room"
	listRoomsByHotelSQL = "SELECT " + roomColumns + " FROM room WHERE hotel_id = ?"
	roomIDSQL           = "SELECT id FROM room WHERE hotel_id = ? AND slug = ?"
	deleteRoomSQL       = "DELETE FROM room WHERE id = ?"
)

const updateRoomSQL = `
UPDATE room SET
  images = ?,
  title = ?,
  bedroom_count = ?
WHERE id = ?
`
