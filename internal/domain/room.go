package domain

// Room belongs to exactly one Hotel. Its slug is unique only within that
// hotel; identity is the (hotel_id, slug) pair.
type Room struct {
	ID           int64    `json:"id"`
	HotelID      int64    `json:"hotel_id"`
	Slug         string   `json:"slug"`
	Images       Document `json:"images"`
	Title        *string  `json:"title"`
	BedroomCount *int     `json:"bedroom_count"`
}

type RoomUpdate struct {
	Images       Document
	Title        *string
	BedroomCount *int
}
