package domain

import "encoding/json"

// Document is a schemaless JSON value (object, array, or scalar) persisted
// and returned without shape validation.
type Document = json.RawMessage

type Hotel struct {
	ID              int64    `json:"id"`
	Slug            string   `json:"slug"`
	Images          Document `json:"images"`
	Title           string   `json:"title"`
	Description     *string  `json:"description"`
	GuestCount      *int     `json:"guest_count"`
	BedroomCount    *int     `json:"bedroom_count"`
	BathroomCount   *int     `json:"bathroom_count"`
	Amenities       Document `json:"amenities"`
	HostInformation Document `json:"host_information"`
	Address         *string  `json:"address"`
	Latitude        *float64 `json:"latitude"`
	Longitude       *float64 `json:"longitude"`
}

// HotelUpdate is the full replacement field set for an update. Absent fields
// overwrite the row with NULL; there is no partial-patch merge.
type HotelUpdate struct {
	Images          Document
	Title           *string
	Description     *string
	GuestCount      *int
	BedroomCount    *int
	BathroomCount   *int
	Amenities       Document
	HostInformation Document
	Address         *string
	Latitude        *float64
	Longitude       *float64
}
