package httpserver

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"

	"hotelhub/internal/app"
	"hotelhub/internal/domain"
)

const (
	maxImageFiles      = 10
	maxMultipartMemory = 32 << 20
)

type Handlers struct {
	Hotels *app.HotelService
	Rooms  *app.RoomService
}

func (s *Server) MountHandlers(h *Handlers) {
	s.mux.Get("/healthz", func(w http.ResponseWriter, r *http.Request) { w.WriteHeader(200); _, _ = w.Write([]byte("ok")) })

	s.mux.Post("/hotel", h.createHotel)
	s.mux.Get("/hotel", h.listHotels)
	s.mux.Get("/hotel/{slug}", h.getHotel)
	s.mux.Put("/hotel/{slug}", h.updateHotel)
	s.mux.Delete("/hotel/{slug}", h.deleteHotel)

	s.mux.Get("/room", h.listAllRooms)
	s.mux.Get("/hotel/{slug}/room", h.listRooms)
	s.mux.Post("/hotel/{slug}/room", h.createRoom)
	s.mux.Get("/hotel/{slug}/room/{roomSlug}", h.getRoom)
	s.mux.Put("/hotel/{slug}/room/{roomSlug}", h.updateRoom)
	s.mux.Delete("/hotel/{slug}/room/{roomSlug}", h.deleteRoom)
}

type errorBody struct {
	Error string `json:"error"`
}

type messageBody struct {
	Message string `json:"message"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Error().Err(err).Msg("write JSON response failed")
	}
}

// writeErr maps errors to the wire contract: validation -> 400 {"error"},
// not-found -> 404 {"message"}, anything else -> 500 {"error"} carrying the
// raw backend error text.
func writeErr(w http.ResponseWriter, err error) {
	var ve *domain.ValidationError
	switch {
	case errors.As(err, &ve):
		writeJSON(w, http.StatusBadRequest, errorBody{Error: ve.Reason})
	case errors.Is(err, domain.ErrHotelNotFound):
		writeJSON(w, http.StatusNotFound, messageBody{Message: "Hotel not found"})
	case errors.Is(err, domain.ErrRoomNotFound):
		writeJSON(w, http.StatusNotFound, messageBody{Message: "Room not found"})
	default:
		writeJSON(w, http.StatusInternalServerError, errorBody{Error: err.Error()})
	}
}

// ---- multipart form helpers ----

func formStr(r *http.Request, key string) *string {
	if vs, ok := r.MultipartForm.Value[key]; ok && len(vs) > 0 {
		v := vs[0]
		return &v
	}
	return nil
}

func formInt(r *http.Request, key string) (*int, error) {
	v := formStr(r, key)
	if v == nil || *v == "" {
		return nil, nil
	}
	n, err := strconv.Atoi(*v)
	if err != nil {
		return nil, &domain.ValidationError{Reason: key + " must be an integer"}
	}
	return &n, nil
}

func formFloat(r *http.Request, key string) (*float64, error) {
	v := formStr(r, key)
	if v == nil || *v == "" {
		return nil, nil
	}
	f, err := strconv.ParseFloat(*v, 64)
	if err != nil {
		return nil, &domain.ValidationError{Reason: key + " must be a number"}
	}
	return &f, nil
}

// formDoc keeps form values that already parse as JSON verbatim; anything
// else is stored as a JSON string. Internal shape is never validated.
func formDoc(r *http.Request, key string) domain.Document {
	v := formStr(r, key)
	if v == nil || *v == "" {
		return nil
	}
	if json.Valid([]byte(*v)) {
		return domain.Document(*v)
	}
	b, _ := json.Marshal(*v)
	return b
}

// ---- hotel handlers ----

func (h *Handlers) createHotel(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseMultipartForm(maxMultipartMemory); err != nil {
		writeJSON(w, http.StatusBadRequest, errorBody{Error: err.Error()})
		return
	}
	fhs := r.MultipartForm.File["images"]
	if len(fhs) > maxImageFiles {
		writeJSON(w, http.StatusBadRequest, errorBody{Error: "at most 10 images are allowed"})
		return
	}

	in := app.CreateHotelInput{
		Slug:            r.FormValue("slug"),
		Title:           r.FormValue("title"),
		Description:     formStr(r, "description"),
		Amenities:       formDoc(r, "amenities"),
		HostInformation: formDoc(r, "host_information"),
		Address:         formStr(r, "address"),
	}
	var err error
	if in.GuestCount, err = formInt(r, "guest_count"); err != nil {
		writeErr(w, err)
		return
	}
	if in.BedroomCount, err = formInt(r, "bedroom_count"); err != nil {
		writeErr(w, err)
		return
	}
	if in.BathroomCount, err = formInt(r, "bathroom_count"); err != nil {
		writeErr(w, err)
		return
	}
	if in.Latitude, err = formFloat(r, "latitude"); err != nil {
		writeErr(w, err)
		return
	}
	if in.Longitude, err = formFloat(r, "longitude"); err != nil {
		writeErr(w, err)
		return
	}

	files := make([]app.FileUpload, 0, len(fhs))
	for _, fh := range fhs {
		fh := fh
		files = append(files, app.FileUpload{
			Field: "images",
			Open:  func() (io.ReadCloser, error) { return fh.Open() },
		})
	}

	hotel, err := h.Hotels.Create(r.Context(), in, files)
	if err != nil {
		writeErr(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, hotel)
}

func (h *Handlers) listHotels(w http.ResponseWriter, r *http.Request) {
	hotels, err := h.Hotels.List(r.Context())
	if err != nil {
		writeErr(w, err)
		return
	}
	writeJSON(w, http.StatusOK, hotels)
}

func (h *Handlers) getHotel(w http.ResponseWriter, r *http.Request) {
	hotel, err := h.Hotels.GetBySlug(r.Context(), chi.URLParam(r, "slug"))
	if err != nil {
		writeErr(w, err)
		return
	}
	writeJSON(w, http.StatusOK, hotel)
}

type hotelUpdateBody struct {
	Images          domain.Document `json:"images"`
	Title           *string         `json:"title"`
	Description     *string         `json:"description"`
	GuestCount      *int            `json:"guest_count"`
	BedroomCount    *int            `json:"bedroom_count"`
	BathroomCount   *int            `json:"bathroom_count"`
	Amenities       domain.Document `json:"amenities"`
	HostInformation domain.Document `json:"host_information"`
	Address         *string         `json:"address"`
	Latitude        *float64        `json:"latitude"`
	Longitude       *float64        `json:"longitude"`
}

func (h *Handlers) updateHotel(w http.ResponseWriter, r *http.Request) {
	var body hotelUpdateBody
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		writeJSON(w, http.StatusBadRequest, errorBody{Error: err.Error()})
		return
	}
	hotel, err := h.Hotels.UpdateBySlug(r.Context(), chi.URLParam(r, "slug"), domain.HotelUpdate{
		Images:          body.Images,
		Title:           body.Title,
		Description:     body.Description,
		GuestCount:      body.GuestCount,
		BedroomCount:    body.BedroomCount,
		BathroomCount:   body.BathroomCount,
		Amenities:       body.Amenities,
		HostInformation: body.HostInformation,
		Address:         body.Address,
		Latitude:        body.Latitude,
		Longitude:       body.Longitude,
	})
	if err != nil {
		writeErr(w, err)
		return
	}
	writeJSON(w, http.StatusOK, hotel)
}

func (h *Handlers) deleteHotel(w http.ResponseWriter, r *http.Request) {
	hotel, err := h.Hotels.DeleteBySlug(r.Context(), chi.URLParam(r, "slug"))
	if err != nil {
		writeErr(w, err)
		return
	}
	writeJSON(w, http.StatusOK, hotel)
}

// ---- room handlers ----

func (h *Handlers) listAllRooms(w http.ResponseWriter, r *http.Request) {
	rooms, err := h.Rooms.ListAll(r.Context())
	if err != nil {
		writeErr(w, err)
		return
	}
	writeJSON(w, http.StatusOK, rooms)
}

func (h *Handlers) listRooms(w http.ResponseWriter, r *http.Request) {
	rooms, err := h.Rooms.ListForHotel(r.Context(), chi.URLParam(r, "slug"))
	if err != nil {
		writeErr(w, err)
		return
	}
	writeJSON(w, http.StatusOK, rooms)
}

func (h *Handlers) getRoom(w http.ResponseWriter, r *http.Request) {
	room, err := h.Rooms.Get(r.Context(), chi.URLParam(r, "slug"), chi.URLParam(r, "roomSlug"))
	if err != nil {
		writeErr(w, err)
		return
	}
	writeJSON(w, http.StatusOK, room)
}

type roomCreateBody struct {
	Slug         string          `json:"slug"`
	Images       domain.Document `json:"images"`
	Title        *string         `json:"title"`
	BedroomCount *int            `json:"bedroom_count"`
}

func (h *Handlers) createRoom(w http.ResponseWriter, r *http.Request) {
	var body roomCreateBody
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		writeJSON(w, http.StatusBadRequest, errorBody{Error: err.Error()})
		return
	}
	room, err := h.Rooms.Create(r.Context(), chi.URLParam(r, "slug"), app.CreateRoomInput{
		Slug:         body.Slug,
		Images:       body.Images,
		Title:        body.Title,
		BedroomCount: body.BedroomCount,
	})
	if err != nil {
		writeErr(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, room)
}

type roomUpdateBody struct {
	Images       domain.Document `json:"images"`
	Title        *string         `json:"title"`
	BedroomCount *int            `json:"bedroom_count"`
}

func (h *Handlers) updateRoom(w http.ResponseWriter, r *http.Request) {
	var body roomUpdateBody
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		writeJSON(w, http.StatusBadRequest, errorBody{Error: err.Error()})
		return
	}
	room, err := h.Rooms.Update(r.Context(), chi.URLParam(r, "slug"), chi.URLParam(r, "roomSlug"), domain.RoomUpdate{
		Images:       body.Images,
		Title:        body.Title,
		BedroomCount: body.BedroomCount,
	})
	if err != nil {
		writeErr(w, err)
		return
	}
	writeJSON(w, http.StatusOK, room)
}

func (h *Handlers) deleteRoom(w http.ResponseWriter, r *http.Request) {
	room, err := h.Rooms.Delete(r.Context(), chi.URLParam(r, "slug"), chi.URLParam(r, "roomSlug"))
	if err != nil {
		writeErr(w, err)
		return
	}
	writeJSON(w, http.StatusOK, room)
}
