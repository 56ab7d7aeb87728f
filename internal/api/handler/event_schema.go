package handler

import "github.com/eventhub/event-platform/internal/core/ports"

type createEventRequest struct {
	Title       string  `json:"title"       validate:"required"`
	Description string  `json:"description" validate:"required"`
	Location    string  `json:"location"    validate:"required"`
	Category    string  `json:"category"    validate:"required"`
	Date        string  `json:"date"        validate:"required"`
	Price       float64 `json:"price"       validate:"gte=0"`
	Image       string  `json:"image"`
}

// updateEventRequest uses pointers so absent fields are left unchanged.
type updateEventRequest struct {
	Title       *string  `json:"title"`
	Description *string  `json:"description"`
	Location    *string  `json:"location"`
	Category    *string  `json:"category"`
	Date        *string  `json:"date"`
	Price       *float64 `json:"price" validate:"omitempty,gte=0"`
	Image       *string  `json:"image"`
}

type reviewEventRequest struct {
	Status string `json:"status" validate:"required,oneof=approved rejected"`
}

func toEventUpdate(r updateEventRequest) ports.EventUpdate {
	return ports.EventUpdate{
		Title:       r.Title,
		Description: r.Description,
		Location:    r.Location,
		Category:    r.Category,
		Date:        r.Date,
		Price:       r.Price,
		Image:       r.Image,
	}
}
