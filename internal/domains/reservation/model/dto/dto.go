package dto

import (
	"roomres/internal/domains/reservation/model"
	gDto "roomres/shared/dto"
	gModel "roomres/shared/model"
	"roomres/shared/timezone"
	"time"

	"github.com/google/uuid"
)

type CreateReservationRequest struct {
	Name      string `json:"name"       validate:"required,max=100"`
	StartDate string `json:"start_date" validate:"required"`
	EndDate   string `json:"end_date"   validate:"required"`
	RoomID    int    `json:"room_id"    validate:"required"`
}

// ToModel builds a reservation with a freshly generated id from the
// already-parsed date pair.
func (c *CreateReservationRequest) ToModel(user string, startDate, endDate time.Time) model.Reservation {
	return model.Reservation{
		ID:        uuid.NewString(),
		Name:      c.Name,
		StartDate: startDate,
		EndDate:   endDate,
		RoomID:    c.RoomID,
		Metadata: gModel.Metadata{
			CreatedAt:  timezone.Now(),
			ModifiedAt: timezone.Now(),
			CreatedBy:  user,
			ModifiedBy: user,
		},
	}
}

// TargetReservation addresses an existing reservation: by id when one is
// supplied, otherwise by exact match on all four submitted fields.
type TargetReservation struct {
	ID        string `json:"id"         validate:"omitempty,uuid"`
	Name      string `json:"name"       validate:"required_without=ID"`
	StartDate string `json:"start_date" validate:"required_without=ID"`
	EndDate   string `json:"end_date"   validate:"required_without=ID"`
	RoomID    int    `json:"room_id"    validate:"required_without=ID"`
}

type UpdateReservationRequest struct {
	TargetReservation
	NewStartDate string `json:"new_start_date" validate:"required"`
	NewEndDate   string `json:"new_end_date"   validate:"required"`
}

type CancelReservationRequest struct {
	TargetReservation
}

type ReservationResponse struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	StartDate string `json:"start_date"`
	EndDate   string `json:"end_date"`
	RoomID    int    `json:"room_id"`
	gDto.Metadata
}

func (r *ReservationResponse) FromModel(mod model.Reservation) {
	r.ID = mod.ID
	r.Name = mod.Name
	r.StartDate = model.FormatDate(mod.StartDate)
	r.EndDate = model.FormatDate(mod.EndDate)
	r.RoomID = mod.RoomID
	r.Metadata.FromModel(mod.Metadata)
}

func FromModels(models []model.Reservation) []ReservationResponse {
	responses := make([]ReservationResponse, len(models))
	for i, mod := range models {
		responses[i].FromModel(mod)
	}

	return responses
}
