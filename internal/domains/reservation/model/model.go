package model

import (
	"roomres/shared/model"
	"time"
)

const (
	TableName  = "reservations"
	EntityName = "reservation"

	FieldID        = "id"
	FieldName      = "name"
	FieldStartDate = "start_date"
	FieldEndDate   = "end_date"
	FieldRoomID    = "room_id"
)

// The bookable pool is fixed: rooms are identified by integer ids 1-10.
const (
	MinRoomID = 1
	MaxRoomID = 10
)

type Reservation struct {
	ID        string    `db:"id"`
	Name      string    `db:"name"`
	StartDate time.Time `db:"start_date"`
	EndDate   time.Time `db:"end_date"`
	RoomID    int       `db:"room_id"`
	model.Metadata
}

// ValidRoomID reports whether id falls inside the fixed room pool.
func ValidRoomID(id int) bool {
	return id >= MinRoomID && id <= MaxRoomID
}
