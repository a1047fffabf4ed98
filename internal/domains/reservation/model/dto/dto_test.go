package dto_test

import (
	"roomres/internal/domains/reservation/model"
	"roomres/internal/domains/reservation/model/dto"
	gModel "roomres/shared/model"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestCreateReservationRequest_ToModel(t *testing.T) {
	req := dto.CreateReservationRequest{
		Name:      "alice",
		StartDate: "2024-01-10",
		EndDate:   "2024-01-15",
		RoomID:    3,
	}

	start, end, err := model.ParseDateRange(req.StartDate, req.EndDate)
	assert.NoError(t, err)

	mod := req.ToModel("api", start, end)

	assert.NotEmpty(t, mod.ID)
	assert.Equal(t, "alice", mod.Name)
	assert.Equal(t, 3, mod.RoomID)
	assert.Equal(t, "2024-01-10", model.FormatDate(mod.StartDate))
	assert.Equal(t, "2024-01-15", model.FormatDate(mod.EndDate))
	assert.Equal(t, "api", mod.CreatedBy)
	assert.Equal(t, "api", mod.ModifiedBy)
	assert.False(t, mod.CreatedAt.IsZero())
}

func TestCreateReservationRequest_ToModel_UniqueIDs(t *testing.T) {
	req := dto.CreateReservationRequest{
		Name:      "alice",
		StartDate: "2024-01-10",
		EndDate:   "2024-01-15",
		RoomID:    3,
	}

	start, end, _ := model.ParseDateRange(req.StartDate, req.EndDate)

	first := req.ToModel("api", start, end)
	second := req.ToModel("api", start, end)

	assert.NotEqual(t, first.ID, second.ID)
}

func TestReservationResponse_FromModel(t *testing.T) {
	createdAt := time.Date(2024, 1, 2, 10, 0, 0, 0, time.UTC)

	mod := model.Reservation{
		ID:        "some-id",
		Name:      "bob",
		StartDate: time.Date(2024, 1, 10, 0, 0, 0, 0, time.UTC),
		EndDate:   time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC),
		RoomID:    7,
		Metadata: gModel.Metadata{
			CreatedAt:  createdAt,
			ModifiedAt: createdAt,
			CreatedBy:  "api",
			ModifiedBy: "api",
		},
	}

	res := dto.ReservationResponse{}
	res.FromModel(mod)

	assert.Equal(t, "some-id", res.ID)
	assert.Equal(t, "bob", res.Name)
	assert.Equal(t, "2024-01-10", res.StartDate)
	assert.Equal(t, "2024-01-15", res.EndDate)
	assert.Equal(t, 7, res.RoomID)
	assert.NotEmpty(t, res.CreatedAt)
}

func TestFromModels(t *testing.T) {
	models := []model.Reservation{
		{ID: "a", Name: "alice", RoomID: 1},
		{ID: "b", Name: "bob", RoomID: 2},
	}

	responses := dto.FromModels(models)

	assert.Len(t, responses, 2)
	assert.Equal(t, "a", responses[0].ID)
	assert.Equal(t, "b", responses[1].ID)
}

func TestFromModels_Empty(t *testing.T) {
	responses := dto.FromModels(nil)

	assert.NotNil(t, responses)
	assert.Len(t, responses, 0)
}
