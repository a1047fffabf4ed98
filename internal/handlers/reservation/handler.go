package reservation

import (
	"net/http"
	"roomres/infras/otel"
	"roomres/internal/domains/reservation/model/dto"
	"roomres/internal/domains/reservation/service"
	"roomres/shared/constant"
	"roomres/shared/failure"
	"roomres/shared/validator"
	"roomres/transport/http/response"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/rs/zerolog/log"
)

type Handler struct {
	service service.Reservation
	otel    otel.Otel
}

func New(service service.Reservation, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/reservation", func(routerGroup chi.Router) {
		routerGroup.Post("/", handler.CreateReservation)
		routerGroup.Put("/update", handler.UpdateReservation)
		routerGroup.Delete("/delete", handler.CancelReservation)
		routerGroup.Get("/by-name/{name}", handler.GetReservationsByName)
		routerGroup.Get("/by-room/{room_id}", handler.GetReservationsByRoom)
		routerGroup.Get("/{id}", handler.GetReservationByID)
	})
}

// CreateReservation books a room for a guest over a date range.
// @Summary Create a new reservation
// @Description Book a room for the given guest and date range. Dates are inclusive on both ends.
// @Tags Reservation
// @Accept json
// @Produce json
// @Param request body dto.CreateReservationRequest true "Create Reservation Request"
// @Success 200 {object} dto.ReservationResponse "Reservation created"
// @Failure 400 {object} response.Error
// @Failure 409 {object} response.Error
// @Failure 422 {object} response.Error
// @Router /v1/reservation [post]
func (handler *Handler) CreateReservation(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CreateReservation")
	defer scope.End()

	req := dto.CreateReservationRequest{}

	if err := validator.Validate(request.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(writer, err)

		return
	}

	res, err := handler.service.Create(ctx, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to create reservation")

		response.WithError(writer, err)

		return
	}

	scope.AddEvent("Reservation created successfully")

	response.WithResult(writer, http.StatusOK, res)
}

// GetReservationsByName lists every reservation held under a guest name.
// @Summary Get reservations by guest name
// @Description Retrieve all reservations made under the given name, ordered by start date.
// @Tags Reservation
// @Accept json
// @Produce json
// @Param name path string true "Guest name"
// @Success 200 {array} dto.ReservationResponse "Reservations for the guest"
// @Failure 500 {object} response.Error
// @Router /v1/reservation/by-name/{name} [get]
func (handler *Handler) GetReservationsByName(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetReservationsByName")
	defer scope.End()

	name := chi.URLParam(r, constant.RequestParamName)

	reservations, err := handler.service.GetByName(ctx, name)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get reservations by name")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Reservations retrieved successfully")

	response.WithResult(w, http.StatusOK, reservations)
}

// GetReservationsByRoom lists the reservations booked for one room.
// @Summary Get reservations by room
// @Description Retrieve all reservations for the given room id, ordered by start date.
// @Tags Reservation
// @Accept json
// @Produce json
// @Param room_id path int true "Room ID"
// @Success 200 {array} dto.ReservationResponse "Reservations for the room"
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/reservation/by-room/{room_id} [get]
func (handler *Handler) GetReservationsByRoom(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetReservationsByRoom")
	defer scope.End()

	roomID, err := strconv.Atoi(chi.URLParam(r, constant.RequestParamRoomID))
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to parse room_id parameter")

		response.WithError(w, failure.InvalidRoomIDParam)

		return
	}

	reservations, err := handler.service.GetByRoom(ctx, roomID)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get reservations by room")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Reservations retrieved successfully")

	response.WithResult(w, http.StatusOK, reservations)
}

// GetReservationByID retrieves one reservation by its id.
// @Summary Get a reservation by ID
// @Description Retrieve a reservation by its unique identifier.
// @Tags Reservation
// @Accept json
// @Produce json
// @Param id path string true "Reservation ID"
// @Success 200 {object} dto.ReservationResponse "Reservation details"
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/reservation/{id} [get]
func (handler *Handler) GetReservationByID(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetReservationByID")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	reservation, err := handler.service.Get(ctx, id)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get reservation by ID")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Reservation retrieved successfully")

	response.WithResult(w, http.StatusOK, reservation)
}

// UpdateReservation moves an existing reservation to new dates.
// @Summary Update a reservation's dates
// @Description Move a reservation to a new date range. The target is addressed by id, or by exact match on its current fields.
// @Tags Reservation
// @Accept json
// @Produce json
// @Param request body dto.UpdateReservationRequest true "Update Reservation Request"
// @Success 200 {object} response.Message "Reservation updated"
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 409 {object} response.Error
// @Failure 422 {object} response.Error
// @Router /v1/reservation/update [put]
func (handler *Handler) UpdateReservation(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".UpdateReservation")
	defer scope.End()

	req := dto.UpdateReservationRequest{}
	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	if err := handler.service.Update(ctx, req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to update reservation")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Reservation updated successfully")

	response.WithMessage(w, http.StatusOK, "Reservation updated successfully")
}

// CancelReservation removes a reservation and frees its dates.
// @Summary Cancel a reservation
// @Description Cancel a reservation, addressed by id or by exact match on its fields.
// @Tags Reservation
// @Accept json
// @Produce json
// @Param request body dto.CancelReservationRequest true "Cancel Reservation Request"
// @Success 200 {object} response.Message "Reservation cancelled"
// @Failure 404 {object} response.Error
// @Failure 422 {object} response.Error
// @Router /v1/reservation/delete [delete]
func (handler *Handler) CancelReservation(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CancelReservation")
	defer scope.End()

	req := dto.CancelReservationRequest{}
	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	if err := handler.service.Cancel(ctx, req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to cancel reservation")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Reservation cancelled successfully")

	response.WithMessage(w, http.StatusOK, "Reservation cancelled successfully")
}
