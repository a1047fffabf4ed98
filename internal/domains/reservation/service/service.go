package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=../mocks/service_mock.go -package=mocks -mock_names=Reservation=MockReservationService

import (
	"context"
	"errors"
	"fmt"
	"roomres/config"
	"roomres/infras/otel"
	"roomres/internal/domains/reservation/model"
	"roomres/internal/domains/reservation/model/dto"
	"roomres/internal/domains/reservation/repository"
	"roomres/shared"
	"roomres/shared/cache"
	"roomres/shared/constant"
	gDto "roomres/shared/dto"
	"roomres/shared/failure"
	"strconv"

	"github.com/rs/zerolog/log"
)

const (
	cachePrefix         = "reservation"
	cacheGetReservation = "reservation:get"
	cacheByName         = "reservation:name"
	cacheByRoom         = "reservation:room"
)

// auditActor stamps created_by/modified_by; the API carries no
// authentication, so every write is attributed to the service itself.
const auditActor = "api"

type Reservation interface {
	Create(ctx context.Context, req dto.CreateReservationRequest) (dto.ReservationResponse, error)
	Get(ctx context.Context, id string) (dto.ReservationResponse, error)
	GetByName(ctx context.Context, name string) ([]dto.ReservationResponse, error)
	GetByRoom(ctx context.Context, roomID int) ([]dto.ReservationResponse, error)
	Update(ctx context.Context, req dto.UpdateReservationRequest) error
	Cancel(ctx context.Context, req dto.CancelReservationRequest) error
}

type serviceImpl struct {
	repo  repository.Reservation
	cfg   *config.Config
	cache cache.RedisCache
	otel  otel.Otel
}

func New(repo repository.Reservation, cfg *config.Config, cache cache.RedisCache, otel otel.Otel) Reservation {
	return &serviceImpl{
		repo:  repo,
		cfg:   cfg,
		cache: cache,
		otel:  otel,
	}
}

func (s *serviceImpl) Create(ctx context.Context, req dto.CreateReservationRequest) (res dto.ReservationResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Create")
	defer scope.End()
	defer scope.TraceIfError(err)

	startDate, endDate, err := model.ParseDateRange(req.StartDate, req.EndDate)
	if err != nil {
		return res, dateFailure(err)
	}

	if !model.ValidRoomID(req.RoomID) {
		return res, failure.BadRequestFromString(fmt.Sprintf("we only have room ids %d-%d", model.MinRoomID, model.MaxRoomID)) //nolint:wrapcheck
	}

	available, err := s.isAvailable(ctx, req.RoomID, model.FormatDate(startDate), model.FormatDate(endDate), constant.Empty)
	if err != nil {
		log.Error().Err(err).Msg("failed to check room availability")

		return res, fmt.Errorf("failed to check room availability: %w", err)
	}

	if !available {
		return res, failure.Conflict("room not available for the requested dates") //nolint:wrapcheck
	}

	reservation := req.ToModel(auditActor, startDate, endDate)

	if err = s.repo.Insert(ctx, reservation); err != nil {
		log.Error().Err(err).Msg("failed to create reservation")

		return res, err
	}

	go func() {
		c := context.WithoutCancel(ctx)

		shared.InvalidateCaches(c, s.cache, cachePrefix)
	}()

	res.FromModel(reservation)

	return res, nil
}

func (s *serviceImpl) Get(ctx context.Context, id string) (res dto.ReservationResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Get")
	defer scope.End()
	defer scope.TraceIfError(err)

	cacheKey := shared.BuildCacheKey(cacheGetReservation, id)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for reservation")

		return res, nil
	}

	reservation, err := s.repo.Get(ctx, shared.FilterByID(id, model.FieldID, model.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get reservation")

		return res, fmt.Errorf("failed to get reservation: %w", err)
	}

	if reservation.ID == constant.Empty {
		return res, failure.NotFound("reservation not found") //nolint:wrapcheck
	}

	res.FromModel(reservation)

	s.saveToCache(ctx, cacheKey, res)

	return res, nil
}

func (s *serviceImpl) GetByName(ctx context.Context, name string) (res []dto.ReservationResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetByName")
	defer scope.End()
	defer scope.TraceIfError(err)

	cacheKey := shared.BuildCacheKey(cacheByName, name)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for reservations by name")

		return res, nil
	}

	filter := gDto.FilterGroup{
		Operator: gDto.FilterGroupOperatorAnd,
		Filters: []any{
			gDto.Filter{
				Field:    model.FieldName,
				Value:    name,
				Operator: gDto.FilterOperatorEq,
				Table:    model.TableName,
			},
		},
	}

	models, err := s.repo.GetAll(ctx, sortByStartDate(), filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get reservations by name")

		return res, fmt.Errorf("failed to get reservations by name: %w", err)
	}

	res = dto.FromModels(models)

	s.saveToCache(ctx, cacheKey, res)

	return res, nil
}

func (s *serviceImpl) GetByRoom(ctx context.Context, roomID int) (res []dto.ReservationResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetByRoom")
	defer scope.End()
	defer scope.TraceIfError(err)

	if !model.ValidRoomID(roomID) {
		return res, failure.BadRequestFromString(fmt.Sprintf("we only have room ids %d-%d", model.MinRoomID, model.MaxRoomID)) //nolint:wrapcheck
	}

	cacheKey := shared.BuildCacheKey(cacheByRoom, strconv.Itoa(roomID))

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for reservations by room")

		return res, nil
	}

	filter := gDto.FilterGroup{
		Operator: gDto.FilterGroupOperatorAnd,
		Filters: []any{
			gDto.Filter{
				Field:    model.FieldRoomID,
				Value:    roomID,
				Operator: gDto.FilterOperatorEq,
				Table:    model.TableName,
			},
		},
	}

	models, err := s.repo.GetAll(ctx, sortByStartDate(), filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get reservations by room")

		return res, fmt.Errorf("failed to get reservations by room: %w", err)
	}

	res = dto.FromModels(models)

	s.saveToCache(ctx, cacheKey, res)

	return res, nil
}

func (s *serviceImpl) Update(ctx context.Context, req dto.UpdateReservationRequest) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Update")
	defer scope.End()
	defer scope.TraceIfError(err)

	target, err := s.resolveTarget(ctx, req.TargetReservation)
	if err != nil {
		return err
	}

	newStart, newEnd, err := model.ParseDateRange(req.NewStartDate, req.NewEndDate)
	if err != nil {
		return dateFailure(err)
	}

	// The reservation being updated must not conflict with itself.
	available, err := s.isAvailable(ctx, target.RoomID, model.FormatDate(newStart), model.FormatDate(newEnd), target.ID)
	if err != nil {
		log.Error().Err(err).Msg("failed to check room availability")

		return fmt.Errorf("failed to check room availability: %w", err)
	}

	if !available {
		return failure.Conflict("room not available for the requested dates") //nolint:wrapcheck
	}

	dates := struct {
		StartDate string `db:"start_date"`
		EndDate   string `db:"end_date"`
	}{
		StartDate: model.FormatDate(newStart),
		EndDate:   model.FormatDate(newEnd),
	}

	updatedFields := shared.TransformFields(dates, auditActor)

	if err = s.repo.Update(ctx, updatedFields, shared.FilterByID(target.ID, model.FieldID, model.TableName)); err != nil {
		log.Error().Err(err).Msg("failed to update reservation")

		return err
	}

	go func() {
		c := context.WithoutCancel(ctx)

		shared.InvalidateCaches(c, s.cache, cachePrefix)
	}()

	return nil
}

func (s *serviceImpl) Cancel(ctx context.Context, req dto.CancelReservationRequest) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Cancel")
	defer scope.End()
	defer scope.TraceIfError(err)

	target, err := s.resolveTarget(ctx, req.TargetReservation)
	if err != nil {
		return err
	}

	if err = s.repo.Delete(ctx, shared.FilterByID(target.ID, model.FieldID, model.TableName)); err != nil {
		log.Error().Err(err).Msg("failed to cancel reservation")

		return fmt.Errorf("failed to cancel reservation: %w", err)
	}

	go func() {
		c := context.WithoutCancel(ctx)

		shared.InvalidateCaches(c, s.cache, cachePrefix)
	}()

	return nil
}

// isAvailable decides whether the room can take the candidate interval.
// On the update path excludeID removes the reservation being moved from
// the conflict scan; every update would otherwise collide with its own
// stored interval.
func (s *serviceImpl) isAvailable(ctx context.Context, roomID int, startDate, endDate, excludeID string) (bool, error) {
	conflicts, err := s.repo.FindOverlapping(ctx, roomID, startDate, endDate)
	if err != nil {
		return false, fmt.Errorf("failed to scan for conflicting reservations: %w", err)
	}

	for _, conflict := range conflicts {
		if conflict.ID != excludeID {
			return false, nil
		}
	}

	return true, nil
}

// resolveTarget finds the reservation a mutation addresses: by id when
// supplied, otherwise by exact equality on all four submitted fields.
func (s *serviceImpl) resolveTarget(ctx context.Context, target dto.TargetReservation) (model.Reservation, error) {
	var filter gDto.FilterGroup

	if target.ID != constant.Empty {
		filter = shared.FilterByID(target.ID, model.FieldID, model.TableName)
	} else {
		startDate, endDate, err := model.ParseDateRange(target.StartDate, target.EndDate)
		if err != nil {
			return model.Reservation{}, dateFailure(err)
		}

		filter = repository.ExactMatchFilter(target.Name, model.FormatDate(startDate), model.FormatDate(endDate), target.RoomID)
	}

	reservation, err := s.repo.Get(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to look up reservation")

		return model.Reservation{}, fmt.Errorf("failed to look up reservation: %w", err)
	}

	if reservation.ID == constant.Empty {
		return model.Reservation{}, failure.NotFound("reservation not found") //nolint:wrapcheck
	}

	return reservation, nil
}

func (s *serviceImpl) saveToCache(ctx context.Context, key string, value any) {
	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, key, value, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Str("cacheKey", key).Msg("failed to save reservations to cache")
		}
	}()
}

func sortByStartDate() gDto.QueryParams {
	return gDto.QueryParams{
		SortBy:  model.FieldStartDate,
		SortDir: gDto.SortDirAsc,
	}
}

func dateFailure(err error) error {
	if errors.Is(err, model.ErrInvalidDateFormat) {
		return failure.UnprocessableEntity(err.Error()) //nolint:wrapcheck
	}

	return failure.BadRequest(err) //nolint:wrapcheck
}
