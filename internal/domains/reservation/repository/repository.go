package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"
	"errors"
	"roomres/infras/otel"
	"roomres/infras/postgres"
	"roomres/internal/domains/reservation/model"
	"roomres/shared/constant"
	gDto "roomres/shared/dto"
	"roomres/shared/failure"
	gRepo "roomres/shared/repository"

	"github.com/lib/pq"
)

type Reservation interface {
	Insert(ctx context.Context, model model.Reservation) error
	Get(ctx context.Context, filter gDto.FilterGroup, columns ...string) (model.Reservation, error)
	GetAll(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup, columns ...string) ([]model.Reservation, error)
	Exist(ctx context.Context, filter gDto.FilterGroup) (bool, error)
	FindOverlapping(ctx context.Context, roomID int, startDate, endDate string) ([]model.Reservation, error)
	Update(ctx context.Context, req map[string]any, filter gDto.FilterGroup) error
	Delete(ctx context.Context, filter gDto.FilterGroup) error
}

type repositoryImpl struct {
	gRepo.Repository[model.Reservation]
	db   *postgres.Connection
	otel otel.Otel
}

func New(db *postgres.Connection, otel otel.Otel) Reservation {
	return &repositoryImpl{
		Repository: gRepo.NewRepository[model.Reservation](model.EntityName, model.TableName, model.FieldID, db, otel),
		db:         db,
		otel:       otel,
	}
}

// Insert persists a reservation. The reservations table carries an
// exclusion constraint on (room_id, daterange(start_date, end_date, '[]')),
// so a write racing past the in-service availability check still cannot
// commit an overlapping interval; the violation surfaces as a conflict.
func (repo *repositoryImpl) Insert(ctx context.Context, mod model.Reservation) error {
	err := repo.Repository.Insert(ctx, mod)

	return mapExclusionViolation(err)
}

func (repo *repositoryImpl) Update(ctx context.Context, req map[string]any, filter gDto.FilterGroup) error {
	err := repo.Repository.Update(ctx, req, filter)

	return mapExclusionViolation(err)
}

// FindOverlapping returns every reservation for the room whose closed
// date interval shares at least one day with [startDate, endDate].
func (repo *repositoryImpl) FindOverlapping(ctx context.Context, roomID int, startDate, endDate string) ([]model.Reservation, error) {
	params := gDto.QueryParams{
		SortBy:  model.FieldStartDate,
		SortDir: gDto.SortDirAsc,
	}

	return repo.GetAll(ctx, params, OverlapFilter(roomID, startDate, endDate))
}

// OverlapFilter expresses the closed-interval overlap test against stored
// intervals [s, e] for a candidate [S, E]: an existing reservation
// conflicts when s <= S <= e, s <= E <= e, or S <= s and e <= E. Touching
// endpoints count as overlap; rooms turn over at midnight, not mid-day.
func OverlapFilter(roomID int, startDate, endDate string) gDto.FilterGroup {
	return gDto.FilterGroup{
		Operator: gDto.FilterGroupOperatorAnd,
		Filters: []any{
			gDto.Filter{
				Field:    model.FieldRoomID,
				Value:    roomID,
				Operator: gDto.FilterOperatorEq,
				Table:    model.TableName,
			},
			gDto.FilterGroup{
				Operator: gDto.FilterGroupOperatorOr,
				Filters: []any{
					// existing interval contains the candidate start
					gDto.FilterGroup{
						Operator: gDto.FilterGroupOperatorAnd,
						Filters: []any{
							gDto.Filter{
								ArgName:  "cand_start_lo",
								Field:    model.FieldStartDate,
								Value:    startDate,
								Operator: gDto.FilterOperatorLessEq,
								Table:    model.TableName,
							},
							gDto.Filter{
								ArgName:  "cand_start_hi",
								Field:    model.FieldEndDate,
								Value:    startDate,
								Operator: gDto.FilterOperatorGreaterEq,
								Table:    model.TableName,
							},
						},
					},
					// existing interval contains the candidate end
					gDto.FilterGroup{
						Operator: gDto.FilterGroupOperatorAnd,
						Filters: []any{
							gDto.Filter{
								ArgName:  "cand_end_lo",
								Field:    model.FieldStartDate,
								Value:    endDate,
								Operator: gDto.FilterOperatorLessEq,
								Table:    model.TableName,
							},
							gDto.Filter{
								ArgName:  "cand_end_hi",
								Field:    model.FieldEndDate,
								Value:    endDate,
								Operator: gDto.FilterOperatorGreaterEq,
								Table:    model.TableName,
							},
						},
					},
					// candidate interval fully contains the existing one
					gDto.FilterGroup{
						Operator: gDto.FilterGroupOperatorAnd,
						Filters: []any{
							gDto.Filter{
								ArgName:  "contained_lo",
								Field:    model.FieldStartDate,
								Value:    startDate,
								Operator: gDto.FilterOperatorGreaterEq,
								Table:    model.TableName,
							},
							gDto.Filter{
								ArgName:  "contained_hi",
								Field:    model.FieldEndDate,
								Value:    endDate,
								Operator: gDto.FilterOperatorLessEq,
								Table:    model.TableName,
							},
						},
					},
				},
			},
		},
	}
}

// ExactMatchFilter addresses a reservation the way the public API submits
// it: equality on all four domain fields.
func ExactMatchFilter(name, startDate, endDate string, roomID int) gDto.FilterGroup {
	return gDto.FilterGroup{
		Operator: gDto.FilterGroupOperatorAnd,
		Filters: []any{
			gDto.Filter{
				Field:    model.FieldName,
				Value:    name,
				Operator: gDto.FilterOperatorEq,
				Table:    model.TableName,
			},
			gDto.Filter{
				ArgName:  "orig_start",
				Field:    model.FieldStartDate,
				Value:    startDate,
				Operator: gDto.FilterOperatorEq,
				Table:    model.TableName,
			},
			gDto.Filter{
				ArgName:  "orig_end",
				Field:    model.FieldEndDate,
				Value:    endDate,
				Operator: gDto.FilterOperatorEq,
				Table:    model.TableName,
			},
			gDto.Filter{
				Field:    model.FieldRoomID,
				Value:    roomID,
				Operator: gDto.FilterOperatorEq,
				Table:    model.TableName,
			},
		},
	}
}

func mapExclusionViolation(err error) error {
	var pqErr *pq.Error
	if errors.As(err, &pqErr) && string(pqErr.Code) == constant.PqErrorCodeExclusionViolation {
		return failure.Conflict("room not available for the requested dates") //nolint:wrapcheck
	}

	return err
}
