package service_test

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"roomres/config"
	"roomres/infras/otel/mocks"
	resMocks "roomres/internal/domains/reservation/mocks"
	"roomres/internal/domains/reservation/model"
	"roomres/internal/domains/reservation/model/dto"
	"roomres/internal/domains/reservation/service"
	cacheMocks "roomres/shared/cache/mocks"
	"roomres/shared/failure"
)

func TestReservationService_Create(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := resMocks.NewMockReservation(ctrl)
	mockCache := cacheMocks.NewMockRedisCache(ctrl)
	mockOtel := mocks.NewOtel()

	cfg := &config.Config{}
	cfg.Cache.TTL = 3600

	svc := service.New(mockRepo, cfg, mockCache, mockOtel)

	stored := model.Reservation{
		ID:     "11111111-1111-1111-1111-111111111111",
		Name:   "Alice",
		RoomID: 3,
	}

	tests := []struct {
		name      string
		req       dto.CreateReservationRequest
		setupMock func()
		wantErr   bool
		wantCode  int
	}{
		{
			name: "successful creation with no conflicts",
			req: dto.CreateReservationRequest{
				Name:      "Alice",
				StartDate: "2026-09-01",
				EndDate:   "2026-09-05",
				RoomID:    3,
			},
			setupMock: func() {
				mockRepo.EXPECT().
					FindOverlapping(gomock.Any(), 3, "2026-09-01", "2026-09-05").
					Return(nil, nil)

				mockRepo.EXPECT().
					Insert(gomock.Any(), gomock.Any()).
					Return(nil)

				mockCache.EXPECT().
					Clear(gomock.Any(), gomock.Any()).
					Return(nil).
					AnyTimes()
			},
			wantErr: false,
		},
		{
			name: "rejected when intervals share a boundary day",
			req: dto.CreateReservationRequest{
				Name:      "Bob",
				StartDate: "2026-09-05",
				EndDate:   "2026-09-07",
				RoomID:    3,
			},
			setupMock: func() {
				mockRepo.EXPECT().
					FindOverlapping(gomock.Any(), 3, "2026-09-05", "2026-09-07").
					Return([]model.Reservation{stored}, nil)
			},
			wantErr:  true,
			wantCode: http.StatusConflict,
		},
		{
			name: "room id outside the pool",
			req: dto.CreateReservationRequest{
				Name:      "Carol",
				StartDate: "2026-09-01",
				EndDate:   "2026-09-05",
				RoomID:    11,
			},
			setupMock: func() {},
			wantErr:   true,
			wantCode:  http.StatusBadRequest,
		},
		{
			name: "end date before start date",
			req: dto.CreateReservationRequest{
				Name:      "Dave",
				StartDate: "2026-09-05",
				EndDate:   "2026-09-01",
				RoomID:    3,
			},
			setupMock: func() {},
			wantErr:   true,
			wantCode:  http.StatusBadRequest,
		},
		{
			name: "malformed date",
			req: dto.CreateReservationRequest{
				Name:      "Eve",
				StartDate: "09/01/2026",
				EndDate:   "2026-09-05",
				RoomID:    3,
			},
			setupMock: func() {},
			wantErr:   true,
			wantCode:  http.StatusUnprocessableEntity,
		},
		{
			name: "repository error on insert",
			req: dto.CreateReservationRequest{
				Name:      "Frank",
				StartDate: "2026-10-01",
				EndDate:   "2026-10-02",
				RoomID:    5,
			},
			setupMock: func() {
				mockRepo.EXPECT().
					FindOverlapping(gomock.Any(), 5, "2026-10-01", "2026-10-02").
					Return(nil, nil)

				mockRepo.EXPECT().
					Insert(gomock.Any(), gomock.Any()).
					Return(errors.New("database error"))
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setupMock()

			res, err := svc.Create(context.Background(), tt.req)

			if tt.wantErr {
				assert.Error(t, err)

				if tt.wantCode != 0 {
					assert.Equal(t, tt.wantCode, failure.GetCode(err))
				}
			} else {
				assert.NoError(t, err)
				assert.NotEmpty(t, res.ID)
				assert.Equal(t, tt.req.Name, res.Name)
				assert.Equal(t, tt.req.StartDate, res.StartDate)
				assert.Equal(t, tt.req.EndDate, res.EndDate)
				assert.Equal(t, tt.req.RoomID, res.RoomID)
			}
		})
	}
}

func TestReservationService_Get(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := resMocks.NewMockReservation(ctrl)
	mockCache := cacheMocks.NewMockRedisCache(ctrl)
	mockOtel := mocks.NewOtel()

	cfg := &config.Config{}
	cfg.Cache.TTL = 3600

	svc := service.New(mockRepo, cfg, mockCache, mockOtel)

	reservation := model.Reservation{
		ID:     "11111111-1111-1111-1111-111111111111",
		Name:   "Alice",
		RoomID: 3,
	}

	tests := []struct {
		name      string
		id        string
		setupMock func()
		wantErr   bool
		wantCode  int
		wantID    string
	}{
		{
			name: "cache hit",
			id:   reservation.ID,
			setupMock: func() {
				mockCache.EXPECT().
					Get(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(nil)
			},
			wantErr: false,
		},
		{
			name: "cache miss, found in db",
			id:   reservation.ID,
			setupMock: func() {
				mockCache.EXPECT().
					Get(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(errors.New("cache miss"))

				mockRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(reservation, nil)

				mockCache.EXPECT().
					Save(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
					Return(nil).
					AnyTimes()
			},
			wantErr: false,
			wantID:  reservation.ID,
		},
		{
			name: "reservation not found",
			id:   "22222222-2222-2222-2222-222222222222",
			setupMock: func() {
				mockCache.EXPECT().
					Get(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(errors.New("cache miss"))

				mockRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(model.Reservation{}, nil)
			},
			wantErr:  true,
			wantCode: http.StatusNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setupMock()

			res, err := svc.Get(context.Background(), tt.id)

			if tt.wantErr {
				assert.Error(t, err)

				if tt.wantCode != 0 {
					assert.Equal(t, tt.wantCode, failure.GetCode(err))
				}
			} else {
				assert.NoError(t, err)

				if tt.wantID != "" {
					assert.Equal(t, tt.wantID, res.ID)
				}
			}
		})
	}
}

func TestReservationService_GetByName(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := resMocks.NewMockReservation(ctrl)
	mockCache := cacheMocks.NewMockRedisCache(ctrl)
	mockOtel := mocks.NewOtel()

	cfg := &config.Config{}
	cfg.Cache.TTL = 3600

	svc := service.New(mockRepo, cfg, mockCache, mockOtel)

	models := []model.Reservation{
		{ID: "11111111-1111-1111-1111-111111111111", Name: "Alice", RoomID: 3},
		{ID: "22222222-2222-2222-2222-222222222222", Name: "Alice", RoomID: 7},
	}

	tests := []struct {
		name      string
		guest     string
		setupMock func()
		wantErr   bool
		wantLen   int
	}{
		{
			name:  "cache hit",
			guest: "Alice",
			setupMock: func() {
				mockCache.EXPECT().
					Get(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(nil)
			},
			wantErr: false,
		},
		{
			name:  "cache miss, reservations found",
			guest: "Alice",
			setupMock: func() {
				mockCache.EXPECT().
					Get(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(errors.New("cache miss"))

				mockRepo.EXPECT().
					GetAll(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(models, nil)

				mockCache.EXPECT().
					Save(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
					Return(nil).
					AnyTimes()
			},
			wantErr: false,
			wantLen: 2,
		},
		{
			name:  "cache miss, no reservations",
			guest: "Nobody",
			setupMock: func() {
				mockCache.EXPECT().
					Get(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(errors.New("cache miss"))

				mockRepo.EXPECT().
					GetAll(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(nil, nil)

				mockCache.EXPECT().
					Save(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
					Return(nil).
					AnyTimes()
			},
			wantErr: false,
			wantLen: 0,
		},
		{
			name:  "repository error",
			guest: "Alice",
			setupMock: func() {
				mockCache.EXPECT().
					Get(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(errors.New("cache miss"))

				mockRepo.EXPECT().
					GetAll(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(nil, errors.New("database error"))
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setupMock()

			res, err := svc.GetByName(context.Background(), tt.guest)

			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
				assert.Len(t, res, tt.wantLen)
			}
		})
	}
}

func TestReservationService_GetByRoom(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := resMocks.NewMockReservation(ctrl)
	mockCache := cacheMocks.NewMockRedisCache(ctrl)
	mockOtel := mocks.NewOtel()

	cfg := &config.Config{}
	cfg.Cache.TTL = 3600

	svc := service.New(mockRepo, cfg, mockCache, mockOtel)

	tests := []struct {
		name      string
		roomID    int
		setupMock func()
		wantErr   bool
		wantCode  int
	}{
		{
			name:   "room id outside the pool",
			roomID: 0,
			setupMock: func() {
			},
			wantErr:  true,
			wantCode: http.StatusBadRequest,
		},
		{
			name:   "cache miss, reservations found",
			roomID: 3,
			setupMock: func() {
				mockCache.EXPECT().
					Get(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(errors.New("cache miss"))

				mockRepo.EXPECT().
					GetAll(gomock.Any(), gomock.Any(), gomock.Any()).
					Return([]model.Reservation{{ID: "id-1", RoomID: 3}}, nil)

				mockCache.EXPECT().
					Save(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
					Return(nil).
					AnyTimes()
			},
			wantErr: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setupMock()

			_, err := svc.GetByRoom(context.Background(), tt.roomID)

			if tt.wantErr {
				assert.Error(t, err)

				if tt.wantCode != 0 {
					assert.Equal(t, tt.wantCode, failure.GetCode(err))
				}
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestReservationService_Update(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := resMocks.NewMockReservation(ctrl)
	mockCache := cacheMocks.NewMockRedisCache(ctrl)
	mockOtel := mocks.NewOtel()

	cfg := &config.Config{}
	cfg.Cache.TTL = 3600

	svc := service.New(mockRepo, cfg, mockCache, mockOtel)

	stored := model.Reservation{
		ID:     "11111111-1111-1111-1111-111111111111",
		Name:   "Alice",
		RoomID: 3,
	}

	other := model.Reservation{
		ID:     "22222222-2222-2222-2222-222222222222",
		Name:   "Bob",
		RoomID: 3,
	}

	tests := []struct {
		name      string
		req       dto.UpdateReservationRequest
		setupMock func()
		wantErr   bool
		wantCode  int
	}{
		{
			name: "moved dates only conflict with the reservation itself",
			req: dto.UpdateReservationRequest{
				TargetReservation: dto.TargetReservation{ID: stored.ID},
				NewStartDate:      "2026-09-02",
				NewEndDate:        "2026-09-06",
			},
			setupMock: func() {
				mockRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(stored, nil)

				mockRepo.EXPECT().
					FindOverlapping(gomock.Any(), 3, "2026-09-02", "2026-09-06").
					Return([]model.Reservation{stored}, nil)

				mockRepo.EXPECT().
					Update(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(nil)

				mockCache.EXPECT().
					Clear(gomock.Any(), gomock.Any()).
					Return(nil).
					AnyTimes()
			},
			wantErr: false,
		},
		{
			name: "moved dates collide with another reservation",
			req: dto.UpdateReservationRequest{
				TargetReservation: dto.TargetReservation{ID: stored.ID},
				NewStartDate:      "2026-09-02",
				NewEndDate:        "2026-09-06",
			},
			setupMock: func() {
				mockRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(stored, nil)

				mockRepo.EXPECT().
					FindOverlapping(gomock.Any(), 3, "2026-09-02", "2026-09-06").
					Return([]model.Reservation{stored, other}, nil)
			},
			wantErr:  true,
			wantCode: http.StatusConflict,
		},
		{
			name: "target not found leaves the store untouched",
			req: dto.UpdateReservationRequest{
				TargetReservation: dto.TargetReservation{ID: other.ID},
				NewStartDate:      "2026-09-02",
				NewEndDate:        "2026-09-06",
			},
			setupMock: func() {
				mockRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(model.Reservation{}, nil)
			},
			wantErr:  true,
			wantCode: http.StatusNotFound,
		},
		{
			name: "target addressed by full field match",
			req: dto.UpdateReservationRequest{
				TargetReservation: dto.TargetReservation{
					Name:      "Alice",
					StartDate: "2026-09-01",
					EndDate:   "2026-09-05",
					RoomID:    3,
				},
				NewStartDate: "2026-09-10",
				NewEndDate:   "2026-09-12",
			},
			setupMock: func() {
				mockRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(stored, nil)

				mockRepo.EXPECT().
					FindOverlapping(gomock.Any(), 3, "2026-09-10", "2026-09-12").
					Return(nil, nil)

				mockRepo.EXPECT().
					Update(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(nil)

				mockCache.EXPECT().
					Clear(gomock.Any(), gomock.Any()).
					Return(nil).
					AnyTimes()
			},
			wantErr: false,
		},
		{
			name: "new end date before new start date",
			req: dto.UpdateReservationRequest{
				TargetReservation: dto.TargetReservation{ID: stored.ID},
				NewStartDate:      "2026-09-06",
				NewEndDate:        "2026-09-02",
			},
			setupMock: func() {
				mockRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(stored, nil)
			},
			wantErr:  true,
			wantCode: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setupMock()

			err := svc.Update(context.Background(), tt.req)

			if tt.wantErr {
				assert.Error(t, err)

				if tt.wantCode != 0 {
					assert.Equal(t, tt.wantCode, failure.GetCode(err))
				}
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestReservationService_Cancel(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := resMocks.NewMockReservation(ctrl)
	mockCache := cacheMocks.NewMockRedisCache(ctrl)
	mockOtel := mocks.NewOtel()

	cfg := &config.Config{}
	cfg.Cache.TTL = 3600

	svc := service.New(mockRepo, cfg, mockCache, mockOtel)

	stored := model.Reservation{
		ID:     "11111111-1111-1111-1111-111111111111",
		Name:   "Alice",
		RoomID: 3,
	}

	tests := []struct {
		name      string
		req       dto.CancelReservationRequest
		setupMock func()
		wantErr   bool
		wantCode  int
	}{
		{
			name: "successful cancellation by id",
			req: dto.CancelReservationRequest{
				TargetReservation: dto.TargetReservation{ID: stored.ID},
			},
			setupMock: func() {
				mockRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(stored, nil)

				mockRepo.EXPECT().
					Delete(gomock.Any(), gomock.Any()).
					Return(nil)

				mockCache.EXPECT().
					Clear(gomock.Any(), gomock.Any()).
					Return(nil).
					AnyTimes()
			},
			wantErr: false,
		},
		{
			name: "unknown reservation",
			req: dto.CancelReservationRequest{
				TargetReservation: dto.TargetReservation{ID: "33333333-3333-3333-3333-333333333333"},
			},
			setupMock: func() {
				mockRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(model.Reservation{}, nil)
			},
			wantErr:  true,
			wantCode: http.StatusNotFound,
		},
		{
			name: "malformed target dates without id",
			req: dto.CancelReservationRequest{
				TargetReservation: dto.TargetReservation{
					Name:      "Alice",
					StartDate: "not-a-date",
					EndDate:   "2026-09-05",
					RoomID:    3,
				},
			},
			setupMock: func() {},
			wantErr:   true,
			wantCode:  http.StatusUnprocessableEntity,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setupMock()

			err := svc.Cancel(context.Background(), tt.req)

			if tt.wantErr {
				assert.Error(t, err)

				if tt.wantCode != 0 {
					assert.Equal(t, tt.wantCode, failure.GetCode(err))
				}
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
