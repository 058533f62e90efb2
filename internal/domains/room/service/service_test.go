package service_test

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"classbook/config"
	otelMocks "classbook/infras/otel/mocks"
	s3Mocks "classbook/infras/s3/mocks"
	"classbook/internal/domains/room/mocks"
	"classbook/internal/domains/room/model"
	"classbook/internal/domains/room/model/dto"
	"classbook/internal/domains/room/service"
	cacheMocks "classbook/shared/cache/mocks"
	"classbook/shared/constant"
	gDto "classbook/shared/dto"
	"classbook/shared/failure"
	gModel "classbook/shared/model"
)

type serviceMocks struct {
	repo  *mocks.MockRoom
	cache *cacheMocks.MockRedisCache
	s3    *s3Mocks.MockS3
}

func newService(t *testing.T) (service.Room, serviceMocks) {
	t.Helper()

	ctrl := gomock.NewController(t)
	repo := mocks.NewMockRoom(ctrl)
	redisCache := cacheMocks.NewMockRedisCache(ctrl)
	objectStore := s3Mocks.NewMockS3(ctrl)

	cfg := &config.Config{}
	cfg.Cache.TTL = 300
	cfg.External.S3.BucketName = "classbook"

	svc := service.New(repo, cfg, redisCache, otelMocks.NewOtel(), objectStore)

	return svc, serviceMocks{repo: repo, cache: redisCache, s3: objectStore}
}

func adminContext() context.Context {
	return context.WithValue(context.Background(), constant.ContextKeyUsername, "admin")
}

func roomFixture() model.Room {
	return model.Room{
		ID:       "room-id-1",
		RoomNo:   "R101",
		Name:     "Physics Lab",
		Kind:     model.KindLab,
		Capacity: 30,
		Active:   true,
		Metadata: gModel.Metadata{CreatedBy: "admin"},
	}
}

func TestRoomService_Create(t *testing.T) {
	t.Run("creates a room without an image", func(t *testing.T) {
		svc, m := newService(t)

		req := dto.CreateRoomRequest{
			RoomNo: "R101",
			Name:   "Physics Lab",
			Kind:   model.KindLab,
		}

		m.repo.EXPECT().
			Insert(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, room model.Room) error {
				assert.Equal(t, "R101", room.RoomNo)
				assert.Equal(t, "admin", room.CreatedBy)
				assert.True(t, room.Active)

				return nil
			})
		m.cache.EXPECT().Clear(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()

		err := svc.Create(adminContext(), req)

		assert.NoError(t, err)
	})

	t.Run("returns conflict when the room number is taken", func(t *testing.T) {
		svc, m := newService(t)

		req := dto.CreateRoomRequest{
			RoomNo: "R101",
			Name:   "Physics Lab",
			Kind:   model.KindLab,
		}

		m.repo.EXPECT().
			Insert(gomock.Any(), gomock.Any()).
			Return(fmt.Errorf("failed to insert data (room): %w", &pq.Error{Code: "23505"}))

		err := svc.Create(adminContext(), req)

		assert.Error(t, err)
		assert.Equal(t, http.StatusConflict, failure.GetCode(err))
	})
}

func TestRoomService_Get(t *testing.T) {
	t.Run("returns a cached room without hitting the repository", func(t *testing.T) {
		svc, m := newService(t)

		m.cache.EXPECT().
			Get(gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, _ string, value any) error {
				res, ok := value.(*dto.RoomResponse)
				assert.True(t, ok)
				res.FromModel(roomFixture())

				return nil
			})

		res, err := svc.Get(context.Background(), "R101")

		assert.NoError(t, err)
		assert.Equal(t, "R101", res.RoomNo)
	})

	t.Run("falls back to the repository on a cache miss", func(t *testing.T) {
		svc, m := newService(t)

		m.cache.EXPECT().Get(gomock.Any(), gomock.Any(), gomock.Any()).Return(errors.New("redis: nil"))
		m.repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(roomFixture(), nil)
		m.cache.EXPECT().Save(gomock.Any(), gomock.Any(), gomock.Any(), 300).Return(nil).AnyTimes()

		res, err := svc.Get(context.Background(), "R101")

		assert.NoError(t, err)
		assert.Equal(t, "Physics Lab", res.Name)
	})

	t.Run("returns not found for an unknown room", func(t *testing.T) {
		svc, m := newService(t)

		m.cache.EXPECT().Get(gomock.Any(), gomock.Any(), gomock.Any()).Return(errors.New("redis: nil"))
		m.repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(model.Room{}, nil)

		_, err := svc.Get(context.Background(), "R999")

		assert.Error(t, err)
		assert.Equal(t, http.StatusNotFound, failure.GetCode(err))
	})
}

func TestRoomService_GetAll(t *testing.T) {
	t.Run("returns rooms with pagination on a cache miss", func(t *testing.T) {
		svc, m := newService(t)

		params := gDto.QueryParams{Page: 1, Limit: 10}

		m.cache.EXPECT().Get(gomock.Any(), gomock.Any(), gomock.Any()).Return(errors.New("redis: nil")).Times(2)
		m.repo.EXPECT().Count(gomock.Any(), gomock.Any()).Return(1, nil)
		m.repo.EXPECT().GetAll(gomock.Any(), params, gomock.Any()).Return([]model.Room{roomFixture()}, nil)
		m.cache.EXPECT().Save(gomock.Any(), gomock.Any(), gomock.Any(), 300).Return(nil).AnyTimes()

		res, err := svc.GetAll(context.Background(), params, gDto.FilterGroup{})

		assert.NoError(t, err)
		assert.Len(t, res.Rooms, 1)
		assert.Equal(t, 1, res.TotalData)
	})

	t.Run("propagates repository failures", func(t *testing.T) {
		svc, m := newService(t)

		params := gDto.QueryParams{Page: 1, Limit: 10}

		m.cache.EXPECT().Get(gomock.Any(), gomock.Any(), gomock.Any()).Return(errors.New("redis: nil")).Times(2)
		m.repo.EXPECT().Count(gomock.Any(), gomock.Any()).Return(0, errors.New("connection refused"))

		_, err := svc.GetAll(context.Background(), params, gDto.FilterGroup{})

		assert.Error(t, err)
	})
}

func TestRoomService_Update(t *testing.T) {
	t.Run("updates fields and invalidates caches", func(t *testing.T) {
		svc, m := newService(t)

		name := "Chemistry Lab"
		req := dto.UpdateRoomRequest{Name: name}

		m.repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(roomFixture(), nil)
		m.repo.EXPECT().
			Update(gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, fields map[string]any, _ gDto.FilterGroup) error {
				assert.Equal(t, name, fields["name"])
				assert.Equal(t, "admin", fields[constant.FieldModifiedBy])

				return nil
			})
		m.cache.EXPECT().Delete(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
		m.cache.EXPECT().Clear(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()

		err := svc.Update(adminContext(), req, "R101")

		assert.NoError(t, err)
	})

	t.Run("returns not found for an unknown room", func(t *testing.T) {
		svc, m := newService(t)

		m.repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(model.Room{}, nil)

		err := svc.Update(adminContext(), dto.UpdateRoomRequest{Name: "New"}, "R999")

		assert.Error(t, err)
		assert.Equal(t, http.StatusNotFound, failure.GetCode(err))
	})
}

func TestRoomService_Delete(t *testing.T) {
	t.Run("deletes an existing room", func(t *testing.T) {
		svc, m := newService(t)

		m.repo.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(true, nil)
		m.repo.EXPECT().Delete(gomock.Any(), gomock.Any()).Return(nil)
		m.cache.EXPECT().Delete(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
		m.cache.EXPECT().Clear(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()

		err := svc.Delete(context.Background(), "R101")

		assert.NoError(t, err)
	})

	t.Run("returns not found for an unknown room", func(t *testing.T) {
		svc, m := newService(t)

		m.repo.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(false, nil)

		err := svc.Delete(context.Background(), "R999")

		assert.Error(t, err)
		assert.Equal(t, http.StatusNotFound, failure.GetCode(err))
	})
}
