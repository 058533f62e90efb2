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

	otelMocks "classbook/infras/otel/mocks"
	"classbook/internal/domains/user/mocks"
	"classbook/internal/domains/user/model"
	"classbook/internal/domains/user/model/dto"
	"classbook/internal/domains/user/service"
	"classbook/shared/constant"
	gDto "classbook/shared/dto"
	"classbook/shared/failure"
)

func newService(t *testing.T) (service.User, *mocks.MockUser) {
	t.Helper()

	ctrl := gomock.NewController(t)
	repo := mocks.NewMockUser(ctrl)

	return service.New(repo, otelMocks.NewOtel()), repo
}

func adminContext() context.Context {
	return context.WithValue(context.Background(), constant.ContextKeyUsername, "admin")
}

func TestUserService_Create(t *testing.T) {
	req := dto.CreateUserRequest{
		Username: "requester1",
		Email:    "requester1@school.example",
		Password: "super-secret-pw",
		Role:     constant.RoleRequester,
		FullName: "Test Requester",
	}

	t.Run("creates a user with a hashed password", func(t *testing.T) {
		svc, repo := newService(t)

		repo.EXPECT().
			Insert(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, user model.User) error {
				assert.Equal(t, "requester1", user.Username)
				assert.Equal(t, constant.RoleRequester, user.Role)
				assert.Equal(t, "admin", user.CreatedBy)
				assert.NotEqual(t, req.Password, user.Password)
				assert.NotEmpty(t, user.Password)

				return nil
			})

		res, err := svc.Create(adminContext(), req)

		assert.NoError(t, err)
		assert.Equal(t, "requester1", res.Username)
	})

	t.Run("maps a unique violation to conflict", func(t *testing.T) {
		svc, repo := newService(t)

		repo.EXPECT().
			Insert(gomock.Any(), gomock.Any()).
			Return(fmt.Errorf("failed to insert data (user): %w", &pq.Error{Code: "23505"}))

		_, err := svc.Create(adminContext(), req)

		assert.Error(t, err)
		assert.Equal(t, http.StatusConflict, failure.GetCode(err))
	})

	t.Run("propagates insert failures", func(t *testing.T) {
		svc, repo := newService(t)

		repo.EXPECT().
			Insert(gomock.Any(), gomock.Any()).
			Return(errors.New("connection refused"))

		_, err := svc.Create(adminContext(), req)

		assert.Error(t, err)
	})
}

func TestUserService_Get(t *testing.T) {
	t.Run("returns an existing user", func(t *testing.T) {
		svc, repo := newService(t)

		repo.EXPECT().
			Get(gomock.Any(), gomock.Any()).
			Return(model.User{ID: "user-id-1", Username: "requester1", Active: true}, nil)

		res, err := svc.Get(context.Background(), "user-id-1")

		assert.NoError(t, err)
		assert.Equal(t, "requester1", res.Username)
	})

	t.Run("returns not found for an unknown id", func(t *testing.T) {
		svc, repo := newService(t)

		repo.EXPECT().
			Get(gomock.Any(), gomock.Any()).
			Return(model.User{}, nil)

		_, err := svc.Get(context.Background(), "missing-id")

		assert.Error(t, err)
		assert.Equal(t, http.StatusNotFound, failure.GetCode(err))
	})
}

func TestUserService_GetAll(t *testing.T) {
	svc, repo := newService(t)

	params := gDto.QueryParams{Page: 1, Limit: 10}

	repo.EXPECT().Count(gomock.Any(), gomock.Any()).Return(2, nil)
	repo.EXPECT().
		GetAll(gomock.Any(), params, gomock.Any()).
		Return([]model.User{
			{ID: "u1", Username: "admin1"},
			{ID: "u2", Username: "requester1"},
		}, nil)

	res, err := svc.GetAll(context.Background(), params, gDto.FilterGroup{})

	assert.NoError(t, err)
	assert.Len(t, res.Users, 2)
	assert.Equal(t, 2, res.TotalData)
}
