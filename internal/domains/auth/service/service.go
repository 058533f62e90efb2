package service

import (
	"context"
	"fmt"

	"github.com/rs/zerolog/log"

	"classbook/config"
	"classbook/infras/jwt"
	"classbook/infras/otel"
	"classbook/internal/domains/auth/model/dto"
	userModel "classbook/internal/domains/user/model"
	userRepo "classbook/internal/domains/user/repository"
	"classbook/shared/constant"
	gDto "classbook/shared/dto"
	"classbook/shared/failure"
	"classbook/shared/password"
)

type Auth interface {
	Login(ctx context.Context, req dto.LoginRequest) (dto.LoginResponse, error)
	RefreshToken(ctx context.Context, req dto.RefreshTokenRequest) (dto.RefreshTokenResponse, error)
	Verify(ctx context.Context, username, secret string) (bool, error)
}

type serviceImpl struct {
	userRepo   userRepo.User
	cfg        *config.Config
	otel       otel.Otel
	jwtService jwt.JWT
}

func New(userRepo userRepo.User, cfg *config.Config, otel otel.Otel, jwt jwt.JWT) Auth {
	return &serviceImpl{
		userRepo:   userRepo,
		cfg:        cfg,
		otel:       otel,
		jwtService: jwt,
	}
}

func usernameFilter(username string) gDto.FilterGroup {
	return gDto.FilterGroup{
		Filters: []any{
			gDto.Filter{
				Field:    userModel.FieldUsername,
				Operator: gDto.FilterOperatorEq,
				Value:    username,
				Table:    userModel.TableName,
			},
		},
	}
}

func (s *serviceImpl) Login(ctx context.Context, req dto.LoginRequest) (res dto.LoginResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Login")
	defer scope.End()
	defer scope.TraceIfError(err)

	verified, err := s.Verify(ctx, req.Username, req.Password)
	if err != nil {
		return res, err
	}

	if !verified {
		return res, failure.Unauthorized("invalid username or password") //nolint:wrapcheck
	}

	user, err := s.userRepo.Get(ctx, usernameFilter(req.Username))
	if err != nil {
		log.Error().Err(err).Msg("failed to get user")

		return res, fmt.Errorf("failed to get user: %w", err)
	}

	tokenPair, err := s.jwtService.GenerateTokenPair(user.ID, user.Username, user.Role)
	if err != nil {
		log.Error().Err(err).Msg("failed to generate tokens")

		return res, fmt.Errorf("failed to generate tokens: %w", err)
	}

	res.FromTokenPair(tokenPair)

	return res, nil
}

func (s *serviceImpl) RefreshToken(ctx context.Context, req dto.RefreshTokenRequest) (res dto.RefreshTokenResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".RefreshToken")
	defer scope.End()
	defer scope.TraceIfError(err)

	tokenPair, err := s.jwtService.RefreshTokens(req.RefreshToken)
	if err != nil {
		log.Warn().Err(err).Msg("failed to refresh tokens")

		return res, failure.Unauthorized("invalid refresh token") //nolint:wrapcheck
	}

	res.FromTokenPair(tokenPair)

	return res, nil
}

// Verify checks an identity claim against the stored credentials. A wrong
// password or unknown user is a false result, not an error; errors are
// reserved for store failures.
func (s *serviceImpl) Verify(ctx context.Context, username, secret string) (verified bool, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Verify")
	defer scope.End()
	defer scope.TraceIfError(err)

	user, err := s.userRepo.Get(ctx, usernameFilter(username))
	if err != nil {
		log.Error().Err(err).Msg("failed to look up user")

		return false, fmt.Errorf("failed to look up user: %w", err)
	}

	if user.ID == constant.Empty || !user.Active {
		log.Warn().Str("username", username).Msg("identity check for unknown or inactive user")

		return false, nil
	}

	if err := password.Verify(secret, user.Password); err != nil {
		log.Warn().Str("username", username).Msg("identity check with wrong credentials")

		return false, nil
	}

	return true, nil
}
