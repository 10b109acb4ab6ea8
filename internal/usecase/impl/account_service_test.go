package impl

import (
	"context"
	"testing"

	"pokeradar/config"
	"pokeradar/internal/domain/repository"
	"pokeradar/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newAccountFixture() (*fakeUserRepo, *fakePositionRepo, usecase.AccountUsecase) {
	userRepo := newFakeUserRepo()
	positionRepo := newFakePositionRepo()
	cfg := &config.Config{
		Radar: &config.RadarConfig{DefaultRadiusMeters: 1000, MaxRadiusMeters: 5000},
	}

	return userRepo, positionRepo, NewAccountService(userRepo, positionRepo, cfg)
}

func TestAccountService_RegisterNewUser(t *testing.T) {
	_, _, service := newAccountFixture()

	user, err := service.Register(context.Background(), &usecase.RegisterUserInput{
		ChatID:    "12345",
		FirstName: "Ash",
		Username:  "ash_k",
	})
	require.NoError(t, err)
	assert.Equal(t, "12345", user.ChatID)
	assert.Equal(t, "Ash", user.FirstName)
	assert.InEpsilon(t, 1000.0, user.RadiusMeters, 0.001)
	assert.NotZero(t, user.ID)
}

func TestAccountService_RegisterExistingUserKeepsRadius(t *testing.T) {
	_, _, service := newAccountFixture()
	ctx := context.Background()

	first, err := service.Register(ctx, &usecase.RegisterUserInput{ChatID: "12345", FirstName: "Ash"})
	require.NoError(t, err)
	require.NoError(t, service.SetRadius(ctx, "12345", 2500))

	second, err := service.Register(ctx, &usecase.RegisterUserInput{ChatID: "12345", FirstName: "Ashton"})
	require.NoError(t, err)
	assert.Equal(t, first.ID, second.ID)
	assert.Equal(t, "Ashton", second.FirstName)
	assert.InEpsilon(t, 2500.0, second.RadiusMeters, 0.001)
}

func TestAccountService_RegisterRejectsBlankChatID(t *testing.T) {
	_, _, service := newAccountFixture()

	_, err := service.Register(context.Background(), &usecase.RegisterUserInput{ChatID: "   "})
	assert.ErrorIs(t, err, ErrInvalidChatID)
}

func TestAccountService_UpdatePosition(t *testing.T) {
	_, positionRepo, service := newAccountFixture()
	ctx := context.Background()

	user, err := service.Register(ctx, &usecase.RegisterUserInput{ChatID: "12345"})
	require.NoError(t, err)

	require.NoError(t, service.UpdatePosition(ctx, "12345", 25.03, 121.56))

	latest, err := positionRepo.FindLatest(ctx, user.ID)
	require.NoError(t, err)
	assert.InEpsilon(t, 25.03, latest.Latitude, 0.0001)
	assert.InEpsilon(t, 121.56, latest.Longitude, 0.0001)
}

func TestAccountService_UpdatePositionUnknownUser(t *testing.T) {
	_, _, service := newAccountFixture()

	err := service.UpdatePosition(context.Background(), "ghost", 25.03, 121.56)
	assert.ErrorIs(t, err, repository.ErrUserNotFound)
}

func TestAccountService_UpdatePositionRejectsBadCoordinates(t *testing.T) {
	_, _, service := newAccountFixture()
	ctx := context.Background()

	_, err := service.Register(ctx, &usecase.RegisterUserInput{ChatID: "12345"})
	require.NoError(t, err)

	assert.ErrorIs(t, service.UpdatePosition(ctx, "12345", 91, 0), ErrInvalidCoordinates)
	assert.ErrorIs(t, service.UpdatePosition(ctx, "12345", 0, -181), ErrInvalidCoordinates)
}

func TestAccountService_SetRadiusBounds(t *testing.T) {
	_, _, service := newAccountFixture()
	ctx := context.Background()

	_, err := service.Register(ctx, &usecase.RegisterUserInput{ChatID: "12345"})
	require.NoError(t, err)

	assert.ErrorIs(t, service.SetRadius(ctx, "12345", 0), ErrRadiusOutOfRange)
	assert.ErrorIs(t, service.SetRadius(ctx, "12345", 9000), ErrRadiusOutOfRange)
	assert.NoError(t, service.SetRadius(ctx, "12345", 5000))

	user, err := service.Get(ctx, "12345")
	require.NoError(t, err)
	assert.InEpsilon(t, 5000.0, user.RadiusMeters, 0.001)
}
