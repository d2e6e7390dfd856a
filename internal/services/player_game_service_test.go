package services_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"gamereview/internal/apperrors"
	"gamereview/internal/models"
	"gamereview/internal/services"
)

// MockPlayerGameRepository is a mock implementation of repositories.PlayerGameRepository.
type MockPlayerGameRepository struct {
	mock.Mock
}

func (m *MockPlayerGameRepository) GetAll() ([]models.PlayerGame, error) {
	args := m.Called()
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.PlayerGame), args.Error(1)
}

func (m *MockPlayerGameRepository) GetByID(id uint) (*models.PlayerGame, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.PlayerGame), args.Error(1)
}

func (m *MockPlayerGameRepository) Create(playerGame *models.PlayerGame) error {
	args := m.Called(playerGame)
	return args.Error(0)
}

func (m *MockPlayerGameRepository) Update(id uint, upd models.PlayerGameUpdate) error {
	args := m.Called(id, upd)
	return args.Error(0)
}

func (m *MockPlayerGameRepository) Delete(id uint) error {
	args := m.Called(id)
	return args.Error(0)
}

func TestPlayerGameService_CreateReviewWithoutBroker(t *testing.T) {
	mockRepo := new(MockPlayerGameRepository)
	// nil broker: review events are skipped, creation still succeeds.
	service := services.NewPlayerGameService(mockRepo, nil)

	review := "Amazing game!"
	rating := 4.5
	playerGame := &models.PlayerGame{GameID: 1, PlayerID: 1, Review: &review, Rating: &rating}
	mockRepo.On("Create", playerGame).Return(nil).Once()

	err := service.CreateReview(playerGame)
	require.NoError(t, err)
	mockRepo.AssertExpectations(t)
}

func TestPlayerGameService_CreateReviewRepositoryFailure(t *testing.T) {
	mockRepo := new(MockPlayerGameRepository)
	service := services.NewPlayerGameService(mockRepo, nil)

	playerGame := &models.PlayerGame{GameID: 99, PlayerID: 1}
	mockRepo.On("Create", playerGame).
		Return(apperrors.New(apperrors.ConstraintViolation, "game with ID 99 does not exist")).Once()

	err := service.CreateReview(playerGame)
	require.Error(t, err)
	assert.True(t, apperrors.IsKind(err, apperrors.ConstraintViolation))
	mockRepo.AssertExpectations(t)
}

func TestPlayerGameService_UpdateReviewPassesThrough(t *testing.T) {
	mockRepo := new(MockPlayerGameRepository)
	service := services.NewPlayerGameService(mockRepo, nil)

	rating := 3.0
	upd := models.PlayerGameUpdate{Rating: &rating}
	mockRepo.On("Update", uint(7), upd).Return(nil).Once()

	require.NoError(t, service.UpdateReview(7, upd))
	mockRepo.AssertExpectations(t)
}
