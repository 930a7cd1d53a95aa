package engine

import (
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vegaslabs/casinocore/internal/domain"
	"github.com/vegaslabs/casinocore/internal/domain/mocks"
)

func mockEngine(ctrl *gomock.Controller, game domain.Game) *mocks.MockGameEngine {
	e := mocks.NewMockGameEngine(ctrl)
	e.EXPECT().Game().Return(game).AnyTimes()
	return e
}

func TestRegistryRegisterAndGet(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	r := NewRegistry()
	dice := mockEngine(ctrl, domain.GameDice)
	require.NoError(t, r.Register(dice))

	got, ok := r.Get(domain.GameDice)
	assert.True(t, ok)
	assert.Same(t, dice, got)

	_, ok = r.Get(domain.GameSlots)
	assert.False(t, ok)
}

func TestRegistryRegisterReplaces(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	r := NewRegistry()
	first := mockEngine(ctrl, domain.GameDice)
	second := mockEngine(ctrl, domain.GameDice)

	require.NoError(t, r.Register(first))
	require.NoError(t, r.Register(second))

	got, ok := r.Get(domain.GameDice)
	require.True(t, ok)
	assert.Same(t, second, got)
}

func TestRegistryRejectsNilEngine(t *testing.T) {
	r := NewRegistry()
	assert.Error(t, r.Register(nil))
}

func TestRegistryRejectsEmptyGame(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	r := NewRegistry()
	assert.Error(t, r.Register(mockEngine(ctrl, "")))
}

func TestRegistryGames(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	r := NewRegistry()
	require.NoError(t, r.Register(mockEngine(ctrl, domain.GameDice)))
	require.NoError(t, r.Register(mockEngine(ctrl, domain.GameRoulette)))

	assert.ElementsMatch(t, []domain.Game{domain.GameDice, domain.GameRoulette}, r.Games())
}
