package scoring

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vegaslabs/casinocore/internal/domain"
	"github.com/vegaslabs/casinocore/internal/domain/mocks"
	"github.com/vegaslabs/casinocore/internal/infrastructure/logger"
)

type scoringFixture struct {
	resultRepo *mocks.MockGameResultRepository
	scoreRepo  *mocks.MockPlayerScoreRepository
	uc         domain.ScoringUseCase
}

func newScoringFixture(t *testing.T) *scoringFixture {
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	resultRepo := mocks.NewMockGameResultRepository(ctrl)
	scoreRepo := mocks.NewMockPlayerScoreRepository(ctrl)
	log := logger.NewLogger("development", "error")

	return &scoringFixture{
		resultRepo: resultRepo,
		scoreRepo:  scoreRepo,
		uc:         NewScoringUseCase(resultRepo, scoreRepo, log),
	}
}

func winResult() *domain.GameResult {
	return &domain.GameResult{
		Username:  "alice",
		Game:      string(domain.GameDice),
		Action:    string(domain.ActionRoll),
		BetAmount: 50,
		Payout:    100,
		Win:       true,
		Result:    string(domain.ResultWin),
		Timestamp: time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC),
	}
}

func TestRecordAppendsResultAndUpdatesScore(t *testing.T) {
	ctx := context.Background()
	f := newScoringFixture(t)
	result := winResult()

	f.resultRepo.EXPECT().Create(ctx, result).Return(nil)
	f.scoreRepo.EXPECT().Upsert(ctx, "alice", string(domain.GameDice), 50.0, "player").Return(nil)

	err := f.uc.Record(ctx, result)
	require.NoError(t, err)
}

func TestRecordScoreDeltaIsNetWinnings(t *testing.T) {
	ctx := context.Background()
	f := newScoringFixture(t)

	result := winResult()
	result.Payout = 0
	result.Win = false
	result.Result = string(domain.ResultLose)

	f.resultRepo.EXPECT().Create(ctx, result).Return(nil)
	f.scoreRepo.EXPECT().Upsert(ctx, "alice", string(domain.GameDice), -50.0, "player").Return(nil)

	require.NoError(t, f.uc.Record(ctx, result))
}

func TestRecordRequiresUsername(t *testing.T) {
	ctx := context.Background()
	f := newScoringFixture(t)

	result := winResult()
	result.Username = ""

	err := f.uc.Record(ctx, result)
	require.Error(t, err)

	appErr, ok := err.(*domain.AppError)
	require.True(t, ok)
	assert.Equal(t, domain.ErrCodeInvalidInput, appErr.Code)
}

func TestRecordRequiresGame(t *testing.T) {
	ctx := context.Background()
	f := newScoringFixture(t)

	result := winResult()
	result.Game = ""

	err := f.uc.Record(ctx, result)
	require.Error(t, err)

	appErr, ok := err.(*domain.AppError)
	require.True(t, ok)
	assert.Equal(t, domain.ErrCodeInvalidInput, appErr.Code)
}

func TestRecordDefaultsMissingTimestamp(t *testing.T) {
	ctx := context.Background()
	f := newScoringFixture(t)

	result := winResult()
	result.Timestamp = time.Time{}

	f.resultRepo.EXPECT().Create(ctx, result).DoAndReturn(func(_ context.Context, r *domain.GameResult) error {
		assert.False(t, r.Timestamp.IsZero())
		return nil
	})
	f.scoreRepo.EXPECT().Upsert(ctx, "alice", string(domain.GameDice), 50.0, "player").Return(nil)

	require.NoError(t, f.uc.Record(ctx, result))
}

func TestRecordFailsWhenResultLogFails(t *testing.T) {
	ctx := context.Background()
	f := newScoringFixture(t)
	result := winResult()

	f.resultRepo.EXPECT().Create(ctx, result).Return(errors.New("connection refused"))

	err := f.uc.Record(ctx, result)
	require.Error(t, err)

	appErr, ok := err.(*domain.AppError)
	require.True(t, ok)
	assert.Equal(t, domain.ErrCodeDatabaseQuery, appErr.Code)
}

func TestRecordToleratesScoreUpsertFailure(t *testing.T) {
	ctx := context.Background()
	f := newScoringFixture(t)
	result := winResult()

	f.resultRepo.EXPECT().Create(ctx, result).Return(nil)
	f.scoreRepo.EXPECT().Upsert(ctx, "alice", string(domain.GameDice), 50.0, "player").
		Return(errors.New("deadlock detected"))

	// The result row is the record of truth; a lost score update is logged
	// and swallowed.
	require.NoError(t, f.uc.Record(ctx, result))
}

func TestStatsForSingleGame(t *testing.T) {
	ctx := context.Background()
	f := newScoringFixture(t)

	top := []domain.TopPlayer{{Username: "alice", Winnings: 500, Wins: 7}}
	recent := []*domain.GameResult{winResult()}

	f.resultRepo.EXPECT().Totals(ctx, "dice").Return(int64(12), int64(5), 600.0, 720.0, nil)
	f.resultRepo.EXPECT().TopByWinnings(ctx, "dice", topPlayersLimit).Return(top, nil)
	f.resultRepo.EXPECT().Recent(ctx, "dice", recentResultsLimit).Return(recent, nil)

	stats, err := f.uc.StatsFor(ctx, domain.GameDice)
	require.NoError(t, err)

	assert.Equal(t, "dice", stats.Game)
	assert.Equal(t, int64(12), stats.TotalGames)
	assert.Equal(t, int64(5), stats.TotalWins)
	assert.Equal(t, int64(7), stats.TotalLosses)
	assert.Equal(t, 600.0, stats.TotalBet)
	assert.Equal(t, 720.0, stats.TotalPayout)
	assert.Equal(t, top, stats.TopPlayers)
	assert.Equal(t, recent, stats.Recent)
}

func TestStatsForAllGames(t *testing.T) {
	ctx := context.Background()
	f := newScoringFixture(t)

	f.resultRepo.EXPECT().Totals(ctx, "all").Return(int64(3), int64(1), 30.0, 20.0, nil)
	f.resultRepo.EXPECT().TopByWinnings(ctx, "all", topPlayersLimit).Return(nil, nil)
	f.resultRepo.EXPECT().Recent(ctx, "all", recentResultsLimit).Return(nil, nil)

	stats, err := f.uc.StatsFor(ctx, domain.GameAll)
	require.NoError(t, err)
	assert.Equal(t, "all", stats.Game)
}

func TestStatsForUnknownGame(t *testing.T) {
	ctx := context.Background()
	f := newScoringFixture(t)

	_, err := f.uc.StatsFor(ctx, domain.Game("poker"))
	require.Error(t, err)

	appErr, ok := err.(*domain.AppError)
	require.True(t, ok)
	assert.Equal(t, domain.ErrCodeInvalidInput, appErr.Code)
}

func TestStatsForAggregateFailure(t *testing.T) {
	ctx := context.Background()
	f := newScoringFixture(t)

	f.resultRepo.EXPECT().Totals(ctx, "dice").Return(int64(0), int64(0), 0.0, 0.0, errors.New("timeout"))

	_, err := f.uc.StatsFor(ctx, domain.GameDice)
	require.Error(t, err)

	appErr, ok := err.(*domain.AppError)
	require.True(t, ok)
	assert.Equal(t, domain.ErrCodeDatabaseQuery, appErr.Code)
}

func TestTopPlayersPassesLimit(t *testing.T) {
	ctx := context.Background()
	f := newScoringFixture(t)

	scores := []*domain.PlayerScore{{Username: "alice", Game: "dice", Score: 500}}
	f.scoreRepo.EXPECT().TopByScore(ctx, "dice", 5).Return(scores, nil)

	got, err := f.uc.TopPlayers(ctx, domain.GameDice, 5)
	require.NoError(t, err)
	assert.Equal(t, scores, got)
}

func TestTopPlayersClampsLimit(t *testing.T) {
	ctx := context.Background()
	f := newScoringFixture(t)

	f.scoreRepo.EXPECT().TopByScore(ctx, "dice", topPlayersLimit).Return(nil, nil).Times(3)

	for _, limit := range []int{0, -5, 1000} {
		_, err := f.uc.TopPlayers(ctx, domain.GameDice, limit)
		require.NoError(t, err)
	}
}
