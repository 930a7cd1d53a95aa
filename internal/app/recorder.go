package app

import (
	"github.com/vegaslabs/casinocore/internal/domain"
	"github.com/vegaslabs/casinocore/internal/infrastructure/external/scoringclient"
	"github.com/vegaslabs/casinocore/internal/infrastructure/logger"
	"github.com/vegaslabs/casinocore/internal/infrastructure/recorder"
)

// InitResultRecorder builds the async result dispatcher. Results go to the
// local scoring usecase unless a remote scoring service is configured.
func (a *application) InitResultRecorder(
	scoringUC domain.ScoringUseCase,
	log *logger.Logger,
) (domain.ResultRecorder, *recorder.Dispatcher) {
	var sink recorder.Sink = scoringUC
	if a.config.Scoring.RemoteURL != "" {
		sink = scoringclient.New(a.config.Scoring.RemoteURL, 0)
	}

	dispatcher := recorder.NewDispatcher(sink, log, a.config.Scoring.QueueSize)
	return dispatcher, dispatcher
}
