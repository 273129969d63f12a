package scheduler

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/talan-labs/cardtriage/pkg/crypto"
	"github.com/talan-labs/cardtriage/pkg/models"
	"github.com/talan-labs/cardtriage/pkg/services"
	"github.com/talan-labs/cardtriage/test/util"
)

// recordingRunner captures list runs and returns scripted reports. failFor
// boards fail; block makes runs wait until release is closed.
type recordingRunner struct {
	mu      sync.Mutex
	runs    []models.AnalyzeListRequest
	failFor map[string]bool
	block   bool
	release chan struct{}
	started chan struct{}
}

func (r *recordingRunner) Run(ctx context.Context, req models.AnalyzeListRequest) (*models.ListAnalysis, error) {
	r.mu.Lock()
	r.runs = append(r.runs, req)
	r.mu.Unlock()

	if r.block {
		select {
		case r.started <- struct{}{}:
		default:
		}
		select {
		case <-r.release:
		case <-ctx.Done():
			return nil, ctx.Err()
		}
	}
	if r.failFor[req.BoardID] {
		return nil, errors.New("board unreachable")
	}
	return &models.ListAnalysis{
		BoardID:          req.BoardID,
		ListID:           req.ListID,
		SessionReference: "analyse_test",
		Summary:          models.AnalysisSummary{TotalCards: 2, Analyzed: 2},
	}, nil
}

func (r *recordingRunner) seen() []models.AnalyzeListRequest {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]models.AnalyzeListRequest(nil), r.runs...)
}

func newConfigService(t *testing.T) *services.ConfigService {
	t.Helper()
	client, _ := util.SetupTestDatabase(t)
	cipher, err := crypto.NewCipher("test-secret")
	require.NoError(t, err)
	return services.NewConfigService(client, cipher)
}

func subscribe(t *testing.T, configs *services.ConfigService, boardID, listID string) {
	t.Helper()
	_, err := configs.Create(context.Background(), map[string]any{
		services.ConfigKeyBoardID: boardID,
		services.ConfigKeyListID:  listID,
		services.ConfigKeyToken:   "tok",
	})
	require.NoError(t, err)
}

func TestRunOnceSweepsAllConfigs(t *testing.T) {
	configs := newConfigService(t)
	subscribe(t, configs, "board-1", "list-1")
	subscribe(t, configs, "board-2", "list-2")

	runner := &recordingRunner{}
	r := NewRunner(configs, runner, 0)

	outcomes, err := r.RunOnce(context.Background())
	require.NoError(t, err)
	require.Len(t, outcomes, 2)

	boards := map[string]bool{}
	for _, outcome := range outcomes {
		boards[outcome.BoardID] = true
		assert.Empty(t, outcome.Error)
		require.NotNil(t, outcome.Summary)
		assert.Equal(t, 2, outcome.Summary.Analyzed)
		assert.Equal(t, "analyse_test", outcome.SessionReference)
	}
	assert.True(t, boards["board-1"] && boards["board-2"])
	assert.Len(t, runner.seen(), 2)
}

func TestRunOnceContinuesPastFailures(t *testing.T) {
	configs := newConfigService(t)
	subscribe(t, configs, "board-bad", "list-1")
	subscribe(t, configs, "board-good", "list-2")

	runner := &recordingRunner{failFor: map[string]bool{"board-bad": true}}
	r := NewRunner(configs, runner, 0)

	outcomes, err := r.RunOnce(context.Background())
	require.NoError(t, err)
	require.Len(t, outcomes, 2)

	byBoard := map[string]RunOutcome{}
	for _, outcome := range outcomes {
		byBoard[outcome.BoardID] = outcome
	}
	assert.Contains(t, byBoard["board-bad"].Error, "board unreachable")
	assert.Nil(t, byBoard["board-bad"].Summary)
	assert.Empty(t, byBoard["board-good"].Error)
	require.NotNil(t, byBoard["board-good"].Summary)
}

func TestRunOnceNoConfigs(t *testing.T) {
	r := NewRunner(newConfigService(t), &recordingRunner{}, 0)
	outcomes, err := r.RunOnce(context.Background())
	require.NoError(t, err)
	assert.Empty(t, outcomes)
}

func TestRunOnceRejectsOverlap(t *testing.T) {
	configs := newConfigService(t)
	subscribe(t, configs, "board-1", "list-1")

	runner := &recordingRunner{
		block:   true,
		release: make(chan struct{}),
		started: make(chan struct{}, 1),
	}
	r := NewRunner(configs, runner, 0)

	done := make(chan struct{})
	go func() {
		defer close(done)
		_, err := r.RunOnce(context.Background())
		assert.NoError(t, err)
	}()

	select {
	case <-runner.started:
	case <-time.After(5 * time.Second):
		t.Fatal("first sweep never started")
	}
	assert.True(t, r.Running())

	_, err := r.RunOnce(context.Background())
	assert.ErrorIs(t, err, services.ErrAnalysisRunning)

	close(runner.release)
	select {
	case <-done:
	case <-time.After(5 * time.Second):
		t.Fatal("first sweep never finished")
	}
	assert.False(t, r.Running())
}

func TestStartWithoutIntervalIsNoop(t *testing.T) {
	r := NewRunner(newConfigService(t), &recordingRunner{}, 0)
	r.Start(context.Background())
	r.Stop()
}

func TestPeriodicLoopRunsAndStops(t *testing.T) {
	configs := newConfigService(t)
	subscribe(t, configs, "board-1", "list-1")

	runner := &recordingRunner{}
	r := NewRunner(configs, runner, 20*time.Millisecond)
	r.Start(context.Background())

	deadline := time.After(5 * time.Second)
	for len(runner.seen()) == 0 {
		select {
		case <-deadline:
			t.Fatal("loop never ran a sweep")
		case <-time.After(10 * time.Millisecond):
		}
	}
	r.Stop()

	// No new sweeps after Stop.
	count := len(runner.seen())
	time.Sleep(60 * time.Millisecond)
	assert.Equal(t, count, len(runner.seen()))
}

func TestStopIsIdempotent(t *testing.T) {
	r := NewRunner(newConfigService(t), &recordingRunner{}, time.Hour)
	r.Start(context.Background())
	r.Stop()
	r.Stop()
}
