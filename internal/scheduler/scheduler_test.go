package scheduler

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/martacruzz/tqs-hw1/internal/scheduler/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/wb-go/wbf/logger"
)

func newTestLogger(t *testing.T) logger.Logger {
	t.Helper()
	log, err := logger.InitLogger("slog", "test", "test", logger.WithLevel(logger.ErrorLevel))
	if err != nil {
		t.Fatalf("init test logger: %v", err)
	}
	return log
}

func TestScheduler_Tick_RefreshesDirectory(t *testing.T) {
	directory := mocks.NewMockDirectoryRefresher(t)
	log := newTestLogger(t)

	s := New(directory, 50*time.Millisecond, log)

	directory.EXPECT().Refresh(mock.Anything).Return(nil)

	ctx, cancel := context.WithTimeout(context.Background(), 80*time.Millisecond)
	defer cancel()

	s.Start(ctx)

	assert.GreaterOrEqual(t, len(directory.Calls), 1)
}

func TestScheduler_Tick_HandlesError(t *testing.T) {
	directory := mocks.NewMockDirectoryRefresher(t)
	log := newTestLogger(t)

	s := New(directory, 50*time.Millisecond, log)

	directory.EXPECT().Refresh(mock.Anything).Return(errors.New("upstream unreachable"))

	ctx, cancel := context.WithTimeout(context.Background(), 80*time.Millisecond)
	defer cancel()

	s.Start(ctx)

	assert.GreaterOrEqual(t, len(directory.Calls), 1)
}

func TestScheduler_StopsOnContextCancel(t *testing.T) {
	directory := mocks.NewMockDirectoryRefresher(t)
	log := newTestLogger(t)

	s := New(directory, time.Second, log) // interval longer than test

	ctx, cancel := context.WithCancel(context.Background())

	done := make(chan struct{})
	go func() {
		s.Start(ctx)
		close(done)
	}()

	cancel()

	select {
	case <-done:
		// success
	case <-time.After(time.Second):
		t.Fatal("scheduler did not stop on context cancel")
	}
}
