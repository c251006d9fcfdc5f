package workers

import (
	"context"
	"testing"
	"time"

	"github.com/MKhiriev/cipher-notes/internal/config"
	"github.com/MKhiriev/cipher-notes/internal/logger"
	"github.com/MKhiriev/cipher-notes/internal/mock"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

func TestShareRetentionWorker_PurgesOnStartup(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockNotes := mock.NewMockNoteService(ctrl)

	purged := make(chan time.Time, 1)
	mockNotes.EXPECT().
		PurgeExpiredShares(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, cutoff time.Time) (int64, error) {
			select {
			case purged <- cutoff:
			default:
			}
			return 0, nil
		}).
		MinTimes(1)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	cfg := config.Workers{ShareRetention: 24 * time.Hour, PurgeInterval: time.Hour}
	worker := newShareRetentionWorker(ctx, mockNotes, cfg, logger.Nop())
	worker.Run()

	select {
	case cutoff := <-purged:
		// cutoff must sit retention behind the wall clock
		expected := time.Now().Add(-24 * time.Hour)
		assert.WithinDuration(t, expected, cutoff, 5*time.Second)
	case <-time.After(2 * time.Second):
		t.Fatal("worker did not purge on startup")
	}
}

func TestShareRetentionWorker_StopsOnContextCancel(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockNotes := mock.NewMockNoteService(ctrl)
	mockNotes.EXPECT().
		PurgeExpiredShares(gomock.Any(), gomock.Any()).
		Return(int64(0), nil).
		AnyTimes()

	ctx, cancel := context.WithCancel(context.Background())

	cfg := config.Workers{ShareRetention: time.Hour, PurgeInterval: 10 * time.Millisecond}
	worker := newShareRetentionWorker(ctx, mockNotes, cfg, logger.Nop())
	worker.Run()

	time.Sleep(50 * time.Millisecond)
	cancel()

	// after cancellation the loop must wind down; give it a tick to notice
	time.Sleep(50 * time.Millisecond)
}

func TestShareRetentionWorker_DisabledWithoutInterval(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	// no expectations: a disabled worker must never touch the service
	mockNotes := mock.NewMockNoteService(ctrl)

	cfg := config.Workers{ShareRetention: time.Hour, PurgeInterval: 0}
	worker := newShareRetentionWorker(context.Background(), mockNotes, cfg, logger.Nop())
	worker.Run()

	time.Sleep(20 * time.Millisecond)
}
