package scheduler

import (
	"context"
	"testing"
	"time"

	"github.com/diegoclair/birthday-bot/internal/metrics"
	"github.com/diegoclair/birthday-bot/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type firingRecorder struct {
	metrics.Recorder
	ok, failed int
}

func (r *firingRecorder) RecordFiring(ok bool) {
	if ok {
		r.ok++
		return
	}
	r.failed++
}

func TestNextFire(t *testing.T) {
	ny, err := time.LoadLocation("America/New_York")
	require.NoError(t, err)

	tests := []struct {
		name string
		now  time.Time
		want time.Time
	}{
		{
			name: "before fire time fires today",
			now:  time.Date(2024, time.July, 10, 0, 0, 1, 0, ny),
			want: time.Date(2024, time.July, 10, 0, 0, 5, 0, ny),
		},
		{
			name: "exactly at fire time fires now",
			now:  time.Date(2024, time.July, 10, 0, 0, 5, 0, ny),
			want: time.Date(2024, time.July, 10, 0, 0, 5, 0, ny),
		},
		{
			name: "after fire time fires tomorrow",
			now:  time.Date(2024, time.July, 10, 13, 0, 0, 0, ny),
			want: time.Date(2024, time.July, 11, 0, 0, 5, 0, ny),
		},
		{
			name: "end of month rolls over",
			now:  time.Date(2024, time.July, 31, 23, 0, 0, 0, ny),
			want: time.Date(2024, time.August, 1, 0, 0, 5, 0, ny),
		},
		{
			name: "converts from UTC",
			now:  time.Date(2024, time.July, 10, 3, 0, 0, 0, time.UTC),
			want: time.Date(2024, time.July, 10, 0, 0, 5, 0, ny),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := NextFire(tt.now, ny)
			assert.True(t, tt.want.Equal(got), "want %s, got %s", tt.want, got)
			assert.Equal(t, ny, got.Location())
		})
	}
}

func TestScheduler_fire(t *testing.T) {
	loc := time.UTC
	fixed := time.Date(2024, time.August, 1, 0, 0, 5, 0, loc)

	t.Run("Should run firing with today in the configured timezone", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		announcer := mocks.NewMockAnnouncementService(ctrl)
		rec := &firingRecorder{Recorder: metrics.Nop()}

		announcer.EXPECT().RunFiring(gomock.Any(), fixed).Return(nil).Times(1)

		s := New(announcer, loc, rec)
		s.clock = func() time.Time { return fixed }
		s.fire(context.Background())

		assert.Equal(t, 1, rec.ok)
		assert.Equal(t, 0, rec.failed)
	})

	t.Run("Should count failed firing and keep going", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		announcer := mocks.NewMockAnnouncementService(ctrl)
		rec := &firingRecorder{Recorder: metrics.Nop()}

		announcer.EXPECT().RunFiring(gomock.Any(), gomock.Any()).Return(assert.AnError).Times(2)

		s := New(announcer, loc, rec)
		s.clock = func() time.Time { return fixed }
		s.fire(context.Background())
		s.fire(context.Background())

		assert.Equal(t, 2, rec.failed)
	})

	t.Run("Should skip when cancelled", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		announcer := mocks.NewMockAnnouncementService(ctrl)

		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		New(announcer, loc, nil).fire(ctx)
	})
}

func TestScheduler_StartStop(t *testing.T) {
	t.Run("Should never fire when stopped right after start", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		announcer := mocks.NewMockAnnouncementService(ctrl)
		announcer.EXPECT().RunFiring(gomock.Any(), gomock.Any()).Times(0)

		s := New(announcer, time.UTC, nil)
		require.NoError(t, s.Start())
		require.NoError(t, s.Start())

		start := time.Now()
		s.Stop()
		s.Stop()
		assert.Less(t, time.Since(start), s.stopTimeout)
	})

	t.Run("Should cancel an in-flight firing after the timeout", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		announcer := mocks.NewMockAnnouncementService(ctrl)

		started := make(chan struct{})
		cancelled := make(chan struct{})
		announcer.EXPECT().RunFiring(gomock.Any(), gomock.Any()).
			DoAndReturn(func(ctx context.Context, _ time.Time) error {
				close(started)
				<-ctx.Done()
				close(cancelled)
				return ctx.Err()
			}).Times(1)

		s := New(announcer, time.UTC, nil)
		s.spec = "* * * * * *"
		s.stopTimeout = 50 * time.Millisecond
		require.NoError(t, s.Start())

		select {
		case <-started:
		case <-time.After(3 * time.Second):
			t.Fatal("firing did not start")
		}

		s.Stop()

		select {
		case <-cancelled:
		case <-time.After(time.Second):
			t.Fatal("firing was not cancelled")
		}
	})

	t.Run("Should reject invalid cron expression", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		s := New(mocks.NewMockAnnouncementService(ctrl), time.UTC, nil)
		s.spec = "not a spec"
		require.Error(t, s.Start())
	})
}
