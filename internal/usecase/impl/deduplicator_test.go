package impl

import (
	"context"
	"testing"
	"time"

	"nutritrack/internal/domain/entity"
	mockRepo "nutritrack/internal/mocks/repository"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNotificationDeduplicator_AlreadySent(t *testing.T) {
	ctx := context.Background()
	userID := uuid.New()
	window := entity.DayWindow(time.Date(2024, 5, 1, 17, 0, 0, 0, time.UTC), time.UTC)

	tests := []struct {
		name    string
		exists  bool
		repoErr error
		want    bool
		wantErr bool
	}{
		{name: "sent", exists: true, want: true},
		{name: "not sent", exists: false, want: false},
		{name: "store error", repoErr: errors.New("timeout"), wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			reminderRepo := mockRepo.NewMockReminderRepository(t)
			dedup := NewNotificationDeduplicator(reminderRepo)

			reminderRepo.EXPECT().
				ExistsSent(ctx, userID, entity.CategoryLunch, window.Start, window.End).
				Return(tt.exists, tt.repoErr)

			got, err := dedup.AlreadySent(ctx, userID, entity.CategoryLunch, window)

			if tt.wantErr {
				require.Error(t, err)
				assert.Contains(t, err.Error(), "failed to check sent notifications")

				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}
