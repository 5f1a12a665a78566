package quizrepository

import (
	"context"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"wrstats/api/repositories/testutil"
)

const testQuizKey = "lol_quiz"

func intPtr(v int) *int { return &v }

func TestNewQuizRepository(t *testing.T) {
	repository := NewQuizRepository(&gorm.DB{})
	assert.NotNil(t, repository)
}

func TestQuizRepository(t *testing.T) {
	db, cleanup := testutil.NewTestConnection(t)
	defer cleanup()

	repository := NewQuizRepository(db)
	ctx := context.Background()

	t.Run("notStarted", func(t *testing.T) {
		progress, err := repository.GetProgress(ctx, 1, testQuizKey)
		require.NoError(t, err)
		assert.Nil(t, progress)
	})

	t.Run("attemptsUntilBlocked", func(t *testing.T) {
		for i := 1; i <= 3; i++ {
			progress, recorded, err := repository.RecordAttempt(ctx, &AttemptResult{
				TelegramUserId: 2,
				QuizKey:        testQuizKey,
				Percent:        intPtr(i * 30),
				Correct:        intPtr(i),
				Total:          intPtr(10),
			}, 3)
			require.NoError(t, err)
			assert.True(t, recorded)
			assert.Equal(t, i, progress.Attempts)
			assert.Equal(t, i*30, *progress.LastPercent)
		}

		progress, recorded, err := repository.RecordAttempt(ctx, &AttemptResult{
			TelegramUserId: 2,
			QuizKey:        testQuizKey,
			Percent:        intPtr(100),
		}, 3)
		require.NoError(t, err)
		assert.False(t, recorded)
		assert.Equal(t, 3, progress.Attempts)
		assert.Equal(t, 90, *progress.LastPercent)
	})

	t.Run("keysAreIndependent", func(t *testing.T) {
		progress, recorded, err := repository.RecordAttempt(ctx, &AttemptResult{
			TelegramUserId: 2,
			QuizKey:        "other_quiz",
		}, 3)
		require.NoError(t, err)
		assert.True(t, recorded)
		assert.Equal(t, 1, progress.Attempts)
		assert.Nil(t, progress.LastPercent)
	})

	t.Run("concurrentAttemptsNeverPassTheLimit", func(t *testing.T) {
		const workers = 10
		var wg sync.WaitGroup
		var mu sync.Mutex
		recordedCount := 0

		for i := 0; i < workers; i++ {
			wg.Add(1)
			go func() {
				defer wg.Done()
				_, recorded, err := repository.RecordAttempt(ctx, &AttemptResult{
					TelegramUserId: 3,
					QuizKey:        testQuizKey,
					Percent:        intPtr(100),
				}, 3)
				assert.NoError(t, err)
				if recorded {
					mu.Lock()
					recordedCount++
					mu.Unlock()
				}
			}()
		}
		wg.Wait()

		progress, err := repository.GetProgress(ctx, 3, testQuizKey)
		require.NoError(t, err)
		assert.Equal(t, 3, progress.Attempts)
		assert.Equal(t, 3, recordedCount)
	})

	t.Run("dbconnectionerr", func(t *testing.T) {
		testutil.CloseConnection(t, db)

		_, _, err := repository.RecordAttempt(ctx, &AttemptResult{TelegramUserId: 4, QuizKey: testQuizKey}, 3)
		assert.Error(t, err)
	})
}
