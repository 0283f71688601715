package memory

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"bmicalc/internal/domain"
)

func record(weight, height float64) domain.CalculationRecord {
	return domain.NewRecord(domain.Measurement{Weight: weight, Height: height}, time.Now())
}

func TestAppendAndGet(t *testing.T) {
	db := New()
	ctx := context.Background()

	in := record(70, 1.75)
	got, err := db.Append(ctx, in)
	require.NoError(t, err)
	assert.Equal(t, int64(1), got.ID)

	in.ID = got.ID
	assert.Equal(t, in, got)

	stored, err := db.Get(ctx, got.ID)
	require.NoError(t, err)
	assert.Equal(t, got, stored)

	second, err := db.Append(ctx, record(50, 1.6))
	require.NoError(t, err)
	assert.Equal(t, int64(2), second.ID)
}

func TestGet_NotFound(t *testing.T) {
	db := New()
	_, err := db.Get(context.Background(), 42)
	require.ErrorIs(t, err, domain.ErrCalculationNotFound)
	assert.Equal(t, domain.KindNotFound, domain.KindOf(err))
}

func TestReadsDoNotMutate(t *testing.T) {
	db := New()
	ctx := context.Background()
	for _, w := range []float64{45, 70, 90} {
		_, err := db.Append(ctx, record(w, 1.7))
		require.NoError(t, err)
	}

	first, err := db.List(ctx)
	require.NoError(t, err)
	again, err := db.List(ctx)
	require.NoError(t, err)
	assert.Equal(t, first, again)

	// Mutating the returned slice must not leak into the store.
	first[0].BMI = 999
	third, _ := db.List(ctx)
	assert.NotEqual(t, 999.0, third[0].BMI)

	a, _ := db.Get(ctx, 2)
	b, _ := db.Get(ctx, 2)
	assert.Equal(t, a, b)
}

func TestDelete(t *testing.T) {
	db := New()
	ctx := context.Background()
	for _, w := range []float64{45, 70, 90} {
		_, err := db.Append(ctx, record(w, 1.7))
		require.NoError(t, err)
	}

	deleted, err := db.Delete(ctx, 2)
	require.NoError(t, err)
	assert.Equal(t, int64(2), deleted.ID)
	assert.Equal(t, 70.0, deleted.Weight)

	_, err = db.Get(ctx, 2)
	assert.ErrorIs(t, err, domain.ErrCalculationNotFound)

	_, err = db.Delete(ctx, 2)
	assert.ErrorIs(t, err, domain.ErrCalculationNotFound)

	remaining, _ := db.List(ctx)
	require.Len(t, remaining, 2)
	assert.Equal(t, int64(1), remaining[0].ID)
	assert.Equal(t, int64(3), remaining[1].ID)

	// Ids are not reused after a single delete.
	next, _ := db.Append(ctx, record(60, 1.7))
	assert.Equal(t, int64(4), next.ID)
}

func TestDeleteAll_ResetsCounter(t *testing.T) {
	db := New()
	ctx := context.Background()
	for i := 0; i < 5; i++ {
		_, err := db.Append(ctx, record(70, 1.75))
		require.NoError(t, err)
	}

	n, err := db.DeleteAll(ctx)
	require.NoError(t, err)
	assert.Equal(t, 5, n)

	count, _ := db.Count(ctx)
	assert.Zero(t, count)
	list, _ := db.List(ctx)
	assert.Empty(t, list)

	rec, err := db.Append(ctx, record(70, 1.75))
	require.NoError(t, err)
	assert.Equal(t, initialID, rec.ID)

	n, _ = db.DeleteAll(ctx)
	assert.Equal(t, 1, n)
}

func TestStatistics(t *testing.T) {
	db := New()
	ctx := context.Background()

	st, err := db.Statistics(ctx)
	require.NoError(t, err)
	assert.Equal(t, 0, st.TotalCalculations)
	assert.Equal(t, 0.0, st.AverageBMI)
	assert.Empty(t, st.Categories)

	_, _ = db.Append(ctx, record(70, 1.75)) // 22.9
	_, _ = db.Append(ctx, record(45, 1.70)) // 15.6
	_, _ = db.Append(ctx, record(90, 1.70)) // 31.1

	st, err = db.Statistics(ctx)
	require.NoError(t, err)
	assert.Equal(t, 3, st.TotalCalculations)
	assert.Equal(t, 23.2, st.AverageBMI)
	assert.Equal(t, map[domain.Category]int{
		domain.NormalWeight: 1,
		domain.Underweight:  1,
		domain.Obese:        1,
	}, st.Categories)
}

func TestConcurrentAppend(t *testing.T) {
	db := New()
	ctx := context.Background()

	const workers, perWorker = 8, 50
	var wg sync.WaitGroup
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < perWorker; j++ {
				_, _ = db.Append(ctx, record(70, 1.75))
			}
		}()
	}
	wg.Wait()

	list, err := db.List(ctx)
	require.NoError(t, err)
	require.Len(t, list, workers*perWorker)

	seen := make(map[int64]bool, len(list))
	for i, rec := range list {
		assert.False(t, seen[rec.ID], "duplicate id %d", rec.ID)
		seen[rec.ID] = true
		if i > 0 {
			assert.Greater(t, rec.ID, list[i-1].ID)
		}
	}
}
