// Copyright (c) 2025 Michael Murphy
// SPDX-License-Identifier: GPL-3.0-only

package stats

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { s.Close() })
	return s
}

func TestRecordAndListGames(t *testing.T) {
	s := openTestStore(t)

	start := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	require.NoError(t, s.RecordGame(Game{
		Secret:     42,
		Attempts:   6,
		StartedAt:  start,
		FinishedAt: start.Add(90 * time.Second),
	}))
	require.NoError(t, s.RecordGame(Game{
		Secret:     7,
		Attempts:   3,
		StartedAt:  start.Add(5 * time.Minute),
		FinishedAt: start.Add(6 * time.Minute),
	}))

	games, err := s.Games(10)
	require.NoError(t, err)
	require.Len(t, games, 2)

	// Most recently finished first.
	assert.Equal(t, int64(7), games[0].Secret)
	assert.Equal(t, uint64(3), games[0].Attempts)
	assert.Equal(t, int64(42), games[1].Secret)
	assert.NotEmpty(t, games[0].ID)
	assert.NotEqual(t, games[0].ID, games[1].ID)
}

func TestGamesLimit(t *testing.T) {
	s := openTestStore(t)

	now := time.Now()
	for i := 0; i < 5; i++ {
		require.NoError(t, s.RecordGame(Game{
			Secret:     int64(i + 1),
			Attempts:   1,
			StartedAt:  now,
			FinishedAt: now.Add(time.Duration(i) * time.Second),
		}))
	}

	games, err := s.Games(3)
	require.NoError(t, err)
	assert.Len(t, games, 3)
}

func TestSummarize(t *testing.T) {
	s := openTestStore(t)

	sum, err := s.Summarize()
	require.NoError(t, err)
	assert.Equal(t, int64(0), sum.Games)

	now := time.Now()
	for _, attempts := range []uint64{4, 8} {
		require.NoError(t, s.RecordGame(Game{
			Secret:     50,
			Attempts:   attempts,
			StartedAt:  now,
			FinishedAt: now,
		}))
	}

	sum, err = s.Summarize()
	require.NoError(t, err)
	assert.Equal(t, int64(2), sum.Games)
	assert.Equal(t, int64(4), sum.BestAttempts)
	assert.InDelta(t, 6.0, sum.MeanAttempts, 0.001)
}
