package moodstate

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open(filepath.Join(t.TempDir(), "mood.db"))
	require.NoError(t, err)
	t.Cleanup(func() { s.Close() })
	return s
}

func TestRecordAndRecent(t *testing.T) {
	s := openTestStore(t)

	base := time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC)
	require.NoError(t, s.Record(Run{
		Role: "mommy", Mood: "chill", ExitCode: 0, Pleases: 1, Timestamp: base,
	}))
	require.NoError(t, s.Record(Run{
		Role: "mommy", Mood: "ominous", ExitCode: 101, Timestamp: base.Add(time.Minute),
	}))

	runs, err := s.Recent(10)
	require.NoError(t, err)
	require.Len(t, runs, 2)

	// newest first
	assert.Equal(t, "ominous", runs[0].Mood)
	assert.Equal(t, 101, runs[0].ExitCode)
	assert.Equal(t, "chill", runs[1].Mood)
	assert.Equal(t, 1, runs[1].Pleases)
}

func TestRecentHonorsLimit(t *testing.T) {
	s := openTestStore(t)

	for i := 0; i < 5; i++ {
		require.NoError(t, s.Record(Run{Role: "mommy", Mood: "chill"}))
	}

	runs, err := s.Recent(3)
	require.NoError(t, err)
	assert.Len(t, runs, 3)
}

func TestRecentEmpty(t *testing.T) {
	s := openTestStore(t)

	runs, err := s.Recent(10)
	require.NoError(t, err)
	assert.Empty(t, runs)
}

func TestOpenCreatesParentDirectory(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "deeper", "mood.db")
	s, err := Open(path)
	require.NoError(t, err)
	defer s.Close()

	require.NoError(t, s.Record(Run{Role: "daddy", Mood: "thirsty"}))
}
