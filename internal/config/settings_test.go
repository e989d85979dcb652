package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadSettingsCreatesDefaultsOnFirstRun(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	s, err := LoadSettings()

	require.NoError(t, err)
	assert.True(t, s.Update.Enabled)
	assert.Equal(t, "wahlandcase/attuned.gitdaily", s.Update.Repo)
	assert.True(t, s.Update.LastCheck.IsZero())
}

func TestSettingsRoundTrip(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	s := DefaultSettings()
	s.Update.Enabled = false
	s.RecordUpdateCheck()
	require.NoError(t, s.Save())

	loaded, err := LoadSettings()
	require.NoError(t, err)
	assert.False(t, loaded.Update.Enabled)
	assert.WithinDuration(t, s.Update.LastCheck, loaded.Update.LastCheck, time.Second)
}

func TestShouldCheckForUpdate(t *testing.T) {
	s := DefaultSettings()
	assert.True(t, s.ShouldCheckForUpdate(), "zero last check means due")

	s.RecordUpdateCheck()
	assert.False(t, s.ShouldCheckForUpdate(), "just checked")

	s.Update.LastCheck = time.Now().Add(-25 * time.Hour)
	assert.True(t, s.ShouldCheckForUpdate(), "stale check is due again")

	s.Update.Enabled = false
	assert.False(t, s.ShouldCheckForUpdate(), "disabled wins over staleness")
}
