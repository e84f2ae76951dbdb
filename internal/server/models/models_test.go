package models

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestParseGameStatus_KnownTokens(t *testing.T) {
	for _, want := range AllGameStatuses {
		got, ok := ParseGameStatus(string(want))
		assert.True(t, ok, "token %q must be known", want)
		assert.Equal(t, want, got)
	}
}

func TestParseGameStatus_UnknownDegradesToUnspecified(t *testing.T) {
	for _, token := range []string{"", "PLAN", "finished", "unknown"} {
		got, ok := ParseGameStatus(token)
		assert.False(t, ok)
		assert.Equal(t, GameStatusUnspecified, got)
	}
}

func TestAllGameStatuses_StorageTokens(t *testing.T) {
	want := []string{"unspecified", "plan", "playing", "completed", "dropped", "waiting"}
	got := make([]string, 0, len(AllGameStatuses))
	for _, s := range AllGameStatuses {
		got = append(got, s.String())
	}
	assert.Equal(t, want, got)
}

func TestLibraryEntry_IsEmpty(t *testing.T) {
	var nilEntry *LibraryEntry
	assert.True(t, nilEntry.IsEmpty())
	assert.True(t, (&LibraryEntry{}).IsEmpty())
	assert.False(t, (&LibraryEntry{UserID: uuid.New()}).IsEmpty())
}
