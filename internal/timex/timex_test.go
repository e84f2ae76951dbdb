package timex

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestToProto(t *testing.T) {
	tests := []struct {
		name    string
		in      time.Time
		seconds int64
	}{
		{"modern date", time.Date(2023, 10, 5, 12, 0, 0, 0, time.UTC), 1696507200},
		{"epoch", time.Unix(0, 0).UTC(), 0},
		{"one second before epoch", time.Date(1969, 12, 31, 23, 59, 59, 0, time.UTC), -1},
		{"sub-second truncated", time.Date(2023, 10, 5, 12, 0, 0, 999_000_000, time.UTC), 1696507200},
		{"pre-epoch sub-second floors", time.Date(1969, 12, 31, 23, 59, 59, 500_000_000, time.UTC), -1},
		{"wall clock read as UTC", time.Date(2023, 10, 5, 12, 0, 0, 0, time.FixedZone("UTC+3", 3*3600)), 1696507200},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ts := ToProto(tt.in)
			require.NotNil(t, ts)
			assert.Equal(t, tt.seconds, ts.GetSeconds())
			assert.Equal(t, int32(0), ts.GetNanos())
		})
	}
}

func TestToProto_IgnoresLocalZone(t *testing.T) {
	orig := time.Local
	t.Cleanup(func() { time.Local = orig })

	in := time.Date(2023, 10, 5, 12, 0, 0, 0, time.UTC)

	time.Local = time.FixedZone("UTC-7", -7*3600)
	a := ToProto(in)
	time.Local = time.FixedZone("UTC+9", 9*3600)
	b := ToProto(in)

	assert.Equal(t, a.GetSeconds(), b.GetSeconds())
	assert.Equal(t, int64(1696507200), a.GetSeconds())
}

func TestDuration_UnmarshalJSON(t *testing.T) {
	var d Duration
	require.NoError(t, json.Unmarshal([]byte(`"1m30s"`), &d))
	assert.Equal(t, 90*time.Second, d.Duration)

	require.NoError(t, json.Unmarshal([]byte(`1000000000`), &d))
	assert.Equal(t, time.Second, d.Duration)

	assert.Error(t, json.Unmarshal([]byte(`"soon"`), &d))
	assert.Error(t, json.Unmarshal([]byte(`true`), &d))
}

func TestDuration_MarshalJSON(t *testing.T) {
	b, err := json.Marshal(Duration{Duration: 5 * time.Second})
	require.NoError(t, err)
	assert.JSONEq(t, `"5s"`, string(b))
}
