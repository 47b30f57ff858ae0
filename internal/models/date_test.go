package models

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDate_JSON(t *testing.T) {
	t.Parallel()

	t.Run("marshals as a plain day", func(t *testing.T) {
		t.Parallel()
		d := DateOf(time.Date(2025, 6, 15, 17, 45, 0, 0, time.UTC))
		out, err := json.Marshal(d)
		require.NoError(t, err)
		assert.Equal(t, `"2025-06-15"`, string(out))
	})

	t.Run("unmarshals a plain day", func(t *testing.T) {
		t.Parallel()
		var d Date
		require.NoError(t, json.Unmarshal([]byte(`"2025-06-15"`), &d))
		assert.Equal(t, "2025-06-15", d.String())
	})

	t.Run("truncates RFC3339 timestamps", func(t *testing.T) {
		t.Parallel()
		var d Date
		require.NoError(t, json.Unmarshal([]byte(`"2025-06-15T17:45:00Z"`), &d))
		assert.Equal(t, "2025-06-15", d.String())
	})

	t.Run("rejects garbage", func(t *testing.T) {
		t.Parallel()
		var d Date
		assert.Error(t, json.Unmarshal([]byte(`"June 15"`), &d))
	})
}

func TestDate_Scan(t *testing.T) {
	t.Parallel()

	var d Date
	require.NoError(t, d.Scan(time.Date(2025, 6, 15, 23, 0, 0, 0, time.UTC)))
	assert.Equal(t, "2025-06-15", d.String())

	var fromString Date
	require.NoError(t, fromString.Scan("2025-06-15"))
	assert.Equal(t, "2025-06-15", fromString.String())
}

func TestAppError_Unwrap(t *testing.T) {
	t.Parallel()

	inner := assert.AnError
	appErr := NewInternalError(inner)
	assert.ErrorIs(t, appErr, inner)
	assert.Equal(t, CodeInternal, appErr.Code)
}
