package model

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestDateOnlyScan(t *testing.T) {
	tests := []struct {
		name     string
		value    interface{}
		expected DateOnly
	}{
		{"driver time.Time", time.Date(2100, 1, 1, 0, 0, 0, 0, time.UTC), "2100-01-01"},
		{"raw bytes", []byte("2100-01-01"), "2100-01-01"},
		{"string", "2100-01-01", "2100-01-01"},
		{"null", nil, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var d DateOnly
			assert.NoError(t, d.Scan(tt.value))
			assert.Equal(t, tt.expected, d)
		})
	}
}

func TestDateOnlyScanUnsupported(t *testing.T) {
	var d DateOnly
	assert.Error(t, d.Scan(42))
}

func TestTimeOfDayScan(t *testing.T) {
	tests := []struct {
		name     string
		value    interface{}
		expected TimeOfDay
	}{
		{"store echoes zero seconds", []byte("10:00:00"), "10:00"},
		{"non-zero seconds kept", []byte("10:00:30"), "10:00:30"},
		{"minute precision", []byte("10:00"), "10:00"},
		{"string", "18:30:00", "18:30"},
		{"driver time.Time", time.Date(0, 1, 1, 18, 30, 0, 0, time.UTC), "18:30"},
		{"null", nil, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var v TimeOfDay
			assert.NoError(t, v.Scan(tt.value))
			assert.Equal(t, tt.expected, v)
		})
	}
}

func TestDateTimeValue(t *testing.T) {
	v, err := DateOnly("2100-01-01").Value()
	assert.NoError(t, err)
	assert.Equal(t, "2100-01-01", v)

	v, err = TimeOfDay("10:00").Value()
	assert.NoError(t, err)
	assert.Equal(t, "10:00", v)

	v, err = DateOnly("").Value()
	assert.NoError(t, err)
	assert.Nil(t, v)
}
