package model

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDate_JSON(t *testing.T) {
	d := NewDate(time.Date(2026, 12, 24, 23, 30, 0, 0, time.FixedZone("CET", 3600)))

	out, err := json.Marshal(struct {
		DueDate *Date `json:"due_date"`
	}{&d})
	require.NoError(t, err)
	assert.JSONEq(t, `{"due_date":"2026-12-24"}`, string(out))

	var in struct {
		DueDate *Date `json:"due_date"`
	}
	require.NoError(t, json.Unmarshal([]byte(`{"due_date":"2027-01-05"}`), &in))
	require.NotNil(t, in.DueDate)
	assert.Equal(t, "2027-01-05", in.DueDate.String())

	assert.Error(t, json.Unmarshal([]byte(`{"due_date":"05/01/2027"}`), &in))
	assert.Error(t, json.Unmarshal([]byte(`{"due_date":20270105}`), &in))
}

func TestDate_Scan(t *testing.T) {
	tests := []struct {
		name string
		src  any
		want string
	}{
		{"time", time.Date(2026, 12, 24, 0, 0, 0, 0, time.UTC), "2026-12-24"},
		{"string", "2026-12-24", "2026-12-24"},
		{"timestamp string", "2026-12-24 00:00:00+00:00", "2026-12-24"},
		{"bytes", []byte("2026-12-24"), "2026-12-24"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var d Date
			require.NoError(t, d.Scan(tt.src))
			assert.Equal(t, tt.want, d.String())
		})
	}

	var d Date
	assert.Error(t, d.Scan(42))
	assert.Error(t, d.Scan("2026"))

	v, err := NewDate(time.Date(2026, 1, 2, 0, 0, 0, 0, time.UTC)).Value()
	require.NoError(t, err)
	assert.Equal(t, "2026-01-02", v)
}
