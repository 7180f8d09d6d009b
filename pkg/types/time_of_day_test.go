package types

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseTimeOfDay(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    string
		wantErr bool
	}{
		{name: "hh:mm", input: "12:30", want: "12:30"},
		{name: "hh:mm:ss drops seconds", input: "18:45:59", want: "18:45"},
		{name: "midnight", input: "00:00", want: "00:00"},
		{name: "padded with spaces", input: " 09:05 ", want: "09:05"},
		{name: "hour out of range", input: "24:00", wantErr: true},
		{name: "garbage", input: "noon", wantErr: true},
		{name: "empty", input: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseTimeOfDay(tt.input)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrInvalidTimeOfDay)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got.String())
		})
	}
}

func TestTimeOfDay_AddMinutes(t *testing.T) {
	start := MustTimeOfDay("22:30")

	got, err := start.AddMinutes(89)
	require.NoError(t, err)
	assert.Equal(t, "23:59", got.String())

	back, err := start.AddMinutes(-30)
	require.NoError(t, err)
	assert.Equal(t, "22:00", back.String())

	_, err = start.AddMinutes(90)
	assert.ErrorIs(t, err, ErrInvalidTimeOfDay)
}

func TestTimeOfDay_Compare(t *testing.T) {
	a := MustTimeOfDay("12:00")
	b := MustTimeOfDay("14:00")

	assert.True(t, a.IsBefore(b))
	assert.False(t, b.IsBefore(a))
	assert.True(t, b.IsAfter(a))
	assert.False(t, a.IsAfter(a))
	assert.False(t, a.IsBefore(a))
}

func TestTimeOfDay_On(t *testing.T) {
	loc := time.FixedZone("MSK", 3*60*60)

	date := time.Date(2026, time.October, 19, 0, 0, 0, 0, loc)
	got := MustTimeOfDay("12:30").On(date)

	assert.Equal(t, time.Date(2026, time.October, 19, 12, 30, 0, 0, loc), got)
	assert.Equal(t, loc, got.Location())
}

func TestTimeOfDay_Scan(t *testing.T) {
	var fromTime TimeOfDay
	require.NoError(t, fromTime.Scan(time.Date(0, 1, 1, 19, 15, 0, 0, time.UTC)))
	assert.Equal(t, "19:15", fromTime.String())

	var fromString TimeOfDay
	require.NoError(t, fromString.Scan("11:45:00"))
	assert.Equal(t, "11:45", fromString.String())

	var fromBytes TimeOfDay
	require.NoError(t, fromBytes.Scan([]byte("08:00:00")))
	assert.Equal(t, "08:00", fromBytes.String())

	var fromNil TimeOfDay
	assert.ErrorIs(t, fromNil.Scan(nil), ErrInvalidTimeOfDay)

	var fromInt TimeOfDay
	assert.ErrorIs(t, fromInt.Scan(42), ErrInvalidTimeOfDay)
}

func TestTimeOfDay_ScanEndOfDay(t *testing.T) {
	sources := []interface{}{
		time.Date(0, 1, 2, 0, 0, 0, 0, time.UTC),
		"24:00:00",
		[]byte("24:00"),
	}

	for _, src := range sources {
		var got TimeOfDay
		require.NoError(t, got.Scan(src), "%v", src)
		assert.Equal(t, EndOfDay, got, "%v", src)
		assert.Equal(t, "23:59", got.String())
	}

	var midnight TimeOfDay
	require.NoError(t, midnight.Scan(time.Date(0, 1, 1, 0, 0, 0, 0, time.UTC)))
	assert.Equal(t, 0, midnight.Minutes())
}

func TestTimeOfDay_Value(t *testing.T) {
	v, err := MustTimeOfDay("07:05").Value()
	require.NoError(t, err)
	assert.Equal(t, "07:05:00", v)
}
