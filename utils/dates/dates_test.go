package dates

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestParse(t *testing.T) {
	tests := []struct {
		name  string
		value string
		want  time.Time
		ok    bool
	}{
		{"dd/mm/yyyy", "05/01/2024", time.Date(2024, 1, 5, 0, 0, 0, 0, time.UTC), true},
		{"iso", "2024-06-01", time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC), true},
		{"empty", "", Epoch, false},
		{"garbage", "not-a-date", Epoch, false},
		{"us order rejected", "13/25/2024", Epoch, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := Parse(tt.value)
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseLenientNilLogger(t *testing.T) {
	// logger 為 nil 也不能 panic
	assert.Equal(t, Epoch, ParseLenient(nil, "garbage"))
	assert.Equal(t, time.Date(2024, 1, 5, 0, 0, 0, 0, time.UTC), ParseLenient(nil, "05/01/2024"))
}

func TestParseMonth(t *testing.T) {
	assert.Equal(t, time.Date(2024, 7, 1, 0, 0, 0, 0, time.UTC), ParseMonth("7/2024"))
	assert.Equal(t, time.Date(2024, 7, 1, 0, 0, 0, 0, time.UTC), ParseMonth("07/2024"))
	assert.Equal(t, Epoch, ParseMonth(""))
	assert.Equal(t, Epoch, ParseMonth("2024-07"))
}

func TestCanonicalRoundTrip(t *testing.T) {
	parsed, ok := Parse("05/01/2024")
	assert.True(t, ok)
	assert.Equal(t, "2024-01-05", Canonical(parsed))

	// canonical 形式再 parse 應回同一天
	again, ok := Parse(Canonical(parsed))
	assert.True(t, ok)
	assert.Equal(t, parsed, again)
}

func TestBadDatesSortOldest(t *testing.T) {
	good, _ := Parse("2024-06-01")
	assert.True(t, good.After(Epoch))
}
