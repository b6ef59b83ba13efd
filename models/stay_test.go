package models

import (
	"math/rand"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func d(day int) time.Time {
	return time.Date(2024, 1, day, 0, 0, 0, 0, time.UTC)
}

func TestStayRange_Overlaps(t *testing.T) {
	base := StayRange{CheckIn: d(10), CheckOut: d(15)}
	tests := []struct {
		name  string
		other StayRange
		want  bool
	}{
		{"identical", StayRange{d(10), d(15)}, true},
		{"contained", StayRange{d(11), d(12)}, true},
		{"containing", StayRange{d(5), d(20)}, true},
		{"straddles start", StayRange{d(8), d(11)}, true},
		{"straddles end", StayRange{d(14), d(18)}, true},
		{"ends on arrival", StayRange{d(5), d(10)}, false},
		{"starts on departure", StayRange{d(15), d(18)}, false},
		{"before", StayRange{d(1), d(3)}, false},
		{"after", StayRange{d(20), d(22)}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, base.Overlaps(tt.other))
			assert.Equal(t, tt.want, tt.other.Overlaps(base))
		})
	}
}

// Two stays overlap exactly when some night belongs to both.
func TestStayRange_OverlapsMatchesSharedNight(t *testing.T) {
	r := rand.New(rand.NewSource(42))
	randomStay := func() StayRange {
		in := 1 + r.Intn(20)
		return StayRange{CheckIn: d(in), CheckOut: d(in + 1 + r.Intn(6))}
	}
	for i := 0; i < 500; i++ {
		a, b := randomStay(), randomStay()
		shared := false
		for night := a.CheckIn; night.Before(a.CheckOut); night = night.AddDate(0, 0, 1) {
			if !night.Before(b.CheckIn) && night.Before(b.CheckOut) {
				shared = true
				break
			}
		}
		assert.Equal(t, shared, a.Overlaps(b), "%v %v", a, b)
	}
}

func TestNewStayRange_DropsTimeOfDay(t *testing.T) {
	s := NewStayRange(time.Date(2024, 3, 9, 22, 15, 0, 0, time.UTC), time.Date(2024, 3, 11, 6, 0, 0, 0, time.UTC))
	assert.True(t, s.Valid())
	assert.Equal(t, 2, s.Nights())
	assert.True(t, s.CheckIn.Equal(time.Date(2024, 3, 9, 0, 0, 0, 0, time.UTC)))

	assert.False(t, NewStayRange(d(3), d(3)).Valid())
	assert.False(t, NewStayRange(d(4), d(3)).Valid())
}
