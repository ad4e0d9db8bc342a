package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func at(hour, min int) time.Time {
	return time.Date(2026, 9, 15, hour, min, 0, 0, time.UTC)
}

func TestOverlaps(t *testing.T) {
	cases := []struct {
		name           string
		s1, e1, s2, e2 time.Time
		want           bool
	}{
		{"identical intervals", at(10, 0), at(11, 0), at(10, 0), at(11, 0), true},
		{"partial overlap", at(10, 0), at(11, 0), at(10, 30), at(11, 30), true},
		{"contained interval", at(10, 0), at(12, 0), at(10, 30), at(11, 0), true},
		{"touching endpoints do not overlap", at(9, 0), at(10, 0), at(10, 0), at(11, 0), false},
		{"touching endpoints reversed", at(10, 0), at(11, 0), at(9, 0), at(10, 0), false},
		{"disjoint", at(9, 0), at(10, 0), at(11, 0), at(12, 0), false},
	}

	for _, tt := range cases {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Overlaps(tt.s1, tt.e1, tt.s2, tt.e2))
			// Пересечение симметрично
			assert.Equal(t, tt.want, Overlaps(tt.s2, tt.e2, tt.s1, tt.e1))
		})
	}
}

func TestMasterAvailable(t *testing.T) {
	masterA := "a0000000-0000-0000-0000-000000000001"
	masterB := "a0000000-0000-0000-0000-000000000002"

	bookings := []*Booking{
		{MasterID: &masterA, StartTime: at(10, 0), EndTime: at(11, 0), Status: StatusConfirmed},
		{MasterID: &masterB, StartTime: at(10, 0), EndTime: at(11, 0), Status: StatusCancelled},
	}

	// Мастер A занят в пересекающемся интервале
	assert.False(t, MasterAvailable(bookings, masterA, at(10, 30), at(11, 30)))

	// Касание границ не конфликтует
	assert.True(t, MasterAvailable(bookings, masterA, at(11, 0), at(12, 0)))
	assert.True(t, MasterAvailable(bookings, masterA, at(9, 0), at(10, 0)))

	// Отмененное бронирование мастера B не занимает интервал
	assert.True(t, MasterAvailable(bookings, masterB, at(10, 0), at(11, 0)))

	// Бронирование мастера A не мешает мастеру B
	assert.True(t, MasterAvailable(bookings, masterB, at(10, 30), at(11, 30)))

	// Бронирования без мастера не учитываются
	orphan := []*Booking{{MasterID: nil, StartTime: at(10, 0), EndTime: at(11, 0), Status: StatusPending}}
	assert.True(t, MasterAvailable(orphan, masterA, at(10, 0), at(11, 0)))
}
