package get_available_slots

import (
	"time"

	"github.com/servicebox-app/booking-service/internal/domain"
)

// generateSlots строит слоты по рабочему окну магазина.
// Кандидаты идут с фиксированным шагом от начала окна, пока начало кандидата
// раньше конца окна. Конец кандидата при этом может выходить за конец окна -
// хвостовые слоты намеренно не обрезаются, это зафиксированное текущее
// поведение (клиенты на него полагаются при длинных услугах).
//
// Слот включается в результат, если в интервале [кандидат, кандидат+длительность)
// свободен хотя бы один мастер. Проверка пересечения - та же, что у аллокатора
// (domain.MasterAvailable, полуоткрытые интервалы), поэтому показанный слот
// бронируется, пока его не занял конкурирующий запрос.
func generateSlots(
	schedule domain.ScheduleConfig,
	durationMinutes int,
	windowStart, windowEnd time.Time,
	masters []*domain.Master,
	bookings []*domain.Booking,
) []Slot {
	duration := time.Duration(durationMinutes) * time.Minute
	step := schedule.Step()

	slots := make([]Slot, 0)

	for current := windowStart; current.Before(windowEnd); current = current.Add(step) {
		slotEnd := current.Add(duration)

		available := make([]domain.MasterRef, 0)
		for _, master := range masters {
			if domain.MasterAvailable(bookings, master.ID, current, slotEnd) {
				available = append(available, domain.MasterRef{ID: master.ID, Name: master.Name})
			}
		}

		if len(available) == 0 {
			continue
		}

		slots = append(slots, Slot{
			Time:      current.In(schedule.Location).Format(domain.TimeFormat),
			Datetime:  current,
			Available: true,
			Masters:   available,
		})
	}

	return slots
}
