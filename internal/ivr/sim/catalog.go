package sim

import (
	"context"
	"math/rand"
	"sync"

	"github.com/m04kA/SMC-SalonService/internal/ivr"
)

// StaticCatalog набор услуг для симулятора
type StaticCatalog struct{}

// ListOfferings возвращает Snabb, Standard и Lång
func (StaticCatalog) ListOfferings(_ context.Context) ([]ivr.Offering, error) {
	return []ivr.Offering{
		{ID: "quick", Label: "Snabb", DurationMinutes: 15},
		{ID: "standard", Label: "Standard", DurationMinutes: 30},
		{ID: "long", Label: "Lång", DurationMinutes: 60},
	}, nil
}

var (
	slotDays  = []string{"Måndag", "Tisdag", "Onsdag", "Torsdag", "Fredag"}
	slotTimes = []string{"09:00", "10:30", "13:00", "14:30", "16:00"}
)

// RandomSlots случайно комбинирует день и время
// Повторы допускаются, движок их не различает
type RandomSlots struct {
	mu    sync.Mutex
	rnd   *rand.Rand
	count int
}

// NewRandomSlots создает генератор, rnd задает воспроизводимость
func NewRandomSlots(rnd *rand.Rand, count int) *RandomSlots {
	if count <= 0 {
		count = 3
	}
	return &RandomSlots{rnd: rnd, count: count}
}

// SuggestSlots возвращает count меток вида "Måndag 09:00"
func (r *RandomSlots) SuggestSlots(_ context.Context, _ string) ([]string, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	slots := make([]string, r.count)
	for i := range slots {
		day := slotDays[r.rnd.Intn(len(slotDays))]
		at := slotTimes[r.rnd.Intn(len(slotTimes))]
		slots[i] = day + " " + at
	}
	return slots, nil
}

// FixedSlots всегда возвращает один и тот же список
type FixedSlots []string

// SuggestSlots возвращает копию списка
func (f FixedSlots) SuggestSlots(_ context.Context, _ string) ([]string, error) {
	out := make([]string, len(f))
	copy(out, f)
	return out, nil
}
