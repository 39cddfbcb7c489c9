package entity

import (
	"fmt"
	"strings"
	"time"
)

// Vendor representa un proveedor del negocio (distribuidor de bebida o comida).
// DeliveryDays guarda los días de entrega como texto "mon,wed,fri"; el parsing
// y la validación viven en ParseDeliveryDays.
type Vendor struct {
	ID           string
	BusinessID   string
	Name         string
	ContactName  string
	Email        string
	Phone        string
	DeliveryDays string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

var weekdayByAbbr = map[string]time.Weekday{
	"sun": time.Sunday,
	"mon": time.Monday,
	"tue": time.Tuesday,
	"wed": time.Wednesday,
	"thu": time.Thursday,
	"fri": time.Friday,
	"sat": time.Saturday,
}

// ParseDeliveryDays convierte "mon,wed,fri" en días de la semana. Tolera espacios
// y mayúsculas; rechaza abreviaturas desconocidas y duplicados. Cadena vacía ⇒ nil
// (proveedor sin calendario de entregas).
func ParseDeliveryDays(s string) ([]time.Weekday, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil, nil
	}
	parts := strings.Split(s, ",")
	seen := make(map[time.Weekday]bool, len(parts))
	days := make([]time.Weekday, 0, len(parts))
	for _, p := range parts {
		abbr := strings.ToLower(strings.TrimSpace(p))
		day, ok := weekdayByAbbr[abbr]
		if !ok {
			return nil, fmt.Errorf("día de entrega desconocido: %q", p)
		}
		if seen[day] {
			return nil, fmt.Errorf("día de entrega duplicado: %q", p)
		}
		seen[day] = true
		days = append(days, day)
	}
	return days, nil
}

// DeliversOn informa si el proveedor entrega el día dado. DeliveryDays malformado
// cuenta como "no entrega" (la validación dura ocurre al guardar el proveedor).
func (v *Vendor) DeliversOn(day time.Weekday) bool {
	days, err := ParseDeliveryDays(v.DeliveryDays)
	if err != nil {
		return false
	}
	for _, d := range days {
		if d == day {
			return true
		}
	}
	return false
}
