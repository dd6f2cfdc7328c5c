package service

import (
	"math"
	"time"
)

// LeaveDurationDays calcula a duração de um afastamento em dias, inclusiva
// nas duas pontas: início igual ao fim conta 1 dia.
func LeaveDurationDays(start, end time.Time) int {
	if end.Before(start) {
		return 0
	}
	days := int(math.Ceil(end.Sub(start).Hours() / 24))
	return days + 1
}
