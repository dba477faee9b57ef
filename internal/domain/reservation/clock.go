package reservation

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/barbexa/barbexa-api/internal/models"
)

// ===============================
// Duração (HH:MM:SS → minutos)
// ===============================

// ClockToMinutes converte uma duração no formato HH:MM:SS para minutos
// inteiros. Segundos que não completam um minuto são descartados
// (mesmo arredondamento de TIME_TO_SEC(d)/60 truncado).
func ClockToMinutes(clock string) (int, error) {
	parts := strings.Split(clock, ":")
	if len(parts) != 3 {
		return 0, fmt.Errorf("invalid clock duration %q", clock)
	}

	h, err := strconv.Atoi(parts[0])
	if err != nil || h < 0 {
		return 0, fmt.Errorf("invalid clock duration %q", clock)
	}
	m, err := strconv.Atoi(parts[1])
	if err != nil || m < 0 || m > 59 {
		return 0, fmt.Errorf("invalid clock duration %q", clock)
	}
	s, err := strconv.Atoi(parts[2])
	if err != nil || s < 0 || s > 59 {
		return 0, fmt.Errorf("invalid clock duration %q", clock)
	}

	return (h*3600 + m*60 + s) / 60, nil
}

// comboMinutes resolve a duração de um combo: o override vence; sem
// override, soma (duração do item × quantidade).
func comboMinutes(combo models.Combo) (int, error) {
	if combo.DurationOverride != nil && *combo.DurationOverride != "" {
		return ClockToMinutes(*combo.DurationOverride)
	}

	total := 0
	for _, item := range combo.Items {
		min, err := ClockToMinutes(item.Service.Duration)
		if err != nil {
			return 0, err
		}

		qty := item.Quantity
		if qty <= 0 {
			qty = 1
		}
		total += min * qty
	}

	return total, nil
}

// TotalMinutes calcula a duração total reservada: soma das durações
// dos serviços mais a duração resolvida de cada combo.
func TotalMinutes(services []models.Service, combos []models.Combo) (int, error) {
	total := 0

	for _, svc := range services {
		min, err := ClockToMinutes(svc.Duration)
		if err != nil {
			return 0, err
		}
		total += min
	}

	for _, combo := range combos {
		min, err := comboMinutes(combo)
		if err != nil {
			return 0, err
		}
		total += min
	}

	return total, nil
}
