package reservation

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/barbexa/barbexa-api/internal/models"
)

func TestClockToMinutes(t *testing.T) {
	tests := []struct {
		clock   string
		want    int
		wantErr bool
	}{
		{clock: "00:30:00", want: 30},
		{clock: "01:00:00", want: 60},
		{clock: "01:30:00", want: 90},
		{clock: "00:00:00", want: 0},
		{clock: "10:15:00", want: 615},
		// segundos soltos são descartados
		{clock: "00:30:59", want: 30},
		{clock: "00:00:59", want: 0},
		{clock: "30:00", wantErr: true},
		{clock: "", wantErr: true},
		{clock: "aa:bb:cc", wantErr: true},
		{clock: "00:75:00", wantErr: true},
		{clock: "00:00:75", wantErr: true},
		{clock: "-1:00:00", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.clock, func(t *testing.T) {
			got, err := ClockToMinutes(tt.clock)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func svc(duration string) models.Service {
	return models.Service{Duration: duration}
}

func TestTotalMinutes_Services(t *testing.T) {
	total, err := TotalMinutes(
		[]models.Service{svc("00:30:00"), svc("00:45:00")},
		nil,
	)

	require.NoError(t, err)
	assert.Equal(t, 75, total)
}

func TestTotalMinutes_ComboOverrideWins(t *testing.T) {
	override := "01:00:00"
	combo := models.Combo{
		DurationOverride: &override,
		Items: []models.ComboItem{
			{Service: svc("02:00:00"), Quantity: 3},
		},
	}

	total, err := TotalMinutes(nil, []models.Combo{combo})

	require.NoError(t, err)
	assert.Equal(t, 60, total)
}

func TestTotalMinutes_ComboItemsWithQuantity(t *testing.T) {
	combo := models.Combo{
		Items: []models.ComboItem{
			{Service: svc("00:20:00"), Quantity: 2},
			{Service: svc("00:15:00"), Quantity: 1},
			// quantidade zerada conta como 1
			{Service: svc("00:10:00"), Quantity: 0},
		},
	}

	total, err := TotalMinutes(nil, []models.Combo{combo})

	require.NoError(t, err)
	assert.Equal(t, 65, total)
}

func TestTotalMinutes_ServicesAndCombos(t *testing.T) {
	combo := models.Combo{
		Items: []models.ComboItem{
			{Service: svc("00:30:00"), Quantity: 1},
		},
	}

	total, err := TotalMinutes(
		[]models.Service{svc("00:15:00")},
		[]models.Combo{combo},
	)

	require.NoError(t, err)
	assert.Equal(t, 45, total)
}

func TestTotalMinutes_MalformedDuration(t *testing.T) {
	_, err := TotalMinutes([]models.Service{svc("bogus")}, nil)
	assert.Error(t, err)

	combo := models.Combo{
		Items: []models.ComboItem{
			{Service: svc("nope"), Quantity: 1},
		},
	}
	_, err = TotalMinutes(nil, []models.Combo{combo})
	assert.Error(t, err)
}
