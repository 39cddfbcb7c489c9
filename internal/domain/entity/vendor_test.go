package entity_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/skyllex94/orderexpress-api/internal/domain/entity"
)

func TestParseDeliveryDays_FormatoValido(t *testing.T) {
	days, err := entity.ParseDeliveryDays("mon,wed,fri")
	require.NoError(t, err)
	assert.Equal(t, []time.Weekday{time.Monday, time.Wednesday, time.Friday}, days)
}

func TestParseDeliveryDays_ToleraEspaciosYMayusculas(t *testing.T) {
	days, err := entity.ParseDeliveryDays(" Tue , SAT ")
	require.NoError(t, err)
	assert.Equal(t, []time.Weekday{time.Tuesday, time.Saturday}, days)
}

func TestParseDeliveryDays_VaciaEsNil(t *testing.T) {
	days, err := entity.ParseDeliveryDays("")
	require.NoError(t, err)
	assert.Nil(t, days)

	days, err = entity.ParseDeliveryDays("   ")
	require.NoError(t, err)
	assert.Nil(t, days)
}

func TestParseDeliveryDays_RechazaDesconocidos(t *testing.T) {
	_, err := entity.ParseDeliveryDays("mon,lunes")
	assert.Error(t, err)
}

func TestParseDeliveryDays_RechazaDuplicados(t *testing.T) {
	_, err := entity.ParseDeliveryDays("mon,mon")
	assert.Error(t, err)
}

func TestDeliversOn(t *testing.T) {
	v := &entity.Vendor{DeliveryDays: "mon,fri"}
	assert.True(t, v.DeliversOn(time.Monday))
	assert.False(t, v.DeliversOn(time.Sunday))

	// Malformado cuenta como "no entrega"
	v.DeliveryDays = "xyz"
	assert.False(t, v.DeliversOn(time.Monday))
}
