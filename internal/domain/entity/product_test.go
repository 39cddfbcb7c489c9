package entity_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/skyllex94/orderexpress-api/internal/domain/entity"
)

func TestPackaging_UnitPrice(t *testing.T) {
	pkg := &entity.Packaging{
		UnitsPerPack: 24,
		PackPrice:    decimal.RequireFromString("480.00"),
	}
	assert.True(t, pkg.UnitPrice().Equal(decimal.RequireFromString("20.00")))
}

func TestPackaging_UnitPrice_Redondeo(t *testing.T) {
	pkg := &entity.Packaging{
		UnitsPerPack: 3,
		PackPrice:    decimal.RequireFromString("10.00"),
	}
	// 10 / 3 = 3.333... → 3.33 a dos decimales
	assert.True(t, pkg.UnitPrice().Equal(decimal.RequireFromString("3.33")))
}

func TestPackaging_UnitPrice_UnidadesInvalidas(t *testing.T) {
	pkg := &entity.Packaging{UnitsPerPack: 0, PackPrice: decimal.RequireFromString("100")}
	assert.True(t, pkg.UnitPrice().IsZero())
}

func TestValidCategory(t *testing.T) {
	for _, c := range []string{"wine", "beer", "spirits", "non_alcoholic", "food"} {
		assert.True(t, entity.ValidCategory(c), c)
	}
	assert.False(t, entity.ValidCategory("electronics"))
	assert.False(t, entity.ValidCategory(""))
}
