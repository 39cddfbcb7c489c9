package entity_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/skyllex94/orderexpress-api/internal/domain/entity"
)

// El admin ve todas las secciones del menú; los demás roles ven un subconjunto
// propio no vacío.
func TestAllowedSections_AdminVeTodo(t *testing.T) {
	sections := entity.AllowedSections(entity.RoleAdmin)
	assert.Equal(t, []string{
		entity.SectionOverview,
		entity.SectionProducts,
		entity.SectionInventory,
		entity.SectionOrdering,
		entity.SectionAnalytics,
	}, sections)
}

func TestAllowedSections_RolesNoAdminSonSubconjuntoNoVacio(t *testing.T) {
	admin := entity.AllowedSections(entity.RoleAdmin)
	adminSet := make(map[string]bool, len(admin))
	for _, s := range admin {
		adminSet[s] = true
	}

	for _, role := range []string{entity.RoleInventoryManager, entity.RoleOrderingManager, entity.RoleSalesManager} {
		sections := entity.AllowedSections(role)
		require.NotEmpty(t, sections, "el rol %s debe ver al menos una sección", role)
		for _, s := range sections {
			assert.True(t, adminSet[s], "la sección %s de %s debe existir en el menú de admin", s, role)
		}
	}
}

func TestAllowedSections_RolDesconocidoVacio(t *testing.T) {
	assert.Empty(t, entity.AllowedSections("superuser"))
}

// La slice devuelta es una copia: mutarla no debe alterar la tabla interna.
func TestAllowedSections_DevuelveCopia(t *testing.T) {
	first := entity.AllowedSections(entity.RoleAdmin)
	first[0] = "hacked"
	assert.Equal(t, entity.SectionOverview, entity.AllowedSections(entity.RoleAdmin)[0])
}

func TestCanAccessSection_SettingsSiempreAccesible(t *testing.T) {
	for _, role := range []string{
		entity.RoleAdmin, entity.RoleInventoryManager, entity.RoleOrderingManager, entity.RoleSalesManager,
	} {
		assert.True(t, entity.CanAccessSection(role, entity.SectionSettings),
			"settings debe ser accesible para %s", role)
	}
}

func TestCanAccessSection_InventoryManagerBloqueadoEnAnalytics(t *testing.T) {
	assert.False(t, entity.CanAccessSection(entity.RoleInventoryManager, entity.SectionAnalytics))
	assert.True(t, entity.CanAccessSection(entity.RoleInventoryManager, entity.SectionInventory))
}

// La sección activa se fuerza a la primera permitida cuando la pedida no lo está.
func TestResolveActiveSection_FuerzaSeccionPorDefecto(t *testing.T) {
	cases := []struct {
		role      string
		requested string
		want      string
	}{
		{entity.RoleAdmin, entity.SectionAnalytics, entity.SectionAnalytics},
		{entity.RoleAdmin, "", entity.SectionOverview},
		{entity.RoleInventoryManager, entity.SectionAnalytics, entity.SectionProducts},
		{entity.RoleInventoryManager, entity.SectionInventory, entity.SectionInventory},
		{entity.RoleOrderingManager, entity.SectionOverview, entity.SectionProducts},
		{entity.RoleSalesManager, entity.SectionProducts, entity.SectionAnalytics},
		{entity.RoleSalesManager, entity.SectionSettings, entity.SectionSettings},
	}
	for _, c := range cases {
		assert.Equal(t, c.want, entity.ResolveActiveSection(c.role, c.requested),
			"rol %s pidiendo %q", c.role, c.requested)
	}
}

// Misma entrada ⇒ misma salida, siempre.
func TestResolveActiveSection_Determinista(t *testing.T) {
	first := entity.ResolveActiveSection(entity.RoleOrderingManager, entity.SectionAnalytics)
	for i := 0; i < 10; i++ {
		assert.Equal(t, first, entity.ResolveActiveSection(entity.RoleOrderingManager, entity.SectionAnalytics))
	}
}
