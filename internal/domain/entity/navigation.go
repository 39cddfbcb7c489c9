package entity

// Secciones del dashboard.
const (
	SectionOverview  = "overview"
	SectionProducts  = "products"
	SectionInventory = "inventory"
	SectionOrdering  = "ordering"
	SectionAnalytics = "analytics"
	SectionSettings  = "settings"
)

// sectionsByRole es la única fuente de verdad del gate de navegación.
// El orden importa: la primera sección es la sección por defecto del rol.
// `settings` no aparece aquí: es accesible para cualquier rol (excepción explícita).
var sectionsByRole = map[string][]string{
	RoleAdmin:            {SectionOverview, SectionProducts, SectionInventory, SectionOrdering, SectionAnalytics},
	RoleInventoryManager: {SectionProducts, SectionInventory},
	RoleOrderingManager:  {SectionProducts, SectionOrdering},
	RoleSalesManager:     {SectionAnalytics},
}

// AllowedSections devuelve las secciones visibles para un rol, en orden de menú.
// Rol desconocido ⇒ lista vacía. La slice devuelta es una copia.
func AllowedSections(role string) []string {
	sections, ok := sectionsByRole[role]
	if !ok {
		return nil
	}
	out := make([]string, len(sections))
	copy(out, sections)
	return out
}

// CanAccessSection informa si el rol puede entrar a la sección.
// `settings` siempre es accesible, sea cual sea el rol.
func CanAccessSection(role, section string) bool {
	if section == SectionSettings {
		return true
	}
	for _, s := range sectionsByRole[role] {
		if s == section {
			return true
		}
	}
	return false
}

// DefaultSection devuelve la sección activa por defecto del rol: la primera del menú.
// Es adonde se redirige cuando la sección pedida no está permitida.
func DefaultSection(role string) string {
	sections := sectionsByRole[role]
	if len(sections) == 0 {
		return ""
	}
	return sections[0]
}

// ResolveActiveSection fuerza la sección activa: si la pedida no está permitida
// para el rol, devuelve la sección por defecto. Determinista por construcción.
func ResolveActiveSection(role, requested string) string {
	if requested != "" && CanAccessSection(role, requested) {
		return requested
	}
	return DefaultSection(role)
}
