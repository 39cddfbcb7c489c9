package dto

// ContextResponse es lo que el shell del dashboard necesita para pintarse:
// negocio actual, rol efectivo, secciones permitidas y sección activa forzada.
type ContextResponse struct {
	Business         *BusinessResponse `json:"business"` // nil ⇒ el cliente debe pedir crear negocio
	Role             string            `json:"role,omitempty"`
	AllowedSections  []string          `json:"allowed_sections,omitempty"`
	ActiveSection    string            `json:"active_section,omitempty"`
	SidebarCollapsed bool              `json:"sidebar_collapsed"`
}

// SwitchBusinessRequest cambio explícito del negocio actual.
type SwitchBusinessRequest struct {
	BusinessID string `json:"business_id" validate:"required,uuid"`
}

// SidebarRequest persistencia del estado del sidebar.
type SidebarRequest struct {
	Collapsed bool `json:"collapsed"`
}
