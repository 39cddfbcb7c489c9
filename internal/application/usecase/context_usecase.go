package usecase

import (
	"context"

	"github.com/skyllex94/orderexpress-api/internal/application/dto"
	"github.com/skyllex94/orderexpress-api/internal/domain"
	"github.com/skyllex94/orderexpress-api/internal/domain/entity"
	"github.com/skyllex94/orderexpress-api/internal/domain/repository"
)

// ContextUseCase resuelve el contexto de sesión del shell del dashboard:
// qué negocio es el actual para el usuario, con qué rol y qué secciones ve.
// El store de preferencias sustituye al cache local del navegador y se inyecta
// explícitamente: no hay estado ambiente.
type ContextUseCase struct {
	businessRepo repository.BusinessRepository
	roleRepo     repository.RoleAssignmentRepository
	prefRepo     repository.PreferenceRepository
	roles        *RoleService
}

// NewContextUseCase construye el caso de uso de contexto.
func NewContextUseCase(
	businessRepo repository.BusinessRepository,
	roleRepo repository.RoleAssignmentRepository,
	prefRepo repository.PreferenceRepository,
	roles *RoleService,
) *ContextUseCase {
	return &ContextUseCase{
		businessRepo: businessRepo,
		roleRepo:     roleRepo,
		prefRepo:     prefRepo,
		roles:        roles,
	}
}

// ResolveCurrentBusiness determina el negocio actual del usuario en orden
// estricto, parando en el primer acierto:
//  1. Preferencia persistida, si el negocio aún existe. Si apunta a un negocio
//     eliminado, la entrada se limpia antes de seguir.
//  2. Negocio creado por el usuario más antiguo (created_at ascendente).
//  3. Primer negocio con asignación de rol (orden created_at de la asignación).
//  4. nil: el caller debe llevar al usuario a crear negocio.
//
// Al resolver por 2 o 3 se persiste la elección para que la siguiente carga
// tome el camino rápido. Los fallos al escribir la preferencia no rompen la
// resolución: el store es best-effort.
func (uc *ContextUseCase) ResolveCurrentBusiness(ctx context.Context, userID string) (*entity.Business, error) {
	// Paso 1: preferencia persistida
	pref, err := uc.prefRepo.Get(ctx, userID)
	if err != nil {
		return nil, err
	}
	if pref != nil && pref.CurrentBusinessID != "" {
		business, err := uc.businessRepo.GetByID(ctx, pref.CurrentBusinessID)
		if err != nil {
			return nil, err
		}
		if business != nil {
			return business, nil
		}
		// Negocio eliminado: invalidar antes de caer a los pasos 2/3
		if err := uc.prefRepo.ClearCurrentBusiness(ctx, userID); err != nil {
			return nil, err
		}
	}

	// Paso 2: negocio propio más antiguo
	owned, err := uc.businessRepo.ListCreatedBy(ctx, userID)
	if err != nil {
		return nil, err
	}
	if len(owned) > 0 {
		uc.remember(ctx, userID, owned[0].ID)
		return owned[0], nil
	}

	// Paso 3: primer negocio por asignación de rol
	assignments, err := uc.roleRepo.ListByUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	for _, a := range assignments {
		business, err := uc.businessRepo.GetByID(ctx, a.BusinessID)
		if err != nil {
			return nil, err
		}
		if business != nil {
			uc.remember(ctx, userID, business.ID)
			return business, nil
		}
	}

	// Paso 4: nada que resolver
	return nil, nil
}

// remember persiste la elección; un fallo aquí no invalida la resolución.
func (uc *ContextUseCase) remember(ctx context.Context, userID, businessID string) {
	_ = uc.prefRepo.SetCurrentBusiness(ctx, userID, businessID)
}

// SwitchBusiness cambia el negocio actual. Valida que el usuario tenga rol en
// el destino (creador o asignación) antes de persistir la preferencia.
func (uc *ContextUseCase) SwitchBusiness(ctx context.Context, userID, businessID string) error {
	if _, err := uc.roles.ResolveRole(ctx, userID, businessID); err != nil {
		return err
	}
	return uc.prefRepo.SetCurrentBusiness(ctx, userID, businessID)
}

// SetSidebarCollapsed persiste el estado del sidebar del dashboard.
func (uc *ContextUseCase) SetSidebarCollapsed(ctx context.Context, userID string, collapsed bool) error {
	return uc.prefRepo.SetSidebarCollapsed(ctx, userID, collapsed)
}

// DashboardContext arma la respuesta completa del shell: negocio actual, rol,
// secciones permitidas y sección activa (forzada a la primera permitida cuando
// la pedida no lo está). Sin negocio resoluble devuelve Business nil y el
// cliente muestra la pantalla de creación.
func (uc *ContextUseCase) DashboardContext(ctx context.Context, userID, requestedSection string) (*dto.ContextResponse, error) {
	var sidebarCollapsed bool
	if pref, err := uc.prefRepo.Get(ctx, userID); err == nil && pref != nil {
		sidebarCollapsed = pref.SidebarCollapsed
	}

	business, err := uc.ResolveCurrentBusiness(ctx, userID)
	if err != nil {
		return nil, err
	}
	if business == nil {
		return &dto.ContextResponse{SidebarCollapsed: sidebarCollapsed}, nil
	}

	role, err := uc.roles.ResolveRole(ctx, userID, business.ID)
	if err != nil {
		if err == domain.ErrNoRole {
			// La preferencia apuntaba a un negocio en el que ya no se tiene rol
			// (ej. el admin quitó al usuario): limpiar y resolver de nuevo.
			if clearErr := uc.prefRepo.ClearCurrentBusiness(ctx, userID); clearErr != nil {
				return nil, clearErr
			}
			return uc.DashboardContext(ctx, userID, requestedSection)
		}
		return nil, err
	}

	return &dto.ContextResponse{
		Business:         ToBusinessResponse(business),
		Role:             role,
		AllowedSections:  entity.AllowedSections(role),
		ActiveSection:    entity.ResolveActiveSection(role, requestedSection),
		SidebarCollapsed: sidebarCollapsed,
	}, nil
}
