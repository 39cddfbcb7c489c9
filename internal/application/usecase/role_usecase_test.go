package usecase_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/skyllex94/orderexpress-api/internal/application/usecase"
	"github.com/skyllex94/orderexpress-api/internal/domain"
	"github.com/skyllex94/orderexpress-api/internal/domain/entity"
)

const (
	ownerID    = "00000000-0000-0000-0000-000000000001"
	memberID   = "00000000-0000-0000-0000-000000000002"
	strangerID = "00000000-0000-0000-0000-000000000003"
	bizID      = "00000000-0000-0000-0000-0000000000b1"
)

func setupRoleService() (*usecase.RoleService, *fakeBusinessRepo, *fakeRoleRepo) {
	businessRepo := newFakeBusinessRepo()
	roleRepo := newFakeRoleRepo()
	_ = businessRepo.Create(context.Background(), &entity.Business{
		ID:        bizID,
		Name:      "La Cantina",
		CreatedBy: ownerID,
		CreatedAt: time.Now(),
	})
	return usecase.NewRoleService(businessRepo, roleRepo), businessRepo, roleRepo
}

func TestResolveRole_CreadorEsAdmin(t *testing.T) {
	svc, _, _ := setupRoleService()
	role, err := svc.ResolveRole(context.Background(), ownerID, bizID)
	require.NoError(t, err)
	assert.Equal(t, entity.RoleAdmin, role)
}

// La propiedad pesa más que cualquier asignación almacenada: aunque exista una
// fila que diga otra cosa para el dueño, el rol efectivo sigue siendo admin.
func TestResolveRole_PropiedadIgnoraAsignacionAlmacenada(t *testing.T) {
	svc, _, roleRepo := setupRoleService()
	_ = roleRepo.Upsert(context.Background(), &entity.RoleAssignment{
		ID: "a1", UserID: ownerID, BusinessID: bizID, Role: entity.RoleSalesManager,
	})
	role, err := svc.ResolveRole(context.Background(), ownerID, bizID)
	require.NoError(t, err)
	assert.Equal(t, entity.RoleAdmin, role)
}

func TestResolveRole_AsignacionDeMiembro(t *testing.T) {
	svc, _, roleRepo := setupRoleService()
	_ = roleRepo.Upsert(context.Background(), &entity.RoleAssignment{
		ID: "a2", UserID: memberID, BusinessID: bizID, Role: entity.RoleInventoryManager,
	})
	role, err := svc.ResolveRole(context.Background(), memberID, bizID)
	require.NoError(t, err)
	assert.Equal(t, entity.RoleInventoryManager, role)
}

// Sin asignación no hay rol: acceso denegado, nunca un admin por omisión.
func TestResolveRole_SinAsignacionDeniega(t *testing.T) {
	svc, _, _ := setupRoleService()
	_, err := svc.ResolveRole(context.Background(), strangerID, bizID)
	assert.ErrorIs(t, err, domain.ErrNoRole)
}

func TestResolveRole_NegocioInexistente(t *testing.T) {
	svc, _, _ := setupRoleService()
	_, err := svc.ResolveRole(context.Background(), ownerID, "00000000-0000-0000-0000-0000000000ff")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestResolveRole_ArgumentosVacios(t *testing.T) {
	svc, _, _ := setupRoleService()
	_, err := svc.ResolveRole(context.Background(), "", bizID)
	assert.Error(t, err)
	_, err = svc.ResolveRole(context.Background(), ownerID, "")
	assert.Error(t, err)
}
