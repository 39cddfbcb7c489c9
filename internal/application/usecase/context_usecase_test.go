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

type contextFixture struct {
	uc           *usecase.ContextUseCase
	businessRepo *fakeBusinessRepo
	roleRepo     *fakeRoleRepo
	prefRepo     *fakePrefRepo
}

func newContextFixture() *contextFixture {
	businessRepo := newFakeBusinessRepo()
	roleRepo := newFakeRoleRepo()
	prefRepo := newFakePrefRepo()
	roles := usecase.NewRoleService(businessRepo, roleRepo)
	return &contextFixture{
		uc:           usecase.NewContextUseCase(businessRepo, roleRepo, prefRepo, roles),
		businessRepo: businessRepo,
		roleRepo:     roleRepo,
		prefRepo:     prefRepo,
	}
}

func (f *contextFixture) addBusiness(id, createdBy string, createdAt time.Time) {
	_ = f.businessRepo.Create(context.Background(), &entity.Business{
		ID: id, Name: "Negocio " + id, CreatedBy: createdBy, CreatedAt: createdAt,
	})
}

func (f *contextFixture) addAssignment(userID, businessID, role string, createdAt time.Time) {
	_ = f.roleRepo.Upsert(context.Background(), &entity.RoleAssignment{
		ID: userID + ":" + businessID, UserID: userID, BusinessID: businessID,
		Role: role, CreatedAt: createdAt,
	})
}

// Paso 1: la preferencia persistida gana si el negocio aún existe.
func TestResolveCurrentBusiness_PreferenciaPersistida(t *testing.T) {
	f := newContextFixture()
	f.addBusiness("b1", ownerID, time.Now().Add(-2*time.Hour))
	f.addBusiness("b2", ownerID, time.Now().Add(-time.Hour))
	_ = f.prefRepo.SetCurrentBusiness(context.Background(), ownerID, "b2")

	b, err := f.uc.ResolveCurrentBusiness(context.Background(), ownerID)
	require.NoError(t, err)
	require.NotNil(t, b)
	assert.Equal(t, "b2", b.ID)
}

// Paso 2: sin preferencia, el negocio propio más antiguo gana y se persiste.
func TestResolveCurrentBusiness_NegocioPropioMasAntiguo(t *testing.T) {
	f := newContextFixture()
	f.addBusiness("viejo", ownerID, time.Now().Add(-48*time.Hour))
	f.addBusiness("nuevo", ownerID, time.Now().Add(-time.Hour))

	b, err := f.uc.ResolveCurrentBusiness(context.Background(), ownerID)
	require.NoError(t, err)
	require.NotNil(t, b)
	assert.Equal(t, "viejo", b.ID)

	// La elección quedó persistida para la siguiente carga
	pref, _ := f.prefRepo.Get(context.Background(), ownerID)
	require.NotNil(t, pref)
	assert.Equal(t, "viejo", pref.CurrentBusinessID)
}

// Paso 3: sin negocios propios, gana la primera asignación de rol en orden de
// creación de la asignación.
func TestResolveCurrentBusiness_PrimeraAsignacion(t *testing.T) {
	f := newContextFixture()
	f.addBusiness("ajeno1", strangerID, time.Now().Add(-72*time.Hour))
	f.addBusiness("ajeno2", strangerID, time.Now().Add(-96*time.Hour))
	f.addAssignment(memberID, "ajeno2", entity.RoleSalesManager, time.Now().Add(-time.Hour))
	f.addAssignment(memberID, "ajeno1", entity.RoleInventoryManager, time.Now().Add(-2*time.Hour))

	// La asignación de ajeno1 es más antigua, así que gana aunque el negocio
	// ajeno2 se haya creado antes.
	b, err := f.uc.ResolveCurrentBusiness(context.Background(), memberID)
	require.NoError(t, err)
	require.NotNil(t, b)
	assert.Equal(t, "ajeno1", b.ID)

	pref, _ := f.prefRepo.Get(context.Background(), memberID)
	require.NotNil(t, pref)
	assert.Equal(t, "ajeno1", pref.CurrentBusinessID)
}

// Paso 4: nada que resolver ⇒ (nil, nil), el caller ofrece crear negocio.
func TestResolveCurrentBusiness_SinNegocios(t *testing.T) {
	f := newContextFixture()
	b, err := f.uc.ResolveCurrentBusiness(context.Background(), strangerID)
	require.NoError(t, err)
	assert.Nil(t, b)
}

// Preferencia apuntando a un negocio eliminado: se limpia la entrada y se cae
// a los pasos siguientes sin error.
func TestResolveCurrentBusiness_PreferenciaObsoleta(t *testing.T) {
	f := newContextFixture()
	f.addBusiness("vivo", ownerID, time.Now().Add(-time.Hour))
	_ = f.prefRepo.SetCurrentBusiness(context.Background(), ownerID, "eliminado")

	b, err := f.uc.ResolveCurrentBusiness(context.Background(), ownerID)
	require.NoError(t, err)
	require.NotNil(t, b)
	assert.Equal(t, "vivo", b.ID)
	assert.GreaterOrEqual(t, f.prefRepo.clrCnt, 1, "la entrada obsoleta debe limpiarse")
}

// El store de preferencias es best-effort: si la escritura falla, la resolución
// sigue devolviendo el negocio correcto.
func TestResolveCurrentBusiness_FalloAlPersistirNoRompe(t *testing.T) {
	f := newContextFixture()
	f.addBusiness("b1", ownerID, time.Now().Add(-time.Hour))
	f.prefRepo.setErr = context.DeadlineExceeded

	b, err := f.uc.ResolveCurrentBusiness(context.Background(), ownerID)
	require.NoError(t, err)
	require.NotNil(t, b)
	assert.Equal(t, "b1", b.ID)
}

func TestSwitchBusiness_RequiereRolEnDestino(t *testing.T) {
	f := newContextFixture()
	f.addBusiness("b1", ownerID, time.Now())

	// El dueño puede cambiar a su propio negocio
	require.NoError(t, f.uc.SwitchBusiness(context.Background(), ownerID, "b1"))

	// Un extraño no
	err := f.uc.SwitchBusiness(context.Background(), strangerID, "b1")
	assert.ErrorIs(t, err, domain.ErrNoRole)

	// Negocio inexistente
	err = f.uc.SwitchBusiness(context.Background(), ownerID, "nope")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestDashboardContext_AdminCompleto(t *testing.T) {
	f := newContextFixture()
	f.addBusiness("b1", ownerID, time.Now())

	out, err := f.uc.DashboardContext(context.Background(), ownerID, "analytics")
	require.NoError(t, err)
	require.NotNil(t, out.Business)
	assert.Equal(t, "b1", out.Business.ID)
	assert.Equal(t, entity.RoleAdmin, out.Role)
	assert.Equal(t, "analytics", out.ActiveSection)
	assert.Len(t, out.AllowedSections, 5)
}

// Sección pedida fuera del menú del rol: el shell recibe la sección forzada.
func TestDashboardContext_FuerzaSeccion(t *testing.T) {
	f := newContextFixture()
	f.addBusiness("b1", strangerID, time.Now())
	f.addAssignment(memberID, "b1", entity.RoleSalesManager, time.Now())

	out, err := f.uc.DashboardContext(context.Background(), memberID, "products")
	require.NoError(t, err)
	assert.Equal(t, entity.RoleSalesManager, out.Role)
	assert.Equal(t, entity.SectionAnalytics, out.ActiveSection)
}

func TestDashboardContext_SinNegocio(t *testing.T) {
	f := newContextFixture()
	_ = f.prefRepo.SetSidebarCollapsed(context.Background(), strangerID, true)

	out, err := f.uc.DashboardContext(context.Background(), strangerID, "")
	require.NoError(t, err)
	assert.Nil(t, out.Business)
	assert.Empty(t, out.Role)
	assert.True(t, out.SidebarCollapsed)
}

// La preferencia apunta a un negocio donde ya no se tiene rol (el admin quitó
// al usuario): se limpia y se resuelve de nuevo sin error.
func TestDashboardContext_RolRevocadoResuelveDeNuevo(t *testing.T) {
	f := newContextFixture()
	f.addBusiness("ajeno", strangerID, time.Now().Add(-time.Hour))
	f.addBusiness("propio", memberID, time.Now())
	_ = f.prefRepo.SetCurrentBusiness(context.Background(), memberID, "ajeno")
	// Sin asignación en "ajeno": el rol fue revocado

	out, err := f.uc.DashboardContext(context.Background(), memberID, "")
	require.NoError(t, err)
	require.NotNil(t, out.Business)
	assert.Equal(t, "propio", out.Business.ID)
	assert.Equal(t, entity.RoleAdmin, out.Role)
}
