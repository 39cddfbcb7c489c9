package usecase_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/skyllex94/orderexpress-api/internal/application/dto"
	"github.com/skyllex94/orderexpress-api/internal/application/usecase"
	"github.com/skyllex94/orderexpress-api/internal/domain"
	"github.com/skyllex94/orderexpress-api/internal/domain/entity"
)

type invitationFixture struct {
	uc             *usecase.InvitationUseCase
	invitationRepo *fakeInvitationRepo
	userRepo       *fakeUserRepo
	roleRepo       *fakeRoleRepo
	mailer         *fakeMailer
}

func newInvitationFixture() *invitationFixture {
	invitationRepo := newFakeInvitationRepo()
	businessRepo := newFakeBusinessRepo()
	userRepo := newFakeUserRepo()
	roleRepo := newFakeRoleRepo()
	mailer := &fakeMailer{}

	_ = businessRepo.Create(context.Background(), &entity.Business{
		ID: bizID, Name: "La Cantina", CreatedBy: ownerID, CreatedAt: time.Now(),
	})

	roles := usecase.NewRoleService(businessRepo, roleRepo)
	uc := usecase.NewInvitationUseCase(
		invitationRepo,
		businessRepo,
		userRepo,
		roles,
		&fakeTxRunner{userRepo: userRepo, roleRepo: roleRepo, invitationRepo: invitationRepo},
		mailer,
		usecase.MailerConfig{From: "no-reply@orderexpress.app", BaseURL: "https://app.orderexpress.test/"},
		func(plain string) (string, error) { return "hash:" + plain, nil },
		zerolog.Nop(),
	)
	return &invitationFixture{
		uc:             uc,
		invitationRepo: invitationRepo,
		userRepo:       userRepo,
		roleRepo:       roleRepo,
		mailer:         mailer,
	}
}

// invite crea una invitación pending desde el dueño y devuelve su token.
func (f *invitationFixture) invite(t *testing.T, email, role string) (id, token string) {
	t.Helper()
	out, err := f.uc.Create(context.Background(), ownerID, bizID, dto.CreateInvitationRequest{
		Email: email, Role: role,
	})
	require.NoError(t, err)
	inv, err := f.invitationRepo.GetByID(context.Background(), out.ID)
	require.NoError(t, err)
	require.NotNil(t, inv)
	return inv.ID, inv.Token
}

func TestCreateInvitation_SoloAdmin(t *testing.T) {
	f := newInvitationFixture()
	_ = f.roleRepo.Upsert(context.Background(), &entity.RoleAssignment{
		ID: "a1", UserID: memberID, BusinessID: bizID, Role: entity.RoleOrderingManager,
	})

	_, err := f.uc.Create(context.Background(), memberID, bizID, dto.CreateInvitationRequest{
		Email: "nuevo@cantina.mx", Role: entity.RoleSalesManager,
	})
	assert.ErrorIs(t, err, domain.ErrForbidden)

	_, err = f.uc.Create(context.Background(), strangerID, bizID, dto.CreateInvitationRequest{
		Email: "nuevo@cantina.mx", Role: entity.RoleSalesManager,
	})
	assert.ErrorIs(t, err, domain.ErrNoRole)
}

func TestCreateInvitation_RolInvalido(t *testing.T) {
	f := newInvitationFixture()
	_, err := f.uc.Create(context.Background(), ownerID, bizID, dto.CreateInvitationRequest{
		Email: "nuevo@cantina.mx", Role: "superuser",
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

// El email se normaliza a minúsculas al persistir; el envío incluye el link con
// el token.
func TestCreateInvitation_NormalizaEmailYEnvia(t *testing.T) {
	f := newInvitationFixture()
	out, err := f.uc.Create(context.Background(), ownerID, bizID, dto.CreateInvitationRequest{
		Email: "  Nuevo@Cantina.MX ", Role: entity.RoleInventoryManager, ExpiresInDays: 7,
	})
	require.NoError(t, err)
	assert.Equal(t, "nuevo@cantina.mx", out.Email)
	assert.Equal(t, entity.InvitationPending, out.Status)
	require.NotNil(t, out.ExpiresAt)

	require.Len(t, f.mailer.sent, 1)
	msg := f.mailer.sent[0]
	assert.Equal(t, "nuevo@cantina.mx", msg.To)
	inv, _ := f.invitationRepo.GetByID(context.Background(), out.ID)
	assert.Contains(t, msg.Text, "/accept-invite?token="+inv.Token)
}

// Fallo del proveedor de email: la fila ya insertada se conserva en pending y
// el caller recibe la invitación JUNTO con el error, para ofrecer el reenvío.
func TestCreateInvitation_EmailFallaFilaQueda(t *testing.T) {
	f := newInvitationFixture()
	f.mailer.failWith = errors.New("proveedor caído")

	out, err := f.uc.Create(context.Background(), ownerID, bizID, dto.CreateInvitationRequest{
		Email: "nuevo@cantina.mx", Role: entity.RoleSalesManager,
	})
	require.Error(t, err)
	require.NotNil(t, out, "la invitación creada debe devolverse aunque el email falle")

	inv, _ := f.invitationRepo.GetByID(context.Background(), out.ID)
	require.NotNil(t, inv)
	assert.Equal(t, entity.InvitationPending, inv.Status)

	// Recuperación manual: reenviar cuando el proveedor vuelve
	f.mailer.failWith = nil
	require.NoError(t, f.uc.Resend(context.Background(), ownerID, bizID, out.ID))
	assert.Len(t, f.mailer.sent, 1)
}

func TestResendInvitation_Rechazos(t *testing.T) {
	f := newInvitationFixture()
	id, token := f.invite(t, "nuevo@cantina.mx", entity.RoleSalesManager)

	err := f.uc.Resend(context.Background(), ownerID, bizID, "00000000-0000-0000-0000-0000000000ff")
	assert.ErrorIs(t, err, domain.ErrInvitationNotFound)

	_, err = f.uc.Accept(context.Background(), dto.AcceptInvitationRequest{
		Token: token, Email: "nuevo@cantina.mx", Password: "Clave!Segura1",
	})
	require.NoError(t, err)

	// Ya aceptada: no se reenvía
	err = f.uc.Resend(context.Background(), ownerID, bizID, id)
	assert.ErrorIs(t, err, domain.ErrInvitationNotPending)
}

func TestValidateInvitation_Taxonomia(t *testing.T) {
	f := newInvitationFixture()
	_, token := f.invite(t, "nuevo@cantina.mx", entity.RoleSalesManager)

	// Token bien formado y pending
	out, err := f.uc.Validate(context.Background(), token)
	require.NoError(t, err)
	assert.Equal(t, "La Cantina", out.BusinessName)
	assert.Equal(t, "nuevo@cantina.mx", out.Email)
	assert.Equal(t, entity.RoleSalesManager, out.Role)

	// Forma inválida: se corta antes de tocar el repositorio
	_, err = f.uc.Validate(context.Background(), "no-es-un-uuid")
	assert.ErrorIs(t, err, domain.ErrInvalidInvitationToken)

	// UUID válido pero inexistente
	_, err = f.uc.Validate(context.Background(), "11111111-2222-3333-4444-555555555555")
	assert.ErrorIs(t, err, domain.ErrInvitationNotFound)
}

func TestValidateInvitation_Expirada(t *testing.T) {
	f := newInvitationFixture()
	out, err := f.uc.Create(context.Background(), ownerID, bizID, dto.CreateInvitationRequest{
		Email: "nuevo@cantina.mx", Role: entity.RoleSalesManager, ExpiresInDays: 7,
	})
	require.NoError(t, err)
	inv, _ := f.invitationRepo.GetByID(context.Background(), out.ID)

	// Adelantar el reloj más allá de la expiración
	f.uc.WithClock(func() time.Time { return time.Now().AddDate(0, 0, 8) })

	_, err = f.uc.Validate(context.Background(), inv.Token)
	assert.ErrorIs(t, err, domain.ErrInvitationExpired)

	_, err = f.uc.Accept(context.Background(), dto.AcceptInvitationRequest{
		Token: inv.Token, Email: "nuevo@cantina.mx", Password: "Clave!Segura1",
	})
	assert.ErrorIs(t, err, domain.ErrInvitationExpired)
}

// Aceptación con cuenta nueva: aprovisiona el usuario, asigna el rol y consume
// la invitación, todo en la misma transacción.
func TestAcceptInvitation_UsuarioNuevo(t *testing.T) {
	f := newInvitationFixture()
	id, token := f.invite(t, "nuevo@cantina.mx", entity.RoleInventoryManager)

	out, err := f.uc.Accept(context.Background(), dto.AcceptInvitationRequest{
		Token:     token,
		Email:     "Nuevo@Cantina.mx", // casing distinto, debe coincidir igual
		Password:  "Clave!Segura1",
		FirstName: "Nuevo",
	})
	require.NoError(t, err)
	assert.False(t, out.UserExisted)
	assert.Equal(t, bizID, out.BusinessID)
	assert.Equal(t, entity.RoleInventoryManager, out.Role)

	user, _ := f.userRepo.GetByEmail(context.Background(), "nuevo@cantina.mx")
	require.NotNil(t, user)
	assert.Equal(t, out.UserID, user.ID)
	assert.Equal(t, "hash:Clave!Segura1", user.PasswordHash)

	assignment, _ := f.roleRepo.GetByUserAndBusiness(context.Background(), user.ID, bizID)
	require.NotNil(t, assignment)
	assert.Equal(t, entity.RoleInventoryManager, assignment.Role)

	inv, _ := f.invitationRepo.GetByID(context.Background(), id)
	assert.Equal(t, entity.InvitationAccepted, inv.Status)
	require.NotNil(t, inv.AcceptedAt)
}

// Cuenta ya existente: no se crea otra, solo se añade el rol.
func TestAcceptInvitation_UsuarioExistente(t *testing.T) {
	f := newInvitationFixture()
	_ = f.userRepo.Create(context.Background(), &entity.User{
		ID: memberID, Email: "nuevo@cantina.mx", PasswordHash: "hash:previo", Status: "active",
	})
	_, token := f.invite(t, "nuevo@cantina.mx", entity.RoleSalesManager)

	out, err := f.uc.Accept(context.Background(), dto.AcceptInvitationRequest{
		Token: token, Email: "nuevo@cantina.mx", Password: "ignorada",
	})
	require.NoError(t, err)
	assert.True(t, out.UserExisted)
	assert.Equal(t, memberID, out.UserID)

	// La contraseña existente no se toca
	user, _ := f.userRepo.GetByID(context.Background(), memberID)
	assert.Equal(t, "hash:previo", user.PasswordHash)
}

func TestAcceptInvitation_EmailDistinto(t *testing.T) {
	f := newInvitationFixture()
	_, token := f.invite(t, "nuevo@cantina.mx", entity.RoleSalesManager)

	_, err := f.uc.Accept(context.Background(), dto.AcceptInvitationRequest{
		Token: token, Email: "otro@cantina.mx", Password: "Clave!Segura1",
	})
	assert.ErrorIs(t, err, domain.ErrInvitationEmailMismatch)
}

// Un token consumido no se puede canjear dos veces.
func TestAcceptInvitation_Idempotencia(t *testing.T) {
	f := newInvitationFixture()
	_, token := f.invite(t, "nuevo@cantina.mx", entity.RoleSalesManager)

	req := dto.AcceptInvitationRequest{
		Token: token, Email: "nuevo@cantina.mx", Password: "Clave!Segura1",
	}
	_, err := f.uc.Accept(context.Background(), req)
	require.NoError(t, err)

	_, err = f.uc.Accept(context.Background(), req)
	assert.ErrorIs(t, err, domain.ErrInvitationNotPending)
}

func TestCancelInvitation(t *testing.T) {
	f := newInvitationFixture()
	id, token := f.invite(t, "nuevo@cantina.mx", entity.RoleSalesManager)

	// Solo el admin cancela
	err := f.uc.Cancel(context.Background(), strangerID, bizID, id)
	assert.ErrorIs(t, err, domain.ErrNoRole)

	require.NoError(t, f.uc.Cancel(context.Background(), ownerID, bizID, id))

	// La cancelación es un hard delete: el token deja de existir
	_, err = f.uc.Validate(context.Background(), token)
	assert.ErrorIs(t, err, domain.ErrInvitationNotFound)

	// Cancelar de nuevo ⇒ not found
	err = f.uc.Cancel(context.Background(), ownerID, bizID, id)
	assert.ErrorIs(t, err, domain.ErrInvitationNotFound)
}

func TestListInvitations_SoloAdmin(t *testing.T) {
	f := newInvitationFixture()
	f.invite(t, "uno@cantina.mx", entity.RoleSalesManager)
	f.invite(t, "dos@cantina.mx", entity.RoleOrderingManager)

	out, err := f.uc.ListByBusiness(context.Background(), ownerID, bizID)
	require.NoError(t, err)
	assert.Len(t, out.Items, 2)

	_ = f.roleRepo.Upsert(context.Background(), &entity.RoleAssignment{
		ID: "a1", UserID: memberID, BusinessID: bizID, Role: entity.RoleSalesManager,
	})
	_, err = f.uc.ListByBusiness(context.Background(), memberID, bizID)
	assert.ErrorIs(t, err, domain.ErrForbidden)
}
