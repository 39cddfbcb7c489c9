package usecase_test

import (
	"context"
	"sort"
	"strings"
	"time"

	"github.com/skyllex94/orderexpress-api/internal/application/ports"
	"github.com/skyllex94/orderexpress-api/internal/application/usecase"
	"github.com/skyllex94/orderexpress-api/internal/domain"
	"github.com/skyllex94/orderexpress-api/internal/domain/entity"
	"github.com/skyllex94/orderexpress-api/internal/domain/repository"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fakes en memoria para los puertos de persistencia. Mismo contrato que los
// adaptadores de PostgreSQL: (nil, nil) cuando no hay fila.
// ──────────────────────────────────────────────────────────────────────────────

type fakeUserRepo struct {
	users map[string]*entity.User
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: make(map[string]*entity.User)}
}

func (r *fakeUserRepo) Create(_ context.Context, u *entity.User) error {
	for _, existing := range r.users {
		if strings.EqualFold(existing.Email, u.Email) {
			return domain.ErrEmailAlreadyExists
		}
	}
	cp := *u
	r.users[u.ID] = &cp
	return nil
}

func (r *fakeUserRepo) GetByID(_ context.Context, id string) (*entity.User, error) {
	if u, ok := r.users[id]; ok {
		cp := *u
		return &cp, nil
	}
	return nil, nil
}

func (r *fakeUserRepo) GetByEmail(_ context.Context, email string) (*entity.User, error) {
	for _, u := range r.users {
		if strings.EqualFold(u.Email, email) {
			cp := *u
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *fakeUserRepo) Update(_ context.Context, u *entity.User) error {
	cp := *u
	r.users[u.ID] = &cp
	return nil
}

func (r *fakeUserRepo) Delete(_ context.Context, id string) error {
	delete(r.users, id)
	return nil
}

type fakeBusinessRepo struct {
	businesses map[string]*entity.Business
}

func newFakeBusinessRepo() *fakeBusinessRepo {
	return &fakeBusinessRepo{businesses: make(map[string]*entity.Business)}
}

func (r *fakeBusinessRepo) Create(_ context.Context, b *entity.Business) error {
	cp := *b
	r.businesses[b.ID] = &cp
	return nil
}

func (r *fakeBusinessRepo) GetByID(_ context.Context, id string) (*entity.Business, error) {
	if b, ok := r.businesses[id]; ok {
		cp := *b
		return &cp, nil
	}
	return nil, nil
}

func (r *fakeBusinessRepo) ListCreatedBy(_ context.Context, userID string) ([]*entity.Business, error) {
	var list []*entity.Business
	for _, b := range r.businesses {
		if b.CreatedBy == userID {
			cp := *b
			list = append(list, &cp)
		}
	}
	sort.Slice(list, func(i, j int) bool { return list[i].CreatedAt.Before(list[j].CreatedAt) })
	return list, nil
}

func (r *fakeBusinessRepo) Update(_ context.Context, b *entity.Business) error {
	cp := *b
	r.businesses[b.ID] = &cp
	return nil
}

func (r *fakeBusinessRepo) Delete(_ context.Context, id string) error {
	delete(r.businesses, id)
	return nil
}

type fakeRoleRepo struct {
	assignments []*entity.RoleAssignment
}

func newFakeRoleRepo() *fakeRoleRepo { return &fakeRoleRepo{} }

func (r *fakeRoleRepo) Upsert(_ context.Context, a *entity.RoleAssignment) error {
	for i, existing := range r.assignments {
		if existing.UserID == a.UserID && existing.BusinessID == a.BusinessID {
			cp := *a
			r.assignments[i] = &cp
			return nil
		}
	}
	cp := *a
	r.assignments = append(r.assignments, &cp)
	return nil
}

func (r *fakeRoleRepo) GetByUserAndBusiness(_ context.Context, userID, businessID string) (*entity.RoleAssignment, error) {
	for _, a := range r.assignments {
		if a.UserID == userID && a.BusinessID == businessID {
			cp := *a
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *fakeRoleRepo) ListByUser(_ context.Context, userID string) ([]*entity.RoleAssignment, error) {
	var list []*entity.RoleAssignment
	for _, a := range r.assignments {
		if a.UserID == userID {
			cp := *a
			list = append(list, &cp)
		}
	}
	sort.Slice(list, func(i, j int) bool { return list[i].CreatedAt.Before(list[j].CreatedAt) })
	return list, nil
}

func (r *fakeRoleRepo) ListByBusiness(_ context.Context, businessID string) ([]*entity.RoleAssignment, error) {
	var list []*entity.RoleAssignment
	for _, a := range r.assignments {
		if a.BusinessID == businessID {
			cp := *a
			list = append(list, &cp)
		}
	}
	sort.Slice(list, func(i, j int) bool { return list[i].CreatedAt.Before(list[j].CreatedAt) })
	return list, nil
}

func (r *fakeRoleRepo) Delete(_ context.Context, userID, businessID string) error {
	for i, a := range r.assignments {
		if a.UserID == userID && a.BusinessID == businessID {
			r.assignments = append(r.assignments[:i], r.assignments[i+1:]...)
			return nil
		}
	}
	return nil
}

type fakeInvitationRepo struct {
	invitations map[string]*entity.Invitation
}

func newFakeInvitationRepo() *fakeInvitationRepo {
	return &fakeInvitationRepo{invitations: make(map[string]*entity.Invitation)}
}

func (r *fakeInvitationRepo) Create(_ context.Context, inv *entity.Invitation) error {
	cp := *inv
	r.invitations[inv.ID] = &cp
	return nil
}

func (r *fakeInvitationRepo) GetByID(_ context.Context, id string) (*entity.Invitation, error) {
	if inv, ok := r.invitations[id]; ok {
		cp := *inv
		return &cp, nil
	}
	return nil, nil
}

func (r *fakeInvitationRepo) GetByToken(_ context.Context, token string) (*entity.Invitation, error) {
	for _, inv := range r.invitations {
		if inv.Token == token {
			cp := *inv
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *fakeInvitationRepo) ListByBusiness(_ context.Context, businessID string) ([]*entity.Invitation, error) {
	var list []*entity.Invitation
	for _, inv := range r.invitations {
		if inv.BusinessID == businessID {
			cp := *inv
			list = append(list, &cp)
		}
	}
	sort.Slice(list, func(i, j int) bool { return list[i].CreatedAt.After(list[j].CreatedAt) })
	return list, nil
}

func (r *fakeInvitationRepo) MarkAccepted(_ context.Context, id string, acceptedAt time.Time) error {
	inv, ok := r.invitations[id]
	if !ok || inv.Status != entity.InvitationPending {
		return domain.ErrInvitationNotPending
	}
	inv.Status = entity.InvitationAccepted
	at := acceptedAt
	inv.AcceptedAt = &at
	return nil
}

func (r *fakeInvitationRepo) Delete(_ context.Context, id string) error {
	delete(r.invitations, id)
	return nil
}

type fakePrefRepo struct {
	prefs   map[string]*entity.UserPreference
	setErr  error // fuerza fallo en SetCurrentBusiness (store best-effort)
	setCnt  int
	clrCnt  int
}

func newFakePrefRepo() *fakePrefRepo {
	return &fakePrefRepo{prefs: make(map[string]*entity.UserPreference)}
}

func (r *fakePrefRepo) Get(_ context.Context, userID string) (*entity.UserPreference, error) {
	if p, ok := r.prefs[userID]; ok {
		cp := *p
		return &cp, nil
	}
	return nil, nil
}

func (r *fakePrefRepo) SetCurrentBusiness(_ context.Context, userID, businessID string) error {
	r.setCnt++
	if r.setErr != nil {
		return r.setErr
	}
	p, ok := r.prefs[userID]
	if !ok {
		p = &entity.UserPreference{UserID: userID}
		r.prefs[userID] = p
	}
	p.CurrentBusinessID = businessID
	p.UpdatedAt = time.Now()
	return nil
}

func (r *fakePrefRepo) ClearCurrentBusiness(_ context.Context, userID string) error {
	r.clrCnt++
	if p, ok := r.prefs[userID]; ok {
		p.CurrentBusinessID = ""
	}
	return nil
}

func (r *fakePrefRepo) SetSidebarCollapsed(_ context.Context, userID string, collapsed bool) error {
	p, ok := r.prefs[userID]
	if !ok {
		p = &entity.UserPreference{UserID: userID}
		r.prefs[userID] = p
	}
	p.SidebarCollapsed = collapsed
	return nil
}

// fakeMailer registra los envíos; failWith fuerza el fallo del proveedor.
type fakeMailer struct {
	sent     []ports.EmailMessage
	failWith error
}

func (m *fakeMailer) Send(_ context.Context, msg ports.EmailMessage) error {
	if m.failWith != nil {
		return m.failWith
	}
	m.sent = append(m.sent, msg)
	return nil
}

// fakeTxRunner pasa los fakes directamente al callback; no hay transacción real,
// pero el contrato (repos atados al mismo "scope") se respeta.
type fakeTxRunner struct {
	userRepo       repository.UserRepository
	roleRepo       repository.RoleAssignmentRepository
	invitationRepo repository.InvitationRepository
}

func (tx *fakeTxRunner) Run(ctx context.Context, fn func(
	userRepo repository.UserRepository,
	roleRepo repository.RoleAssignmentRepository,
	invitationRepo repository.InvitationRepository,
) error) error {
	return fn(tx.userRepo, tx.roleRepo, tx.invitationRepo)
}

// Verificación de contrato en compilación.
var (
	_ repository.UserRepository           = (*fakeUserRepo)(nil)
	_ repository.BusinessRepository       = (*fakeBusinessRepo)(nil)
	_ repository.RoleAssignmentRepository = (*fakeRoleRepo)(nil)
	_ repository.InvitationRepository     = (*fakeInvitationRepo)(nil)
	_ repository.PreferenceRepository     = (*fakePrefRepo)(nil)
	_ ports.EmailSender                   = (*fakeMailer)(nil)
	_ usecase.InvitationTxRunner          = (*fakeTxRunner)(nil)
)
