package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/skyllex94/orderexpress-api/internal/application/dto"
	"github.com/skyllex94/orderexpress-api/internal/application/ports"
	"github.com/skyllex94/orderexpress-api/internal/domain"
	"github.com/skyllex94/orderexpress-api/internal/domain/entity"
	"github.com/skyllex94/orderexpress-api/internal/domain/repository"
)

// InvitationTxRunner ejecuta la fase de escritura de la aceptación dentro de
// una transacción: crear/reusar usuario, upsert del rol y marcar la invitación.
type InvitationTxRunner interface {
	Run(ctx context.Context, fn func(
		userRepo repository.UserRepository,
		roleRepo repository.RoleAssignmentRepository,
		invitationRepo repository.InvitationRepository,
	) error) error
}

// MailerConfig lo que necesita el use case para componer el email de invitación.
type MailerConfig struct {
	From    string
	BaseURL string // URL pública del dashboard; el link es BaseURL + "/accept-invite?token=..."
}

// PasswordHasher evita acoplar el use case a bcrypt directamente (tests).
type PasswordHasher func(plain string) (string, error)

// InvitationUseCase ciclo de vida de invitaciones: crear + email, validar,
// aceptar (atómico) y cancelar.
type InvitationUseCase struct {
	invitationRepo repository.InvitationRepository
	businessRepo   repository.BusinessRepository
	userRepo       repository.UserRepository
	roles          *RoleService
	tx             InvitationTxRunner
	mailer         ports.EmailSender
	mailCfg        MailerConfig
	hash           PasswordHasher
	log            zerolog.Logger
	now            func() time.Time // inyectable para tests de expiración
}

// NewInvitationUseCase construye el caso de uso.
func NewInvitationUseCase(
	invitationRepo repository.InvitationRepository,
	businessRepo repository.BusinessRepository,
	userRepo repository.UserRepository,
	roles *RoleService,
	tx InvitationTxRunner,
	mailer ports.EmailSender,
	mailCfg MailerConfig,
	hash PasswordHasher,
	log zerolog.Logger,
) *InvitationUseCase {
	return &InvitationUseCase{
		invitationRepo: invitationRepo,
		businessRepo:   businessRepo,
		userRepo:       userRepo,
		roles:          roles,
		tx:             tx,
		mailer:         mailer,
		mailCfg:        mailCfg,
		hash:           hash,
		log:            log,
		now:            time.Now,
	}
}

// WithClock reemplaza el reloj (tests de expiración).
func (uc *InvitationUseCase) WithClock(now func() time.Time) *InvitationUseCase {
	uc.now = now
	return uc
}

// Create genera la invitación con token UUID, la persiste en pending y pide al
// proveedor el envío del email con el link de aceptación.
//
// Si el email falla DESPUÉS del insert, la fila queda pending y huérfana: no hay
// rollback ni retry automático. Se devuelve la invitación creada junto con el
// error del proveedor para que el caller lo muestre y ofrezca el reenvío manual.
// Solo un admin del negocio puede invitar.
func (uc *InvitationUseCase) Create(ctx context.Context, inviterID, businessID string, in dto.CreateInvitationRequest) (*dto.InvitationResponse, error) {
	role, err := uc.roles.ResolveRole(ctx, inviterID, businessID)
	if err != nil {
		return nil, err
	}
	if role != entity.RoleAdmin {
		return nil, domain.ErrForbidden
	}
	if !entity.ValidRole(in.Role) {
		return nil, domain.ErrInvalidInput
	}
	business, err := uc.businessRepo.GetByID(ctx, businessID)
	if err != nil {
		return nil, err
	}
	if business == nil {
		return nil, domain.ErrNotFound
	}

	var expiresAt *time.Time
	if in.ExpiresInDays > 0 {
		t := uc.now().AddDate(0, 0, in.ExpiresInDays)
		expiresAt = &t
	}
	inv := &entity.Invitation{
		ID:         uuid.New().String(),
		BusinessID: businessID,
		Email:      strings.ToLower(strings.TrimSpace(in.Email)),
		Role:       in.Role,
		Token:      uuid.New().String(),
		Status:     entity.InvitationPending,
		ExpiresAt:  expiresAt,
		InvitedBy:  inviterID,
		CreatedAt:  uc.now(),
	}
	if err := uc.invitationRepo.Create(ctx, inv); err != nil {
		return nil, err
	}

	if err := uc.sendInviteEmail(ctx, business, inv); err != nil {
		// La fila ya está insertada y se queda: el cliente reintenta con Resend.
		uc.log.Warn().
			Str("invitation_id", inv.ID).
			Str("business_id", businessID).
			Err(err).
			Msg("invitación creada pero el envío de email falló")
		return toInvitationResponse(inv), fmt.Errorf("enviar email de invitación: %w", err)
	}

	uc.log.Info().
		Str("invitation_id", inv.ID).
		Str("business_id", businessID).
		Str("role", inv.Role).
		Msg("invitación enviada")
	return toInvitationResponse(inv), nil
}

// Resend reenvía el email de una invitación pending (recuperación manual del
// caso "fila insertada, email fallido").
func (uc *InvitationUseCase) Resend(ctx context.Context, inviterID, businessID, invitationID string) error {
	role, err := uc.roles.ResolveRole(ctx, inviterID, businessID)
	if err != nil {
		return err
	}
	if role != entity.RoleAdmin {
		return domain.ErrForbidden
	}
	inv, err := uc.invitationRepo.GetByID(ctx, invitationID)
	if err != nil {
		return err
	}
	if inv == nil || inv.BusinessID != businessID {
		return domain.ErrInvitationNotFound
	}
	if inv.Status != entity.InvitationPending {
		return domain.ErrInvitationNotPending
	}
	business, err := uc.businessRepo.GetByID(ctx, businessID)
	if err != nil {
		return err
	}
	if business == nil {
		return domain.ErrNotFound
	}
	return uc.sendInviteEmail(ctx, business, inv)
}

func (uc *InvitationUseCase) sendInviteEmail(ctx context.Context, business *entity.Business, inv *entity.Invitation) error {
	link := strings.TrimRight(uc.mailCfg.BaseURL, "/") + "/accept-invite?token=" + inv.Token
	msg := ports.EmailMessage{
		To:      inv.Email,
		Subject: fmt.Sprintf("Te invitaron a unirte a %s en OrderExpress", business.Name),
		Text: fmt.Sprintf(
			"Te invitaron a unirte a %s con el rol %s.\n\nAcepta la invitación aquí: %s\n",
			business.Name, inv.Role, link,
		),
		HTML: fmt.Sprintf(
			`<p>Te invitaron a unirte a <strong>%s</strong> con el rol <strong>%s</strong>.</p>`+
				`<p><a href="%s">Aceptar invitación</a></p>`,
			business.Name, inv.Role, link,
		),
	}
	return uc.mailer.Send(ctx, msg)
}

// Validate es la consulta de la pantalla pública de aceptación: comprueba el
// token sin consumirlo y devuelve a qué negocio y rol invita.
func (uc *InvitationUseCase) Validate(ctx context.Context, token string) (*dto.ValidateInvitationResponse, error) {
	inv, err := uc.lookupPending(ctx, token)
	if err != nil {
		return nil, err
	}
	business, err := uc.businessRepo.GetByID(ctx, inv.BusinessID)
	if err != nil {
		return nil, err
	}
	name := ""
	if business != nil {
		name = business.Name
	}
	return &dto.ValidateInvitationResponse{
		BusinessName: name,
		Email:        inv.Email,
		Role:         inv.Role,
	}, nil
}

// Accept canjea el token. Atómico desde el punto de vista del caller:
//
//	(a) lookup por token (con validación previa de forma UUID)
//	(b) rechazos clasificados sin tocar la fila: not found / not pending /
//	    expirada / email distinto
//	(c) aprovisionar la cuenta o reusar la existente
//	(d) upsert de la asignación de rol
//	(e) marcar la invitación accepted con timestamp
//
// (c)-(e) corren dentro de una transacción. Re-aceptar un token ya consumido
// cae en (b) con ErrInvitationNotPending, nunca en un éxito silencioso.
func (uc *InvitationUseCase) Accept(ctx context.Context, in dto.AcceptInvitationRequest) (*dto.AcceptInvitationResponse, error) {
	inv, err := uc.lookupPending(ctx, in.Token)
	if err != nil {
		return nil, err
	}
	email := strings.ToLower(strings.TrimSpace(in.Email))
	if email != inv.Email {
		return nil, domain.ErrInvitationEmailMismatch
	}

	out := &dto.AcceptInvitationResponse{BusinessID: inv.BusinessID, Role: inv.Role}
	err = uc.tx.Run(ctx, func(
		userRepo repository.UserRepository,
		roleRepo repository.RoleAssignmentRepository,
		invitationRepo repository.InvitationRepository,
	) error {
		user, err := userRepo.GetByEmail(ctx, email)
		if err != nil {
			return err
		}
		if user == nil {
			hash, err := uc.hash(in.Password)
			if err != nil {
				return err
			}
			now := uc.now()
			user = &entity.User{
				ID:           uuid.New().String(),
				Email:        email,
				PasswordHash: hash,
				FirstName:    in.FirstName,
				LastName:     in.LastName,
				Status:       "active",
				CreatedAt:    now,
				UpdatedAt:    now,
			}
			if err := userRepo.Create(ctx, user); err != nil {
				return err
			}
		} else {
			out.UserExisted = true
		}
		out.UserID = user.ID

		now := uc.now()
		assignment := &entity.RoleAssignment{
			ID:         uuid.New().String(),
			UserID:     user.ID,
			BusinessID: inv.BusinessID,
			Role:       inv.Role,
			CreatedAt:  now,
			UpdatedAt:  now,
		}
		if err := roleRepo.Upsert(ctx, assignment); err != nil {
			return err
		}
		return invitationRepo.MarkAccepted(ctx, inv.ID, now)
	})
	if err != nil {
		return nil, err
	}

	uc.log.Info().
		Str("invitation_id", inv.ID).
		Str("user_id", out.UserID).
		Str("business_id", inv.BusinessID).
		Bool("user_existed", out.UserExisted).
		Msg("invitación aceptada")
	return out, nil
}

// Cancel elimina una invitación pending (hard delete, sin estado intermedio).
func (uc *InvitationUseCase) Cancel(ctx context.Context, requesterID, businessID, invitationID string) error {
	role, err := uc.roles.ResolveRole(ctx, requesterID, businessID)
	if err != nil {
		return err
	}
	if role != entity.RoleAdmin {
		return domain.ErrForbidden
	}
	inv, err := uc.invitationRepo.GetByID(ctx, invitationID)
	if err != nil {
		return err
	}
	if inv == nil || inv.BusinessID != businessID {
		return domain.ErrInvitationNotFound
	}
	if inv.Status != entity.InvitationPending {
		return domain.ErrInvitationNotPending
	}
	return uc.invitationRepo.Delete(ctx, invitationID)
}

// ListByBusiness lista las invitaciones del negocio (tokens redactados).
func (uc *InvitationUseCase) ListByBusiness(ctx context.Context, requesterID, businessID string) (*dto.InvitationListResponse, error) {
	role, err := uc.roles.ResolveRole(ctx, requesterID, businessID)
	if err != nil {
		return nil, err
	}
	if role != entity.RoleAdmin {
		return nil, domain.ErrForbidden
	}
	list, err := uc.invitationRepo.ListByBusiness(ctx, businessID)
	if err != nil {
		return nil, err
	}
	items := make([]dto.InvitationResponse, 0, len(list))
	for _, inv := range list {
		items = append(items, *toInvitationResponse(inv))
	}
	return &dto.InvitationListResponse{Items: items}, nil
}

// lookupPending valida forma del token, busca la invitación y aplica los
// rechazos clasificados. No modifica la fila bajo ningún fallo.
func (uc *InvitationUseCase) lookupPending(ctx context.Context, token string) (*entity.Invitation, error) {
	if !entity.ValidInvitationToken(token) {
		return nil, domain.ErrInvalidInvitationToken
	}
	inv, err := uc.invitationRepo.GetByToken(ctx, token)
	if err != nil {
		return nil, err
	}
	if inv == nil {
		return nil, domain.ErrInvitationNotFound
	}
	if inv.Status != entity.InvitationPending {
		return nil, domain.ErrInvitationNotPending
	}
	if inv.IsExpired(uc.now()) {
		return nil, domain.ErrInvitationExpired
	}
	return inv, nil
}

// toInvitationResponse mapea la entidad a su DTO. El token nunca viaja aquí:
// solo va dentro del link del email.
func toInvitationResponse(inv *entity.Invitation) *dto.InvitationResponse {
	if inv == nil {
		return nil
	}
	return &dto.InvitationResponse{
		ID:         inv.ID,
		BusinessID: inv.BusinessID,
		Email:      inv.Email,
		Role:       inv.Role,
		Status:     inv.Status,
		ExpiresAt:  inv.ExpiresAt,
		InvitedBy:  inv.InvitedBy,
		AcceptedAt: inv.AcceptedAt,
		CreatedAt:  inv.CreatedAt,
	}
}
