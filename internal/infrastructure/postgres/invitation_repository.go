package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/skyllex94/orderexpress-api/internal/domain"
	"github.com/skyllex94/orderexpress-api/internal/domain/entity"
	"github.com/skyllex94/orderexpress-api/internal/domain/repository"
)

var _ repository.InvitationRepository = (*InvitationRepo)(nil)

// InvitationRepo implementación del puerto InvitationRepository sobre PostgreSQL.
type InvitationRepo struct {
	db DB
}

// NewInvitationRepository construye el adaptador de persistencia para invitaciones.
func NewInvitationRepository(db DB) *InvitationRepo {
	return &InvitationRepo{db: db}
}

const invitationColumns = `id, business_id, email, role, token, status, expires_at, invited_by, accepted_at, created_at`

// Create persiste una nueva invitación.
func (r *InvitationRepo) Create(ctx context.Context, inv *entity.Invitation) error {
	query := `
		INSERT INTO invitations (` + invitationColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`
	_, err := r.db.Exec(ctx, query,
		inv.ID, inv.BusinessID, inv.Email, inv.Role, inv.Token, inv.Status,
		inv.ExpiresAt, inv.InvitedBy, inv.AcceptedAt, inv.CreatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert invitation: %w", err)
	}
	return nil
}

// GetByID obtiene una invitación por ID. (nil, nil) si no existe.
func (r *InvitationRepo) GetByID(ctx context.Context, id string) (*entity.Invitation, error) {
	return r.scanOne(r.db.QueryRow(ctx,
		`SELECT `+invitationColumns+` FROM invitations WHERE id = $1`, id), "get invitation by id")
}

// GetByToken obtiene una invitación por token. (nil, nil) si no existe.
func (r *InvitationRepo) GetByToken(ctx context.Context, token string) (*entity.Invitation, error) {
	return r.scanOne(r.db.QueryRow(ctx,
		`SELECT `+invitationColumns+` FROM invitations WHERE token = $1`, token), "get invitation by token")
}

func (r *InvitationRepo) scanOne(row pgx.Row, op string) (*entity.Invitation, error) {
	var inv entity.Invitation
	err := row.Scan(
		&inv.ID, &inv.BusinessID, &inv.Email, &inv.Role, &inv.Token, &inv.Status,
		&inv.ExpiresAt, &inv.InvitedBy, &inv.AcceptedAt, &inv.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return &inv, nil
}

// ListByBusiness lista las invitaciones del negocio, más recientes primero.
func (r *InvitationRepo) ListByBusiness(ctx context.Context, businessID string) ([]*entity.Invitation, error) {
	rows, err := r.db.Query(ctx,
		`SELECT `+invitationColumns+` FROM invitations WHERE business_id = $1 ORDER BY created_at DESC`,
		businessID)
	if err != nil {
		return nil, fmt.Errorf("list invitations: %w", err)
	}
	defer rows.Close()
	var list []*entity.Invitation
	for rows.Next() {
		var inv entity.Invitation
		if err := rows.Scan(&inv.ID, &inv.BusinessID, &inv.Email, &inv.Role, &inv.Token, &inv.Status,
			&inv.ExpiresAt, &inv.InvitedBy, &inv.AcceptedAt, &inv.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan invitation: %w", err)
		}
		list = append(list, &inv)
	}
	return list, rows.Err()
}

// MarkAccepted transiciona pending → accepted. El WHERE sobre status garantiza
// que un token ya consumido no vuelva a transicionar aunque dos aceptaciones
// lleguen a la vez: la segunda no afecta filas y devuelve ErrInvitationNotPending.
func (r *InvitationRepo) MarkAccepted(ctx context.Context, id string, acceptedAt time.Time) error {
	tag, err := r.db.Exec(ctx,
		`UPDATE invitations SET status = $2, accepted_at = $3 WHERE id = $1 AND status = $4`,
		id, entity.InvitationAccepted, acceptedAt, entity.InvitationPending,
	)
	if err != nil {
		return fmt.Errorf("mark invitation accepted: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrInvitationNotPending
	}
	return nil
}

// Delete elimina una invitación (cancelación).
func (r *InvitationRepo) Delete(ctx context.Context, id string) error {
	if _, err := r.db.Exec(ctx, `DELETE FROM invitations WHERE id = $1`, id); err != nil {
		return fmt.Errorf("delete invitation: %w", err)
	}
	return nil
}
