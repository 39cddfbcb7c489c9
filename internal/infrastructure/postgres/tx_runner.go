package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/skyllex94/orderexpress-api/internal/application/usecase"
	"github.com/skyllex94/orderexpress-api/internal/domain/repository"
)

// Ensure TxRunner implements usecase.InvitationTxRunner.
var _ usecase.InvitationTxRunner = (*TxRunner)(nil)

// TxRunner ejecuta callbacks dentro de una transacción PostgreSQL.
type TxRunner struct {
	pool *pgxpool.Pool
}

// NewTxRunner construye el runner con el pool.
func NewTxRunner(pool *pgxpool.Pool) *TxRunner {
	return &TxRunner{pool: pool}
}

// Run inicia una transacción, ejecuta fn con repos atados a la tx y hace
// Commit o Rollback. Es la atomicidad de la aceptación de invitación: usuario,
// asignación de rol y transición de la invitación viajan juntos.
func (r *TxRunner) Run(ctx context.Context, fn func(
	userRepo repository.UserRepository,
	roleRepo repository.RoleAssignmentRepository,
	invitationRepo repository.InvitationRepository,
) error) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	userRepo := NewUserRepository(tx)
	roleRepo := NewRoleAssignmentRepository(tx)
	invitationRepo := NewInvitationRepository(tx)

	if err := fn(userRepo, roleRepo, invitationRepo); err != nil {
		return err
	}
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}
