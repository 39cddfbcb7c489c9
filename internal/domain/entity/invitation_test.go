package entity_test

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"github.com/skyllex94/orderexpress-api/internal/domain/entity"
)

func TestValidInvitationToken(t *testing.T) {
	assert.True(t, entity.ValidInvitationToken(uuid.New().String()))
	assert.False(t, entity.ValidInvitationToken(""))
	assert.False(t, entity.ValidInvitationToken("no-es-un-uuid"))
	assert.False(t, entity.ValidInvitationToken("'; DROP TABLE invitations; --"))
}

func TestInvitation_IsExpired(t *testing.T) {
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

	// Sin expiración ⇒ nunca expira
	inv := &entity.Invitation{}
	assert.False(t, inv.IsExpired(now))

	past := now.Add(-time.Hour)
	inv.ExpiresAt = &past
	assert.True(t, inv.IsExpired(now))

	future := now.Add(time.Hour)
	inv.ExpiresAt = &future
	assert.False(t, inv.IsExpired(now))

	// La expiración se evalúa contra el instante dado, no contra el reloj real
	assert.True(t, inv.IsExpired(now.Add(2*time.Hour)))
}
