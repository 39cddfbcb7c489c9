package http_test

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/skyllex94/orderexpress-api/internal/domain"
	"github.com/skyllex94/orderexpress-api/internal/domain/entity"
	apphttp "github.com/skyllex94/orderexpress-api/internal/interfaces/http"
	"github.com/skyllex94/orderexpress-api/pkg/jwt"
)

const testSecret = "secreto-de-pruebas"

// stubRoles implementa la resolución de rol con una función fija.
type stubRoles struct {
	resolve func(ctx context.Context, userID, businessID string) (string, error)
}

func (s *stubRoles) ResolveRole(ctx context.Context, userID, businessID string) (string, error) {
	return s.resolve(ctx, userID, businessID)
}

func fixedRole(role string) *stubRoles {
	return &stubRoles{resolve: func(context.Context, string, string) (string, error) {
		return role, nil
	}}
}

func failingRoles(err error) *stubRoles {
	return &stubRoles{resolve: func(context.Context, string, string) (string, error) {
		return "", err
	}}
}

// newAuthApp monta una ruta protegida que devuelve el user_id y email extraídos.
func newAuthApp() *fiber.App {
	app := fiber.New()
	app.Get("/protegida", apphttp.AuthMiddleware(testSecret), func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"user_id": apphttp.GetUserID(c),
			"email":   apphttp.GetEmail(c),
		})
	})
	return app
}

// newSectionApp monta una ruta con scope de negocio gateada por sección.
func newSectionApp(section string, roles *stubRoles) *fiber.App {
	app := fiber.New()
	app.Get("/api/businesses/:businessID/recurso",
		func(c *fiber.Ctx) error {
			// Simula AuthMiddleware ya ejecutado
			c.Locals(apphttp.LocalUserID, "00000000-0000-0000-0000-000000000001")
			return c.Next()
		},
		apphttp.RequireSection(section, roles),
		func(c *fiber.Ctx) error {
			return c.JSON(fiber.Map{"role": apphttp.GetRole(c)})
		},
	)
	return app
}

func decodeBody(t *testing.T, resp *http.Response) map[string]any {
	t.Helper()
	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	var body map[string]any
	require.NoError(t, json.Unmarshal(raw, &body))
	return body
}

// ──────────────────────────────────────────────────────────────────────────────
// AuthMiddleware
// ──────────────────────────────────────────────────────────────────────────────

func TestAuthMiddleware_SinHeader(t *testing.T) {
	app := newAuthApp()
	req := httptest.NewRequest(http.MethodGet, "/protegida", nil)

	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
	assert.Equal(t, "MISSING_TOKEN", decodeBody(t, resp)["code"])
}

func TestAuthMiddleware_FormatoInvalido(t *testing.T) {
	app := newAuthApp()
	req := httptest.NewRequest(http.MethodGet, "/protegida", nil)
	req.Header.Set("Authorization", "Basic abc123")

	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
	assert.Equal(t, "INVALID_TOKEN", decodeBody(t, resp)["code"])
}

func TestAuthMiddleware_FirmaIncorrecta(t *testing.T) {
	token, err := jwt.Generate("otro-secreto", "u1", "u1@test.mx", "orderexpress", 60)
	require.NoError(t, err)

	app := newAuthApp()
	req := httptest.NewRequest(http.MethodGet, "/protegida", nil)
	req.Header.Set("Authorization", "Bearer "+token)

	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
	assert.Equal(t, "INVALID_TOKEN", decodeBody(t, resp)["code"])
}

func TestAuthMiddleware_TokenExpirado(t *testing.T) {
	token, err := jwt.Generate(testSecret, "u1", "u1@test.mx", "orderexpress", -5)
	require.NoError(t, err)

	app := newAuthApp()
	req := httptest.NewRequest(http.MethodGet, "/protegida", nil)
	req.Header.Set("Authorization", "Bearer "+token)

	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
}

func TestAuthMiddleware_TokenValido(t *testing.T) {
	token, err := jwt.Generate(testSecret, "u1", "u1@test.mx", "orderexpress", 60)
	require.NoError(t, err)

	app := newAuthApp()
	req := httptest.NewRequest(http.MethodGet, "/protegida", nil)
	req.Header.Set("Authorization", "Bearer "+token)

	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	body := decodeBody(t, resp)
	assert.Equal(t, "u1", body["user_id"])
	assert.Equal(t, "u1@test.mx", body["email"])
}

// ──────────────────────────────────────────────────────────────────────────────
// RequireSection
// ──────────────────────────────────────────────────────────────────────────────

func TestRequireSection_SeccionPermitida(t *testing.T) {
	app := newSectionApp(entity.SectionProducts, fixedRole(entity.RoleInventoryManager))
	req := httptest.NewRequest(http.MethodGet, "/api/businesses/b1/recurso", nil)

	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.Equal(t, entity.RoleInventoryManager, decodeBody(t, resp)["role"])
}

func TestRequireSection_SeccionFueraDelMenu(t *testing.T) {
	app := newSectionApp(entity.SectionAnalytics, fixedRole(entity.RoleInventoryManager))
	req := httptest.NewRequest(http.MethodGet, "/api/businesses/b1/recurso", nil)

	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusForbidden, resp.StatusCode)
	assert.Equal(t, "SECTION_FORBIDDEN", decodeBody(t, resp)["code"])
}

// settings pasa para cualquier rol resoluble, aunque no esté en su menú.
func TestRequireSection_SettingsSiemprePasa(t *testing.T) {
	for _, role := range []string{
		entity.RoleAdmin,
		entity.RoleInventoryManager,
		entity.RoleOrderingManager,
		entity.RoleSalesManager,
	} {
		app := newSectionApp(entity.SectionSettings, fixedRole(role))
		req := httptest.NewRequest(http.MethodGet, "/api/businesses/b1/recurso", nil)

		resp, err := app.Test(req, -1)
		require.NoError(t, err)
		assert.Equal(t, fiber.StatusOK, resp.StatusCode, "rol %s", role)
	}
}

func TestRequireSection_SinRol(t *testing.T) {
	app := newSectionApp(entity.SectionProducts, failingRoles(domain.ErrNoRole))
	req := httptest.NewRequest(http.MethodGet, "/api/businesses/b1/recurso", nil)

	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusForbidden, resp.StatusCode)
	assert.Equal(t, "NO_ROLE", decodeBody(t, resp)["code"])
}

func TestRequireSection_NegocioInexistente(t *testing.T) {
	app := newSectionApp(entity.SectionProducts, failingRoles(domain.ErrNotFound))
	req := httptest.NewRequest(http.MethodGet, "/api/businesses/b1/recurso", nil)

	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)
	assert.Equal(t, "NOT_FOUND", decodeBody(t, resp)["code"])
}

// Fallo de infraestructura al resolver el rol: nunca degradar a un permiso.
func TestRequireSection_FalloDeInfraestructura(t *testing.T) {
	app := newSectionApp(entity.SectionProducts, failingRoles(errors.New("db caída")))
	req := httptest.NewRequest(http.MethodGet, "/api/businesses/b1/recurso", nil)

	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusServiceUnavailable, resp.StatusCode)
	assert.Equal(t, "ROLE_CHECK_FAILED", decodeBody(t, resp)["code"])
}

func TestRequireSection_SinUserID(t *testing.T) {
	app := fiber.New()
	app.Get("/api/businesses/:businessID/recurso",
		apphttp.RequireSection(entity.SectionProducts, fixedRole(entity.RoleAdmin)),
		func(c *fiber.Ctx) error { return c.SendStatus(fiber.StatusOK) },
	)
	req := httptest.NewRequest(http.MethodGet, "/api/businesses/b1/recurso", nil)

	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
}
