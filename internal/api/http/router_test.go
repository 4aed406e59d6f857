package http

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/spec-kit/skillcircuit/internal/api/http/handlers"
	"github.com/spec-kit/skillcircuit/internal/auth"
	"github.com/spec-kit/skillcircuit/internal/config"
	"github.com/spec-kit/skillcircuit/internal/events"
	"github.com/spec-kit/skillcircuit/internal/observability"
	"github.com/spec-kit/skillcircuit/internal/persistence"
	"github.com/spec-kit/skillcircuit/internal/service"
	"github.com/spec-kit/skillcircuit/internal/store"
)

func newTestApp(t *testing.T) *fiber.App {
	t.Helper()

	logger := zap.NewNop()
	kv, err := persistence.NewFileKV(config.StorageConfig{DataDir: t.TempDir()}, logger)
	require.NoError(t, err)

	platformStore := store.New(context.Background(), kv, logger)
	dispatcher := events.NewInMemoryDispatcher()
	metrics := observability.NewMetrics()

	tokenManager := auth.NewTokenManager("test-secret", 60)
	checkoutService := service.NewCheckoutService(platformStore, dispatcher, logger, config.CheckoutConfig{ProcessingDelayMillis: 0})

	app := fiber.New()
	RegisterMiddlewares(app, logger, metrics, 0)
	RegisterRoutes(app, RouteConfig{
		Health:            handlers.NewHealthHandler("test", "dev", kv, config.StorageBackendFile),
		Auth:              handlers.NewAuthHandler(platformStore, tokenManager, dispatcher),
		Courses:           handlers.NewCoursesHandler(platformStore, checkoutService),
		Leads:             handlers.NewLeadsHandler(platformStore, dispatcher),
		Dashboard:         handlers.NewDashboardHandler(platformStore),
		Admin:             handlers.NewAdminHandler(platformStore, dispatcher, metrics),
		SessionMiddleware: auth.NewSessionMiddleware(tokenManager, platformStore),
		Store:             platformStore,
	})
	return app
}

func doJSON(t *testing.T, app *fiber.App, method, path, token string, body any) *http.Response {
	t.Helper()

	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(payload)
	}

	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

func decodeBody(t *testing.T, resp *http.Response) map[string]any {
	t.Helper()
	defer resp.Body.Close()

	var out map[string]any
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	return out
}

func loginToken(t *testing.T, app *fiber.App, email, role string) string {
	t.Helper()

	resp := doJSON(t, app, http.MethodPost, "/auth/login", "", fiber.Map{"email": email, "role": role})
	require.Equal(t, http.StatusOK, resp.StatusCode)

	body := decodeBody(t, resp)
	data := body["data"].(map[string]any)
	authData := data["auth"].(map[string]any)
	return authData["token"].(string)
}

func TestHealthLive(t *testing.T) {
	app := newTestApp(t)

	resp := doJSON(t, app, http.MethodGet, "/health/live", "", nil)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

func TestCoursesListIsPublic(t *testing.T) {
	app := newTestApp(t)

	resp := doJSON(t, app, http.MethodGet, "/courses", "", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	body := decodeBody(t, resp)
	assert.Len(t, body["data"], 4)
}

func TestLeadSubmission(t *testing.T) {
	app := newTestApp(t)

	resp := doJSON(t, app, http.MethodPost, "/leads", "", fiber.Map{"name": "A", "email": "a@b.com", "message": "hi"})
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	body := decodeBody(t, resp)
	lead := body["data"].(map[string]any)
	assert.Equal(t, "new", lead["status"])
	assert.NotEmpty(t, lead["id"])
}

func TestLeadSubmissionRequiresFields(t *testing.T) {
	app := newTestApp(t)

	resp := doJSON(t, app, http.MethodPost, "/leads", "", fiber.Map{"name": "A"})
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestLoginRejectsUnknownRole(t *testing.T) {
	app := newTestApp(t)

	resp := doJSON(t, app, http.MethodPost, "/auth/login", "", fiber.Map{"email": "x@y.com", "role": "superuser"})
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestDashboardGate(t *testing.T) {
	app := newTestApp(t)

	// No token at all.
	resp := doJSON(t, app, http.MethodGet, "/dashboard", "", nil)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)

	// Student without enrollment is refused.
	token := loginToken(t, app, "x@y.com", "student")
	resp = doJSON(t, app, http.MethodGet, "/dashboard", token, nil)
	assert.Equal(t, http.StatusForbidden, resp.StatusCode)

	// A Nano enrollment still does not open the gate.
	resp = doJSON(t, app, http.MethodPost, "/auth/enroll", token, fiber.Map{"tier": "Nano"})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	resp = doJSON(t, app, http.MethodGet, "/dashboard", token, nil)
	assert.Equal(t, http.StatusForbidden, resp.StatusCode)

	// Sprint and above does.
	resp = doJSON(t, app, http.MethodPost, "/auth/enroll", token, fiber.Map{"tier": "Sprint"})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	resp = doJSON(t, app, http.MethodGet, "/dashboard", token, nil)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

func TestAdminGate(t *testing.T) {
	app := newTestApp(t)

	studentToken := loginToken(t, app, "x@y.com", "student")
	resp := doJSON(t, app, http.MethodGet, "/admin/overview", studentToken, nil)
	assert.Equal(t, http.StatusForbidden, resp.StatusCode)

	adminToken := loginToken(t, app, "admin@sc.io", "admin")
	resp = doJSON(t, app, http.MethodGet, "/admin/overview", adminToken, nil)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	// The admin login supersedes the student session entirely.
	resp = doJSON(t, app, http.MethodGet, "/auth/session", studentToken, nil)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestAdminFacultyCRUD(t *testing.T) {
	app := newTestApp(t)
	token := loginToken(t, app, "admin@sc.io", "admin")

	resp := doJSON(t, app, http.MethodPost, "/admin/faculty", token, fiber.Map{"name": "June Park", "email": "june@sc.io", "specialty": "Data Science"})
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	created := decodeBody(t, resp)["data"].(map[string]any)
	id := created["id"].(string)
	require.NotEmpty(t, id)

	resp = doJSON(t, app, http.MethodPut, "/admin/faculty/"+id, token, fiber.Map{"name": "June Park", "email": "june@sc.io", "specialty": "ML Systems"})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	updated := decodeBody(t, resp)["data"].(map[string]any)
	assert.Equal(t, "ML Systems", updated["specialty"])

	resp = doJSON(t, app, http.MethodPut, "/admin/faculty/missing", token, fiber.Map{"name": "Ghost", "email": "ghost@sc.io"})
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)

	resp = doJSON(t, app, http.MethodDelete, "/admin/faculty/"+id, token, nil)
	assert.Equal(t, http.StatusNoContent, resp.StatusCode)

	resp = doJSON(t, app, http.MethodDelete, "/admin/faculty/"+id, token, nil)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestAdminCourseCreate(t *testing.T) {
	app := newTestApp(t)
	token := loginToken(t, app, "admin@sc.io", "admin")

	resp := doJSON(t, app, http.MethodPost, "/admin/courses", token, fiber.Map{
		"title":       "Applied ML",
		"description": "Hands-on modeling.",
		"duration":    "20 Hours",
		"tier":        "Pathway",
		"price":       599,
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	resp = doJSON(t, app, http.MethodGet, "/courses", "", nil)
	body := decodeBody(t, resp)
	assert.Len(t, body["data"], 5)
}

func TestAdminExport(t *testing.T) {
	app := newTestApp(t)
	token := loginToken(t, app, "admin@sc.io", "admin")

	resp := doJSON(t, app, http.MethodGet, "/admin/export", token, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, resp.Header.Get("Content-Disposition"), "SkillCircuit_Platform_Export_")

	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	resp.Body.Close()

	doc := string(raw)
	assert.True(t, strings.HasPrefix(doc, "\uFEFF"))
	assert.Contains(t, doc, `"Category","Name/Title","Email/ID","Details/Tier","Joined Date/Progress"`)
	assert.Contains(t, doc, `"Course","Digital Fluency 101"`)
}

func TestCheckoutEnrollsSession(t *testing.T) {
	app := newTestApp(t)
	token := loginToken(t, app, "buyer@example.com", "student")

	// s1 is the seeded Sprint course.
	resp := doJSON(t, app, http.MethodPost, "/courses/s1/checkout", token, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	result := decodeBody(t, resp)["data"].(map[string]any)
	assert.Equal(t, "Sprint", result["tier"])

	resp = doJSON(t, app, http.MethodGet, "/dashboard", token, nil)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

func TestCheckoutUnknownCourse(t *testing.T) {
	app := newTestApp(t)
	token := loginToken(t, app, "buyer@example.com", "student")

	resp := doJSON(t, app, http.MethodPost, "/courses/nope/checkout", token, nil)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestLogoutInvalidatesToken(t *testing.T) {
	app := newTestApp(t)
	token := loginToken(t, app, "jamie@example.com", "student")

	resp := doJSON(t, app, http.MethodGet, "/auth/session", token, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	resp = doJSON(t, app, http.MethodPost, "/auth/logout", token, nil)
	require.Equal(t, http.StatusNoContent, resp.StatusCode)

	// The signature is still valid but no session backs it anymore.
	resp = doJSON(t, app, http.MethodGet, "/auth/session", token, nil)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}
