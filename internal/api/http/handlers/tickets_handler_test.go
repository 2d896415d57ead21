package handlers

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/spec-kit/ticket-dashboard/internal/store"
	apperrors "github.com/spec-kit/ticket-dashboard/pkg/util"
)

func newTestApp(t *testing.T) (*fiber.App, *store.TicketStore) {
	t.Helper()

	ticketStore := store.NewTicketStore(store.TicketStoreDeps{Logger: zap.NewNop()})
	h := NewTicketsHandler(ticketStore)

	app := fiber.New()
	app.Use(func(c *fiber.Ctx) (err error) {
		defer func() {
			if err != nil {
				domainErr := apperrors.ToDomainError(err)
				c.Status(domainErr.HTTPStatus)
				_ = c.JSON(fiber.Map{"error": fiber.Map{"code": domainErr.Code, "message": domainErr.Message}})
				err = nil
			}
		}()
		return c.Next()
	})
	app.Get("/tickets", h.List)
	app.Post("/tickets", h.Create)
	app.Put("/tickets/filters", h.UpdateFilters)
	app.Put("/tickets/:id", h.Update)
	app.Delete("/tickets/:id", h.Delete)
	app.Post("/tickets/:id/assign", h.Assign)

	return app, ticketStore
}

func jsonRequest(method, target string, payload any) *http.Request {
	var body io.Reader
	if payload != nil {
		raw, _ := json.Marshal(payload)
		body = bytes.NewReader(raw)
	}
	req := httptest.NewRequest(method, target, body)
	req.Header.Set("Content-Type", "application/json")
	return req
}

func decodeBody(t *testing.T, resp *http.Response) map[string]any {
	t.Helper()
	defer resp.Body.Close()
	var parsed map[string]any
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&parsed))
	return parsed
}

func TestCreateTicketReturnsCreated(t *testing.T) {
	app, _ := newTestApp(t)

	resp, err := app.Test(jsonRequest(http.MethodPost, "/tickets", fiber.Map{
		"title":       "Printer offline",
		"description": "Third floor printer is not responding to jobs",
		"priority":    "high",
	}))
	require.NoError(t, err)
	assert.Equal(t, http.StatusCreated, resp.StatusCode)

	body := decodeBody(t, resp)
	data := body["data"].(map[string]any)
	assert.Equal(t, "Printer offline", data["title"])
	assert.Equal(t, "high", data["priority"])
	assert.Equal(t, "open", data["status"])
}

func TestCreateTicketRejectsShortDescription(t *testing.T) {
	app, _ := newTestApp(t)

	resp, err := app.Test(jsonRequest(http.MethodPost, "/tickets", fiber.Map{
		"title":       "Broken",
		"description": "too short",
	}))
	require.NoError(t, err)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

	body := decodeBody(t, resp)
	errObj := body["error"].(map[string]any)
	assert.Equal(t, "VALIDATION_FAILED", errObj["code"])
}

func TestListTicketsIncludesFilters(t *testing.T) {
	app, ticketStore := newTestApp(t)

	_, err := ticketStore.CreateTicket(store.TicketCreateInput{
		Title:       "VPN unstable",
		Description: "Remote workers report frequent VPN drops",
	})
	require.NoError(t, err)

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/tickets", nil))
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	body := decodeBody(t, resp)
	data := body["data"].([]any)
	require.Len(t, data, 1)
	filters := body["filters"].(map[string]any)
	assert.Equal(t, "all", filters["status"])
}

func TestUpdateTicketMissingReturnsNotFound(t *testing.T) {
	app, _ := newTestApp(t)

	resp, err := app.Test(jsonRequest(http.MethodPut, "/tickets/99", fiber.Map{
		"title":       "Renamed ticket",
		"description": "This description is long enough to pass checks",
		"priority":    "low",
		"status":      "open",
	}))
	require.NoError(t, err)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestDeleteTicketIsIdempotent(t *testing.T) {
	app, ticketStore := newTestApp(t)

	_, err := ticketStore.CreateTicket(store.TicketCreateInput{
		Title:       "Disk full",
		Description: "Build server root volume is at 98 percent",
	})
	require.NoError(t, err)

	resp, err := app.Test(httptest.NewRequest(http.MethodDelete, "/tickets/1", nil))
	require.NoError(t, err)
	assert.Equal(t, http.StatusNoContent, resp.StatusCode)
	assert.Empty(t, ticketStore.Tickets())

	resp, err = app.Test(httptest.NewRequest(http.MethodDelete, "/tickets/1", nil))
	require.NoError(t, err)
	assert.Equal(t, http.StatusNoContent, resp.StatusCode)
}

func TestUpdateFiltersMergesPatch(t *testing.T) {
	app, ticketStore := newTestApp(t)

	resp, err := app.Test(jsonRequest(http.MethodPut, "/tickets/filters", fiber.Map{
		"status": "open",
		"search": "server",
	}))
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	filters := ticketStore.Filters()
	assert.Equal(t, "open", filters.Status)
	assert.Equal(t, "server", filters.Search)
	assert.Equal(t, "all", filters.Priority)
}
