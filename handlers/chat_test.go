package handlers_test

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"ticketbharat/catalog"
	"ticketbharat/handlers"
	"ticketbharat/models"
	"ticketbharat/routes"
	"ticketbharat/services/flow"
	ai "ticketbharat/services/intelligence"
	"ticketbharat/utils"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// memSessionStore is an in-memory SessionStore. Sessions round-trip
// through JSON so tests see the same serialization boundary Redis does.
type memSessionStore struct {
	sessions map[string][]byte
}

func newMemSessionStore() *memSessionStore {
	return &memSessionStore{sessions: make(map[string][]byte)}
}

func (m *memSessionStore) Get(ctx context.Context, sessionID string) (*models.ChatSession, error) {
	data, ok := m.sessions[sessionID]
	if !ok {
		return nil, flow.ErrSessionNotFound
	}
	var s models.ChatSession
	if err := json.Unmarshal(data, &s); err != nil {
		return nil, err
	}
	return &s, nil
}

func (m *memSessionStore) Save(ctx context.Context, session *models.ChatSession) error {
	// A real store refuses writes on a dead context.
	if err := ctx.Err(); err != nil {
		return err
	}
	b, err := json.Marshal(session)
	if err != nil {
		return err
	}
	m.sessions[session.SessionID] = b
	return nil
}

func (m *memSessionStore) Delete(ctx context.Context, sessionID string) error {
	delete(m.sessions, sessionID)
	return nil
}

// downGenerator simulates an unreachable generation service.
type downGenerator struct{}

func (downGenerator) GenerateContent(ctx context.Context, prompt string) (string, error) {
	return "", errors.New("service unavailable")
}

func newTestRouter(t *testing.T) (*gin.Engine, *memSessionStore) {
	t.Helper()
	store := newMemSessionStore()
	return routerWithStore(t, store), store
}

func routerWithStore(t *testing.T, store flow.SessionStore) *gin.Engine {
	t.Helper()
	return routerWith(t, store, downGenerator{})
}

func routerWith(t *testing.T, store flow.SessionStore, gen ai.Generator) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	logger := utils.GetLogger()
	cat := catalog.NewStaticProvider()
	require.NoError(t, cat.Validate())

	engine := flow.NewEngine(cat, flow.NewMockPaymentHandler(logger))
	resolver := ai.NewDefaultFaqResolver(gen, cat, logger)

	hb := &handlers.HandlerBundle{
		Chat:      handlers.NewChatHandler(engine, store, resolver, logger),
		Catalog:   handlers.NewCatalogHandler(cat),
		Dashboard: handlers.NewDashboardHandler(cat),
	}

	router := gin.New()
	routes.RegisterRoutes(router, hb)
	return router
}

type chatResponse struct {
	Session models.ChatSession `json:"session"`
	Prompt  models.Prompt      `json:"prompt"`
	Outcome *models.FaqOutcome `json:"outcome"`
}

func doJSON(t *testing.T, router *gin.Engine, method, path string, body interface{}) (*httptest.ResponseRecorder, chatResponse) {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	var resp chatResponse
	if w.Code == http.StatusOK {
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	}
	return w, resp
}

func startSession(t *testing.T, router *gin.Engine, lang string) chatResponse {
	t.Helper()
	w, resp := doJSON(t, router, http.MethodPost, "/api/chat/session", gin.H{"language": lang})
	require.Equal(t, http.StatusOK, w.Code)
	require.NotEmpty(t, resp.Session.SessionID)
	return resp
}

func selectPath(id string) string { return fmt.Sprintf("/api/chat/session/%s/select", id) }

func TestStartSessionDefaultsLanguage(t *testing.T) {
	router, _ := newTestRouter(t)
	resp := startSession(t, router, "xx")
	assert.Equal(t, "en", resp.Session.Language)
	assert.Equal(t, models.StepStart, resp.Session.Step)
	assert.Equal(t, models.ControlMenu, resp.Prompt.Control)
	require.NotEmpty(t, resp.Session.Messages)
	assert.Equal(t, models.SenderBot, resp.Session.Messages[0].Sender)
}

func TestBookingFlowOverHTTP(t *testing.T) {
	router, _ := newTestRouter(t)
	sess := startSession(t, router, "en")
	id := sess.Session.SessionID

	steps := []models.Selection{
		{Kind: models.SelectMenu, Value: "book"},
		{Kind: models.SelectState, Value: "Maharashtra"},
		{Kind: models.SelectCity, Value: "Mumbai"},
		{Kind: models.SelectEvent, Value: "movie-1"},
		{Kind: models.SelectDate, Value: "2025-09-06"},
		{Kind: models.SelectTime, Value: "10:00 AM"},
		{Kind: models.SelectQuantities, Quantities: map[string]int{"regular": 2}},
		{Kind: models.SelectConfirm},
	}
	var resp chatResponse
	for _, sel := range steps {
		var w *httptest.ResponseRecorder
		w, resp = doJSON(t, router, http.MethodPost, selectPath(id), sel)
		require.Equal(t, http.StatusOK, w.Code, "selection %+v", sel)
	}
	assert.Equal(t, models.StepPayment, resp.Session.Step)
	assert.Equal(t, 400.0, resp.Session.Order.TotalAmount)

	w, resp := doJSON(t, router, http.MethodPost,
		fmt.Sprintf("/api/chat/session/%s/payment", id), gin.H{"result": "success"})
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, models.StepTicketIssued, resp.Session.Step)
	require.NotNil(t, resp.Session.Ticket)
	assert.Equal(t, 400.0, resp.Session.Ticket.TotalAmount)
}

func TestInvalidSelectionRejected(t *testing.T) {
	router, _ := newTestRouter(t)
	sess := startSession(t, router, "en")

	w, _ := doJSON(t, router, http.MethodPost, selectPath(sess.Session.SessionID),
		models.Selection{Kind: models.SelectDate, Value: "2025-09-06"})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestSessionNotFound(t *testing.T) {
	router, _ := newTestRouter(t)
	w, _ := doJSON(t, router, http.MethodPost, selectPath("nope"),
		models.Selection{Kind: models.SelectMenu, Value: "book"})
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestQuestionWithServiceDownFallsBack(t *testing.T) {
	router, _ := newTestRouter(t)
	sess := startSession(t, router, "hi")
	id := sess.Session.SessionID

	w, _ := doJSON(t, router, http.MethodPost,
		fmt.Sprintf("/api/chat/session/%s/mode", id), gin.H{"mode": "faq"})
	require.Equal(t, http.StatusOK, w.Code)

	// Scenario: greeting in Hindi while the service is unreachable.
	w, resp := doJSON(t, router, http.MethodPost,
		fmt.Sprintf("/api/chat/session/%s/question", id), gin.H{"question": "Hello"})
	require.Equal(t, http.StatusOK, w.Code)
	require.NotNil(t, resp.Outcome)
	assert.Equal(t, models.IntentAnswer, resp.Outcome.Intent)
	assert.Contains(t, resp.Outcome.Answer, "नमस्ते")
	assert.Equal(t, models.ModeFaq, resp.Session.Mode, "mode unchanged on a plain answer")
	assert.False(t, resp.Session.Resolving)
}

func TestQuestionPurchaseIntentSwitchesToBooking(t *testing.T) {
	router, _ := newTestRouter(t)
	sess := startSession(t, router, "en")
	id := sess.Session.SessionID

	w, _ := doJSON(t, router, http.MethodPost,
		fmt.Sprintf("/api/chat/session/%s/mode", id), gin.H{"mode": "faq"})
	require.Equal(t, http.StatusOK, w.Code)

	w, resp := doJSON(t, router, http.MethodPost,
		fmt.Sprintf("/api/chat/session/%s/question", id), gin.H{"question": "I want to buy tickets"})
	require.Equal(t, http.StatusOK, w.Code)
	require.NotNil(t, resp.Outcome)
	assert.Equal(t, models.IntentSwitchToBooking, resp.Outcome.Intent)
	assert.Equal(t, models.ModeBooking, resp.Session.Mode)
	assert.Equal(t, models.StepSelectState, resp.Session.Step)
	assert.Equal(t, models.TicketOrder{}, resp.Session.Order, "order reset on switch")
	assert.Equal(t, models.ControlStateList, resp.Prompt.Control)
}

// flakySessionStore fails exactly one Save call, by position.
type flakySessionStore struct {
	*memSessionStore
	saves  int
	failOn int
}

func (s *flakySessionStore) Save(ctx context.Context, session *models.ChatSession) error {
	s.saves++
	if s.saves == s.failOn {
		return errors.New("connection reset by peer")
	}
	return s.memSessionStore.Save(ctx, session)
}

func TestFailedSaveDoesNotWedgeSession(t *testing.T) {
	// Saves: 1 start session, 2 mode switch, 3 busy flag, 4 outcome.
	// Failing the outcome save must not leave the stored busy flag set;
	// the session stays usable for the next question.
	store := &flakySessionStore{memSessionStore: newMemSessionStore(), failOn: 4}
	router := routerWithStore(t, store)
	sess := startSession(t, router, "en")
	id := sess.Session.SessionID

	w, _ := doJSON(t, router, http.MethodPost,
		fmt.Sprintf("/api/chat/session/%s/mode", id), gin.H{"mode": "faq"})
	require.Equal(t, http.StatusOK, w.Code)

	w, _ = doJSON(t, router, http.MethodPost,
		fmt.Sprintf("/api/chat/session/%s/question", id), gin.H{"question": "hello"})
	require.Equal(t, http.StatusInternalServerError, w.Code)

	w, resp := doJSON(t, router, http.MethodPost,
		fmt.Sprintf("/api/chat/session/%s/question", id), gin.H{"question": "hello"})
	require.Equal(t, http.StatusOK, w.Code, "session must not stay busy after a failed save")
	assert.False(t, resp.Session.Resolving)
}

// disconnectingGenerator cancels the request context mid-resolution,
// as a client hanging up during a slow generation does.
type disconnectingGenerator struct {
	cancel context.CancelFunc
}

func (g disconnectingGenerator) GenerateContent(ctx context.Context, prompt string) (string, error) {
	g.cancel()
	return "", ctx.Err()
}

func TestClientDisconnectDoesNotWedgeSession(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	store := newMemSessionStore()
	router := routerWith(t, store, disconnectingGenerator{cancel: cancel})
	sess := startSession(t, router, "en")
	id := sess.Session.SessionID

	w, _ := doJSON(t, router, http.MethodPost,
		fmt.Sprintf("/api/chat/session/%s/mode", id), gin.H{"mode": "faq"})
	require.Equal(t, http.StatusOK, w.Code)

	var buf bytes.Buffer
	require.NoError(t, json.NewEncoder(&buf).Encode(gin.H{"question": "hello"}))
	req := httptest.NewRequest(http.MethodPost,
		fmt.Sprintf("/api/chat/session/%s/question", id), &buf).WithContext(ctx)
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	require.Equal(t, http.StatusOK, rec.Code)

	stored, err := store.Get(context.Background(), id)
	require.NoError(t, err)
	assert.False(t, stored.Resolving, "busy flag must be cleared despite the canceled request context")

	w, resp := doJSON(t, router, http.MethodPost,
		fmt.Sprintf("/api/chat/session/%s/question", id), gin.H{"question": "hello again"})
	require.Equal(t, http.StatusOK, w.Code)
	assert.False(t, resp.Session.Resolving)
}

func TestQuestionRejectedWhileResolving(t *testing.T) {
	router, store := newTestRouter(t)
	sess := startSession(t, router, "en")
	id := sess.Session.SessionID

	w, _ := doJSON(t, router, http.MethodPost,
		fmt.Sprintf("/api/chat/session/%s/mode", id), gin.H{"mode": "faq"})
	require.Equal(t, http.StatusOK, w.Code)

	// Simulate an in-flight resolution.
	s, err := store.Get(context.Background(), id)
	require.NoError(t, err)
	s.Resolving = true
	require.NoError(t, store.Save(context.Background(), s))

	w, _ = doJSON(t, router, http.MethodPost,
		fmt.Sprintf("/api/chat/session/%s/question", id), gin.H{"question": "hello"})
	assert.Equal(t, http.StatusConflict, w.Code)
}

func TestQuestionRejectedInBookingMode(t *testing.T) {
	router, _ := newTestRouter(t)
	sess := startSession(t, router, "en")

	w, _ := doJSON(t, router, http.MethodPost,
		fmt.Sprintf("/api/chat/session/%s/question", sess.Session.SessionID),
		gin.H{"question": "hello"})
	assert.Equal(t, http.StatusConflict, w.Code)
}

func TestEndSession(t *testing.T) {
	router, _ := newTestRouter(t)
	sess := startSession(t, router, "en")
	id := sess.Session.SessionID

	w, _ := doJSON(t, router, http.MethodDelete, "/api/chat/session/"+id, nil)
	require.Equal(t, http.StatusOK, w.Code)

	w, _ = doJSON(t, router, http.MethodGet, "/api/chat/session/"+id, nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestCatalogEndpoints(t *testing.T) {
	router, _ := newTestRouter(t)

	req := httptest.NewRequest(http.MethodGet, "/api/catalog/states", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	require.Equal(t, http.StatusOK, w.Code)
	var states struct {
		States []string `json:"states"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &states))
	assert.Contains(t, states.States, "Maharashtra")

	req = httptest.NewRequest(http.MethodGet, "/api/catalog/events?state=Maharashtra&city=Mumbai", nil)
	w = httptest.NewRecorder()
	router.ServeHTTP(w, req)
	require.Equal(t, http.StatusOK, w.Code)
	var events struct {
		Events []models.Event `json:"events"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &events))
	require.NotEmpty(t, events.Events)
	for _, e := range events.Events {
		assert.Equal(t, "Mumbai", e.City)
	}

	req = httptest.NewRequest(http.MethodGet, "/api/catalog/events", nil)
	w = httptest.NewRecorder()
	router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestDashboardEndpoints(t *testing.T) {
	router, _ := newTestRouter(t)

	req := httptest.NewRequest(http.MethodGet, "/api/dashboard/popular", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "ticketsSold")

	req = httptest.NewRequest(http.MethodGet, "/api/dashboard/tickets-sold", nil)
	w = httptest.NewRecorder()
	router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "series")
}
