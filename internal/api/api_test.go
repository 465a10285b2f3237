package api_test

import (
	"bytes"
	"encoding/json"
	"io"
	"log/slog"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pixelforge/gamevault/internal/api"
	"github.com/pixelforge/gamevault/internal/api/apierr"
	"github.com/pixelforge/gamevault/internal/api/response"
	"github.com/pixelforge/gamevault/internal/factory"
)

// testServer creates a test server with all dependencies
type testServer struct {
	handler http.Handler
	app     *factory.App
}

func newTestServer(t *testing.T) *testServer {
	t.Helper()

	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelError}))

	app := factory.NewTestAppWithUploads(t.TempDir())

	router := api.NewRouter(api.RouterConfig{
		Logger:        logger,
		PlayerService: app.PlayerService,
		EnemyService:  app.EnemyService,
		ArtworkStore:  app.ArtworkStore,
	})

	return &testServer{
		handler: router,
		app:     app,
	}
}

func (ts *testServer) request(method, path string, body any) *httptest.ResponseRecorder {
	var reqBody *bytes.Buffer
	if body != nil {
		b, _ := json.Marshal(body)
		reqBody = bytes.NewBuffer(b)
	} else {
		reqBody = bytes.NewBuffer(nil)
	}

	req := httptest.NewRequest(method, path, reqBody)
	req.Header.Set("Content-Type", "application/json")

	rr := httptest.NewRecorder()
	ts.handler.ServeHTTP(rr, req)
	return rr
}

func playerBody(name string) map[string]any {
	return map[string]any{
		"name":              name,
		"health":            100,
		"regenerate_health": 1,
		"speed":             1.5,
		"jump":              2.0,
		"armor":             10,
		"hit_speed":         1,
	}
}

func enemyBody(name, enemyType string, health int) map[string]any {
	return map[string]any{
		"name":              name,
		"type":              enemyType,
		"health":            health,
		"speed":             1.0,
		"jump":              1.0,
		"hit_speed":         1,
		"spawn":             10.0,
		"probability_spawn": 0.5,
	}
}

func (ts *testServer) createPlayer(t *testing.T, name string) response.Player {
	t.Helper()

	rr := ts.request(http.MethodPost, "/api/v1/players", playerBody(name))
	require.Equal(t, http.StatusCreated, rr.Code)

	var p response.Player
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &p))
	return p
}

func (ts *testServer) createEnemy(t *testing.T, name, enemyType string, health int) response.Enemy {
	t.Helper()

	rr := ts.request(http.MethodPost, "/api/v1/enemies", enemyBody(name, enemyType, health))
	require.Equal(t, http.StatusCreated, rr.Code)

	var e response.Enemy
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &e))
	return e
}

func decodeError(t *testing.T, rr *httptest.ResponseRecorder) apierr.ErrorResponse {
	t.Helper()

	var resp apierr.ErrorResponse
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
	return resp
}

func TestHealthCheck(t *testing.T) {
	ts := newTestServer(t)

	rr := ts.request(http.MethodGet, "/api/v1/health", nil)
	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Contains(t, rr.Body.String(), "ok")
}

func TestCreateAndGetPlayer(t *testing.T) {
	ts := newTestServer(t)

	created := ts.createPlayer(t, "Alice")
	assert.Equal(t, 1, created.ID)
	assert.Equal(t, "Alice", created.Name)

	rr := ts.request(http.MethodGet, "/api/v1/players/1", nil)
	assert.Equal(t, http.StatusOK, rr.Code)

	var got response.Player
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &got))
	assert.Equal(t, created, got)
}

func TestCreateAssignsSequentialIDs(t *testing.T) {
	ts := newTestServer(t)

	assert.Equal(t, 1, ts.createPlayer(t, "Alice").ID)
	assert.Equal(t, 2, ts.createPlayer(t, "Bob").ID)
	assert.Equal(t, 3, ts.createPlayer(t, "Carol").ID)
}

func TestCreatePlayerValidation(t *testing.T) {
	ts := newTestServer(t)

	body := playerBody("Alice")
	body["speed"] = 0

	rr := ts.request(http.MethodPost, "/api/v1/players", body)
	assert.Equal(t, http.StatusBadRequest, rr.Code)
	assert.Equal(t, apierr.CodeValidationFailed, decodeError(t, rr).Error.Code)
}

func TestGetPlayerNotFound(t *testing.T) {
	ts := newTestServer(t)

	rr := ts.request(http.MethodGet, "/api/v1/players/42", nil)
	assert.Equal(t, http.StatusNotFound, rr.Code)
	assert.Equal(t, apierr.CodePlayerNotFound, decodeError(t, rr).Error.Code)
}

func TestGetPlayerInvalidID(t *testing.T) {
	ts := newTestServer(t)

	rr := ts.request(http.MethodGet, "/api/v1/players/abc", nil)
	assert.Equal(t, http.StatusBadRequest, rr.Code)
	assert.Equal(t, apierr.CodeInvalidRequest, decodeError(t, rr).Error.Code)
}

func TestUpdatePlayerPartial(t *testing.T) {
	ts := newTestServer(t)

	created := ts.createPlayer(t, "Alice")

	rr := ts.request(http.MethodPatch, "/api/v1/players/1", map[string]any{"health": 55})
	require.Equal(t, http.StatusOK, rr.Code)

	var updated response.Player
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &updated))

	assert.Equal(t, 55, updated.Health)
	assert.Equal(t, created.Name, updated.Name)
	assert.Equal(t, created.Speed, updated.Speed)
	assert.Equal(t, created.ID, updated.ID)
}

func TestUpdateCannotChangeIdentity(t *testing.T) {
	ts := newTestServer(t)

	ts.createPlayer(t, "Alice")

	// An id field in the patch body is not a patchable field and is
	// simply ignored.
	rr := ts.request(http.MethodPatch, "/api/v1/players/1", map[string]any{"id": 99, "health": 60})
	require.Equal(t, http.StatusOK, rr.Code)

	var updated response.Player
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &updated))
	assert.Equal(t, 1, updated.ID)
	assert.Equal(t, 60, updated.Health)
}

func TestDeleteAndDeletedList(t *testing.T) {
	ts := newTestServer(t)

	ts.createPlayer(t, "Alice")
	ts.createPlayer(t, "Bob")

	rr := ts.request(http.MethodDelete, "/api/v1/players/1", nil)
	require.Equal(t, http.StatusOK, rr.Code)

	var removed response.Player
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &removed))
	assert.Equal(t, "Alice", removed.Name)

	rr = ts.request(http.MethodGet, "/api/v1/players", nil)
	require.Equal(t, http.StatusOK, rr.Code)

	var active []response.Player
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &active))
	require.Len(t, active, 1)
	assert.Equal(t, "Bob", active[0].Name)

	rr = ts.request(http.MethodGet, "/api/v1/players/deleted", nil)
	require.Equal(t, http.StatusOK, rr.Code)

	var deleted []response.Player
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &deleted))
	require.Len(t, deleted, 1)
	assert.Equal(t, "Alice", deleted[0].Name)
}

func TestReviveRestoresIdentity(t *testing.T) {
	ts := newTestServer(t)

	created := ts.createPlayer(t, "Alice")
	rr := ts.request(http.MethodDelete, "/api/v1/players/1", nil)
	require.Equal(t, http.StatusOK, rr.Code)

	rr = ts.request(http.MethodPost, "/api/v1/players/1/revive", nil)
	require.Equal(t, http.StatusOK, rr.Code)

	var revived response.Player
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &revived))
	assert.Equal(t, created, revived)

	rr = ts.request(http.MethodGet, "/api/v1/players/deleted", nil)
	var deleted []response.Player
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &deleted))
	assert.Empty(t, deleted)
}

func TestResurrectClearsDeadFlag(t *testing.T) {
	ts := newTestServer(t)

	ts.createPlayer(t, "Alice")

	rr := ts.request(http.MethodPatch, "/api/v1/players/1", map[string]any{"is_dead": true})
	require.Equal(t, http.StatusOK, rr.Code)

	rr = ts.request(http.MethodPost, "/api/v1/players/1/resurrect", nil)
	require.Equal(t, http.StatusOK, rr.Code)

	var p response.Player
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &p))
	assert.False(t, p.IsDead)
}

func TestDeleteAllConfirmationGate(t *testing.T) {
	ts := newTestServer(t)

	ts.createPlayer(t, "Alice")
	ts.createPlayer(t, "Bob")

	// Without confirmation nothing happens.
	rr := ts.request(http.MethodDelete, "/api/v1/players", nil)
	assert.Equal(t, http.StatusBadRequest, rr.Code)
	assert.Equal(t, apierr.CodeConfirmationRequired, decodeError(t, rr).Error.Code)

	rr = ts.request(http.MethodGet, "/api/v1/players", nil)
	var active []response.Player
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &active))
	assert.Len(t, active, 2)

	// With confirmation the whole roster moves to the archive.
	rr = ts.request(http.MethodDelete, "/api/v1/players?confirm=true", nil)
	require.Equal(t, http.StatusOK, rr.Code)

	var removed []response.Player
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &removed))
	assert.Len(t, removed, 2)

	rr = ts.request(http.MethodGet, "/api/v1/players", nil)
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &active))
	assert.Empty(t, active)
}

func TestPlayerFilterByDeadFlag(t *testing.T) {
	ts := newTestServer(t)

	ts.createPlayer(t, "Alice")
	ts.createPlayer(t, "Bob")
	rr := ts.request(http.MethodPatch, "/api/v1/players/2", map[string]any{"is_dead": true})
	require.Equal(t, http.StatusOK, rr.Code)

	rr = ts.request(http.MethodGet, "/api/v1/players/filter?is_dead=true", nil)
	require.Equal(t, http.StatusOK, rr.Code)

	var matched []response.Player
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &matched))
	require.Len(t, matched, 1)
	assert.Equal(t, "Bob", matched[0].Name)

	rr = ts.request(http.MethodGet, "/api/v1/players/filter?is_dead=banana", nil)
	assert.Equal(t, http.StatusBadRequest, rr.Code)
}

func TestPlayerSearchMinHealth(t *testing.T) {
	ts := newTestServer(t)

	ts.createPlayer(t, "Alice")
	rr := ts.request(http.MethodPatch, "/api/v1/players/1", map[string]any{"health": 30})
	require.Equal(t, http.StatusOK, rr.Code)
	ts.createPlayer(t, "Bob")

	rr = ts.request(http.MethodGet, "/api/v1/players/search?min_health=50", nil)
	require.Equal(t, http.StatusOK, rr.Code)

	var matched []response.Player
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &matched))
	require.Len(t, matched, 1)
	assert.Equal(t, "Bob", matched[0].Name)
}

func TestEnemyFilterByType(t *testing.T) {
	ts := newTestServer(t)

	ts.createEnemy(t, "Goblin", "goblin", 30)
	ts.createEnemy(t, "Hobgoblin", "goblin", 60)
	ts.createEnemy(t, "Wraith", "undead", 45)

	rr := ts.request(http.MethodGet, "/api/v1/enemies/filter?type=goblin", nil)
	require.Equal(t, http.StatusOK, rr.Code)

	var matched []response.Enemy
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &matched))
	assert.Len(t, matched, 2)
}

func TestEnemyLifecycle(t *testing.T) {
	ts := newTestServer(t)

	created := ts.createEnemy(t, "Goblin", "goblin", 30)
	assert.Equal(t, 1, created.ID)

	rr := ts.request(http.MethodDelete, "/api/v1/enemies/1", nil)
	require.Equal(t, http.StatusOK, rr.Code)

	rr = ts.request(http.MethodGet, "/api/v1/enemies/1", nil)
	assert.Equal(t, http.StatusNotFound, rr.Code)
	assert.Equal(t, apierr.CodeEnemyNotFound, decodeError(t, rr).Error.Code)

	rr = ts.request(http.MethodPost, "/api/v1/enemies/1/revive", nil)
	require.Equal(t, http.StatusOK, rr.Code)

	var revived response.Enemy
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &revived))
	assert.Equal(t, created, revived)
}

func TestEnemySpawnProbabilityValidation(t *testing.T) {
	ts := newTestServer(t)

	body := enemyBody("Goblin", "goblin", 30)
	body["probability_spawn"] = 1.5

	rr := ts.request(http.MethodPost, "/api/v1/enemies", body)
	assert.Equal(t, http.StatusBadRequest, rr.Code)
	assert.Equal(t, apierr.CodeValidationFailed, decodeError(t, rr).Error.Code)
}

func TestUploadPlayerImage(t *testing.T) {
	ts := newTestServer(t)
	ts.createPlayer(t, "Alice")

	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	fw, err := mw.CreateFormFile("image", "portrait.png")
	require.NoError(t, err)
	_, err = io.Copy(fw, bytes.NewReader([]byte("fake png bytes")))
	require.NoError(t, err)
	require.NoError(t, mw.Close())

	req := httptest.NewRequest(http.MethodPost, "/api/v1/players/1/image", &buf)
	req.Header.Set("Content-Type", mw.FormDataContentType())

	rr := httptest.NewRecorder()
	ts.handler.ServeHTTP(rr, req)
	require.Equal(t, http.StatusOK, rr.Code)

	var p response.Player
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &p))
	assert.Equal(t, "/static/uploads/player_1.png", p.Image)

	// The blob landed on disk under the derived name.
	_, err = os.Stat(filepath.Join(ts.app.ArtworkStore.Dir(), "player_1.png"))
	assert.NoError(t, err)
}

func TestUploadImageUnsupportedFormat(t *testing.T) {
	ts := newTestServer(t)
	ts.createPlayer(t, "Alice")

	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	fw, err := mw.CreateFormFile("image", "malware.exe")
	require.NoError(t, err)
	_, _ = fw.Write([]byte("nope"))
	require.NoError(t, mw.Close())

	req := httptest.NewRequest(http.MethodPost, "/api/v1/players/1/image", &buf)
	req.Header.Set("Content-Type", mw.FormDataContentType())

	rr := httptest.NewRecorder()
	ts.handler.ServeHTTP(rr, req)
	assert.Equal(t, http.StatusBadRequest, rr.Code)
	assert.Equal(t, apierr.CodeUnsupportedFormat, decodeError(t, rr).Error.Code)
}

func TestUploadImageForMissingPlayer(t *testing.T) {
	ts := newTestServer(t)

	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	fw, err := mw.CreateFormFile("image", "portrait.png")
	require.NoError(t, err)
	_, _ = fw.Write([]byte("bytes"))
	require.NoError(t, mw.Close())

	req := httptest.NewRequest(http.MethodPost, "/api/v1/players/42/image", &buf)
	req.Header.Set("Content-Type", mw.FormDataContentType())

	rr := httptest.NewRecorder()
	ts.handler.ServeHTTP(rr, req)
	assert.Equal(t, http.StatusNotFound, rr.Code)
}
