package e2e_test

import (
	"context"
	"encoding/json"
	"log/slog"
	"net"
	"net/http"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pixelforge/gamevault/internal/api"
	"github.com/pixelforge/gamevault/internal/factory"
	"github.com/pixelforge/gamevault/internal/web"
)

// cliRunner manages CLI binary execution
type cliRunner struct {
	binaryPath string
	serverURL  string
}

func newCLIRunner(t *testing.T, serverURL string) *cliRunner {
	t.Helper()

	// Find project root (where go.mod is)
	projectRoot := findProjectRoot(t)

	// Build the CLI binary
	binaryPath := filepath.Join(projectRoot, "bin", "gvault-test")
	cmd := exec.Command("go", "build", "-o", binaryPath, "./cmd/gvault")
	cmd.Dir = projectRoot
	output, err := cmd.CombinedOutput()
	require.NoError(t, err, "failed to build CLI: %s", string(output))

	return &cliRunner{
		binaryPath: binaryPath,
		serverURL:  serverURL,
	}
}

func (r *cliRunner) run(args ...string) (string, error) {
	fullArgs := append([]string{
		"--server", r.serverURL,
		"--output", "json",
	}, args...)

	cmd := exec.Command(r.binaryPath, fullArgs...)
	output, err := cmd.CombinedOutput()
	return string(output), err
}

func findProjectRoot(t *testing.T) string {
	t.Helper()

	dir, err := os.Getwd()
	require.NoError(t, err)

	for {
		if _, err := os.Stat(filepath.Join(dir, "go.mod")); err == nil {
			return dir
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			t.Fatal("could not find project root (go.mod)")
		}
		dir = parent
	}
}

// testServer manages a real HTTP server for e2e tests
type testServer struct {
	addr     string
	shutdown func()
}

func startTestServer(t *testing.T) *testServer {
	t.Helper()

	// Find a free port
	listener, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	addr := listener.Addr().String()
	require.NoError(t, listener.Close())

	// Create application over in-memory storage
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelError}))
	app, err := factory.New(factory.Config{
		StorageType: factory.StorageTypeMemory,
		UploadsDir:  t.TempDir(),
		Logger:      logger,
	})
	require.NoError(t, err)

	// Create routers
	apiRouter := api.NewRouter(api.RouterConfig{
		Logger:        logger,
		PlayerService: app.PlayerService,
		EnemyService:  app.EnemyService,
		ArtworkStore:  app.ArtworkStore,
	})

	webRouter := web.NewRouter(web.RouterConfig{
		Logger:        logger,
		PlayerService: app.PlayerService,
		EnemyService:  app.EnemyService,
		ArtworkStore:  app.ArtworkStore,
		StaticDir:     filepath.Join(findProjectRoot(t), "internal/web/static"),
	})

	// Combine routers
	mux := http.NewServeMux()
	mux.Handle("/api/", apiRouter)
	mux.Handle("/", webRouter)

	server := &http.Server{
		Addr:    addr,
		Handler: mux,
	}

	// Start server
	go func() {
		if err := server.ListenAndServe(); err != http.ErrServerClosed {
			t.Logf("server error: %v", err)
		}
	}()

	// Wait for server to be ready
	serverURL := "http://" + addr
	waitForServer(t, serverURL+"/api/v1/health")

	return &testServer{
		addr: serverURL,
		shutdown: func() {
			ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			_ = server.Shutdown(ctx)
		},
	}
}

func waitForServer(t *testing.T, url string) {
	t.Helper()

	client := &http.Client{Timeout: 100 * time.Millisecond}
	deadline := time.Now().Add(5 * time.Second)

	for time.Now().Before(deadline) {
		resp, err := client.Get(url)
		if err == nil {
			_ = resp.Body.Close()
			if resp.StatusCode == http.StatusOK {
				return
			}
		}
		time.Sleep(50 * time.Millisecond)
	}

	t.Fatal("server did not become ready in time")
}

// Response types for JSON parsing
type playerResponse struct {
	ID               int     `json:"id"`
	Name             string  `json:"name"`
	Health           int     `json:"health"`
	RegenerateHealth int     `json:"regenerate_health"`
	Speed            float64 `json:"speed"`
	IsDead           bool    `json:"is_dead"`
	Armor            int     `json:"armor"`
}

type enemyResponse struct {
	ID     int    `json:"id"`
	Name   string `json:"name"`
	Type   string `json:"type"`
	Health int    `json:"health"`
}

type healthResponse struct {
	Status string `json:"status"`
}

type messageResponse struct {
	Message string `json:"message"`
}

// Tests

func TestCLI_HealthCheck(t *testing.T) {
	ts := startTestServer(t)
	defer ts.shutdown()

	cli := newCLIRunner(t, ts.addr)

	output, err := cli.run("health")
	require.NoError(t, err, "output: %s", output)

	var resp healthResponse
	require.NoError(t, json.Unmarshal([]byte(output), &resp))
	assert.Equal(t, "ok", resp.Status)
}

func TestCLI_PlayerLifecycle(t *testing.T) {
	ts := startTestServer(t)
	defer ts.shutdown()

	cli := newCLIRunner(t, ts.addr)

	// Create a player
	output, err := cli.run("player", "create", "--name", "Alice", "--health", "100", "--armor", "10")
	require.NoError(t, err, "output: %s", output)

	var created playerResponse
	require.NoError(t, json.Unmarshal([]byte(output), &created))
	assert.Equal(t, 1, created.ID)
	assert.Equal(t, "Alice", created.Name)
	assert.Equal(t, 100, created.Health)

	// List players
	output, err = cli.run("player", "list")
	require.NoError(t, err, "output: %s", output)

	var list []playerResponse
	require.NoError(t, json.Unmarshal([]byte(output), &list))
	require.Len(t, list, 1)
	assert.Equal(t, "Alice", list[0].Name)

	// Update only health; other fields stay
	output, err = cli.run("player", "update", "1", "--health", "55")
	require.NoError(t, err, "output: %s", output)

	var updated playerResponse
	require.NoError(t, json.Unmarshal([]byte(output), &updated))
	assert.Equal(t, 55, updated.Health)
	assert.Equal(t, "Alice", updated.Name)
	assert.Equal(t, 10, updated.Armor)

	// Delete the player
	output, err = cli.run("player", "delete", "1")
	require.NoError(t, err, "output: %s", output)

	var msg messageResponse
	require.NoError(t, json.Unmarshal([]byte(output), &msg))
	assert.Contains(t, msg.Message, "Deleted player 1")

	// It shows up in the deletion history
	output, err = cli.run("player", "deleted")
	require.NoError(t, err, "output: %s", output)

	var deleted []playerResponse
	require.NoError(t, json.Unmarshal([]byte(output), &deleted))
	require.Len(t, deleted, 1)
	assert.Equal(t, 1, deleted[0].ID)

	// Restore brings it back unchanged
	output, err = cli.run("player", "restore", "1")
	require.NoError(t, err, "output: %s", output)

	var restored playerResponse
	require.NoError(t, json.Unmarshal([]byte(output), &restored))
	assert.Equal(t, updated, restored)

	output, err = cli.run("player", "list")
	require.NoError(t, err, "output: %s", output)
	require.NoError(t, json.Unmarshal([]byte(output), &list))
	assert.Len(t, list, 1)
}

func TestCLI_PlayerPurge(t *testing.T) {
	ts := startTestServer(t)
	defer ts.shutdown()

	cli := newCLIRunner(t, ts.addr)

	_, err := cli.run("player", "create", "--name", "Alice")
	require.NoError(t, err)
	_, err = cli.run("player", "create", "--name", "Bob")
	require.NoError(t, err)

	// Purge refuses to run without confirmation
	output, err := cli.run("player", "purge")
	assert.Error(t, err)
	assert.Contains(t, output, "--confirm")

	output, err = cli.run("player", "list")
	require.NoError(t, err, "output: %s", output)

	var list []playerResponse
	require.NoError(t, json.Unmarshal([]byte(output), &list))
	assert.Len(t, list, 2)

	// Confirmed purge moves everyone to the deletion history
	output, err = cli.run("player", "purge", "--confirm")
	require.NoError(t, err, "output: %s", output)

	var msg messageResponse
	require.NoError(t, json.Unmarshal([]byte(output), &msg))
	assert.Equal(t, "Purged 2 players", msg.Message)

	output, err = cli.run("player", "list")
	require.NoError(t, err, "output: %s", output)
	list = nil
	require.NoError(t, json.Unmarshal([]byte(output), &list))
	assert.Empty(t, list)

	output, err = cli.run("player", "deleted")
	require.NoError(t, err, "output: %s", output)
	var deleted []playerResponse
	require.NoError(t, json.Unmarshal([]byte(output), &deleted))
	assert.Len(t, deleted, 2)
}

func TestCLI_EnemyCommands(t *testing.T) {
	ts := startTestServer(t)
	defer ts.shutdown()

	cli := newCLIRunner(t, ts.addr)

	// Create enemies of two types
	output, err := cli.run("enemy", "create", "--name", "Goblin", "--type", "goblin", "--health", "30")
	require.NoError(t, err, "output: %s", output)

	var created enemyResponse
	require.NoError(t, json.Unmarshal([]byte(output), &created))
	assert.Equal(t, 1, created.ID)
	assert.Equal(t, "goblin", created.Type)

	_, err = cli.run("enemy", "create", "--name", "Hobgoblin", "--type", "goblin", "--health", "60")
	require.NoError(t, err)
	_, err = cli.run("enemy", "create", "--name", "Wraith", "--type", "undead", "--health", "45")
	require.NoError(t, err)

	// Filtered list
	output, err = cli.run("enemy", "list", "--type", "goblin")
	require.NoError(t, err, "output: %s", output)

	var goblins []enemyResponse
	require.NoError(t, json.Unmarshal([]byte(output), &goblins))
	assert.Len(t, goblins, 2)

	// Delete then restore
	output, err = cli.run("enemy", "delete", "1")
	require.NoError(t, err, "output: %s", output)

	var msg messageResponse
	require.NoError(t, json.Unmarshal([]byte(output), &msg))
	assert.Contains(t, msg.Message, "Deleted enemy 1")

	output, err = cli.run("enemy", "restore", "1")
	require.NoError(t, err, "output: %s", output)

	var restored enemyResponse
	require.NoError(t, json.Unmarshal([]byte(output), &restored))
	assert.Equal(t, "Goblin", restored.Name)

	output, err = cli.run("enemy", "list")
	require.NoError(t, err, "output: %s", output)
	var all []enemyResponse
	require.NoError(t, json.Unmarshal([]byte(output), &all))
	assert.Len(t, all, 3)
}

func TestCLI_ErrorHandling(t *testing.T) {
	ts := startTestServer(t)
	defer ts.shutdown()

	cli := newCLIRunner(t, ts.addr)

	// Get non-existent player
	output, err := cli.run("player", "get", "42")
	assert.Error(t, err)
	assert.Contains(t, strings.ToLower(output), "not found")

	// Get non-existent enemy
	output, err = cli.run("enemy", "get", "42")
	assert.Error(t, err)
	assert.Contains(t, strings.ToLower(output), "not found")

	// Non-integer identity is rejected before it hits storage
	output, err = cli.run("player", "get", "abc")
	assert.Error(t, err)
	assert.Contains(t, strings.ToLower(output), "integer")
}
