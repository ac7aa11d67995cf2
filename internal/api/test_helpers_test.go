package api

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/sambrend/nomer/internal/store"
)

// memoryBlobStore keeps the state blob in process memory for tests.
type memoryBlobStore struct {
	blobs map[string][]byte
}

func (m *memoryBlobStore) Load(key string) ([]byte, bool, error) {
	payload, found := m.blobs[key]
	return payload, found, nil
}

func (m *memoryBlobStore) Save(key string, payload []byte) error {
	m.blobs[key] = append([]byte(nil), payload...)
	return nil
}

func newTestApp(t *testing.T) (*fiber.App, *store.Store) {
	t.Helper()

	domainStore, err := store.Open(&memoryBlobStore{blobs: map[string][]byte{}}, time.UTC)
	if err != nil {
		t.Fatalf("open store: %v", err)
	}

	handler, err := NewHandler(domainStore, "test-secret-key", time.UTC, false)
	if err != nil {
		t.Fatalf("new handler: %v", err)
	}

	app := fiber.New()
	RegisterRoutes(app, handler)
	return app, domainStore
}

// doJSON fires a JSON request and decodes the body into a generic map.
func doJSON(t *testing.T, app *fiber.App, method string, path string, payload any, authCookie string) (int, map[string]any, string) {
	t.Helper()

	var body io.Reader
	if payload != nil {
		encoded, err := json.Marshal(payload)
		if err != nil {
			t.Fatalf("marshal payload: %v", err)
		}
		body = bytes.NewReader(encoded)
	}

	request := httptest.NewRequest(method, path, body)
	if payload != nil {
		request.Header.Set("Content-Type", fiber.MIMEApplicationJSON)
	}
	if authCookie != "" {
		request.Header.Set("Cookie", authCookie)
	}

	response, err := app.Test(request, -1)
	if err != nil {
		t.Fatalf("%s %s failed: %v", method, path, err)
	}
	defer response.Body.Close()

	raw, err := io.ReadAll(response.Body)
	if err != nil {
		t.Fatalf("%s %s read body: %v", method, path, err)
	}

	decoded := map[string]any{}
	if len(raw) > 0 {
		if err := json.Unmarshal(raw, &decoded); err != nil {
			t.Fatalf("%s %s decode body %q: %v", method, path, raw, err)
		}
	}
	return response.StatusCode, decoded, extractAuthCookie(response)
}

func extractAuthCookie(response *http.Response) string {
	for _, cookie := range response.Cookies() {
		if cookie.Name == authCookieName && cookie.Value != "" {
			return authCookieName + "=" + cookie.Value
		}
	}
	return ""
}

// registerAccount signs up a user and returns their id and auth cookie.
func registerAccount(t *testing.T, app *fiber.App, phone string, role string) (string, string) {
	t.Helper()

	status, body, cookie := doJSON(t, app, http.MethodPost, "/api/auth/register", map[string]any{
		"firstName": "Test",
		"lastName":  "User",
		"phone":     phone,
		"password":  "secret123",
		"role":      role,
	}, "")
	if status != http.StatusCreated {
		t.Fatalf("register %s status = %d, body %v", phone, status, body)
	}
	if cookie == "" {
		t.Fatal("register must issue an auth cookie")
	}

	user, ok := body["user"].(map[string]any)
	if !ok {
		t.Fatalf("register body missing user: %v", body)
	}
	userID, _ := user["id"].(string)
	if userID == "" {
		t.Fatalf("register body missing user id: %v", body)
	}
	if strings.Contains(userID, " ") {
		t.Fatalf("suspicious user id %q", userID)
	}
	return userID, cookie
}
