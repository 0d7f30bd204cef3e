package admin

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"zenith-backend/internal/auth"
	"zenith-backend/internal/validation"

	"go.mongodb.org/mongo-driver/mongo"
)

type memRepo struct {
	accounts map[string]Account
}

func (r *memRepo) Create(ctx context.Context, account Account) error {
	if r.accounts == nil {
		r.accounts = make(map[string]Account)
	}
	r.accounts[account.Username] = account
	return nil
}

func (r *memRepo) GetByUsername(ctx context.Context, username string) (Account, error) {
	account, ok := r.accounts[username]
	if !ok {
		return Account{}, mongo.ErrNoDocuments
	}
	return account, nil
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func testHandler(t *testing.T, manager *auth.Manager) (*Handler, *memRepo) {
	t.Helper()
	repo := &memRepo{}
	return NewHandler(repo, manager, validation.New(), discardLogger(), "setup-key", false, time.UTC), repo
}

func seedAccount(t *testing.T, repo *memRepo, username, password string) {
	t.Helper()
	hash, err := auth.HashPassword(password)
	if err != nil {
		t.Fatalf("HashPassword error: %v", err)
	}
	repo.Create(context.Background(), Account{
		ID:           "a1",
		Username:     username,
		PasswordHash: hash,
		Role:         RoleAdmin,
	})
}

func TestLoginWithoutManagerReturns503(t *testing.T) {
	h, repo := testHandler(t, nil)
	seedAccount(t, repo, "admin", "s3cret-pass")

	req := httptest.NewRequest(http.MethodPost, "/api/admin/login", strings.NewReader(`{"username":"admin","password":"s3cret-pass"}`))
	rec := httptest.NewRecorder()
	h.Login(rec, req)

	if rec.Code != http.StatusServiceUnavailable {
		t.Fatalf("expected 503, got %d: %s", rec.Code, rec.Body.String())
	}
}

func TestRegisterWithoutManagerReturns503(t *testing.T) {
	h, _ := testHandler(t, nil)

	body := `{"username":"admin","password":"s3cret-pass","setupKey":"setup-key"}`
	req := httptest.NewRequest(http.MethodPost, "/api/admin/register", strings.NewReader(body))
	rec := httptest.NewRecorder()
	h.Register(rec, req)

	if rec.Code != http.StatusServiceUnavailable {
		t.Fatalf("expected 503, got %d: %s", rec.Code, rec.Body.String())
	}
}

func TestRefreshWithoutManagerReturns503(t *testing.T) {
	h, _ := testHandler(t, nil)

	req := httptest.NewRequest(http.MethodPost, "/api/admin/refresh", nil)
	req.AddCookie(&http.Cookie{Name: refreshCookie, Value: "some-token"})
	rec := httptest.NewRecorder()
	h.Refresh(rec, req)

	if rec.Code != http.StatusServiceUnavailable {
		t.Fatalf("expected 503, got %d: %s", rec.Code, rec.Body.String())
	}
}

func TestLoginIssuesSessionCookies(t *testing.T) {
	manager := &auth.Manager{
		Secret:     []byte("test-secret"),
		AccessTTL:  15 * time.Minute,
		RefreshTTL: 30 * 24 * time.Hour,
		Issuer:     "zenith-backend",
	}
	h, repo := testHandler(t, manager)
	seedAccount(t, repo, "admin", "s3cret-pass")

	req := httptest.NewRequest(http.MethodPost, "/api/admin/login", strings.NewReader(`{"username":"admin","password":"s3cret-pass"}`))
	rec := httptest.NewRecorder()
	h.Login(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}
	names := make(map[string]bool)
	for _, c := range rec.Result().Cookies() {
		names[c.Name] = true
	}
	if !names[accessCookie] || !names[refreshCookie] {
		t.Fatalf("expected both session cookies, got %v", names)
	}
}

func TestLoginWrongPassword(t *testing.T) {
	manager := &auth.Manager{
		Secret:    []byte("test-secret"),
		AccessTTL: 15 * time.Minute,
		Issuer:    "zenith-backend",
	}
	h, repo := testHandler(t, manager)
	seedAccount(t, repo, "admin", "s3cret-pass")

	req := httptest.NewRequest(http.MethodPost, "/api/admin/login", strings.NewReader(`{"username":"admin","password":"wrong"}`))
	rec := httptest.NewRecorder()
	h.Login(rec, req)

	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d: %s", rec.Code, rec.Body.String())
	}
}
