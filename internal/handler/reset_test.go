package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/joinus/backend/internal/db"
	"github.com/joinus/backend/internal/model"
	"github.com/joinus/backend/internal/repository"
	"github.com/joinus/backend/internal/service"
	"golang.org/x/crypto/bcrypt"
)

type captureSender struct {
	tokens  []string
	sendErr error
}

func (c *captureSender) SendPasswordResetEmail(ctx context.Context, email, token string) error {
	if c.sendErr != nil {
		return c.sendErr
	}
	c.tokens = append(c.tokens, token)
	return nil
}

type resetFixture struct {
	handler *resetHandler
	sender  *captureSender
	users   repository.UserRepository
	tokens  repository.ResetTokenRepository
}

// newResetFixture wires the real services against a migrated SQLite
// database, with only the email sender faked out.
func newResetFixture(t *testing.T) *resetFixture {
	t.Helper()

	connection := filepath.Join(t.TempDir(), "test.db")
	database, err := db.Init("sqlite", connection)
	if err != nil {
		t.Fatalf("db.Init: %v", err)
	}
	t.Cleanup(func() { _ = db.Close(database) })

	err = db.RunMigrations(database.DB, "sqlite")
	if err != nil {
		t.Fatalf("db.RunMigrations: %v", err)
	}

	users := repository.NewUserRepository(database)
	tokens := repository.NewResetTokenRepository(database)
	sender := &captureSender{}
	resetService := service.NewPasswordResetService(users, tokens, sender, time.Hour)

	return &resetFixture{
		handler: NewResetHandler(resetService),
		sender:  sender,
		users:   users,
		tokens:  tokens,
	}
}

func (f *resetFixture) seedUser(t *testing.T, email string) *model.User {
	t.Helper()
	user := &model.User{
		ID:           uuid.New().String(),
		Email:        email,
		FirstName:    "Test",
		LastName:     "User",
		Age:          30,
		PasswordHash: "$2a$10$oldoldoldoldoldoldoldold",
		CreatedAt:    time.Now().UTC().Truncate(time.Second),
	}
	err := f.users.Create(context.Background(), user)
	if err != nil {
		t.Fatalf("seed user: %v", err)
	}
	return user
}

func postJSON(t *testing.T, handlerFunc http.HandlerFunc, body any) *httptest.ResponseRecorder {
	t.Helper()
	payload, err := json.Marshal(body)
	if err != nil {
		t.Fatalf("marshal body: %v", err)
	}
	req := httptest.NewRequest(http.MethodPost, "/", bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	handlerFunc(rec, req)
	return rec
}

func TestForgotPassword_UniformResponse(t *testing.T) {
	f := newResetFixture(t)
	f.seedUser(t, "known@example.com")

	known := postJSON(t, f.handler.ForgotPassword, map[string]string{"email": "known@example.com"})
	unknown := postJSON(t, f.handler.ForgotPassword, map[string]string{"email": "unknown@example.com"})

	if known.Code != http.StatusOK || unknown.Code != http.StatusOK {
		t.Fatalf("status codes differ or not 200: known=%d unknown=%d", known.Code, unknown.Code)
	}
	// Identical body shape and content for both outcomes.
	if known.Body.String() != unknown.Body.String() {
		t.Fatalf("response bodies differ:\nknown:   %s\nunknown: %s", known.Body.String(), unknown.Body.String())
	}

	// But only the known account got a token and an email.
	if len(f.sender.tokens) != 1 {
		t.Fatalf("expected exactly one email sent, got %d", len(f.sender.tokens))
	}
	records, err := f.tokens.ByEmail(context.Background(), "unknown@example.com")
	if err != nil {
		t.Fatalf("ByEmail: %v", err)
	}
	if len(records) != 0 {
		t.Fatal("no token may be created for an unknown email")
	}
}

func TestForgotPassword_MalformedEmail(t *testing.T) {
	f := newResetFixture(t)

	rec := postJSON(t, f.handler.ForgotPassword, map[string]string{"email": "not-an-email"})
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", rec.Code)
	}

	rec = postJSON(t, f.handler.ForgotPassword, map[string]string{})
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("empty email status = %d, want 400", rec.Code)
	}
}

func TestForgotPassword_DeliveryFailure(t *testing.T) {
	f := newResetFixture(t)
	f.seedUser(t, "user@example.com")
	f.sender.sendErr = fmt.Errorf("provider unavailable")

	rec := postJSON(t, f.handler.ForgotPassword, map[string]string{"email": "user@example.com"})
	if rec.Code != http.StatusInternalServerError {
		t.Fatalf("status = %d, want 500", rec.Code)
	}

	// Rolled back: no live record remains.
	records, err := f.tokens.ByEmail(context.Background(), "user@example.com")
	if err != nil {
		t.Fatalf("ByEmail: %v", err)
	}
	if len(records) != 0 {
		t.Fatalf("expected zero records after rollback, got %d", len(records))
	}
}

func TestResetPassword_EndToEnd(t *testing.T) {
	f := newResetFixture(t)
	user := f.seedUser(t, "user@example.com")

	rec := postJSON(t, f.handler.ForgotPassword, map[string]string{"email": "user@example.com"})
	if rec.Code != http.StatusOK {
		t.Fatalf("forgot-password status = %d", rec.Code)
	}
	raw := f.sender.tokens[0]

	rec = postJSON(t, f.handler.ResetPassword, map[string]string{"token": raw, "password": "Abcdef12"})
	if rec.Code != http.StatusOK {
		t.Fatalf("reset-password status = %d, body %s", rec.Code, rec.Body.String())
	}

	// Directory credential rotated.
	updated, err := f.users.ByID(context.Background(), user.ID)
	if err != nil {
		t.Fatalf("ByID: %v", err)
	}
	if bcrypt.CompareHashAndPassword([]byte(updated.PasswordHash), []byte("Abcdef12")) != nil {
		t.Fatal("directory password was not updated")
	}

	// Token is single-use.
	rec = postJSON(t, f.handler.ResetPassword, map[string]string{"token": raw, "password": "Abcdef12"})
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("second reset status = %d, want 400", rec.Code)
	}
}

func TestResetPassword_ClientErrors(t *testing.T) {
	f := newResetFixture(t)
	f.seedUser(t, "user@example.com")

	// Unknown token.
	rec := postJSON(t, f.handler.ResetPassword, map[string]string{"token": "deadbeef", "password": "Abcdef12"})
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("unknown token status = %d, want 400", rec.Code)
	}

	// Missing token.
	rec = postJSON(t, f.handler.ResetPassword, map[string]string{"password": "Abcdef12"})
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("missing token status = %d, want 400", rec.Code)
	}

	// Policy violation: the policy message is disclosed.
	postJSON(t, f.handler.ForgotPassword, map[string]string{"email": "user@example.com"})
	raw := f.sender.tokens[len(f.sender.tokens)-1]

	rec = postJSON(t, f.handler.ResetPassword, map[string]string{"token": raw, "password": "short1"})
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("weak password status = %d, want 400", rec.Code)
	}
	var body map[string]string
	err := json.Unmarshal(rec.Body.Bytes(), &body)
	if err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if body["error"] != "password must be at least 8 characters" {
		t.Fatalf("unexpected policy message: %q", body["error"])
	}
}

func TestForgotPassword_Revocation(t *testing.T) {
	f := newResetFixture(t)
	f.seedUser(t, "user@example.com")
	ctx := context.Background()

	postJSON(t, f.handler.ForgotPassword, map[string]string{"email": "user@example.com"})
	postJSON(t, f.handler.ForgotPassword, map[string]string{"email": "user@example.com"})

	records, err := f.tokens.ByEmail(ctx, "user@example.com")
	if err != nil {
		t.Fatalf("ByEmail: %v", err)
	}
	if len(records) != 1 {
		t.Fatalf("expected one live token after re-request, got %d", len(records))
	}

	// The first link is dead, the second works.
	first, second := f.sender.tokens[0], f.sender.tokens[1]
	rec := postJSON(t, f.handler.ResetPassword, map[string]string{"token": first, "password": "Abcdef12"})
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("revoked token status = %d, want 400", rec.Code)
	}
	rec = postJSON(t, f.handler.ResetPassword, map[string]string{"token": second, "password": "Abcdef12"})
	if rec.Code != http.StatusOK {
		t.Fatalf("live token status = %d, want 200", rec.Code)
	}
}
