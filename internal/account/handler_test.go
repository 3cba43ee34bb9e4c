package account

import (
	"io"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
)

func newTestApp() (*fiber.App, *Handler) {
	handler := NewHandler(NewService(NewInMemoryRepository(nil)))
	app := fiber.New()
	handler.RegisterPublicRoutes(app)
	return app, handler
}

func TestSignUpAndSignIn(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")
	app, _ := newTestApp()

	req := httptest.NewRequest("POST", "/api/v1/sign-up", strings.NewReader(`{"email":"a@example.com","password":"hunter22","firstName":"Ann"}`))
	req.Header.Set("Content-Type", "application/json")
	res, err := app.Test(req)
	if err != nil {
		t.Fatalf("sign-up request failed: %v", err)
	}
	if res.StatusCode != fiber.StatusCreated {
		t.Fatalf("expected 201 for sign-up, got %d", res.StatusCode)
	}
	b, _ := io.ReadAll(res.Body)
	if strings.Contains(string(b), "hunter22") {
		t.Fatalf("sign-up response leaked the password: %s", b)
	}

	req2 := httptest.NewRequest("POST", "/api/v1/sign-in", strings.NewReader(`{"email":"a@example.com","password":"hunter22"}`))
	req2.Header.Set("Content-Type", "application/json")
	res2, err := app.Test(req2)
	if err != nil {
		t.Fatalf("sign-in request failed: %v", err)
	}
	if res2.StatusCode != fiber.StatusOK {
		t.Fatalf("expected 200 for sign-in, got %d", res2.StatusCode)
	}
	b2, _ := io.ReadAll(res2.Body)
	if !strings.Contains(string(b2), "token") {
		t.Fatalf("sign-in response missing token: %s", b2)
	}
}

func TestSignUp_DuplicateEmail(t *testing.T) {
	app, _ := newTestApp()

	body := `{"email":"dup@example.com","password":"pw123456"}`
	req := httptest.NewRequest("POST", "/api/v1/sign-up", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	if _, err := app.Test(req); err != nil {
		t.Fatalf("first sign-up failed: %v", err)
	}

	req2 := httptest.NewRequest("POST", "/api/v1/sign-up", strings.NewReader(body))
	req2.Header.Set("Content-Type", "application/json")
	res2, err := app.Test(req2)
	if err != nil {
		t.Fatalf("second sign-up failed: %v", err)
	}
	if res2.StatusCode != fiber.StatusConflict {
		t.Fatalf("expected 409 for duplicate email, got %d", res2.StatusCode)
	}
}

func TestSignIn_WrongPassword(t *testing.T) {
	app, _ := newTestApp()

	req := httptest.NewRequest("POST", "/api/v1/sign-up", strings.NewReader(`{"email":"b@example.com","password":"rightpass"}`))
	req.Header.Set("Content-Type", "application/json")
	if _, err := app.Test(req); err != nil {
		t.Fatalf("sign-up failed: %v", err)
	}

	req2 := httptest.NewRequest("POST", "/api/v1/sign-in", strings.NewReader(`{"email":"b@example.com","password":"wrongpass"}`))
	req2.Header.Set("Content-Type", "application/json")
	res2, err := app.Test(req2)
	if err != nil {
		t.Fatalf("sign-in failed: %v", err)
	}
	if res2.StatusCode != fiber.StatusUnauthorized {
		t.Fatalf("expected 401 for wrong password, got %d", res2.StatusCode)
	}
}

func TestOptionalUserID_Anonymous(t *testing.T) {
	app := fiber.New()
	var gotID int
	var gotOK bool
	app.Get("/probe", func(c *fiber.Ctx) error {
		gotID, gotOK = OptionalUserID(c)
		return c.SendString("ok")
	})

	if _, err := app.Test(httptest.NewRequest("GET", "/probe", nil)); err != nil {
		t.Fatalf("probe request failed: %v", err)
	}
	if gotOK || gotID != 0 {
		t.Fatalf("anonymous request should yield (0,false), got (%d,%v)", gotID, gotOK)
	}
}
