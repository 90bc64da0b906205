package app

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"photo-backend/internal/models"
	"photo-backend/internal/services"
	"photo-backend/internal/testutil"
)

type fixture struct {
	app            *fiber.App
	userToken      string
	notExistsToken string
}

// newFixture seeds one user ("mimam") and one photo ("Photo 1") owned by that user.
func newFixture(t *testing.T) *fixture {
	t.Helper()
	ctx := context.Background()

	users := testutil.NewUsers()
	photos := testutil.NewPhotos(users)
	tokens := services.NewTokenManager("test-secret", time.Hour)

	hash, err := services.HashPassword("password", bcrypt.MinCost)
	require.NoError(t, err)
	owner := &models.User{Username: "mimam", Email: "mimam@mail.com", Password: hash}
	require.NoError(t, users.Create(ctx, owner))
	require.NoError(t, photos.Create(ctx, &models.Photo{
		Title:    "Photo 1",
		Caption:  "Photo 1 caption",
		ImageURL: "http://image.com/photo.png",
		UserID:   owner.ID,
	}))

	userToken, err := tokens.Sign(1, "mimam@mail.com")
	require.NoError(t, err)
	notExistsToken, err := tokens.Sign(99, "notexists@mail.com")
	require.NoError(t, err)

	return &fixture{
		app: NewServer(Deps{
			Users:      users,
			Photos:     photos,
			Tokens:     tokens,
			BcryptCost: bcrypt.MinCost,
		}),
		userToken:      userToken,
		notExistsToken: notExistsToken,
	}
}

func (f *fixture) do(t *testing.T, method, path, authorization string, body any) (int, []byte) {
	t.Helper()

	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	}

	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)
	}
	if authorization != "" {
		req.Header.Set(fiber.HeaderAuthorization, authorization)
	}

	resp, err := f.app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return resp.StatusCode, raw
}

func decode[T any](t *testing.T, raw []byte) T {
	t.Helper()
	var v T
	require.NoError(t, json.Unmarshal(raw, &v), string(raw))
	return v
}

func messageOf(t *testing.T, raw []byte) string {
	t.Helper()
	return decode[map[string]any](t, raw)["message"].(string)
}

func TestListPhotos(t *testing.T) {
	f := newFixture(t)

	status, raw := f.do(t, fiber.MethodGet, "/photos", "Bearer "+f.userToken, nil)
	require.Equal(t, fiber.StatusOK, status, string(raw))

	photos := decode[[]map[string]any](t, raw)
	require.Len(t, photos, 1)

	got := photos[0]
	assert.Equal(t, float64(1), got["id"])
	assert.Equal(t, "Photo 1", got["title"])
	assert.Equal(t, "Photo 1 caption", got["caption"])
	assert.Equal(t, "http://image.com/photo.png", got["image_url"])
	assert.Equal(t, float64(1), got["UserId"])
	assert.IsType(t, "", got["createdAt"])
	assert.IsType(t, "", got["updatedAt"])
	assert.Len(t, got, 7)
}

func TestProtectedRoutesRejectBadAuth(t *testing.T) {
	f := newFixture(t)

	routes := []struct {
		method string
		path   string
	}{
		{fiber.MethodGet, "/photos"},
		{fiber.MethodPost, "/photos"},
		{fiber.MethodGet, "/photos/1"},
	}

	cases := []struct {
		name    string
		header  string
		message string
	}{
		{"no authorization", "", "unauthorized"},
		{"no token provided", "Bearer ", "invalid token"},
		{"malformed token", "Bearer wrong.token.input", "invalid token"},
		{"user does not exist", "Bearer " + f.notExistsToken, "unauthorized"},
	}

	for _, route := range routes {
		for _, tc := range cases {
			t.Run(route.method+" "+route.path+" "+tc.name, func(t *testing.T) {
				status, raw := f.do(t, route.method, route.path, tc.header, nil)
				assert.Equal(t, fiber.StatusUnauthorized, status)
				assert.Regexp(t, "(?i)"+tc.message, messageOf(t, raw))
			})
		}
	}
}

func TestCreateAndFetchPhoto(t *testing.T) {
	f := newFixture(t)
	auth := "Bearer " + f.userToken

	status, raw := f.do(t, fiber.MethodPost, "/photos", auth, map[string]string{
		"title":     "my photo 1",
		"image_url": "https://unsplash.com/s/photos/view",
	})
	require.Equal(t, fiber.StatusCreated, status, string(raw))

	created := decode[map[string]any](t, raw)
	assert.Equal(t, float64(2), created["id"])
	assert.Equal(t, "my photo 1", created["title"])
	assert.Equal(t, "https://unsplash.com/s/photos/view", created["image_url"])
	assert.Equal(t, "MY PHOTO 1 https://unsplash.com/s/photos/view", created["caption"])
	assert.Equal(t, float64(1), created["UserId"])
	assert.IsType(t, "", created["createdAt"])

	status, raw = f.do(t, fiber.MethodGet, "/photos/2", auth, nil)
	require.Equal(t, fiber.StatusOK, status, string(raw))

	got := decode[map[string]any](t, raw)
	assert.Equal(t, float64(2), got["id"])
	assert.Equal(t, "MY PHOTO 1 https://unsplash.com/s/photos/view", got["caption"])
	assert.NotContains(t, got, "UserId")
	assert.Equal(t, map[string]any{
		"id":       float64(1),
		"username": "mimam",
		"email":    "mimam@mail.com",
	}, got["User"])
}

func TestCreatePhotoValidation(t *testing.T) {
	f := newFixture(t)
	auth := "Bearer " + f.userToken

	status, raw := f.do(t, fiber.MethodPost, "/photos", auth, map[string]string{
		"title":     "my photo 1",
		"image_url": "",
	})
	require.Equal(t, fiber.StatusBadRequest, status)

	body := decode[map[string][]string](t, raw)
	assert.Equal(t, []string{"Image URL cannot be an empty string", "Wrong URL format"}, body["message"])

	status, raw = f.do(t, fiber.MethodPost, "/photos", auth, nil)
	require.Equal(t, fiber.StatusBadRequest, status)
	body = decode[map[string][]string](t, raw)
	assert.Equal(t, []string{
		"Title cannot be an empty string",
		"Image URL cannot be an empty string",
		"Wrong URL format",
	}, body["message"])
}

func TestCreatePhotoMalformedBody(t *testing.T) {
	f := newFixture(t)

	req := httptest.NewRequest(fiber.MethodPost, "/photos", strings.NewReader("{not json"))
	req.Header.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)
	req.Header.Set(fiber.HeaderAuthorization, "Bearer "+f.userToken)

	resp, err := f.app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
}

func TestGetPhotoNotFound(t *testing.T) {
	f := newFixture(t)
	auth := "Bearer " + f.userToken

	for _, path := range []string{"/photos/10", "/photos/0", "/photos/abc"} {
		t.Run(path, func(t *testing.T) {
			status, raw := f.do(t, fiber.MethodGet, path, auth, nil)
			assert.Equal(t, fiber.StatusNotFound, status)
			assert.Regexp(t, "(?i)data not found", messageOf(t, raw))
		})
	}
}

func TestRegisterAndLogin(t *testing.T) {
	f := newFixture(t)

	status, raw := f.do(t, fiber.MethodPost, "/users/register", "", map[string]string{
		"username": "budi",
		"email":    "budi@mail.com",
		"password": "password",
	})
	require.Equal(t, fiber.StatusCreated, status, string(raw))
	assert.Equal(t, map[string]any{
		"id":       float64(2),
		"username": "budi",
		"email":    "budi@mail.com",
	}, decode[map[string]any](t, raw))

	status, raw = f.do(t, fiber.MethodPost, "/users/register", "", map[string]string{
		"username": "budi2",
		"email":    "budi@mail.com",
		"password": "password",
	})
	require.Equal(t, fiber.StatusBadRequest, status)
	assert.Equal(t, []string{"Email already used"}, decode[map[string][]string](t, raw)["message"])

	status, raw = f.do(t, fiber.MethodPost, "/users/login", "", map[string]string{
		"email":    "budi@mail.com",
		"password": "wrong-password",
	})
	require.Equal(t, fiber.StatusUnauthorized, status)
	assert.Equal(t, "invalid email or password", messageOf(t, raw))

	status, raw = f.do(t, fiber.MethodPost, "/users/login", "", map[string]string{
		"email":    "budi@mail.com",
		"password": "password",
	})
	require.Equal(t, fiber.StatusOK, status, string(raw))
	token := decode[map[string]string](t, raw)["access_token"]
	require.NotEmpty(t, token)

	status, raw = f.do(t, fiber.MethodGet, "/photos", "Bearer "+token, nil)
	require.Equal(t, fiber.StatusOK, status)
	assert.Len(t, decode[[]map[string]any](t, raw), 1)
}

func TestHealthAndMetrics(t *testing.T) {
	f := newFixture(t)

	status, raw := f.do(t, fiber.MethodGet, "/health", "", nil)
	assert.Equal(t, fiber.StatusOK, status)
	assert.JSONEq(t, `{"status":"ok"}`, string(raw))

	// generate one rejection so the counter has a series
	f.do(t, fiber.MethodGet, "/photos", "", nil)

	status, raw = f.do(t, fiber.MethodGet, "/metrics", "", nil)
	assert.Equal(t, fiber.StatusOK, status)
	assert.Contains(t, string(raw), "photo_backend_auth_rejections_total")
}
