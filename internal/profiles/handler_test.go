package profiles

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"

	"resume-tailor/internal/shared/server/middleware"
	"resume-tailor/internal/users"
)

func testRouter(repo Repo, usersRepo users.Repo) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	api := r.Group("/api/v1")
	api.Use(middleware.Identity())
	NewHandler(repo, usersRepo).RegisterRoutes(api)
	return r
}

func TestPutThenGetProfile(t *testing.T) {
	r := testRouter(NewMemoryRepo(), users.NewMemoryRepo())

	body := `{
		"personalInformation": {"name": "Ada"},
		"skills": [{"category": "Languages", "items": ["Go"]}],
		"sectionPolicies": {"awards": "omit"}
	}`
	put := httptest.NewRequest(http.MethodPut, "/api/v1/profile", strings.NewReader(body))
	put.Header.Set("X-User-Id", "user-1")
	put.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, put)
	if w.Code != http.StatusOK {
		t.Fatalf("put status %d: %s", w.Code, w.Body.String())
	}

	get := httptest.NewRequest(http.MethodGet, "/api/v1/profile", nil)
	get.Header.Set("X-User-Id", "user-1")
	w = httptest.NewRecorder()
	r.ServeHTTP(w, get)
	if w.Code != http.StatusOK {
		t.Fatalf("get status %d", w.Code)
	}

	var profile Profile
	if err := json.Unmarshal(w.Body.Bytes(), &profile); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if profile.PersonalInfo["name"] != "Ada" {
		t.Fatalf("profile %+v", profile)
	}
	if profile.UserID != "user-1" {
		t.Fatalf("user id %q", profile.UserID)
	}
}

func TestPutProfileProvisionsUser(t *testing.T) {
	usersRepo := users.NewMemoryRepo()
	r := testRouter(NewMemoryRepo(), usersRepo)

	body := `{"personalInformation": {"name": "Ada"}}`
	put := httptest.NewRequest(http.MethodPut, "/api/v1/profile", strings.NewReader(body))
	put.Header.Set("X-User-Id", "user-1")
	put.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, put)
	if w.Code != http.StatusOK {
		t.Fatalf("put status %d: %s", w.Code, w.Body.String())
	}

	ok, err := usersRepo.Exists(put.Context(), "user-1")
	if err != nil {
		t.Fatalf("Exists: %v", err)
	}
	if !ok {
		t.Fatal("profile write did not provision the owning user")
	}
}

func TestPutProfileRejectsUnknownSection(t *testing.T) {
	r := testRouter(NewMemoryRepo(), users.NewMemoryRepo())

	body := `{"sectionPolicies": {"hobbies": "omit"}}`
	put := httptest.NewRequest(http.MethodPut, "/api/v1/profile", strings.NewReader(body))
	put.Header.Set("X-User-Id", "user-1")
	put.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, put)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("status %d, want 400", w.Code)
	}
}

func TestGetProfileMissing(t *testing.T) {
	r := testRouter(NewMemoryRepo(), users.NewMemoryRepo())

	get := httptest.NewRequest(http.MethodGet, "/api/v1/profile", nil)
	get.Header.Set("X-User-Id", "user-1")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, get)
	if w.Code != http.StatusNotFound {
		t.Fatalf("status %d, want 404", w.Code)
	}
}
