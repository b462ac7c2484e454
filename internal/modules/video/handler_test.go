package video

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/harborview/realty-core/internal/middleware"
	"github.com/harborview/realty-core/internal/models"
	"github.com/harborview/realty-core/internal/pkg/jwt"
	"gorm.io/gorm"
)

func newTestRouter(t *testing.T) (*gin.Engine, *gorm.DB) {
	t.Helper()
	gin.SetMode(gin.TestMode)
	jwt.SetSecret("test-secret")

	db := newTestDB(t)
	r := gin.New()
	NewHandler(NewService(db)).RegisterRoutes(r.Group(""), middleware.Auth())
	return r, db
}

func doJSON(t *testing.T, r *gin.Engine, method, path, token, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

const validVideoBody = `{
	"videoUrl": "https://video.example.com/v/tour",
	"title": "Open House Tour",
	"category": "buying",
	"coverImageUrl": "https://cdn.example.com/covers/tour.jpg",
	"duration": "05:30"
}`

func TestAdminCreateRejectsBadDuration(t *testing.T) {
	r, _ := newTestRouter(t)
	token, err := jwt.Sign()
	if err != nil {
		t.Fatalf("sign token: %v", err)
	}

	body := strings.Replace(validVideoBody, `"05:30"`, `"five minutes"`, 1)
	w := doJSON(t, r, http.MethodPost, "/admin/videos", token, body)
	if w.Code != http.StatusUnprocessableEntity {
		t.Errorf("bad duration status = %d, want %d", w.Code, http.StatusUnprocessableEntity)
	}

	w = doJSON(t, r, http.MethodPost, "/admin/videos", token, validVideoBody)
	if w.Code != http.StatusCreated {
		t.Errorf("valid create status = %d, want %d (body: %s)", w.Code, http.StatusCreated, w.Body.String())
	}
}

func TestAdminCreateConflict(t *testing.T) {
	r, _ := newTestRouter(t)
	token, err := jwt.Sign()
	if err != nil {
		t.Fatalf("sign token: %v", err)
	}

	if w := doJSON(t, r, http.MethodPost, "/admin/videos", token, validVideoBody); w.Code != http.StatusCreated {
		t.Fatalf("create status = %d (body: %s)", w.Code, w.Body.String())
	}
	w := doJSON(t, r, http.MethodPost, "/admin/videos", token, validVideoBody)
	if w.Code != http.StatusConflict {
		t.Errorf("duplicate create status = %d, want %d", w.Code, http.StatusConflict)
	}
}

func TestPublicVideosEndpoint(t *testing.T) {
	r, db := newTestRouter(t)

	seeds := []models.VideoModel{
		{VideoURL: "https://video.example.com/v/1", Title: "A", Category: "buying", CoverImageURL: "https://cdn.example.com/1.jpg", Duration: "01:00"},
		{VideoURL: "https://video.example.com/v/2", Title: "B", Category: "selling", CoverImageURL: "https://cdn.example.com/2.jpg", Duration: "02:00"},
	}
	for i := range seeds {
		if err := db.Create(&seeds[i]).Error; err != nil {
			t.Fatalf("seed video: %v", err)
		}
	}

	w := doJSON(t, r, http.MethodGet, "/videos", "", "")
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d", w.Code, http.StatusOK)
	}
	var resp struct {
		Data []models.VideoModel `json:"data"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("unmarshal list: %v", err)
	}
	if len(resp.Data) != 2 {
		t.Errorf("listing has %d videos, want 2", len(resp.Data))
	}

	w = doJSON(t, r, http.MethodGet, "/videos?category=selling", "", "")
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d", w.Code, http.StatusOK)
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("unmarshal filtered list: %v", err)
	}
	if len(resp.Data) != 1 || resp.Data[0].Category != "selling" {
		t.Errorf("filtered listing wrong: %s", w.Body.String())
	}
}

func TestAdminVideosRequireAuth(t *testing.T) {
	r, db := newTestRouter(t)

	w := doJSON(t, r, http.MethodPost, "/admin/videos", "", validVideoBody)
	if w.Code != http.StatusUnauthorized {
		t.Errorf("status = %d, want %d", w.Code, http.StatusUnauthorized)
	}

	var count int64
	if err := db.Model(&models.VideoModel{}).Count(&count).Error; err != nil {
		t.Fatalf("count videos: %v", err)
	}
	if count != 0 {
		t.Errorf("video count = %d after rejected request, want 0", count)
	}
}
