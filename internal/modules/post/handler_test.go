package post

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

func TestAdminRoutesRejectBadTokens(t *testing.T) {
	r, db := newTestRouter(t)

	body := `{"title":"Intruder Post","content":"should never be written","category":"buying-tips"}`
	for _, token := range []string{"", "garbage", "a.b.c"} {
		w := doJSON(t, r, http.MethodPost, "/admin/posts", token, body)
		if w.Code != http.StatusUnauthorized {
			t.Errorf("token %q: status = %d, want %d", token, w.Code, http.StatusUnauthorized)
		}
	}

	// Rejection must happen before any write.
	var count int64
	if err := db.Model(&models.PostModel{}).Count(&count).Error; err != nil {
		t.Fatalf("count posts: %v", err)
	}
	if count != 0 {
		t.Errorf("post count = %d after rejected requests, want 0", count)
	}
}

func TestAdminCreateListDelete(t *testing.T) {
	r, _ := newTestRouter(t)
	token, err := jwt.Sign()
	if err != nil {
		t.Fatalf("sign token: %v", err)
	}

	w := doJSON(t, r, http.MethodPost, "/admin/posts", token,
		`{"title":"Spring Market Report","content":"Inventory is up across the metro.","category":"market-insights"}`)
	if w.Code != http.StatusCreated {
		t.Fatalf("create status = %d, want %d (body: %s)", w.Code, http.StatusCreated, w.Body.String())
	}

	var created models.PostModel
	if err := json.Unmarshal(w.Body.Bytes(), &created); err != nil {
		t.Fatalf("unmarshal created post: %v", err)
	}
	if created.Slug != "spring-market-report" {
		t.Errorf("slug = %q, want %q", created.Slug, "spring-market-report")
	}

	// Same title again collides on the derived slug.
	w = doJSON(t, r, http.MethodPost, "/admin/posts", token,
		`{"title":"Spring Market Report","content":"Duplicate body text here.","category":"market-insights"}`)
	if w.Code != http.StatusConflict {
		t.Errorf("duplicate create status = %d, want %d", w.Code, http.StatusConflict)
	}

	w = doJSON(t, r, http.MethodDelete, "/admin/posts/"+created.ID, token, "")
	if w.Code != http.StatusNoContent {
		t.Errorf("delete status = %d, want %d", w.Code, http.StatusNoContent)
	}
	w = doJSON(t, r, http.MethodDelete, "/admin/posts/"+created.ID, token, "")
	if w.Code != http.StatusNotFound {
		t.Errorf("second delete status = %d, want %d", w.Code, http.StatusNotFound)
	}
}

func TestAdminCreateValidation(t *testing.T) {
	r, _ := newTestRouter(t)
	token, err := jwt.Sign()
	if err != nil {
		t.Fatalf("sign token: %v", err)
	}

	cases := []struct {
		name string
		body string
	}{
		{"missing title", `{"content":"body text goes here","category":"buying-tips"}`},
		{"bad category", `{"title":"T","content":"body text","category":"not-a-category"}`},
		{"bad thumbnail url", `{"title":"T","content":"body text","category":"buying-tips","thumbnailUrl":"not a url"}`},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			w := doJSON(t, r, http.MethodPost, "/admin/posts", token, tc.body)
			if w.Code != http.StatusUnprocessableEntity {
				t.Errorf("status = %d, want %d", w.Code, http.StatusUnprocessableEntity)
			}
		})
	}
}

func TestPublicListEndpoint(t *testing.T) {
	r, db := newTestRouter(t)
	seedPosts(t, db, 3, "buying-tips")

	w := doJSON(t, r, http.MethodGet, "/posts", "", "")
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d", w.Code, http.StatusOK)
	}

	var resp struct {
		Posts      []models.PostModel `json:"posts"`
		Pagination struct {
			Page       int   `json:"page"`
			PageSize   int   `json:"pageSize"`
			Total      int64 `json:"total"`
			TotalPages int   `json:"totalPages"`
		} `json:"pagination"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("unmarshal list: %v", err)
	}
	if len(resp.Posts) != 3 || resp.Pagination.Total != 3 || resp.Pagination.TotalPages != 1 {
		t.Errorf("unexpected listing: %s", w.Body.String())
	}
	if resp.Pagination.Page != 1 || resp.Pagination.PageSize != 9 {
		t.Errorf("defaults not applied: %+v", resp.Pagination)
	}
}

func TestPublicListRejectsOversizePage(t *testing.T) {
	r, _ := newTestRouter(t)

	w := doJSON(t, r, http.MethodGet, "/posts?pageSize=51", "", "")
	if w.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want %d", w.Code, http.StatusBadRequest)
	}

	w = doJSON(t, r, http.MethodGet, "/posts?pageSize=50", "", "")
	if w.Code != http.StatusOK {
		t.Errorf("pageSize=50 status = %d, want %d", w.Code, http.StatusOK)
	}
}

func TestGetBySlugRendersHTML(t *testing.T) {
	r, db := newTestRouter(t)

	p := models.PostModel{
		Slug:     "welcome-home",
		Title:    "Welcome Home",
		Content:  "## Why buy now\n\nRates have settled.",
		Category: "buying-tips",
	}
	if err := db.Create(&p).Error; err != nil {
		t.Fatalf("seed post: %v", err)
	}

	w := doJSON(t, r, http.MethodGet, "/posts/welcome-home", "", "")
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d", w.Code, http.StatusOK)
	}

	var detail struct {
		Slug        string `json:"slug"`
		ContentHTML string `json:"contentHtml"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &detail); err != nil {
		t.Fatalf("unmarshal detail: %v", err)
	}
	if detail.Slug != "welcome-home" {
		t.Errorf("slug = %q", detail.Slug)
	}
	if !strings.Contains(detail.ContentHTML, "<h2") {
		t.Errorf("contentHtml %q missing rendered heading", detail.ContentHTML)
	}

	w = doJSON(t, r, http.MethodGet, "/posts/no-such-post", "", "")
	if w.Code != http.StatusNotFound {
		t.Errorf("missing slug status = %d, want %d", w.Code, http.StatusNotFound)
	}
}

func TestFeaturedEndpointEmptyStore(t *testing.T) {
	r, _ := newTestRouter(t)

	w := doJSON(t, r, http.MethodGet, "/posts/featured", "", "")
	if w.Code != http.StatusOK {
		t.Errorf("status = %d, want %d", w.Code, http.StatusOK)
	}
	if body := strings.TrimSpace(w.Body.String()); body != "null" {
		t.Errorf("empty-store featured body = %q, want null", body)
	}
}
