// README: UI config endpoint tests.
package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"

	"dreamstate/internal/modules/uiconfig"
)

type stubActionSource struct {
	items  []uiconfig.ActionItem
	cached bool
	err    error
}

func (s *stubActionSource) Actions(_ context.Context) ([]uiconfig.ActionItem, bool, error) {
	return s.items, s.cached, s.err
}

func getActions(t *testing.T, src ActionSource) *httptest.ResponseRecorder {
	t.Helper()
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/api/ui/actions", NewUIHandler(src).List)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/ui/actions", nil))
	return w
}

func TestUIHandler_NotConfigured(t *testing.T) {
	w := getActions(t, nil)
	if w.Code != http.StatusInternalServerError {
		t.Errorf("status = %d, want 500 when no source is wired", w.Code)
	}
}

func TestUIHandler_List(t *testing.T) {
	src := &stubActionSource{
		items:  []uiconfig.ActionItem{{Label: "Book now", Type: "link", Available: true}},
		cached: true,
	}
	w := getActions(t, src)
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", w.Code)
	}

	var resp struct {
		Items  []uiconfig.ActionItem `json:"items"`
		Cached bool                  `json:"cached"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if len(resp.Items) != 1 || resp.Items[0].Label != "Book now" {
		t.Errorf("items = %+v", resp.Items)
	}
	if !resp.Cached {
		t.Error("cached flag not passed through")
	}
}

func TestUIHandler_SourceError(t *testing.T) {
	w := getActions(t, &stubActionSource{err: errors.New("sheet unreachable")})
	if w.Code != http.StatusInternalServerError {
		t.Errorf("status = %d, want 500", w.Code)
	}
}
