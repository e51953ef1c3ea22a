package web

import (
	"bytes"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"firstaidcheck/internal/catalog"
	"firstaidcheck/internal/db"
	"firstaidcheck/internal/service"
	"firstaidcheck/internal/store"
)

func newTestServer(t *testing.T) *Server {
	t.Helper()
	d, err := db.OpenForTesting()
	require.NoError(t, err)
	t.Cleanup(func() { _ = d.Close() })

	svc := service.NewCheckService(store.NewCheckStore(d), nil, slog.Default())
	return NewServer(svc, slog.Default())
}

func doJSON(t *testing.T, srv *Server, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	srv.ServeHTTP(rec, req)
	return rec
}

func submitBody(box, date string) service.CheckInput {
	in := service.CheckInput{BoxName: box, CheckDate: date}
	for _, e := range catalog.Entries() {
		in.Items = append(in.Items, service.ItemInput{Name: e.Name, Quantity: "1"})
	}
	return in
}

func TestListBoxes(t *testing.T) {
	srv := newTestServer(t)

	rec := doJSON(t, srv, http.MethodGet, "/boxes", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var resp struct {
		Boxes []string `json:"boxes"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, []string{"Back Kitchen", "Cafe", "Upstairs"}, resp.Boxes)
}

func TestNewCheckForm(t *testing.T) {
	srv := newTestServer(t)

	rec := doJSON(t, srv, http.MethodGet, "/checks/new", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var resp struct {
		Items []struct {
			Name            string `json:"item_name"`
			CurrentQuantity int    `json:"current_quantity"`
			StockStatus     string `json:"stock_status"`
		} `json:"items"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.Len(t, resp.Items, len(catalog.Entries()))
	assert.Equal(t, "General First Aid Guidance Card", resp.Items[0].Name)
	assert.Zero(t, resp.Items[0].CurrentQuantity)
	assert.Equal(t, "LOW_STOCK", resp.Items[0].StockStatus)
}

func TestCheckLifecycle(t *testing.T) {
	srv := newTestServer(t)

	// Create.
	rec := doJSON(t, srv, http.MethodPost, "/checks", submitBody("Cafe", "2025-06-01"))
	require.Equal(t, http.StatusCreated, rec.Code)

	var created struct {
		CheckID int64 `json:"check_id"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &created))
	require.NotZero(t, created.CheckID)

	// Read details.
	rec = doJSON(t, srv, http.MethodGet, fmt.Sprintf("/checks/%d", created.CheckID), nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var details struct {
		Check struct {
			BoxName   string `json:"box_name"`
			CheckDate string `json:"check_date"`
		} `json:"check"`
		Items []struct {
			Name         string `json:"item_name"`
			ExpiryStatus string `json:"expiry_status"`
		} `json:"items"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &details))
	assert.Equal(t, "Cafe", details.Check.BoxName)
	assert.Equal(t, "2025-06-01", details.Check.CheckDate)
	assert.Len(t, details.Items, len(catalog.Entries()))

	// Edit in place.
	edit := submitBody("Cafe", "2025-06-02")
	edit.ID = created.CheckID
	rec = doJSON(t, srv, http.MethodPost, "/checks", edit)
	require.Equal(t, http.StatusOK, rec.Code)

	// Listing shows exactly one check.
	rec = doJSON(t, srv, http.MethodGet, "/checks", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	var list struct {
		Checks []struct {
			ID        int64  `json:"id"`
			CheckDate string `json:"check_date"`
		} `json:"checks"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &list))
	require.Len(t, list.Checks, 1)
	assert.Equal(t, "2025-06-02", list.Checks[0].CheckDate)

	// Delete; a second delete is 404.
	rec = doJSON(t, srv, http.MethodDelete, fmt.Sprintf("/checks/%d", created.CheckID), nil)
	require.Equal(t, http.StatusNoContent, rec.Code)
	rec = doJSON(t, srv, http.MethodDelete, fmt.Sprintf("/checks/%d", created.CheckID), nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestEditCheckForm(t *testing.T) {
	srv := newTestServer(t)

	rec := doJSON(t, srv, http.MethodPost, "/checks", submitBody("Upstairs", "2025-06-01"))
	require.Equal(t, http.StatusCreated, rec.Code)
	var created struct {
		CheckID int64 `json:"check_id"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &created))

	rec = doJSON(t, srv, http.MethodGet, fmt.Sprintf("/checks/%d/form", created.CheckID), nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var resp struct {
		Items []struct {
			Name            string `json:"item_name"`
			CurrentQuantity int    `json:"current_quantity"`
		} `json:"items"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.Len(t, resp.Items, len(catalog.Entries()))
	assert.Equal(t, 1, resp.Items[0].CurrentQuantity)
}

func TestSubmitCheckValidationErrors(t *testing.T) {
	srv := newTestServer(t)

	rec := doJSON(t, srv, http.MethodPost, "/checks", submitBody("Broom Cupboard", "2025-06-01"))
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	bad := submitBody("Cafe", "2025-06-01")
	bad.Items[0].Quantity = "abc"
	rec = doJSON(t, srv, http.MethodPost, "/checks", bad)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "error")

	rec = doJSON(t, srv, http.MethodPost, "/checks", submitBody("Cafe", "01/06/2025"))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestGetCheckNotFound(t *testing.T) {
	srv := newTestServer(t)

	rec := doJSON(t, srv, http.MethodGet, "/checks/9999", nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)

	rec = doJSON(t, srv, http.MethodGet, "/checks/notanumber", nil)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestRestockAdviceDisabled(t *testing.T) {
	srv := newTestServer(t)

	rec := doJSON(t, srv, http.MethodPost, "/checks", submitBody("Cafe", "2025-06-01"))
	require.Equal(t, http.StatusCreated, rec.Code)
	var created struct {
		CheckID int64 `json:"check_id"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &created))

	rec = doJSON(t, srv, http.MethodGet, fmt.Sprintf("/checks/%d/restock-advice", created.CheckID), nil)
	assert.Equal(t, http.StatusNotImplemented, rec.Code)
}

func TestSecurityHeaders(t *testing.T) {
	srv := newTestServer(t)

	rec := doJSON(t, srv, http.MethodGet, "/boxes", nil)
	assert.Equal(t, "nosniff", rec.Header().Get("X-Content-Type-Options"))
	assert.Equal(t, "DENY", rec.Header().Get("X-Frame-Options"))
}
