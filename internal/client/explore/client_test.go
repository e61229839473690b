package explore

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/light-bringer/ecofinds-storefront/internal/app/catalog/domain"
	"github.com/light-bringer/ecofinds-storefront/internal/testutil"
)

func TestClient_Fetch(t *testing.T) {
	var gotQuery string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/products", r.URL.Path)
		gotQuery = r.URL.RawQuery
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(pageOf([]string{"p-1"}, 2, 3))
	}))
	defer srv.Close()

	c := domain.DefaultCriteria().WithPage(2)
	c.Query = "wool coat"
	c.Brand = "Patagonia"

	page, err := NewClient(srv.URL+"/", nil).Fetch(context.Background(), c)
	require.NoError(t, err)
	assert.Equal(t, []string{"p-1"}, testutil.IDs(page.Results))
	assert.Equal(t, 3, page.Total)
	assert.Equal(t, "brand=Patagonia&limit=20&page=2&q=wool+coat&sort=newest", gotQuery)
}

func TestClient_FetchError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusBadRequest)
		_, _ = w.Write([]byte(`{"error":"invalid min_price \"x\": must be a number"}`))
	}))
	defer srv.Close()

	_, err := NewClient(srv.URL, nil).Fetch(context.Background(), domain.DefaultCriteria())
	var statusErr *StatusError
	require.ErrorAs(t, err, &statusErr)
	assert.Equal(t, http.StatusBadRequest, statusErr.Code)
	assert.Contains(t, statusErr.Message, "min_price")
}

func TestClient_DrivesAccumulator(t *testing.T) {
	catalog := testutil.Products(5)
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		page := 1
		if r.URL.Query().Get("page") == "2" {
			page = 2
		}
		start := (page - 1) * 3
		end := min(start+3, len(catalog))
		_ = json.NewEncoder(w).Encode(domain.ResultPage{
			Results:    catalog[start:end],
			Total:      len(catalog),
			Page:       page,
			Limit:      3,
			TotalPages: 2,
		})
	}))
	defer srv.Close()

	c := domain.DefaultCriteria()
	c.Limit = 3
	a := NewAccumulator(context.Background(), NewClient(srv.URL, nil), c)

	a.Load()
	a.Wait()
	require.True(t, a.LoadMore())
	a.Wait()

	v := a.State()
	assert.Equal(t, testutil.IDs(catalog), testutil.IDs(v.Items))
	assert.False(t, v.HasMore)
	assert.False(t, a.LoadMore())
}
