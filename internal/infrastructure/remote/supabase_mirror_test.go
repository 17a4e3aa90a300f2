package remote

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"paksupply/internal/domain/entity"
	"paksupply/internal/domain/repository"
)

func TestSupabaseMirrorFetchAll(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/rest/v1/manufacturers", r.URL.Path)
		assert.Equal(t, "anon", r.Header.Get("apikey"))
		assert.Equal(t, "Bearer anon", r.Header.Get("Authorization"))
		assert.Equal(t, "*", r.URL.Query().Get("select"))

		w.Header().Set("Content-Type", "application/json")
		_, _ = io.WriteString(w, `[{"id":"m-1","email":"a@b.pk","company_name":"Tapal","status":"APPROVED","placement_tier":"PREMIUM","rating":4.5,"rating_count":2}]`)
	}))
	defer srv.Close()

	mirror := NewSupabaseMirror(srv.URL, "anon")
	docs, err := mirror.FetchAll(context.Background(), repository.KindManufacturers)
	require.NoError(t, err)
	require.Len(t, docs, 1)

	var m entity.Manufacturer
	require.NoError(t, json.Unmarshal(docs[0], &m))
	assert.Equal(t, "Tapal", m.CompanyName)
	assert.Equal(t, entity.TierPremium, m.PlacementTier)
	assert.Equal(t, 2, m.RatingCount)
}

func TestSupabaseMirrorUpsert(t *testing.T) {
	var body []map[string]interface{}
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Contains(t, r.Header.Get("Prefer"), "resolution=merge-duplicates")
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		w.WriteHeader(http.StatusCreated)
	}))
	defer srv.Close()

	doc, _ := json.Marshal(entity.Product{ID: "p-1", ManufacturerID: "m-1", Name: "Tea", ImageURLs: []string{"x"}})
	mirror := NewSupabaseMirror(srv.URL, "anon")
	require.NoError(t, mirror.Upsert(context.Background(), repository.KindProducts, "p-1", doc))

	require.Len(t, body, 1)
	assert.Equal(t, "m-1", body[0]["manufacturer_id"])
	assert.Equal(t, `["x"]`, body[0]["image_urls"])
}

func TestSupabaseMirrorUpdateFields(t *testing.T) {
	matched := true
	var query url.Values
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPatch, r.Method)
		query = r.URL.Query()
		w.Header().Set("Content-Type", "application/json")
		if matched {
			_, _ = io.WriteString(w, `[{"id":"m-1"}]`)
			return
		}
		_, _ = io.WriteString(w, `[]`)
	}))
	defer srv.Close()

	mirror := NewSupabaseMirror(srv.URL, "anon")
	fields := map[string]interface{}{"status": entity.ManufacturerApproved, "version": 4}
	require.NoError(t, mirror.UpdateFields(context.Background(), repository.KindManufacturers, "m-1", fields, 3))
	assert.Equal(t, "eq.m-1", query.Get("id"))
	assert.Equal(t, "eq.3", query.Get("version"))

	matched = false
	err := mirror.UpdateFields(context.Background(), repository.KindManufacturers, "m-1", fields, 3)
	assert.ErrorIs(t, err, repository.ErrVersionMismatch)
}

func TestSupabaseMirrorUpdateFieldsFromUnversionedRow(t *testing.T) {
	var query url.Values
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		query = r.URL.Query()
		w.Header().Set("Content-Type", "application/json")
		_, _ = io.WriteString(w, `[{"id":"m-1"}]`)
	}))
	defer srv.Close()

	mirror := NewSupabaseMirror(srv.URL, "anon")
	fields := map[string]interface{}{"rating": 5.0, "version": 1}
	require.NoError(t, mirror.UpdateFields(context.Background(), repository.KindManufacturers, "m-1", fields, 0))
	assert.Equal(t, "(version.is.null,version.eq.0)", query.Get("or"))
	assert.Empty(t, query.Get("version"))
}

func TestSupabaseMirrorErrors(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"message":"relation does not exist"}`, http.StatusNotFound)
	}))
	mirror := NewSupabaseMirror(srv.URL, "anon")

	_, err := mirror.FetchAll(context.Background(), repository.KindProducts)
	assert.Error(t, err)

	srv.Close()
	_, err = mirror.FetchAll(context.Background(), repository.KindProducts)
	assert.Error(t, err, "unreachable remote")
}
