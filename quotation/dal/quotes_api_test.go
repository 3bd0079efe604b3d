package dal

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"

	"github.com/ferremax/portal/quotation/domain"
)

func TestQuotesAPI_CreateQuote(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/v1/documents/quotations", r.URL.Path)
		assert.Equal(t, "Bearer secret-key", r.Header.Get("Authorization"))

		var payload domain.Quotation
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&payload))
		assert.Equal(t, "Acme", payload.Client.Name)

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		_ = json.NewEncoder(w).Encode(map[string]string{
			"id":     "doc-1",
			"number": "FM-Q-000042",
		})
	}))
	defer server.Close()

	api := NewQuotesAPI(server.URL, "secret-key")

	created, err := api.CreateQuote(context.Background(), &domain.Quotation{
		Client: domain.ClientContact{Name: "Acme", Email: "a@acme.com"},
		Status: domain.StatusSent,
	})

	assert.NoError(t, err)
	assert.Equal(t, "doc-1", created.ID)
	assert.Equal(t, "FM-Q-000042", created.Number)
}

func TestQuotesAPI_CreateQuoteServerError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusBadGateway)
		_ = json.NewEncoder(w).Encode(map[string]string{
			"error": "upstream unavailable",
		})
	}))
	defer server.Close()

	api := NewQuotesAPI(server.URL, "secret-key")

	created, err := api.CreateQuote(context.Background(), &domain.Quotation{})

	assert.Nil(t, created)
	assert.ErrorContains(t, err, "upstream unavailable")
}
