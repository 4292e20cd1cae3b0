package client

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClientSendsBearerToken(t *testing.T) {
	var gotAuth string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		json.NewEncoder(w).Encode(map[string]interface{}{"success": true, "data": []interface{}{}})
	}))
	defer srv.Close()

	c := New(srv.URL, WithToken("id-token"))
	_, err := c.ListUsers(context.Background())

	assert.NoError(t, err)
	assert.Equal(t, "Bearer id-token", gotAuth)
}

func TestClientDecodesEnvelope(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "/users/uid-1", r.URL.Path)
		json.NewEncoder(w).Encode(map[string]interface{}{
			"success": true,
			"data":    map[string]interface{}{"id": "uid-1", "email": "a@example.com"},
		})
	}))
	defer srv.Close()

	c := New(srv.URL)
	user, err := c.GetUser(context.Background(), "uid-1")

	assert.NoError(t, err)
	assert.Equal(t, "uid-1", user.ID)
	assert.Equal(t, "a@example.com", user.Email)
}

func TestClientTranslatesErrorBody(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusForbidden)
		json.NewEncoder(w).Encode(map[string]string{"error": "Admin privileges required"})
	}))
	defer srv.Close()

	c := New(srv.URL, WithToken("id-token"))
	_, err := c.ListUsers(context.Background())

	var apiErr *APIError
	if assert.ErrorAs(t, err, &apiErr) {
		assert.Equal(t, http.StatusForbidden, apiErr.Status)
		assert.Equal(t, "Admin privileges required", apiErr.Message)
	}
}

func TestClientEncodesQueryParams(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "approved", r.URL.Query().Get("status"))
		assert.Equal(t, "true", r.URL.Query().Get("published"))
		json.NewEncoder(w).Encode(map[string]interface{}{"success": true, "data": []interface{}{}})
	}))
	defer srv.Close()

	published := true
	c := New(srv.URL)
	_, err := c.ListProviders(context.Background(), ProviderQuery{Status: "approved", Published: &published})

	assert.NoError(t, err)
}

func TestClientStatusPatch(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPatch, r.Method)
		assert.Equal(t, "/bookings/b1/status", r.URL.Path)

		var body map[string]string
		json.NewDecoder(r.Body).Decode(&body)
		assert.Equal(t, "confirmed", body["status"])

		json.NewEncoder(w).Encode(map[string]interface{}{
			"success": true,
			"data":    map[string]interface{}{"id": "b1", "status": "confirmed"},
		})
	}))
	defer srv.Close()

	c := New(srv.URL, WithToken("id-token"))
	booking, err := c.UpdateBookingStatus(context.Background(), "b1", "confirmed")

	assert.NoError(t, err)
	assert.Equal(t, "confirmed", booking.Status)
}
