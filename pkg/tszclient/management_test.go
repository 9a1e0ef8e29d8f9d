package tszclient

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestListPatterns(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodGet, r.Method)
		require.Equal(t, "/patterns", r.URL.Path)
		require.Equal(t, "admin-key", r.Header.Get(HeaderAdminKey))
		io.WriteString(w, `[{"ID": 1, "Name": "email", "Regex": "\\S+@\\S+", "IsActive": true}]`)
	}))
	defer server.Close()

	client, err := New(Config{BaseURL: server.URL, APIKey: "admin-key"})
	require.NoError(t, err)

	patterns, err := client.ListPatterns(context.Background())
	require.NoError(t, err)
	require.Len(t, patterns, 1)
	assert.Equal(t, 1, patterns[0].ID)
	assert.Equal(t, "email", patterns[0].Name)
	assert.True(t, patterns[0].IsActive)
}

func TestCreatePattern(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)

		var got Pattern
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		require.Equal(t, "ssn", got.Name)

		got.ID = 7
		json.NewEncoder(w).Encode(got)
	}))
	defer server.Close()

	client, err := New(Config{BaseURL: server.URL, APIKey: "admin-key"})
	require.NoError(t, err)

	created, err := client.CreatePattern(context.Background(), Pattern{
		Name:     "ssn",
		Regex:    `\d{3}-\d{2}-\d{4}`,
		IsActive: true,
	})
	require.NoError(t, err)
	assert.Equal(t, 7, created.ID)
	assert.Equal(t, "ssn", created.Name)
}

func TestDeletePattern(t *testing.T) {
	var gotPath string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodDelete, r.Method)
		gotPath = r.URL.Path
		w.WriteHeader(http.StatusNoContent)
	}))
	defer server.Close()

	client, err := New(Config{BaseURL: server.URL, APIKey: "admin-key"})
	require.NoError(t, err)

	require.NoError(t, client.DeletePattern(context.Background(), 42))
	assert.Equal(t, "/patterns/42", gotPath)
}

func TestBlocklist_UsesLegacyWirePath(t *testing.T) {
	var gotPath string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		io.WriteString(w, `[]`)
	}))
	defer server.Close()

	client, err := New(Config{BaseURL: server.URL, APIKey: "admin-key"})
	require.NoError(t, err)

	items, err := client.ListBlocklist(context.Background())
	require.NoError(t, err)
	assert.Empty(t, items)
	assert.Equal(t, "/blacklist", gotPath)
}

func TestImportTemplate(t *testing.T) {
	var got TemplateImportRequest
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/templates/import", r.URL.Path)
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		io.WriteString(w, `{"message":"imported"}`)
	}))
	defer server.Close()

	client, err := New(Config{BaseURL: server.URL, APIKey: "admin-key"})
	require.NoError(t, err)

	err = client.ImportTemplate(context.Background(), TemplateDefinition{
		Name: "pci-baseline",
		Patterns: []Pattern{
			{Name: "card", Regex: `\d{16}`, IsActive: true},
		},
	})
	require.NoError(t, err)
	assert.Equal(t, "pci-baseline", got.Template.Name)
	require.Len(t, got.Template.Patterns, 1)
}

func TestManagement_UnauthorizedIsAPIError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		io.WriteString(w, `{"error":"missing admin key"}`)
	}))
	defer server.Close()

	client, err := New(Config{BaseURL: server.URL})
	require.NoError(t, err)

	_, err = client.ListValidators(context.Background())
	var apiErr *APIError
	require.True(t, errors.As(err, &apiErr))
	assert.Equal(t, http.StatusUnauthorized, apiErr.StatusCode)
	assert.Equal(t, []byte(`{"error":"missing admin key"}`), apiErr.Body)
}

func TestListValidators_MalformedBodyIsDecodeError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		io.WriteString(w, `{"not":"an array"}`)
	}))
	defer server.Close()

	client, err := New(Config{BaseURL: server.URL, APIKey: "admin-key"})
	require.NoError(t, err)

	_, err = client.ListValidators(context.Background())
	var clientErr *ClientError
	require.True(t, errors.As(err, &clientErr))
	assert.Equal(t, ErrDecodeFailed, clientErr.Code)
}
