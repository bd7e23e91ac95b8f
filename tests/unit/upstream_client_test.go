package unit

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/archlens/landscape-backend/internal/landscape/domain"
	"github.com/archlens/landscape-backend/internal/landscape/service"
)

func TestReviewClient_FetchSystems(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/systems" {
			t.Errorf("unexpected path: %s", r.URL.Path)
		}
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`[
			{"system_code": "SYS-001", "solution": {"solution_name": "Billing", "review_code": "REV-1"},
			 "flows": [{"counterpart_code": "SYS-002", "counterpart_role": "CONSUMER", "pattern": "API"}]}
		]`))
	}))
	defer server.Close()

	client := service.NewReviewClient(server.URL, 10, 20)
	records, err := client.FetchSystems(context.Background())
	require.NoError(t, err)

	require.Len(t, records, 1)
	assert.Equal(t, "SYS-001", records[0].SystemCode)
	require.NotNil(t, records[0].Solution)
	assert.Equal(t, "Billing", records[0].Solution.SolutionName)
	require.Len(t, records[0].Flows, 1)
	assert.Equal(t, domain.RoleConsumer, records[0].Flows[0].CounterpartRole)
}

func TestReviewClient_UpstreamStatusError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer server.Close()

	client := service.NewReviewClient(server.URL, 10, 20)
	_, err := client.FetchSystems(context.Background())

	var upstream *domain.UpstreamError
	require.True(t, errors.As(err, &upstream))
	assert.Equal(t, "fetch_systems", upstream.Op)
}

func TestReviewClient_UnreachableHost(t *testing.T) {
	client := service.NewReviewClient("http://127.0.0.1:1", 10, 20)
	_, err := client.FetchSystems(context.Background())

	var upstream *domain.UpstreamError
	require.True(t, errors.As(err, &upstream))
}

func TestReviewClient_FetchCapabilityInputs(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		switch r.URL.Path {
		case "/capabilities/catalog":
			w.Write([]byte(`[{"l1": "Finance", "l2": "Ledger", "l3": "Postings"}]`))
		case "/capabilities/assignments":
			w.Write([]byte(`[{"system_code": "sys-001", "system_name": "Billing", "l1": "Finance", "l2": "Ledger", "l3": "Postings"}]`))
		default:
			t.Errorf("unexpected path: %s", r.URL.Path)
		}
	}))
	defer server.Close()

	client := service.NewReviewClient(server.URL, 10, 20)

	catalog, err := client.FetchCapabilityCatalog(context.Background())
	require.NoError(t, err)
	require.Len(t, catalog, 1)
	assert.Equal(t, "Finance", catalog[0].L1)

	assignments, err := client.FetchCapabilityAssignments(context.Background())
	require.NoError(t, err)
	require.Len(t, assignments, 1)
	assert.Equal(t, "sys-001", assignments[0].SystemCode)
}
