package diagram

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/archlens/landscape-backend/internal/landscape/domain"
)

func reviewedRecord(code, name string, flows ...domain.IntegrationFlow) domain.SystemRecord {
	return domain.SystemRecord{
		SystemCode: code,
		Solution: &domain.SolutionOverview{
			SolutionName: name,
			ReviewCode:   "REV-" + code,
			Details:      &domain.SolutionDetails{Criticality: "High"},
		},
		Flows: flows,
	}
}

func nodeIDs(d *domain.Diagram) []string {
	ids := make([]string, 0, len(d.Nodes))
	for _, n := range d.Nodes {
		ids = append(ids, n.ID)
	}
	return ids
}

func TestForSystem_DirectConsumerFlow(t *testing.T) {
	records := []domain.SystemRecord{
		reviewedRecord("SYS-001", "Billing",
			domain.IntegrationFlow{CounterpartCode: "SYS-002", CounterpartRole: domain.RoleConsumer, Pattern: "API", Frequency: "Daily"},
		),
	}

	d, err := ForSystem("SYS-001", records)
	require.NoError(t, err)

	assert.ElementsMatch(t, []string{"SYS-001", "SYS-002-C"}, nodeIDs(d))
	require.Len(t, d.Links, 1)
	assert.Equal(t, "SYS-001", d.Links[0].Source)
	assert.Equal(t, "SYS-002-C", d.Links[0].Target)
	assert.Equal(t, domain.RoleConsumer, d.Links[0].Role)
	assert.Equal(t, "REV-SYS-001", d.Metadata.Review)
	assert.Empty(t, d.Metadata.Middlewares)
}

func TestForSystem_MiddlewareSplitsLink(t *testing.T) {
	records := []domain.SystemRecord{
		reviewedRecord("SYS-001", "Billing",
			domain.IntegrationFlow{CounterpartCode: "SYS-002", CounterpartRole: domain.RoleConsumer, Pattern: "API", Middleware: "API_GATEWAY"},
		),
	}

	d, err := ForSystem("SYS-001", records)
	require.NoError(t, err)

	assert.ElementsMatch(t, []string{"SYS-001", "SYS-002-C", "API_GATEWAY-C"}, nodeIDs(d))
	require.Len(t, d.Links, 2)
	assert.Equal(t, "SYS-001", d.Links[0].Source)
	assert.Equal(t, "API_GATEWAY-C", d.Links[0].Target)
	assert.Equal(t, "API_GATEWAY-C", d.Links[1].Source)
	assert.Equal(t, "SYS-002-C", d.Links[1].Target)
	assert.Equal(t, []string{"API_GATEWAY-C"}, d.Metadata.Middlewares)
}

func TestForSystem_MiddlewareSuffixWhenTargetConsumes(t *testing.T) {
	records := []domain.SystemRecord{
		reviewedRecord("SYS-001", "Billing",
			domain.IntegrationFlow{CounterpartCode: "SYS-002", CounterpartRole: domain.RoleProducer, Pattern: "API", Middleware: "ESB"},
		),
	}

	d, err := ForSystem("SYS-001", records)
	require.NoError(t, err)

	// Target sits on the consumer side of the middleware, so the middleware
	// node carries the -P suffix.
	assert.Contains(t, nodeIDs(d), "ESB-P")
	assert.Equal(t, []string{"ESB-P"}, d.Metadata.Middlewares)
}

func TestForSystem_NotFound(t *testing.T) {
	_, err := ForSystem("SYS-404", []domain.SystemRecord{reviewedRecord("SYS-001", "Billing")})

	var notFound *domain.NotFoundError
	require.True(t, errors.As(err, &notFound))
	assert.Equal(t, "SYS-404", notFound.SystemCode)
}

func TestForSystem_MissingSolutionOverview(t *testing.T) {
	records := []domain.SystemRecord{{SystemCode: "SYS-001"}}

	_, err := ForSystem("SYS-001", records)

	var integrity *domain.DataIntegrityError
	require.True(t, errors.As(err, &integrity))
	assert.Equal(t, "SYS-001", integrity.SystemCode)
}

func TestForSystem_MissingSolutionDetails(t *testing.T) {
	records := []domain.SystemRecord{{
		SystemCode: "SYS-001",
		Solution:   &domain.SolutionOverview{SolutionName: "Billing"},
	}}

	_, err := ForSystem("SYS-001", records)

	var integrity *domain.DataIntegrityError
	require.True(t, errors.As(err, &integrity))
}

func TestForSystem_CounterpartClassification(t *testing.T) {
	records := []domain.SystemRecord{
		reviewedRecord("SYS-001", "Billing",
			domain.IntegrationFlow{CounterpartCode: "SYS-002", CounterpartRole: domain.RoleConsumer, Pattern: "API"},
			domain.IntegrationFlow{CounterpartCode: "EXT-900", CounterpartRole: domain.RoleProducer, Pattern: "FILE"},
		),
		reviewedRecord("SYS-002", "Payments"),
	}

	d, err := ForSystem("SYS-001", records)
	require.NoError(t, err)

	byID := map[string]domain.Node{}
	for _, n := range d.Nodes {
		byID[n.ID] = n
	}

	// Counterpart with a record resolves its solution name.
	assert.Equal(t, domain.NodeIncomeSystem, byID["SYS-002-C"].Type)
	assert.Equal(t, "Payments", byID["SYS-002-C"].Name)

	// Counterpart without a record falls back to its bare identifier.
	assert.Equal(t, domain.NodeExternal, byID["EXT-900-P"].Type)
	assert.Equal(t, "EXT-900", byID["EXT-900-P"].Name)
}

func TestForSystem_MirroredDeclarationsCollapse(t *testing.T) {
	// The same integration declared once from each side.
	records := []domain.SystemRecord{
		reviewedRecord("SYS-001", "Billing",
			domain.IntegrationFlow{CounterpartCode: "SYS-002", CounterpartRole: domain.RoleConsumer, Pattern: "API", Frequency: "Daily"},
		),
		reviewedRecord("SYS-002", "Payments",
			domain.IntegrationFlow{CounterpartCode: "SYS-001", CounterpartRole: domain.RoleProducer, Pattern: "API", Frequency: "Daily"},
		),
	}

	d, err := ForSystem("SYS-001", records)
	require.NoError(t, err)

	// No two emitted links share a full content signature.
	seen := map[string]bool{}
	for _, l := range d.Links {
		sig := fmt.Sprintf("%s|%s|%s|%s|%s|%s", l.Source, l.Target, l.Pattern, l.Frequency, l.Role, l.Middleware)
		assert.False(t, seen[sig], "duplicate link %s", sig)
		seen[sig] = true
	}
	assert.ElementsMatch(t, []string{"SYS-001", "SYS-002-C"}, nodeIDs(d))
}

func TestForSystem_SkipsRepeatedLinkIdentifier(t *testing.T) {
	records := []domain.SystemRecord{
		reviewedRecord("SYS-001", "Billing",
			domain.IntegrationFlow{CounterpartCode: "SYS-002", CounterpartRole: domain.RoleConsumer, Pattern: "API", Frequency: "Daily"},
			domain.IntegrationFlow{CounterpartCode: "SYS-002", CounterpartRole: domain.RoleConsumer, Pattern: "API", Frequency: "Weekly"},
		),
	}

	d, err := ForSystem("SYS-001", records)
	require.NoError(t, err)

	// Same (record, producer, consumer, pattern) identifier: the second flow
	// is skipped even though its frequency differs.
	assert.Len(t, d.Links, 1)
	assert.Equal(t, "Daily", d.Links[0].Frequency)
}
