package diagram

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/archlens/landscape-backend/internal/landscape/domain"
)

func TestLandscape_AggregatesUnorderedPairs(t *testing.T) {
	records := []domain.SystemRecord{
		reviewedRecord("SYS-001", "Billing",
			domain.IntegrationFlow{CounterpartCode: "SYS-002", CounterpartRole: domain.RoleConsumer, Pattern: "API"},
			domain.IntegrationFlow{CounterpartCode: "SYS-002", CounterpartRole: domain.RoleProducer, Pattern: "FILE"},
		),
		reviewedRecord("SYS-002", "Payments",
			domain.IntegrationFlow{CounterpartCode: "SYS-001", CounterpartRole: domain.RoleConsumer, Pattern: "MQ"},
		),
	}

	d := Landscape(records)

	require.Len(t, d.Links, 1)
	assert.Equal(t, 3, d.Links[0].Count)
	assert.Equal(t, "SYS-001", d.Links[0].Source)
	assert.Equal(t, "SYS-002", d.Links[0].Target)
}

func TestLandscape_ClassificationFollowsProcessingOrder(t *testing.T) {
	records := []domain.SystemRecord{
		reviewedRecord("SYS-001", "Billing",
			domain.IntegrationFlow{CounterpartCode: "SYS-002", CounterpartRole: domain.RoleConsumer, Pattern: "API"},
		),
		reviewedRecord("SYS-002", "Payments"),
	}

	d := Landscape(records)

	byID := map[string]domain.Node{}
	for _, n := range d.Nodes {
		byID[n.ID] = n
	}

	assert.Equal(t, domain.NodeCoreSystem, byID["SYS-001"].Type)
	// SYS-002 was first seen as a counterpart, so it stays External even
	// though its own record follows.
	assert.Equal(t, domain.NodeExternal, byID["SYS-002"].Type)
}

func TestLandscape_OwnRecordFirstIsCoreSystem(t *testing.T) {
	records := []domain.SystemRecord{
		reviewedRecord("SYS-002", "Payments"),
		reviewedRecord("SYS-001", "Billing",
			domain.IntegrationFlow{CounterpartCode: "SYS-002", CounterpartRole: domain.RoleConsumer, Pattern: "API"},
		),
	}

	d := Landscape(records)

	for _, n := range d.Nodes {
		if n.ID == "SYS-002" {
			assert.Equal(t, domain.NodeCoreSystem, n.Type)
			assert.Equal(t, "Payments", n.Name)
		}
	}
}

func TestLandscape_EmptyCounterpartNotFiltered(t *testing.T) {
	records := []domain.SystemRecord{
		reviewedRecord("SYS-001", "Billing",
			domain.IntegrationFlow{CounterpartCode: "", CounterpartRole: domain.RoleConsumer, Pattern: "API"},
		),
	}

	d := Landscape(records)

	ids := nodeIDs(d)
	assert.Contains(t, ids, "")
	require.Len(t, d.Links, 1)
	assert.Equal(t, "", d.Links[0].Target)
}
