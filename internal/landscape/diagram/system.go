package diagram

import (
	"log"

	"github.com/archlens/landscape-backend/internal/landscape/domain"
)

// ForSystem produces the dependency diagram of one target system: every
// system and middleware wired to it through any flow in the record set, with
// producer/consumer role-aware node splitting. The target keeps its bare
// code as node id; every other participant is qualified with -P or -C.
func ForSystem(target string, records []domain.SystemRecord) (*domain.Diagram, error) {
	var targetRec *domain.SystemRecord
	for i := range records {
		if records[i].SystemCode == target {
			targetRec = &records[i]
			break
		}
	}
	if targetRec == nil {
		return nil, &domain.NotFoundError{SystemCode: target}
	}
	if targetRec.Solution == nil {
		return nil, &domain.DataIntegrityError{SystemCode: target, Field: "solution overview"}
	}
	if targetRec.Solution.Details == nil {
		return nil, &domain.DataIntegrityError{SystemCode: target, Field: "solution details"}
	}

	b := newBuilder(records)
	b.addNode(domain.Node{
		ID:          target,
		Name:        targetRec.Solution.SolutionName,
		Type:        domain.NodeCoreSystem,
		Criticality: targetRec.Solution.Details.Criticality,
		URL:         targetRec.Solution.Details.URL,
	})

	processed := map[string]struct{}{}

	for ri := range records {
		rec := &records[ri]
		for fi := range rec.Flows {
			flow := &rec.Flows[fi]
			if rec.SystemCode != target && flow.CounterpartCode != target {
				continue
			}

			producer, consumer, ok := flowDirection(rec.SystemCode, flow)
			if !ok {
				log.Printf("[warn] operation=system_diagram message=skipping flow of %s with unrecognized role %q", rec.SystemCode, flow.CounterpartRole)
				continue
			}
			producerID := qualify(producer, target, "-P")
			consumerID := qualify(consumer, target, "-C")

			linkID := rec.SystemCode + "|" + producerID + "|" + consumerID + "|" + flow.Pattern
			if _, dup := processed[linkID]; dup {
				continue
			}
			processed[linkID] = struct{}{}

			b.ensureParticipant(producerID, target)
			b.ensureParticipant(consumerID, target)

			mw := domain.NormalizeMiddleware(flow.Middleware)
			if mw != "" {
				// The middleware suffix reflects which side of it the
				// diagram's primary system sits on.
				suffix := "-P"
				if producerID == target {
					suffix = "-C"
				}
				mwID := mw + suffix
				b.addNode(domain.Node{ID: mwID, Name: mw, Type: domain.NodeMiddleware})
				b.recordMiddleware(mwID)
				b.addLink(domain.Link{
					Source:     producerID,
					Target:     mwID,
					Pattern:    flow.Pattern,
					Frequency:  flow.Frequency,
					Role:       domain.RoleProducer,
					Middleware: mw,
				})
				b.addLink(domain.Link{
					Source:     mwID,
					Target:     consumerID,
					Pattern:    flow.Pattern,
					Frequency:  flow.Frequency,
					Role:       domain.RoleConsumer,
					Middleware: mw,
				})
			} else {
				b.addLink(domain.Link{
					Source:    producerID,
					Target:    consumerID,
					Pattern:   flow.Pattern,
					Frequency: flow.Frequency,
					Role:      flow.CounterpartRole,
				})
			}
		}
	}

	return &domain.Diagram{
		Nodes: b.nodes,
		Links: b.links,
		Metadata: domain.Metadata{
			Review:        targetRec.Solution.ReviewCode,
			GeneratedDate: generatedDate(),
			Middlewares:   b.mwIDs,
		},
	}, nil
}

// flowDirection orients a flow into a (producer, consumer) pair from the
// perspective of the record that reported it.
func flowDirection(own string, flow *domain.IntegrationFlow) (producer, consumer string, ok bool) {
	switch flow.CounterpartRole {
	case domain.RoleProducer:
		return flow.CounterpartCode, own, true
	case domain.RoleConsumer:
		return own, flow.CounterpartCode, true
	default:
		return "", "", false
	}
}

// qualify role-tags an identifier unless it is the diagram's target, which
// always keeps its bare code.
func qualify(id, target, suffix string) string {
	if id == target {
		return target
	}
	return domain.Canonical(id) + suffix
}

// ensureParticipant creates a node for a role-qualified participant id. A
// counterpart without a record in the set keeps its bare identifier as the
// display name and is classified External instead of IncomeSystem.
func (b *builder) ensureParticipant(id, target string) {
	if id == target || b.hasNode(id) {
		return
	}

	node := domain.Node{ID: id, Name: domain.Canonical(id), Type: domain.NodeExternal}
	if rec := b.lookup(id); rec != nil {
		node.Type = domain.NodeIncomeSystem
		if rec.Solution != nil {
			node.Name = rec.Solution.SolutionName
			if rec.Solution.Details != nil {
				node.Criticality = rec.Solution.Details.Criticality
				node.URL = rec.Solution.Details.URL
			}
		}
	}
	b.addNode(node)
}
