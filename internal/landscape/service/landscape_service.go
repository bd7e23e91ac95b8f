package service

import (
	"context"
	"strings"

	"github.com/archlens/landscape-backend/internal/landscape/capability"
	"github.com/archlens/landscape-backend/internal/landscape/diagram"
	"github.com/archlens/landscape-backend/internal/landscape/domain"
	"github.com/archlens/landscape-backend/internal/landscape/graph"
	"github.com/archlens/landscape-backend/internal/landscape/repository"
)

// RecordSource supplies the full current snapshot of review records. The
// production implementation is ReviewClient.
type RecordSource interface {
	FetchSystems(ctx context.Context) ([]domain.SystemRecord, error)
	FetchCapabilityCatalog(ctx context.Context) ([]domain.CapabilityTuple, error)
	FetchCapabilityAssignments(ctx context.Context) ([]domain.CapabilityAssignment, error)
}

// LandscapeService computes diagram and tree views over the current record
// set. Each request is synchronous and works on request-local structures;
// nothing computed is shared or memoized across requests.
type LandscapeService struct {
	source    RecordSource
	snapshots *repository.SnapshotRepository // nil disables the retrieval cache
}

// NewLandscapeService creates a service over the given record source. A nil
// snapshot repository disables snapshot caching and every request fetches
// upstream directly.
func NewLandscapeService(source RecordSource, snapshots *repository.SnapshotRepository) *LandscapeService {
	return &LandscapeService{source: source, snapshots: snapshots}
}

// DiagramForSystem builds the single-system dependency diagram.
func (s *LandscapeService) DiagramForSystem(ctx context.Context, systemCode string) (*domain.Diagram, error) {
	code := strings.TrimSpace(systemCode)
	if code == "" {
		return nil, domain.Validationf("system code must not be blank")
	}

	records, err := s.records(ctx)
	if err != nil {
		return nil, err
	}
	d, err := diagram.ForSystem(code, records)
	if err != nil {
		return nil, err
	}
	recordSystemDiagram()
	return d, nil
}

// PathsBetween enumerates every simple integration path between two systems
// and renders the result as a path diagram.
func (s *LandscapeService) PathsBetween(ctx context.Context, startCode, endCode string) (*domain.Diagram, error) {
	start := strings.TrimSpace(startCode)
	end := strings.TrimSpace(endCode)
	if start == "" || end == "" {
		return nil, domain.Validationf("start and end system codes must not be blank")
	}
	if start == end {
		return nil, domain.Validationf("start and end system codes must differ")
	}

	records, err := s.records(ctx)
	if err != nil {
		return nil, err
	}

	g := graph.Build(records)
	startID := domain.Canonical(start)
	endID := domain.Canonical(end)
	if !g.Contains(startID) {
		return nil, domain.Validationf("system %q is not known to the record set", start)
	}
	if !g.Contains(endID) {
		return nil, domain.Validationf("system %q is not known to the record set", end)
	}

	paths := graph.FindPaths(g, startID, endID)
	recordPathSearch()
	return diagram.FromPaths(paths, records), nil
}

// LandscapeDiagram builds the count-weighted whole-landscape view.
func (s *LandscapeService) LandscapeDiagram(ctx context.Context) (*domain.Diagram, error) {
	records, err := s.records(ctx)
	if err != nil {
		return nil, err
	}
	recordLandscapeView()
	return diagram.Landscape(records), nil
}

// CapabilityTree builds the global business-capability classification tree.
func (s *LandscapeService) CapabilityTree(ctx context.Context) (*domain.Tree, error) {
	catalog, assignments, err := s.capabilityInputs(ctx)
	if err != nil {
		return nil, err
	}
	recordCapabilityTree()
	return capability.BuildTree(catalog, assignments), nil
}

// CapabilityTreeForSystem builds the capability tree scoped to one system.
// An unknown system code yields an empty tree, not an error.
func (s *LandscapeService) CapabilityTreeForSystem(ctx context.Context, systemCode string) (*domain.Tree, error) {
	code := strings.TrimSpace(systemCode)
	if code == "" {
		return nil, domain.Validationf("system code must not be blank")
	}
	_, assignments, err := s.capabilityInputs(ctx)
	if err != nil {
		return nil, err
	}
	recordCapabilityTree()
	return capability.BuildTreeForSystem(code, assignments), nil
}

// records resolves the record set read-through: cached snapshot when one is
// configured and warm, otherwise a direct upstream fetch that re-warms it.
func (s *LandscapeService) records(ctx context.Context) ([]domain.SystemRecord, error) {
	logger := NewLogger(ctx)
	if s.snapshots != nil {
		records, err := s.snapshots.LoadRecords(ctx)
		if err == nil {
			return records, nil
		}
		if err != repository.ErrSnapshotMiss {
			logger.Warnf("load_records", "snapshot cache read failed: %v", err)
		}
	}

	records, err := s.source.FetchSystems(ctx)
	if err != nil {
		return nil, err
	}
	if s.snapshots != nil {
		if err := s.snapshots.StoreRecords(ctx, records); err != nil {
			logger.Warnf("load_records", "snapshot cache write failed: %v", err)
		}
	}
	return records, nil
}

func (s *LandscapeService) capabilityInputs(ctx context.Context) ([]domain.CapabilityTuple, []domain.CapabilityAssignment, error) {
	logger := NewLogger(ctx)

	var catalog []domain.CapabilityTuple
	var assignments []domain.CapabilityAssignment

	cachedCatalog, cachedAssignments := false, false
	if s.snapshots != nil {
		if c, err := s.snapshots.LoadCatalog(ctx); err == nil {
			catalog, cachedCatalog = c, true
		}
		if a, err := s.snapshots.LoadAssignments(ctx); err == nil {
			assignments, cachedAssignments = a, true
		}
	}

	if !cachedCatalog {
		c, err := s.source.FetchCapabilityCatalog(ctx)
		if err != nil {
			return nil, nil, err
		}
		catalog = c
		if s.snapshots != nil {
			if err := s.snapshots.StoreCatalog(ctx, catalog); err != nil {
				logger.Warnf("capability_inputs", "snapshot cache write failed: %v", err)
			}
		}
	}
	if !cachedAssignments {
		a, err := s.source.FetchCapabilityAssignments(ctx)
		if err != nil {
			return nil, nil, err
		}
		assignments = a
		if s.snapshots != nil {
			if err := s.snapshots.StoreAssignments(ctx, assignments); err != nil {
				logger.Warnf("capability_inputs", "snapshot cache write failed: %v", err)
			}
		}
	}

	return catalog, assignments, nil
}

// RefreshSnapshots force-fetches every upstream collection and rewrites the
// cache. Used by the cron scheduler to keep the snapshot warm.
func (s *LandscapeService) RefreshSnapshots(ctx context.Context) error {
	if s.snapshots == nil {
		return nil
	}
	records, err := s.source.FetchSystems(ctx)
	if err != nil {
		return err
	}
	if err := s.snapshots.StoreRecords(ctx, records); err != nil {
		return err
	}
	catalog, err := s.source.FetchCapabilityCatalog(ctx)
	if err != nil {
		return err
	}
	if err := s.snapshots.StoreCatalog(ctx, catalog); err != nil {
		return err
	}
	assignments, err := s.source.FetchCapabilityAssignments(ctx)
	if err != nil {
		return err
	}
	return s.snapshots.StoreAssignments(ctx, assignments)
}
