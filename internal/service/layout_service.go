package service

import (
	"time"

	"github.com/spec-kit/crewcal/internal/calendar"
	"github.com/spec-kit/crewcal/internal/catalog"
	"github.com/spec-kit/crewcal/internal/domain"
	"github.com/spec-kit/crewcal/internal/session"
	"github.com/spec-kit/crewcal/pkg/util/errorutil"
)

// LayoutService turns the session caches plus a view request into a fully
// computed, renderable layout.
type LayoutService struct {
	session   *session.Session
	catalog   *catalog.Catalog
	partition domain.Partition
}

// NewLayoutService constructs the service.
func NewLayoutService(sess *session.Session, cat *catalog.Catalog, partition domain.Partition) *LayoutService {
	return &LayoutService{session: sess, catalog: cat, partition: partition}
}

// LayoutRequest carries the view parameters of one layout computation.
type LayoutRequest struct {
	// View is one of week, biweekly, month, twomonth; empty means week.
	View string
	// Anchor is the canonical anchor date; empty means today.
	Anchor string
	// EmployeeIDs narrows the visible roster; empty means all.
	EmployeeIDs []string
	// EventType is a single type filter, or "all" / empty.
	EventType string
	// CrossView overlays the sibling department of the same region.
	CrossView bool
}

// ComputeLayout validates the request, snapshots the session caches and runs
// the pure layout pipeline.
func (s *LayoutService) ComputeLayout(req LayoutRequest) (*calendar.Layout, error) {
	mode, ok := domain.ParseViewMode(req.View)
	if !ok {
		return nil, errorutil.NewValidationError("invalid view", map[string]any{"view": req.View})
	}

	anchor := time.Now()
	if req.Anchor != "" {
		parsed, err := calendar.ParseDate(req.Anchor)
		if err != nil {
			return nil, errorutil.NewValidationError("invalid anchor", map[string]any{"anchor": req.Anchor})
		}
		anchor = parsed
	}

	dept, err := s.catalog.Department(s.partition.Department)
	if err != nil {
		return nil, errorutil.NewInternalError(err)
	}
	region, err := s.catalog.Region(s.partition.Region)
	if err != nil {
		return nil, errorutil.NewInternalError(err)
	}

	state := calendar.ViewState{EventType: req.EventType}
	if len(req.EmployeeIDs) > 0 {
		state.EmployeeIDs = make(map[string]struct{}, len(req.EmployeeIDs))
		for _, id := range req.EmployeeIDs {
			if id == "" || id == calendar.FilterAll {
				state.EmployeeIDs = nil
				break
			}
			state.EmployeeIDs[id] = struct{}{}
		}
	}

	if req.CrossView {
		if err := s.enableCrossView(); err != nil {
			return nil, err
		}
	} else {
		s.session.DisableCrossView()
	}

	data := s.session.Current()

	in := calendar.AssembleInput{
		Mode:       mode,
		Anchor:     anchor,
		State:      state,
		Events:     data.Events,
		Employees:  data.Employees,
		Department: dept,
		Region:     region,
	}
	if data.CrossPartition != nil {
		crossDept, err := s.catalog.Department(data.CrossPartition.Department)
		if err == nil {
			in.CrossDepartment = &crossDept
			in.CrossEvents = data.CrossEvents
			in.CrossEmployees = data.CrossEmployees
		}
	}

	layout := calendar.AssembleView(in)
	return &layout, nil
}

func (s *LayoutService) enableCrossView() error {
	cross, ok := s.catalog.CrossDepartment(s.partition.Department)
	if !ok {
		return errorutil.NewValidationError("cross view unavailable", map[string]any{
			"department": s.partition.Department,
		})
	}
	crossPartition := domain.Partition{Region: s.partition.Region, Department: cross.ID}
	if err := s.session.EnableCrossView(crossPartition); err != nil {
		return errorutil.NewStoreUnavailable(err)
	}
	return nil
}
