package session

import (
	"context"
	"sync"

	"go.uber.org/zap"

	"github.com/spec-kit/crewcal/internal/domain"
	"github.com/spec-kit/crewcal/internal/store"
)

// Source is the subset of the store a session consumes.
type Source interface {
	Subscribe(ctx context.Context, partition domain.Partition, kind store.EntityKind) (*store.Subscription, error)
}

// Data is a point-in-time copy of the session caches, safe to hand to the
// pure layout pipeline.
type Data struct {
	Partition      domain.Partition
	Events         []domain.Event
	Employees      []domain.Employee
	CrossPartition *domain.Partition
	CrossEvents    []domain.Event
	CrossEmployees []domain.Employee
	Initialized    bool
}

// Session owns the local caches for one partition plus an optional
// cross-view overlay. Caches are mutated only by snapshot handlers; layout
// computation reads copies. Every snapshot is a full replace, so handlers
// are idempotent and re-entrant by construction.
type Session struct {
	src    Source
	logger *zap.Logger

	mu             sync.RWMutex
	partition      domain.Partition
	events         []domain.Event
	employees      []domain.Employee
	eventsReady    bool
	employeesReady bool

	crossPartition *domain.Partition
	crossEvents    []domain.Event
	crossEmployees []domain.Employee

	ctx      context.Context
	cancel   context.CancelFunc
	crossCtx context.CancelFunc
}

// New constructs a session for the given primary partition.
func New(src Source, partition domain.Partition, logger *zap.Logger) *Session {
	return &Session{src: src, partition: partition, logger: logger}
}

// Start subscribes to the primary partition's event and employee streams.
func (s *Session) Start(ctx context.Context) error {
	s.ctx, s.cancel = context.WithCancel(ctx)

	if err := s.watch(s.ctx, s.partition, store.KindEvents, false); err != nil {
		return err
	}
	return s.watch(s.ctx, s.partition, store.KindEmployees, false)
}

// watch opens one subscription and replays its snapshots into the caches.
func (s *Session) watch(ctx context.Context, partition domain.Partition, kind store.EntityKind, cross bool) error {
	sub, err := s.src.Subscribe(ctx, partition, kind)
	if err != nil {
		return err
	}
	go func() {
		defer sub.Unsubscribe()
		for {
			select {
			case <-ctx.Done():
				return
			case snap, ok := <-sub.C:
				if !ok {
					return
				}
				s.apply(snap, cross)
			}
		}
	}()
	return nil
}

func (s *Session) apply(snap store.Snapshot, cross bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if cross {
		// A stale stream may deliver after a cross-view switch; only the
		// currently selected cross partition may write the overlay caches.
		if s.crossPartition == nil || *s.crossPartition != snap.Partition {
			return
		}
		switch snap.Kind {
		case store.KindEmployees:
			s.crossEmployees = snap.Employees
		default:
			s.crossEvents = snap.Events
		}
		return
	}

	switch snap.Kind {
	case store.KindEmployees:
		s.employees = snap.Employees
		s.employeesReady = true
	default:
		s.events = snap.Events
		s.eventsReady = true
	}
}

// EnableCrossView subscribes to another department's streams in the same
// region. Any previous cross-view subscription is torn down first so stale
// partitions cannot leak into the overlay.
func (s *Session) EnableCrossView(partition domain.Partition) error {
	s.mu.Lock()
	if s.crossPartition != nil && *s.crossPartition == partition {
		s.mu.Unlock()
		return nil
	}
	if s.crossCtx != nil {
		s.crossCtx()
		s.crossCtx = nil
	}
	p := partition
	s.crossPartition = &p
	s.crossEvents = nil
	s.crossEmployees = nil
	s.mu.Unlock()

	ctx, cancel := context.WithCancel(s.ctx)
	if err := s.watch(ctx, partition, store.KindEvents, true); err != nil {
		cancel()
		s.disableCrossLocked()
		return err
	}
	if err := s.watch(ctx, partition, store.KindEmployees, true); err != nil {
		cancel()
		s.disableCrossLocked()
		return err
	}

	s.mu.Lock()
	s.crossCtx = cancel
	s.mu.Unlock()
	return nil
}

// DisableCrossView drops the overlay subscription and caches.
func (s *Session) DisableCrossView() {
	s.mu.Lock()
	if s.crossCtx != nil {
		s.crossCtx()
		s.crossCtx = nil
	}
	s.mu.Unlock()
	s.disableCrossLocked()
}

func (s *Session) disableCrossLocked() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.crossPartition = nil
	s.crossEvents = nil
	s.crossEmployees = nil
}

// Current returns a copy of the caches. Employees come back display-sorted.
func (s *Session) Current() Data {
	s.mu.RLock()
	defer s.mu.RUnlock()

	data := Data{
		Partition:   s.partition,
		Events:      append([]domain.Event(nil), s.events...),
		Employees:   append([]domain.Employee(nil), s.employees...),
		Initialized: s.eventsReady && s.employeesReady,
	}
	domain.SortEmployees(data.Employees)

	if s.crossPartition != nil {
		p := *s.crossPartition
		data.CrossPartition = &p
		data.CrossEvents = append([]domain.Event(nil), s.crossEvents...)
		data.CrossEmployees = append([]domain.Employee(nil), s.crossEmployees...)
		domain.SortEmployees(data.CrossEmployees)
	}
	return data
}

// Close tears down every subscription owned by the session.
func (s *Session) Close() {
	if s.cancel != nil {
		s.cancel()
	}
}
