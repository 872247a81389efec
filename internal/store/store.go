package store

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/spec-kit/crewcal/internal/domain"
	"github.com/spec-kit/crewcal/internal/observability"
	"github.com/spec-kit/crewcal/internal/repository"
)

// EntityKind names the two document collections.
type EntityKind string

const (
	KindEvents    EntityKind = "events"
	KindEmployees EntityKind = "employees"
)

// Snapshot is a full replacement of one partition's collection. Consumers
// must replace their cache wholesale; snapshots are never incremental.
type Snapshot struct {
	Partition domain.Partition
	Kind      EntityKind
	Events    []domain.Event
	Employees []domain.Employee
}

// Subscription is a live snapshot stream for one (partition, kind). The
// current state is delivered immediately, then again after every change
// notification, until Unsubscribe.
type Subscription struct {
	C      <-chan Snapshot
	cancel context.CancelFunc
}

// Unsubscribe tears the stream down. Safe to call more than once.
func (s *Subscription) Unsubscribe() {
	if s.cancel != nil {
		s.cancel()
	}
}

// Store is the partitioned document store: Postgres for the documents,
// a ChangeBus for cross-client change fan-out.
type Store struct {
	events    repository.EventRepository
	employees repository.EmployeeRepository
	bus       ChangeBus
	logger    *zap.Logger
	metrics   *observability.Metrics
}

// New constructs a Store. Metrics may be nil.
func New(events repository.EventRepository, employees repository.EmployeeRepository, bus ChangeBus, logger *zap.Logger, metrics *observability.Metrics) *Store {
	return &Store{events: events, employees: employees, bus: bus, logger: logger, metrics: metrics}
}

func channelName(partition domain.Partition, kind EntityKind) string {
	return fmt.Sprintf("crewcal:changed:%s:%s:%s", partition.Region, partition.Department, kind)
}

// Subscribe opens a snapshot stream for one partition and entity kind. A
// failed initial load still delivers one empty snapshot so the consumer can
// mark itself initialized instead of waiting forever.
func (s *Store) Subscribe(ctx context.Context, partition domain.Partition, kind EntityKind) (*Subscription, error) {
	subCtx, cancel := context.WithCancel(ctx)

	ticks, busCancel, err := s.bus.Subscribe(subCtx, channelName(partition, kind))
	if err != nil {
		cancel()
		return nil, fmt.Errorf("subscribe %s/%s: %w", partition, kind, err)
	}

	out := make(chan Snapshot, 1)
	go func() {
		defer busCancel()
		defer close(out)

		s.deliver(subCtx, out, partition, kind)
		for {
			select {
			case <-subCtx.Done():
				return
			case _, ok := <-ticks:
				if !ok {
					return
				}
				s.deliver(subCtx, out, partition, kind)
			}
		}
	}()

	return &Subscription{C: out, cancel: cancel}, nil
}

// deliver loads the current snapshot and pushes it, superseding any
// undelivered previous snapshot. Only the newest snapshot matters.
func (s *Store) deliver(ctx context.Context, out chan Snapshot, partition domain.Partition, kind EntityKind) {
	snap := s.load(ctx, partition, kind)
	s.metrics.RecordSnapshot(channelName(partition, kind))
	select {
	case out <- snap:
	default:
		select {
		case <-out:
		default:
		}
		select {
		case out <- snap:
		default:
		}
	}
}

func (s *Store) load(ctx context.Context, partition domain.Partition, kind EntityKind) Snapshot {
	snap := Snapshot{Partition: partition, Kind: kind}
	switch kind {
	case KindEmployees:
		employees, err := s.employees.ListByPartition(ctx, partition)
		if err != nil {
			s.logger.Error("load employees snapshot", zap.String("partition", partition.String()), zap.Error(err))
			return snap
		}
		snap.Employees = employees
	default:
		events, err := s.events.ListByPartition(ctx, partition)
		if err != nil {
			s.logger.Error("load events snapshot", zap.String("partition", partition.String()), zap.Error(err))
			return snap
		}
		snap.Events = events
	}
	return snap
}

func (s *Store) notify(ctx context.Context, partition domain.Partition, kind EntityKind) {
	if err := s.bus.Publish(ctx, channelName(partition, kind)); err != nil {
		s.logger.Error("publish change notification",
			zap.String("partition", partition.String()),
			zap.String("kind", string(kind)),
			zap.Error(err),
		)
	}
}

// UpsertEvent replaces the stored document by id and fans out the change.
func (s *Store) UpsertEvent(ctx context.Context, event *domain.Event) error {
	if err := s.events.Upsert(ctx, event); err != nil {
		return err
	}
	s.notify(ctx, event.Partition(), KindEvents)
	return nil
}

// DeleteEvent removes the document; deleting a nonexistent id is a no-op.
func (s *Store) DeleteEvent(ctx context.Context, partition domain.Partition, id string) error {
	deleted, err := s.events.Delete(ctx, partition, id)
	if err != nil {
		return err
	}
	if deleted {
		s.notify(ctx, partition, KindEvents)
	}
	return nil
}

// CreateEmployee inserts a new roster entry; returns false on id conflict.
func (s *Store) CreateEmployee(ctx context.Context, employee *domain.Employee) (bool, error) {
	created, err := s.employees.Create(ctx, employee)
	if err != nil || !created {
		return created, err
	}
	s.notify(ctx, employee.Partition(), KindEmployees)
	return true, nil
}

// UpsertEmployee replaces the stored roster entry by id.
func (s *Store) UpsertEmployee(ctx context.Context, employee *domain.Employee) error {
	if err := s.employees.Upsert(ctx, employee); err != nil {
		return err
	}
	s.notify(ctx, employee.Partition(), KindEmployees)
	return nil
}

// DeleteEmployee removes the roster entry; events referencing it are left in
// place and render as unassigned.
func (s *Store) DeleteEmployee(ctx context.Context, partition domain.Partition, id string) error {
	deleted, err := s.employees.Delete(ctx, partition, id)
	if err != nil {
		return err
	}
	if deleted {
		s.notify(ctx, partition, KindEmployees)
	}
	return nil
}

// GetEvent fetches one event document.
func (s *Store) GetEvent(ctx context.Context, partition domain.Partition, id string) (*domain.Event, error) {
	return s.events.GetByID(ctx, partition, id)
}

// GetEmployee fetches one roster document.
func (s *Store) GetEmployee(ctx context.Context, partition domain.Partition, id string) (*domain.Employee, error) {
	return s.employees.GetByID(ctx, partition, id)
}

// ListEvents fetches the full event collection of a partition.
func (s *Store) ListEvents(ctx context.Context, partition domain.Partition) ([]domain.Event, error) {
	return s.events.ListByPartition(ctx, partition)
}

// ListEmployees fetches the full roster of a partition.
func (s *Store) ListEmployees(ctx context.Context, partition domain.Partition) ([]domain.Employee, error) {
	return s.employees.ListByPartition(ctx, partition)
}
