package session_test

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/spec-kit/crewcal/internal/domain"
	"github.com/spec-kit/crewcal/internal/session"
	"github.com/spec-kit/crewcal/internal/store"
)

// fakeSource hands out subscriptions backed by test-fed channels.
type fakeSource struct {
	mu      sync.Mutex
	streams map[string]chan store.Snapshot
}

func newFakeSource() *fakeSource {
	return &fakeSource{streams: map[string]chan store.Snapshot{}}
}

func streamKey(p domain.Partition, kind store.EntityKind) string {
	return p.String() + "#" + string(kind)
}

func (f *fakeSource) Subscribe(_ context.Context, partition domain.Partition, kind store.EntityKind) (*store.Subscription, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	ch := make(chan store.Snapshot, 4)
	f.streams[streamKey(partition, kind)] = ch
	return &store.Subscription{C: ch}, nil
}

func (f *fakeSource) push(t *testing.T, p domain.Partition, kind store.EntityKind, snap store.Snapshot) {
	t.Helper()
	f.mu.Lock()
	ch, ok := f.streams[streamKey(p, kind)]
	f.mu.Unlock()
	require.True(t, ok, "no subscription for %s/%s", p, kind)
	snap.Partition = p
	snap.Kind = kind
	ch <- snap
}

var (
	primary = domain.Partition{Region: "americas", Department: "field_service"}
	sibling = domain.Partition{Region: "americas", Department: "clinical"}
)

func startSession(t *testing.T) (*session.Session, *fakeSource) {
	t.Helper()
	src := newFakeSource()
	sess := session.New(src, primary, zap.NewNop())
	require.NoError(t, sess.Start(context.Background()))
	t.Cleanup(sess.Close)
	return sess, src
}

func TestSessionInitializedAfterBothSnapshots(t *testing.T) {
	sess, src := startSession(t)

	require.False(t, sess.Current().Initialized)

	src.push(t, primary, store.KindEvents, store.Snapshot{
		Events: []domain.Event{{ID: "e1"}},
	})
	src.push(t, primary, store.KindEmployees, store.Snapshot{
		Employees: []domain.Employee{{ID: "ana"}},
	})

	require.Eventually(t, func() bool {
		return sess.Current().Initialized
	}, 2*time.Second, 10*time.Millisecond)

	data := sess.Current()
	require.Len(t, data.Events, 1)
	require.Len(t, data.Employees, 1)
}

func TestSessionSnapshotReplacesCache(t *testing.T) {
	sess, src := startSession(t)

	src.push(t, primary, store.KindEvents, store.Snapshot{
		Events: []domain.Event{{ID: "e1"}, {ID: "e2"}},
	})
	require.Eventually(t, func() bool {
		return len(sess.Current().Events) == 2
	}, 2*time.Second, 10*time.Millisecond)

	// Snapshots replace wholesale, so a shrunk collection shrinks the cache.
	src.push(t, primary, store.KindEvents, store.Snapshot{
		Events: []domain.Event{{ID: "e2"}},
	})
	require.Eventually(t, func() bool {
		data := sess.Current()
		return len(data.Events) == 1 && data.Events[0].ID == "e2"
	}, 2*time.Second, 10*time.Millisecond)
}

func TestSessionEmployeesComeBackSorted(t *testing.T) {
	sess, src := startSession(t)

	two, one := 2, 1
	src.push(t, primary, store.KindEmployees, store.Snapshot{
		Employees: []domain.Employee{
			{ID: "ben", SortOrder: &two},
			{ID: "ana", SortOrder: &one},
		},
	})

	require.Eventually(t, func() bool {
		data := sess.Current()
		return len(data.Employees) == 2 && data.Employees[0].ID == "ana"
	}, 2*time.Second, 10*time.Millisecond)
}

func TestCrossViewLifecycle(t *testing.T) {
	sess, src := startSession(t)

	require.NoError(t, sess.EnableCrossView(sibling))
	// Enabling again for the same partition is a no-op.
	require.NoError(t, sess.EnableCrossView(sibling))

	src.push(t, sibling, store.KindEvents, store.Snapshot{
		Events: []domain.Event{{ID: "x1"}},
	})
	src.push(t, sibling, store.KindEmployees, store.Snapshot{
		Employees: []domain.Employee{{ID: "zoe"}},
	})

	require.Eventually(t, func() bool {
		data := sess.Current()
		return data.CrossPartition != nil && len(data.CrossEvents) == 1 && len(data.CrossEmployees) == 1
	}, 2*time.Second, 10*time.Millisecond)

	sess.DisableCrossView()
	data := sess.Current()
	require.Nil(t, data.CrossPartition)
	require.Empty(t, data.CrossEvents)
	require.Empty(t, data.CrossEmployees)
}

func TestCrossViewDoesNotTouchPrimaryCaches(t *testing.T) {
	sess, src := startSession(t)

	src.push(t, primary, store.KindEvents, store.Snapshot{
		Events: []domain.Event{{ID: "mine"}},
	})
	require.Eventually(t, func() bool {
		return len(sess.Current().Events) == 1
	}, 2*time.Second, 10*time.Millisecond)

	require.NoError(t, sess.EnableCrossView(sibling))
	src.push(t, sibling, store.KindEvents, store.Snapshot{
		Events: []domain.Event{{ID: "theirs"}},
	})

	require.Eventually(t, func() bool {
		return len(sess.Current().CrossEvents) == 1
	}, 2*time.Second, 10*time.Millisecond)

	data := sess.Current()
	require.Len(t, data.Events, 1)
	require.Equal(t, "mine", data.Events[0].ID)
	require.Equal(t, "theirs", data.CrossEvents[0].ID)
}
