package domain_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/spec-kit/crewcal/internal/domain"
)

func TestSlugID(t *testing.T) {
	require.Equal(t, "jane-doe", domain.SlugID("Jane Doe"))
	require.Equal(t, "jane-doe", domain.SlugID("  Jane   Doe  "))
	require.Equal(t, "jd", domain.SlugID("JD"))
	require.Empty(t, domain.SlugID("   "))
}

func intp(v int) *int { return &v }

func TestSortEmployeesOrdersBySortOrder(t *testing.T) {
	roster := []domain.Employee{
		{ID: "c", SortOrder: intp(3)},
		{ID: "a", SortOrder: intp(1)},
		{ID: "b", SortOrder: intp(2)},
	}
	domain.SortEmployees(roster)

	require.Equal(t, "a", roster[0].ID)
	require.Equal(t, "b", roster[1].ID)
	require.Equal(t, "c", roster[2].ID)
}

func TestSortEmployeesNilSortOrderLast(t *testing.T) {
	roster := []domain.Employee{
		{ID: "unordered1"},
		{ID: "b", SortOrder: intp(2)},
		{ID: "unordered2"},
		{ID: "a", SortOrder: intp(1)},
	}
	domain.SortEmployees(roster)

	require.Equal(t, "a", roster[0].ID)
	require.Equal(t, "b", roster[1].ID)
	// Unordered entries keep their relative insertion order at the tail.
	require.Equal(t, "unordered1", roster[2].ID)
	require.Equal(t, "unordered2", roster[3].ID)
}

func TestValidColorToken(t *testing.T) {
	require.True(t, domain.ValidColorToken("blue"))
	require.True(t, domain.ValidColorToken("slate"))
	require.False(t, domain.ValidColorToken("magenta-ish"))
	require.False(t, domain.ValidColorToken(""))
}

func TestParseViewMode(t *testing.T) {
	mode, ok := domain.ParseViewMode("biweekly")
	require.True(t, ok)
	require.Equal(t, domain.ViewBiweekly, mode)

	mode, ok = domain.ParseViewMode("")
	require.True(t, ok)
	require.Equal(t, domain.ViewWeek, mode)

	mode, ok = domain.ParseViewMode("quarterly")
	require.False(t, ok)
	require.Equal(t, domain.ViewWeek, mode)
}
