package domain

import (
	"sort"
	"strings"
)

// ColorToken is a symbolic display color drawn from the fixed palette.
type ColorToken string

// Palette lists the color tokens assignable to employees. Presentation maps
// tokens to actual styling; the service only validates membership.
var Palette = []ColorToken{
	"blue", "green", "purple", "orange", "red", "teal", "pink", "amber",
	"indigo", "cyan", "lime", "slate",
}

// ValidColorToken reports whether the token is part of the palette.
func ValidColorToken(c ColorToken) bool {
	for _, p := range Palette {
		if p == c {
			return true
		}
	}
	return false
}

// Employee is one schedulable person in a partition's roster.
type Employee struct {
	ID         string     `json:"id"`
	Name       string     `json:"name"`
	Title      string     `json:"title,omitempty"`
	Color      ColorToken `json:"color"`
	SortOrder  *int       `json:"sortOrder,omitempty"`
	Region     string     `json:"region"`
	Department string     `json:"department"`
}

// Partition returns the partition tags of the employee.
func (e *Employee) Partition() Partition {
	return Partition{Region: e.Region, Department: e.Department}
}

// SlugID derives an employee id from a display name: lowercased, spaces
// collapsed to single hyphens.
func SlugID(name string) string {
	fields := strings.Fields(strings.ToLower(strings.TrimSpace(name)))
	return strings.Join(fields, "-")
}

// SortEmployees orders a roster for display: ascending SortOrder, employees
// without one last, ties kept in insertion order (stable).
func SortEmployees(employees []Employee) {
	sort.SliceStable(employees, func(i, j int) bool {
		a, b := employees[i].SortOrder, employees[j].SortOrder
		switch {
		case a == nil && b == nil:
			return false
		case a == nil:
			return false
		case b == nil:
			return true
		default:
			return *a < *b
		}
	})
}
