package domain

import "fmt"

// Partition is the (region, department) pair scoping stored entities and
// configuration lookups.
type Partition struct {
	Region     string `json:"region"`
	Department string `json:"department"`
}

func (p Partition) String() string {
	return fmt.Sprintf("%s/%s", p.Region, p.Department)
}

// ViewMode enumerates the supported calendar layouts.
type ViewMode string

const (
	ViewWeek     ViewMode = "week"
	ViewBiweekly ViewMode = "biweekly"
	ViewMonth    ViewMode = "month"
	ViewTwoMonth ViewMode = "twomonth"
)

// ParseViewMode validates a view mode string, defaulting to week.
func ParseViewMode(s string) (ViewMode, bool) {
	switch ViewMode(s) {
	case ViewWeek, ViewBiweekly, ViewMonth, ViewTwoMonth:
		return ViewMode(s), true
	case "":
		return ViewWeek, true
	}
	return ViewWeek, false
}
