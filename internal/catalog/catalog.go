package catalog

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"
)

// DepartmentConfig is the static per-department vocabulary: recognized event
// types, their display colors, combo-color overrides and the product catalog.
type DepartmentConfig struct {
	ID              string            `yaml:"id" json:"id"`
	Label           string            `yaml:"label" json:"label"`
	EventTypes      []string          `yaml:"event_types" json:"eventTypes"`
	EventTypeColors map[string]string `yaml:"event_type_colors" json:"eventTypeColors"`
	ComboColors     map[string]string `yaml:"combo_colors" json:"comboColors"`
	Products        []string          `yaml:"products" json:"products"`
}

// HasEventType reports whether the label is part of the department vocabulary.
func (d *DepartmentConfig) HasEventType(label string) bool {
	for _, t := range d.EventTypes {
		if t == label {
			return true
		}
	}
	return false
}

// HasProduct reports whether the label is part of the product catalog.
func (d *DepartmentConfig) HasProduct(label string) bool {
	for _, p := range d.Products {
		if p == label {
			return true
		}
	}
	return false
}

// Holiday is a fixed-date annual holiday (year ignored).
type Holiday struct {
	Month int    `yaml:"month" json:"month"`
	Day   int    `yaml:"day" json:"day"`
	Label string `yaml:"label" json:"label"`
}

// Reminder is a recurring banner: fires on StartDate and every IntervalDays
// thereafter.
type Reminder struct {
	ID           string `yaml:"id" json:"id"`
	Label        string `yaml:"label" json:"label"`
	StartDate    string `yaml:"start_date" json:"startDate"`
	IntervalDays int    `yaml:"interval_days" json:"intervalDays"`
	Color        string `yaml:"color" json:"color"`
}

// RegionConfig is the static per-region configuration.
type RegionConfig struct {
	ID        string     `yaml:"id" json:"id"`
	Label     string     `yaml:"label" json:"label"`
	Holidays  []Holiday  `yaml:"holidays" json:"holidays"`
	Reminders []Reminder `yaml:"reminders" json:"reminders"`
	// AdminPassword never leaves the process.
	AdminPassword string `yaml:"admin_password" json:"-"`
}

// Catalog holds every known region and department configuration.
type Catalog struct {
	Departments map[string]DepartmentConfig
	Regions     map[string]RegionConfig

	// departmentOrder preserves load order so cross-view picks the first
	// non-active department deterministically.
	departmentOrder []string
}

// Department returns the configuration for the given department id.
func (c *Catalog) Department(id string) (DepartmentConfig, error) {
	dept, ok := c.Departments[id]
	if !ok {
		return DepartmentConfig{}, fmt.Errorf("unknown department %q", id)
	}
	return dept, nil
}

// Region returns the configuration for the given region id.
func (c *Catalog) Region(id string) (RegionConfig, error) {
	region, ok := c.Regions[id]
	if !ok {
		return RegionConfig{}, fmt.Errorf("unknown region %q", id)
	}
	return region, nil
}

// CrossDepartment returns the first configured department other than the
// active one, used by the cross-view overlay.
func (c *Catalog) CrossDepartment(activeID string) (DepartmentConfig, bool) {
	for _, id := range c.departmentOrder {
		if id != activeID {
			return c.Departments[id], true
		}
	}
	return DepartmentConfig{}, false
}

// ComboKey canonicalizes a multi-type combination for combo-color lookup:
// types sorted ascending and joined with "+". Tests and stored configuration
// depend on this exact format.
func ComboKey(eventTypes []string) string {
	sorted := make([]string, len(eventTypes))
	copy(sorted, eventTypes)
	sort.Strings(sorted)
	return strings.Join(sorted, "+")
}

type catalogFile struct {
	Departments []DepartmentConfig `yaml:"departments"`
	Regions     []RegionConfig     `yaml:"regions"`
}

// Load builds the catalog from compiled-in defaults, then overlays any YAML
// files found in dir (sorted by name). A missing or empty dir yields the
// defaults unchanged.
func Load(dir string) (*Catalog, error) {
	cat := defaultCatalog()

	if dir == "" {
		return cat, nil
	}
	entries, err := os.ReadDir(dir)
	if err != nil {
		if os.IsNotExist(err) {
			return cat, nil
		}
		return nil, fmt.Errorf("read catalog dir: %w", err)
	}

	names := make([]string, 0, len(entries))
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		name := entry.Name()
		if strings.HasSuffix(name, ".yaml") || strings.HasSuffix(name, ".yml") {
			names = append(names, name)
		}
	}
	sort.Strings(names)

	for _, name := range names {
		data, err := os.ReadFile(filepath.Join(dir, name))
		if err != nil {
			return nil, fmt.Errorf("read catalog file %s: %w", name, err)
		}
		var file catalogFile
		if err := yaml.Unmarshal(data, &file); err != nil {
			return nil, fmt.Errorf("parse catalog file %s: %w", name, err)
		}
		for _, dept := range file.Departments {
			if dept.ID == "" {
				return nil, fmt.Errorf("catalog file %s: department without id", name)
			}
			if _, exists := cat.Departments[dept.ID]; !exists {
				cat.departmentOrder = append(cat.departmentOrder, dept.ID)
			}
			dept.normalize()
			cat.Departments[dept.ID] = dept
		}
		for _, region := range file.Regions {
			if region.ID == "" {
				return nil, fmt.Errorf("catalog file %s: region without id", name)
			}
			cat.Regions[region.ID] = region
		}
	}

	return cat, nil
}

func (d *DepartmentConfig) normalize() {
	if d.EventTypeColors == nil {
		d.EventTypeColors = map[string]string{}
	}
	if d.ComboColors == nil {
		d.ComboColors = map[string]string{}
	}
}
