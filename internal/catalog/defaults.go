package catalog

// Compiled-in configuration mirroring the legacy deployments. YAML files in
// the catalog directory override or extend these.

func defaultCatalog() *Catalog {
	fieldService := DepartmentConfig{
		ID:    "field_service",
		Label: "Field Service",
		EventTypes: []string{
			"Install",
			"PM",
			"Service Visit",
			"Software Upgrade",
			"De Install",
			"Acceptance Test",
			"Remote Service",
			"Site Visit",
			"No Travel",
			"Vacation",
			"First Line",
			"Custom",
		},
		EventTypeColors: map[string]string{
			"Install":          "blue",
			"PM":               "green",
			"Service Visit":    "yellow",
			"Software Upgrade": "purple",
			"De Install":       "red",
			"Acceptance Test":  "indigo",
			"Remote Service":   "teal",
			"Site Visit":       "lime",
			"No Travel":        "slate",
			"Vacation":         "sky",
			"First Line":       "orange",
			"Custom":           "pink",
		},
		ComboColors: map[string]string{
			"PM+Software Upgrade": "cyan",
		},
		Products: []string{
			"Catalyst +",
			"Catalyst Classic",
			"Sentinel",
			"VCLP",
			"c4D Server",
			"cAutoVerify",
		},
	}

	clinical := DepartmentConfig{
		ID:    "clinical",
		Label: "Clinical Applications",
		EventTypes: []string{
			"First Line",
			"Vacation",
			"Refresh Catalyst",
			"Refresh Sentinel",
			"Phase 1 Catalyst Training",
			"Phase 2 Catalyst Training",
			"Phase 1 Sentinel Training",
			"Phase 2 Sentinel Training",
			"Custom",
		},
		EventTypeColors: map[string]string{
			"First Line":                "orange",
			"Vacation":                  "sky",
			"Refresh Catalyst":          "green",
			"Refresh Sentinel":          "teal",
			"Phase 1 Catalyst Training": "blue",
			"Phase 2 Catalyst Training": "indigo",
			"Phase 1 Sentinel Training": "purple",
			"Phase 2 Sentinel Training": "fuchsia",
			"Custom":                    "pink",
		},
		ComboColors: map[string]string{},
		Products: []string{
			"Catalyst + HD",
			"Catalyst + Lite",
			"Catalyst + HD PT",
			"Sentinel",
			"cAutoVerify",
		},
	}

	americas := RegionConfig{
		ID:    "americas",
		Label: "Americas",
		Holidays: []Holiday{
			{Month: 1, Day: 1, Label: "New Year's Day"},
			{Month: 2, Day: 16, Label: "President's Day"},
			{Month: 5, Day: 25, Label: "Memorial Day"},
			{Month: 7, Day: 3, Label: "Independence Day"},
			{Month: 9, Day: 7, Label: "Labor Day"},
			{Month: 11, Day: 26, Label: "Thanksgiving"},
			{Month: 11, Day: 27, Label: "Thanksgiving"},
			{Month: 12, Day: 25, Label: "Christmas Day"},
		},
		Reminders: []Reminder{
			{ID: "timecard", Label: "Time Card", StartDate: "2026-01-05", IntervalDays: 14, Color: "amber"},
			{ID: "payday", Label: "Payday", StartDate: "2026-01-09", IntervalDays: 14, Color: "emerald"},
		},
		AdminPassword: "crad2026",
	}

	return &Catalog{
		Departments: map[string]DepartmentConfig{
			fieldService.ID: fieldService,
			clinical.ID:     clinical,
		},
		Regions: map[string]RegionConfig{
			americas.ID: americas,
		},
		departmentOrder: []string{fieldService.ID, clinical.ID},
	}
}
