package catalog_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/spec-kit/crewcal/internal/catalog"
)

func TestComboKeyIsOrderInsensitive(t *testing.T) {
	require.Equal(t, "PM+Software Upgrade", catalog.ComboKey([]string{"Software Upgrade", "PM"}))
	require.Equal(t, "PM+Software Upgrade", catalog.ComboKey([]string{"PM", "Software Upgrade"}))
	require.Equal(t, "Install", catalog.ComboKey([]string{"Install"}))
}

func TestDefaultsCarryBothDepartments(t *testing.T) {
	cat, err := catalog.Load("")
	require.NoError(t, err)

	fs, err := cat.Department("field_service")
	require.NoError(t, err)
	require.True(t, fs.HasEventType("Install"))
	require.True(t, fs.HasEventType("PM"))
	require.Equal(t, "cyan", fs.ComboColors["PM+Software Upgrade"])

	clinical, err := cat.Department("clinical")
	require.NoError(t, err)
	require.NotEmpty(t, clinical.EventTypes)
	require.Empty(t, clinical.ComboColors)

	_, err = cat.Department("nope")
	require.Error(t, err)
}

func TestDefaultRegionAmericas(t *testing.T) {
	cat, err := catalog.Load("")
	require.NoError(t, err)

	region, err := cat.Region("americas")
	require.NoError(t, err)
	require.NotEmpty(t, region.Holidays)
	require.Len(t, region.Reminders, 2)
	require.NotEmpty(t, region.AdminPassword)
}

func TestCrossDepartmentPicksFirstOther(t *testing.T) {
	cat, err := catalog.Load("")
	require.NoError(t, err)

	cross, ok := cat.CrossDepartment("field_service")
	require.True(t, ok)
	require.Equal(t, "clinical", cross.ID)

	cross, ok = cat.CrossDepartment("clinical")
	require.True(t, ok)
	require.Equal(t, "field_service", cross.ID)
}

func TestLoadMissingDirYieldsDefaults(t *testing.T) {
	cat, err := catalog.Load(filepath.Join(t.TempDir(), "does-not-exist"))
	require.NoError(t, err)
	_, err = cat.Department("field_service")
	require.NoError(t, err)
}

func TestLoadOverlayReplacesAndAdds(t *testing.T) {
	dir := t.TempDir()
	overlay := `
departments:
  - id: field_service
    label: Field Ops
    event_types: [Install]
    products: [Symphony]
  - id: imaging
    label: Imaging
    event_types: [Scan]
regions:
  - id: emea
    label: EMEA
    admin_password: secret
`
	require.NoError(t, os.WriteFile(filepath.Join(dir, "catalog.yaml"), []byte(overlay), 0o644))

	cat, err := catalog.Load(dir)
	require.NoError(t, err)

	fs, err := cat.Department("field_service")
	require.NoError(t, err)
	require.Equal(t, "Field Ops", fs.Label)
	require.Equal(t, []string{"Install"}, fs.EventTypes)
	require.NotNil(t, fs.EventTypeColors)

	imaging, err := cat.Department("imaging")
	require.NoError(t, err)
	require.True(t, imaging.HasEventType("Scan"))

	emea, err := cat.Region("emea")
	require.NoError(t, err)
	require.Equal(t, "secret", emea.AdminPassword)

	// Defaults stay available for untouched ids.
	_, err = cat.Region("americas")
	require.NoError(t, err)
}

func TestLoadRejectsEntryWithoutID(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "bad.yaml"), []byte("departments:\n  - label: Nameless\n"), 0o644))

	_, err := catalog.Load(dir)
	require.Error(t, err)
}
