// file: internals/features/home/navigation/menu_test.go
package navigation

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func pathsOf(groups []MenuGroup) []string {
	var out []string
	for _, g := range groups {
		for _, it := range g.Items {
			out = append(out, it.Path)
		}
	}
	return out
}

func TestBuildMenu_AdminSeesEverything(t *testing.T) {
	groups := BuildMenu("admin", "")
	assert.Equal(t, []string{
		"/dashboard",
		"/classes", "/subjects", "/exams", "/teachers",
		"/transport-trips", "/fee-structures", "/approval-settings",
	}, pathsOf(groups))
}

func TestBuildMenu_TeacherPruned(t *testing.T) {
	groups := BuildMenu("teacher", "")

	paths := pathsOf(groups)
	assert.Contains(t, paths, "/dashboard")
	assert.Contains(t, paths, "/classes")
	assert.NotContains(t, paths, "/teachers")
	assert.NotContains(t, paths, "/fee-structures")

	// Grup Operasional kosong untuk teacher → dibuang seluruhnya.
	for _, g := range groups {
		assert.NotEqual(t, "Operasional", g.Label)
	}
}

func TestBuildMenu_StudentOnlyPublicItems(t *testing.T) {
	groups := BuildMenu("student", "")
	assert.Equal(t, []string{"/dashboard"}, pathsOf(groups))
}

func TestBuildMenu_ActiveTrail(t *testing.T) {
	groups := BuildMenu("admin", "/classes/abc-123/edit")

	var found bool
	for _, g := range groups {
		for _, it := range g.Items {
			if it.Path == "/classes" {
				found = true
				assert.True(t, it.IsActive)
				assert.True(t, g.IsActive, "grup item aktif ikut aktif")
			} else {
				assert.False(t, it.IsActive, "hanya trail yang aktif: %s", it.Path)
			}
		}
	}
	require.True(t, found)
}

func TestBuildMenu_RoleCaseInsensitive(t *testing.T) {
	assert.Equal(t, pathsOf(BuildMenu("admin", "")), pathsOf(BuildMenu("  ADMIN ", "")))
}
