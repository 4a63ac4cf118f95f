// file: internals/features/home/navigation/menu.go
//
// Menu navigasi statis yang difilter per role. BuildMenu murni: tree default
// dipangkas sesuai role, trail item aktif ditandai, grup kosong dibuang.
package navigation

import "strings"

type MenuItem struct {
	Label    string   `json:"label"`
	Path     string   `json:"path"`
	Icon     string   `json:"icon,omitempty"`
	Roles    []string `json:"-"` // kosong = semua role
	IsActive bool     `json:"is_active"`
}

type MenuGroup struct {
	Label    string     `json:"label"`
	Items    []MenuItem `json:"items"`
	IsActive bool       `json:"is_active"` // true kalau salah satu item aktif
}

// defaultTree: satu sumber definisi menu untuk semua role.
func defaultTree() []MenuGroup {
	adminOnly := []string{"admin"}
	adminTeacher := []string{"admin", "teacher"}
	return []MenuGroup{
		{
			Label: "Utama",
			Items: []MenuItem{
				{Label: "Dashboard", Path: "/dashboard", Icon: "home"},
			},
		},
		{
			Label: "Akademik",
			Items: []MenuItem{
				{Label: "Kelas", Path: "/classes", Icon: "layers", Roles: adminTeacher},
				{Label: "Mapel", Path: "/subjects", Icon: "book", Roles: adminTeacher},
				{Label: "Ujian", Path: "/exams", Icon: "clipboard", Roles: adminTeacher},
				{Label: "Guru", Path: "/teachers", Icon: "users", Roles: adminOnly},
			},
		},
		{
			Label: "Operasional",
			Items: []MenuItem{
				{Label: "Transportasi", Path: "/transport-trips", Icon: "truck", Roles: adminOnly},
				{Label: "Tarif & Biaya", Path: "/fee-structures", Icon: "credit-card", Roles: adminOnly},
				{Label: "Approval", Path: "/approval-settings", Icon: "check-circle", Roles: adminOnly},
			},
		},
	}
}

func roleAllowed(roles []string, role string) bool {
	if len(roles) == 0 {
		return true
	}
	for _, r := range roles {
		if r == role {
			return true
		}
	}
	return false
}

// BuildMenu memangkas tree untuk role tsb dan menandai trail aktif
// berdasarkan prefix path. Grup tanpa item tersisa tidak dikembalikan.
func BuildMenu(role, activePath string) []MenuGroup {
	role = strings.ToLower(strings.TrimSpace(role))
	activePath = strings.TrimSpace(activePath)

	out := make([]MenuGroup, 0)
	for _, g := range defaultTree() {
		kept := make([]MenuItem, 0, len(g.Items))
		groupActive := false
		for _, it := range g.Items {
			if !roleAllowed(it.Roles, role) {
				continue
			}
			if activePath != "" && strings.HasPrefix(activePath, it.Path) {
				it.IsActive = true
				groupActive = true
			}
			kept = append(kept, it)
		}
		if len(kept) == 0 {
			continue
		}
		out = append(out, MenuGroup{Label: g.Label, Items: kept, IsActive: groupActive})
	}
	return out
}
