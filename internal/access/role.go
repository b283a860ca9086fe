// Package access memetakan peran pengguna ke menu yang boleh dibuka.
// Pemeriksaan kredensial ada di usecase; paket ini hanya mengenal nilai Role.
package access

type Role string

const (
	RoleAdmin                Role = "ADMIN"
	RoleBendaharaPengeluaran Role = "BENDAHARA_PENGELUARAN"
	RoleBendaharaPenerimaan  Role = "BENDAHARA_PENERIMAAN"
	RoleVerifikator          Role = "VERIFIKATOR"
)

var AllRoles = []Role{
	RoleAdmin,
	RoleBendaharaPengeluaran,
	RoleBendaharaPenerimaan,
	RoleVerifikator,
}

func (r Role) IsValid() bool {
	for _, x := range AllRoles {
		if r == x {
			return true
		}
	}
	return false
}

type MenuID string

const (
	MenuDashboard MenuID = "dashboard"
	MenuInput     MenuID = "input"
	MenuList      MenuID = "list"
	MenuReports   MenuID = "reports"
	MenuSDD       MenuID = "sdd"
)

type MenuItem struct {
	ID    MenuID `json:"id"`
	Label string `json:"label"`
	Roles []Role `json:"-"`
}

var Menu = []MenuItem{
	{ID: MenuDashboard, Label: "Dashboard", Roles: AllRoles},
	{ID: MenuInput, Label: "Input SPJ Baru", Roles: []Role{RoleAdmin, RoleBendaharaPengeluaran, RoleBendaharaPenerimaan}},
	{ID: MenuList, Label: "Data SPJ", Roles: AllRoles},
	{ID: MenuReports, Label: "Laporan", Roles: AllRoles},
	{ID: MenuSDD, Label: "System Design", Roles: []Role{RoleAdmin}},
}

// VisibleMenu mengembalikan menu untuk role, urutan sama dengan Menu.
func VisibleMenu(role Role) []MenuItem {
	var out []MenuItem
	for _, item := range Menu {
		if item.allows(role) {
			out = append(out, item)
		}
	}
	return out
}

// Allowed melaporkan apakah role boleh membuka menu id. Menu tak dikenal selalu ditolak.
func Allowed(role Role, id MenuID) bool {
	for _, item := range Menu {
		if item.ID == id {
			return item.allows(role)
		}
	}
	return false
}

func (m MenuItem) allows(role Role) bool {
	for _, r := range m.Roles {
		if r == role {
			return true
		}
	}
	return false
}
