// file: internals/constants/roles.go
package constants

const (
	RoleAdmin   = "admin"
	RoleTeacher = "teacher"
	RoleStaff   = "staff"
	RoleStudent = "student"
)

var AllowedRoles = []string{RoleAdmin, RoleTeacher, RoleStaff, RoleStudent}
