// Package operation
package operation

type RoleName string

const (
	RoleCustomer       RoleName = "Customer"
	RoleAirlineCompany RoleName = "Airline Company"
	RoleAdministrator  RoleName = "Administrator"
	RoleNotLegal       RoleName = "Not Legal"
)

// Roles 顺序即为初始化数据中的主键顺序
var Roles = []RoleName{RoleCustomer, RoleAirlineCompany, RoleAdministrator, RoleNotLegal}

func (role RoleName) String() string { return string(role) }
