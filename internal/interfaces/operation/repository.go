// Package operation
package operation

import (
	"time"
)

// EntityOperationInterface 针对单张表的通用增删改查接口
type EntityOperationInterface[T Entity] interface {
	// ResetAutoIncrement 清空表并重置自增主键, 级联清理依赖它的表
	ResetAutoIncrement() (err error)
	// GetAll 获取表中所有记录, 当err为nil时返回值rows有效
	GetAll() (rows []*T, err error)
	// GetAllLimited 获取最多limit条记录
	GetAllLimited(limit int) (rows []*T, err error)
	// GetAllOrdered 按指定列和方向排序获取所有记录
	GetAllOrdered(column Column, direction Direction) (rows []*T, err error)
	// GetByColumnValue 获取指定列等于value的所有记录
	GetByColumnValue(column Column, value interface{}) (rows []*T, err error)
	// GetByCondition 获取满足condition的所有记录
	GetByCondition(condition *Condition) (rows []*T, err error)
	// Add 写入一条记录, 成功后entity的主键被回填
	Add(entity *T) (err error)
	// AddAll 批量写入记录
	AddAll(entities []*T) (err error)
	// DeleteById 删除idColumn等于id的记录, affected为删除的行数
	DeleteById(idColumn Column, id interface{}) (affected int64, err error)
	// UpdateById 只更新fields中给出的列, affected为更新的行数
	UpdateById(idColumn Column, id interface{}, fields map[Column]interface{}) (affected int64, err error)
}

// QueryOperationInterface 航班业务查询接口
type QueryOperationInterface interface {
	GetAirlinesByCountry(countryId uint) (airlines []*AirlineCompany, err error)
	GetFlightsByOriginCountryId(countryId uint) (flights []*Flight, err error)
	GetFlightsByDestinationCountryId(countryId uint) (flights []*Flight, err error)
	// GetFlightsByDepartureDate 起飞日期与date的年月日一致的航班
	GetFlightsByDepartureDate(date time.Time) (flights []*Flight, err error)
	// GetFlightsByLandingDate 降落日期与date的年月日一致的航班
	GetFlightsByLandingDate(date time.Time) (flights []*Flight, err error)
	// GetFlightsDepartingWithin 起飞时间在 [now, now+window] 内的航班
	GetFlightsDepartingWithin(window time.Duration) (flights []*Flight, err error)
	// GetFlightsLandingWithin 降落时间在 [now, now+window] 内的航班
	GetFlightsLandingWithin(window time.Duration) (flights []*Flight, err error)
	// GetFlightsByCustomer 客户每张机票对应一个航班, 不去重
	GetFlightsByCustomer(customerId uint) (flights []*Flight, err error)
}

// ProcedureOperationInterface 存储过程调用接口
type ProcedureOperationInterface interface {
	GetAirlineByUsername(username string) (airline *AirlineCompany, err error)
	GetCustomerByUsername(username string) (customer *Customer, err error)
	GetUserByUsername(username string) (user *User, err error)
	GetFlightsByAirlineId(airlineId uint) (flights []*Flight, err error)
	GetTicketsByCustomerId(customerId uint) (tickets []*Ticket, err error)
	// GetArrivalFlights 未来一段时间(由存储过程决定)内降落在该国家的航班
	GetArrivalFlights(countryId uint) (flights []*Flight, err error)
	// GetDepartureFlights 未来一段时间(由存储过程决定)内从该国家起飞的航班
	GetDepartureFlights(countryId uint) (flights []*Flight, err error)
	GetFlightsByParameters(originCountryId, destinationCountryId uint, date time.Time) (flights []*Flight, err error)
}

// FixtureOperationInterface 表结构与测试数据管理接口
type FixtureOperationInterface interface {
	// Migrate 创建缺失的表
	Migrate() (err error)
	// CreateAllStoredProcedures 执行文件中以 ||| 分隔的所有语句
	CreateAllStoredProcedures(filePath string) (err error)
	DropAllTables() (err error)
	ResetAllTablesAutoIncrement() (err error)
	// ResetTestDatabase 重置所有表并写入固定的测试数据
	ResetTestDatabase() (err error)
}

// UserOperationInterface 用户登录相关接口
type UserOperationInterface interface {
	// NewUser 创建一个新用户(只是创建, 没有写入数据库), 当err为nil时返回值user有效
	NewUser(username, password, email string, role uint) (user *User, err error)
	// VerifyUserPassword 验证用户密码是否正确, pass为true表示验证通过
	VerifyUserPassword(user *User, password string) (pass bool)
	// Authenticate 通过用户名和密码获取用户
	Authenticate(username, password string) (user *User, err error)
	// GetUserRole 获取用户角色
	GetUserRole(user *User) (role *UserRole, err error)
}
