// Package operation
package operation

import "errors"

var (
	// ErrBackend 数据库连接或执行失败, 原始错误被包装在内
	ErrBackend = errors.New("database backend error")
	// ErrUnknownColumn 列不属于目标表
	ErrUnknownColumn = errors.New("unknown column")
	// ErrNoFieldsToUpdate 更新时没有提供任何字段
	ErrNoFieldsToUpdate = errors.New("no fields to update")
	// ErrInvalidLimit limit 必须为正数
	ErrInvalidLimit = errors.New("limit must be greater than zero")
	// ErrUnsupportedOperator 查询条件中的运算符不受支持
	ErrUnsupportedOperator = errors.New("unsupported operator")
	// ErrRoleNotFound 用户角色不存在
	ErrRoleNotFound = errors.New("user role does not exist")
	// ErrDuplicateEntry 违反唯一约束
	ErrDuplicateEntry = errors.New("duplicate entry")
	// ErrForeignKeyViolation 违反外键约束
	ErrForeignKeyViolation = errors.New("foreign key violation")
	// ErrUserNotFound 用户不存在
	ErrUserNotFound = errors.New("user does not exist")
	// ErrCustomerNotFound 客户不存在
	ErrCustomerNotFound = errors.New("customer does not exist")
	// ErrAirlineNotFound 航空公司不存在
	ErrAirlineNotFound = errors.New("airline company does not exist")
	// ErrWrongPassword 密码错误
	ErrWrongPassword = errors.New("wrong password")
	// ErrPasswordEncode 密码编码错误
	ErrPasswordEncode = errors.New("password encode error")
	// ErrFixtureFileNotFound 存储过程文件不存在
	ErrFixtureFileNotFound = errors.New("fixture file not found")
)
