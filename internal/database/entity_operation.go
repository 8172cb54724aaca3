package database

import (
	"fmt"
	"github.com/half-nothing/simple-flights/internal/interfaces/operation"
	"github.com/samber/lo"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// EntityOperation 单张表的通用操作, 表名与列信息来自 T 的 gorm 表结构
type EntityOperation[T operation.Entity] struct {
	repository *Repository
	table      string
}

func NewEntityOperation[T operation.Entity](repository *Repository) *EntityOperation[T] {
	var entity T
	return &EntityOperation[T]{repository: repository, table: entity.TableName()}
}

func (op *EntityOperation[T]) Table() string { return op.table }

// columnName 将列名或字段名解析为数据库列名, 关联字段没有对应的列
func (op *EntityOperation[T]) columnName(column operation.Column) (string, error) {
	stmt := &gorm.Statement{DB: op.repository.db}
	if err := stmt.Parse(new(T)); err != nil {
		return "", op.repository.translateError("parse schema of "+op.table, err)
	}
	field := stmt.Schema.LookUpField(column.String())
	if field == nil || field.DBName == "" {
		return "", fmt.Errorf("%w: %s.%s", operation.ErrUnknownColumn, op.table, column)
	}
	return field.DBName, nil
}

func (op *EntityOperation[T]) column(column operation.Column) (clause.Column, error) {
	name, err := op.columnName(column)
	if err != nil {
		return clause.Column{}, err
	}
	return clause.Column{Table: clause.CurrentTable, Name: name}, nil
}

func predicateExpression(column clause.Column, predicate operation.Predicate) (clause.Expression, error) {
	value := normalizeValue(predicate.Value)
	switch predicate.Operator {
	case operation.OpEqual:
		return clause.Eq{Column: column, Value: value}, nil
	case operation.OpNotEqual:
		return clause.Neq{Column: column, Value: value}, nil
	case operation.OpGreater:
		return clause.Gt{Column: column, Value: value}, nil
	case operation.OpGreaterOrEqual:
		return clause.Gte{Column: column, Value: value}, nil
	case operation.OpLess:
		return clause.Lt{Column: column, Value: value}, nil
	case operation.OpLessOrEqual:
		return clause.Lte{Column: column, Value: value}, nil
	default:
		return nil, fmt.Errorf("%w: %s", operation.ErrUnsupportedOperator, predicate.Operator)
	}
}

// applyCondition 先校验条件中引用的所有列, 再拼接查询, 结果最后按主键排序以保证顺序稳定
func (op *EntityOperation[T]) applyCondition(db *gorm.DB, condition *operation.Condition) (*gorm.DB, error) {
	if condition == nil {
		condition = operation.NewCondition()
	}
	columns := make(map[operation.Column]clause.Column)
	for _, name := range condition.Columns() {
		if _, ok := columns[name]; ok {
			continue
		}
		column, err := op.column(name)
		if err != nil {
			return nil, err
		}
		columns[name] = column
	}
	if condition.LimitValue() < 0 {
		return nil, operation.ErrInvalidLimit
	}
	for _, predicate := range condition.Predicates() {
		expression, err := predicateExpression(columns[predicate.Column], predicate)
		if err != nil {
			return nil, err
		}
		db = db.Where(expression)
	}
	for _, order := range condition.Orders() {
		db = db.Order(clause.OrderByColumn{Column: columns[order.Column], Desc: order.Direction == operation.Descending})
	}
	if condition.LimitValue() > 0 {
		db = db.Limit(condition.LimitValue())
	}
	return db.Order(clause.OrderByColumn{Column: clause.PrimaryColumn}), nil
}

func (op *EntityOperation[T]) ResetAutoIncrement() error {
	db, cancel := op.repository.session()
	defer cancel()
	table := clause.Table{Name: op.table}
	var err error
	switch db.Dialector.Name() {
	case "postgres":
		err = db.Exec("TRUNCATE TABLE ? RESTART IDENTITY CASCADE", table).Error
	case "mysql":
		if err = db.Exec("DELETE FROM ?", table).Error; err == nil {
			err = db.Exec("ALTER TABLE ? AUTO_INCREMENT = 1", table).Error
		}
	default:
		err = db.Transaction(func(tx *gorm.DB) error {
			if err := tx.Exec("DELETE FROM ?", table).Error; err != nil {
				return err
			}
			return tx.Exec("DELETE FROM sqlite_sequence WHERE name = ?", op.table).Error
		})
	}
	if err != nil {
		return op.repository.translateError("reset auto increment of "+op.table, err)
	}
	op.repository.logger.DebugF("Table %s has been cleared and its identity restarted", op.table)
	return nil
}

func (op *EntityOperation[T]) GetAll() (rows []*T, err error) {
	return op.GetByCondition(nil)
}

func (op *EntityOperation[T]) GetAllLimited(limit int) (rows []*T, err error) {
	if limit <= 0 {
		return nil, operation.ErrInvalidLimit
	}
	return op.GetByCondition(operation.NewCondition().Limit(limit))
}

func (op *EntityOperation[T]) GetAllOrdered(column operation.Column, direction operation.Direction) (rows []*T, err error) {
	return op.GetByCondition(operation.NewCondition().OrderBy(column, direction))
}

func (op *EntityOperation[T]) GetByColumnValue(column operation.Column, value interface{}) (rows []*T, err error) {
	return op.GetByCondition(operation.NewCondition().Equal(column, value))
}

func (op *EntityOperation[T]) GetByCondition(condition *operation.Condition) (rows []*T, err error) {
	db, cancel := op.repository.session()
	defer cancel()
	db, err = op.applyCondition(db, condition)
	if err != nil {
		return nil, err
	}
	rows = make([]*T, 0)
	if err = db.Find(&rows).Error; err != nil {
		return nil, op.repository.translateError("query "+op.table, err)
	}
	return rows, nil
}

func (op *EntityOperation[T]) Add(entity *T) error {
	db, cancel := op.repository.session()
	defer cancel()
	if err := db.Create(entity).Error; err != nil {
		return op.repository.translateError("add to "+op.table, err)
	}
	op.repository.logger.DebugF("%+v has been added to %s", *entity, op.table)
	return nil
}

func (op *EntityOperation[T]) AddAll(entities []*T) error {
	if len(entities) == 0 {
		return nil
	}
	db, cancel := op.repository.session()
	defer cancel()
	if err := db.Create(entities).Error; err != nil {
		return op.repository.translateError("add all to "+op.table, err)
	}
	op.repository.logger.DebugF("%v have been added to %s", lo.Map(entities, func(entity *T, _ int) T { return *entity }), op.table)
	return nil
}

func (op *EntityOperation[T]) DeleteById(idColumn operation.Column, id interface{}) (int64, error) {
	column, err := op.column(idColumn)
	if err != nil {
		return 0, err
	}
	db, cancel := op.repository.session()
	defer cancel()
	result := db.Where(clause.Eq{Column: column, Value: id}).Delete(new(T))
	if result.Error != nil {
		return 0, op.repository.translateError("delete from "+op.table, result.Error)
	}
	op.repository.logger.DebugF("A row with the id %v has been deleted from %s", id, op.table)
	return result.RowsAffected, nil
}

func (op *EntityOperation[T]) UpdateById(idColumn operation.Column, id interface{}, fields map[operation.Column]interface{}) (int64, error) {
	if len(fields) == 0 {
		return 0, operation.ErrNoFieldsToUpdate
	}
	column, err := op.column(idColumn)
	if err != nil {
		return 0, err
	}
	values := make(map[string]interface{}, len(fields))
	for field, value := range fields {
		name, err := op.columnName(field)
		if err != nil {
			return 0, err
		}
		values[name] = normalizeValue(value)
	}
	db, cancel := op.repository.session()
	defer cancel()
	result := db.Model(new(T)).Where(clause.Eq{Column: column, Value: id}).Updates(values)
	if result.Error != nil {
		return 0, op.repository.translateError("update "+op.table, result.Error)
	}
	op.repository.logger.DebugF("A row with the id %v has been updated in %s with %v", id, op.table, values)
	return result.RowsAffected, nil
}
