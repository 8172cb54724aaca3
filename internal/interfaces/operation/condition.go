// Package operation
package operation

import "time"

type Operator string

const (
	OpEqual          Operator = "="
	OpNotEqual       Operator = "<>"
	OpGreater        Operator = ">"
	OpGreaterOrEqual Operator = ">="
	OpLess           Operator = "<"
	OpLessOrEqual    Operator = "<="
)

type Predicate struct {
	Column   Column
	Operator Operator
	Value    interface{}
}

type Order struct {
	Column    Column
	Direction Direction
}

// Condition 可组合的查询条件, 所有谓词以 AND 连接
type Condition struct {
	predicates []Predicate
	orders     []Order
	limit      int
}

func NewCondition() *Condition {
	return &Condition{predicates: make([]Predicate, 0, 4)}
}

func (condition *Condition) Where(column Column, operator Operator, value interface{}) *Condition {
	condition.predicates = append(condition.predicates, Predicate{Column: column, Operator: operator, Value: value})
	return condition
}

func (condition *Condition) Equal(column Column, value interface{}) *Condition {
	return condition.Where(column, OpEqual, value)
}

// Between 闭区间 [from, to]
func (condition *Condition) Between(column Column, from, to interface{}) *Condition {
	return condition.Where(column, OpGreaterOrEqual, from).Where(column, OpLessOrEqual, to)
}

// OnDate 匹配与 date 同一天的时间, 不比较时分秒
// 日期取 date 自身的年月日, 按UTC比较
func (condition *Condition) OnDate(column Column, date time.Time) *Condition {
	start := time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, time.UTC)
	return condition.Where(column, OpGreaterOrEqual, start).Where(column, OpLess, start.AddDate(0, 0, 1))
}

func (condition *Condition) OrderBy(column Column, direction Direction) *Condition {
	condition.orders = append(condition.orders, Order{Column: column, Direction: direction})
	return condition
}

func (condition *Condition) Limit(limit int) *Condition {
	condition.limit = limit
	return condition
}

func (condition *Condition) Predicates() []Predicate { return condition.predicates }

func (condition *Condition) Orders() []Order { return condition.orders }

// LimitValue 返回0表示不限制
func (condition *Condition) LimitValue() int { return condition.limit }

// Columns 按出现顺序返回条件中引用的所有列, 执行前据此校验列名
func (condition *Condition) Columns() []Column {
	columns := make([]Column, 0, len(condition.predicates)+len(condition.orders))
	for _, predicate := range condition.predicates {
		columns = append(columns, predicate.Column)
	}
	for _, order := range condition.orders {
		columns = append(columns, order.Column)
	}
	return columns
}
