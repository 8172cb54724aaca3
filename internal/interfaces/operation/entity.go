// Package operation
package operation

// Entity 描述一张表, 泛型操作通过它在编译期确定表名
type Entity interface {
	TableName() string
}

// Column 列名, 可以是数据库列名也可以是结构体字段名, 执行前会按表结构校验
type Column string

func (column Column) String() string { return string(column) }

const ColumnId Column = "id"

const (
	UserColumnUsername Column = "username"
	UserColumnEmail    Column = "email"
	UserColumnRole     Column = "user_role"

	CustomerColumnUserId       Column = "user_id"
	CustomerColumnFirstName    Column = "first_name"
	CustomerColumnAddress      Column = "address"
	CustomerColumnPhoneNo      Column = "phone_no"
	CustomerColumnCreditCardNo Column = "credit_card_no"

	AirlineColumnName      Column = "name"
	AirlineColumnCountryId Column = "country_id"
	AirlineColumnUserId    Column = "user_id"

	CountryColumnName Column = "name"

	FlightColumnAirlineId            Column = "airline_company_id"
	FlightColumnOriginCountryId      Column = "origin_country_id"
	FlightColumnDestinationCountryId Column = "destination_country_id"
	FlightColumnDepartureTime        Column = "departure_time"
	FlightColumnLandingTime          Column = "landing_time"
	FlightColumnRemainingTickets     Column = "remaining_tickets"

	TicketColumnFlightId   Column = "flight_id"
	TicketColumnCustomerId Column = "customer_id"
)

type Direction int

const (
	Ascending Direction = iota
	Descending
)

func (direction Direction) String() string {
	if direction == Descending {
		return "desc"
	}
	return "asc"
}
