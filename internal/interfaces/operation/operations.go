// Package operation
package operation

type DatabaseOperations struct {
	countries          EntityOperationInterface[Country]
	userRoles          EntityOperationInterface[UserRole]
	users              EntityOperationInterface[User]
	administrators     EntityOperationInterface[Administrator]
	airlineCompanies   EntityOperationInterface[AirlineCompany]
	customers          EntityOperationInterface[Customer]
	flights            EntityOperationInterface[Flight]
	tickets            EntityOperationInterface[Ticket]
	queryOperation     QueryOperationInterface
	procedureOperation ProcedureOperationInterface
	fixtureOperation   FixtureOperationInterface
	userOperation      UserOperationInterface
}

type EntityOperations struct {
	Countries        EntityOperationInterface[Country]
	UserRoles        EntityOperationInterface[UserRole]
	Users            EntityOperationInterface[User]
	Administrators   EntityOperationInterface[Administrator]
	AirlineCompanies EntityOperationInterface[AirlineCompany]
	Customers        EntityOperationInterface[Customer]
	Flights          EntityOperationInterface[Flight]
	Tickets          EntityOperationInterface[Ticket]
}

func NewDatabaseOperations(
	entities *EntityOperations,
	queryOperation QueryOperationInterface,
	procedureOperation ProcedureOperationInterface,
	fixtureOperation FixtureOperationInterface,
	userOperation UserOperationInterface,
) *DatabaseOperations {
	return &DatabaseOperations{
		countries:          entities.Countries,
		userRoles:          entities.UserRoles,
		users:              entities.Users,
		administrators:     entities.Administrators,
		airlineCompanies:   entities.AirlineCompanies,
		customers:          entities.Customers,
		flights:            entities.Flights,
		tickets:            entities.Tickets,
		queryOperation:     queryOperation,
		procedureOperation: procedureOperation,
		fixtureOperation:   fixtureOperation,
		userOperation:      userOperation,
	}
}

func (db *DatabaseOperations) Countries() EntityOperationInterface[Country] { return db.countries }

func (db *DatabaseOperations) UserRoles() EntityOperationInterface[UserRole] { return db.userRoles }

func (db *DatabaseOperations) Users() EntityOperationInterface[User] { return db.users }

func (db *DatabaseOperations) Administrators() EntityOperationInterface[Administrator] {
	return db.administrators
}

func (db *DatabaseOperations) AirlineCompanies() EntityOperationInterface[AirlineCompany] {
	return db.airlineCompanies
}

func (db *DatabaseOperations) Customers() EntityOperationInterface[Customer] { return db.customers }

func (db *DatabaseOperations) Flights() EntityOperationInterface[Flight] { return db.flights }

func (db *DatabaseOperations) Tickets() EntityOperationInterface[Ticket] { return db.tickets }

func (db *DatabaseOperations) QueryOperation() QueryOperationInterface { return db.queryOperation }

func (db *DatabaseOperations) ProcedureOperation() ProcedureOperationInterface {
	return db.procedureOperation
}

func (db *DatabaseOperations) FixtureOperation() FixtureOperationInterface {
	return db.fixtureOperation
}

func (db *DatabaseOperations) UserOperation() UserOperationInterface { return db.userOperation }
