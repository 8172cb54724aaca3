package database

import (
	"errors"
	"fmt"
	"github.com/half-nothing/simple-flights/internal/interfaces/global"
	"github.com/half-nothing/simple-flights/internal/interfaces/operation"
	"gorm.io/gorm"
	"io/fs"
	"os"
	"strings"
	"time"
)

// FixturePassword 测试数据中所有用户的明文密码
const FixturePassword = "123"

type FixtureOperation struct {
	repository    *Repository
	entities      *operation.EntityOperations
	userOperation *UserOperation
}

func NewFixtureOperation(repository *Repository, entities *operation.EntityOperations, userOperation *UserOperation) *FixtureOperation {
	return &FixtureOperation{repository: repository, entities: entities, userOperation: userOperation}
}

func (fixture *FixtureOperation) Migrate() error {
	db, cancel := fixture.repository.session()
	defer cancel()
	if err := db.AutoMigrate(operation.AllModels()...); err != nil {
		return fixture.repository.translateError("migrate tables", err)
	}
	return nil
}

func (fixture *FixtureOperation) CreateAllStoredProcedures(filePath string) error {
	content, err := os.ReadFile(filePath)
	if errors.Is(err, fs.ErrNotExist) {
		fixture.repository.logger.CriticalF("Stored procedure file %s not found", filePath)
		return fmt.Errorf("%w: %s", operation.ErrFixtureFileNotFound, filePath)
	}
	if err != nil {
		fixture.repository.logger.CriticalF("Fail to read stored procedure file %s, %v", filePath, err)
		return fmt.Errorf("%w: %w", operation.ErrBackend, err)
	}

	statements := make([]string, 0)
	for _, chunk := range strings.Split(string(content), global.ProcedureDelimiter) {
		if statement := strings.TrimSpace(chunk); statement != "" {
			statements = append(statements, statement)
		}
	}

	db, cancel := fixture.repository.session()
	defer cancel()
	err = db.Transaction(func(tx *gorm.DB) error {
		for _, statement := range statements {
			if err := tx.Exec(statement).Error; err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return fixture.repository.translateError("create stored procedures", err)
	}
	fixture.repository.logger.InfoF("%d stored procedures created from %s", len(statements), filePath)
	return nil
}

// dropOrder 子表在前, 保证外键不会阻止删除
func dropOrder() []operation.Entity {
	return []operation.Entity{
		&operation.Ticket{},
		&operation.Flight{},
		&operation.Customer{},
		&operation.AirlineCompany{},
		&operation.Administrator{},
		&operation.User{},
		&operation.UserRole{},
		&operation.Country{},
	}
}

func (fixture *FixtureOperation) DropAllTables() error {
	db, cancel := fixture.repository.session()
	defer cancel()
	migrator := db.Migrator()
	for _, model := range dropOrder() {
		if err := migrator.DropTable(model); err != nil {
			return fixture.repository.translateError("drop table "+model.TableName(), err)
		}
		fixture.repository.logger.DebugF("Table %s dropped", model.TableName())
	}
	fixture.repository.logger.Info("All tables dropped")
	return nil
}

func (fixture *FixtureOperation) ResetAllTablesAutoIncrement() error {
	resets := []func() error{
		fixture.entities.Countries.ResetAutoIncrement,
		fixture.entities.UserRoles.ResetAutoIncrement,
		fixture.entities.Users.ResetAutoIncrement,
		fixture.entities.Administrators.ResetAutoIncrement,
		fixture.entities.AirlineCompanies.ResetAutoIncrement,
		fixture.entities.Customers.ResetAutoIncrement,
		fixture.entities.Flights.ResetAutoIncrement,
		fixture.entities.Tickets.ResetAutoIncrement,
	}
	for _, reset := range resets {
		if err := reset(); err != nil {
			return err
		}
	}
	return nil
}

func (fixture *FixtureOperation) ResetTestDatabase() error {
	if err := fixture.ResetAllTablesAutoIncrement(); err != nil {
		return err
	}

	if err := fixture.entities.Countries.AddAll([]*operation.Country{
		{Name: "Israel"},
		{Name: "Germany"},
	}); err != nil {
		return err
	}

	roles := make([]*operation.UserRole, 0, len(operation.Roles))
	for _, role := range operation.Roles {
		roles = append(roles, &operation.UserRole{RoleName: role.String()})
	}
	if err := fixture.entities.UserRoles.AddAll(roles); err != nil {
		return err
	}

	users := make([]*operation.User, 0, 7)
	for _, seed := range []struct {
		username string
		email    string
		role     uint
	}{
		{"Elad", "elad@gmail.com", 1},
		{"Uri", "uri@gmail.com", 1},
		{"Yoni", "yoni@gmail.com", 2},
		{"Yishay", "yishay@gmail.com", 2},
		{"Tomer", "tomer@gmail.com", 3},
		{"Boris", "boris@gmail.com", 3},
		{"not legal", "notlegal@gmail.com", 4},
	} {
		user, err := fixture.userOperation.NewUser(seed.username, FixturePassword, seed.email, seed.role)
		if err != nil {
			return err
		}
		users = append(users, user)
	}
	if err := fixture.entities.Users.AddAll(users); err != nil {
		return err
	}

	if err := fixture.entities.Administrators.AddAll([]*operation.Administrator{
		{FirstName: "Tomer", LastName: "Tome", UserId: 5},
		{FirstName: "Boris", LastName: "Bori", UserId: 6},
	}); err != nil {
		return err
	}

	if err := fixture.entities.AirlineCompanies.AddAll([]*operation.AirlineCompany{
		{Name: "Yoni", CountryId: 1, UserId: 3},
		{Name: "Yishay", CountryId: 2, UserId: 4},
	}); err != nil {
		return err
	}

	if err := fixture.entities.Customers.AddAll([]*operation.Customer{
		{FirstName: "Elad", LastName: "Gunders", Address: "Sokolov 11", PhoneNo: "0545557007", CreditCardNo: "0000", UserId: 1},
		{FirstName: "Uri", LastName: "Goldshmid", Address: "Helsinki 16", PhoneNo: "0527588331", CreditCardNo: "0001", UserId: 2},
	}); err != nil {
		return err
	}

	departure := time.Date(2022, time.January, 30, 16, 0, 0, 0, time.UTC)
	landing := time.Date(2022, time.January, 30, 20, 0, 0, 0, time.UTC)
	if err := fixture.entities.Flights.AddAll([]*operation.Flight{
		{AirlineCompanyId: 1, OriginCountryId: 1, DestinationCountryId: 2, DepartureTime: departure, LandingTime: landing, RemainingTickets: 200},
		{AirlineCompanyId: 2, OriginCountryId: 1, DestinationCountryId: 2, DepartureTime: departure, LandingTime: landing, RemainingTickets: 0},
	}); err != nil {
		return err
	}

	if err := fixture.entities.Tickets.AddAll([]*operation.Ticket{
		{FlightId: 1, CustomerId: 1},
		{FlightId: 2, CustomerId: 2},
	}); err != nil {
		return err
	}

	fixture.repository.logger.Info("Test database has been reset")
	return nil
}
