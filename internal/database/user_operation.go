package database

import (
	"fmt"
	"github.com/half-nothing/simple-flights/internal/interfaces/operation"
	"golang.org/x/crypto/bcrypt"
)

type UserOperation struct {
	repository *Repository
	users      *EntityOperation[operation.User]
	roles      *EntityOperation[operation.UserRole]
	bcryptCost int
}

func NewUserOperation(repository *Repository, bcryptCost int) *UserOperation {
	return &UserOperation{
		repository: repository,
		users:      NewEntityOperation[operation.User](repository),
		roles:      NewEntityOperation[operation.UserRole](repository),
		bcryptCost: bcryptCost,
	}
}

func (userOperation *UserOperation) NewUser(username, password, email string, role uint) (*operation.User, error) {
	encodePassword, err := bcrypt.GenerateFromPassword([]byte(password), userOperation.bcryptCost)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", operation.ErrPasswordEncode, err)
	}
	return &operation.User{
		Username:   username,
		Password:   string(encodePassword),
		Email:      email,
		UserRoleId: role,
	}, nil
}

func (userOperation *UserOperation) VerifyUserPassword(user *operation.User, password string) bool {
	return bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)) == nil
}

func (userOperation *UserOperation) Authenticate(username, password string) (*operation.User, error) {
	users, err := userOperation.users.GetByColumnValue(operation.UserColumnUsername, username)
	if err != nil {
		return nil, err
	}
	if len(users) == 0 {
		return nil, operation.ErrUserNotFound
	}
	user := users[0]
	if !userOperation.VerifyUserPassword(user, password) {
		return nil, operation.ErrWrongPassword
	}
	return user, nil
}

func (userOperation *UserOperation) GetUserRole(user *operation.User) (*operation.UserRole, error) {
	roles, err := userOperation.roles.GetByColumnValue(operation.ColumnId, user.UserRoleId)
	if err != nil {
		return nil, err
	}
	if len(roles) == 0 {
		return nil, operation.ErrRoleNotFound
	}
	return roles[0], nil
}
