package operation

import (
	"fmt"
	"gorm.io/gorm"
	"time"
)

type UserRole struct {
	ID       uint   `gorm:"primarykey" json:"id"`
	RoleName string `gorm:"size:64;uniqueIndex;not null" json:"role_name"`
}

func (UserRole) TableName() string { return "user_roles" }

type User struct {
	ID         uint      `gorm:"primarykey" json:"id"`
	Username   string    `gorm:"size:64;uniqueIndex;not null" json:"username"`
	Password   string    `gorm:"size:128;not null" json:"-"`
	Email      string    `gorm:"size:128;uniqueIndex;not null" json:"email"`
	UserRoleId uint      `gorm:"column:user_role;index;not null" json:"user_role"`
	Role       *UserRole `gorm:"foreignKey:UserRoleId;references:ID;constraint:OnDelete:CASCADE" json:"-"`
}

func (User) TableName() string { return "users" }

// String 用于日志输出, 不包含密码哈希
func (user User) String() string {
	return fmt.Sprintf("{ID:%d Username:%s Email:%s UserRoleId:%d}", user.ID, user.Username, user.Email, user.UserRoleId)
}

type Administrator struct {
	ID        uint   `gorm:"primarykey" json:"id"`
	FirstName string `gorm:"size:64;not null" json:"first_name"`
	LastName  string `gorm:"size:64;not null" json:"last_name"`
	UserId    uint   `gorm:"uniqueIndex;not null" json:"user_id"`
	User      *User  `gorm:"foreignKey:UserId;references:ID;constraint:OnDelete:CASCADE" json:"-"`
}

func (Administrator) TableName() string { return "administrators" }

type Customer struct {
	ID           uint   `gorm:"primarykey" json:"id"`
	FirstName    string `gorm:"size:64;not null" json:"first_name"`
	LastName     string `gorm:"size:64;not null" json:"last_name"`
	Address      string `gorm:"size:256;not null" json:"address"`
	PhoneNo      string `gorm:"size:32;uniqueIndex;not null" json:"phone_no"`
	CreditCardNo string `gorm:"size:32;uniqueIndex;not null" json:"-"`
	UserId       uint   `gorm:"uniqueIndex;not null" json:"user_id"`
	User         *User  `gorm:"foreignKey:UserId;references:ID;constraint:OnDelete:CASCADE" json:"-"`
}

func (Customer) TableName() string { return "customers" }

// String 用于日志输出, 不包含信用卡号
func (customer Customer) String() string {
	return fmt.Sprintf("{ID:%d FirstName:%s LastName:%s PhoneNo:%s UserId:%d}",
		customer.ID, customer.FirstName, customer.LastName, customer.PhoneNo, customer.UserId)
}

type Country struct {
	ID   uint   `gorm:"primarykey" json:"id"`
	Name string `gorm:"size:128;uniqueIndex;not null" json:"name"`
}

func (Country) TableName() string { return "countries" }

type AirlineCompany struct {
	ID        uint     `gorm:"primarykey" json:"id"`
	Name      string   `gorm:"size:128;uniqueIndex;not null" json:"name"`
	CountryId uint     `gorm:"index;not null" json:"country_id"`
	Country   *Country `gorm:"foreignKey:CountryId;references:ID;constraint:OnDelete:CASCADE" json:"-"`
	UserId    uint     `gorm:"uniqueIndex;not null" json:"user_id"`
	User      *User    `gorm:"foreignKey:UserId;references:ID;constraint:OnDelete:CASCADE" json:"-"`
}

func (AirlineCompany) TableName() string { return "airline_companies" }

type Flight struct {
	ID                   uint            `gorm:"primarykey" json:"id"`
	AirlineCompanyId     uint            `gorm:"index;not null" json:"airline_company_id"`
	AirlineCompany       *AirlineCompany `gorm:"foreignKey:AirlineCompanyId;references:ID;constraint:OnDelete:CASCADE" json:"-"`
	OriginCountryId      uint            `gorm:"index;not null" json:"origin_country_id"`
	OriginCountry        *Country        `gorm:"foreignKey:OriginCountryId;references:ID;constraint:OnDelete:CASCADE" json:"-"`
	DestinationCountryId uint            `gorm:"index;not null" json:"destination_country_id"`
	DestinationCountry   *Country        `gorm:"foreignKey:DestinationCountryId;references:ID;constraint:OnDelete:CASCADE" json:"-"`
	DepartureTime        time.Time       `gorm:"index;not null" json:"departure_time"`
	LandingTime          time.Time       `gorm:"index;not null" json:"landing_time"`
	RemainingTickets     int             `gorm:"not null" json:"remaining_tickets"`
}

func (Flight) TableName() string { return "flights" }

// BeforeSave 时间统一以UTC存储, 日期与时间窗口查询依赖这一点
func (flight *Flight) BeforeSave(_ *gorm.DB) error {
	flight.DepartureTime = flight.DepartureTime.UTC()
	flight.LandingTime = flight.LandingTime.UTC()
	return nil
}

type Ticket struct {
	ID         uint      `gorm:"primarykey" json:"id"`
	FlightId   uint      `gorm:"index;not null" json:"flight_id"`
	Flight     *Flight   `gorm:"foreignKey:FlightId;references:ID;constraint:OnDelete:CASCADE" json:"flight,omitempty"`
	CustomerId uint      `gorm:"index;not null" json:"customer_id"`
	Customer   *Customer `gorm:"foreignKey:CustomerId;references:ID;constraint:OnDelete:CASCADE" json:"-"`
}

func (Ticket) TableName() string { return "tickets" }

// AllModels 按照依赖顺序排列, 父表在前
func AllModels() []interface{} {
	return []interface{}{
		&Country{},
		&UserRole{},
		&User{},
		&Administrator{},
		&AirlineCompany{},
		&Customer{},
		&Flight{},
		&Ticket{},
	}
}
