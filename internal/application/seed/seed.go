// Package seed contiene los datos iniciales usados cuando no existe un snapshot persistido.
package seed

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/ihuza-inventory/internal/domain/entity"
)

// Data colecciones iniciales. Las contraseñas de Users están en texto plano;
// el use case las hashea al hidratar.
type Data struct {
	Users      []entity.User
	Products   []entity.Product
	Categories []entity.Category
	Activities []entity.Activity
}

// Credenciales de las cuentas sembradas (documentadas en el README del dashboard).
const (
	AdminEmail    = "admin@ihuza.com"
	AdminPassword = "admin123"
	ManagerEmail  = "manager@ihuza.com"
	StaffEmail    = "staff@ihuza.com"
	DemoPassword  = "password123"
)

// Default construye los datos iniciales con fechas relativas a now.
func Default(now time.Time) Data {
	day := 24 * time.Hour
	at := func(d time.Duration) time.Time { return now.Add(-d).UTC().Truncate(time.Second) }
	lastLogin := at(2 * time.Hour)

	users := []entity.User{
		{ID: "1", Name: "Admin User", Email: AdminEmail, Password: AdminPassword, Role: entity.RoleAdmin, Status: entity.StatusActive, CreatedAt: at(90 * day), LastLogin: &lastLogin},
		{ID: "2", Name: "Mary Manager", Email: ManagerEmail, Password: DemoPassword, Role: entity.RoleManager, Status: entity.StatusActive, CreatedAt: at(60 * day)},
		{ID: "3", Name: "Sam Staff", Email: StaffEmail, Password: DemoPassword, Role: entity.RoleStaff, Status: entity.StatusActive, CreatedAt: at(30 * day)},
		{ID: "4", Name: "Ivan Inactive", Email: "inactive@ihuza.com", Password: DemoPassword, Role: entity.RoleStaff, Status: entity.StatusInactive, CreatedAt: at(20 * day)},
	}

	categories := []entity.Category{
		{ID: "1", Name: "Electronics", Description: "Devices, peripherals and accessories", CreatedAt: at(80 * day)},
		{ID: "2", Name: "Furniture", Description: "Office desks, chairs and storage", CreatedAt: at(80 * day)},
		{ID: "3", Name: "Office Supplies", Description: "Stationery and consumables", CreatedAt: at(75 * day)},
	}

	products := []entity.Product{
		{ID: "1", Name: "Laptop Pro 14", CategoryID: "1", Quantity: 25, Price: decimal.NewFromInt(1200000), CreatedAt: at(10 * day), CreatedBy: AdminEmail},
		{ID: "2", Name: "Wireless Mouse", CategoryID: "1", Quantity: 8, Price: decimal.NewFromInt(15000), CreatedAt: at(8 * day), CreatedBy: ManagerEmail},
		{ID: "3", Name: "Ergonomic Chair", CategoryID: "2", Quantity: 0, Price: decimal.NewFromInt(180000), CreatedAt: at(6 * day), CreatedBy: ManagerEmail},
		{ID: "4", Name: "A4 Paper Ream", CategoryID: "3", Quantity: 120, Price: decimal.NewFromInt(6500), CreatedAt: at(4 * day), CreatedBy: StaffEmail},
		{ID: "5", Name: "Standing Desk", CategoryID: "2", Quantity: 4, Price: decimal.NewFromInt(450000), CreatedAt: at(2 * day), CreatedBy: AdminEmail},
	}

	// Más reciente primero, como el registro real.
	activities := []entity.Activity{
		{ID: "5", Type: entity.ActivityProductAdd, ItemID: "5", DoneBy: AdminEmail, CreatedAt: at(2 * day)},
		{ID: "4", Type: entity.ActivityProductAdd, ItemID: "4", DoneBy: StaffEmail, CreatedAt: at(4 * day)},
		{ID: "3", Type: entity.ActivityProductAdd, ItemID: "3", DoneBy: ManagerEmail, CreatedAt: at(6 * day)},
		{ID: "2", Type: entity.ActivityProductAdd, ItemID: "2", DoneBy: ManagerEmail, CreatedAt: at(8 * day)},
		{ID: "1", Type: entity.ActivityProductAdd, ItemID: "1", DoneBy: AdminEmail, CreatedAt: at(10 * day)},
	}

	return Data{Users: users, Products: products, Categories: categories, Activities: activities}
}

// Empty datos iniciales vacíos (tests que construyen su propio estado).
func Empty() Data {
	return Data{}
}
