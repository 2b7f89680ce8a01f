package router // package router defines how HTTP routes are registered for the API

import (
	"github.com/labstack/echo/v4" // import the Echo web framework to handle routing

	"github.com/autolot/dealership-api/internal/handler" // import the handlers that implement business logic
)

// RegisterRoutes registers routes that do not depend on repositories
// on the provided Echo instance.  Currently it exposes only a health
// check, used by load balancers and monitoring systems.
func RegisterRoutes(e *echo.Echo) {
	e.GET("/healthz", handler.Health)
}

// RegisterAPI registers every entity endpoint group under /v1.  The
// verbs are uniform across groups: POST creates, GET lists, PUT
// patches where applicable, DELETE removes.  The sales group is the
// exception worth noting: DELETE /v1/sales/:id reverts the sale and
// restores the vehicle's availability rather than being a plain row
// delete.
func RegisterAPI(e *echo.Echo, a *handler.API) {
	g := e.Group("/v1")

	g.POST("/vehicles", a.CreateVehicle)
	g.GET("/vehicles", a.ListVehicles)
	g.PUT("/vehicles/:id", a.UpdateVehicle)
	g.DELETE("/vehicles/:id", a.DeleteVehicle)

	g.POST("/customers", a.CreateCustomer)
	g.GET("/customers", a.ListCustomers)
	g.DELETE("/customers/:id", a.DeleteCustomer)

	g.POST("/salespeople", a.CreateSalesperson)
	g.GET("/salespeople", a.ListSalespeople)
	g.DELETE("/salespeople/:id", a.DeleteSalesperson)

	g.POST("/sales", a.RecordSale)
	g.GET("/sales", a.ListSales)
	g.DELETE("/sales/:id", a.RevertSale)

	g.POST("/financing-plans", a.CreateFinancingPlan)
	g.GET("/financing-plans", a.ListFinancingPlans)
	g.DELETE("/financing-plans/:id", a.DeleteFinancingPlan)

	g.POST("/maintenance-records", a.CreateMaintenanceRecord)
	g.GET("/maintenance-records", a.ListMaintenanceRecords)
	g.PUT("/maintenance-records/:id", a.UpdateMaintenanceStatus)
	g.DELETE("/maintenance-records/:id", a.DeleteMaintenanceRecord)

	g.POST("/test-drives", a.CreateTestDrive)
	g.GET("/test-drives", a.ListTestDrives)
	g.PUT("/test-drives/:id", a.UpdateTestDriveStatus)
	g.DELETE("/test-drives/:id", a.DeleteTestDrive)
}
