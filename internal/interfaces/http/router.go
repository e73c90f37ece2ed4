package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Pedidos-api/internal/application/auth"
	"github.com/jhoicas/Pedidos-api/internal/application/reports"
	"github.com/jhoicas/Pedidos-api/internal/application/usecase"
	"github.com/jhoicas/Pedidos-api/internal/domain/authz"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	AuthUC    *auth.AuthUseCase
	UserUC    *usecase.UserUseCase
	CompanyUC *usecase.CompanyUseCase
	ProductUC *usecase.ProductUseCase
	OrderUC   *usecase.OrderUseCase
	PDFUC     *reports.PDFUseCase
	JWTSecret string
}

// Router registra las rutas de la API. Cada ruta protegida declara el
// permiso que exige; la tabla de permisos por rol vive en internal/domain/authz
// y es la misma que responde /api/navigation, así que guardia y menú no
// pueden contradecirse.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Auth (público)
	authGroup := api.Group("/auth")
	authHandler := NewAuthHandler(deps.AuthUC)
	authGroup.Post("/register", authHandler.Register)
	authGroup.Post("/login", authHandler.Login)

	// Rutas protegidas (requieren Bearer Token)
	protected := api.Group("/", AuthMiddleware(deps.JWTSecret))

	protected.Post("/auth/change-password", authHandler.ChangePassword)

	// Navegación: resuelve a qué ruta del cliente puede ir el rol del token.
	protected.Get("/navigation", authHandler.Navigation)
	protected.Get("/navigation/default", authHandler.DefaultRoute)

	// Users (solo admin puede escribir; sales_manager puede leer)
	users := protected.Group("/users")
	userHandler := NewUserHandler(deps.UserUC)
	users.Post("/", RequirePermission(authz.PermUsersCreate), userHandler.Create)
	users.Get("/", RequirePermission(authz.PermUsersRead), userHandler.List)
	users.Get("/:id", RequirePermission(authz.PermUsersRead), userHandler.GetByID)
	users.Put("/:id", RequirePermission(authz.PermUsersUpdate), userHandler.Update)
	users.Delete("/:id", RequirePermission(authz.PermUsersDelete), userHandler.Delete)
	users.Post("/:id/reset-password", RequirePermission(authz.PermUsersUpdate), userHandler.ResetPassword)
	users.Post("/:id/status", RequirePermission(authz.PermUsersUpdate), userHandler.ToggleStatus)

	// Company (la del token; no hay acceso cruzado entre empresas)
	company := protected.Group("/company")
	companyHandler := NewCompanyHandler(deps.CompanyUC)
	company.Get("/", RequirePermission(authz.PermCompanyRead), companyHandler.Get)
	company.Put("/", RequirePermission(authz.PermCompanyUpdate), companyHandler.Update)

	// Products + categories (catálogo)
	products := protected.Group("/products")
	productHandler := NewProductHandler(deps.ProductUC)
	products.Post("/", RequirePermission(authz.PermProductsCreate), productHandler.Create)
	products.Get("/", RequirePermission(authz.PermProductsRead), productHandler.List)
	products.Get("/low-stock", RequirePermission(authz.PermProductsRead), productHandler.ListLowStock)
	products.Get("/:id", RequirePermission(authz.PermProductsRead), productHandler.GetByID)
	products.Put("/:id", RequirePermission(authz.PermProductsUpdate), productHandler.Update)
	products.Post("/:id/stock", RequirePermission(authz.PermProductsUpdate), productHandler.UpdateStock)
	products.Delete("/:id", RequirePermission(authz.PermProductsDelete), productHandler.Delete)

	categories := protected.Group("/categories")
	categories.Post("/", RequirePermission(authz.PermProductsCreate), productHandler.CreateCategory)
	categories.Get("/", RequirePermission(authz.PermProductsRead), productHandler.ListCategories)

	// Orders (los representantes solo ven los suyos; eso lo aplica el caso de uso)
	orders := protected.Group("/orders")
	orderHandler := NewOrderHandler(deps.OrderUC, deps.PDFUC)
	orders.Post("/", RequirePermission(authz.PermOrdersCreate), orderHandler.Create)
	orders.Get("/", RequirePermission(authz.PermOrdersRead), orderHandler.List)
	orders.Get("/stats", RequirePermission(authz.PermOrdersRead), orderHandler.Stats)
	orders.Get("/:id", RequirePermission(authz.PermOrdersRead), orderHandler.GetByID)
	orders.Put("/:id", RequirePermission(authz.PermOrdersUpdate), orderHandler.Update)
	orders.Delete("/:id", RequirePermission(authz.PermOrdersDelete), orderHandler.Delete)
	orders.Get("/:id/invoice.pdf", RequirePermission(authz.PermOrdersRead), orderHandler.DownloadPDF)

	// Reports (PDF)
	reportsGroup := protected.Group("/reports")
	reportHandler := NewReportHandler(deps.PDFUC)
	reportsGroup.Get("/sales.pdf", RequirePermission(authz.PermReportsRead), reportHandler.DownloadSalesReport)
}
