package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/skyllex94/orderexpress-api/internal/application/auth"
	"github.com/skyllex94/orderexpress-api/internal/application/usecase"
	"github.com/skyllex94/orderexpress-api/internal/domain/entity"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	AuthUC       *auth.AuthUseCase
	ContextUC    *usecase.ContextUseCase
	BusinessUC   *usecase.BusinessUseCase
	InvitationUC *usecase.InvitationUseCase
	ProductUC    *usecase.ProductUseCase
	VendorUC     *usecase.VendorUseCase
	InventoryUC  *usecase.InventoryUseCase
	MemberUC     *usecase.MemberUseCase
	AnalyticsUC  *usecase.AnalyticsUseCase
	OrderingUC   *usecase.OrderingUseCase
	Roles        *usecase.RoleService
	JWTSecret    string
}

// Router registra las rutas de la API.
//
// El gate de navegación vive aquí: cada grupo bajo /api/businesses/:businessID
// pasa por RequireSection con la sección que le corresponde, así el servidor
// fuerza el mismo menú que pinta el cliente.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Auth (público)
	authGroup := api.Group("/auth")
	authHandler := NewAuthHandler(deps.AuthUC)
	authGroup.Post("/register", authHandler.Register)
	authGroup.Post("/login", authHandler.Login)
	authGroup.Post("/password-strength", authHandler.PasswordStrength)

	// Invitaciones: validar y aceptar son públicos (el invitado no tiene sesión)
	invitationHandler := NewInvitationHandler(deps.InvitationUC)
	invitations := api.Group("/invitations")
	invitations.Get("/validate", invitationHandler.Validate)
	invitations.Post("/accept", invitationHandler.Accept)

	// Rutas protegidas (requieren Bearer Token)
	protected := api.Group("/", AuthMiddleware(deps.JWTSecret))

	// Contexto del dashboard (protegido, sin negocio en la ruta)
	contextHandler := NewContextHandler(deps.ContextUC)
	ctxGroup := protected.Group("/context")
	ctxGroup.Get("/", contextHandler.Get)
	ctxGroup.Put("/business", contextHandler.SwitchBusiness)
	ctxGroup.Put("/sidebar", contextHandler.SetSidebar)

	// Negocios (protegido)
	businessHandler := NewBusinessHandler(deps.BusinessUC)
	businesses := protected.Group("/businesses")
	businesses.Post("/", businessHandler.Create)
	businesses.Get("/", businessHandler.List)
	businesses.Get("/:businessID", businessHandler.GetByID)
	businesses.Put("/:businessID", businessHandler.Update)

	// Secciones del dashboard, cada una con su gate
	scoped := businesses.Group("/:businessID")

	// Products (secciones products)
	products := scoped.Group("/products", RequireSection(entity.SectionProducts, deps.Roles))
	productHandler := NewProductHandler(deps.ProductUC)
	products.Post("/", productHandler.Create)
	products.Get("/", productHandler.List)
	products.Get("/:id", productHandler.GetByID)
	products.Put("/:id", productHandler.Update)
	products.Delete("/:id", productHandler.Delete)
	products.Post("/:id/packaging", productHandler.AddPackaging)
	products.Delete("/:id/packaging/:packagingID", productHandler.RemovePackaging)

	// Inventory (sección inventory)
	invGroup := scoped.Group("/inventory", RequireSection(entity.SectionInventory, deps.Roles))
	inventoryHandler := NewInventoryHandler(deps.InventoryUC)
	invGroup.Put("/", inventoryHandler.SetLevel)
	invGroup.Get("/", inventoryHandler.List)

	// Vendors y hoja de pedido (sección ordering)
	ordering := scoped.Group("/vendors", RequireSection(entity.SectionOrdering, deps.Roles))
	vendorHandler := NewVendorHandler(deps.VendorUC)
	ordering.Post("/", vendorHandler.Create)
	ordering.Get("/", vendorHandler.List)
	ordering.Get("/:id", vendorHandler.GetByID)
	ordering.Put("/:id", vendorHandler.Update)
	ordering.Delete("/:id", vendorHandler.Delete)

	orderSheet := scoped.Group("/ordering", RequireSection(entity.SectionOrdering, deps.Roles))
	orderingHandler := NewOrderingHandler(deps.OrderingUC)
	orderSheet.Get("/vendors/:vendorID/order-sheet", orderingHandler.OrderSheet)

	// Overview y analytics (lecturas agregadas)
	analyticsHandler := NewAnalyticsHandler(deps.AnalyticsUC)
	scoped.Get("/overview", RequireSection(entity.SectionOverview, deps.Roles), analyticsHandler.Overview)
	scoped.Get("/analytics", RequireSection(entity.SectionAnalytics, deps.Roles), analyticsHandler.Analytics)

	// Members e invitaciones del negocio (sección settings: cualquier rol pasa
	// el gate; los use cases exigen admin donde corresponde)
	settings := scoped.Group("/", RequireSection(entity.SectionSettings, deps.Roles))
	memberHandler := NewMemberHandler(deps.MemberUC)
	settings.Get("/members", memberHandler.List)
	settings.Put("/members/:memberID/role", memberHandler.UpdateRole)
	settings.Delete("/members/:memberID", memberHandler.Remove)

	settings.Post("/invitations", invitationHandler.Create)
	settings.Get("/invitations", invitationHandler.List)
	settings.Post("/invitations/:invitationID/resend", invitationHandler.Resend)
	settings.Delete("/invitations/:invitationID", invitationHandler.Cancel)
}
