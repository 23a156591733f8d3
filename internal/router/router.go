package router

import (
	"github.com/labstack/echo/v4"

	"gestor-politico/internal/cache"
	"gestor-politico/internal/database"
	"gestor-politico/internal/handler"
	"gestor-politico/internal/handler/auth"
	"gestor-politico/internal/handler/demands"
	"gestor-politico/internal/handler/families"
	"gestor-politico/internal/handler/localities"
	"gestor-politico/internal/handler/partners"
	"gestor-politico/internal/handler/users"
	"gestor-politico/internal/middleware"
	"gestor-politico/internal/service"
)

// Services groups the long-lived dependencies handlers need besides the
// database and the cache.
type Services struct {
	Families  families.FamilyService
	Geocoding families.Backfiller
	CEP       service.CEPLookup
	Districts service.DistrictSource
}

// Setup registers every route and its middleware.
func Setup(e *echo.Echo, db database.DB, c cache.Cache, s Services) {
	api := e.Group("/api")

	api.POST("/login", auth.LoginHandler(db, c))
	api.POST("/auth/refresh", auth.RefreshHandler(db, c))
	api.POST("/auth/logout", auth.LogoutHandler(c))

	authed := api.Group("", middleware.RequireAuth)
	authed.GET("/ping", handler.PingHandler(db, c))

	authed.GET("/perfil", users.GetProfileHandler(db))
	authed.PUT("/perfil", users.UpdateProfileHandler(db))

	authed.GET("/familias", families.ListFamiliesHandler(db))
	authed.POST("/familias", families.CreateFamilyHandler(s.Families))
	authed.GET("/familias/:id", families.GetFamilyHandler(s.Families))
	authed.PUT("/familias/:id", families.UpdateFamilyHandler(s.Families))
	authed.GET("/familias/:id/demandas/abertas", families.OpenDemandsHandler(db))

	authed.GET("/cidades", localities.ListCitiesHandler(db))
	authed.POST("/cidades", localities.CreateCityHandler(db))
	authed.GET("/cidades/:cidadeId/regioes", localities.ListRegionsHandler(db))
	authed.GET("/cidades/:cidadeId/bairros", localities.ListNeighborhoodsHandler(db))
	authed.GET("/cep/:cep", localities.CEPHandler(db, s.CEP))

	authed.GET("/demandas", demands.ListDemandsHandler(db))
	authed.POST("/demandas", demands.CreateDemandHandler(db))
	authed.PUT("/demandas/:id", demands.UpdateDemandHandler(db))
	authed.DELETE("/demandas/:id", demands.DeleteDemandHandler(db))

	authed.POST("/membros/:id/parceiro", partners.PromoteHandler(db))
	authed.GET("/parceiros/:token", partners.GetByTokenHandler(db))

	// admin only
	admin := api.Group("", middleware.RequireAdmin)
	admin.GET("/usuarios", users.ListUsersHandler(db))
	admin.POST("/usuarios", users.CreateUserHandler(db))
	admin.GET("/usuarios/:id", users.GetUserHandler(db))
	admin.PUT("/usuarios/:id", users.UpdateUserHandler(db))
	admin.DELETE("/usuarios/:id", users.DeleteUserHandler(db))

	admin.POST("/cidades/:cidadeId/regioes", localities.CreateRegionHandler(db))
	admin.POST("/cidades/:cidadeId/importar-bairros", localities.ImportHandler(db, s.Districts))
	admin.PUT("/regioes/:regiaoId/bairros", localities.AssignRegionHandler(db))
	admin.PUT("/bairros/regiao", localities.UpdateNeighborhoodsRegionHandler(db))
	admin.POST("/bairros/unificar", localities.UnifyHandler(db))
	admin.POST("/familias/geocodificar", families.BackfillHandler(s.Geocoding))
}
