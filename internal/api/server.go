package api

import (
	"github.com/gin-contrib/requestid"
	"github.com/gin-gonic/gin"
	swaggerfiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"gorm.io/gorm"

	"fishstall-api/docs"
	v1 "fishstall-api/internal/api/handler/v1"
	"fishstall-api/internal/api/middleware"
	"fishstall-api/internal/config"
	"fishstall-api/internal/repository"
	"fishstall-api/internal/repository/dao"
	"fishstall-api/internal/service"
)

type Server struct {
	Config *config.AppConfig
	Router *gin.Engine
}

func NewServer(conf *config.AppConfig, db *gorm.DB) *Server {
	gin.SetMode(conf.Gin.Mode)
	engine := gin.New()

	s := &Server{
		Config: conf,
		Router: engine,
	}

	s.MountMiddlewares()

	catalogHandler := s.initCatalogHandler(db)
	s.MountHandlers(catalogHandler)

	return s
}

func (s *Server) initCatalogHandler(db *gorm.DB) *v1.CatalogHandler {
	itemDAO := dao.NewItemDAO(db)
	repo := repository.NewItemRepository(itemDAO)
	svc := service.NewCatalogService(repo)
	handler := v1.NewCatalogHandler(svc)

	return handler
}

func (s *Server) MountMiddlewares() {
	// Logger and Recovery are needed unless we use gin.Default().
	s.Router.Use(gin.Logger())
	s.Router.Use(gin.Recovery())
	s.Router.Use(requestid.New())
	s.Router.Use(middleware.ConfigCORS(s.Config.API.AllowedCORSDomains))
}

func (s *Server) MountHandlers(catalogHandler *v1.CatalogHandler) {
	// Both category route families (/fishes, /kerala_items) resolve through
	// the :category parameter; unknown slugs 404 in the handler.
	catalog := s.Router.Group("")
	{
		catalog.GET("/:category", catalogHandler.HandleListItems)
		catalog.GET("/:category/updated_today", catalogHandler.HandleListUpdatedToday)
		catalog.POST("/:category", catalogHandler.HandleCreateItem)
		catalog.POST("/:category/:id/price", catalogHandler.HandleUpdatePrice)
		catalog.DELETE("/:category/:id", catalogHandler.HandleDeleteItem)
		catalog.GET("/:category/:id/history", catalogHandler.HandleGetPriceHistory)
	}

	s.Router.GET("/", v1.HandleHealthcheck)

	// Setup Swagger UI.
	docs.SwaggerInfo.Host = s.Config.API.BaseURL
	docs.SwaggerInfo.BasePath = "/"
	docs.SwaggerInfo.Title = "Fish Stall API"
	docs.SwaggerInfo.Description = "Storefront price-list backend with per-item price history."
	docs.SwaggerInfo.Version = "1.0"
	s.Router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerfiles.Handler))
}
