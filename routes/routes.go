package routes

import (
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/kendall-kelly/cafe-pos-api/config"
	"github.com/kendall-kelly/cafe-pos-api/controllers"
	"github.com/kendall-kelly/cafe-pos-api/middleware"
	"github.com/kendall-kelly/cafe-pos-api/repository"
	"github.com/kendall-kelly/cafe-pos-api/services"
	"gorm.io/gorm"
)

// Dependencies holds everything the HTTP layer needs
type Dependencies struct {
	Config *config.Config
	DB     *gorm.DB
	Images services.ImageService

	Tables     *services.TableService
	Categories *services.CategoryService
	Menu       *services.MenuService
	Orders     *services.OrderService
	Reports    *services.ReportService
}

// NewDependencies builds the services over a single store for db
func NewDependencies(cfg *config.Config, db *gorm.DB, images services.ImageService) (*Dependencies, error) {
	policy, err := services.TransitionPolicyByName(cfg.OrderTransitionPolicy)
	if err != nil {
		return nil, err
	}

	store := repository.NewStore(db)
	return &Dependencies{
		Config:     cfg,
		DB:         db,
		Images:     images,
		Tables:     services.NewTableService(store),
		Categories: services.NewCategoryService(store),
		Menu:       services.NewMenuService(store, images),
		Orders:     services.NewOrderService(store, policy),
		Reports:    services.NewReportService(store),
	}, nil
}

// SetupRouter creates the gin engine with middleware and all /api/v1 routes
func SetupRouter(deps *Dependencies) *gin.Engine {
	router := gin.New()
	if !deps.Config.IsTest() {
		router.Use(gin.Logger())
	}
	router.Use(middleware.Recovery())
	router.Use(middleware.CORS(deps.Config.CORSAllowedOrigins))

	healthCtrl := controllers.NewHealthController(deps.DB)
	tableCtrl := controllers.NewTableController(deps.Tables)
	categoryCtrl := controllers.NewCategoryController(deps.Categories)
	menuCtrl := controllers.NewMenuController(deps.Menu)
	orderCtrl := controllers.NewOrderController(deps.Orders)
	reportCtrl := controllers.NewReportController(deps.Reports)

	v1 := router.Group("/api/v1")
	{
		v1.GET("/health", healthCtrl.Health)
		v1.GET("/database/status", healthCtrl.DatabaseStatus)

		tables := v1.Group("/tables")
		{
			tables.GET("", tableCtrl.List)
			tables.GET("/stats", tableCtrl.Stats)
			tables.GET("/:id", tableCtrl.Get)
			tables.POST("", tableCtrl.Create)
			tables.PUT("/:id", tableCtrl.Update)
			tables.PATCH("/:id/status", tableCtrl.SetStatus)
			tables.POST("/:id/recompute", tableCtrl.Recompute)
			tables.DELETE("/:id", tableCtrl.Delete)
		}

		categories := v1.Group("/categories")
		{
			categories.GET("", categoryCtrl.List)
			categories.GET("/:id", categoryCtrl.Get)
			categories.POST("", categoryCtrl.Create)
			categories.PUT("/:id", categoryCtrl.Update)
			categories.DELETE("/:id", categoryCtrl.Delete)
		}

		menu := v1.Group("/menu")
		{
			menu.GET("", menuCtrl.List)
			menu.GET("/available", menuCtrl.ListAvailable)
			menu.GET("/stats", menuCtrl.Stats)
			menu.GET("/category/:slug", menuCtrl.ListByCategory)
			menu.GET("/:id", menuCtrl.Get)
			menu.POST("", menuCtrl.Create)
			menu.PUT("/:id", menuCtrl.Update)
			menu.PATCH("/:id/availability", menuCtrl.ToggleAvailability)
			menu.POST("/:id/image", menuCtrl.UploadImage)
			menu.DELETE("/:id", menuCtrl.Delete)
		}

		orders := v1.Group("/orders")
		{
			orders.GET("", orderCtrl.List)
			orders.GET("/active", orderCtrl.ListActive)
			orders.GET("/stats", orderCtrl.Stats)
			orders.GET("/table/:tableId", orderCtrl.ListByTable)
			orders.GET("/:id", orderCtrl.Get)
			orders.POST("", orderCtrl.Create)
			orders.PUT("/:id", orderCtrl.Update)
			orders.PATCH("/:id/status", orderCtrl.SetStatus)
			orders.DELETE("/:id", orderCtrl.Delete)
		}

		v1.GET("/reports/z", reportCtrl.ZReport)

		// Locally stored images are served by the API; S3 images use presigned URLs
		if local, ok := deps.Images.(*services.LocalImageService); ok {
			uploadCtrl := controllers.NewUploadController(local.UploadDir())
			v1.GET("/uploads/:filename", uploadCtrl.GetUploadedImage)
		}
	}

	registerStaticFrontend(router, deps.Config.StaticDir)

	return router
}

// registerStaticFrontend serves the browser POS from dir when the directory exists
func registerStaticFrontend(router *gin.Engine, dir string) {
	router.NoRoute(func(c *gin.Context) {
		path := c.Request.URL.Path
		if strings.HasPrefix(path, "/api/") || dir == "" || c.Request.Method != http.MethodGet {
			c.JSON(http.StatusNotFound, gin.H{
				"success": false,
				"error": gin.H{
					"code":    "NOT_FOUND",
					"message": "Route not found",
				},
			})
			return
		}

		file := filepath.Join(dir, filepath.FromSlash(filepath.Clean("/"+path)))
		if info, err := os.Stat(file); err == nil && !info.IsDir() {
			c.File(file)
			return
		}

		index := filepath.Join(dir, "index.html")
		if _, err := os.Stat(index); err != nil {
			c.JSON(http.StatusNotFound, gin.H{
				"success": false,
				"error": gin.H{
					"code":    "NOT_FOUND",
					"message": "Route not found",
				},
			})
			return
		}
		c.File(index)
	})
}
