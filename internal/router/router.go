package router

import (
	"net/http"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/zap"

	_ "github.com/OMAR684257931/nawy-apartments/docs"
	"github.com/OMAR684257931/nawy-apartments/internal/config"
	"github.com/OMAR684257931/nawy-apartments/internal/middleware"
	"github.com/OMAR684257931/nawy-apartments/internal/modules/handler"
	"github.com/OMAR684257931/nawy-apartments/internal/modules/serializer"
	"github.com/OMAR684257931/nawy-apartments/internal/telemetry"
)

type RouterDeps struct {
	Config           *config.Config
	Log              *zap.Logger
	UnitHandler      *handler.UnitHandler
	CompoundHandler  *handler.CompoundHandler
	DeveloperHandler *handler.DeveloperHandler
	UploadHandler    *handler.UploadHandler
}

func NewRouter(d RouterDeps) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())

	if d.Config.Telemetry.Enabled && d.Config.Telemetry.OtlpEndpoint != "" {
		r.Use(telemetry.GinMiddleware(d.Config.App.Name))
		r.Use(telemetry.TraceIDMiddleware())
	}

	r.Use(middleware.ZapLogger(d.Log))

	// health
	r.GET("/health", func(c *gin.Context) { c.JSON(http.StatusOK, serializer.OK("ok")) })

	// swagger
	r.GET("/swagger", func(c *gin.Context) {
		c.Redirect(http.StatusMovedPermanently, "/swagger/index.html")
	})
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	api := r.Group("/api/v1")
	{
		units := api.Group("/units")
		{
			units.GET("", d.UnitHandler.GetUnits)
			units.POST("", d.UnitHandler.CreateUnit)
			units.GET("/:id", d.UnitHandler.GetUnit)
		}

		compounds := api.Group("/compounds")
		{
			compounds.GET("", d.CompoundHandler.ListCompounds)
			compounds.GET("/:id", d.CompoundHandler.GetCompound)
			compounds.GET("/slug/:slug", d.CompoundHandler.GetCompoundBySlug)
		}

		developers := api.Group("/developers")
		{
			developers.GET("", d.DeveloperHandler.ListDevelopers)
			developers.GET("/:id", d.DeveloperHandler.GetDeveloper)
		}

		upload := api.Group("/upload")
		{
			upload.POST("/image", d.UploadHandler.UploadImage)
			upload.POST("/images", d.UploadHandler.UploadImages)
		}
	}
	return r
}
