package api

import (
	"log/slog"
	"os"
	"reflect"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	swaggerfiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gin-gonic/gin/otelgin"

	docs "github.com/xEpiqq/hivecrm/docs"
	"github.com/xEpiqq/hivecrm/internal/controller"
)

var (
	routerHandler = slog.NewTextHandler(os.Stdout, nil).WithAttrs([]slog.Attr{slog.String("name", "api")})
	routerLogger  = slog.New(routerHandler)
)

const (
	ScopeName = "github.com/xEpiqq/hivecrm/internal/api"
)

func InitRoutes() *gin.Engine {
	routerLogger.Info("Gin cold start")
	r := gin.Default()
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		v.RegisterValidation("rfc3339", func(fl validator.FieldLevel) bool {

			var field string
			if reflect.PointerTo(fl.Field().Type()).Kind() == reflect.String {
				if !fl.Field().Addr().IsNil() {
					return true
				}
				field = fl.Field().Addr().String()
			} else {
				if fl.Field().String() == "" {
					return true
				}
				field = fl.Field().String()
			}

			_, err := time.Parse(time.RFC3339, field)

			if err != nil {
				return false
			}

			return true
		})
	}
	corsConfig := cors.DefaultConfig()

	corsConfig.AllowOrigins = []string{"*"}

	// To be able to send tokens to the server.
	corsConfig.AllowCredentials = true
	corsConfig.AllowHeaders = []string{"*"}
	corsConfig.AddAllowMethods("OPTIONS", "GET", "POST", "PUT", "PATCH", "DELETE")

	r.Use(otelgin.Middleware(ScopeName))

	r.Use(cors.New(corsConfig))

	// SWAGGER
	docs.SwaggerInfo.BasePath = ""
	{
		r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerfiles.Handler))
	}
	r.Use(currentUserMiddleWare())

	// FOLLOW-UP ROUTER
	followUp := r.Group("/followup")
	{
		followUp.GET("", controller.GetFollowUps)
	}

	// CONTACT ROUTER
	contacts := r.Group("/contacts")
	{
		contacts.GET("", controller.GetContacts)
		contacts.POST("", controller.CreateContact)
		contacts.GET("/:id", controller.GetContactByID)
		contacts.PATCH("/:id", controller.UpdateContact)
		contacts.DELETE("/:id", controller.DeleteContact)

		contacts.POST("/:id/engagements/:channel", controller.RecordEngagement)
		contacts.DELETE("/:id/engagements/:channel", controller.UndoEngagement)

		contacts.POST("/:id/notes/:channel", controller.AddNote)
		contacts.PUT("/:id/notes/:channel/:index", controller.EditNote)
	}

	// DISTRICT ROUTER
	districts := r.Group("/districts")
	{
		districts.GET("/:state", controller.GetDistricts)
		districts.GET("/:state/:link", controller.GetDistrict)
		districts.PATCH("/:state/:link/completed", controller.SetDistrictCompleted)
	}

	// TEMPLATE ROUTER
	templates := r.Group("/templates")
	{
		templates.GET("", controller.GetTemplates)
		templates.POST("", controller.CreateTemplate)
		templates.GET("/:id", controller.GetTemplate)
		templates.PATCH("/:id", controller.UpdateTemplate)
		templates.DELETE("/:id", controller.DeleteTemplate)

		templates.POST("/:id/render", controller.RenderTemplate)
		templates.POST("/:id/send", controller.SendTemplate)
	}

	// SCHOOL ROUTER
	schools := r.Group("/schools")
	{
		schools.GET("", controller.GetSchools)
		schools.GET("/:id", controller.GetSchoolByID)
		schools.PATCH("/:id", controller.UpdateSchool)
	}

	return r

}
