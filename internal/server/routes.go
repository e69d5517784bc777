package server

import (
	"taskflow/internal/handler"
	"taskflow/internal/middleware"
	"taskflow/internal/translator"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/zap"
)

type Router struct {
	Logger          *zap.Logger
	Translator      *translator.Translator
	Tokens          middleware.TokenParser
	Users           middleware.UserResolver
	DefaultLanguage string

	Health *handler.HealthHandler
	User   *handler.UserHandler
	Task   *handler.TaskHandler
}

// Engine builds the gin engine. Everything except /health and /swagger requires a bearer token.
func (rt Router) Engine() *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery(), middleware.GinZapMiddleware(rt.Logger), middleware.LanguageMiddleware(rt.DefaultLanguage))

	r.GET("/health", rt.Health.CheckHealth)
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	authorized := r.Group("/")
	authorized.Use(
		middleware.JWTAuthMiddleware(rt.Tokens, rt.Translator),
		middleware.CurrentUserMiddleware(rt.Users, rt.Translator),
	)
	{
		// Users
		authorized.GET("/current_user", rt.User.CurrentUser)
		authorized.GET("/get_users", rt.User.GetUsers)
		authorized.POST("/select_manager", rt.User.SelectManager)

		// Tasks
		authorized.GET("/create_task", rt.Task.List)
		authorized.POST("/create_task", rt.Task.Create)
		authorized.GET("/view_task/:task_id", rt.Task.View)
		authorized.PUT("/edit_task/:task_id", rt.Task.Edit)
		authorized.DELETE("/delete_task/:task_id", rt.Task.Delete)
		authorized.POST("/filter_tasks", rt.Task.Filter)

		// Comments
		authorized.POST("/add_comment/:task_id", rt.Task.AddComment)
		authorized.GET("/get_comments/:task_id", rt.Task.GetComments)
	}

	return r
}
