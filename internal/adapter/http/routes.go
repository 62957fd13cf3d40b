package http

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"taskflow/internal/adapter/http/handlers"
	"taskflow/internal/adapter/http/middleware"
	"taskflow/internal/core/ports"
	"taskflow/pkg/apierrors"
)

func RegisterRoutes(
	r *gin.Engine,
	healthHandler *handlers.HealthHandler,
	userHandler *handlers.UserHandler,
	taskHandler *handlers.TaskHandler,
	verifier ports.TokenVerifier,
) {
	api := r.Group("/api")
	api.Use(middleware.LanguageMiddleware())
	{
		api.GET("/health", healthHandler.CheckHealth)
		api.GET("/health/report", healthHandler.CheckHealthReport)

		api.POST("/user/register", userHandler.Register)
		api.POST("/user/login", userHandler.Login)
	}

	r.NoRoute(middleware.LanguageMiddleware(), LegacyTaskRedirect)

	protected := api.Group("")
	protected.Use(middleware.AuthMiddleware(verifier))
	{
		protected.GET("/user/me", userHandler.Me)
		protected.PUT("/user/profile", userHandler.UpdateProfile)
		protected.PUT("/user/password", userHandler.ChangePassword)

		// Older clients append /gp to every task route.
		for _, suffix := range []string{"", "/gp"} {
			protected.GET("/tasks"+suffix, taskHandler.ListTasks)
			protected.POST("/tasks"+suffix, taskHandler.CreateTask)
			protected.GET("/tasks/:id"+suffix, taskHandler.GetTask)
			protected.PUT("/tasks/:id"+suffix, taskHandler.UpdateTask)
			protected.PATCH("/tasks/:id"+suffix, taskHandler.UpdateTask)
			protected.DELETE("/tasks/:id"+suffix, taskHandler.DeleteTask)
		}
	}
}

// LegacyTaskRedirect sends old "/api/<task id>/gp" requests to "/api/tasks/<task id>/gp".
// It is meant for r.NoRoute so it never shadows a registered route.
func LegacyTaskRedirect(c *gin.Context) {
	rest, ok := strings.CutPrefix(c.Request.URL.Path, "/api/")
	if ok {
		if id, found := strings.CutSuffix(rest, "/gp"); found {
			if _, err := uuid.Parse(id); err == nil {
				c.Redirect(http.StatusTemporaryRedirect, "/api/tasks/"+id+"/gp")
				return
			}
		}
	}
	c.JSON(
		http.StatusNotFound,
		apierrors.CreateError(http.StatusNotFound, apierrors.MsgRouteNotFound, middleware.GetLang(c)),
	)
}
