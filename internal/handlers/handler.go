package handlers

import (
	"itemdesk/internal/logger"
	"itemdesk/internal/service"
	"itemdesk/internal/session"
	"itemdesk/internal/views"

	_ "itemdesk/docs"

	"github.com/gin-gonic/gin"

	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// Handler wires HTTP layer to services, sessions and logging.
type Handler struct {
	services *service.Service
	sessions *session.Manager
	log      *logger.Logger
}

// NewHandler constructs a new HTTP handler with dependencies.
func NewHandler(services *service.Service, sessions *session.Manager, log *logger.Logger) *Handler {
	return &Handler{services: services, sessions: sessions, log: log}
}

// InitRoutes builds and returns the Gin router with all routes registered.
func (h *Handler) InitRoutes() *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery(), h.requestID, h.requestLogger)
	router.SetHTMLTemplate(views.Templates())

	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Health endpoint
	router.GET("/health", h.health)

	h.registerAuthRoutes(router)
	h.registerItemRoutes(router)

	return router
}

func (h *Handler) registerAuthRoutes(r *gin.Engine) {
	r.GET("/", h.loginForm)
	r.POST("/login", h.login)
	r.GET("/register", h.registerForm)
	r.POST("/register", h.register)
	r.GET("/logout", h.logout)
}

func (h *Handler) registerItemRoutes(r *gin.Engine) {
	r.GET("/dashboard", h.requireSession(noticeLoginDashboard), h.dashboard)

	newItem := r.Group("/new", h.requireSession(noticeLoginNew))
	{
		newItem.GET("", h.newItemForm)
		newItem.POST("", h.createItem)
	}

	edit := r.Group("/edit", h.requireSession(noticeLoginEdit))
	{
		edit.GET("/:id", h.editItemForm)
		edit.POST("/:id", h.updateItem)
	}

	search := r.Group("/search", h.requireSession(noticeLoginSearch))
	{
		search.GET("", h.searchAll)
		search.POST("", h.search)
	}
}
