package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/johnquangdev/project-hub/internal/adapter/dto/common"
	"github.com/johnquangdev/project-hub/pkg/config"
)

// Router holds all handlers
type Router struct {
	cfg            *config.Config
	projectHandler *Project
	noteHandler    *Note
	viewHandler    *View
	avatarHandler  *Avatar
	loadProject    echo.MiddlewareFunc
	currentUser    echo.MiddlewareFunc
	me             echo.HandlerFunc
}

// NewRouter creates a new router with all handlers
func NewRouter(
	cfg *config.Config,
	projectHandler *Project,
	noteHandler *Note,
	viewHandler *View,
	avatarHandler *Avatar,
	loadProject echo.MiddlewareFunc,
	currentUser echo.MiddlewareFunc,
	me echo.HandlerFunc,
) *Router {
	return &Router{
		cfg:            cfg,
		projectHandler: projectHandler,
		noteHandler:    noteHandler,
		viewHandler:    viewHandler,
		avatarHandler:  avatarHandler,
		loadProject:    loadProject,
		currentUser:    currentUser,
		me:             me,
	}
}

// Setup configures all application routes
func (rt *Router) Setup(e *echo.Echo) {
	// Health check endpoint
	e.GET("/health", rt.healthCheck)

	// API v1 group
	v1 := e.Group("/v1")
	if rt.currentUser != nil {
		v1.Use(rt.currentUser)
	}

	rt.setupProjectRoutes(v1)
	rt.setupNoteRoutes(v1)
	rt.setupViewRoutes(v1)
	rt.setupUserRoutes(v1)
}

// setupProjectRoutes configures project and task routes
func (rt *Router) setupProjectRoutes(g *echo.Group) {
	if rt.projectHandler == nil {
		g.GET("/projects", rt.notImplemented)
		g.GET("/tasks", rt.notImplemented)
		return
	}

	g.GET("/projects", rt.projectHandler.ListProjects)
	g.GET("/tasks", rt.projectHandler.ListAllTasks)

	projectGroup := g.Group("/projects/:id")
	if rt.loadProject != nil {
		projectGroup.Use(rt.loadProject)
	}
	projectGroup.GET("", rt.projectHandler.GetProject)
	projectGroup.GET("/tasks", rt.projectHandler.ListProjectTasks)
}

// setupNoteRoutes configures note routes, nested under a project
func (rt *Router) setupNoteRoutes(g *echo.Group) {
	notesGroup := g.Group("/projects/:id/notes")

	if rt.noteHandler == nil {
		notesGroup.GET("", rt.notImplemented)
		return
	}

	notesGroup.GET("", rt.noteHandler.ListNotes)
	notesGroup.GET("/recent", rt.noteHandler.ListRecentNotes)
	notesGroup.POST("", rt.noteHandler.CreateNote)
	notesGroup.POST("/audio", rt.noteHandler.UploadAudio)
	notesGroup.GET("/:noteId", rt.noteHandler.GetNote)
	notesGroup.PUT("/:noteId", rt.noteHandler.UpdateNote)
	notesGroup.DELETE("/:noteId", rt.noteHandler.DeleteNote)
}

// setupViewRoutes configures view session routes
func (rt *Router) setupViewRoutes(g *echo.Group) {
	if rt.viewHandler == nil {
		g.POST("/projects/:id/views/table", rt.notImplemented)
		return
	}

	g.POST("/projects/:id/views/table", rt.viewHandler.OpenTable)
	g.POST("/projects/:id/notes/:noteId/views/preview", rt.viewHandler.OpenPreview)

	viewGroup := g.Group("/views")
	viewGroup.GET("/:viewId", rt.viewHandler.GetView)
	viewGroup.POST("/:viewId/events", rt.viewHandler.ApplyEvent)
	viewGroup.DELETE("/:viewId", rt.viewHandler.CloseView)
}

// setupUserRoutes configures user routes
func (rt *Router) setupUserRoutes(g *echo.Group) {
	if rt.me != nil {
		g.GET("/me", rt.me)
	}
	if rt.avatarHandler != nil {
		g.GET("/users/:name/avatar", rt.avatarHandler.GetAvatar)
	}
}

// notImplemented returns 501 Not Implemented response
func (rt *Router) notImplemented(c echo.Context) error {
	return c.JSON(http.StatusNotImplemented, map[string]interface{}{
		"error":   "This endpoint is not yet implemented",
		"path":    c.Request().URL.Path,
		"method":  c.Request().Method,
		"message": "Please initialize the required handler in main.go",
	})
}

// healthCheck returns health status
func (rt *Router) healthCheck(c echo.Context) error {
	resp := common.HealthResponse{Status: "ok"}
	if rt.cfg != nil {
		resp.Environment = rt.cfg.Server.Environment
		resp.ViewStore = rt.cfg.Cache.Backend
	}
	if rt.projectHandler != nil {
		if items, err := rt.projectHandler.projectService.ListProjects(c.Request().Context()); err == nil {
			resp.Projects = len(items)
		} else {
			resp.Status = "degraded"
		}
	}
	return c.JSON(http.StatusOK, resp)
}
