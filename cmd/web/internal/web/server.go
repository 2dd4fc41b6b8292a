package web

import (
	"context"
	"log/slog"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	"thirdcoast.systems/reelscout/cmd/web/auth"
	"thirdcoast.systems/reelscout/cmd/web/ctxkeys"
	"thirdcoast.systems/reelscout/cmd/web/handlers/api/asset_api"
	"thirdcoast.systems/reelscout/cmd/web/handlers/api/tools_api"
	"thirdcoast.systems/reelscout/cmd/web/handlers/api/video_api"
	"thirdcoast.systems/reelscout/cmd/web/handlers/common"
	"thirdcoast.systems/reelscout/internal/search"
)

type Webserver struct {
	*echo.Echo
	sessionManager *auth.SessionManager
	finder         *search.AssetFinder
	videos         search.Searcher
	workspaces     *search.WorkspaceStore
}

func NewWebserver(sessionManager *auth.SessionManager, finder *search.AssetFinder, videos search.Searcher, workspaces *search.WorkspaceStore) (*Webserver, error) {
	e := echo.New()

	webserver := &Webserver{
		Echo:           e,
		sessionManager: sessionManager,
		finder:         finder,
		videos:         videos,
		workspaces:     workspaces,
	}

	if err := webserver.setupMiddleware(); err != nil {
		return nil, err
	}

	if err := webserver.registerRoutes(); err != nil {
		return nil, err
	}

	return webserver, nil
}

func (s *Webserver) setupMiddleware() error {
	s.HideBanner = true
	s.HidePort = true
	s.Use(middleware.BodyLimit("4M"))
	s.Use(middleware.Recover())
	s.Use(middleware.RequestID())
	s.Use(middleware.GzipWithConfig(middleware.GzipConfig{
		Level: 5,
	}))
	s.Use(middleware.RequestLoggerWithConfig(middleware.RequestLoggerConfig{
		Skipper: func(c echo.Context) bool {
			return c.Path() == "/health"
		},
		LogURI:       true,
		LogMethod:    true,
		LogStatus:    true,
		LogLatency:   true,
		LogRemoteIP:  true,
		LogRequestID: true,
		LogError:     true,
		HandleError:  false,
		LogValuesFunc: func(c echo.Context, v middleware.RequestLoggerValues) error {
			fields := []any{
				"method", v.Method,
				"uri", v.URI,
				"status", v.Status,
				"latency", v.Latency,
				"remote_ip", v.RemoteIP,
				"request_id", v.RequestID,
			}
			if v.Error != nil {
				fields = append(fields, "error", v.Error)
			}
			slog.Info("request", fields...)
			return nil
		},
	}))
	return nil
}

// workspaceMiddleware puts the session's workspace ID on the request
// context, issuing a session cookie on first use.
func (s *Webserver) workspaceMiddleware(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		id, err := s.sessionManager.EnsureWorkspace(c.Response().Writer, c.Request())
		if err != nil {
			slog.Error("failed to save session", "error", err)
			return common.ErrInternal("session unavailable")
		}
		ctx := context.WithValue(c.Request().Context(), ctxkeys.WorkspaceID, id)
		c.SetRequest(c.Request().WithContext(ctx))
		return next(c)
	}
}

func (s *Webserver) registerRoutes() error {
	assetGroup := s.Group("/api/assets")
	assetGroup.POST("/search", asset_api.HandleSearch(s.finder))
	assetGroup.POST("/export", asset_api.HandleExport())
	assetGroup.POST("/credits", asset_api.HandleCredits())

	videoGroup := s.Group("/api/videos")
	videoGroup.Use(s.workspaceMiddleware)
	videoGroup.POST("/search", video_api.HandleSearch(s.videos, s.workspaces))
	videoGroup.POST("/import", video_api.HandleImport(s.workspaces))
	videoGroup.POST("/rank", video_api.HandleRank(s.workspaces))
	videoGroup.GET("/view", video_api.HandleView(s.workspaces))

	// These read the session without issuing one.
	s.GET("/api/session", video_api.HandleSession(s.sessionManager, s.workspaces))
	s.DELETE("/api/videos/view", video_api.HandleReset(s.sessionManager, s.workspaces))

	s.POST("/api/keywords/draw", tools_api.HandleDrawKeywords())

	// Health check
	s.GET("/health", func(c echo.Context) error {
		return c.String(200, "ok")
	})

	return nil
}
