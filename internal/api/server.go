package api

import (
	"context"
	"embed"
	"encoding/json"
	"errors"
	"html/template"
	"io"
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"go.uber.org/zap"

	"tokensort/internal/classifier"
	"tokensort/internal/config"
)

//go:embed templates/*.html
var templateFS embed.FS

var errInvalidBody = errors.New("invalid JSON body")

type Server struct {
	echo      *echo.Echo
	cfg       *config.Config
	log       *zap.Logger
	templates *template.Template
}

// ClassifyResponse is the wire shape of a classification: the core Result
// plus the boundary-attached identity metadata.
type ClassifyResponse struct {
	classifier.Result
	UserID     string `json:"user_id"`
	Email      string `json:"email"`
	RollNumber string `json:"roll_number"`
}

func NewServer(cfg *config.Config, log *zap.Logger) *Server {
	e := echo.New()
	e.HideBanner = true

	e.Use(middleware.RequestIDWithConfig(middleware.RequestIDConfig{
		Generator: uuid.NewString,
	}))
	e.Use(middleware.RequestLoggerWithConfig(middleware.RequestLoggerConfig{
		LogRequestID: true,
		LogMethod:    true,
		LogURI:       true,
		LogStatus:    true,
		LogLatency:   true,
		LogValuesFunc: func(c echo.Context, v middleware.RequestLoggerValues) error {
			log.Info("request",
				zap.String("id", v.RequestID),
				zap.String("method", v.Method),
				zap.String("uri", v.URI),
				zap.Int("status", v.Status),
				zap.Duration("latency", v.Latency),
			)
			return nil
		},
	}))
	e.Use(middleware.Recover())
	e.Use(middleware.CORS())
	e.Use(middleware.Secure())
	e.Use(middleware.BodyLimit(cfg.Server.BodyLimit))

	tmpl := template.Must(template.ParseFS(templateFS, "templates/*.html"))

	s := &Server{
		echo:      e,
		cfg:       cfg,
		log:       log,
		templates: tmpl,
	}

	s.routes()

	return s
}

func (s *Server) routes() {
	s.echo.GET("/", s.index)
	s.echo.GET("/health", s.health)
	s.echo.POST("/bfhl", s.classify)
	s.echo.GET("/bfhl", s.operationCode)
}

func (s *Server) Start(addr string) error {
	return s.echo.Start(addr)
}

func (s *Server) Shutdown(ctx context.Context) error {
	return s.echo.Shutdown(ctx)
}

func (s *Server) classify(c echo.Context) error {
	dec := json.NewDecoder(c.Request().Body)
	dec.UseNumber()

	var req classifier.Request
	if err := dec.Decode(&req); err != nil && !errors.Is(err, io.EOF) {
		// transport-level malformation, the core never sees it
		return c.JSON(http.StatusBadRequest, s.respond(classifier.Failure(errInvalidBody)))
	}

	res := classifier.Classify(req)

	status := http.StatusOK
	if !res.IsSuccess {
		status = http.StatusBadRequest
	}

	return c.JSON(status, s.respond(res))
}

func (s *Server) respond(res classifier.Result) ClassifyResponse {
	return ClassifyResponse{
		Result:     res,
		UserID:     s.cfg.Identity.UserID,
		Email:      s.cfg.Identity.Email,
		RollNumber: s.cfg.Identity.RollNumber,
	}
}

func (s *Server) operationCode(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]int{"operation_code": 1})
}

func (s *Server) health(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
}

func (s *Server) index(c echo.Context) error {
	data := map[string]any{
		"Email":      s.cfg.Identity.Email,
		"RollNumber": s.cfg.Identity.RollNumber,
	}
	return s.render(c, "index.html", data)
}

func (s *Server) render(c echo.Context, name string, data any) error {
	c.Response().Header().Set("Content-Type", "text/html")
	err := s.templates.ExecuteTemplate(c.Response(), name, data)
	if err != nil {
		s.log.Error("render", zap.String("template", name), zap.Error(err))
	}
	return err
}
