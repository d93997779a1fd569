package http

import (
	"fmt"

	"github.com/gin-gonic/gin"

	"github.com/deep-computers/dc-orders/internal/config"
	"github.com/deep-computers/dc-orders/internal/services"
	"github.com/deep-computers/dc-orders/internal/storage"
)

type Server struct {
	engine *gin.Engine
	cfg    config.Config
}

func NewServer(cfg config.Config) (*Server, error) {
	gin.SetMode(gin.ReleaseMode)

	fm, err := storage.NewFileManager(cfg.DataDir)
	if err != nil {
		return nil, fmt.Errorf("init file manager: %w", err)
	}

	store, err := storage.NewStore(cfg.DataDir)
	if err != nil {
		return nil, fmt.Errorf("init order store: %w", err)
	}

	mailer := services.NewMailer(cfg)
	pdfSvc := services.NewPDFService()
	shareSvc := services.NewShareService(cfg)

	engine := gin.New()
	engine.Use(Recovery())
	engine.Use(RequestLogger())
	engine.Use(MaxBodySize(cfg.MaxBodyBytes))
	engine.Use(CORS())

	api := NewAPI(cfg, store, fm, mailer, pdfSvc, shareSvc)
	registerRoutes(engine, api)

	return &Server{engine: engine, cfg: cfg}, nil
}

func (s *Server) Run() error {
	addr := fmt.Sprintf(":%s", s.cfg.Port)
	return s.engine.Run(addr)
}
