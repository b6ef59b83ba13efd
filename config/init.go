package config

import (
	"context"
	"fmt"
	"time"

	"hotelpms/middleware"
	"hotelpms/services/logger"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/olahol/melody"
	"github.com/redis/go-redis/v9"
	"github.com/robfig/cron/v3"
	"gorm.io/gorm"
)

type App struct {
	Config *Config
	Logger *logger.ZerologLogger
	Router *gin.Engine
	Melody *melody.Melody
	Cron   *cron.Cron
	DB     *gorm.DB
	Redis  *redis.Client
}

func InitApp(cfg *Config, log *logger.ZerologLogger) (*App, error) {
	db, err := ConnectDB(cfg, log)
	if err != nil {
		return nil, err
	}
	if err := Migrate(db); err != nil {
		return nil, err
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	rdb, err := ConnectRedis(ctx, cfg.Redis)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}
	if rdb == nil {
		log.Info("REDIS_ADDR not set, read cache disabled")
	}

	log.Info("All components initialized successfully")
	return &App{
		Config: cfg,
		Logger: log,
		Router: NewRouter(cfg, log),
		Melody: melody.New(),
		Cron:   cron.New(cron.WithLocation(cfg.Location())),
		DB:     db,
		Redis:  rdb,
	}, nil
}

// NewRouter builds the gin engine with recovery, request ids, request logging and CORS.
func NewRouter(cfg *Config, log *logger.ZerologLogger) *gin.Engine {
	if cfg.Env == "prod" {
		gin.SetMode(gin.ReleaseMode)
	}
	router := gin.New()
	router.Use(gin.Recovery(), middleware.RequestIDMiddleware(), middleware.RequestLogger(log), middleware.ErrorHandler())

	configCors := cors.DefaultConfig()
	configCors.AddAllowHeaders("Authorization", middleware.RequestIDHeader)
	configCors.AddExposeHeaders(middleware.RequestIDHeader)
	configCors.AllowCredentials = true
	if len(cfg.CORSOrigins) > 0 {
		configCors.AllowOrigins = cfg.CORSOrigins
	} else {
		configCors.AllowOriginFunc = func(origin string) bool {
			return true
		}
	}
	router.Use(cors.New(configCors))

	_ = router.SetTrustedProxies(nil)
	return router
}

func InitWebSocket(router *gin.Engine, m *melody.Melody, log logger.Logger) {
	router.GET("/ws", func(c *gin.Context) {
		if err := m.HandleRequest(c.Writer, c.Request); err != nil {
			log.Error("websocket upgrade: %v", err)
		}
	})
	log.Info("WebSocket initialized successfully")
}
