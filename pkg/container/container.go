package container

import (
	"context"
	"fmt"
	"log"
	"time"

	"cms-backend/internal/config"
	infraCache "cms-backend/internal/infrastructure/cache"
	"cms-backend/internal/infrastructure/database"
	"cms-backend/pkg/cache"
	"cms-backend/pkg/jwt"

	"cms-backend/internal/domains/content"
	contentHandler "cms-backend/internal/domains/content/handler"
	contentRepo "cms-backend/internal/domains/content/repository"
	contentService "cms-backend/internal/domains/content/service"

	"cms-backend/internal/domains/user"
	userHandler "cms-backend/internal/domains/user/handler"
	userRepo "cms-backend/internal/domains/user/repository"
	userService "cms-backend/internal/domains/user/service"
)

// Container wires infrastructure, repositories, services and handlers
// in dependency order. Everything the router needs hangs off it.
type Container struct {
	Config *config.Config

	DB         *database.PostgresDB
	Cache      cache.Cache
	JWTManager *jwt.Manager

	ContentRepo    content.Repository
	ContentService content.Service
	ContentHandler *contentHandler.ContentHandler

	UserRepo    user.Repository
	UserService user.Service
	UserHandler *userHandler.UserHandler
}

// NewContainer builds the full dependency graph. Fails fast: if any
// piece of infrastructure is unreachable, the application does not
// start.
func NewContainer() (*Container, error) {
	c := &Container{}

	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}
	c.Config = cfg

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := c.initInfrastructure(ctx); err != nil {
		return nil, err
	}

	c.initRepositories()
	c.initServices()
	c.initHandlers()

	return c, nil
}

func (c *Container) initInfrastructure(ctx context.Context) error {
	db := database.NewPostgresDB(&database.DBConfig{
		Host:              c.Config.Database.Host,
		Port:              c.Config.Database.Port,
		Username:          c.Config.Database.User,
		Password:          c.Config.Database.Password,
		DBName:            c.Config.Database.Database,
		SSLMode:           c.Config.Database.SSLMode,
		MaxConns:          int32(c.Config.Database.MaxConns),
		MinConns:          int32(c.Config.Database.MinConns),
		MaxConnLifetime:   5 * time.Minute,
		MaxConnIdleTime:   time.Minute,
		HealthCheckPeriod: time.Minute,
		MaxRetries:        5,
		RetryDelay:        time.Second,
		ConnectTimeout:    10 * time.Second,
	})
	if err := db.Connect(ctx); err != nil {
		return fmt.Errorf("connect database: %w", err)
	}
	c.DB = db

	redis := infraCache.NewRedisCache(
		c.Config.Redis.Host,
		c.Config.Redis.Password,
		c.Config.Redis.DB,
	)
	if err := redis.Connect(ctx); err != nil {
		return fmt.Errorf("connect redis: %w", err)
	}
	c.Cache = redis

	c.JWTManager = jwt.NewManager(
		c.Config.JWT.Secret,
		c.Config.JWT.AccessTokenExpiry,
		c.Config.JWT.RefreshTokenExpiry,
	)

	return nil
}

func (c *Container) initRepositories() {
	c.ContentRepo = contentRepo.NewPostgresRepository(c.DB.Pool)
	c.UserRepo = userRepo.NewPostgresRepository(c.DB.Pool)
}

func (c *Container) initServices() {
	c.ContentService = contentService.NewContentService(
		c.ContentRepo,
		c.Cache,
		content.NewAuditStamper(),
	)
	c.UserService = userService.NewUserService(c.UserRepo, c.JWTManager, c.Cache)
}

func (c *Container) initHandlers() {
	c.ContentHandler = contentHandler.NewContentHandler(c.ContentService)
	c.UserHandler = userHandler.NewUserHandler(c.UserService)
}

// Cleanup releases infrastructure resources on shutdown.
func (c *Container) Cleanup() {
	log.Println("Cleaning up container resources...")

	if c.DB != nil {
		c.DB.Close()
		log.Println("Database connections closed")
	}

	if rc, ok := c.Cache.(*infraCache.RedisCache); ok {
		if err := rc.Close(); err != nil {
			log.Printf("Failed to close Redis: %v", err)
		} else {
			log.Println("Redis connections closed")
		}
	}
}
