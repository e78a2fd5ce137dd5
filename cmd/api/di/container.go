package di

import (
	"fmt"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"employee-service/cmd/api/infrastructure"
	"employee-service/internal/adapter/cache"
	"employee-service/internal/adapter/db/postgres"
	ginhandler "employee-service/internal/adapter/gin/handler"
	gqlengine "employee-service/internal/adapter/graphql"
	"employee-service/internal/adapter/repository/cached"
	"employee-service/internal/auth"
	"employee-service/internal/config"
	"employee-service/internal/usecase/employee"
	"employee-service/internal/usecase/user"
	redisclient "employee-service/pkg/redis"
)

// Container holds all application dependencies
type Container struct {
	Config      *config.Config
	Logger      *zap.Logger
	DB          *gorm.DB
	RedisClient *redisclient.Client
	AuthManager *auth.Manager
	UserUC      *user.Usecase
	EmployeeUC  *employee.Usecase
	GinHandler  *ginhandler.GraphQLHandler
}

// NewContainer creates and initializes all application dependencies
func NewContainer(cfg *config.Config, l *zap.Logger) (*Container, error) {
	// Validate configuration before initializing any dependencies
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	// Initialize database
	db, err := infrastructure.NewDatabase(cfg, l)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize database: %w", err)
	}

	// The employee cache is optional. Without Redis every read goes
	// straight to the store.
	var rdb *redisclient.Client
	var empRepo employee.Repository = postgres.NewEmployeeRepoPG(db, l)
	if cfg.Redis.Enabled {
		rdb, err = infrastructure.NewRedisClient(cfg, l)
		if err != nil {
			return nil, fmt.Errorf("failed to initialize Redis: %w", err)
		}

		empCache := cache.NewRedisEmployeeCache(rdb.Client, cfg.Redis.CacheTTL(), l)
		empRepo = cached.NewCachedEmployeeRepository(empRepo, empCache, l)
	}

	// The signing secret and token lifetime are fixed here, at
	// construction. Nothing reads them ambiently later.
	authManager := auth.New(cfg.Auth.JWTSecret, cfg.Auth.TokenTTL())

	// Initialize use cases
	userUC := user.New(postgres.NewUserRepoPG(db, l), authManager, l)
	employeeUC := employee.New(empRepo, l)

	// Compile the GraphQL schema around the resolvers
	engine, err := gqlengine.NewEngine(gqlengine.NewResolver(userUC, employeeUC, authManager, l), l)
	if err != nil {
		return nil, fmt.Errorf("failed to build graphql engine: %w", err)
	}

	// Initialize Gin handler
	ginHandler := ginhandler.NewGraphQLHandler(engine, l)

	return &Container{
		Config:      cfg,
		Logger:      l,
		DB:          db,
		RedisClient: rdb,
		AuthManager: authManager,
		UserUC:      userUC,
		EmployeeUC:  employeeUC,
		GinHandler:  ginHandler,
	}, nil
}

// Close closes all resources held by the container
func (c *Container) Close() error {
	var errs []error

	// Close Redis connection
	if c.RedisClient != nil {
		if err := c.RedisClient.Close(); err != nil {
			errs = append(errs, fmt.Errorf("failed to close Redis: %w", err))
		}
	}

	// Close database connection
	if c.DB != nil {
		if err := infrastructure.CloseDatabase(c.DB); err != nil {
			errs = append(errs, fmt.Errorf("failed to close database: %w", err))
		}
	}

	if len(errs) > 0 {
		return fmt.Errorf("container close errors: %v", errs)
	}

	return nil
}
