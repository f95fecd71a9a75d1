package provider

import (
	"time"

	"github.com/RoieHarkavi/Jenkins-Project-Jewelry-Store/internal/auth"
	"github.com/RoieHarkavi/Jenkins-Project-Jewelry-Store/internal/cache"
	"github.com/RoieHarkavi/Jenkins-Project-Jewelry-Store/internal/config"
	"github.com/RoieHarkavi/Jenkins-Project-Jewelry-Store/internal/logger"
	"github.com/RoieHarkavi/Jenkins-Project-Jewelry-Store/internal/models"
	"github.com/RoieHarkavi/Jenkins-Project-Jewelry-Store/internal/repository"
	"github.com/RoieHarkavi/Jenkins-Project-Jewelry-Store/internal/service"
)

// Container is the dependency injection container.
type Container struct {
	Config *config.Config

	// Repositories
	ProductRepo repository.ProductRepository
	CartRepo    repository.CartRepository

	// Services
	CatalogService  *service.CatalogService
	CartService     *service.CartService
	IdentityService *service.IdentityService
}

// NewContainer initializes the container.
func NewContainer(cfg *config.Config) *Container {
	if err := cache.InitRedis(&cfg.Redis); err != nil {
		logger.Warnw("provider_init_redis_failed", "error", err)
	}

	c := &Container{
		Config: cfg,
	}

	c.initRepositories()
	c.initServices()

	return c
}

func (c *Container) initRepositories() {
	db := models.DB
	c.ProductRepo = repository.NewProductRepository(db)
	c.CartRepo = repository.NewCartRepository(db)
}

func (c *Container) initServices() {
	c.CatalogService = service.NewCatalogService(c.ProductRepo)
	c.CartService = service.NewCartService(c.CartRepo, c.ProductRepo)
	c.IdentityService = service.NewIdentityService(c.buildTokenValidator(), c.Config.Cart.DefaultSession)
}

func (c *Container) buildTokenValidator() auth.TokenValidator {
	var validator auth.TokenValidator
	switch c.Config.Auth.Mode {
	case "remote":
		validator = auth.NewRemoteValidator(
			c.Config.Auth.ServiceURL,
			time.Duration(c.Config.Auth.TimeoutMS)*time.Millisecond,
		)
	default:
		validator = auth.NewLocalValidator(c.Config.Auth.Secret)
	}
	ttl := time.Duration(c.Config.Auth.CacheTTLSeconds) * time.Second
	return auth.NewCachingValidator(validator, ttl)
}
