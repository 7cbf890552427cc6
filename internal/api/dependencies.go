package api

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"helping-hands/volunteerhub/internal/auth"
	"helping-hands/volunteerhub/internal/common"
	"helping-hands/volunteerhub/internal/config"
	"helping-hands/volunteerhub/internal/db"
	"helping-hands/volunteerhub/internal/db/repositories"
	"helping-hands/volunteerhub/internal/logging"
	"helping-hands/volunteerhub/internal/metrics"
	"helping-hands/volunteerhub/internal/notifications"
	"helping-hands/volunteerhub/internal/services"
)

type Repositories struct {
	Accounts             *repositories.AccountRepository
	Volunteers           *repositories.VolunteerRepository
	Organizations        *repositories.OrganizationRepository
	OrganizationRequests *repositories.OrganizationRequestRepository
	Postings             *repositories.PostingRepository
	Enrollments          *repositories.EnrollmentRepository
	ApplicationQueue     *repositories.ApplicationQueueRepository
}

type Services struct {
	Cache      common.CacheInterface
	RedisQueue *common.RedisQueueService // nil unless Redis is enabled
	Mailer     notifications.Mailer
	Outbox     notifications.Outbox
	Tokens     *auth.TokenIssuer

	Accounts             *services.AccountService
	Volunteers           *services.VolunteerService
	OrganizationRequests *services.OrganizationRequestService
	Postings             *services.PostingService
	Enrollments          *services.EnrollmentService
}

type Dependencies struct {
	Config   *config.Config
	DB       *db.Database
	Redis    *redis.Client // nil unless Redis is enabled
	Metrics  *metrics.MetricsRegistry
	Repo     *Repositories
	Services *Services
	UpSince  time.Time
}

// InitDependencies wires repositories and services. With Redis enabled the
// posting cache and the mail outbox are Redis backed; otherwise they are
// in-memory and synchronous.
func InitDependencies(ctx context.Context, cfg *config.Config, database *db.Database, metricsReg *metrics.MetricsRegistry) (*Dependencies, error) {
	tokens, err := auth.NewTokenIssuer(cfg.JWTSecret, cfg.TokenTTL)
	if err != nil {
		return nil, fmt.Errorf("token issuer: %w", err)
	}

	repos := &Repositories{
		Accounts:             repositories.NewAccountRepository(database.ORM),
		Volunteers:           repositories.NewVolunteerRepository(database.ORM),
		Organizations:        repositories.NewOrganizationRepository(database.ORM),
		OrganizationRequests: repositories.NewOrganizationRequestRepository(database.ORM),
		Postings:             repositories.NewPostingRepository(database.ORM),
		Enrollments:          repositories.NewEnrollmentRepository(database.ORM),
		ApplicationQueue:     repositories.NewApplicationQueueRepository(database.SQL),
	}

	var mailer notifications.Mailer = notifications.LogMailer{}
	if cfg.SMTP.Host != "" {
		mailer = notifications.NewSMTPMailer(cfg.SMTP.Host, cfg.SMTP.Port, cfg.SMTP.User, cfg.SMTP.Password, cfg.SMTP.From)
	}

	var (
		redisClient *redis.Client
		cache       common.CacheInterface
		queue       *common.RedisQueueService
		outbox      notifications.Outbox
	)
	if cfg.Redis.Enabled {
		redisClient, err = common.NewRedisClient(ctx, cfg.RedisAddr(), cfg.Redis.Password)
		if err != nil {
			return nil, err
		}
		cache = common.NewRedisCacheService(redisClient)
		queue = common.NewRedisQueueService(redisClient)
		outbox = notifications.NewRedisOutbox(queue, metricsReg)
		logging.Info("Using Redis cache and mail outbox")
	} else {
		cache = common.NewCacheService(cfg.CacheTTL, 10*time.Minute)
		outbox = notifications.NewSyncOutbox(mailer, metricsReg)
		logging.Info("Using in-memory cache and synchronous mail outbox")
	}

	svcs := &Services{
		Cache:      cache,
		RedisQueue: queue,
		Mailer:     mailer,
		Outbox:     outbox,
		Tokens:     tokens,

		Accounts:             services.NewAccountService(repos.Accounts, repos.Volunteers, repos.Organizations, tokens),
		Volunteers:           services.NewVolunteerService(repos.Volunteers, repos.ApplicationQueue),
		OrganizationRequests: services.NewOrganizationRequestService(repos.OrganizationRequests, outbox, metricsReg),
		Postings:             services.NewPostingService(repos.Postings, repos.Enrollments, cache, cfg.CacheTTL, metricsReg),
		Enrollments:          services.NewEnrollmentService(repos.Postings, repos.Enrollments, repos.ApplicationQueue, metricsReg),
	}

	return &Dependencies{
		Config:   cfg,
		DB:       database,
		Redis:    redisClient,
		Metrics:  metricsReg,
		Repo:     repos,
		Services: svcs,
		UpSince:  time.Now(),
	}, nil
}

// Close releases the cache and the Redis client.
func (d *Dependencies) Close() error {
	if d.Services != nil && d.Services.Cache != nil {
		_ = d.Services.Cache.Close()
	}
	if d.Redis != nil {
		return d.Redis.Close()
	}
	return nil
}
