package api

import (
	"github.com/Toyowa5296/poliform/internal/auth"
	"github.com/Toyowa5296/poliform/internal/common"
	"github.com/Toyowa5296/poliform/internal/config"
	"github.com/Toyowa5296/poliform/internal/db"
	"github.com/Toyowa5296/poliform/internal/db/repositories"
	"github.com/Toyowa5296/poliform/internal/metrics"
	"github.com/Toyowa5296/poliform/internal/services"

	"github.com/redis/go-redis/v9"
)

type Repositories struct {
	Profiles *repositories.UserProfileRepository
	Parties  *repositories.PartyRepository
	Members  *repositories.PartyMemberRepository
	Likes    *repositories.LikeRepository
	Comments *repositories.CommentRepository
	Pillars  *repositories.PolicyPillarRepository
	Tags     *repositories.TagRepository
	Stats    repositories.StatsProvider
	Logs     *repositories.LogRepository
}

type Services struct {
	Cache      common.CacheInterface
	Redis      *redis.Client
	Session    *common.SessionService
	Storage    *common.StorageService
	Tokens     *auth.TokenService
	Auth       *services.AuthService
	Profile    *services.ProfileService
	Party      *services.PartyService
	PartyQuery *services.PartyQueryService
	Membership *services.MembershipService
	Support    *services.SupportService
	Comment    *services.CommentService
	Pillar     *services.PillarService
	Tag        *services.TagService
	EventLog   *services.EventLogService
}

type Dependencies struct {
	Repo     *Repositories
	Services *Services
}

// InitDependencies wires repositories and services. db.InitPostgres and
// db.InitPostgresORM must have run first.
func InitDependencies(cfg *config.Config, metricsReg *metrics.MetricsRegistry) (*Dependencies, error) {
	repos := &Repositories{
		Profiles: repositories.NewUserProfileRepository(db.PgDB),
		Parties:  repositories.NewPartyRepository(db.PgDB),
		Members:  repositories.NewPartyMemberRepository(db.PgDB),
		Likes:    repositories.NewLikeRepository(db.PgDB),
		Comments: repositories.NewCommentRepository(db.PgDB),
		Pillars:  repositories.NewPolicyPillarRepository(db.PgDB),
		Tags:     repositories.NewTagRepository(db.PgDB),
		Stats:    repositories.NewStatsRepository(db.DB),
		Logs:     repositories.NewLogRepository(db.PgDB),
	}

	cacheSvc := common.NewCacheService(600, 600)
	redisClient := common.NewRedisClient(cfg.RedisAddr(), cfg.RedisPassword)
	sessionSvc := common.NewSessionService(redisClient)
	tokenSvc := auth.NewTokenService(cfg.JWTSecret)

	storageSvc, err := common.NewStorageService(cfg.UploadDir, cfg.PublicBaseURL)
	if err != nil {
		return nil, err
	}

	svcs := &Services{
		Cache:      cacheSvc,
		Redis:      redisClient,
		Session:    sessionSvc,
		Storage:    storageSvc,
		Tokens:     tokenSvc,
		Auth:       services.NewAuthService(repos.Profiles, sessionSvc, tokenSvc),
		Profile:    services.NewProfileService(repos.Profiles, storageSvc),
		Party:      services.NewPartyService(repos.Parties, cacheSvc, storageSvc, metricsReg),
		PartyQuery: services.NewPartyQueryService(repos.Parties, repos.Pillars, repos.Comments, repos.Members, repos.Stats, cacheSvc),
		Membership: services.NewMembershipService(repos.Parties, repos.Members, metricsReg),
		Support:    services.NewSupportService(repos.Parties, repos.Likes, metricsReg),
		Comment:    services.NewCommentService(repos.Parties, repos.Comments, repos.Profiles),
		Pillar:     services.NewPillarService(repos.Parties, repos.Pillars),
		Tag:        services.NewTagService(repos.Tags, cacheSvc, metricsReg),
		EventLog:   services.NewEventLogService(repos.Logs, metricsReg),
	}

	return &Dependencies{Repo: repos, Services: svcs}, nil
}
