package v1

import (
	"skillswap/internal/config"
	"skillswap/internal/database"
	"skillswap/internal/delivery/http/handler"
	"skillswap/internal/delivery/http/middleware"
	"skillswap/internal/infrastructure/cache"
	"skillswap/internal/pkg/jwt"
	"skillswap/internal/repository"
	"skillswap/internal/usecase"
	ucauth "skillswap/internal/usecase/auth"

	"github.com/gofiber/fiber/v3"
)

// Register wires every v1 endpoint onto the given router group.
func Register(r fiber.Router, cfg config.Config, db database.DB, redisCache *cache.Redis) {
	jwtSvc := jwt.NewHMACService(
		cfg.JWT.AccessSecret,
		cfg.JWT.RefreshSecret,
		cfg.JWT.AccessExpiresIn,
		cfg.JWT.RefreshExpiresIn,
	)
	authMw := middleware.NewAuthMiddleware(jwtSvc)

	userRepo := repository.NewPostgresUserRepository(db)
	profileRepo := repository.NewPostgresProfileRepository(db)
	skillRepo := repository.NewPostgresSkillRepository(db)
	matchRepo := repository.NewPostgresMatchRepository(db)

	authSvc := ucauth.NewService(userRepo, profileRepo)
	authUC := usecase.NewAuthUsecase(authSvc, userRepo, jwtSvc)
	catalogUC := usecase.NewCatalogUsecase(skillRepo, profileRepo, redisCache)
	browseUC := usecase.NewBrowseUsecase(catalogUC, redisCache)
	matchUC := usecase.NewMatchUsecase(matchRepo, skillRepo)
	dashboardUC := usecase.NewDashboardUsecase(skillRepo, profileRepo, matchRepo)

	handler.NewAuthHandler(authUC).RegisterRoutes(r.Group("/auth"))

	protected := r.Group("", authMw.Middleware())
	handler.NewSkillHandler(catalogUC).RegisterRoutes(protected)
	handler.NewBrowseHandler(browseUC).RegisterRoutes(protected)
	handler.NewMatchHandler(matchUC).RegisterRoutes(protected)
	handler.NewDashboardHandler(dashboardUC).RegisterRoutes(protected)
}
