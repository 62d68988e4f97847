package app

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/redis/go-redis/v9"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/zap"

	_ "github.com/noah-isme/exercise-api/api/swagger"
	"github.com/noah-isme/exercise-api/internal/handler"
	"github.com/noah-isme/exercise-api/internal/middleware"
	"github.com/noah-isme/exercise-api/internal/repository"
	"github.com/noah-isme/exercise-api/internal/service"
	"github.com/noah-isme/exercise-api/pkg/config"
	"github.com/noah-isme/exercise-api/pkg/database"
	"github.com/noah-isme/exercise-api/pkg/logger"
	corsmiddleware "github.com/noah-isme/exercise-api/pkg/middleware/cors"
	reqidmiddleware "github.com/noah-isme/exercise-api/pkg/middleware/requestid"
)

const shutdownTimeout = 10 * time.Second

// Repositories groups the persistence layer of an Application.
type Repositories struct {
	Users     *repository.UserRepository
	Networks  *repository.NetworkRepository
	Members   *repository.MemberRepository
	Exercises *repository.ExerciseRepository
	Groups    *repository.GroupRepository
}

// Dependencies are the process-wide resources an Application is built from.
type Dependencies struct {
	Config   *config.Config
	Logger   *zap.Logger
	Database *database.Service
	Metrics  *service.MetricsService
	Redis    *redis.Client
}

// Application wires repositories, services and handlers behind a gin router.
type Application struct {
	cfg    *config.Config
	logger *zap.Logger
	db     *database.Service
	redis  *redis.Client
	repos  Repositories
	router *gin.Engine
}

// New builds the application. Redis may be nil, in which case caching is off.
func New(deps Dependencies) *Application {
	cfg := deps.Config
	log := deps.Logger
	if log == nil {
		log = zap.NewNop()
	}
	metrics := deps.Metrics
	if metrics == nil {
		metrics = service.NewMetricsService(cfg.App.Name)
	}
	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	handle := deps.Database.Handle()
	repos := Repositories{
		Users:     repository.NewUserRepository(handle),
		Networks:  repository.NewNetworkRepository(handle),
		Members:   repository.NewMemberRepository(handle),
		Exercises: repository.NewExerciseRepository(handle),
		Groups:    repository.NewGroupRepository(handle),
	}

	validate := validator.New()
	cacheRepo := repository.NewCacheRepository(deps.Redis)
	cache := service.NewCacheService(cacheRepo, metrics, cfg.Redis.TTL, log.Named("cache"), deps.Redis != nil)

	initSvc := service.NewInitService(repos.Users, repos.Members, repos.Exercises, log.Named("init"))
	exerciseSvc := service.NewExerciseService(repos.Exercises, cache, validate, log.Named("exercise"))
	groupSvc := service.NewGroupService(repos.Groups, validate, log.Named("group"))
	userSvc := service.NewUserService(repos.Users, validate, log.Named("user"))
	networkSvc := service.NewNetworkService(repos.Networks, repos.Members, validate, log.Named("network"))
	memberSvc := service.NewMemberService(repos.Members, repos.Users, repos.Networks, validate, log.Named("member"))

	checks := map[string]handler.Pinger{"database": deps.Database}
	if deps.Redis != nil {
		checks["cache"] = cacheRepo
	}

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(reqidmiddleware.Middleware())
	r.Use(logger.GinMiddleware(log))
	r.Use(corsmiddleware.New(cfg.CORS))
	r.Use(middleware.Metrics(metrics))

	ops := handler.NewMetricsHandler(metrics, checks)
	r.GET("/health", ops.Health)
	r.GET("/ready", ops.Ready)
	r.GET("/metrics", ops.Prometheus)
	if !cfg.IsProduction() {
		r.GET("/docs/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	initHandler := handler.NewInitHandler(initSvc)
	r.GET("/init/:email", initHandler.Init)

	exercises := handler.NewExerciseHandler(exerciseSvc)
	exerciseRoutes := r.Group("/exercise")
	exerciseRoutes.GET("", exercises.List)
	exerciseRoutes.POST("", exercises.Create)
	exerciseRoutes.GET("/:id", exercises.Get)
	exerciseRoutes.PUT("/:id", exercises.Update)
	exerciseRoutes.DELETE("/:id", exercises.Delete)

	groups := handler.NewGroupHandler(groupSvc)
	groupRoutes := r.Group("/group")
	groupRoutes.GET("", groups.List)
	groupRoutes.POST("", groups.Create)
	groupRoutes.GET("/:id", groups.Get)
	groupRoutes.PATCH("/:id", groups.Edit)
	groupRoutes.DELETE("/:id", groups.Delete)

	users := handler.NewUserHandler(userSvc)
	r.POST("/user", users.Create)
	r.GET("/user/:id", users.Get)

	networks := handler.NewNetworkHandler(networkSvc, memberSvc)
	networkRoutes := r.Group("/network")
	networkRoutes.GET("", networks.List)
	networkRoutes.POST("", networks.Create)
	networkRoutes.GET("/:id", networks.Get)
	networkRoutes.GET("/:id/members", networks.Members)
	r.POST("/member", networks.AddMember)
	r.DELETE("/member/:id", networks.RemoveMember)

	return &Application{
		cfg:    cfg,
		logger: log,
		db:     deps.Database,
		redis:  deps.Redis,
		repos:  repos,
		router: r,
	}
}

// Router returns the HTTP handler of the application.
func (a *Application) Router() http.Handler {
	return a.router
}

// Repositories exposes the persistence layer, used to seed fixtures.
func (a *Application) Repositories() Repositories {
	return a.repos
}

// Serve listens on the configured address until ctx is cancelled, then drains
// in-flight requests.
func (a *Application) Serve(ctx context.Context) error {
	srv := &http.Server{
		Addr:              a.cfg.Addr(),
		Handler:           a.router,
		ReadHeaderTimeout: 5 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		a.logger.Info("server starting", zap.String("addr", srv.Addr), zap.String("env", a.cfg.App.Env))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	a.logger.Info("server shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}

// Close releases the database pool and the cache connection.
func (a *Application) Close() error {
	var errs []error
	if a.redis != nil {
		if err := a.redis.Close(); err != nil {
			errs = append(errs, err)
		}
	}
	if err := a.db.Close(); err != nil {
		errs = append(errs, err)
	}
	return errors.Join(errs...)
}
