package app

import (
	"cms_backend/internal/config"
	"cms_backend/internal/controller"
	"cms_backend/internal/i18n"
	"cms_backend/internal/middleware"
	"cms_backend/internal/repository"
	"cms_backend/internal/service"
	"cms_backend/pkg/database"
	"cms_backend/pkg/logger"
	"cms_backend/pkg/monitoring"
	"cms_backend/pkg/security"
	"cms_backend/pkg/tracing"
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-contrib/sessions"
	"github.com/gin-contrib/sessions/cookie"
	"github.com/gin-gonic/gin"
	gorillasessions "github.com/gorilla/sessions"
	"github.com/markbates/goth/gothic"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type App struct {
	Config          *config.Config
	Router          *gin.Engine
	DB              *gorm.DB
	Translator      *i18n.Translator
	tracerProvider  *sdktrace.TracerProvider
	configCallbacks []func(*config.Config)
}

type repositories struct {
	user     *repository.UserRepository
	page     *repository.PageRepository
	menu     *repository.MenuRepository
	submenu  *repository.SubmenuRepository
	quiz     *repository.QuizRepository
	response *repository.ResponseRepository
}

type services struct {
	navigation *service.NavigationService
	page       *service.PageService
	menu       *service.MenuService
	submenu    *service.SubmenuService
	quiz       *service.QuizService
	poll       *service.PollService
	user       *service.UserService
	auth       *service.AuthService
	storage    *service.StorageService
}

type controllers struct {
	site         *controller.SiteController
	auth         *controller.AuthController
	user         *controller.UserController
	poll         *controller.PollController
	menu         *controller.MenuController
	submenu      *controller.SubmenuController
	page         *controller.PageController
	quiz         *controller.QuizController
	quizQuestion *controller.QuizQuestionController
	quizAnswer   *controller.QuizAnswerController
	health       *controller.HealthController
}

func (a *App) RegisterConfigCallback(callback func(*config.Config)) {
	a.configCallbacks = append(a.configCallbacks, callback)
}

// ApplyConfig fans a reloaded configuration out to registered listeners.
func (a *App) ApplyConfig(cfg *config.Config) {
	a.Config = cfg
	for _, callback := range a.configCallbacks {
		callback(cfg)
	}
}

func (a *App) initRepositories(db *gorm.DB) *repositories {
	return &repositories{
		user:     repository.NewUserRepository(db),
		page:     repository.NewPageRepository(db),
		menu:     repository.NewMenuRepository(db),
		submenu:  repository.NewSubmenuRepository(db),
		quiz:     repository.NewQuizRepository(db),
		response: repository.NewResponseRepository(db),
	}
}

func (a *App) initServices(repos *repositories, cfg *config.Config) *services {
	s := &services{}

	s.storage = service.NewStorageService(cfg)
	s.navigation = service.NewNavigationService(repos.menu)
	s.page = service.NewPageService(repos.page)
	s.menu = service.NewMenuService(repos.menu)
	s.submenu = service.NewSubmenuService(repos.submenu, repos.menu)
	s.quiz = service.NewQuizService(repos.quiz)
	s.poll = service.NewPollService(repos.quiz, repos.response)
	s.user = service.NewUserService(repos.user)
	s.auth = service.NewAuthService(repos.user)

	return s
}

func (a *App) initControllers(s *services, db *gorm.DB) *controllers {
	r := controller.NewRenderer(s.navigation, a.Translator)
	return &controllers{
		site:         controller.NewSiteController(r, s.page),
		auth:         controller.NewAuthController(r, s.auth, a.Config),
		user:         controller.NewUserController(r, s.user),
		poll:         controller.NewPollController(r, s.poll),
		menu:         controller.NewMenuController(r, s.menu),
		submenu:      controller.NewSubmenuController(r, s.submenu),
		page:         controller.NewPageController(r, s.page, s.storage),
		quiz:         controller.NewQuizController(r, s.quiz),
		quizQuestion: controller.NewQuizQuestionController(r, s.quiz),
		quizAnswer:   controller.NewQuizAnswerController(r, s.quiz),
		health:       controller.NewHealthController(db),
	}
}

func (a *App) setupMiddlewares(router *gin.Engine, repos *repositories, cfg *config.Config) {
	router.Use(security.Secure())
	router.Use(security.RateLimiter(cfg.RateLimit.MaxRequests, time.Duration(cfg.RateLimit.WindowMinutes)*time.Minute))

	if cfg.Tracing.Enabled {
		router.Use(tracing.GinMiddleware())
	}

	router.Use(monitoring.MetricsMiddleware())

	store := cookie.NewStore([]byte(cfg.Session.Secret))
	store.Options(sessions.Options{Path: "/", HttpOnly: true})
	router.Use(sessions.Sessions(cfg.Session.Name, store))

	router.Use(middleware.Locale(a.Translator))
	router.Use(middleware.CurrentUser(repos.user))
}

func NewApp(cfg *config.Config) *App {
	logger.InitLogger(cfg)

	logger.Log.Info("Logger initialized successfully")

	db, err := database.InitDB(cfg)
	if err != nil {
		logger.Log.Fatal("Failed to initialize database", zap.Error(err))
	}
	if err := database.Migrate(db); err != nil {
		logger.Log.Fatal("Failed to migrate database", zap.Error(err))
	}
	if err := database.Seed(db, cfg); err != nil {
		logger.Log.Fatal("Failed to seed database", zap.Error(err))
	}

	translator, err := i18n.Load(cfg.Locale.Path, cfg.Locale.Supported, cfg.Locale.Default)
	if err != nil {
		logger.Log.Fatal("Failed to load locales", zap.Error(err))
	}

	app := &App{
		Config:     cfg,
		DB:         db,
		Translator: translator,
	}

	// gothic keeps its own handshake state in a cookie alongside ours.
	gothic.Store = gorillasessions.NewCookieStore([]byte(cfg.Session.Secret))
	controller.RegisterProviders(cfg)

	repos := app.initRepositories(db)
	services := app.initServices(repos, cfg)
	controllers := app.initControllers(services, db)

	monitoring.Init()

	gin.SetMode(cfg.Server.Mode)
	router := gin.New()
	router.Use(gin.Logger())
	app.Router = router

	router.LoadHTMLGlob("web/templates/*")

	app.setupMiddlewares(router, repos, cfg)

	if cfg.Tracing.Enabled {
		tp, err := tracing.InitTracer("cms-backend", cfg.Tracing.CollectorEndpoint)
		if err != nil {
			logger.Log.Fatal("Failed to initialize tracing", zap.Error(err))
		}
		app.tracerProvider = tp
	}

	app.registerRoutes(router, controllers)

	if cfg.Storage.Type == "local" {
		router.Static("/uploads", cfg.Storage.LocalPath)
	}
	router.Static("/static", "web/static")

	return app
}

func (a *App) Run() {
	srv := &http.Server{
		Addr:    ":" + a.Config.Server.Port,
		Handler: a.Router,
	}

	go func() {
		log.Printf("Server running on port %s", a.Config.Server.Port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("listen: %s\n", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Println("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Fatal("Server forced to shutdown:", err)
	}

	if a.tracerProvider != nil {
		if err := a.tracerProvider.Shutdown(context.Background()); err != nil {
			logger.Log.Error("Failed to shutdown tracer provider", zap.Error(err))
		}
	}

	logger.Log.Sync()
	log.Println("Server exiting")
}
