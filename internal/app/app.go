package app

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/moogar0880/problems"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"gorm.io/gorm"

	_ "github.com/Mufasinha/vidaPlus-projetoAcademico/docs"
	"github.com/Mufasinha/vidaPlus-projetoAcademico/internal/domain/entities"
	"github.com/Mufasinha/vidaPlus-projetoAcademico/internal/domain/ports"
	"github.com/Mufasinha/vidaPlus-projetoAcademico/internal/handlers/dto"
	httphandlers "github.com/Mufasinha/vidaPlus-projetoAcademico/internal/handlers/http"
	"github.com/Mufasinha/vidaPlus-projetoAcademico/internal/handlers/middleware"
	"github.com/Mufasinha/vidaPlus-projetoAcademico/internal/infrastructure/config"
	"github.com/Mufasinha/vidaPlus-projetoAcademico/internal/infrastructure/i18n"
	"github.com/Mufasinha/vidaPlus-projetoAcademico/internal/infrastructure/persistence/gormrepo"
	"github.com/Mufasinha/vidaPlus-projetoAcademico/internal/infrastructure/security"
	"github.com/Mufasinha/vidaPlus-projetoAcademico/internal/services"
)

// App agrupa as dependências montadas a partir da configuração
type App struct {
	Config   *config.Config
	Logger   ports.Logger
	Router   *gin.Engine
	Registry *prometheus.Registry
}

// New monta repositórios, serviços, handlers e o router sobre uma conexão já aberta
func New(cfg *config.Config, db *gorm.DB, logger ports.Logger) (*App, error) {
	if err := dto.RegisterValidators(); err != nil {
		return nil, fmt.Errorf("failed to register validators: %w", err)
	}

	// Inicializar i18n
	i18nService, err := i18n.NewService(cfg.I18n.LocalesDir, cfg.I18n.DefaultLanguage)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize i18n: %w", err)
	}
	logger.Info("i18n initialized",
		"default_language", i18nService.GetDefaultLanguage(),
		"supported_languages", i18nService.GetSupportedLanguages(),
	)

	// Métricas em registry próprio (sem estado global)
	registry := prometheus.NewRegistry()
	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	metrics, err := middleware.NewMetrics(registry)
	if err != nil {
		return nil, fmt.Errorf("failed to register metrics: %w", err)
	}

	// Inicializar repositories
	uow := gormrepo.NewUnitOfWork(db)
	userRepo := gormrepo.NewUserRepository(db)
	patientRepo := gormrepo.NewPatientRepository(db)
	professionalRepo := gormrepo.NewProfessionalRepository(db)
	consultationRepo := gormrepo.NewConsultationRepository(db)

	// Inicializar services
	hasher := security.NewBcryptHasher(cfg.Password.BcryptCost)
	tokens := security.NewJWTService(cfg.JWT.Secret, cfg.JWT.Issuer, cfg.JWT.AccessExpiry, nil)

	authService := services.NewAuthService(userRepo, hasher, tokens, uow, logger)
	patientService := services.NewPatientService(patientRepo, uow, logger)
	professionalService := services.NewProfessionalService(professionalRepo, logger)
	consultationService := services.NewConsultationService(consultationRepo, patientRepo, professionalRepo, uow, logger)

	// Inicializar handlers
	authHandler := httphandlers.NewAuthHandler(authService)
	patientHandler := httphandlers.NewPatientHandler(patientService)
	professionalHandler := httphandlers.NewProfessionalHandler(professionalService)
	consultationHandler := httphandlers.NewConsultationHandler(consultationService)

	authMiddleware := middleware.NewAuthMiddleware(authService, cfg.Authz.EnforceRoles, logger)
	i18nMiddleware := middleware.NewI18nMiddleware(i18nService)

	router := gin.New()
	router.Use(
		middleware.RequestLogger(logger),
		middleware.Recovery(logger),
		metrics.Middleware(),
		middleware.CORS(cfg.CORS.AllowedOrigins),
		// base URL dos URIs RFC 7807
		func(c *gin.Context) {
			c.Set(dto.BaseURLContextKey, cfg.Server.BaseURL)
			c.Next()
		},
		i18nMiddleware.DetectLanguage(),
	)

	router.NoRoute(func(c *gin.Context) {
		c.Header("Content-Type", problems.ProblemMediaType)
		c.JSON(http.StatusNotFound, dto.NotFoundRouteResponseI18n(c))
	})

	router.GET("/health", httphandlers.Health)
	router.GET("/metrics", gin.WrapH(promhttp.HandlerFor(registry, promhttp.HandlerOpts{Registry: registry})))
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	auth := router.Group("/auth")
	{
		auth.POST("/signup", authHandler.Signup)
		auth.POST("/login", authHandler.Login)
	}

	protected := router.Group("", authMiddleware.RequireAuth())
	{
		perm := authMiddleware.RequirePermission

		protected.POST("/pacientes", perm(entities.PermissionPatientWrite), patientHandler.CreatePatient)
		protected.GET("/pacientes", perm(entities.PermissionPatientRead), patientHandler.ListPatients)
		protected.GET("/pacientes/:id", perm(entities.PermissionPatientRead), patientHandler.GetPatient)

		protected.POST("/profissionais", perm(entities.PermissionProfessionalWrite), professionalHandler.CreateProfessional)
		protected.GET("/profissionais", perm(entities.PermissionProfessionalRead), professionalHandler.ListProfessionals)
		protected.GET("/profissionais/:id", perm(entities.PermissionProfessionalRead), professionalHandler.GetProfessional)

		protected.POST("/consultas", perm(entities.PermissionConsultationWrite), consultationHandler.CreateConsultation)
		protected.GET("/consultas", perm(entities.PermissionConsultationRead), consultationHandler.ListConsultations)
		protected.GET("/consultas/:id", perm(entities.PermissionConsultationRead), consultationHandler.GetConsultation)
	}

	return &App{
		Config:   cfg,
		Logger:   logger,
		Router:   router,
		Registry: registry,
	}, nil
}
