package main

import (
	"context"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/lucasmonteiro/vitrine/adapters/event"
	httpAdapter "github.com/lucasmonteiro/vitrine/adapters/http"
	"github.com/lucasmonteiro/vitrine/adapters/media_storage"
	"github.com/lucasmonteiro/vitrine/adapters/payment"
	"github.com/lucasmonteiro/vitrine/adapters/persistence"
	"github.com/lucasmonteiro/vitrine/adapters/translation"
	articleUC "github.com/lucasmonteiro/vitrine/internal/application/usecase/article"
	authUC "github.com/lucasmonteiro/vitrine/internal/application/usecase/auth"
	cvUC "github.com/lucasmonteiro/vitrine/internal/application/usecase/cv"
	experienceUC "github.com/lucasmonteiro/vitrine/internal/application/usecase/experience"
	mediaUC "github.com/lucasmonteiro/vitrine/internal/application/usecase/media"
	portfolioUC "github.com/lucasmonteiro/vitrine/internal/application/usecase/portfolio"
	profileUC "github.com/lucasmonteiro/vitrine/internal/application/usecase/profile"
	projectUC "github.com/lucasmonteiro/vitrine/internal/application/usecase/project"
	subscriptionUC "github.com/lucasmonteiro/vitrine/internal/application/usecase/subscription"
	themeUC "github.com/lucasmonteiro/vitrine/internal/application/usecase/theme"
	translationUC "github.com/lucasmonteiro/vitrine/internal/application/usecase/translation"
	videoUC "github.com/lucasmonteiro/vitrine/internal/application/usecase/video"
	"github.com/lucasmonteiro/vitrine/internal/config"
	"github.com/lucasmonteiro/vitrine/pkg/auth"
	"github.com/lucasmonteiro/vitrine/pkg/logger"
	"github.com/lucasmonteiro/vitrine/pkg/tracing"
)

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("FATAL: cannot load config: %v", err)
	}

	appLogger := logger.NewZapLogger(cfg.App.Env)
	appLogger.Info("Starting Vitrine API server...")

	tp, err := tracing.NewTracerProvider(cfg, appLogger, "vitrine-api")
	if err != nil {
		appLogger.Warn("Tracing disabled: " + err.Error())
	} else {
		defer tp.Shutdown(context.Background())
	}

	dbPool, err := persistence.NewPostgresPool(cfg, appLogger)
	if err != nil {
		appLogger.Fatal("cannot connect Postgres", err)
	}
	defer dbPool.Close()

	redisClient, err := persistence.NewRedisClient(cfg)
	if err != nil {
		appLogger.Fatal("cannot connect Redis", err)
	}
	defer redisClient.Close()

	kafkaClient, err := event.NewKafkaProducerClient(cfg)
	if err != nil {
		appLogger.Fatal("cannot init Kafka", err)
	}
	defer kafkaClient.Close()

	// Repositories
	userRepo := persistence.NewPostgresUserRepo(dbPool)
	profileRepo := persistence.NewPostgresProfileRepo(dbPool, appLogger)
	projectRepo := persistence.NewPostgresProjectRepo(dbPool, appLogger)
	experienceRepo := persistence.NewPostgresExperienceRepo(dbPool, appLogger)
	articleRepo := persistence.NewPostgresArticleRepo(dbPool, appLogger)
	cvRepo := persistence.NewPostgresCVRepo(dbPool, appLogger)
	themeRepo := persistence.NewPostgresThemeRepo(dbPool, appLogger)
	subscriptionRepo := persistence.NewPostgresSubscriptionRepo(dbPool, appLogger)
	videoRepo := persistence.NewPostgresVideoRepo(dbPool)

	// Services
	jwtSvc := auth.NewJWTService(cfg.Auth.JWTSecret, cfg.Auth.TokenLifespan)
	translationCache := persistence.NewRedisTranslationCache(redisClient, cfg.Translator.CacheTTL, appLogger)
	translator, err := translation.NewHTTPTranslator(cfg, appLogger)
	if err != nil {
		appLogger.Fatal("Failed to initialize translator", err)
	}
	uploader, err := media_storage.NewCloudinaryAdapter(cfg, appLogger)
	if err != nil {
		appLogger.Fatal("Failed to initialize uploader", err)
	}
	paymentGateway, err := payment.NewMercadoPagoAdapter(cfg, appLogger)
	if err != nil {
		appLogger.Fatal("Failed to initialize payment gateway", err)
	}

	// Use cases
	loginUseCase := authUC.NewLoginUseCase(userRepo, jwtSvc, appLogger)
	profileUseCase := profileUC.NewProfileUseCase(profileRepo, kafkaClient, appLogger)
	createProjectUseCase := projectUC.NewCreateProjectUseCase(projectRepo, subscriptionRepo, kafkaClient, appLogger)
	listProjectsUseCase := projectUC.NewListProjectsUseCase(projectRepo)
	getProjectUseCase := projectUC.NewGetProjectUseCase(projectRepo)
	updateProjectUseCase := projectUC.NewUpdateProjectUseCase(projectRepo, kafkaClient, appLogger)
	deleteProjectUseCase := projectUC.NewDeleteProjectUseCase(projectRepo, kafkaClient, appLogger)
	experienceUseCase := experienceUC.NewExperienceUseCase(experienceRepo, kafkaClient, appLogger)
	articleUseCase := articleUC.NewArticleUseCase(articleRepo, subscriptionRepo, kafkaClient, appLogger)
	cvUseCase := cvUC.NewCVUseCase(cvRepo, subscriptionRepo, appLogger)
	renderCVUseCase := cvUC.NewRenderCVUseCase(cvRepo, profileRepo, projectRepo, experienceRepo, articleRepo, translationCache, appLogger)
	themeUseCase := themeUC.NewThemeUseCase(themeRepo, subscriptionRepo, appLogger)
	videoUseCase := videoUC.NewVideoUseCase(videoRepo, appLogger)
	renderPortfolioUseCase := portfolioUC.NewRenderPortfolioUseCase(
		profileRepo, projectRepo, experienceRepo, articleRepo,
		cvRepo, themeRepo, videoRepo, translationCache, appLogger,
	)
	translateTextsUseCase := translationUC.NewTranslateTextsUseCase(translator)
	subscriptionUseCase := subscriptionUC.NewSubscriptionUseCase(subscriptionRepo, paymentGateway, kafkaClient, appLogger)
	uploadAssetUseCase := mediaUC.NewUploadAssetUseCase(uploader, appLogger)

	// Handlers
	authHandler := httpAdapter.NewAuthHandler(loginUseCase)
	profileHandler := httpAdapter.NewProfileHandler(profileUseCase, appLogger)
	projectHandler := httpAdapter.NewProjectHandler(
		createProjectUseCase,
		listProjectsUseCase,
		getProjectUseCase,
		updateProjectUseCase,
		deleteProjectUseCase,
		appLogger,
	)
	experienceHandler := httpAdapter.NewExperienceHandler(experienceUseCase, appLogger)
	articleHandler := httpAdapter.NewArticleHandler(articleUseCase, appLogger)
	cvHandler := httpAdapter.NewCVHandler(cvUseCase, renderCVUseCase, appLogger)
	themeHandler := httpAdapter.NewThemeHandler(themeUseCase, appLogger)
	videoHandler := httpAdapter.NewVideoHandler(videoUseCase, appLogger)
	portfolioHandler := httpAdapter.NewPortfolioHandler(renderPortfolioUseCase, renderCVUseCase, appLogger)
	translateHandler := httpAdapter.NewTranslateHandler(translateTextsUseCase, appLogger)
	billingHandler := httpAdapter.NewBillingHandler(subscriptionUseCase, appLogger)
	mediaHandler := httpAdapter.NewMediaHandler(uploadAssetUseCase, appLogger)

	authMiddleware := httpAdapter.AuthMiddleware(jwtSvc)

	router := gin.Default()
	router.Use(httpAdapter.ErrorMiddleware(appLogger))

	// Public portfolio page and CV document
	router.GET("/p/:userId", portfolioHandler.GetPortfolio)
	router.GET("/p/:userId/cv", portfolioHandler.GetCVDocument)

	api := router.Group("/api")
	{
		api.GET("/health", func(c *gin.Context) { c.JSON(http.StatusOK, gin.H{"status": "UP"}) })
		api.POST("/auth/login", authHandler.Login)

		private := api.Group("/")
		private.Use(authMiddleware)
		{
			private.GET("/profile", profileHandler.GetProfile)
			private.PUT("/profile", profileHandler.UpdateProfile)

			projects := private.Group("/projects")
			{
				projects.POST("", projectHandler.CreateProject)
				projects.GET("", projectHandler.ListProjects)
				projects.GET("/:id", projectHandler.GetProject)
				projects.PUT("/:id", projectHandler.UpdateProject)
				projects.DELETE("/:id", projectHandler.DeleteProject)
			}

			experiences := private.Group("/experiences")
			{
				experiences.POST("", experienceHandler.CreateExperience)
				experiences.GET("", experienceHandler.ListExperiences)
				experiences.GET("/:id", experienceHandler.GetExperience)
				experiences.PUT("/:id", experienceHandler.UpdateExperience)
				experiences.DELETE("/:id", experienceHandler.DeleteExperience)
			}

			articles := private.Group("/articles")
			{
				articles.POST("", articleHandler.CreateArticle)
				articles.GET("", articleHandler.ListArticles)
				articles.GET("/:id", articleHandler.GetArticle)
				articles.PUT("/:id", articleHandler.UpdateArticle)
				articles.DELETE("/:id", articleHandler.DeleteArticle)
			}

			cvs := private.Group("/cvs")
			{
				cvs.POST("", cvHandler.CreateCV)
				cvs.GET("", cvHandler.ListCVs)
				cvs.GET("/:id", cvHandler.GetCV)
				cvs.PUT("/:id", cvHandler.UpdateCV)
				cvs.DELETE("/:id", cvHandler.DeleteCV)
				cvs.GET("/:id/render", cvHandler.RenderCV)
			}

			private.GET("/theme", themeHandler.GetTheme)
			private.PUT("/theme", themeHandler.UpdateTheme)
			private.POST("/theme/preview", themeHandler.PreviewTheme)

			private.GET("/video", videoHandler.GetVideo)
			private.PUT("/video", videoHandler.SetVideo)
			private.DELETE("/video", videoHandler.RemoveVideo)

			private.POST("/translate", translateHandler.Translate)
			private.POST("/media/upload", mediaHandler.UploadAsset)

			private.GET("/subscription", billingHandler.GetSubscription)
			private.POST("/mercadopago/create-preference", billingHandler.CreatePreference)
		}
	}

	appLogger.Info("Server running on port " + cfg.App.Port)
	if err := router.Run(":" + cfg.App.Port); err != nil {
		appLogger.Fatal("Cannot run server", err)
	}
}
