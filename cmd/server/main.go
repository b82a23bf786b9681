package main

import (
	"context"
	"log"
	"net/http"

	"smartcampus/docs"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	"smartcampus/internal/auth"
	"smartcampus/internal/cache"
	"smartcampus/internal/config"
	"smartcampus/internal/db"
	"smartcampus/internal/handler"
	"smartcampus/internal/idp"
	"smartcampus/internal/model"
	"smartcampus/internal/notify"
	"smartcampus/internal/repository"
	"smartcampus/internal/router"
	"smartcampus/internal/service"
	"smartcampus/internal/storage"
)

// @title Campus Services Portal API
// @version 1.0
// @description CRUD services for timetable, events, lost and found, academic queries, cafeteria and user management.
// @host localhost:8080
// @BasePath /
// @schemes http
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and the session token.
func main() {
	cfg := config.Load()

	if cfg.SwaggerHost != "" {
		docs.SwaggerInfo.Host = cfg.SwaggerHost
	}

	e := echo.New()
	e.Use(middleware.RequestID())

	gormDB, err := db.NewMySQL(cfg.MySQLDSN)
	if err != nil {
		log.Fatalf("database init: %v", err)
	}

	if err := gormDB.AutoMigrate(
		&model.TimetableEntry{},
		&model.Event{},
		&model.LostFoundItem{},
		&model.AcademicQuery{},
		&model.MenuItem{},
		&model.Order{},
		&model.Feedback{},
		&idp.Account{},
	); err != nil {
		log.Fatalf("auto-migrate: %v", err)
	}

	cacheClient := cache.New(cfg.RedisAddr, cfg.RedisPass, cfg.RedisDB)

	// Optional collaborators: image store and mailer
	var images storage.ImageStore
	if cfg.ImagesBucket != "" && cfg.B2KeyID != "" && cfg.B2AppKey != "" {
		b2Store, err := storage.NewB2Store(context.Background(), cfg.B2KeyID, cfg.B2AppKey, cfg.ImagesBucket)
		if err != nil {
			log.Fatalf("image store init: %v", err)
		}
		images = b2Store
		log.Printf("image store configured: bucket %s", cfg.ImagesBucket)
	} else {
		log.Println("image store not configured (IMAGES_BUCKET / B2_KEY_ID / B2_APP_KEY not set)")
	}

	var mailer notify.Mailer
	if cfg.ResendAPIKey != "" {
		mailer = notify.NewResendMailer(cfg.ResendAPIKey, cfg.MailFrom)
	}

	// Identity provider
	jwtService := auth.NewJWTService(cfg.JWTSecret)
	provider := idp.NewDirectory(gormDB, jwtService)

	// Repositories
	timetableRepo := repository.NewResourceRepository[model.TimetableEntry](gormDB)
	eventsRepo := repository.NewResourceRepository[model.Event](gormDB)
	lostFoundRepo := repository.NewResourceRepository[model.LostFoundItem](gormDB)
	queryRepo := repository.NewResourceRepository[model.AcademicQuery](gormDB)
	menuRepo := repository.NewResourceRepository[model.MenuItem](gormDB, model.MenuItemRatingColumns...)
	ordersRepo := repository.NewResourceRepository[model.Order](gormDB)
	cafeteriaRepo := repository.NewCafeteriaRepository(gormDB)

	// Services
	timetableService := service.NewResourceService[model.TimetableEntry](timetableRepo)
	eventsService := service.NewResourceService[model.Event](eventsRepo)
	lostFoundService := service.NewResourceService[model.LostFoundItem](lostFoundRepo)
	queryService := service.NewResourceService[model.AcademicQuery](queryRepo)
	menuService := service.NewResourceService[model.MenuItem](menuRepo)
	ordersService := service.NewResourceService[model.Order](ordersRepo)
	feedbackService := service.NewFeedbackService(cafeteriaRepo)
	authService := service.NewAuthService(provider)
	userService := service.NewUserService(provider, cacheClient, mailer, cfg.WelcomeMail)

	// Handlers
	timetableHandler := handler.NewTimetableHandler(timetableService)
	eventsHandler := handler.NewEventsHandler(eventsService)
	lostFoundHandler := handler.NewLostFoundHandler(lostFoundService, images)
	queryHandler := handler.NewAcademicQueryHandler(queryService)
	cafeteriaHandler := handler.NewCafeteriaHandler(menuService, ordersService, feedbackService, images)
	authHandler := handler.NewAuthHandler(authService)
	userHandler := handler.NewUserHandler(userService)

	router.Register(
		e,
		cfg,
		timetableHandler,
		eventsHandler,
		lostFoundHandler,
		queryHandler,
		cafeteriaHandler,
		authHandler,
		userHandler,
	)

	addr := ":" + cfg.ServerPort
	if err := e.Start(addr); err != nil && err != http.ErrServerClosed {
		log.Fatalf("server start: %v", err)
	}
}
