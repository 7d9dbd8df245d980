package main

import (
	"fmt"

	"github.com/LakshyaBagani/CAFE-CHAIN-sub000/configs"
	"github.com/LakshyaBagani/CAFE-CHAIN-sub000/controllers"
	"github.com/LakshyaBagani/CAFE-CHAIN-sub000/pkg/cache"
	"github.com/LakshyaBagani/CAFE-CHAIN-sub000/pkg/logger"
	"github.com/LakshyaBagani/CAFE-CHAIN-sub000/repository"
	"github.com/LakshyaBagani/CAFE-CHAIN-sub000/routes"
	"github.com/LakshyaBagani/CAFE-CHAIN-sub000/services"
	"github.com/LakshyaBagani/CAFE-CHAIN-sub000/session"
	"github.com/LakshyaBagani/CAFE-CHAIN-sub000/ws"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

func main() {
	log := logger.New()
	defer log.Sync()

	cfg := configs.Load(log)

	// DB
	db, err := configs.ConnectDB(cfg.DBSource)
	if err != nil {
		log.Fatal("connect database failed", zap.Error(err))
	}
	if err := configs.SetupDatabase(db); err != nil {
		log.Fatal("migrate failed", zap.Error(err))
	}
	if err := configs.SeedAdmin(db, cfg, log); err != nil {
		log.Fatal("seed admin failed", zap.Error(err))
	}
	if err := configs.SeedLookups(db, log); err != nil {
		log.Fatal("seed lookups failed", zap.Error(err))
	}

	// Redis is optional; the menu cache degrades to a no-op without it.
	var redisClient *redis.Client
	if cfg.RedisAddr != "" {
		redisClient = redis.NewClient(&redis.Options{Addr: cfg.RedisAddr})
	}
	menuCache := cache.NewMenuCache(redisClient)

	// Repositories
	userRepo := repository.NewUserRepository(db)
	cafeRepo := repository.NewCafeRepository(db)
	menuRepo := repository.NewMenuRepository(db)
	orderRepo := repository.NewOrderRepository(db)
	walletRepo := repository.NewWalletRepository(db)
	mealPlanRepo := repository.NewMealPlanRepository(db)
	kvRepo := repository.NewKVRepository(db, log)

	// Services
	emailSvc := services.NewEmailService(cfg, log)
	authSvc := services.NewAuthService(userRepo, emailSvc, cfg.JWTSecret, cfg.JWTTTL, log)
	backend := services.NewSessionBackend(authSvc, cfg.JWTTTL)
	walletSvc := services.NewWalletService(db, walletRepo)
	orderSvc := services.NewOrderService(db, orderRepo, menuRepo, cafeRepo, walletSvc, emailSvc, userRepo, log)
	menuSvc := services.NewMenuService(menuRepo, menuCache, log)
	mealPlanSvc := services.NewMealPlanService(mealPlanRepo, menuRepo, orderSvc, log)

	// Live order status over websocket
	hub := ws.NewOrderHub(log)
	go hub.Run()
	orderSvc.Broadcast = hub

	// Per-device sessions backed by the kv table
	manager := session.NewManager(kvRepo.Scoped, backend, func(kind session.EventKind, err error) {
		if kind == session.EventLogoutRemoteFailed {
			log.Warn("remote logout failed", zap.Error(err))
		}
	}, log)

	// Meal plan scheduler
	sched, err := services.NewScheduler(mealPlanSvc, kvRepo, cfg.MealPlanSchedule, log)
	if err != nil {
		log.Fatal("scheduler setup failed", zap.Error(err))
	}
	sched.Start()
	defer sched.Stop()

	// HTTP
	r := gin.Default()
	routes.RegisterRoutes(r, &routes.Deps{
		JWTSecret: cfg.JWTSecret,
		Sessions:  manager,
		Backend:   backend,

		Auth:      controllers.NewAuthController(authSvc),
		Session:   controllers.NewSessionController(),
		Cafes:     controllers.NewCafeController(cafeRepo, menuSvc),
		Menus:     controllers.NewMenuController(menuSvc),
		Orders:    controllers.NewOrderController(orderSvc),
		Wallet:    controllers.NewWalletController(walletSvc),
		MealPlans: controllers.NewMealPlanController(mealPlanSvc),
		Admin:     controllers.NewAdminController(db, userRepo, orderSvc),

		OrderHub: hub,
	})

	addr := fmt.Sprintf(":%s", cfg.Port)
	log.Info("server listening", zap.String("addr", addr))
	if err := r.Run(addr); err != nil {
		log.Fatal("server stopped", zap.Error(err))
	}
}
