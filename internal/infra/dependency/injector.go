// Package dependency provides dependency injection for the application.
package dependency

import (
	"time"

	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	"github.com/walletbook/backend/config"
	"github.com/walletbook/backend/internal/application/adapter"
	"github.com/walletbook/backend/internal/application/usecase/auth"
	"github.com/walletbook/backend/internal/application/usecase/category"
	"github.com/walletbook/backend/internal/application/usecase/entry"
	"github.com/walletbook/backend/internal/application/usecase/transfer"
	"github.com/walletbook/backend/internal/application/usecase/wallet"
	"github.com/walletbook/backend/internal/infra/server/router"
	"github.com/walletbook/backend/internal/integration/adapters"
	"github.com/walletbook/backend/internal/integration/email"
	"github.com/walletbook/backend/internal/integration/entrypoint/controller"
	"github.com/walletbook/backend/internal/integration/entrypoint/middleware"
	"github.com/walletbook/backend/internal/integration/persistence"
)

// Injector holds all application dependencies.
type Injector struct {
	Config *config.Config
	DB     *gorm.DB
	Router *router.Router
}

// NewInjector creates a new dependency injector with all dependencies wired.
// The Redis client may be nil, in which case rate limiting falls back to an
// in-process limiter.
func NewInjector(cfg *config.Config, db *gorm.DB, redisClient *redis.Client) *Injector {
	// Create repositories
	userRepo := persistence.NewUserRepository(db)
	tokenRepo := persistence.NewTokenRepository(db)
	walletRepo := persistence.NewWalletRepository(db)
	categoryRepo := persistence.NewCategoryRepository(db)
	entryRepo := persistence.NewEntryRepository(db)
	transferRepo := persistence.NewTransferRepository(db)
	uow := persistence.NewUnitOfWork(db)

	// Create adapters/services
	passwordService := adapters.NewPasswordService()
	tokenService := adapters.NewTokenService(cfg.JWT.Secret, tokenRepo)
	resetTokenService := adapters.NewPasswordResetTokenService(tokenRepo)
	clock := adapters.NewSystemClock()

	// Email delivery is optional: without an API key, reset links are logged
	// instead of sent.
	var emailService adapter.EmailService
	if cfg.Email.ResendAPIKey != "" {
		sender := email.NewResendClient(cfg.Email.ResendAPIKey, cfg.Email.FromName, cfg.Email.FromEmail)
		emailService = email.NewService(sender)
	}

	// Create auth use cases
	registerUseCase := auth.NewRegisterUserUseCase(userRepo, passwordService, tokenService)
	loginUseCase := auth.NewLoginUserUseCase(userRepo, passwordService, tokenService)
	refreshTokenUseCase := auth.NewRefreshTokenUseCase(tokenService)
	logoutUseCase := auth.NewLogoutUserUseCase(tokenService)
	forgotPasswordUseCase := auth.NewForgotPasswordUseCase(userRepo, resetTokenService, emailService, cfg.Email.AppBaseURL)
	resetPasswordUseCase := auth.NewResetPasswordUseCase(userRepo, passwordService, resetTokenService, tokenService)

	// Create wallet use cases
	createWalletUseCase := wallet.NewCreateWalletUseCase(walletRepo)
	listWalletsUseCase := wallet.NewListWalletsUseCase(walletRepo)
	updateWalletUseCase := wallet.NewUpdateWalletUseCase(walletRepo)
	deleteWalletUseCase := wallet.NewDeleteWalletUseCase(uow)

	// Create category use cases
	createCategoryUseCase := category.NewCreateCategoryUseCase(categoryRepo)
	listCategoriesUseCase := category.NewListCategoriesUseCase(categoryRepo)
	updateCategoryUseCase := category.NewUpdateCategoryUseCase(categoryRepo)
	deleteCategoryUseCase := category.NewDeleteCategoryUseCase(uow)

	// Create entry use cases
	createEntryUseCase := entry.NewCreateEntryUseCase(uow, clock)
	listEntriesUseCase := entry.NewListEntriesUseCase(entryRepo)
	updateEntryUseCase := entry.NewUpdateEntryUseCase(uow, clock)
	deleteEntryUseCase := entry.NewDeleteEntryUseCase(uow)
	payEntryUseCase := entry.NewPayEntryUseCase(uow, clock)

	// Create transfer use cases
	createTransferUseCase := transfer.NewCreateTransferUseCase(uow, clock)
	listTransfersUseCase := transfer.NewListTransfersUseCase(transferRepo)
	deleteTransferUseCase := transfer.NewDeleteTransferUseCase(uow)

	// Create controllers
	healthController := controller.NewHealthController(func() bool {
		sqlDB, err := db.DB()
		if err != nil {
			return false
		}
		return sqlDB.Ping() == nil
	})

	authController := controller.NewAuthController(
		registerUseCase,
		loginUseCase,
		refreshTokenUseCase,
		logoutUseCase,
		forgotPasswordUseCase,
		resetPasswordUseCase,
	)

	walletController := controller.NewWalletController(
		createWalletUseCase,
		listWalletsUseCase,
		updateWalletUseCase,
		deleteWalletUseCase,
	)

	categoryController := controller.NewCategoryController(
		createCategoryUseCase,
		listCategoriesUseCase,
		updateCategoryUseCase,
		deleteCategoryUseCase,
	)

	entryController := controller.NewEntryController(
		createEntryUseCase,
		listEntriesUseCase,
		updateEntryUseCase,
		deleteEntryUseCase,
		payEntryUseCase,
	)

	transferController := controller.NewTransferController(
		createTransferUseCase,
		listTransfersUseCase,
		deleteTransferUseCase,
	)

	// Create middleware
	// Use higher rate limits for E2E/test environments to prevent flaky tests
	var loginRateLimiter *middleware.RateLimiter
	if cfg.Server.Environment == "e2e" || cfg.Server.Environment == "test" {
		loginRateLimiter = middleware.NewRateLimiterWithConfig(redisClient, 1000, 1*time.Minute)
	} else {
		loginRateLimiter = middleware.NewRateLimiter(redisClient)
	}
	authMiddleware := middleware.NewAuthMiddleware(tokenService)

	// Create router
	r := router.NewRouter(
		healthController,
		authController,
		walletController,
		categoryController,
		entryController,
		transferController,
		loginRateLimiter,
		authMiddleware,
	)

	return &Injector{
		Config: cfg,
		DB:     db,
		Router: r,
	}
}
