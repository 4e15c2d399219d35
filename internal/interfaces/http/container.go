package http

import (
	"context"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	orderUsecases "anishop/internal/application/order/usecases"
	settingUsecases "anishop/internal/application/setting/usecases"
	ticketUsecases "anishop/internal/application/ticket/usecases"
	userUsecases "anishop/internal/application/user/usecases"
	voucherUsecases "anishop/internal/application/voucher/usecases"
	"anishop/internal/infrastructure/auth"
	"anishop/internal/infrastructure/config"
	"anishop/internal/infrastructure/email"
	"anishop/internal/infrastructure/ratelimit"
	"anishop/internal/infrastructure/repository"
	"anishop/internal/infrastructure/scheduler"
	"anishop/internal/infrastructure/services"
	adminHandlers "anishop/internal/interfaces/http/handlers/admin"
	authHandlers "anishop/internal/interfaces/http/handlers/auth"
	botHandlers "anishop/internal/interfaces/http/handlers/bot"
	orderHandlers "anishop/internal/interfaces/http/handlers/order"
	settingHandlers "anishop/internal/interfaces/http/handlers/setting"
	ticketHandlers "anishop/internal/interfaces/http/handlers/ticket"
	voucherHandlers "anishop/internal/interfaces/http/handlers/voucher"
	"anishop/internal/interfaces/http/middleware"
	"anishop/internal/shared/logger"
	"anishop/internal/shared/services/markdown"
)

// Container wires the storefront server: repositories, use cases, handlers,
// middleware and the background cleanup job. It owns the redis client and
// scheduler lifecycle and tears both down in Shutdown.
type Container struct {
	engine *gin.Engine
	db     *gorm.DB
	cfg    *config.Config
	log    logger.Interface
	redis  *redis.Client

	// Repositories
	orderRepo   *repository.OrderRepository
	voucherRepo *repository.VoucherRepository
	ticketRepo  *repository.TicketRepository
	settingRepo *repository.SettingRepository
	userRepo    *repository.UserRepository

	// Infrastructure services
	jwtSvc      *auth.JWTService
	hasher      *auth.BcryptPasswordHasher
	codes       *services.OrderCodeGenerator
	mailer      *email.SettingsSMTPService
	botNotifier *services.BotWebhookNotifier
	markdownSvc markdown.MarkdownService
	limiter     ratelimit.RateLimiter

	// Middleware
	authMiddleware *middleware.AuthMiddleware
	maintenance    *middleware.Maintenance

	// Use cases
	placeOrderUC   *orderUsecases.PlaceOrderUseCase
	trackOrderUC   *orderUsecases.TrackOrderUseCase
	listOrdersUC   *orderUsecases.ListOrdersUseCase
	getOrderUC     *orderUsecases.GetOrderUseCase
	updateOrderUC  *orderUsecases.UpdateOrderUseCase
	deleteOrderUC  *orderUsecases.DeleteOrderUseCase
	listMyOrdersUC *orderUsecases.ListMyOrdersUseCase
	cleanupUC      *orderUsecases.CleanupCancelledOrdersUseCase
	statsUC        *orderUsecases.GetOrderStatsUseCase

	createVoucherUC *voucherUsecases.CreateVoucherUseCase
	toggleVoucherUC *voucherUsecases.ToggleVoucherUseCase
	deleteVoucherUC *voucherUsecases.DeleteVoucherUseCase
	listVouchersUC  *voucherUsecases.ListVouchersUseCase

	createTicketUC  *ticketUsecases.CreateTicketUseCase
	resolveTicketUC *ticketUsecases.ResolveTicketUseCase
	listTicketsUC   *ticketUsecases.ListTicketsUseCase

	getPublicSettingsUC *settingUsecases.GetPublicSettingsUseCase
	getAllSettingsUC    *settingUsecases.GetAllSettingsUseCase
	updateSettingsUC    *settingUsecases.UpdateSettingsUseCase

	registerUC   *userUsecases.RegisterUseCase
	loginUC      *userUsecases.LoginUseCase
	listUsersUC  *userUsecases.ListUsersUseCase
	toggleRoleUC *userUsecases.ToggleRoleUseCase
	banUserUC    *userUsecases.BanUserUseCase
	unbanUserUC  *userUsecases.UnbanUserUseCase

	// Handlers
	authHandler         *authHandlers.Handler
	orderHandler        *orderHandlers.Handler
	voucherHandler      *voucherHandlers.Handler
	settingHandler      *settingHandlers.Handler
	ticketHandler       *ticketHandlers.Handler
	botHandler          *botHandlers.Handler
	adminOrderHandler   *adminHandlers.OrderHandler
	adminVoucherHandler *adminHandlers.VoucherHandler
	adminTicketHandler  *adminHandlers.TicketHandler
	adminSettingHandler *adminHandlers.SettingHandler
	adminUserHandler    *adminHandlers.UserHandler

	schedulerManager *scheduler.SchedulerManager
}

func NewContainer(db *gorm.DB, cfg *config.Config, log logger.Interface) (*Container, error) {
	c := &Container{
		engine: gin.New(),
		db:     db,
		cfg:    cfg,
		log:    log,
	}

	if err := c.initInfrastructure(); err != nil {
		return nil, err
	}
	c.initUseCases()
	c.initHandlers()
	c.setupRoutes()

	if err := c.initScheduler(); err != nil {
		return nil, err
	}

	return c, nil
}

func (c *Container) initInfrastructure() error {
	cfg := c.cfg

	c.redis = redis.NewClient(&redis.Options{
		Addr:     cfg.Redis.GetAddr(),
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := c.redis.Ping(ctx).Err(); err != nil {
		return err
	}
	c.log.Infow("redis connection established")

	c.orderRepo = repository.NewOrderRepository(c.db)
	c.voucherRepo = repository.NewVoucherRepository(c.db)
	c.ticketRepo = repository.NewTicketRepository(c.db)
	c.settingRepo = repository.NewSettingRepository(c.db)
	c.userRepo = repository.NewUserRepository(c.db)

	c.jwtSvc = auth.NewJWTService(cfg.Auth.JWT.Secret, cfg.Auth.JWT.AccessExpMinutes)
	c.hasher = auth.NewBcryptPasswordHasher(cfg.Auth.Password.BcryptCost)
	c.codes = services.NewOrderCodeGenerator(c.orderRepo)
	c.mailer = email.NewSettingsSMTPService(cfg.Email, c.settingRepo, c.log)
	c.botNotifier = services.NewBotWebhookNotifier(cfg.BotWebhook.URL, cfg.API.Key)
	c.markdownSvc = markdown.NewMarkdownService()
	c.limiter = ratelimit.NewRedisRateLimiter(c.redis)

	c.authMiddleware = middleware.NewAuthMiddleware(c.jwtSvc, c.log)
	c.maintenance = middleware.NewMaintenance(c.settingRepo, c.log)

	return nil
}

func (c *Container) initUseCases() {
	log := c.log

	c.placeOrderUC = orderUsecases.NewPlaceOrderUseCase(c.orderRepo, c.voucherRepo, c.settingRepo, c.codes, c.mailer, log)
	c.trackOrderUC = orderUsecases.NewTrackOrderUseCase(c.orderRepo, c.voucherRepo, c.settingRepo, log)
	c.listOrdersUC = orderUsecases.NewListOrdersUseCase(c.orderRepo, log)
	c.getOrderUC = orderUsecases.NewGetOrderUseCase(c.orderRepo, log)
	c.updateOrderUC = orderUsecases.NewUpdateOrderUseCase(c.orderRepo, c.botNotifier, log)
	c.deleteOrderUC = orderUsecases.NewDeleteOrderUseCase(c.orderRepo, log)
	c.listMyOrdersUC = orderUsecases.NewListMyOrdersUseCase(c.orderRepo, log)
	c.cleanupUC = orderUsecases.NewCleanupCancelledOrdersUseCase(c.orderRepo, log)
	c.statsUC = orderUsecases.NewGetOrderStatsUseCase(c.orderRepo, log)

	c.createVoucherUC = voucherUsecases.NewCreateVoucherUseCase(c.voucherRepo, log)
	c.toggleVoucherUC = voucherUsecases.NewToggleVoucherUseCase(c.voucherRepo, log)
	c.deleteVoucherUC = voucherUsecases.NewDeleteVoucherUseCase(c.voucherRepo, log)
	c.listVouchersUC = voucherUsecases.NewListVouchersUseCase(c.voucherRepo, log)

	c.createTicketUC = ticketUsecases.NewCreateTicketUseCase(c.ticketRepo, log)
	c.resolveTicketUC = ticketUsecases.NewResolveTicketUseCase(c.ticketRepo, log)
	c.listTicketsUC = ticketUsecases.NewListTicketsUseCase(c.ticketRepo, log)

	c.getPublicSettingsUC = settingUsecases.NewGetPublicSettingsUseCase(c.settingRepo, c.markdownSvc, log)
	c.getAllSettingsUC = settingUsecases.NewGetAllSettingsUseCase(c.settingRepo, log)
	c.updateSettingsUC = settingUsecases.NewUpdateSettingsUseCase(c.settingRepo, log)

	c.registerUC = userUsecases.NewRegisterUseCase(c.userRepo, c.hasher, c.jwtSvc, log)
	c.loginUC = userUsecases.NewLoginUseCase(c.userRepo, c.hasher, c.jwtSvc, log)
	c.listUsersUC = userUsecases.NewListUsersUseCase(c.userRepo, log)
	c.toggleRoleUC = userUsecases.NewToggleRoleUseCase(c.userRepo, log)
	c.banUserUC = userUsecases.NewBanUserUseCase(c.userRepo, log)
	c.unbanUserUC = userUsecases.NewUnbanUserUseCase(c.userRepo, log)
}

func (c *Container) initHandlers() {
	log := c.log

	c.authHandler = authHandlers.NewHandler(c.registerUC, c.loginUC, log)
	c.orderHandler = orderHandlers.NewHandler(c.placeOrderUC, c.trackOrderUC, c.listMyOrdersUC, log)
	c.voucherHandler = voucherHandlers.NewHandler(c.listVouchersUC, log)
	c.settingHandler = settingHandlers.NewHandler(c.getPublicSettingsUC, log)
	c.ticketHandler = ticketHandlers.NewHandler(c.createTicketUC, log)
	c.botHandler = botHandlers.NewHandler(c.placeOrderUC, c.getOrderUC, c.cleanupUC, log)

	c.adminOrderHandler = adminHandlers.NewOrderHandler(c.listOrdersUC, c.getOrderUC, c.updateOrderUC, c.deleteOrderUC, c.statsUC, log)
	c.adminVoucherHandler = adminHandlers.NewVoucherHandler(c.createVoucherUC, c.toggleVoucherUC, c.deleteVoucherUC, c.listVouchersUC, log)
	c.adminTicketHandler = adminHandlers.NewTicketHandler(c.listTicketsUC, c.resolveTicketUC, log)
	c.adminSettingHandler = adminHandlers.NewSettingHandler(c.getAllSettingsUC, c.updateSettingsUC, log)
	c.adminUserHandler = adminHandlers.NewUserHandler(c.listUsersUC, c.toggleRoleUC, c.banUserUC, c.unbanUserUC, log)
}

// cleanupJob adapts the cleanup use case to the scheduler's BatchJob.
type cleanupJob struct {
	uc *orderUsecases.CleanupCancelledOrdersUseCase
}

func (j cleanupJob) Execute(ctx context.Context) (int, error) {
	result, err := j.uc.Execute(ctx)
	if err != nil {
		return 0, err
	}
	return int(result.Removed), nil
}

func (c *Container) initScheduler() error {
	manager, err := scheduler.NewSchedulerManager(c.log)
	if err != nil {
		return err
	}
	if err := manager.RegisterCleanupJob(cleanupJob{uc: c.cleanupUC}); err != nil {
		return err
	}
	manager.Start()

	c.schedulerManager = manager
	return nil
}

// Engine returns the configured gin engine for the HTTP server.
func (c *Container) Engine() *gin.Engine {
	return c.engine
}

// Shutdown stops background jobs and closes the redis client.
func (c *Container) Shutdown() {
	if c.schedulerManager != nil {
		if err := c.schedulerManager.Stop(); err != nil {
			c.log.Warnw("failed to stop scheduler", "error", err)
		}
	}
	if c.redis != nil {
		if err := c.redis.Close(); err != nil {
			c.log.Warnw("failed to close redis client", "error", err)
		}
	}
}
