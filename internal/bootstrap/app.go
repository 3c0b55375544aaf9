package bootstrap

import (
	"context"
	"fmt"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	"github.com/Mohan3458/Human-Capital-Performance-and-Attrition-Analysis/internal/config"
	"github.com/Mohan3458/Human-Capital-Performance-and-Attrition-Analysis/internal/handler"
	"github.com/Mohan3458/Human-Capital-Performance-and-Attrition-Analysis/internal/inference"
	"github.com/Mohan3458/Human-Capital-Performance-and-Attrition-Analysis/internal/logger"
	"github.com/Mohan3458/Human-Capital-Performance-and-Attrition-Analysis/internal/service"
	"github.com/Mohan3458/Human-Capital-Performance-and-Attrition-Analysis/internal/store"
)

type App struct {
	Echo        *echo.Echo
	Employees   *store.EmployeeStore
	Performance *store.PerformanceStore
	Users       *store.UserStore
	People      *service.PeopleService
	Analytics   *service.AnalyticsService
}

func NewApp() *App {
	return &App{
		Echo: echo.New(),
	}
}

func (a *App) Initialize(ctx context.Context) error {
	// Load environment configuration
	if err := config.LoadEnvConfig(); err != nil {
		return fmt.Errorf("failed to load env config: %w", err)
	}
	cfg := config.DefaultEnvConfig

	// Initialize logging
	logger.Init(cfg.LOG_FILE_PATH)
	logger.Info(ctx, "Environment variables loaded successfully")

	// Open the durable tables
	employees, err := store.NewEmployeeStore(cfg.EmployeePath())
	if err != nil {
		return fmt.Errorf("failed to open employees table: %w", err)
	}
	performance, err := store.NewPerformanceStore(cfg.PerformancePath(), employees)
	if err != nil {
		return fmt.Errorf("failed to open performance table: %w", err)
	}
	users, err := store.NewUserStore(cfg.UsersPath())
	if err != nil {
		return fmt.Errorf("failed to open users table: %w", err)
	}
	a.Employees = employees
	a.Performance = performance
	a.Users = users
	logger.Info(ctx, "Durable tables opened under %s", cfg.DATA_DIR)

	// Attempt-load the classifier; absence only disables predictions.
	classifier := inference.NewAdapter(ctx, cfg.MODEL_PATH)

	// Initialize dependencies
	a.People = service.NewPeopleService(employees, performance)
	a.Analytics = service.NewAnalyticsService(employees, performance)
	authSvc := service.NewAuthService(users, cfg.AUTH_SECRET, cfg.TOKEN_TTL)

	peopleHandler := handler.NewPeopleHandler(a.People)
	analyticsHandler := handler.NewAnalyticsHandler(a.Analytics)
	predictHandler := handler.NewPredictHandler(classifier)
	authHandler := handler.NewAuthHandler(authSvc)

	// Register Middlewares
	a.RegisterMiddlewares()

	// Register Routes
	a.RegisterRoutes(peopleHandler, analyticsHandler, predictHandler, authHandler)

	return nil
}

func (a *App) RegisterMiddlewares() {
	a.Echo.Use(middleware.Logger())
	a.Echo.Use(middleware.Recover())
	a.Echo.Use(middleware.CORS())
}

func (a *App) RegisterRoutes(
	people *handler.PeopleHandler,
	analytics *handler.AnalyticsHandler,
	predict *handler.PredictHandler,
	auth *handler.AuthHandler,
) {
	api := a.Echo.Group("/api")
	api.POST("/employees", people.AddEmployeeHandler)
	api.POST("/performance", people.AddPerformanceHandler)
	api.GET("/analytics", analytics.GlobalHandler)
	api.GET("/analytics/department/:department", analytics.DepartmentHandler)
	api.GET("/analytics/export", analytics.ExportHandler)
	api.POST("/predict-attrition", predict.PredictHandler)
	api.POST("/register", auth.RegisterHandler)
	api.POST("/login", auth.LoginHandler)
}

func (a *App) Run() error {
	return a.Echo.Start(":" + config.DefaultEnvConfig.APP_PORT)
}
