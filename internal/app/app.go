package app

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/alexedwards/scs/goredisstore"
	"github.com/alexedwards/scs/v2"
	"github.com/exaring/otelpgx"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-playground/validator/v10"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/extra/redisotel/v9"
	"github.com/redis/go-redis/v9"
	"github.com/riandyrn/otelchi"
	"github.com/shopspring/decimal"
	"github.com/tundeojo/learnly-api/internal/domain"
	"github.com/tundeojo/learnly-api/internal/mailer"
	"github.com/tundeojo/learnly-api/internal/paystack"
	"github.com/tundeojo/learnly-api/internal/repository"
	appvalidator "github.com/tundeojo/learnly-api/internal/validator"
	"github.com/tundeojo/learnly-api/internal/vcs"
	"go.opentelemetry.io/contrib/bridges/otelslog"
)

var (
	version = vcs.Version()
)

type Application struct {
	config         Config
	logger         *slog.Logger
	db             *pgxpool.Pool
	redis          redis.UniversalClient
	validator      *validator.Validate
	mailer         mailer.Mailer
	sessionManager *scs.SessionManager

	userRepo       domain.UserRepository
	courseRepo     domain.CourseRepository
	paymentRepo    domain.PaymentRepository
	enrollmentRepo domain.EnrollmentRepository

	paymentGateway domain.PaymentGateway
}

type Config struct {
	Port             int
	Env              string
	DB               DBConfig
	Redis            RedisConfig
	SMTP             SMTPConfig
	Paystack         PaystackConfig
	DonationMin      decimal.Decimal
	CheckoutBaseUrl  string
	OtelCollectorUrl string
}

type DBConfig struct {
	DSN          string
	MaxOpenConns int
	MaxIdleTime  time.Duration
}

type RedisConfig struct {
	URL          string
	MaxOpenConns int
	MaxIdleConns int
	MaxIdleTime  time.Duration
}

type SMTPConfig struct {
	Host     string
	Port     int
	Username string
	Password string
	Sender   string
}

type PaystackConfig struct {
	SecretKey string
	BaseURL   string
}

func Run() error {
	var cfg Config
	var donationMin string

	flag.IntVar(&cfg.Port, "port", 3000, "server port")
	flag.StringVar(&cfg.Env, "env", "dev", "Environment (dev|staging|prod)")

	flag.StringVar(&cfg.DB.DSN, "db-dsn", "", "PostgreSQL DSN")
	flag.IntVar(&cfg.DB.MaxOpenConns, "db-max-open-conns", 25, "PostgreSQL max open connections")
	flag.DurationVar(&cfg.DB.MaxIdleTime, "db-max-idle-time", 15*time.Minute, "PostgreSQL max idle time for connections")

	flag.StringVar(&cfg.Redis.URL, "redis-url", "", "Redis URL")
	flag.IntVar(&cfg.Redis.MaxOpenConns, "redis-max-open-conns", 25, "Redis max open connections")
	flag.IntVar(&cfg.Redis.MaxIdleConns, "redis-max-idle-conns", 10, "Redis max idle connections")
	flag.DurationVar(&cfg.Redis.MaxIdleTime, "redis-max-idle-time", 2*time.Minute, "Redis max idle time for connections")

	flag.StringVar(&cfg.SMTP.Host, "smtp-host", "sandbox.smtp.mailtrap.io", "SMTP host")
	flag.IntVar(&cfg.SMTP.Port, "smtp-port", 2525, "SMTP port")
	flag.StringVar(&cfg.SMTP.Username, "smtp-username", "", "SMTP username")
	flag.StringVar(&cfg.SMTP.Password, "smtp-password", "", "SMTP password")
	flag.StringVar(&cfg.SMTP.Sender, "smtp-sender", "Learnly <no-reply@learnly.ng>", "SMTP sender")

	flag.StringVar(&cfg.Paystack.SecretKey, "paystack-secret-key", "", "Paystack secret key")
	flag.StringVar(&cfg.Paystack.BaseURL, "paystack-base-url", paystack.DefaultBaseURL, "Paystack API base URL")

	flag.StringVar(&donationMin, "donation-min", "500", "Minimum accepted donation amount in Naira")
	flag.StringVar(&cfg.CheckoutBaseUrl, "checkout-base-url", "https://learnly.ng/courses", "Base URL of the course checkout pages")

	flag.StringVar(&cfg.OtelCollectorUrl, "otel-collector-url", "", "OpenTelemetry collector URL")

	displayVersion := flag.Bool("version", false, "Display version and exit")

	flag.Parse()

	if *displayVersion {
		fmt.Printf("Version:\t%s\n", version)
		os.Exit(0)
	}

	minDonation, err := decimal.NewFromString(donationMin)
	if err != nil {
		return fmt.Errorf("invalid donation minimum %q: %w", donationMin, err)
	}
	cfg.DonationMin = minDonation

	app, err := NewApplication(cfg)
	if err != nil {
		return err
	}
	defer app.Close()

	shutdownTelemetry, err := app.InitTelemetry()
	if err != nil {
		return err
	}
	defer shutdownTelemetry(context.Background())

	return app.serve()
}

func NewApplication(cfg Config, opts ...func(*Application)) (*Application, error) {
	logger := newLogger(cfg)

	db, err := newDatabasePool(cfg)
	if err != nil {
		return nil, err
	}

	redisClient, err := newRedisClient(cfg)
	if err != nil {
		db.Close()
		return nil, err
	}

	app := &Application{
		config:         cfg,
		logger:         logger,
		db:             db,
		redis:          redisClient,
		validator:      appvalidator.NewValidator(),
		mailer:         mailer.NewSMTPMailer(cfg.SMTP.Host, cfg.SMTP.Port, cfg.SMTP.Username, cfg.SMTP.Password, cfg.SMTP.Sender),
		sessionManager: newSessionManager(redisClient),
		userRepo:       repository.NewPostgresUserRepository(db),
		courseRepo:     repository.NewPostgresCourseRepository(db),
		paymentRepo:    repository.NewPostgresPaymentRepository(db),
		enrollmentRepo: repository.NewPostgresEnrollmentRepository(db),
		paymentGateway: paystack.NewGateway(cfg.Paystack.SecretKey, cfg.Paystack.BaseURL),
	}

	for _, opt := range opts {
		opt(app)
	}

	return app, nil
}

// WithMailer overrides the mailer, used by the integration tests.
func WithMailer(m mailer.Mailer) func(*Application) {
	return func(app *Application) {
		app.mailer = m
	}
}

// WithPaymentGateway overrides the payment gateway, used by the integration tests.
func WithPaymentGateway(g domain.PaymentGateway) func(*Application) {
	return func(app *Application) {
		app.paymentGateway = g
	}
}

func (app *Application) DB() *pgxpool.Pool {
	return app.db
}

func (app *Application) Redis() redis.UniversalClient {
	return app.redis
}

func (app *Application) Close() {
	if app.redis != nil {
		app.redis.Close()
	}
	if app.db != nil {
		app.db.Close()
	}
}

func newLogger(cfg Config) *slog.Logger {
	textHandler := slog.NewTextHandler(os.Stdout, nil)

	if cfg.OtelCollectorUrl == "" {
		return slog.New(textHandler)
	}

	return slog.New(NewMultiHandler(textHandler, otelslog.NewHandler("learnly-api")))
}

func newSessionManager(client *redis.Client) *scs.SessionManager {
	sessionManager := scs.New()

	sessionManager.Store = goredisstore.New(client)
	sessionManager.IdleTimeout = 20 * time.Minute
	sessionManager.Cookie.Name = "session_id"

	return sessionManager
}

func newRedisClient(cfg Config) (*redis.Client, error) {
	rdb := redis.NewClient(&redis.Options{
		Addr:            cfg.Redis.URL,
		MaxIdleConns:    cfg.Redis.MaxIdleConns,
		MaxActiveConns:  cfg.Redis.MaxOpenConns,
		ConnMaxIdleTime: cfg.Redis.MaxIdleTime,
	})

	if cfg.OtelCollectorUrl != "" {
		if err := redisotel.InstrumentTracing(rdb); err != nil {
			return nil, err
		}
	}

	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	err := rdb.Ping(ctx).Err()
	if err != nil {
		return nil, err
	}

	return rdb, nil
}

func newDatabasePool(cfg Config) (*pgxpool.Pool, error) {
	config, err := pgxpool.ParseConfig(cfg.DB.DSN)
	if err != nil {
		return nil, err
	}

	config.MaxConnIdleTime = cfg.DB.MaxIdleTime
	config.MaxConns = int32(cfg.DB.MaxOpenConns)

	if cfg.OtelCollectorUrl != "" {
		config.ConnConfig.Tracer = otelpgx.NewTracer()
	}

	db, err := pgxpool.NewWithConfig(context.Background(), config)
	if err != nil {
		return nil, err
	}

	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	err = db.Ping(ctx)
	if err != nil {
		db.Close()
		return nil, err
	}

	return db, nil
}

func (app *Application) serve() error {
	srv := &http.Server{
		Addr:         fmt.Sprintf("0.0.0.0:%d", app.config.Port),
		Handler:      app.Routes(),
		IdleTimeout:  time.Minute,
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 10 * time.Second,
		ErrorLog:     slog.NewLogLogger(app.logger.Handler(), slog.LevelDebug),
	}

	shutdownError := make(chan error)

	go func() {
		quit := make(chan os.Signal, 1)
		signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
		s := <-quit

		app.logger.Info("shutting down server", "signal", s.String())

		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()

		err := srv.Shutdown(ctx)
		if err != nil {
			shutdownError <- err
		}

		shutdownError <- nil
	}()

	app.logger.Info("starting server", "addr", srv.Addr, "env", app.config.Env)

	err := srv.ListenAndServe()
	if !errors.Is(err, http.ErrServerClosed) {
		return err
	}

	err = <-shutdownError
	if err != nil {
		return err
	}

	app.logger.Info("stopped server", "addr", srv.Addr)

	return nil
}

func (app *Application) Routes() http.Handler {
	r := chi.NewRouter()

	r.NotFound(app.notFoundResponse)

	r.Use(middleware.RequestID)
	r.Use(otelchi.Middleware("learnly-api", otelchi.WithChiRoutes(r)))
	r.Use(app.requestLogger)
	r.Use(app.recoverPanic)
	r.Use(app.sessionManager.LoadAndSave)

	r.Get("/health", app.GetHealth)

	r.Post("/users", app.RegisterUser)
	r.Put("/users/activation", app.ActivateUser)
	r.Post("/sessions", app.Login)
	r.Delete("/sessions", app.Logout)

	r.Get("/courses", app.GetCoursesHandler)
	r.Get("/courses/{courseID}", app.GetCourseHandler)
	r.Get("/courses/{courseID}/modules/{moduleID}/lessons/{lessonID}", app.GetLessonHandler)

	r.With(app.requireAuthentication).Group(func(r chi.Router) {
		r.Get("/users/me", app.GetCurrentUser)
		r.Get("/users/me/enrollments", app.GetEnrollmentsOfUserHandler)
		r.Post("/payments/verify", app.VerifyPaymentHandler)
	})

	r.With(app.requireAuthentication, app.requireAdmin).Route("/admin/enroll-user", func(r chi.Router) {
		r.Get("/", app.GetEnrollableCoursesHandler)
		r.Post("/", app.AdminEnrollUserHandler)
	})

	return r
}
