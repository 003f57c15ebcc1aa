package integration_test

import (
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"
	"github.com/tundeojo/learnly-api/internal/app"
	"github.com/tundeojo/learnly-api/internal/mailer"
	"github.com/tundeojo/learnly-api/internal/paystack"
)

type TestApp struct {
	App         *app.Application
	DB          *pgxpool.Pool
	RedisClient redis.UniversalClient
	Mailer      *mailer.MockMailer
	Gateway     *paystack.MockGateway
}

func newTestApp(cfg app.Config) (*TestApp, error) {
	mockMailer := mailer.NewMockMailer()
	mockGateway := paystack.NewMockGateway()

	application, err := app.NewApplication(
		cfg,
		app.WithMailer(mockMailer),
		app.WithPaymentGateway(mockGateway),
	)
	if err != nil {
		return nil, err
	}

	return &TestApp{
		App:         application,
		DB:          application.DB(),
		RedisClient: application.Redis(),
		Mailer:      mockMailer,
		Gateway:     mockGateway,
	}, nil
}
