package service

import (
	"github.com/lfreitas-dev/pixadmin/internal/handlers/auth"
	"github.com/lfreitas-dev/pixadmin/internal/handlers/charges"
	"github.com/lfreitas-dev/pixadmin/internal/handlers/payouts"
	"github.com/lfreitas-dev/pixadmin/internal/handlers/webhooks"
	"github.com/lfreitas-dev/pixadmin/internal/mercadopago"

	pkgauth "github.com/lfreitas-dev/pixadmin/pkg/auth"

	"github.com/lfreitas-dev/pixadmin/internal/repo"
	"github.com/lfreitas-dev/pixadmin/internal/service/authservice"
	"github.com/lfreitas-dev/pixadmin/internal/service/chargeservice"
	"github.com/lfreitas-dev/pixadmin/internal/service/payoutservice"
	"github.com/lfreitas-dev/pixadmin/internal/service/webhookservice"
)

type Services struct {
	AuthService    auth.Service
	ChargeService  charges.Service
	WebhookService webhooks.Service
	PayoutService  payouts.Service
}

func New(repo *repo.Repositories, provider mercadopago.ClientI, jwtService pkgauth.JWTServiceInterface, webhookURL string) *Services {
	authService := authservice.New(repo.UserRepo, &pkgauth.HashService{}, jwtService)
	chargeService := chargeservice.New(repo.ChargeRepo, provider, webhookURL)
	webhookService := webhookservice.New(repo.WebhookRepo)
	payoutService := payoutservice.New(repo.PayoutRepo)

	return &Services{
		AuthService:    authService,
		ChargeService:  chargeService,
		WebhookService: webhookService,
		PayoutService:  payoutService,
	}
}
