package repo

import (
	"github.com/lfreitas-dev/pixadmin/internal/pg"
	chargerepo "github.com/lfreitas-dev/pixadmin/internal/repo/charge-repo"
	payoutrepo "github.com/lfreitas-dev/pixadmin/internal/repo/payout-repo"
	userrepo "github.com/lfreitas-dev/pixadmin/internal/repo/user-repo"
	webhookrepo "github.com/lfreitas-dev/pixadmin/internal/repo/webhook-repo"
	"github.com/lfreitas-dev/pixadmin/internal/service/authservice"
	"github.com/lfreitas-dev/pixadmin/internal/service/chargeservice"
	"github.com/lfreitas-dev/pixadmin/internal/service/payoutservice"
	"github.com/lfreitas-dev/pixadmin/internal/service/webhookservice"
)

type Repositories struct {
	UserRepo    authservice.Repo
	ChargeRepo  chargeservice.Repo
	WebhookRepo webhookservice.Repo
	PayoutRepo  payoutservice.Repo
}

func New(conn pg.Database, txManager pg.TXManager) *Repositories {
	userRepo := userrepo.New(conn)
	chargeRepo := chargerepo.New(conn, txManager)
	webhookRepo := webhookrepo.New(conn)
	payoutRepo := payoutrepo.New(conn, txManager)

	return &Repositories{
		UserRepo:    userRepo,
		ChargeRepo:  chargeRepo,
		WebhookRepo: webhookRepo,
		PayoutRepo:  payoutRepo,
	}
}
