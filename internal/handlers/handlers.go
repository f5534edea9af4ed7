package handlers

import (
	"net/http"

	_ "github.com/lfreitas-dev/pixadmin/docs"
	authhandlers "github.com/lfreitas-dev/pixadmin/internal/handlers/auth"
	chargeshandlers "github.com/lfreitas-dev/pixadmin/internal/handlers/charges"
	payoutshandlers "github.com/lfreitas-dev/pixadmin/internal/handlers/payouts"
	webhookshandlers "github.com/lfreitas-dev/pixadmin/internal/handlers/webhooks"
	"github.com/lfreitas-dev/pixadmin/internal/service"
	"github.com/lfreitas-dev/pixadmin/pkg/auth"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	httpSwagger "github.com/swaggo/http-swagger"
)

type AuthHandler interface {
	Register(w http.ResponseWriter, r *http.Request)
	Login(w http.ResponseWriter, r *http.Request)
}

type ChargeHandler interface {
	CreateCharge(w http.ResponseWriter, r *http.Request)
	GetCharge(w http.ResponseWriter, r *http.Request)
	ListCharges(w http.ResponseWriter, r *http.Request)
}

type WebhookHandler interface {
	ReceiveMercadoPago(w http.ResponseWriter, r *http.Request)
}

type PayoutHandler interface {
	CreatePayout(w http.ResponseWriter, r *http.Request)
	GetPayout(w http.ResponseWriter, r *http.Request)
	ListPayouts(w http.ResponseWriter, r *http.Request)
	ApprovePayout(w http.ResponseWriter, r *http.Request)
}

type Handlers struct {
	AuthHandler    AuthHandler
	ChargeHandler  ChargeHandler
	WebhookHandler WebhookHandler
	PayoutHandler  PayoutHandler

	jwtService auth.JWTServiceInterface
}

func New(s *service.Services, jwtService auth.JWTServiceInterface) *Handlers {
	return &Handlers{
		AuthHandler:    authhandlers.New(s.AuthService),
		ChargeHandler:  chargeshandlers.New(s.ChargeService),
		WebhookHandler: webhookshandlers.New(s.WebhookService),
		PayoutHandler:  payoutshandlers.New(s.PayoutService),
		jwtService:     jwtService,
	}
}

func (h *Handlers) InitRoutes(r chi.Router) chi.Router {
	r.Use(
		middleware.RealIP,
		middleware.Recoverer,
		middleware.Logger,
	)
	r.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL("doc.json"),
	))
	r.Get("/", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("ok"))
	})
	r.Route("/api", func(r chi.Router) {
		r.Route("/auth", func(r chi.Router) {
			r.Post("/register", h.AuthHandler.Register)
			r.Post("/login", h.AuthHandler.Login)
		})

		r.Route("/webhooks", func(r chi.Router) {
			r.Post("/mercadopago", h.WebhookHandler.ReceiveMercadoPago)
		})

		r.Group(func(r chi.Router) {
			r.Use(auth.AuthMiddleware(h.jwtService))
			r.Route("/charges", func(r chi.Router) {
				r.Post("/", h.ChargeHandler.CreateCharge)
				r.Get("/", h.ChargeHandler.ListCharges)
				r.Get("/{id}", h.ChargeHandler.GetCharge)
			})
			r.Route("/payouts", func(r chi.Router) {
				r.Post("/", h.PayoutHandler.CreatePayout)
				r.Get("/", h.PayoutHandler.ListPayouts)
				r.Get("/{id}", h.PayoutHandler.GetPayout)
				r.Post("/{id}/approve", h.PayoutHandler.ApprovePayout)
			})
		})
	})

	return r
}
