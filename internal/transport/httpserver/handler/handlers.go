package handler

import (
	"wedgram-api/internal/config"
	accountdomain "wedgram-api/internal/domain/account"
	admindomain "wedgram-api/internal/domain/admin"
	giftdomain "wedgram-api/internal/domain/gift"
	guestdomain "wedgram-api/internal/domain/guest"
	notificationdomain "wedgram-api/internal/domain/notification"
	rsvpdomain "wedgram-api/internal/domain/rsvp"
	weddingdomain "wedgram-api/internal/domain/wedding"
	"wedgram-api/pkg/logger"
)

type Handlers struct {
	Accounts      *accountdomain.Service
	Weddings      *weddingdomain.Service
	Guests        *guestdomain.Service
	RSVP          *rsvpdomain.Service
	Gifts         *giftdomain.Service
	Notifications *notificationdomain.Service
	Admin         *admindomain.Service

	jwtCfg config.JWTConfig
	log    logger.Logger
}

func New(
	accounts *accountdomain.Service,
	weddings *weddingdomain.Service,
	guests *guestdomain.Service,
	rsvpSvc *rsvpdomain.Service,
	gifts *giftdomain.Service,
	notifications *notificationdomain.Service,
	admin *admindomain.Service,
	jwtCfg config.JWTConfig,
	log logger.Logger,
) *Handlers {
	return &Handlers{
		Accounts:      accounts,
		Weddings:      weddings,
		Guests:        guests,
		RSVP:          rsvpSvc,
		Gifts:         gifts,
		Notifications: notifications,
		Admin:         admin,
		jwtCfg:        jwtCfg,
		log:           log,
	}
}
