package handlers

import (
	"brushworks/internal/config"
	"brushworks/internal/notify"
	"brushworks/internal/repos"
	"brushworks/internal/services"
	"brushworks/internal/storage"

	"github.com/jmoiron/sqlx"
)

type Deps struct {
	GalleryHandler      *GalleryHandler
	OrderHandler        *OrderHandler
	AvailabilityHandler *AvailabilityHandler
	EventsHandler       *EventsHandler
	AdminHandler        *AdminHandler
}

func NewDeps(db *sqlx.DB, cfg config.Config, media *storage.MediaStore, feed *notify.Broker) *Deps {
	paintingRepo := repos.NewPaintingRepo(db)
	orderRepo := repos.NewOrderRepo(db)

	gallerySvc := services.NewGalleryService(paintingRepo)
	paintingSvc := services.NewPaintingService(paintingRepo, media, feed)
	orderSvc := services.NewOrderService(orderRepo, paintingRepo, feed)

	return &Deps{
		GalleryHandler:      &GalleryHandler{Gallery: gallerySvc},
		OrderHandler:        &OrderHandler{Order: orderSvc, Gallery: gallerySvc, Pay: cfg.Payment},
		AvailabilityHandler: &AvailabilityHandler{Gallery: gallerySvc},
		EventsHandler:       &EventsHandler{Feed: feed},
		AdminHandler:        &AdminHandler{Paintings: paintingSvc, Gallery: gallerySvc, Orders: orderSvc, OrderRepo: orderRepo},
	}
}
