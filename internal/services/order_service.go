package services

import (
	"errors"
	"fmt"

	"brushworks/internal/domain"
	"brushworks/internal/notify"
	"brushworks/internal/repos"
)

const OrdersTable = "orders"

var (
	ErrArtworkSold   = errors.New("artwork already sold")
	ErrBadTransition = errors.New("illegal status transition")
	ErrUnknownStatus = errors.New("unknown status")
)

// Buyer is the contact/shipping form a customer submits.
type Buyer struct {
	Name    string
	Email   string
	Phone   string
	Address string
	City    string
	State   string
	Pincode string
	Message string
}

// CombinedAddress flattens the shipping fields into the single free-text
// column orders carry: "addr, city, state - pincode".
func (b Buyer) CombinedAddress() string {
	return fmt.Sprintf("%s, %s, %s - %s", b.Address, b.City, b.State, b.Pincode)
}

type OrderService struct {
	Orders    *repos.OrderRepo
	Paintings *repos.PaintingRepo
	Feed      *notify.Broker
}

func NewOrderService(orders *repos.OrderRepo, paintings *repos.PaintingRepo, feed *notify.Broker) *OrderService {
	return &OrderService{Orders: orders, Paintings: paintings, Feed: feed}
}

// Place creates a pending_payment order for an unsold painting. The
// painting's id, title and price are snapshotted onto the order. Sold
// state is re-checked here so two buyers racing on the same piece cannot
// both place an order after one purchase lands.
func (s *OrderService) Place(paintingID int64, buyer Buyer) (domain.Order, error) {
	p, err := s.Paintings.Get(paintingID)
	if err != nil {
		return domain.Order{}, err
	}
	if p.IsSold {
		return domain.Order{}, ErrArtworkSold
	}

	o := domain.Order{
		PaintingID:      p.ID,
		PaintingTitle:   p.Title,
		PaintingPrice:   p.Price,
		CustomerName:    buyer.Name,
		CustomerEmail:   buyer.Email,
		CustomerPhone:   buyer.Phone,
		CustomerAddress: buyer.CombinedAddress(),
		CustomerMessage: buyer.Message,
		Status:          domain.StatusPendingPayment,
		PaymentMethod:   domain.PaymentMethodBankTransfer,
	}
	id, err := s.Orders.Insert(o)
	if err != nil {
		return domain.Order{}, err
	}
	s.Feed.Publish(OrdersTable, notify.OpInsert, id)
	return s.Orders.Get(id)
}

// Transition advances an order to target, refusing anything the
// transition table does not allow. Terminal orders reject every target.
func (s *OrderService) Transition(id int64, target domain.Status) (domain.Order, error) {
	if !target.Valid() {
		return domain.Order{}, ErrUnknownStatus
	}
	o, err := s.Orders.Get(id)
	if err != nil {
		return domain.Order{}, err
	}
	if !o.Status.CanTransition(target) {
		return domain.Order{}, fmt.Errorf("%w: %s -> %s", ErrBadTransition, o.Status, target)
	}
	if err := s.Orders.UpdateStatus(id, target); err != nil {
		return domain.Order{}, err
	}
	s.Feed.Publish(OrdersTable, notify.OpUpdate, id)
	return s.Orders.Get(id)
}
