package domain

import "fmt"

// Painting is a single artwork listed for sale. sold_at is set exactly
// while is_sold is true; both flip together through the availability toggle.
type Painting struct {
	ID          int64   `db:"id"`
	Title       string  `db:"title"`
	Description string  `db:"description"`
	Dimensions  string  `db:"dimensions"`
	Price       float64 `db:"price"`
	ImageURL    string  `db:"image_url"`
	IsSold      bool    `db:"is_sold"`
	SoldAt      *string `db:"sold_at"`
	CreatedAt   string  `db:"created_at"`
}

// Order is a buyer's request for one artwork. The painting fields are a
// snapshot taken at order time, not a live join; later edits to the
// painting do not rewrite history.
type Order struct {
	ID               int64   `db:"id"`
	PaintingID       int64   `db:"painting_id"`
	PaintingTitle    string  `db:"painting_title"`
	PaintingPrice    float64 `db:"painting_price"`
	CustomerName     string  `db:"customer_name"`
	CustomerEmail    string  `db:"customer_email"`
	CustomerPhone    string  `db:"customer_phone"`
	CustomerAddress  string  `db:"customer_address"`
	CustomerMessage  string  `db:"customer_message"`
	Status           Status  `db:"status"`
	PaymentMethod    string  `db:"payment_method"`
	PaymentReference string  `db:"payment_reference"`
	CreatedAt        string  `db:"created_at"`
	UpdatedAt        string  `db:"updated_at"`
}

// Reference is the human-facing order id buyers quote on bank transfers.
func (o Order) Reference() string { return OrderReference(o.ID) }

func OrderReference(id int64) string { return fmt.Sprintf("ART%04d", id) }

// PaymentMethodBankTransfer is the default payment method for new orders.
const PaymentMethodBankTransfer = "bank_transfer"
