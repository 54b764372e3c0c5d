package order

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"camper-renderer/internal/pricing"

	"github.com/gofiber/fiber/v3/client"
)

// RelayConfig points at a form-to-email endpoint.
type RelayConfig struct {
	URL         string
	CompanyName string
	CC          string
	OrderPrefix string
	Timeout     time.Duration
}

// Payload is the JSON document posted to the relay. Underscore fields are
// relay directives.
type Payload struct {
	CustomerName    string `json:"customer_name"`
	CustomerEmail   string `json:"customer_email"`
	CustomerPhone   string `json:"customer_phone"`
	DeliveryAddress string `json:"delivery_address"`
	SpecialRequests string `json:"special_requests"`

	OrderDetails   string `json:"order_details"`
	OrderTotal     string `json:"order_total"`
	OrderCount     int    `json:"order_count"`
	OrderTimestamp string `json:"order_timestamp"`

	ReplyTo string `json:"_replyto"`
	Subject string `json:"_subject"`
	CC      string `json:"_cc,omitempty"`

	CompanyName string `json:"company_name"`
	OrderID     string `json:"order_id"`
}

// Receipt is returned after the relay accepted an order.
type Receipt struct {
	OrderID string `json:"orderId"`
	Total   int    `json:"total"`
	Count   int    `json:"count"`
}

// Relay submits orders over HTTP.
type Relay struct {
	cfg    RelayConfig
	client *client.Client
	now    func() time.Time
}

func NewRelay(cfg RelayConfig) *Relay {
	cc := client.New()
	if cfg.Timeout > 0 {
		cc.SetTimeout(cfg.Timeout)
	}
	return &Relay{cfg: cfg, client: cc, now: time.Now}
}

// Build assembles the payload for an order without sending it.
func (r *Relay) Build(cust Customer, items []Item) Payload {
	now := r.now()
	total := pricing.FormatUSD(Total(items))
	return Payload{
		CustomerName:    cust.Name,
		CustomerEmail:   cust.Email,
		CustomerPhone:   cust.Phone,
		DeliveryAddress: cust.Address,
		SpecialRequests: cust.SpecialRequests,

		OrderDetails:   Details(items),
		OrderTotal:     total,
		OrderCount:     len(items),
		OrderTimestamp: now.Format("1/2/2006, 3:04:05 PM"),

		ReplyTo: cust.Email,
		Subject: fmt.Sprintf("New %s Order - %s - %s", r.cfg.CompanyName, cust.Name, total),
		CC:      r.cfg.CC,

		CompanyName: r.cfg.CompanyName,
		OrderID:     r.cfg.OrderPrefix + "-" + strconv.FormatInt(now.UnixMilli(), 10),
	}
}

// Submit validates the order and posts it to the relay. A non-2xx reply is
// an error; nothing is retried.
func (r *Relay) Submit(ctx context.Context, cust Customer, items []Item) (Receipt, error) {
	if err := cust.Validate(); err != nil {
		return Receipt{}, err
	}
	if len(items) == 0 {
		return Receipt{}, ErrEmptyCart
	}
	if r.cfg.URL == "" {
		return Receipt{}, ErrRelayNotConfigured
	}

	p := r.Build(cust, items)
	resp, err := r.client.R().
		SetContext(ctx).
		SetHeader("Accept", "application/json").
		SetJSON(p).
		Post(r.cfg.URL)
	if err != nil {
		return Receipt{}, fmt.Errorf("order: post %s: %w", p.OrderID, err)
	}
	defer resp.Close()

	if code := resp.StatusCode(); code < 200 || code > 299 {
		return Receipt{}, fmt.Errorf("order: relay rejected %s: status %d", p.OrderID, code)
	}
	return Receipt{OrderID: p.OrderID, Total: Total(items), Count: len(items)}, nil
}
