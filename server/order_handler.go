package server

import (
	"fmt"
	"net/http"
	"strings"
	"time"

	"kc414/logger"
	"kc414/model"

	"github.com/shopspring/decimal"
)

// CreateOrderHandler accepts a checkout submission. Orders are not persisted:
// the handler recomputes the total server-side, mails the operator and the
// buyer when mail is configured, logs the order, and returns a synthetic id.
// Unlike bookings, a failed send does not fail the request — there is no
// stored record to report on.
func (h *APIHandler) CreateOrderHandler(w http.ResponseWriter, r *http.Request) {
	var req orderRequest
	if !h.decodeAndValidate(w, r, &req, "Missing required fields") {
		return
	}

	if len(req.Items) == 0 {
		writeMessage(w, http.StatusBadRequest, "Empty order")
		return
	}

	// The client-supplied total is never trusted; sum the item prices.
	total := orderTotal(req.Items)
	itemSummary := lineItemSummary(req.Items)

	timestamp := time.Now().UTC().Format(time.RFC3339)
	order := model.Order{
		ID:      fmt.Sprintf("order-%d", time.Now().UnixMilli()),
		Name:    req.Name,
		Email:   req.Email,
		Phone:   orDefault(req.Phone, "Not provided"),
		Address: req.Address,
		Notes:   orDefault(req.Notes, "None"),
		Items:   req.Items,
		Total:   total.StringFixed(2),
		Date:    timestamp,
	}

	if h.mailer.Enabled() {
		// Mail failure is logged and swallowed; order acceptance stands.
		if err := h.notifyOrder(&order, itemSummary); err != nil {
			logger.Error("order notification failed",
				logger.String("orderId", order.ID),
				logger.ErrorField(err))
		}
	} else {
		logger.Info("email credentials not configured, skipping order notifications",
			logger.String("orderId", order.ID))
	}

	logger.Info("order received",
		logger.String("orderId", order.ID),
		logger.String("email", order.Email),
		logger.Int("itemCount", len(order.Items)),
		logger.String("total", order.Total))

	writeJSON(w, http.StatusCreated, map[string]string{
		"message":   "Order received successfully",
		"orderId":   order.ID,
		"timestamp": timestamp,
	})
}

// orderTotal sums the items' price fields. A price that does not parse
// contributes nothing to the total.
func orderTotal(items []model.CartItem) decimal.Decimal {
	total := decimal.Zero
	for _, item := range items {
		price, err := decimal.NewFromString(strings.TrimSpace(item.Price))
		if err != nil {
			logger.Warn("unparseable item price, counting as zero",
				logger.String("product", item.Name),
				logger.String("price", item.Price))
			continue
		}
		total = total.Add(price)
	}
	return total
}

// lineItemSummary renders the human-readable item list used in the
// notification bodies.
func lineItemSummary(items []model.CartItem) string {
	lines := make([]string, 0, len(items))
	for _, item := range items {
		price, err := decimal.NewFromString(strings.TrimSpace(item.Price))
		if err != nil {
			price = decimal.Zero
		}
		lines = append(lines, fmt.Sprintf("- %s (Size: %s) - $%s",
			item.Name, orDefault(item.SelectedSize, "N/A"), price.StringFixed(2)))
	}
	return strings.Join(lines, "\n")
}

func (h *APIHandler) notifyOrder(order *model.Order, itemSummary string) error {
	operatorBody := fmt.Sprintf(`New order received:

Customer Information:
Name: %s
Email: %s
Phone: %s
Shipping Address: %s
Additional Notes: %s

Order Details:
%s

Total Order Value: $%s
`, order.Name, order.Email, order.Phone, order.Address, order.Notes, itemSummary, order.Total)

	operatorTo := h.cfg.RecipientEmail
	if operatorTo == "" {
		operatorTo = order.Email
	}
	if err := h.mailer.Send(operatorTo, "New Merchandise Order", operatorBody); err != nil {
		return err
	}

	confirmationBody := fmt.Sprintf(`Thank you for your order with KC414!

Order Details:
%s

Total Amount: $%s

We will process your order and send you shipping information soon.

Best regards,
KC414 Team
`, itemSummary, order.Total)

	return h.mailer.Send(order.Email, "Order Confirmation - KC414 Merchandise", confirmationBody)
}

func orDefault(s, fallback string) string {
	if s == "" {
		return fallback
	}
	return s
}
