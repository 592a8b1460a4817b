package metrics

import "github.com/prometheus/client_golang/prometheus"

// CheckoutMetrics tracks checkout outcomes by payment method.
type CheckoutMetrics struct {
	orders   *prometheus.CounterVec
	declines *prometheus.CounterVec
}

// NewCheckoutMetrics registers the checkout metrics on the provided registerer.
func NewCheckoutMetrics(reg prometheus.Registerer) *CheckoutMetrics {
	if reg == nil {
		return &CheckoutMetrics{}
	}
	orders := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "checkout_orders_total",
		Help: "Orders placed successfully.",
	}, []string{"payment_method"})
	declines := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "checkout_payment_declines_total",
		Help: "Payment attempts declined by the gateway.",
	}, []string{"payment_method"})
	reg.MustRegister(orders, declines)
	return &CheckoutMetrics{
		orders:   orders,
		declines: declines,
	}
}

// IncOrder increments the completed-order counter for the payment method.
func (c *CheckoutMetrics) IncOrder(method string) {
	if c == nil || c.orders == nil {
		return
	}
	c.orders.WithLabelValues(normalizeLabel(method)).Inc()
}

// IncDecline increments the declined-payment counter for the payment method.
func (c *CheckoutMetrics) IncDecline(method string) {
	if c == nil || c.declines == nil {
		return
	}
	c.declines.WithLabelValues(normalizeLabel(method)).Inc()
}
