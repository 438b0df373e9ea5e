// Package delivery decides the per-recipient outcome of a campaign send.
//
// The dispatcher calls a Policy once per matching customer. A Policy returns
// SENT or FAILED; a returned error is treated by the dispatcher as FAILED for
// that recipient only.
package delivery

import (
	"context"
	"math/rand"
	"time"

	"github.com/ArowuTest/engage-crm/internal/models"
	"github.com/ArowuTest/engage-crm/pkg/messaging"
)

// DefaultSuccessRate is the probability that a simulated delivery succeeds
const DefaultSuccessRate = 0.9

// Policy decides the delivery outcome for one recipient
type Policy interface {
	AttemptDelivery(ctx context.Context, customer *models.Customer, message string) (models.DeliveryStatus, error)
}

// PolicyFunc adapts a function to the Policy interface
type PolicyFunc func(ctx context.Context, customer *models.Customer, message string) (models.DeliveryStatus, error)

// AttemptDelivery calls f
func (f PolicyFunc) AttemptDelivery(ctx context.Context, customer *models.Customer, message string) (models.DeliveryStatus, error) {
	return f(ctx, customer, message)
}

// RandomPolicy simulates delivery with an independent Bernoulli trial per call
type RandomPolicy struct {
	successRate float64
	draw        func() float64
}

// NewRandomPolicy creates a RandomPolicy. Rates outside [0,1] fall back to DefaultSuccessRate.
func NewRandomPolicy(successRate float64) *RandomPolicy {
	if successRate < 0 || successRate > 1 {
		successRate = DefaultSuccessRate
	}
	return &RandomPolicy{successRate: successRate, draw: rand.Float64}
}

// WithSource replaces the random source, for deterministic tests
func (p *RandomPolicy) WithSource(src func() float64) *RandomPolicy {
	p.draw = src
	return p
}

// AttemptDelivery returns SENT with probability successRate
func (p *RandomPolicy) AttemptDelivery(ctx context.Context, customer *models.Customer, message string) (models.DeliveryStatus, error) {
	if p.draw() < p.successRate {
		return models.DeliverySent, nil
	}
	return models.DeliveryFailed, nil
}

// GatewayPolicy delivers through a real messaging gateway
type GatewayPolicy struct {
	gateway messaging.Gateway
	timeout time.Duration
}

// NewGatewayPolicy creates a GatewayPolicy with a per-recipient timeout
func NewGatewayPolicy(gateway messaging.Gateway, timeout time.Duration) *GatewayPolicy {
	return &GatewayPolicy{gateway: gateway, timeout: timeout}
}

// AttemptDelivery sends an SMS to the customer's phone, or an email when no phone is on file
func (p *GatewayPolicy) AttemptDelivery(ctx context.Context, customer *models.Customer, message string) (models.DeliveryStatus, error) {
	if p.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, p.timeout)
		defer cancel()
	}

	msg := messaging.Message{Channel: messaging.ChannelSMS, To: customer.Phone, Body: message}
	if customer.Phone == "" {
		msg.Channel = messaging.ChannelEmail
		msg.To = customer.Email
	}

	if _, err := p.gateway.Send(ctx, msg); err != nil {
		return models.DeliveryFailed, err
	}
	return models.DeliverySent, nil
}
