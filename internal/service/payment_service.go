package service

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/streamvault/streamvault/internal/domain"
)

const stripeAPIURL = "https://api.stripe.com/v1/payment_intents"

// Amounts in USD cents per subscription tier.
var planAmounts = map[domain.Plan]int{
	domain.PlanBasic:    899,
	domain.PlanStandard: 1399,
	domain.PlanPremium:  1799,
}

type PaymentIntent struct {
	Message      string `json:"message,omitempty"`
	ClientSecret string `json:"client_secret"`
}

// PaymentService creates Stripe payment intents. Without a secret key it
// simulates the subscription instead of charging anything.
type PaymentService struct {
	stripeKey string
	http      *http.Client
}

func NewPaymentService(stripeKey string) *PaymentService {
	return &PaymentService{
		stripeKey: stripeKey,
		http:      &http.Client{Timeout: 15 * time.Second},
	}
}

func (s *PaymentService) CreateIntent(ctx context.Context, userID uuid.UUID, plan domain.Plan) (*PaymentIntent, error) {
	if s.stripeKey == "" {
		return &PaymentIntent{
			Message:      "Subscription simulated successfully",
			ClientSecret: "mock_client_secret",
		}, nil
	}

	amount, ok := planAmounts[plan]
	if !ok {
		amount = planAmounts[domain.PlanBasic]
	}

	form := url.Values{
		"amount":           {strconv.Itoa(amount)},
		"currency":         {"usd"},
		"metadata[userId]": {userID.String()},
		"metadata[plan]":   {string(plan)},
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, stripeAPIURL, strings.NewReader(form.Encode()))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Authorization", "Bearer "+s.stripeKey)
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := s.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("stripe request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("stripe request: unexpected status %d", resp.StatusCode)
	}

	var body struct {
		ClientSecret string `json:"client_secret"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return nil, fmt.Errorf("stripe response: %w", err)
	}

	return &PaymentIntent{ClientSecret: body.ClientSecret}, nil
}
