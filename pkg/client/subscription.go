package client

import "context"

// SubscriptionService provides subscription operations
type SubscriptionService struct {
	client *Client
}

// ChangeTierRequest represents a subscription tier change request
type ChangeTierRequest struct {
	Tier string `json:"tier"`
}

type subscriptionResponse struct {
	Subscription *Subscription `json:"subscription"`
}

// Get returns the account's subscription
func (s *SubscriptionService) Get(ctx context.Context) (*Subscription, error) {
	var resp subscriptionResponse
	if err := s.client.doRequest(ctx, "GET", "/api/v1/subscription", nil, &resp); err != nil {
		return nil, err
	}
	return resp.Subscription, nil
}

// ChangeTier moves the subscription to a different tier
func (s *SubscriptionService) ChangeTier(ctx context.Context, tier string) (*Subscription, error) {
	var resp subscriptionResponse
	if err := s.client.doRequest(ctx, "PUT", "/api/v1/subscription/tier", ChangeTierRequest{Tier: tier}, &resp); err != nil {
		return nil, err
	}
	return resp.Subscription, nil
}
