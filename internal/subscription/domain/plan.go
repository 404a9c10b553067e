package domain

import (
	"strings"

	"github.com/shopspring/decimal"
)

type Plan string

const (
	PlanPremium   Plan = "Premium"
	PlanUnlimited Plan = "Unlimited"
)

type BillingCycle string

const (
	Monthly BillingCycle = "monthly"
	Yearly  BillingCycle = "yearly"
)

// ParsePlan never fails; anything but "unlimited" is Premium.
func ParsePlan(s string) Plan {
	if strings.EqualFold(s, "unlimited") {
		return PlanUnlimited
	}
	return PlanPremium
}

func ParseBillingCycle(s string) BillingCycle {
	if s == string(Yearly) {
		return Yearly
	}
	return Monthly
}

var prices = map[Plan]map[BillingCycle]decimal.Decimal{
	PlanPremium: {
		Monthly: decimal.RequireFromString("4.99"),
		Yearly:  decimal.RequireFromString("49.99"),
	},
	PlanUnlimited: {
		Monthly: decimal.RequireFromString("14.99"),
		Yearly:  decimal.RequireFromString("159.99"),
	},
}

func Price(p Plan, b BillingCycle) decimal.Decimal {
	return prices[p][b]
}

type Offer struct {
	Plan    Plan            `json:"plan"`
	Billing BillingCycle    `json:"billing"`
	Price   decimal.Decimal `json:"price"`
}

func NewOffer(plan, billing string) Offer {
	p, b := ParsePlan(plan), ParseBillingCycle(billing)
	return Offer{Plan: p, Billing: b, Price: Price(p, b)}
}

// Confirmation is the backend's answer to a subscribe call.
type Confirmation struct {
	SubscriptionType       string  `json:"subscriptionType"`
	SubscriptionExpiration *string `json:"subscriptionExpiration"`
}
