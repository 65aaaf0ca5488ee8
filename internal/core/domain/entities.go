package domain

import "time"

// Coupon is an offer attached to a camp, handed out to its donors
type Coupon struct {
	Code        string     `json:"code"`
	Title       string     `json:"title,omitempty"`
	Description string     `json:"description,omitempty"`
	Discount    string     `json:"discount,omitempty"`
	ExpiresAt   *time.Time `json:"expiresAt,omitempty"`
}
