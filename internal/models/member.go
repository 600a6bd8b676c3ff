package models

type Member struct {
	ID                 FlexString `json:"_id"`
	Name               string     `json:"name"`
	Email              string     `json:"email"`
	Role               string     `json:"role"`
	SubscriptionStatus string     `json:"subscription_status"`
}

type RegisterRequest struct {
	Name  string `json:"name"`
	Email string `json:"email"`
}
