package user

type StoreRecentCityRequest struct {
	City string `json:"recent_searched_city" binding:"required"`
}

// IdentityWebhookRequest is the identity provider's account sync payload.
type IdentityWebhookRequest struct {
	Type string `json:"type" binding:"required"`
	Data struct {
		ID       string `json:"id"`
		Username string `json:"username"`
		Email    string `json:"email"`
		Image    string `json:"image"`
	} `json:"data"`
}
