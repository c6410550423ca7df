package domain

// User-related domain errors.
var (
	ErrUserNotFound       = &Error{Code: ENOTFOUND, Message: "User not found"}
	ErrInvalidCredentials = &Error{Code: EUNAUTHORIZED, Message: "Invalid email or password"}
)

// User is a storefront account profile.
// Authentication here is a cosmetic gate (see the mock user service);
// nothing in this type carries a security contract.
type User struct {
	ID         string `json:"id"`
	Name       string `json:"name"`
	Email      string `json:"email"`
	Phone      string `json:"phone,omitempty"`
	Address    string `json:"address,omitempty"`
	City       string `json:"city,omitempty"`
	PostalCode string `json:"postal_code,omitempty"`
	IsAdmin    bool   `json:"is_admin,omitempty"`
}

// ProfilePatch is a partial profile update; empty fields are left unchanged.
type ProfilePatch struct {
	Name       string
	Phone      string
	Address    string
	City       string
	PostalCode string
}

// ShippingPolicy is the process-wide shipping configuration,
// mutated only through admin settings.
type ShippingPolicy struct {
	BaseCostCents      int64 `json:"base_cost_cents"`
	FreeThresholdCents int64 `json:"free_threshold_cents"`
	FreeItemCount      int   `json:"free_item_count"`
}
