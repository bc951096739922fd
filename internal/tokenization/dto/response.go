package dto

// CardTokenResponse is the backend response for a created card token.
type CardTokenResponse struct {
	ID              string `json:"id"`
	FirstSixDigits  string `json:"first_six_digits"`
	LastFourDigits  string `json:"last_four_digits"`
	ExpirationMonth int    `json:"expiration_month"`
	ExpirationYear  int    `json:"expiration_year"`
	LuhnValidation  bool   `json:"luhn_validation"`
	LiveMode        bool   `json:"live_mode"`
}

// ApplePayTokenResponse is the backend response for a tokenized wallet credential.
type ApplePayTokenResponse struct {
	ID  string `json:"id"`
	Bin string `json:"bin"`
}
