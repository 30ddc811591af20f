package domain

// Token represents the token's domain model.
type Token struct {
	// Denom is the router-wide identity of the token.
	Denom string `json:"denom"`
	// Precision is the decimal precision of the token.
	Precision int `json:"decimals"`
	// IsUnlisted is true if the token is unlisted.
	IsUnlisted bool `json:"preview"`
}
