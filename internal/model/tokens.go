package model

// Keys under which session state is kept in a Storage binding.
const (
	TokensKey       = "tokens"
	AccessTokenKey  = "accessToken"
	RefreshTokenKey = "refreshToken"
	UserKey         = "user"
)

// AuthTokens is the credential pair issued by the backend on login, registration or refresh.
type AuthTokens struct {
	AccessToken  string `json:"accessToken"`
	RefreshToken string `json:"refreshToken"`
	ExpiresIn    int64  `json:"expiresIn"`
}

// HasAccess reports whether an access token is present.
func (t AuthTokens) HasAccess() bool {
	return t.AccessToken != ""
}

// HasRefresh reports whether a refresh token is present.
func (t AuthTokens) HasRefresh() bool {
	return t.RefreshToken != ""
}

// Normalize returns a copy with a non-negative ExpiresIn.
func (t AuthTokens) Normalize() AuthTokens {
	if t.ExpiresIn < 0 {
		t.ExpiresIn = 0
	}
	return t
}
