package googleauth

import (
	"context"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/oauth2"

	"github.com/dharma-pro/temple-booking/internal/config"
	"github.com/dharma-pro/temple-booking/internal/service"
)

func TestProvider_AuthCodeURL(t *testing.T) {
	p := NewProvider(&config.OAuthConfig{
		GoogleClientID:     "client-id",
		GoogleClientSecret: "secret",
		RedirectURL:        "http://localhost:8080/login/oauth2/code/google",
	})
	require.True(t, p.Enabled())

	u, err := url.Parse(p.AuthCodeURL("state-123"))
	require.NoError(t, err)

	q := u.Query()
	assert.Equal(t, "client-id", q.Get("client_id"))
	assert.Equal(t, "state-123", q.Get("state"))
	assert.Equal(t, "http://localhost:8080/login/oauth2/code/google", q.Get("redirect_uri"))
	assert.Contains(t, q.Get("scope"), "email")

	assert.False(t, NewProvider(&config.OAuthConfig{}).Enabled())
}

func TestProvider_Exchange(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/token", func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, r.ParseForm())
		assert.Equal(t, "auth-code", r.Form.Get("code"))
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"access_token":"at-1","token_type":"Bearer","expires_in":3600}`))
	})
	mux.HandleFunc("/userinfo", func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "Bearer at-1", r.Header.Get("Authorization"))
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"email":"asha@example.com","name":"Asha Rao","picture":"https://img.example.com/a.png"}`))
	})
	srv := httptest.NewServer(mux)
	defer srv.Close()

	p := NewProvider(&config.OAuthConfig{GoogleClientID: "id", GoogleClientSecret: "secret"})
	p.oauth.Endpoint = oauth2.Endpoint{AuthURL: srv.URL + "/auth", TokenURL: srv.URL + "/token"}
	p.userInfoURL = srv.URL + "/userinfo"

	profile, err := p.Exchange(context.Background(), "auth-code")
	require.NoError(t, err)
	assert.Equal(t, service.OAuthProfile{
		Email:   "asha@example.com",
		Name:    "Asha Rao",
		Picture: "https://img.example.com/a.png",
	}, profile)
}
