package mastodon

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"github.com/bnema/trastodon/internal/domain"
	"github.com/bnema/trastodon/internal/ports"
	"github.com/hashicorp/go-cleanhttp"
	gomastodon "github.com/mattn/go-mastodon"
	"golang.org/x/oauth2"
)

// OutOfBandRedirectURI makes the server display the authorization code
// instead of redirecting, so the operator can paste it back.
const OutOfBandRedirectURI = "urn:ietf:wg:oauth:2.0:oob"

// Network talks to any Mastodon-compatible server.
type Network struct {
	httpClient *http.Client
}

var _ ports.SocialNetwork = (*Network)(nil)

func NewNetwork(httpClient *http.Client) *Network {
	if httpClient == nil {
		httpClient = cleanhttp.DefaultPooledClient()
	}
	return &Network{httpClient: httpClient}
}

func (n *Network) RegisterApp(ctx context.Context, server string, app ports.AppRegistration) (ports.AppCredentials, error) {
	if strings.TrimSpace(app.Name) == "" {
		return ports.AppCredentials{}, errors.New("app name is required")
	}

	base, err := serverURL(server)
	if err != nil {
		return ports.AppCredentials{}, err
	}

	registered, err := gomastodon.RegisterApp(ctx, &gomastodon.AppConfig{
		Client:       *n.httpClient,
		Server:       base,
		ClientName:   app.Name,
		RedirectURIs: OutOfBandRedirectURI,
		Scopes:       strings.Join(app.Scopes, " "),
		Website:      app.Website,
	})
	if err != nil {
		return ports.AppCredentials{}, fmt.Errorf("register app: %w", err)
	}
	if registered.ClientID == "" || registered.ClientSecret == "" {
		return ports.AppCredentials{}, errors.New("app registration response missing client credentials")
	}

	return ports.AppCredentials{ClientID: registered.ClientID, ClientSecret: registered.ClientSecret}, nil
}

func (n *Network) AuthorizationURL(server string, creds ports.AppCredentials, scopes []string) (string, error) {
	base, err := serverURL(server)
	if err != nil {
		return "", err
	}
	if creds.ClientID == "" {
		return "", errors.New("client id is required")
	}

	cfg := &oauth2.Config{
		ClientID: creds.ClientID,
		Endpoint: oauth2.Endpoint{
			AuthURL:   base + "/oauth/authorize",
			TokenURL:  base + "/oauth/token",
			AuthStyle: oauth2.AuthStyleInParams,
		},
		RedirectURL: OutOfBandRedirectURI,
		Scopes:      scopes,
	}

	return cfg.AuthCodeURL(""), nil
}

func (n *Network) ExchangeCode(ctx context.Context, server string, creds ports.AppCredentials, code string) (string, error) {
	code = strings.TrimSpace(code)
	if code == "" {
		return "", errors.New("authorization code is required")
	}

	base, err := serverURL(server)
	if err != nil {
		return "", err
	}

	api := n.newAPI(domain.State{Server: base, ClientID: creds.ClientID, ClientSecret: creds.ClientSecret})
	if err := api.AuthenticateToken(ctx, code, OutOfBandRedirectURI); err != nil {
		return "", fmt.Errorf("exchange code for token: %w", err)
	}
	if api.Config.AccessToken == "" {
		return "", errors.New("token response missing access_token")
	}

	return api.Config.AccessToken, nil
}

func (n *Network) Connect(state domain.State) ports.SocialClient {
	return &Client{api: n.newAPI(state)}
}

func (n *Network) newAPI(state domain.State) *gomastodon.Client {
	api := gomastodon.NewClient(&gomastodon.Config{
		Server:       strings.TrimRight(strings.TrimSpace(state.Server), "/"),
		ClientID:     state.ClientID,
		ClientSecret: state.ClientSecret,
		AccessToken:  state.AccessToken,
	})
	api.Client = *n.httpClient
	return api
}

// serverURL returns the normalized base url of a server, without a trailing slash.
func serverURL(server string) (string, error) {
	trimmed := strings.TrimRight(strings.TrimSpace(server), "/")
	if trimmed == "" {
		return "", errors.New("server url is required")
	}

	parsed, err := url.Parse(trimmed)
	if err != nil {
		return "", fmt.Errorf("parse server url: %w", err)
	}
	if parsed.Scheme != "http" && parsed.Scheme != "https" {
		return "", errors.New("server url must use http or https")
	}
	if parsed.Host == "" {
		return "", errors.New("server url host is required")
	}

	return trimmed, nil
}
