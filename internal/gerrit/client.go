// Package gerrit implements the ChangeSource interface on top of Gerrit's
// REST API.
package gerrit

import (
	"bytes"
	"context"
	"strings"

	jsoniter "github.com/json-iterator/go"
	"github.com/maxbolgarin/cliex"
	"github.com/maxbolgarin/errm"
	"github.com/maxbolgarin/gerrev/internal/model"
	"github.com/maxbolgarin/lang"
	"github.com/maxbolgarin/logze/v2"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// Gerrit prefixes every JSON response with this sequence to defeat XSSI.
var xssiPrefix = []byte(")]}'")

// Config represents the connection to one Gerrit host.
type Config struct {
	BaseURL  string `yaml:"base_url" env:"GERRIT_BASE_URL"`
	Username string `yaml:"username" env:"GERRIT_USERNAME"`
	// Password is the HTTP credential from the user's Gerrit settings,
	// not the account password.
	Password string `yaml:"password" env:"GERRIT_PASSWORD"`
}

func (c *Config) PrepareAndValidate() error {
	if c.BaseURL == "" {
		return errm.New("gerrit base URL is required")
	}
	c.BaseURL = strings.TrimSuffix(c.BaseURL, "/")
	if c.Username == "" || c.Password == "" {
		return errm.New("gerrit username and HTTP password are required")
	}
	return nil
}

var _ model.ChangeSource = (*Client)(nil)

// Client talks to one Gerrit host with basic auth.
type Client struct {
	http *cliex.HTTP
	cfg  Config
	log  logze.Logger
}

// New creates a Gerrit client.
func New(cfg Config) (*Client, error) {
	if err := cfg.PrepareAndValidate(); err != nil {
		return nil, errm.Wrap(err, "validate config")
	}
	log := logze.With("component", "gerrit")

	// Authenticated endpoints live under the /a/ prefix.
	cli, err := cliex.New(cliex.WithBaseURL(cfg.BaseURL+"/a"), cliex.WithLogger(log))
	if err != nil {
		return nil, errm.Wrap(err, "create HTTP client")
	}
	cli.C().SetBasicAuth(cfg.Username, cfg.Password)

	return &Client{
		http: cli,
		cfg:  cfg,
		log:  log,
	}, nil
}

// get fetches a JSON endpoint, strips the XSSI prefix and decodes the body.
func (c *Client) get(ctx context.Context, url string, out any) error {
	resp, err := c.http.Get(ctx, url)
	if err != nil {
		return errm.Wrap(err, "request")
	}

	body := bytes.TrimPrefix(resp.Body(), xssiPrefix)
	if err := json.Unmarshal(bytes.TrimSpace(body), out); err != nil {
		return errm.Wrap(err, "decode response: "+lang.TruncateString(string(body), 200))
	}
	return nil
}
