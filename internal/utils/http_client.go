package utils

import (
	"github.com/go-resty/resty/v2"
)

// HTTPClient embeds *resty.Client so callers get the full resty API
// while the adapter layer can hang gig-desk specific behavior off the
// wrapper without touching resty itself.
type HTTPClient struct {
	*resty.Client
}

// NewHTTPClient returns an independent client with its own connection
// pool and configuration. The server adapter sets the base URL, the
// request timeout and the bearer token on top of this.
func NewHTTPClient() *HTTPClient {
	return &HTTPClient{Client: resty.New()}
}
