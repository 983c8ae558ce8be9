// Package hypixel wraps the game economy API: auctions, bazaar,
// elections, news and profile data. Responses come back in several
// historical shapes; everything is normalized into the skyblock model
// before it leaves this package.
package hypixel

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http/cookiejar"
	"time"

	"skyblock-backend/lib/restyutil"
	"skyblock-backend/lib/telemetry"

	cloudflarebp "github.com/DaRealFreak/cloudflare-bp-go"
	"github.com/go-resty/resty/v2"
	"go.opentelemetry.io/otel"
)

var tracer = otel.Tracer("scrapers/hypixel")

const baseUrl = "https://api.hypixel.net/v2"

// NameResolver turns a player name into a Mojang uuid. The mcuuid
// scraper satisfies this.
type NameResolver interface {
	UUIDFromName(ctx context.Context, name string) (string, error)
}

type Client struct {
	http     *resty.Client
	resolver NameResolver
}

func NewClient(apiKey string, resolver NameResolver) (*Client, error) {
	client := resty.New()
	client.SetBaseURL(baseUrl)
	jar, err := cookiejar.New(nil)
	if err != nil {
		return nil, err
	}
	client.SetCookieJar(jar)
	client.SetHeader("Content-Type", "application/json")
	client.SetHeader("API-Key", apiKey)
	client.SetHeader("User-Agent", "Mozilla/5.0 sbClient v1.0")
	client.SetTimeout(time.Second * 30)
	client.GetClient().Transport = cloudflarebp.AddCloudFlareByPass(client.GetClient().Transport)

	telemetry.InstrumentResty(client, "scrapers/hypixel/http")
	restyutil.InstrumentClient(client, nil, restyInstrumentOutput)

	return &Client{http: client, resolver: resolver}, nil
}

// ApiError is a non-2xx answer from the API, most commonly a 403 for a
// bad or throttled key.
type ApiError struct {
	Code  int
	Cause string
}

func (e *ApiError) Error() string {
	return fmt.Sprintf("hypixel: api error %d: %s", e.Code, e.Cause)
}

func (c *Client) get(ctx context.Context, path string, query map[string]string, out any) error {
	req := c.http.R().SetContext(ctx)
	for k, v := range query {
		if v != "" {
			req.SetQueryParam(k, v)
		}
	}
	res, err := req.Get(path)
	if err != nil {
		return err
	}
	if res.IsError() {
		var body struct {
			Cause string `json:"cause"`
		}
		_ = json.Unmarshal(res.Body(), &body)
		return &ApiError{Code: res.StatusCode(), Cause: body.Cause}
	}
	return json.Unmarshal(res.Body(), out)
}
