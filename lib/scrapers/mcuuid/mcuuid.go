// Package mcuuid resolves player names to Mojang uuids (and back) by
// scraping the mcuuid.net lookup form. Lookups are cached in both
// directions for the lifetime of the client.
package mcuuid

import (
	"bytes"
	"context"
	"fmt"
	"net/http/cookiejar"
	"sync"
	"time"

	"skyblock-backend/lib/telemetry"

	cloudflarebp "github.com/DaRealFreak/cloudflare-bp-go"
	"github.com/PuerkitoBio/goquery"
	"github.com/go-resty/resty/v2"
	"github.com/google/uuid"
	"go.opentelemetry.io/otel"
)

var tracer = otel.Tracer("scrapers/mcuuid")

const baseUrl = "https://mcuuid.net/"

type Client struct {
	http *resty.Client

	mu         sync.Mutex
	nameToUuid map[string]string
	uuidToName map[string]string
}

func NewClient() (*Client, error) {
	client := resty.New()
	client.SetBaseURL(baseUrl)
	jar, err := cookiejar.New(nil)
	if err != nil {
		return nil, err
	}
	client.SetCookieJar(jar)
	client.SetHeader("User-Agent", "Mozilla/5.0 sbClient v1.0")
	client.SetTimeout(time.Second * 30)
	client.GetClient().Transport = cloudflarebp.AddCloudFlareByPass(client.GetClient().Transport)

	telemetry.InstrumentResty(client, "scrapers/mcuuid/http")

	return &Client{
		http:       client,
		nameToUuid: map[string]string{},
		uuidToName: map[string]string{},
	}, nil
}

func (c *Client) lookup(ctx context.Context, query string) (*goquery.Document, error) {
	res, err := c.http.R().
		SetContext(ctx).
		SetQueryParam("q", query).
		Get("/")
	if err != nil {
		return nil, err
	}
	if res.IsError() {
		return nil, fmt.Errorf("mcuuid: lookup failed with status %d", res.StatusCode())
	}
	return goquery.NewDocumentFromReader(bytes.NewReader(res.Body()))
}

// UUIDFromName resolves a player name to its trimmed (dashless) uuid.
func (c *Client) UUIDFromName(ctx context.Context, name string) (string, error) {
	ctx, span := tracer.Start(ctx, "UUIDFromName")
	defer span.End()

	c.mu.Lock()
	cached, ok := c.nameToUuid[name]
	c.mu.Unlock()
	if ok {
		return cached, nil
	}

	doc, err := c.lookup(ctx, name)
	if err != nil {
		return "", err
	}
	id, err := uuidFromDocument(doc)
	if err != nil {
		return "", err
	}

	c.mu.Lock()
	c.nameToUuid[name] = id
	c.uuidToName[id] = name
	c.mu.Unlock()
	return id, nil
}

// NameFromUUID resolves a uuid back to the current player name.
func (c *Client) NameFromUUID(ctx context.Context, id string) (string, error) {
	ctx, span := tracer.Start(ctx, "NameFromUUID")
	defer span.End()

	c.mu.Lock()
	cached, ok := c.uuidToName[id]
	c.mu.Unlock()
	if ok {
		return cached, nil
	}

	doc, err := c.lookup(ctx, id)
	if err != nil {
		return "", err
	}
	name, err := nameFromDocument(doc)
	if err != nil {
		return "", err
	}

	c.mu.Lock()
	c.uuidToName[id] = name
	c.nameToUuid[name] = id
	c.mu.Unlock()
	return name, nil
}

// uuidFromDocument pulls the raw uuid out of the results form and
// validates its shape.
func uuidFromDocument(doc *goquery.Document) (string, error) {
	value, ok := doc.Find("input#results_raw_id").Attr("value")
	if !ok || value == "" {
		return "", fmt.Errorf("mcuuid: no result in lookup page")
	}
	if _, err := uuid.Parse(value); err != nil {
		return "", fmt.Errorf("mcuuid: scraped id is not a uuid: %w", err)
	}
	return value, nil
}

func nameFromDocument(doc *goquery.Document) (string, error) {
	value, ok := doc.Find("input#results_username").Attr("value")
	if !ok || value == "" {
		return "", fmt.Errorf("mcuuid: no result in lookup page")
	}
	return value, nil
}
