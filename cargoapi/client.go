// Package cargoapi implements the HTTP client for the remote cargo server.
// It only covers the contract the dashboard depends on: the three list
// endpoints and the composite full-entry mutations.
package cargoapi

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"strings"
	"time"

	"github.com/cargoportl/cargoportl"
)

// DefaultBaseURL is the production cargo server.
const DefaultBaseURL = "https://cargoserver.onrender.com"

// Client talks to the cargo server. The zero value is not usable; use New.
type Client struct {
	baseURL string
	hc      *http.Client
}

// New returns a client for the server at baseURL. Requests carry a bounded
// timeout so a dead server surfaces as an error instead of an endless
// spinner.
func New(baseURL string) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		hc:      &http.Client{Timeout: 10 * time.Second},
	}
}

// Clients lists all clients.
func (c *Client) Clients(ctx context.Context) ([]cargoportl.Client, error) {
	clients := make([]cargoportl.Client, 0)
	if err := c.jget(ctx, "/clients", &clients); err != nil {
		return nil, err
	}
	return clients, nil
}

// Shipments lists all shipments.
func (c *Client) Shipments(ctx context.Context) ([]cargoportl.Shipment, error) {
	shipments := make([]cargoportl.Shipment, 0)
	if err := c.jget(ctx, "/shipments", &shipments); err != nil {
		return nil, err
	}
	return shipments, nil
}

// Invoices lists all invoices.
func (c *Client) Invoices(ctx context.Context) ([]cargoportl.Invoice, error) {
	invoices := make([]cargoportl.Invoice, 0)
	if err := c.jget(ctx, "/invoices", &invoices); err != nil {
		return nil, err
	}
	return invoices, nil
}

// CreateFullEntry posts a new client+shipment+invoice composite. The
// server's response carries at least the created shipment; missing
// sections fall back to what was sent.
func (c *Client) CreateFullEntry(ctx context.Context, entry cargoportl.FullEntry) (cargoportl.FullEntry, error) {
	body, err := c.jsend(ctx, http.MethodPost, "/createFullEntry", entry)
	if err != nil {
		return cargoportl.FullEntry{}, err
	}
	return extractEntry(body, entry)
}

// UpdateFullEntry puts the edited composite, identified by its shipment id.
func (c *Client) UpdateFullEntry(ctx context.Context, entry cargoportl.FullEntry) (cargoportl.FullEntry, error) {
	path := "/updateFullEntry/" + entry.Shipment.ID.String()
	body, err := c.jsend(ctx, http.MethodPut, path, entry)
	if err != nil {
		return cargoportl.FullEntry{}, err
	}
	return extractEntry(body, entry)
}

// DeleteFullEntry deletes the composite identified by keys. The shipment id
// goes in the path; the companion ids travel in the body so the server can
// cascade. It returns the deleted shipment id acknowledged by the server.
func (c *Client) DeleteFullEntry(ctx context.Context, keys cargoportl.DeleteKeys) (cargoportl.ID, error) {
	path := "/deleteFullEntry/" + keys.ShipmentID.String()
	body, err := c.jsend(ctx, http.MethodDelete, path, keys)
	if err != nil {
		return "", err
	}
	return extractDeletedID(body, keys.ShipmentID), nil
}

// jget performs an HTTP GET against the server and unmarshals the JSON
// response body into data.
func (c *Client) jget(ctx context.Context, path string, data any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		return fmt.Errorf("cannot create http request %q: %w", path, err)
	}
	body, err := c.do(req)
	if err != nil {
		return err
	}
	return json.Unmarshal(body, data)
}

// jsend performs an HTTP request with a JSON body and returns the raw
// response body.
func (c *Client) jsend(ctx context.Context, method, path string, payload any) ([]byte, error) {
	raw, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("cannot encode %s %q payload: %w", method, path, err)
	}
	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, bytes.NewReader(raw))
	if err != nil {
		return nil, fmt.Errorf("cannot create http request %q: %w", path, err)
	}
	req.Header.Set("Content-Type", "application/json")
	return c.do(req)
}

func (c *Client) do(req *http.Request) ([]byte, error) {
	resp, err := c.hc.Do(req)
	if err != nil {
		return nil, fmt.Errorf("cannot reach cargo server: %w", err)
	}
	defer resp.Body.Close()

	log.Printf("%v %v%v %v", req.Method, req.URL.Host, req.URL.Path, resp.Status)

	// reading in a buffer to be able to surface the body on rejection
	var buf bytes.Buffer
	if _, err := io.Copy(&buf, resp.Body); err != nil {
		return nil, fmt.Errorf("cannot read http body: %w", err)
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, newServerError(resp.StatusCode, buf.Bytes())
	}
	return buf.Bytes(), nil
}
