// Package graph implements the DirectoryClient port against the Microsoft
// Graph REST API.
package graph

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/Azure/azure-sdk-for-go/sdk/azcore"
	"github.com/Azure/azure-sdk-for-go/sdk/azcore/policy"
	"github.com/gregjones/httpcache"

	"github.com/ericfisherdev/certpanel/internal/domain/model"
	"github.com/ericfisherdev/certpanel/internal/domain/port/driven"
)

// Compile-time interface satisfaction check.
var _ driven.DirectoryClient = (*Client)(nil)

// maxResponseBody bounds how much of a Graph response is read, so a
// misbehaving endpoint cannot exhaust memory.
const maxResponseBody = 1 << 20 // 1 MiB

// graphScope is the read-only application-metadata scope the report needs.
const graphScope = "https://graph.microsoft.com/.default"

// Client implements the driven.DirectoryClient port over Microsoft Graph.
type Client struct {
	httpClient *http.Client
	cred       azcore.TokenCredential
	baseURL    string
	scopes     []string
}

// NewClient creates a Graph API client. The transport stack is an in-memory
// httpcache layer (ETag-based conditional request caching) under an
// HTTP client bounded by the given timeout. cred may be nil when no
// credential source could be established; every call then fails with an
// AuthError, which best-effort mode reports and swallows.
func NewClient(cred azcore.TokenCredential, baseURL string, timeout time.Duration) *Client {
	cacheTransport := httpcache.NewMemoryCacheTransport()
	httpClient := cacheTransport.Client()
	httpClient.Timeout = timeout

	return &Client{
		httpClient: httpClient,
		cred:       cred,
		baseURL:    strings.TrimRight(baseURL, "/"),
		scopes:     []string{graphScope},
	}
}

// NewClientWithHTTPClient creates a Client with a custom http.Client and base
// URL. This constructor is intended for testing, allowing injection of an
// httptest server.
func NewClientWithHTTPClient(httpClient *http.Client, baseURL string, cred azcore.TokenCredential) *Client {
	return &Client{
		httpClient: httpClient,
		cred:       cred,
		baseURL:    strings.TrimRight(baseURL, "/"),
		scopes:     []string{graphScope},
	}
}

// ListServicePrincipals retrieves every service principal in the tenant with
// its key and password credential sets. It follows @odata.nextLink pagination
// and maps Graph wire types to domain model types.
func (c *Client) ListServicePrincipals(ctx context.Context) ([]model.ServicePrincipal, error) {
	if c.cred == nil {
		return nil, &model.AuthError{Op: "acquire token", Err: fmt.Errorf("no credential configured")}
	}

	token, err := c.cred.GetToken(ctx, policy.TokenRequestOptions{Scopes: c.scopes})
	if err != nil {
		return nil, &model.AuthError{Op: "acquire token", Err: err}
	}

	params := url.Values{}
	params.Set("$select", "displayName,keyCredentials,passwordCredentials")
	params.Set("$top", "999")

	next := c.baseURL + "/servicePrincipals?" + params.Encode()
	allSPs := []model.ServicePrincipal{}
	page := 0

	for next != "" {
		page++

		var resp listResponse
		if err := c.getJSON(ctx, token.Token, next, &resp); err != nil {
			return nil, fmt.Errorf("listing service principals (page %d): %w", page, err)
		}

		for _, sp := range resp.Value {
			allSPs = append(allSPs, mapServicePrincipal(sp))
		}

		slog.Debug("graph api call",
			"endpoint", "servicePrincipals",
			"page", page,
			"count", len(resp.Value),
		)

		next = resp.NextLink
	}

	return allSPs, nil
}

// getJSON performs an authenticated GET against the given URL and decodes
// the body into out. 401/403 responses map to AuthError, other non-200
// responses to APIError.
func (c *Client) getJSON(ctx context.Context, token, rawURL string, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+token)
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("calling graph: %w", err)
	}
	defer resp.Body.Close()

	body, readErr := io.ReadAll(io.LimitReader(resp.Body, maxResponseBody))

	switch {
	case resp.StatusCode == http.StatusUnauthorized || resp.StatusCode == http.StatusForbidden:
		return &model.AuthError{
			Op:  "list service principals",
			Err: fmt.Errorf("graph returned status %d: %s", resp.StatusCode, truncate(string(body), 200)),
		}
	case resp.StatusCode != http.StatusOK:
		return &model.APIError{
			Op:         "list service principals",
			StatusCode: resp.StatusCode,
			Body:       truncate(string(body), 200),
		}
	}

	if readErr != nil {
		return fmt.Errorf("reading response body: %w", readErr)
	}
	if err := json.Unmarshal(body, out); err != nil {
		return fmt.Errorf("decoding response: %w", err)
	}
	return nil
}

// listResponse is the Graph collection envelope for servicePrincipals.
type listResponse struct {
	NextLink string             `json:"@odata.nextLink"`
	Value    []servicePrincipal `json:"value"`
}

type servicePrincipal struct {
	DisplayName         string           `json:"displayName"`
	KeyCredentials      []wireCredential `json:"keyCredentials"`
	PasswordCredentials []wireCredential `json:"passwordCredentials"`
}

// wireCredential covers both keyCredential and passwordCredential resources;
// the fields this report needs are identical. endDateTime may be null.
type wireCredential struct {
	KeyID       string     `json:"keyId"`
	DisplayName string     `json:"displayName"`
	EndDateTime *time.Time `json:"endDateTime"`
}

// mapServicePrincipal converts a Graph servicePrincipal to a domain model
// ServicePrincipal. Certificates precede secrets in the credential list,
// matching the order Graph reports them.
func mapServicePrincipal(sp servicePrincipal) model.ServicePrincipal {
	creds := make([]model.Credential, 0, len(sp.KeyCredentials)+len(sp.PasswordCredentials))
	for _, kc := range sp.KeyCredentials {
		creds = append(creds, mapCredential(kc, model.CredentialKindCertificate))
	}
	for _, pc := range sp.PasswordCredentials {
		creds = append(creds, mapCredential(pc, model.CredentialKindSecret))
	}

	return model.ServicePrincipal{
		DisplayName: sp.DisplayName,
		Credentials: creds,
	}
}

func mapCredential(wc wireCredential, kind model.CredentialKind) model.Credential {
	return model.Credential{
		Kind:        kind,
		KeyID:       wc.KeyID,
		DisplayName: wc.DisplayName,
		ExpiresAt:   wc.EndDateTime,
	}
}

// truncate shortens a string for error messages, appending "..." if truncated.
func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n] + "..."
}
