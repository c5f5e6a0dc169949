// Package sheets downloads survey rows from a Google spreadsheet and manages
// the local JSON snapshot the rest of the system reads.
package sheets

import (
	"context"
	"fmt"
	"net/http"
	"net/url"

	"github.com/acalderon/encuestas/internal/fault"
	"golang.org/x/oauth2"
	"resty.dev/v3"
)

// Client reads cell values from one spreadsheet through the Sheets v4 REST API.
type Client struct {
	httpClient    *resty.Client
	tokens        oauth2.TokenSource
	spreadsheetID string
}

func NewClient(baseURL, spreadsheetID string, tokens oauth2.TokenSource) *Client {
	client := resty.New()
	client.SetBaseURL(baseURL)
	client.SetHeader("Content-Type", "application/json")

	return &Client{
		httpClient:    client,
		tokens:        tokens,
		spreadsheetID: spreadsheetID,
	}
}

func (client *Client) Close() error {
	return client.httpClient.Close()
}

type spreadsheetMetadata struct {
	Sheets []worksheet `json:"sheets"`
}

type worksheet struct {
	Properties worksheetProperties `json:"properties"`
}

type worksheetProperties struct {
	Title string `json:"title"`
}

type valueRange struct {
	Range          string     `json:"range"`
	MajorDimension string     `json:"majorDimension"`
	Values         [][]string `json:"values"`
}

// FetchAllValues downloads every cell of the first worksheet as text rows.
// Rows keep whatever ragged lengths the provider returns; an empty worksheet
// yields an empty, non-nil slice.
func (client *Client) FetchAllValues(ctx context.Context) ([][]string, error) {
	token, err := client.tokens.Token()
	if err != nil {
		return nil, fault.Wrap(fault.KindTransport, fmt.Errorf("tokens.Token() > %w", err))
	}

	var metadata spreadsheetMetadata
	response, err := client.httpClient.R().
		SetContext(ctx).
		SetAuthToken(token.AccessToken).
		SetQueryParam("fields", "sheets.properties.title").
		SetResult(&metadata).
		Get("/v4/spreadsheets/" + client.spreadsheetID)
	if err != nil {
		return nil, fault.Wrap(fault.KindTransport, fmt.Errorf("httpClient.Get > %w", err))
	}
	if response.IsError() {
		return nil, client.responseFault(response)
	}
	if len(metadata.Sheets) == 0 {
		return nil, fault.New(fault.KindRemoteNotFound, "spreadsheet '%s' has no worksheets", client.spreadsheetID)
	}

	firstWorksheet := metadata.Sheets[0].Properties.Title
	var values valueRange
	response, err = client.httpClient.R().
		SetContext(ctx).
		SetAuthToken(token.AccessToken).
		SetResult(&values).
		Get("/v4/spreadsheets/" + client.spreadsheetID + "/values/" + url.PathEscape(firstWorksheet))
	if err != nil {
		return nil, fault.Wrap(fault.KindTransport, fmt.Errorf("httpClient.Get > %w", err))
	}
	if response.IsError() {
		return nil, client.responseFault(response)
	}

	if values.Values == nil {
		return [][]string{}, nil
	}
	return values.Values, nil
}

func (client *Client) responseFault(response *resty.Response) error {
	switch response.StatusCode() {
	case http.StatusNotFound, http.StatusForbidden:
		return fault.New(fault.KindRemoteNotFound,
			"Spreadsheet with ID '%s' not found or permission issue.", client.spreadsheetID)
	default:
		return fault.New(fault.KindTransport,
			"response error %d: %s", response.StatusCode(), response.String())
	}
}
