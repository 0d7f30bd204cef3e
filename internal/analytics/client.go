package analytics

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"
	"golang.org/x/oauth2"
	"golang.org/x/oauth2/jwt"
)

const (
	dataAPIBase    = "https://analyticsdata.googleapis.com/v1beta"
	googleTokenURL = "https://oauth2.googleapis.com/token"
	readonlyScope  = "https://www.googleapis.com/auth/analytics.readonly"
)

// Client talks to the Google Analytics Data API with a service-account
// credential. Private keys arrive from env with literal "\n" sequences,
// which the config loader unescapes before they get here.
type Client struct {
	http     *resty.Client
	property string
	tokens   oauth2.TokenSource
}

func NewClient(propertyID, clientEmail, privateKey string) *Client {
	cfg := &jwt.Config{
		Email:      clientEmail,
		PrivateKey: []byte(privateKey),
		Scopes:     []string{readonlyScope},
		TokenURL:   googleTokenURL,
	}

	return &Client{
		http: resty.New().
			SetTimeout(30*time.Second).
			SetHeader("Content-Type", "application/json"),
		property: "properties/" + strings.TrimSpace(propertyID),
		tokens:   cfg.TokenSource(context.Background()),
	}
}

type dateRange struct {
	StartDate string `json:"startDate"`
	EndDate   string `json:"endDate"`
}

type metric struct {
	Name string `json:"name"`
}

type dimension struct {
	Name string `json:"name"`
}

type orderBy struct {
	Dimension *dimensionOrder `json:"dimension,omitempty"`
	Metric    *metricOrder    `json:"metric,omitempty"`
	Desc      bool            `json:"desc,omitempty"`
}

type dimensionOrder struct {
	DimensionName string `json:"dimensionName"`
}

type metricOrder struct {
	MetricName string `json:"metricName"`
}

type reportRequest struct {
	DateRanges []dateRange `json:"dateRanges,omitempty"`
	Metrics    []metric    `json:"metrics"`
	Dimensions []dimension `json:"dimensions,omitempty"`
	OrderBys   []orderBy   `json:"orderBys,omitempty"`
}

type reportRow struct {
	DimensionValues []struct {
		Value string `json:"value"`
	} `json:"dimensionValues"`
	MetricValues []struct {
		Value string `json:"value"`
	} `json:"metricValues"`
}

type reportResponse struct {
	Rows []reportRow `json:"rows"`
}

func (c *Client) runReport(ctx context.Context, req reportRequest) (reportResponse, error) {
	return c.post(ctx, c.property+":runReport", req)
}

func (c *Client) runRealtimeReport(ctx context.Context, req reportRequest) (reportResponse, error) {
	return c.post(ctx, c.property+":runRealtimeReport", req)
}

func (c *Client) post(ctx context.Context, path string, req reportRequest) (reportResponse, error) {
	token, err := c.tokens.Token()
	if err != nil {
		return reportResponse{}, fmt.Errorf("analytics token: %w", err)
	}

	var out reportResponse
	resp, err := c.http.R().
		SetContext(ctx).
		SetAuthToken(token.AccessToken).
		SetBody(req).
		SetResult(&out).
		Post(dataAPIBase + "/" + path)
	if err != nil {
		return reportResponse{}, err
	}
	if resp.IsError() {
		return reportResponse{}, fmt.Errorf("analytics api error: %s", resp.Status())
	}
	return out, nil
}

func (r reportRow) dimension(i int) string {
	if i < len(r.DimensionValues) {
		return r.DimensionValues[i].Value
	}
	return ""
}

func (r reportRow) metric(i int) int {
	if i < len(r.MetricValues) {
		return atoiSafe(r.MetricValues[i].Value)
	}
	return 0
}
