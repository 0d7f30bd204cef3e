package analytics

import (
	"context"
	"strconv"
)

const (
	RangeToday  = "today"
	Range7Days  = "7days"
	Range30Days = "30days"
)

type DailyMetrics struct {
	Date            string `json:"date"`
	TotalUsers      int    `json:"totalUsers"`
	NewUsers        int    `json:"newUsers"`
	Sessions        int    `json:"sessions"`
	PageViews       int    `json:"pageViews"`
	EngagedSessions int    `json:"engagedSessions"`
}

type TrafficSource struct {
	Name  string `json:"name"`
	Value int    `json:"value"`
}

type PageViews struct {
	Path  string `json:"path"`
	Views int    `json:"views"`
}

type CountryUsers struct {
	Country string `json:"country"`
	Users   int    `json:"users"`
}

type DeviceUsers struct {
	Device string `json:"device"`
	Users  int    `json:"users"`
}

type Overview struct {
	Range               string          `json:"range"`
	HistoricalData      []DailyMetrics  `json:"historicalData"`
	RealtimeActiveUsers int             `json:"realtimeActiveUsers"`
	TrafficSources      []TrafficSource `json:"trafficSources"`
	TopPages            []PageViews     `json:"topPages"`
	Geo                 []CountryUsers  `json:"geo"`
	Devices             []DeviceUsers   `json:"devices"`
	TotalRows           int             `json:"totalRows"`
}

func rangesFor(rng string) []dateRange {
	switch rng {
	case RangeToday:
		return []dateRange{{StartDate: "today", EndDate: "today"}}
	case Range30Days:
		return []dateRange{{StartDate: "30daysAgo", EndDate: "today"}}
	default:
		return []dateRange{{StartDate: "7daysAgo", EndDate: "today"}}
	}
}

func normalizeRange(rng string) string {
	switch rng {
	case RangeToday, Range30Days:
		return rng
	default:
		return Range7Days
	}
}

// Overview assembles the dashboard payload: a daily historical series plus
// traffic-source, top-page, country and device breakdowns, and the realtime
// active-user count.
func (c *Client) Overview(ctx context.Context, rng string) (Overview, error) {
	rng = normalizeRange(rng)
	ranges := rangesFor(rng)

	historical, err := c.runReport(ctx, reportRequest{
		DateRanges: ranges,
		Metrics: []metric{
			{Name: "totalUsers"},
			{Name: "newUsers"},
			{Name: "sessions"},
			{Name: "screenPageViews"},
			{Name: "engagedSessions"},
		},
		Dimensions: []dimension{{Name: "date"}},
		OrderBys:   []orderBy{{Dimension: &dimensionOrder{DimensionName: "date"}}},
	})
	if err != nil {
		return Overview{}, err
	}

	daily := make([]DailyMetrics, 0, len(historical.Rows))
	for _, row := range historical.Rows {
		daily = append(daily, DailyMetrics{
			Date:            row.dimension(0),
			TotalUsers:      row.metric(0),
			NewUsers:        row.metric(1),
			Sessions:        row.metric(2),
			PageViews:       row.metric(3),
			EngagedSessions: row.metric(4),
		})
	}

	traffic, err := c.runReport(ctx, reportRequest{
		DateRanges: ranges,
		Metrics:    []metric{{Name: "sessions"}},
		Dimensions: []dimension{{Name: "sessionDefaultChannelGroup"}},
		OrderBys:   []orderBy{{Metric: &metricOrder{MetricName: "sessions"}, Desc: true}},
	})
	if err != nil {
		return Overview{}, err
	}

	sources := make([]TrafficSource, 0, len(traffic.Rows))
	for _, row := range traffic.Rows {
		name := row.dimension(0)
		if name == "" {
			name = "Unknown"
		}
		sources = append(sources, TrafficSource{Name: name, Value: row.metric(0)})
	}
	sources = capSlice(sources, 8)

	pages, err := c.runReport(ctx, reportRequest{
		DateRanges: ranges,
		Metrics:    []metric{{Name: "screenPageViews"}},
		Dimensions: []dimension{{Name: "pagePath"}},
		OrderBys:   []orderBy{{Metric: &metricOrder{MetricName: "screenPageViews"}, Desc: true}},
	})
	if err != nil {
		return Overview{}, err
	}

	topPages := make([]PageViews, 0, len(pages.Rows))
	for _, row := range pages.Rows {
		topPages = append(topPages, PageViews{Path: row.dimension(0), Views: row.metric(0)})
	}
	topPages = capSlice(topPages, 10)

	geoResp, err := c.runReport(ctx, reportRequest{
		DateRanges: ranges,
		Metrics:    []metric{{Name: "totalUsers"}},
		Dimensions: []dimension{{Name: "country"}},
		OrderBys:   []orderBy{{Metric: &metricOrder{MetricName: "totalUsers"}, Desc: true}},
	})
	if err != nil {
		return Overview{}, err
	}

	geo := make([]CountryUsers, 0, len(geoResp.Rows))
	for _, row := range geoResp.Rows {
		country := row.dimension(0)
		if country == "" {
			country = "Unknown"
		}
		geo = append(geo, CountryUsers{Country: country, Users: row.metric(0)})
	}
	geo = capSlice(geo, 10)

	deviceResp, err := c.runReport(ctx, reportRequest{
		DateRanges: ranges,
		Metrics:    []metric{{Name: "totalUsers"}},
		Dimensions: []dimension{{Name: "deviceCategory"}},
		OrderBys:   []orderBy{{Metric: &metricOrder{MetricName: "totalUsers"}, Desc: true}},
	})
	if err != nil {
		return Overview{}, err
	}

	devices := make([]DeviceUsers, 0, len(deviceResp.Rows))
	for _, row := range deviceResp.Rows {
		device := row.dimension(0)
		if device == "" {
			device = "Unknown"
		}
		devices = append(devices, DeviceUsers{Device: device, Users: row.metric(0)})
	}

	realtime, err := c.runRealtimeReport(ctx, reportRequest{
		Metrics: []metric{{Name: "activeUsers"}},
	})
	if err != nil {
		return Overview{}, err
	}

	active := 0
	for _, row := range realtime.Rows {
		active += row.metric(0)
	}

	return Overview{
		Range:               rng,
		HistoricalData:      daily,
		RealtimeActiveUsers: active,
		TrafficSources:      sources,
		TopPages:            topPages,
		Geo:                 geo,
		Devices:             devices,
		TotalRows:           len(daily),
	}, nil
}

func capSlice[T any](list []T, max int) []T {
	if len(list) > max {
		return list[:max]
	}
	return list
}

func atoiSafe(s string) int {
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0
	}
	return n
}
