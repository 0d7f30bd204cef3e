package estimate

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
)

var ErrUnknownService = errors.New("unknown service")

// Static lookup tables behind the visitor plan calculator. An unknown
// feature tier or timeline falls back to the neutral factor, matching how
// the public form behaves before every field is selected.
var (
	servicePrices = map[string]float64{
		"seo":     500,
		"content": 300,
		"social":  400,
		"ppc":     600,
		"web":     1000,
	}

	featureMultipliers = map[string]float64{
		"basic":    1,
		"standard": 1.5,
		"premium":  2,
		"custom":   2.5,
	}

	timelineMonths = map[string]float64{
		"1month":   1,
		"3months":  3,
		"6months":  6,
		"12months": 12,
	}
)

const upfrontShare = 0.3

type Selection struct {
	ID           int    `json:"id"`
	Service      string `json:"service" validate:"required"`
	BusinessType string `json:"businessType" validate:"required"`
	Features     string `json:"features" validate:"required"`
	Budget       string `json:"budget" validate:"required"`
	Timeline     string `json:"timeline" validate:"required"`
	Description  string `json:"description"`
}

type Result struct {
	PlanID        int     `json:"planId"`
	PlanName      string  `json:"planName"`
	Service       string  `json:"service"`
	BusinessType  string  `json:"businessType"`
	Features      string  `json:"features"`
	Budget        string  `json:"budget"`
	Timeline      string  `json:"timeline"`
	Description   string  `json:"description"`
	Total         float64 `json:"total"`
	Monthly       float64 `json:"monthly"`
	Upfront       float64 `json:"upfront"`
	EstimatedCost string  `json:"estimatedCost"`
	MonthlyPay    string  `json:"monthlyPayment"`
	TotalUpfront  string  `json:"totalUpfront"`
}

// Calculate prices one selection: service base price times feature
// multiplier times duration in months; monthly is the even split, upfront
// is a 30% deposit.
func Calculate(sel Selection) (Result, error) {
	base, ok := servicePrices[sel.Service]
	if !ok {
		return Result{}, fmt.Errorf("%w: %q", ErrUnknownService, sel.Service)
	}

	multiplier, ok := featureMultipliers[sel.Features]
	if !ok {
		multiplier = 1
	}
	months, ok := timelineMonths[sel.Timeline]
	if !ok {
		months = 1
	}

	total := base * multiplier * months
	monthly := total / months
	upfront := total * upfrontShare

	return Result{
		PlanID:        sel.ID,
		PlanName:      fmt.Sprintf("Option %d", sel.ID),
		Service:       sel.Service,
		BusinessType:  sel.BusinessType,
		Features:      sel.Features,
		Budget:        sel.Budget,
		Timeline:      sel.Timeline,
		Description:   sel.Description,
		Total:         total,
		Monthly:       monthly,
		Upfront:       upfront,
		EstimatedCost: formatDollars(total),
		MonthlyPay:    formatDollars(monthly),
		TotalUpfront:  formatDollars(upfront),
	}, nil
}

// formatDollars renders "$2,250" style amounts, keeping two decimals only
// when the value is not whole.
func formatDollars(v float64) string {
	var digits string
	if v == math.Trunc(v) {
		digits = strconv.FormatInt(int64(v), 10)
	} else {
		digits = strconv.FormatFloat(v, 'f', 2, 64)
	}

	whole, frac, _ := strings.Cut(digits, ".")
	var b strings.Builder
	b.WriteByte('$')
	for i, r := range whole {
		if i > 0 && (len(whole)-i)%3 == 0 {
			b.WriteByte(',')
		}
		b.WriteRune(r)
	}
	if frac != "" {
		b.WriteByte('.')
		b.WriteString(frac)
	}
	return b.String()
}
