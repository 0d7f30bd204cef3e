package pricing

// Plan is a subscription tier shown on the public pricing page. Price is a
// display string ("$249"), not a numeric amount. Order drives display
// sequencing and is kept contiguous from 1.
type Plan struct {
	ID             string   `bson:"_id,omitempty" json:"id"`
	Name           string   `bson:"name" json:"name"`
	Slug           string   `bson:"slug" json:"slug"`
	Description    string   `bson:"description" json:"description"`
	Price          string   `bson:"price" json:"price"`
	Period         string   `bson:"period" json:"period"`
	Features       []string `bson:"features" json:"features"`
	ButtonText     string   `bson:"buttonText" json:"buttonText"`
	Badge          string   `bson:"badge,omitempty" json:"badge,omitempty"`
	IsProfessional bool     `bson:"isProfessional" json:"isProfessional"`
	Order          int      `bson:"order" json:"order"`
	Tagline        string   `bson:"tagline,omitempty" json:"tagline,omitempty"`
	Title          string   `bson:"title,omitempty" json:"title,omitempty"`
	Discount       string   `bson:"discount,omitempty" json:"discount,omitempty"`
}

func (p Plan) withOrder(n int) Plan {
	p.Order = n
	return p
}

type PlanInput struct {
	ID             string   `json:"id"`
	Name           string   `json:"name" validate:"required"`
	Slug           string   `json:"slug" validate:"required"`
	Description    string   `json:"description"`
	Price          string   `json:"price" validate:"required"`
	Period         string   `json:"period"`
	Features       []string `json:"features" validate:"min=1"`
	ButtonText     string   `json:"buttonText"`
	Badge          string   `json:"badge"`
	IsProfessional bool     `json:"isProfessional"`
	Order          int      `json:"order" validate:"gt=0"`
	Tagline        string   `json:"tagline"`
	Title          string   `json:"title"`
	Discount       string   `json:"discount"`
}

type SavePlansRequest struct {
	Plans []PlanInput `json:"plans" validate:"required,min=1,dive"`
}

// Feature is one row of the plan-comparison table. Each tier cell is either
// a checkmark boolean or a free-text value like "Basic".
type Feature struct {
	ID           string `bson:"_id,omitempty" json:"id"`
	Name         string `bson:"name" json:"name"`
	Starter      Cell   `bson:"starter" json:"starter"`
	Professional Cell   `bson:"professional" json:"professional"`
	Organization Cell   `bson:"organization" json:"organization"`
	Order        int    `bson:"order" json:"order"`
}

func (f Feature) withOrder(n int) Feature {
	f.Order = n
	return f
}

type FeatureInput struct {
	ID           string `json:"id"`
	Name         string `json:"name" validate:"required"`
	Starter      Cell   `json:"starter"`
	Professional Cell   `json:"professional"`
	Organization Cell   `json:"organization"`
	Order        int    `json:"order" validate:"gt=0"`
}

type SaveFeaturesRequest struct {
	Features []FeatureInput `json:"features" validate:"required,min=1,dive"`
}

// Calculator is the singleton configuration behind the plan calculator:
// a base price plus ordered services, each with ordered options.
type Calculator struct {
	ID          string              `bson:"_id,omitempty" json:"id"`
	Title       string              `bson:"title" json:"title"`
	Description string              `bson:"description" json:"description"`
	BasePrice   float64             `bson:"basePrice" json:"basePrice"`
	Services    []CalculatorService `bson:"services" json:"services"`
}

type CalculatorService struct {
	Name    string             `bson:"name" json:"name"`
	Order   int                `bson:"order" json:"order"`
	Options []CalculatorOption `bson:"options" json:"options"`
}

func (s CalculatorService) withOrder(n int) CalculatorService {
	s.Order = n
	return s
}

type CalculatorOption struct {
	Name        string  `bson:"name" json:"name"`
	Price       float64 `bson:"price" json:"price"`
	Description string  `bson:"description" json:"description"`
	Order       int     `bson:"order" json:"order"`
}

func (o CalculatorOption) withOrder(n int) CalculatorOption {
	o.Order = n
	return o
}

type SaveCalculatorRequest struct {
	Title       string              `json:"title" validate:"required"`
	Description string              `json:"description"`
	BasePrice   float64             `json:"basePrice" validate:"gte=0"`
	Services    []CalculatorService `json:"services"`
}

// MoveRequest nudges one item a single position up or down.
type MoveRequest struct {
	Direction string `json:"direction" validate:"required,oneof=up down"`
}

// DefaultPlans returns the three tiers the public pages fall back to when
// the plans collection is empty. The literals mirror the launch content.
func DefaultPlans() []Plan {
	return []Plan{
		{
			ID:          "plan-starter",
			Name:        "Starter",
			Slug:        "starter",
			Description: "Essential services for new businesses.",
			Price:       "$99",
			Period:      "/month",
			Features: []string{
				"Basic SEO Audit",
				"5 Articles Content Writing",
				"1 Social Media Platform",
				"Monthly Performance Reports",
			},
			ButtonText:     "Get Started",
			IsProfessional: false,
			Order:          1,
			Tagline:        "Essential Marketing Solutions for New Businesses",
			Title:          "Launch Your Brand Successfully",
			Discount:       "Billed annually for a 15% discount",
		},
		{
			ID:          "plan-professional",
			Name:        "Professional",
			Slug:        "professional",
			Badge:       "MOST POPULAR",
			Description: "Comprehensive solutions for growing brands.",
			Price:       "$249",
			Period:      "/month",
			Features: []string{
				"Advanced SEO Strategy",
				"20 Articles Content Writing",
				"5 Social Media Platforms",
				"Weekly Performance Reports",
				"Basic Web Development (Landing Page)",
				"Tier 2 Influencer Access",
				"24/7 Support",
			},
			ButtonText:     "Choose Plan",
			IsProfessional: true,
			Order:          2,
			Tagline:        "Comprehensive Solutions for Growing Brands",
			Title:          "Scale Your Brand's Growth",
			Discount:       "Billed annually for a 20% discount",
		},
		{
			ID:          "plan-organization",
			Name:        "Organization",
			Slug:        "organization",
			Description: "Comprehensive solutions for growing brands.",
			Price:       "$599",
			Period:      "/month",
			Features: []string{
				"Custom 4k Video Production",
				"Unlimited Print Production Assets",
				"Advanced SEO & Analytics",
				"Custom Web Development (Unlimited Pages)",
				"Dedicated Video Editing Team",
				"Unlimited Graphic Design Concepts",
				"Content Writing (Unlimited)",
				"Influencer Marketing (Full Campaign)",
				"Social Media Marketing (Full Management)",
				"Email Marketing (Advanced Campaigns)",
			},
			ButtonText:     "Choose Organization",
			IsProfessional: false,
			Order:          3,
			Tagline:        "Enterprise-Level Solutions for Established Brands",
			Title:          "Dominate Your Market",
			Discount:       "Billed annually for a 25% discount",
		},
	}
}

// DefaultFeatures seeds the comparison table the first time the admin page
// loads against an empty collection.
func DefaultFeatures() []Feature {
	return []Feature{
		{
			ID:           "feature-1",
			Name:         "AI Video Production",
			Starter:      BoolCell(true),
			Professional: BoolCell(true),
			Organization: BoolCell(true),
			Order:        1,
		},
		{
			ID:           "feature-2",
			Name:         "Print Productions",
			Starter:      BoolCell(true),
			Professional: BoolCell(true),
			Organization: BoolCell(true),
			Order:        2,
		},
		{
			ID:           "feature-3",
			Name:         "SEO Optimization",
			Starter:      TextCell("Basic"),
			Professional: TextCell("Advanced"),
			Organization: TextCell("Premium"),
			Order:        3,
		},
	}
}
