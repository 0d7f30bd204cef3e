package stats

// Stat is one counter on the public stats band: an icon key, the numeric
// value, a label, a color token and an optional suffix ("+", "%").
type Stat struct {
	ID     string `bson:"_id,omitempty" json:"id"`
	Icon   string `bson:"icon" json:"icon"`
	Value  int    `bson:"value" json:"value"`
	Label  string `bson:"label" json:"label"`
	Color  string `bson:"color" json:"color"`
	Suffix string `bson:"suffix" json:"suffix"`
	Order  int    `bson:"order" json:"order"`
}

func (s Stat) withOrder(n int) Stat {
	s.Order = n
	return s
}

type StatInput struct {
	ID     string `json:"id"`
	Icon   string `json:"icon" validate:"required"`
	Value  int    `json:"value" validate:"gte=0"`
	Label  string `json:"label" validate:"required"`
	Color  string `json:"color"`
	Suffix string `json:"suffix"`
	Order  int    `json:"order" validate:"gt=0"`
}

type SaveRequest struct {
	Stats []StatInput `json:"stats" validate:"required,min=1,dive"`
}

type MoveRequest struct {
	Direction string `json:"direction" validate:"required,oneof=up down"`
}

const (
	DefaultIcon  = "Star"
	DefaultColor = "text-yellow-400"
)

// The renderer only knows these keys; anything else would draw nothing, so
// unknown values are silently mapped to the defaults instead of erroring.
var iconKeys = map[string]struct{}{
	"Star":       {},
	"Award":      {},
	"Users":      {},
	"TrendingUp": {},
	"Heart":      {},
	"Target":     {},
	"Clock":      {},
}

var colorKeys = map[string]struct{}{
	"text-yellow-400": {},
	"text-green-400":  {},
	"text-blue-400":   {},
	"text-purple-400": {},
	"text-red-400":    {},
	"text-pink-400":   {},
	"text-indigo-400": {},
	"text-teal-400":   {},
}

func normalizeIcon(icon string) string {
	if _, ok := iconKeys[icon]; ok {
		return icon
	}
	return DefaultIcon
}

func normalizeColor(color string) string {
	if _, ok := colorKeys[color]; ok {
		return color
	}
	return DefaultColor
}

// DefaultStats is the band seeded into an empty collection and served as
// the public fallback.
func DefaultStats() []Stat {
	return []Stat{
		{ID: "stat1", Icon: "Star", Value: 500, Label: "Projects Completed", Color: "text-yellow-400", Suffix: "+", Order: 1},
		{ID: "stat2", Icon: "Award", Value: 98, Label: "Client Satisfaction", Color: "text-green-400", Suffix: "%", Order: 2},
		{ID: "stat3", Icon: "Users", Value: 150, Label: "Happy Clients", Color: "text-blue-400", Suffix: "+", Order: 3},
		{ID: "stat4", Icon: "TrendingUp", Value: 300, Label: "Average ROI", Color: "text-purple-400", Suffix: "%", Order: 4},
	}
}
