package domain

// PlaceKind tags a node's level in the geographic hierarchy.
type PlaceKind string

const (
	KindRegion   PlaceKind = "region"
	KindLocality PlaceKind = "locality"
	KindDistrict PlaceKind = "district"
	KindStreet   PlaceKind = "street"
	KindArea     PlaceKind = "area"
)

// Specificity orders kinds from broadest to narrowest. Used as a ranking
// tie-breaker when two resolution candidates score equally.
func (k PlaceKind) Specificity() int {
	switch k {
	case KindRegion:
		return 0
	case KindLocality:
		return 1
	case KindDistrict:
		return 2
	case KindArea:
		return 3
	case KindStreet:
		return 4
	default:
		return -1
	}
}

// PlaceNode is one node of the geographic forest. ParentID is nil for roots.
// Display names are carried in the three languages the outage providers
// publish in.
type PlaceNode struct {
	ID       int64     `db:"id"`
	ParentID *int64    `db:"parent_id"`
	Kind     PlaceKind `db:"kind"`
	NameHy   string    `db:"name_hy"`
	NameRu   string    `db:"name_ru"`
	NameEn   string    `db:"name_en"`
}

// DisplayName returns the node's name in the given locale, falling back to
// English when that translation is missing.
func (n PlaceNode) DisplayName(locale string) string {
	var name string
	switch locale {
	case "hy":
		name = n.NameHy
	case "ru":
		name = n.NameRu
	default:
		name = n.NameEn
	}
	if name == "" {
		name = n.NameEn
	}
	return name
}

// ScoredPlace is a similarity-search hit: a node plus the best score across
// its three display names.
type ScoredPlace struct {
	Node  PlaceNode
	Score float64
}

// Candidate is a ranked resolution result. Accepted reports whether the score
// cleared the auto-accept threshold; callers must not auto-link otherwise.
// Path carries the display names from the node's root down to the node, so
// same-named streets in different localities can be told apart.
type Candidate struct {
	Node     PlaceNode
	Score    float64
	Accepted bool
	Path     []string
}
