package service

import (
	"context"
	"fmt"
	"log/slog"
	"sort"
	"strings"

	"outage_notifier/internal/domain"
)

// streetTokens are per-language street/avenue words stripped during
// normalization so "Abovyan street" and "Abovyan" score the same.
var streetTokens = map[string]struct{}{
	// Armenian
	"փողոց": {}, "փող.": {}, "փող": {}, "պողոտա": {}, "պող.": {}, "պող": {},
	"նրբանցք": {}, "թաղամաս": {},
	// Russian
	"улица": {}, "ул.": {}, "ул": {}, "проспект": {}, "просп.": {}, "пр.": {},
	"переулок": {}, "пер.": {},
	// English
	"street": {}, "st.": {}, "st": {}, "avenue": {}, "ave.": {}, "ave": {},
	"lane": {}, "district": {},
}

// Resolver turns free address text into ranked hierarchy candidates.
type Resolver struct {
	searcher      SimilaritySearcher
	threshold     float64
	maxCandidates int
	logger        *slog.Logger
}

func NewResolver(searcher SimilaritySearcher, threshold float64, maxCandidates int, logger *slog.Logger) *Resolver {
	return &Resolver{
		searcher:      searcher,
		threshold:     threshold,
		maxCandidates: maxCandidates,
		logger:        logger.With("component", "resolver"),
	}
}

// Normalize case-folds, trims and strips street-type tokens from address
// text before similarity scoring.
func Normalize(text string) string {
	fields := strings.Fields(strings.ToLower(strings.TrimSpace(text)))
	kept := fields[:0]
	for _, f := range fields {
		if _, drop := streetTokens[strings.Trim(f, ",.")]; drop {
			continue
		}
		kept = append(kept, f)
	}
	return strings.Join(kept, " ")
}

// Resolve returns candidates ranked by score, then specificity (street
// beats region on a tie), then id for determinism. Accepted marks scores at
// or above the auto-accept threshold; anything below is a suggestion only
// and must not be auto-linked.
func (r *Resolver) Resolve(ctx context.Context, text string, hint domain.PlaceKind) ([]domain.Candidate, error) {
	query := Normalize(text)
	if query == "" {
		return nil, nil
	}

	hits, err := r.searcher.Similarity(ctx, query, kindsForHint(hint), r.maxCandidates)
	if err != nil {
		return nil, fmt.Errorf("similarity search %q: %w", query, err)
	}

	candidates := make([]domain.Candidate, 0, len(hits))
	for _, h := range hits {
		candidates = append(candidates, domain.Candidate{
			Node:     h.Node,
			Score:    h.Score,
			Accepted: h.Score >= r.threshold,
		})
	}

	sort.SliceStable(candidates, func(i, j int) bool {
		a, b := candidates[i], candidates[j]
		if a.Score != b.Score {
			return a.Score > b.Score
		}
		if sa, sb := a.Node.Kind.Specificity(), b.Node.Kind.Specificity(); sa != sb {
			return sa > sb
		}
		return a.Node.ID < b.Node.ID
	})

	if len(candidates) > 0 {
		r.logger.Debug("resolved address text",
			"query", query,
			"top_score", candidates[0].Score,
			"accepted", candidates[0].Accepted,
		)
	}

	return candidates, nil
}

// kindsForHint scopes the search: region-level text must resolve to a
// region node, not a street. Street hints also admit named areas.
func kindsForHint(hint domain.PlaceKind) []domain.PlaceKind {
	switch hint {
	case "":
		return nil
	case domain.KindStreet:
		return []domain.PlaceKind{domain.KindStreet, domain.KindArea}
	default:
		return []domain.PlaceKind{hint}
	}
}
