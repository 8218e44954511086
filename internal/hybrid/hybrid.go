// Package hybrid merges the astrology-side and behavior-side
// confidences into one recommendation.
//
// Default weights are 0.3 astrology / 0.7 behavior, with a +0.2 bonus
// when both sides agree and a 0.1 penalty when they conflict. Tier
// thresholds are a product decision: combined >= 0.7 is a very high
// opportunity, >= 0.4 moderate, anything lower caution.
package hybrid

import (
	"math"
	"sort"

	"github.com/Aniket-hybrid/Predictor/models"
)

// Tier thresholds on the combined confidence
const (
	tierVeryHighFrom = 0.7
	tierModerateFrom = 0.4
)

// DefaultWeights returns the documented default combination weights.
func DefaultWeights() models.HybridWeights {
	return models.HybridWeights{
		Astrology:       0.3,
		Behavior:        0.7,
		AgreeBonus:      0.2,
		ConflictPenalty: 0.1,
	}
}

func clamp01(v float64) float64 {
	return math.Max(0, math.Min(1, v))
}

// Combine is pure and stateless given its request: the combined
// confidence is a weighted sum of both sides plus the agreement
// adjustment, clamped to [0,1].
func Combine(req models.CombineRequest) (*models.HybridPrediction, error) {
	if req.AstroConfidence < 0 || req.AstroConfidence > 1 {
		return nil, models.NewInvalidInput("astrology_confidence", "must be in [0,1]")
	}
	if req.BehaviorConfidence < 0 || req.BehaviorConfidence > 1 {
		return nil, models.NewInvalidInput("behavior_confidence", "must be in [0,1]")
	}

	var bonus float64
	weights := DefaultWeights()
	if req.Weights != nil {
		weights = *req.Weights
	}

	switch req.Agreement {
	case models.AgreementAgree:
		bonus = weights.AgreeBonus
	case models.AgreementConflict:
		bonus = -weights.ConflictPenalty
	case models.AgreementIndeterminate:
		bonus = 0
	default:
		return nil, models.NewInvalidInput("agreement", "must be agree, conflict or indeterminate")
	}

	combined := clamp01(req.AstroConfidence*weights.Astrology + req.BehaviorConfidence*weights.Behavior + bonus)

	return &models.HybridPrediction{
		AstroConfidence:    req.AstroConfidence,
		BehaviorConfidence: req.BehaviorConfidence,
		Agreement:          req.Agreement,
		Combined:           combined,
		Tier:               tierFor(combined),
		ActionItems:        mergeActions(req.AstroActions, req.BehaviorActions),
	}, nil
}

func tierFor(combined float64) string {
	switch {
	case combined >= tierVeryHighFrom:
		return models.TierVeryHighOpportunity
	case combined >= tierModerateFrom:
		return models.TierModerate
	default:
		return models.TierCaution
	}
}

// mergeActions joins both sides and resorts by the declared priority
// ordering: priority first, then source, then text. Exact duplicate
// texts collapse to one item.
func mergeActions(astro, behavior []models.ActionItem) []models.ActionItem {
	merged := make([]models.ActionItem, 0, len(astro)+len(behavior))
	seen := make(map[string]bool)
	for _, item := range append(append([]models.ActionItem(nil), astro...), behavior...) {
		if seen[item.Text] {
			continue
		}
		seen[item.Text] = true
		merged = append(merged, item)
	}

	sort.SliceStable(merged, func(i, j int) bool {
		if merged[i].Priority != merged[j].Priority {
			return merged[i].Priority < merged[j].Priority
		}
		if merged[i].Source != merged[j].Source {
			return merged[i].Source < merged[j].Source
		}
		return merged[i].Text < merged[j].Text
	})
	return merged
}
