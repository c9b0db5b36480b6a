package analysis

// ConfidenceVector holds per-dimension confidence in [0,1]. It is a
// pure function of corpus size: the tiers reflect sample quantity only,
// not extractor content. That is a documented limitation of the scoring
// model, not an oversight.
type ConfidenceVector struct {
	Overall     float64 `json:"overall_confidence"`
	KeyPoints   float64 `json:"key_points_confidence"`
	Sentiment   float64 `json:"sentiment_confidence"`
	Stakeholder float64 `json:"stakeholder_confidence"`
	Theme       float64 `json:"theme_confidence"`
	Impact      float64 `json:"impact_confidence"`
}

// scoreConfidence derives the tiered vector from the comment total.
// Base: >=20 -> 0.8, >=10 -> 0.6, >=5 -> 0.4, else 0.2. Per-dimension
// offsets are fixed and the result is clamped to 1.0.
func scoreConfidence(total int) ConfidenceVector {
	var base float64
	switch {
	case total >= 20:
		base = 0.8
	case total >= 10:
		base = 0.6
	case total >= 5:
		base = 0.4
	default:
		base = 0.2
	}
	return ConfidenceVector{
		Overall:     base,
		KeyPoints:   clamp1(base + 0.1),
		Sentiment:   base,
		Stakeholder: clamp1(base + 0.05),
		Theme:       clamp1(base + 0.15),
		Impact:      clamp1(base + 0.1),
	}
}

func clamp1(v float64) float64 {
	if v > 1.0 {
		return 1.0
	}
	return v
}
