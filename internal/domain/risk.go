package domain

// Risk is a project risk entry. ID is an internal surrogate identity so
// that mutation never depends on list position; the service layer exposes
// index-based lookups only at the boundary.
type Risk struct {
	ID          string
	Category    string
	Description string
	Impact      RiskRating
	Probability RiskRating
	Mitigation  string
}

func ratingScore(r RiskRating) int {
	switch r {
	case RatingHigh:
		return 3
	case RatingMedium:
		return 2
	case RatingLow:
		return 1
	default:
		return 0
	}
}

// Exposure classifies the combined impact and probability of the risk.
// It is a derived convenience for embedding hosts; nothing in the core
// stores or depends on it.
func (r Risk) Exposure() RiskExposure {
	score := ratingScore(r.Impact) * ratingScore(r.Probability)
	switch {
	case score >= 6:
		return ExposureSevere
	case score >= 3:
		return ExposureElevated
	default:
		return ExposureLow
	}
}
