package model

// ValidationResult represents the legality decision for one relationship
type ValidationResult struct {
	Relationship *Relationship `json:"relationship"`
	Allowed      bool          `json:"allowed"`
}

// ValidationResults is an ordered list of decisions
type ValidationResults []ValidationResult

// Denied returns the results that were rejected, in order
func (r ValidationResults) Denied() ValidationResults {
	var denied ValidationResults
	for _, result := range r {
		if !result.Allowed {
			denied = append(denied, result)
		}
	}
	return denied
}

// AllAllowed reports whether no result was rejected
func (r ValidationResults) AllAllowed() bool {
	return len(r.Denied()) == 0
}
