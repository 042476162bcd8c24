package domain

// Match is a derived mutual-interest pair between an investor and the
// entrepreneur owning a business. It has no stored identity: it is recomputed
// per query from the business's like and interest sets and never persisted.
type Match struct {
	BusinessID     string `json:"businessID"`
	BusinessName   string `json:"businessName"`
	EntrepreneurID string `json:"entrepreneurID"`
	InvestorID     string `json:"investorID"`
}

// SwipeOutcome is the result of an investor's right swipe.
type SwipeOutcome string

const (
	// SwipeLiked means the like was recorded without reciprocal interest.
	SwipeLiked SwipeOutcome = "LIKED"
	// SwipeMatched means the like completed a mutual match.
	SwipeMatched SwipeOutcome = "MATCHED"
)
