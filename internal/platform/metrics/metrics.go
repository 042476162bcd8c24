package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	SwipesRecorded = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "seedswipe_swipes_total",
			Help: "Total number of swipes recorded",
		},
		[]string{"direction"},
	)

	MatchesCreated = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "seedswipe_matches_total",
			Help: "Total number of mutual matches created",
		},
	)

	InvestmentsCreated = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "seedswipe_investments_created_total",
			Help: "Total number of investments created",
		},
	)

	InvestmentAmount = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "seedswipe_investment_amount",
			Help:    "Distribution of investment amounts",
			Buckets: prometheus.ExponentialBuckets(100, 5, 7),
		},
	)

	FundingGoalsReached = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "seedswipe_funding_goals_reached_total",
			Help: "Total number of businesses that reached their funding goal",
		},
	)
)
