package domain_test

import (
	"testing"

	"github.com/SeedSwipe/seed_swipe_app/internal/core/domain"
	"github.com/stretchr/testify/assert"
)

func TestInvestmentStatus_IsTerminal(t *testing.T) {
	tests := []struct {
		name   string
		status domain.InvestmentStatus
		want   bool
	}{
		{name: "pending is not terminal", status: domain.InvestmentStatusPending, want: false},
		{name: "completed is terminal", status: domain.InvestmentStatusCompleted, want: true},
		{name: "cancelled is terminal", status: domain.InvestmentStatusCancelled, want: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.status.IsTerminal())
		})
	}
}

func TestBusiness_IsMatchedWith(t *testing.T) {
	biz := domain.Business{
		BusinessID:          "b1",
		EntrepreneurID:      "e1",
		LikedByInvestors:    []string{"inv-1", "inv-2"},
		InterestedInvestors: []string{"inv-2", "inv-3"},
	}

	assert.False(t, biz.IsMatchedWith("inv-1"), "liked without entrepreneur interest is not a match")
	assert.True(t, biz.IsMatchedWith("inv-2"), "liked with entrepreneur interest is a match")
	assert.False(t, biz.IsMatchedWith("inv-3"), "entrepreneur interest without a like is not a match")
	assert.False(t, biz.IsMatchedWith("inv-4"))
}
