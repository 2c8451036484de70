package league

import (
	"errors"
	"testing"

	"github.com/shopspring/decimal"
)

func sampleLeagues() []League {
	return []League{
		{ID: "l1", Name: "Mega", PrizePool: decimal.NewFromInt(100000), EntryFee: decimal.NewFromInt(49), MaxTeams: 1000, TeamsCount: 700, Popularity: 95},
		{ID: "l2", Name: "Practice", PrizePool: decimal.Zero, EntryFee: decimal.Zero, MaxTeams: 100, TeamsCount: 900, Popularity: 40},
		{ID: "l3", Name: "Head to Head", PrizePool: decimal.NewFromInt(180), EntryFee: decimal.NewFromInt(100), MaxTeams: 2, TeamsCount: 1, Popularity: 90},
		{ID: "l4", Name: "Small", PrizePool: decimal.NewFromInt(500), EntryFee: decimal.NewFromInt(10), MaxTeams: 50, TeamsCount: 12, Popularity: 60},
	}
}

func ids(leagues []League) []string {
	out := make([]string, 0, len(leagues))
	for _, l := range leagues {
		out = append(out, l.ID)
	}
	return out
}

func TestListQueryApply(t *testing.T) {
	tests := []struct {
		name   string
		filter string
		sort   string
		want   []string
	}{
		{name: "defaults sort by prize desc", want: []string{"l1", "l4", "l3", "l2"}},
		{name: "free only", filter: "free", want: []string{"l2"}},
		{name: "paid by entry asc", filter: "paid", sort: "entry", want: []string{"l4", "l1", "l3"}},
		{name: "popular includes threshold", filter: "popular", want: []string{"l1", "l3"}},
		{name: "teams desc", sort: "teams", want: []string{"l2", "l1", "l4", "l3"}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			q, err := ParseListQuery(tc.filter, tc.sort)
			if err != nil {
				t.Fatalf("parse query: %v", err)
			}
			got := ids(q.Apply(sampleLeagues()))
			if len(got) != len(tc.want) {
				t.Fatalf("got=%v want=%v", got, tc.want)
			}
			for i := range got {
				if got[i] != tc.want[i] {
					t.Fatalf("got=%v want=%v", got, tc.want)
				}
			}
		})
	}
}

func TestParseListQuery_Invalid(t *testing.T) {
	if _, err := ParseListQuery("vip", ""); !errors.Is(err, ErrInvalidFilter) {
		t.Fatalf("expected ErrInvalidFilter, got %v", err)
	}
	if _, err := ParseListQuery("", "name"); !errors.Is(err, ErrInvalidSortKey) {
		t.Fatalf("expected ErrInvalidSortKey, got %v", err)
	}
}
