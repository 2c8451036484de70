package league

import (
	"errors"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// PopularThreshold is the minimum popularity for the "popular" filter.
const PopularThreshold = 90

var (
	ErrLeagueFull     = errors.New("league is full")
	ErrAlreadyJoined  = errors.New("already joined league")
	ErrInvalidFilter  = errors.New("invalid league filter")
	ErrInvalidSortKey = errors.New("invalid league sort")
)

// League is a paid or free contest attached to one match.
type League struct {
	ID         string
	MatchID    string
	Name       string
	PrizePool  decimal.Decimal
	EntryFee   decimal.Decimal
	MaxTeams   int
	TeamsCount int
	Popularity int
	CreatedAt  time.Time
}

func (l League) Validate() error {
	if l.ID == "" {
		return fmt.Errorf("league id is required")
	}
	if l.Name == "" {
		return fmt.Errorf("league name is required")
	}
	if l.EntryFee.IsNegative() {
		return fmt.Errorf("league entry fee must be non-negative")
	}
	if l.MaxTeams <= 0 {
		return fmt.Errorf("league max teams must be positive")
	}
	return nil
}

func (l League) IsFree() bool {
	return !l.EntryFee.IsPositive()
}

func (l League) IsFull() bool {
	return l.TeamsCount >= l.MaxTeams
}

type Participant struct {
	LeagueID string
	UserID   string
	JoinedAt time.Time
}

type Filter string

const (
	FilterAll     Filter = "all"
	FilterFree    Filter = "free"
	FilterPaid    Filter = "paid"
	FilterPopular Filter = "popular"
)

type SortKey string

const (
	SortPrize SortKey = "prize"
	SortTeams SortKey = "teams"
	SortEntry SortKey = "entry"
)

// ListQuery selects and orders leagues. Zero value lists all by prize pool.
type ListQuery struct {
	Filter Filter
	Sort   SortKey
}

func ParseListQuery(filter, sortKey string) (ListQuery, error) {
	q := ListQuery{Filter: FilterAll, Sort: SortPrize}

	switch f := Filter(strings.ToLower(strings.TrimSpace(filter))); f {
	case "":
	case FilterAll, FilterFree, FilterPaid, FilterPopular:
		q.Filter = f
	default:
		return ListQuery{}, fmt.Errorf("%w: %q", ErrInvalidFilter, filter)
	}

	switch s := SortKey(strings.ToLower(strings.TrimSpace(sortKey))); s {
	case "":
	case SortPrize, SortTeams, SortEntry:
		q.Sort = s
	default:
		return ListQuery{}, fmt.Errorf("%w: %q", ErrInvalidSortKey, sortKey)
	}
	return q, nil
}

func (q ListQuery) Match(l League) bool {
	switch q.Filter {
	case FilterFree:
		return l.IsFree()
	case FilterPaid:
		return !l.IsFree()
	case FilterPopular:
		return l.Popularity >= PopularThreshold
	default:
		return true
	}
}

// Apply filters and orders leagues in place of a store query. Ties keep ID order.
func (q ListQuery) Apply(leagues []League) []League {
	out := make([]League, 0, len(leagues))
	for _, l := range leagues {
		if q.Match(l) {
			out = append(out, l)
		}
	}

	sort.SliceStable(out, func(i, j int) bool {
		a, b := out[i], out[j]
		switch q.Sort {
		case SortTeams:
			if a.TeamsCount != b.TeamsCount {
				return a.TeamsCount > b.TeamsCount
			}
		case SortEntry:
			if c := a.EntryFee.Cmp(b.EntryFee); c != 0 {
				return c < 0
			}
		default:
			if c := a.PrizePool.Cmp(b.PrizePool); c != 0 {
				return c > 0
			}
		}
		return a.ID < b.ID
	})
	return out
}
