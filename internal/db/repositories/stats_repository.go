package repositories

import (
	"context"
	"fmt"

	"github.com/Toyowa5296/poliform/internal/constants"
	"github.com/Toyowa5296/poliform/internal/models/entities"

	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
)

// StatsProvider is what the list/detail enrichment needs: derived fields for
// a whole id set in one query each.
type StatsProvider interface {
	SupportCounts(ctx context.Context, partyIDs []string) (map[string]int, error)
	SupportedSet(ctx context.Context, userID string, partyIDs []string) (map[string]bool, error)
	MemberCounts(ctx context.Context, partyIDs []string) (map[string]int, error)
	MembershipStatuses(ctx context.Context, userID string, partyIDs []string) (map[string]constants.MemberStatus, error)
}

// StatsRepository runs the aggregate queries with sqlx against Postgres
type StatsRepository struct {
	db *sqlx.DB
}

var _ StatsProvider = (*StatsRepository)(nil)

func NewStatsRepository(db *sqlx.DB) *StatsRepository {
	return &StatsRepository{db}
}

// SupportCounts returns support counts keyed by party id; parties with no
// supporters are simply absent from the map.
func (r *StatsRepository) SupportCounts(ctx context.Context, partyIDs []string) (map[string]int, error) {
	counts := make(map[string]int, len(partyIDs))
	if len(partyIDs) == 0 {
		return counts, nil
	}

	var rows []entities.SupportCount
	err := r.db.SelectContext(ctx, &rows, constants.SupportCountsByParty, pq.Array(partyIDs))
	if err != nil {
		return nil, fmt.Errorf("support counts: %w", err)
	}

	for _, row := range rows {
		counts[row.PartyID] = row.SupportCount
	}
	return counts, nil
}

// SupportedSet returns which of the given parties the user supports.
func (r *StatsRepository) SupportedSet(ctx context.Context, userID string, partyIDs []string) (map[string]bool, error) {
	supported := make(map[string]bool, len(partyIDs))
	if userID == "" || len(partyIDs) == 0 {
		return supported, nil
	}

	var ids []string
	err := r.db.SelectContext(ctx, &ids, constants.SupportedPartyIDsForUser, userID, pq.Array(partyIDs))
	if err != nil {
		return nil, fmt.Errorf("supported set: %w", err)
	}

	for _, id := range ids {
		supported[id] = true
	}
	return supported, nil
}

// MemberCounts returns approved member counts keyed by party id.
func (r *StatsRepository) MemberCounts(ctx context.Context, partyIDs []string) (map[string]int, error) {
	counts := make(map[string]int, len(partyIDs))
	if len(partyIDs) == 0 {
		return counts, nil
	}

	var rows []entities.MemberCount
	err := r.db.SelectContext(ctx, &rows, constants.ApprovedMemberCountsByParty, pq.Array(partyIDs))
	if err != nil {
		return nil, fmt.Errorf("member counts: %w", err)
	}

	for _, row := range rows {
		counts[row.PartyID] = row.MemberCount
	}
	return counts, nil
}

// MembershipStatuses returns the caller's membership status per party.
func (r *StatsRepository) MembershipStatuses(ctx context.Context, userID string, partyIDs []string) (map[string]constants.MemberStatus, error) {
	statuses := make(map[string]constants.MemberStatus, len(partyIDs))
	if userID == "" || len(partyIDs) == 0 {
		return statuses, nil
	}

	var rows []entities.MembershipStatus
	err := r.db.SelectContext(ctx, &rows, constants.MembershipStatusesForUser, userID, pq.Array(partyIDs))
	if err != nil {
		return nil, fmt.Errorf("membership statuses: %w", err)
	}

	for _, row := range rows {
		statuses[row.PartyID] = row.Status
	}
	return statuses, nil
}
