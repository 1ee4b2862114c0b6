package entities

import "github.com/Toyowa5296/poliform/internal/constants"

// Rows produced by the aggregate stats queries. One query per derived field
// over the whole id set, scanned into these and folded into maps.

type SupportCount struct {
	PartyID      string `db:"party_id"`
	SupportCount int    `db:"support_count"`
}

type MemberCount struct {
	PartyID     string `db:"party_id"`
	MemberCount int    `db:"member_count"`
}

type MembershipStatus struct {
	PartyID string                 `db:"party_id"`
	Status  constants.MemberStatus `db:"status"`
}
