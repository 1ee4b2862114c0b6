package constants

// Aggregate queries used by the sqlx stats repository. Each one is
// parameterized over the full id set of a result page so that list endpoints
// need a single round trip per derived field instead of one per card.
const (
	SupportCountsByParty = `
	SELECT party_id, COUNT(*) AS support_count
	FROM likes
	WHERE party_id = ANY($1)
	GROUP BY party_id
	`

	SupportedPartyIDsForUser = `
	SELECT party_id
	FROM likes
	WHERE user_id = $1 AND party_id = ANY($2)
	`

	ApprovedMemberCountsByParty = `
	SELECT party_id, COUNT(*) AS member_count
	FROM party_member
	WHERE party_id = ANY($1) AND status = 'approved'
	GROUP BY party_id
	`

	MembershipStatusesForUser = `
	SELECT party_id, status
	FROM party_member
	WHERE user_id = $1 AND party_id = ANY($2)
	`
)
