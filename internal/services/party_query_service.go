package services

import (
	"context"
	"strings"
	"time"

	"github.com/Toyowa5296/poliform/internal/common"
	"github.com/Toyowa5296/poliform/internal/constants"
	"github.com/Toyowa5296/poliform/internal/db/repositories"
	"github.com/Toyowa5296/poliform/internal/models/dtos"
	models "github.com/Toyowa5296/poliform/internal/models/gorm"

	"golang.org/x/sync/errgroup"
)

const partyListTTL = 10 * time.Minute

// PartyQueryService serves the read side: list with filtering, detail, and
// the per-user sub-lists. Derived fields (support counts, supported flags,
// member counts, membership statuses) come from batched queries over the
// whole id set of a result page.
type PartyQueryService struct {
	parties  *repositories.PartyRepository
	pillars  *repositories.PolicyPillarRepository
	comments *repositories.CommentRepository
	members  *repositories.PartyMemberRepository
	stats    repositories.StatsProvider
	cache    common.CacheInterface
}

func NewPartyQueryService(
	parties *repositories.PartyRepository,
	pillars *repositories.PolicyPillarRepository,
	comments *repositories.CommentRepository,
	members *repositories.PartyMemberRepository,
	stats repositories.StatsProvider,
	cache common.CacheInterface,
) *PartyQueryService {
	return &PartyQueryService{
		parties:  parties,
		pillars:  pillars,
		comments: comments,
		members:  members,
		stats:    stats,
		cache:    cache,
	}
}

// List returns all parties matching the keyword and tag filters, newest
// first, enriched with derived fields. callerID may be empty for anonymous
// requests.
func (s *PartyQueryService) List(ctx context.Context, callerID, keyword string, tagNames []string) (*dtos.PartyListResponse, error) {
	// Only the anonymous unfiltered list is cacheable; per-user flags and
	// filters always go to the database.
	cacheable := s.cache != nil && callerID == "" && keyword == "" && len(tagNames) == 0
	if cacheable {
		if val, found := s.cache.Get(string(constants.CachePrefixPartyList)); found {
			if resp, ok := val.(*dtos.PartyListResponse); ok {
				return resp, nil
			}
		}
	}

	parties, err := s.parties.List(ctx)
	if err != nil {
		return nil, err
	}

	filtered := FilterParties(parties, keyword, tagNames)

	summaries, err := s.enrich(ctx, callerID, filtered)
	if err != nil {
		return nil, err
	}

	resp := &dtos.PartyListResponse{
		Parties: summaries,
		Total:   len(summaries),
	}
	if cacheable {
		s.cache.Set(string(constants.CachePrefixPartyList), resp, partyListTTL)
	}
	return resp, nil
}

// FilterParties applies the tag and keyword filters.
//
// Tag semantics: a party matches when its tag-name set is a superset of the
// selected tags (AND, not OR). Keyword semantics: case-sensitive substring
// match against name, slogan, or ideology.
func FilterParties(parties []models.Party, keyword string, tagNames []string) []models.Party {
	if keyword == "" && len(tagNames) == 0 {
		return parties
	}

	filtered := make([]models.Party, 0, len(parties))
	for _, party := range parties {
		if !hasAllTags(party, tagNames) {
			continue
		}
		if keyword != "" && !matchesKeyword(party, keyword) {
			continue
		}
		filtered = append(filtered, party)
	}
	return filtered
}

func hasAllTags(party models.Party, tagNames []string) bool {
	if len(tagNames) == 0 {
		return true
	}

	have := make(map[string]bool, len(party.Tags))
	for _, tag := range party.Tags {
		have[tag.Name] = true
	}
	for _, want := range tagNames {
		if !have[want] {
			return false
		}
	}
	return true
}

func matchesKeyword(party models.Party, keyword string) bool {
	if strings.Contains(party.Name, keyword) || strings.Contains(party.Ideology, keyword) {
		return true
	}
	return party.Slogan != nil && strings.Contains(*party.Slogan, keyword)
}

// Detail assembles the full party page. The independent reads run
// concurrently, all scoped to the request context.
func (s *PartyQueryService) Detail(ctx context.Context, callerID, partyID string) (*dtos.PartyDetailResponse, error) {
	party, err := s.parties.GetByID(ctx, partyID)
	if err != nil {
		return nil, err
	}

	var (
		pillars  []models.PolicyPillar
		comments []models.Comment
		approved []models.PartyMember
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		pillars, err = s.pillars.ListByParty(gctx, partyID)
		return err
	})
	g.Go(func() error {
		var err error
		comments, err = s.comments.ListByParty(gctx, partyID)
		return err
	})
	g.Go(func() error {
		var err error
		approved, err = s.members.ListByPartyAndStatus(gctx, partyID, constants.StatusApproved)
		return err
	})

	summaries := make([]dtos.PartySummary, 1)
	g.Go(func() error {
		enriched, err := s.enrich(gctx, callerID, []models.Party{*party})
		if err != nil {
			return err
		}
		summaries[0] = enriched[0]
		return nil
	})

	if err := g.Wait(); err != nil {
		return nil, err
	}

	detail := &dtos.PartyDetailResponse{
		PartySummary:  summaries[0],
		Location:      party.Location,
		Website:       party.Website,
		ContactEmail:  party.ContactEmail,
		Activities:    party.Activities,
		ActivitiesURL: party.ActivitiesURL,
		PolicyPillars: make([]dtos.PillarResponse, 0, len(pillars)),
		Members:       make([]dtos.MemberProfile, 0, len(approved)),
		Comments:      make([]dtos.CommentResponse, 0, len(comments)),
	}

	for _, p := range pillars {
		detail.PolicyPillars = append(detail.PolicyPillars, dtos.PillarResponse{ID: p.ID, Content: p.Content})
	}
	for _, m := range approved {
		detail.Members = append(detail.Members, dtos.MemberProfile{
			ID:        m.User.ID,
			Name:      m.User.Name,
			AvatarURL: m.User.AvatarURL,
			Bio:       m.User.Bio,
		})
	}
	for _, c := range comments {
		detail.Comments = append(detail.Comments, dtos.CommentResponse{
			ID:         c.ID,
			Content:    c.Content,
			UserID:     c.UserID,
			AuthorName: c.Author.Name,
			CreatedAt:  c.CreatedAt,
		})
	}

	return detail, nil
}

// MyParties returns the owned / liked / joined sub-lists for the profile
// page.
func (s *PartyQueryService) MyParties(ctx context.Context, userID string) (*dtos.MyPartiesResponse, error) {
	var owned, liked, joined []models.Party

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		owned, err = s.parties.ListByOwner(gctx, userID)
		return err
	})
	g.Go(func() error {
		var err error
		liked, err = s.parties.ListLikedBy(gctx, userID)
		return err
	})
	g.Go(func() error {
		var err error
		joined, err = s.parties.ListJoinedBy(gctx, userID)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	resp := &dtos.MyPartiesResponse{}
	var err error
	if resp.Owned, err = s.enrich(ctx, userID, owned); err != nil {
		return nil, err
	}
	if resp.Liked, err = s.enrich(ctx, userID, liked); err != nil {
		return nil, err
	}
	if resp.Joined, err = s.enrich(ctx, userID, joined); err != nil {
		return nil, err
	}
	return resp, nil
}

// enrich attaches the derived fields to a party set with one batched query
// per field, run concurrently.
func (s *PartyQueryService) enrich(ctx context.Context, callerID string, parties []models.Party) ([]dtos.PartySummary, error) {
	ids := make([]string, 0, len(parties))
	for _, p := range parties {
		ids = append(ids, p.ID)
	}

	var (
		supportCounts map[string]int
		supportedSet  map[string]bool
		memberCounts  map[string]int
		statuses      map[string]constants.MemberStatus
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		supportCounts, err = s.stats.SupportCounts(gctx, ids)
		return err
	})
	g.Go(func() error {
		var err error
		supportedSet, err = s.stats.SupportedSet(gctx, callerID, ids)
		return err
	})
	g.Go(func() error {
		var err error
		memberCounts, err = s.stats.MemberCounts(gctx, ids)
		return err
	})
	g.Go(func() error {
		var err error
		statuses, err = s.stats.MembershipStatuses(gctx, callerID, ids)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	summaries := make([]dtos.PartySummary, 0, len(parties))
	for _, party := range parties {
		tags := make([]dtos.TagResponse, 0, len(party.Tags))
		for _, tag := range party.Tags {
			tags = append(tags, dtos.TagResponse{ID: tag.ID, Name: tag.Name, Category: tag.Category})
		}

		summaries = append(summaries, dtos.PartySummary{
			ID:           party.ID,
			Name:         party.Name,
			Slogan:       party.Slogan,
			Ideology:     party.Ideology,
			LogoURL:      party.LogoURL,
			LeaderName:   party.LeaderName,
			ActivityArea: party.ActivityArea,
			FoundedAt:    party.FoundedAt,
			OwnerID:      party.UserID,
			OwnerName:    party.Owner.Name,
			Tags:         tags,
			SupportCount: supportCounts[party.ID],
			Supported:    supportedSet[party.ID],
			MemberCount:  memberCounts[party.ID],
			MemberStatus: statuses[party.ID],
			CreatedAt:    party.CreatedAt,
		})
	}
	return summaries, nil
}
