package services

import (
	"context"
	"io"

	"github.com/Toyowa5296/poliform/internal/common"
	"github.com/Toyowa5296/poliform/internal/constants"
	"github.com/Toyowa5296/poliform/internal/db/repositories"
	"github.com/Toyowa5296/poliform/internal/metrics"
	"github.com/Toyowa5296/poliform/internal/models/dtos"
	models "github.com/Toyowa5296/poliform/internal/models/gorm"
)

// PartyService owns party creation and owner-gated mutations.
type PartyService struct {
	parties    *repositories.PartyRepository
	cache      common.CacheInterface
	storage    *common.StorageService
	metricsReg *metrics.MetricsRegistry
}

func NewPartyService(parties *repositories.PartyRepository, cache common.CacheInterface, storage *common.StorageService, metricsReg *metrics.MetricsRegistry) *PartyService {
	return &PartyService{
		parties:    parties,
		cache:      cache,
		storage:    storage,
		metricsReg: metricsReg,
	}
}

// Create inserts the party together with its role set and the creator's
// approved owner membership, plus any tags and policy pillars from the form.
func (s *PartyService) Create(ctx context.Context, ownerID string, req dtos.PartyCreateRequest) (*models.Party, error) {
	party := &models.Party{
		UserID:        ownerID,
		Name:          req.Name,
		Slogan:        req.Slogan,
		Ideology:      req.Ideology,
		FoundedAt:     req.FoundedAt,
		LeaderName:    req.LeaderName,
		Location:      req.Location,
		ActivityArea:  req.ActivityArea,
		Website:       req.Website,
		ContactEmail:  req.ContactEmail,
		Activities:    req.Activities,
		ActivitiesURL: req.ActivitiesURL,
	}

	pillars := make([]string, 0, len(req.PolicyPillars))
	for _, p := range req.PolicyPillars {
		if p != "" {
			pillars = append(pillars, p)
		}
	}

	if err := s.parties.CreateWithOwner(ctx, party, req.TagIDs, pillars); err != nil {
		return nil, err
	}

	s.invalidateListCache()
	if s.metricsReg != nil {
		s.metricsReg.PartiesCreatedTotal.Inc()
	}

	return s.parties.GetByID(ctx, party.ID)
}

// Update edits party fields; only the owner may call it.
func (s *PartyService) Update(ctx context.Context, callerID, partyID string, req dtos.PartyUpdateRequest) (*models.Party, error) {
	party, err := s.ownedParty(ctx, callerID, partyID)
	if err != nil {
		return nil, err
	}

	party.Name = req.Name
	party.Slogan = req.Slogan
	party.Ideology = req.Ideology
	party.FoundedAt = req.FoundedAt
	party.LeaderName = req.LeaderName
	party.Location = req.Location
	party.ActivityArea = req.ActivityArea
	party.Website = req.Website
	party.ContactEmail = req.ContactEmail
	party.Activities = req.Activities
	party.ActivitiesURL = req.ActivitiesURL

	if err := s.parties.Update(ctx, party); err != nil {
		return nil, err
	}

	s.invalidateListCache()
	return s.parties.GetByID(ctx, partyID)
}

// Delete removes a party; only the owner may call it.
func (s *PartyService) Delete(ctx context.Context, callerID, partyID string) error {
	if _, err := s.ownedParty(ctx, callerID, partyID); err != nil {
		return err
	}

	if err := s.parties.Delete(ctx, partyID); err != nil {
		return err
	}

	s.invalidateListCache()
	return nil
}

// ReplaceTags swaps the party's tag set; only the owner may call it.
func (s *PartyService) ReplaceTags(ctx context.Context, callerID, partyID string, tagIDs []string) error {
	party, err := s.ownedParty(ctx, callerID, partyID)
	if err != nil {
		return err
	}

	if err := s.parties.ReplaceTags(ctx, party, tagIDs); err != nil {
		return err
	}

	s.invalidateListCache()
	return nil
}

// SetLogo stores the uploaded logo and records its public URL; owner only.
func (s *PartyService) SetLogo(ctx context.Context, callerID, partyID, filename string, content io.Reader) (string, error) {
	if _, err := s.ownedParty(ctx, callerID, partyID); err != nil {
		return "", err
	}

	url, err := s.storage.Save(filename, content)
	if err != nil {
		return "", err
	}

	if err := s.parties.SetLogoURL(ctx, partyID, url); err != nil {
		return "", err
	}

	s.invalidateListCache()
	return url, nil
}

func (s *PartyService) ownedParty(ctx context.Context, callerID, partyID string) (*models.Party, error) {
	party, err := s.parties.GetByID(ctx, partyID)
	if err != nil {
		return nil, err
	}
	if party.UserID != callerID {
		return nil, ErrNotOwner
	}
	return party, nil
}

func (s *PartyService) invalidateListCache() {
	if s.cache != nil {
		s.cache.Delete(string(constants.CachePrefixPartyList))
	}
}
