package services

import (
	"context"

	"github.com/Toyowa5296/poliform/internal/db/repositories"
	"github.com/Toyowa5296/poliform/internal/models/dtos"
	models "github.com/Toyowa5296/poliform/internal/models/gorm"
)

// PillarService manages a party's policy pillars; all mutations are
// owner-only.
type PillarService struct {
	parties *repositories.PartyRepository
	pillars *repositories.PolicyPillarRepository
}

func NewPillarService(parties *repositories.PartyRepository, pillars *repositories.PolicyPillarRepository) *PillarService {
	return &PillarService{parties: parties, pillars: pillars}
}

// Create adds a pillar to the owner's party.
func (s *PillarService) Create(ctx context.Context, callerID, partyID, content string) (*dtos.PillarResponse, error) {
	if err := s.requireOwner(ctx, callerID, partyID); err != nil {
		return nil, err
	}

	pillar := &models.PolicyPillar{PartyID: partyID, Content: content}
	if err := s.pillars.Create(ctx, pillar); err != nil {
		return nil, err
	}
	return &dtos.PillarResponse{ID: pillar.ID, Content: pillar.Content}, nil
}

// Update edits a pillar on the owner's party.
func (s *PillarService) Update(ctx context.Context, callerID, partyID, pillarID, content string) error {
	if err := s.requireOwner(ctx, callerID, partyID); err != nil {
		return err
	}
	return s.pillars.UpdateContent(ctx, pillarID, partyID, content)
}

// Delete removes a pillar from the owner's party.
func (s *PillarService) Delete(ctx context.Context, callerID, partyID, pillarID string) error {
	if err := s.requireOwner(ctx, callerID, partyID); err != nil {
		return err
	}
	return s.pillars.Delete(ctx, pillarID, partyID)
}

func (s *PillarService) requireOwner(ctx context.Context, callerID, partyID string) error {
	party, err := s.parties.GetByID(ctx, partyID)
	if err != nil {
		return err
	}
	if party.UserID != callerID {
		return ErrNotOwner
	}
	return nil
}
