package services

import (
	"context"

	"github.com/Toyowa5296/poliform/internal/db/repositories"
	"github.com/Toyowa5296/poliform/internal/metrics"
	"github.com/Toyowa5296/poliform/internal/models/dtos"
)

// SupportService implements the support (like) toggle.
type SupportService struct {
	parties    *repositories.PartyRepository
	likes      *repositories.LikeRepository
	metricsReg *metrics.MetricsRegistry
}

func NewSupportService(parties *repositories.PartyRepository, likes *repositories.LikeRepository, metricsReg *metrics.MetricsRegistry) *SupportService {
	return &SupportService{
		parties:    parties,
		likes:      likes,
		metricsReg: metricsReg,
	}
}

// Toggle flips the caller's support for a party. The (user_id, party_id)
// unique constraint decides which way: a successful insert means the user
// was not supporting, a conflict means they were and the row is removed.
// Calling it twice always lands back on the starting state.
func (s *SupportService) Toggle(ctx context.Context, userID, partyID string) (*dtos.SupportToggleResponse, error) {
	party, err := s.parties.GetByID(ctx, partyID)
	if err != nil {
		return nil, err
	}
	if party.UserID == userID {
		return nil, ErrOwnerCannotSupport
	}

	inserted, err := s.likes.InsertIfAbsent(ctx, userID, partyID)
	if err != nil {
		return nil, err
	}

	supported := inserted
	if !inserted {
		if err := s.likes.Delete(ctx, userID, partyID); err != nil {
			return nil, err
		}
		supported = false
	}

	count, err := s.likes.CountByParty(ctx, partyID)
	if err != nil {
		return nil, err
	}

	if s.metricsReg != nil {
		state := "off"
		if supported {
			state = "on"
		}
		s.metricsReg.SupportTogglesTotal.WithLabelValues(state).Inc()
	}

	return &dtos.SupportToggleResponse{
		Supported:    supported,
		SupportCount: count,
	}, nil
}
