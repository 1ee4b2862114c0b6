package services

import (
	"context"
	"errors"

	"github.com/Toyowa5296/poliform/internal/constants"
	"github.com/Toyowa5296/poliform/internal/db/repositories"
	"github.com/Toyowa5296/poliform/internal/metrics"
	"github.com/Toyowa5296/poliform/internal/models/dtos"
	models "github.com/Toyowa5296/poliform/internal/models/gorm"
)

// MembershipService drives the application lifecycle:
// apply (pending) -> approve/reject by the owner, or cancel by the applicant.
type MembershipService struct {
	parties    *repositories.PartyRepository
	members    *repositories.PartyMemberRepository
	metricsReg *metrics.MetricsRegistry
}

func NewMembershipService(parties *repositories.PartyRepository, members *repositories.PartyMemberRepository, metricsReg *metrics.MetricsRegistry) *MembershipService {
	return &MembershipService{
		parties:    parties,
		members:    members,
		metricsReg: metricsReg,
	}
}

// Apply files a pending application. The unique constraint on
// (user_id, party_id) is the only duplicate check, so a concurrent double
// submit still yields exactly one row.
func (s *MembershipService) Apply(ctx context.Context, userID, partyID string) (*dtos.MembershipResponse, error) {
	party, err := s.parties.GetByID(ctx, partyID)
	if err != nil {
		return nil, err
	}
	if party.UserID == userID {
		return nil, ErrOwnerCannotApply
	}

	member, err := s.members.Apply(ctx, userID, partyID)
	if err != nil {
		if errors.Is(err, repositories.ErrAlreadyApplied) {
			s.countApplication("duplicate")
		}
		return nil, err
	}

	s.countApplication("applied")
	return membershipResponse(member), nil
}

// Cancel withdraws the caller's own pending application. Once the row is
// gone the unique constraint no longer blocks a fresh Apply.
func (s *MembershipService) Cancel(ctx context.Context, userID, partyID string) error {
	if err := s.members.CancelPending(ctx, userID, partyID); err != nil {
		return err
	}
	s.countApplication("cancelled")
	return nil
}

// Approve promotes an applicant to an approved member holding the party's
// member role. Only the owner may call it. The role lookup happens before
// any write, so a missing role definition leaves the application pending.
func (s *MembershipService) Approve(ctx context.Context, callerID, partyID, applicantID string) (*dtos.MembershipResponse, error) {
	if err := s.requireOwner(ctx, callerID, partyID); err != nil {
		return nil, err
	}

	role, err := s.members.GetRoleByKey(ctx, partyID, constants.RoleMember)
	if err != nil {
		return nil, err
	}

	if err := s.members.Approve(ctx, applicantID, partyID, role.ID); err != nil {
		return nil, err
	}

	s.countApplication("approved")
	member, err := s.members.GetByUserAndParty(ctx, applicantID, partyID)
	if err != nil {
		return nil, err
	}
	return membershipResponse(member), nil
}

// Reject declines a pending application. Only the owner may call it.
func (s *MembershipService) Reject(ctx context.Context, callerID, partyID, applicantID string) (*dtos.MembershipResponse, error) {
	if err := s.requireOwner(ctx, callerID, partyID); err != nil {
		return nil, err
	}

	if err := s.members.Reject(ctx, applicantID, partyID); err != nil {
		return nil, err
	}

	s.countApplication("rejected")
	member, err := s.members.GetByUserAndParty(ctx, applicantID, partyID)
	if err != nil {
		return nil, err
	}
	return membershipResponse(member), nil
}

// Applicants lists pending applications with applicant profiles; owner only.
func (s *MembershipService) Applicants(ctx context.Context, callerID, partyID string) ([]dtos.MemberProfile, error) {
	if err := s.requireOwner(ctx, callerID, partyID); err != nil {
		return nil, err
	}

	pending, err := s.members.ListByPartyAndStatus(ctx, partyID, constants.StatusPending)
	if err != nil {
		return nil, err
	}

	applicants := make([]dtos.MemberProfile, 0, len(pending))
	for _, m := range pending {
		applicants = append(applicants, dtos.MemberProfile{
			ID:        m.User.ID,
			Name:      m.User.Name,
			AvatarURL: m.User.AvatarURL,
			Bio:       m.User.Bio,
		})
	}
	return applicants, nil
}

func (s *MembershipService) requireOwner(ctx context.Context, callerID, partyID string) error {
	party, err := s.parties.GetByID(ctx, partyID)
	if err != nil {
		return err
	}
	if party.UserID != callerID {
		return ErrNotOwner
	}
	return nil
}

func (s *MembershipService) countApplication(outcome string) {
	if s.metricsReg != nil {
		s.metricsReg.ApplicationsTotal.WithLabelValues(outcome).Inc()
	}
}

func membershipResponse(member *models.PartyMember) *dtos.MembershipResponse {
	return &dtos.MembershipResponse{
		PartyID: member.PartyID,
		UserID:  member.UserID,
		Status:  member.Status,
	}
}
