package services

import (
	"context"
	"io"

	"github.com/Toyowa5296/poliform/internal/common"
	"github.com/Toyowa5296/poliform/internal/db/repositories"
	"github.com/Toyowa5296/poliform/internal/models/dtos"
)

// ProfileService reads and edits the caller's own profile.
type ProfileService struct {
	profiles *repositories.UserProfileRepository
	storage  *common.StorageService
}

func NewProfileService(profiles *repositories.UserProfileRepository, storage *common.StorageService) *ProfileService {
	return &ProfileService{profiles: profiles, storage: storage}
}

// Get returns the caller's profile.
func (s *ProfileService) Get(ctx context.Context, userID string) (*dtos.ProfileResponse, error) {
	profile, err := s.profiles.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	return &dtos.ProfileResponse{
		ID:         profile.ID,
		Email:      profile.Email,
		Name:       profile.Name,
		Bio:        profile.Bio,
		AvatarURL:  profile.AvatarURL,
		Birthplace: profile.Birthplace,
		Birthday:   profile.Birthday,
		XURL:       profile.XURL,
		WebsiteURL: profile.WebsiteURL,
		IsPublic:   profile.IsPublic,
		Interests:  profile.Interests,
	}, nil
}

// Update replaces the mutable fields wholesale, as the edit form submits them.
func (s *ProfileService) Update(ctx context.Context, userID string, req dtos.ProfileUpdateRequest) (*dtos.ProfileResponse, error) {
	profile, err := s.profiles.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	profile.Name = req.Name
	profile.Bio = req.Bio
	profile.Birthplace = req.Birthplace
	profile.Birthday = req.Birthday
	profile.XURL = req.XURL
	profile.WebsiteURL = req.WebsiteURL
	profile.IsPublic = req.IsPublic
	profile.Interests = req.Interests

	if err := s.profiles.Update(ctx, profile); err != nil {
		return nil, err
	}

	return s.Get(ctx, userID)
}

// SetAvatar stores the uploaded file and records its public URL. The previous
// file, if any, is left behind.
func (s *ProfileService) SetAvatar(ctx context.Context, userID, filename string, content io.Reader) (string, error) {
	url, err := s.storage.Save(filename, content)
	if err != nil {
		return "", err
	}

	if err := s.profiles.SetAvatarURL(ctx, userID, url); err != nil {
		return "", err
	}
	return url, nil
}
