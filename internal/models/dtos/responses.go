package dtos

import (
	"time"

	"github.com/Toyowa5296/poliform/internal/constants"
)

type APIResponse struct {
	Status       string `json:"status"`
	Message      string `json:"message,omitempty"`
	ResponseTime string `json:"response_time"`
	Data         any    `json:"data,omitempty"`
}

type AuthResponse struct {
	Token     string    `json:"token"`
	UserID    string    `json:"user_id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	ExpiresAt time.Time `json:"expires_at"`
}

type TagResponse struct {
	ID       string  `json:"id"`
	Name     string  `json:"name"`
	Category *string `json:"category,omitempty"`
}

// TagCatalog groups the tag list by category for the filter UI.
type TagCatalog struct {
	Categories []TagCategory `json:"categories"`
}

type TagCategory struct {
	Category string        `json:"category"`
	Tags     []TagResponse `json:"tags"`
}

// PartySummary is the card-level view: party fields plus the derived counts
// the list endpoints attach from the batched stats queries.
type PartySummary struct {
	ID           string                 `json:"id"`
	Name         string                 `json:"name"`
	Slogan       *string                `json:"slogan,omitempty"`
	Ideology     string                 `json:"ideology"`
	LogoURL      *string                `json:"logo_url,omitempty"`
	LeaderName   *string                `json:"leader_name,omitempty"`
	ActivityArea *string                `json:"activity_area,omitempty"`
	FoundedAt    *string                `json:"founded_at,omitempty"`
	OwnerID      string                 `json:"owner_id"`
	OwnerName    string                 `json:"owner_name"`
	Tags         []TagResponse          `json:"tags"`
	SupportCount int                    `json:"support_count"`
	Supported    bool                   `json:"supported"`
	MemberCount  int                    `json:"member_count"`
	MemberStatus constants.MemberStatus `json:"member_status,omitempty"`
	CreatedAt    time.Time              `json:"created_at"`
}

type PartyListResponse struct {
	Parties []PartySummary `json:"parties"`
	Total   int            `json:"total"`
}

type MemberProfile struct {
	ID        string  `json:"id"`
	Name      string  `json:"name"`
	AvatarURL *string `json:"avatar_url,omitempty"`
	Bio       *string `json:"bio,omitempty"`
}

type CommentResponse struct {
	ID         string    `json:"id"`
	Content    string    `json:"content"`
	UserID     string    `json:"user_id"`
	AuthorName string    `json:"author_name"`
	CreatedAt  time.Time `json:"created_at"`
}

type PillarResponse struct {
	ID      string `json:"id"`
	Content string `json:"content"`
}

type PartyDetailResponse struct {
	PartySummary
	Location      *string           `json:"location,omitempty"`
	Website       *string           `json:"website,omitempty"`
	ContactEmail  *string           `json:"contact_email,omitempty"`
	Activities    *string           `json:"activities,omitempty"`
	ActivitiesURL *string           `json:"activities_url,omitempty"`
	PolicyPillars []PillarResponse  `json:"policy_pillars"`
	Members       []MemberProfile   `json:"members"`
	Comments      []CommentResponse `json:"comments"`
}

type ProfileResponse struct {
	ID         string   `json:"id"`
	Email      string   `json:"email"`
	Name       string   `json:"name"`
	Bio        *string  `json:"bio,omitempty"`
	AvatarURL  *string  `json:"avatar_url,omitempty"`
	Birthplace *string  `json:"birthplace,omitempty"`
	Birthday   *string  `json:"birthday,omitempty"`
	XURL       *string  `json:"x_url,omitempty"`
	WebsiteURL *string  `json:"website_url,omitempty"`
	IsPublic   bool     `json:"is_public"`
	Interests  []string `json:"interests"`
}

// MyPartiesResponse carries the owned / liked / joined sub-lists shown on the
// profile page.
type MyPartiesResponse struct {
	Owned  []PartySummary `json:"owned"`
	Liked  []PartySummary `json:"liked"`
	Joined []PartySummary `json:"joined"`
}

type SupportToggleResponse struct {
	Supported    bool `json:"supported"`
	SupportCount int  `json:"support_count"`
}

type MembershipResponse struct {
	PartyID string                 `json:"party_id"`
	UserID  string                 `json:"user_id"`
	Status  constants.MemberStatus `json:"status"`
}

type UploadResponse struct {
	URL string `json:"url"`
}
