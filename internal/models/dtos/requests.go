package dtos

type SignupRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	Name     string `json:"name"`
}

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type PartyCreateRequest struct {
	Name          string   `json:"name"`
	Slogan        *string  `json:"slogan"`
	Ideology      string   `json:"ideology"`
	FoundedAt     *string  `json:"founded_at"`
	LeaderName    *string  `json:"leader_name"`
	Location      *string  `json:"location"`
	ActivityArea  *string  `json:"activity_area"`
	Website       *string  `json:"website"`
	ContactEmail  *string  `json:"contact_email"`
	Activities    *string  `json:"activities"`
	ActivitiesURL *string  `json:"activities_url"`
	TagIDs        []string `json:"tag_ids"`
	PolicyPillars []string `json:"policy_pillars"`
}

type PartyUpdateRequest struct {
	Name          string  `json:"name"`
	Slogan        *string `json:"slogan"`
	Ideology      string  `json:"ideology"`
	FoundedAt     *string `json:"founded_at"`
	LeaderName    *string `json:"leader_name"`
	Location      *string `json:"location"`
	ActivityArea  *string `json:"activity_area"`
	Website       *string `json:"website"`
	ContactEmail  *string `json:"contact_email"`
	Activities    *string `json:"activities"`
	ActivitiesURL *string `json:"activities_url"`
}

type SetTagsRequest struct {
	TagIDs []string `json:"tag_ids"`
}

type CommentRequest struct {
	Content string `json:"content"`
}

type PillarRequest struct {
	Content string `json:"content"`
}

type ProfileUpdateRequest struct {
	Name       string   `json:"name"`
	Bio        *string  `json:"bio"`
	Birthplace *string  `json:"birthplace"`
	Birthday   *string  `json:"birthday"`
	XURL       *string  `json:"x_url"`
	WebsiteURL *string  `json:"website_url"`
	IsPublic   bool     `json:"is_public"`
	Interests  []string `json:"interests"`
}
