package models

type RegisterRequest struct {
	Username  string `json:"username" validate:"required,min=3,max=50"`
	Email     string `json:"email" validate:"required,email"`
	Password  string `json:"password" validate:"required,min=6"`
	FirstName string `json:"first_name" validate:"max=100"`
	LastName  string `json:"last_name" validate:"max=100"`
}

// TokenRequest accepts either a username or an email as the login.
type TokenRequest struct {
	Username string `json:"username" validate:"required_without=Email"`
	Email    string `json:"email" validate:"omitempty,email"`
	Password string `json:"password" validate:"required"`
}

type AuthResponse struct {
	Token string `json:"token"`
	User  User   `json:"user"`
}

type ContentRequest struct {
	Title   string `json:"title" validate:"required,max=255"`
	Content string `json:"content" validate:"required"`
}

type SubscriptionsResponse struct {
	Journalists []Journalist `json:"journalists"`
	Publishers  []Publisher  `json:"publishers"`
}

type RoleApplicationRequest struct {
	AppliedRole UserRole `json:"applied_role" validate:"required,oneof=journalist editor publisher"`
	Motivation  string   `json:"motivation" validate:"required"`
}

type ApproveApplicationRequest struct {
	PublisherID *uint `json:"publisher_id"`
}

type ChangeRoleRequest struct {
	Role        UserRole `json:"role" validate:"required,oneof=reader journalist editor publisher admin"`
	PublisherID *uint    `json:"publisher_id"`
}

// ReviewResult is returned by the approval workflow. Warnings report
// notifications that could not be handed off; the review itself committed.
type ReviewResult struct {
	Article  *Article `json:"article"`
	Warnings []string `json:"warnings,omitempty"`
}

type NewsletterResult struct {
	Newsletter *Newsletter `json:"newsletter"`
	Warnings   []string    `json:"warnings,omitempty"`
}

// ContentQuery is the list query for articles and newsletters.
type ContentQuery struct {
	JournalistID *uint
	PublisherID  *uint
	Status       ArticleStatus
	Page         int
	PageSize     int
}

func (q ContentQuery) Offset() int {
	if q.Page < 1 {
		return 0
	}
	return (q.Page - 1) * q.PageSize
}

// ContentScope is what a viewer may see for a query; the repositories turn it
// into SQL.
type ContentScope struct {
	// Unrestricted skips the subscription restriction.
	Unrestricted  bool
	JournalistIDs []uint
	PublisherIDs  []uint
	// ApprovedOnly restricts articles to the approved status.
	ApprovedOnly bool
	Query        ContentQuery
}

// ApplicationResult is returned when an admin decides a role application.
type ApplicationResult struct {
	Application *RoleApplication `json:"application"`
	User        *User            `json:"user,omitempty"`
	Warnings    []string         `json:"warnings,omitempty"`
}
