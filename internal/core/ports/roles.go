package ports

import (
	"context"

	"github.com/Dharshika-112/Skill-Gap-Analyzer-sub001/internal/core/domain"
)

// RolePayload is the sanitized body sent to the admin service on create and
// update. RoleID and timestamps are server-owned and never part of it.
// IsActive is a pointer because it is only sent on create (forced true);
// edits leave the active flag to the dedicated toggle operation.
type RolePayload struct {
	Title           string             `json:"title"`
	CardSubtitle    string             `json:"cardSubtitle"`
	Overview        string             `json:"overview"`
	Order           int                `json:"order"`
	IsActive        *bool              `json:"isActive,omitempty"`
	ExperienceLevel string             `json:"experienceLevel"`
	IndustryDemand  string             `json:"industryDemand"`
	RemoteWork      bool               `json:"remoteWork"`
	SalaryRange     domain.SalaryRange `json:"salaryRange"`

	Responsibilities  []string `json:"responsibilities"`
	MustHaveSkills    []string `json:"mustHaveSkills"`
	GoodToHaveSkills  []string `json:"goodToHaveSkills"`
	Tools             []string `json:"tools"`
	ExtraQuestions    []string `json:"extraQuestions"`
	InterviewTopics   []string `json:"interviewTopics"`
	ProjectIdeas      []string `json:"projectIdeas"`
	LearningResources []string `json:"learningResources"`
	FAQs              []string `json:"faqs"`
}

// RoleForm is the admin form as typed: numbers arrive as text and list fields
// may contain blank entries. BuildRolePayload turns it into a RolePayload.
// YAML tags support `roles add -f role.yaml` in the console.
type RoleForm struct {
	Title           string `yaml:"title"           validate:"required"`
	CardSubtitle    string `yaml:"cardSubtitle"`
	Overview        string `yaml:"overview"`
	Order           string `yaml:"order"`
	ExperienceLevel string `yaml:"experienceLevel" validate:"omitempty,oneof=entry mid senior"`
	IndustryDemand  string `yaml:"industryDemand"  validate:"omitempty,oneof=low medium high"`
	RemoteWork      bool   `yaml:"remoteWork"`
	SalaryMin       string `yaml:"salaryMin"`
	SalaryMax       string `yaml:"salaryMax"`
	SalaryCurrency  string `yaml:"salaryCurrency"`

	Responsibilities  []string `yaml:"responsibilities"`
	MustHaveSkills    []string `yaml:"mustHaveSkills"`
	GoodToHaveSkills  []string `yaml:"goodToHaveSkills"`
	Tools             []string `yaml:"tools"`
	ExtraQuestions    []string `yaml:"extraQuestions"`
	InterviewTopics   []string `yaml:"interviewTopics"`
	ProjectIdeas      []string `yaml:"projectIdeas"`
	LearningResources []string `yaml:"learningResources"`
	FAQs              []string `yaml:"faqs"`
}

// RoleAPI is the outbound contract with the admin role service.
type RoleAPI interface {
	ListRoles(ctx context.Context) ([]domain.Role, error)
	CreateRole(ctx context.Context, payload RolePayload) (*domain.Role, error)
	UpdateRole(ctx context.Context, roleID string, payload RolePayload) (*domain.Role, error)
	// ToggleRole flips the role's active flag server-side and returns the
	// value the server reports.
	ToggleRole(ctx context.Context, roleID string) (isActive bool, err error)
	DeleteRole(ctx context.Context, roleID string) error
}

// Confirmer asks the operator a yes/no question before a destructive action.
type Confirmer interface {
	Confirm(prompt string) bool
}

// Notifier surfaces operation outcomes to the operator.
type Notifier interface {
	Info(msg string)
	Error(msg string)
}

// ConsoleResult is the outcome of a console mutation. Cancelled is true when
// the operator declined a confirmation; no request was issued in that case.
type ConsoleResult struct {
	OK        bool
	Cancelled bool
	Message   string
}

// FetchResult reports a collection refresh. Loaded distinguishes a genuinely
// empty catalog from a failed fetch, which also leaves the cache empty.
type FetchResult struct {
	Loaded bool
	Count  int
}

// RoleConsole is the admin console over the role catalog. The collection it
// exposes is a cache of the server's, refreshed in full by FetchRoles and
// patched in place from each mutation's response.
type RoleConsole interface {
	FetchRoles(ctx context.Context) FetchResult
	ToggleRoleStatus(ctx context.Context, roleID string) ConsoleResult
	DeleteRole(ctx context.Context, roleID, title string) ConsoleResult
	AddRole(ctx context.Context, form RoleForm) ConsoleResult
	UpdateRole(ctx context.Context, roleID string, form RoleForm) ConsoleResult
	Roles() []domain.Role
}
