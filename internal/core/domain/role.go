package domain

import "time"

// Experience level values accepted by the catalog.
const (
	ExperienceEntry  = "entry"
	ExperienceMid    = "mid"
	ExperienceSenior = "senior"
)

// Industry demand values accepted by the catalog.
const (
	DemandLow    = "low"
	DemandMedium = "medium"
	DemandHigh   = "high"
)

// SalaryRange is the annual compensation band advertised for a role.
type SalaryRange struct {
	Min      int    `json:"min"`
	Max      int    `json:"max"`
	Currency string `json:"currency"`
}

// Role is a career-role catalog entry owned by the admin backend. RoleID is
// assigned by the server on creation and never edited afterwards; CreatedAt
// and UpdatedAt are likewise server-assigned.
type Role struct {
	RoleID          string      `json:"roleId"`
	Title           string      `json:"title"`
	CardSubtitle    string      `json:"cardSubtitle"`
	Overview        string      `json:"overview"`
	Order           int         `json:"order"`
	IsActive        bool        `json:"isActive"`
	ExperienceLevel string      `json:"experienceLevel"`
	IndustryDemand  string      `json:"industryDemand"`
	RemoteWork      bool        `json:"remoteWork"`
	SalaryRange     SalaryRange `json:"salaryRange"`

	Responsibilities  []string `json:"responsibilities"`
	MustHaveSkills    []string `json:"mustHaveSkills"`
	GoodToHaveSkills  []string `json:"goodToHaveSkills"`
	Tools             []string `json:"tools"`
	ExtraQuestions    []string `json:"extraQuestions"`
	InterviewTopics   []string `json:"interviewTopics"`
	ProjectIdeas      []string `json:"projectIdeas"`
	LearningResources []string `json:"learningResources"`
	FAQs              []string `json:"faqs"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}
