package stub

import (
	"net/http"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/Dharshika-112/Skill-Gap-Analyzer-sub001/internal/core/domain"
)

type roleTable struct {
	mu    sync.Mutex
	items []domain.Role
}

func newRoleTable() *roleTable {
	return &roleTable{}
}

// roleRequest is the admin service's create/update body. Owned by the
// transport layer so the wire contract is pinned independently of internal
// types.
type roleRequest struct {
	Title           string `json:"title" validate:"required"`
	CardSubtitle    string `json:"cardSubtitle"`
	Overview        string `json:"overview"`
	Order           int    `json:"order"`
	IsActive        *bool  `json:"isActive"`
	ExperienceLevel string `json:"experienceLevel" validate:"omitempty,oneof=entry mid senior"`
	IndustryDemand  string `json:"industryDemand"  validate:"omitempty,oneof=low medium high"`
	RemoteWork      bool   `json:"remoteWork"`
	SalaryRange     struct {
		Min      int    `json:"min" validate:"gte=0"`
		Max      int    `json:"max" validate:"gte=0"`
		Currency string `json:"currency"`
	} `json:"salaryRange"`

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

type roleHandlers struct {
	roles *roleTable
	log   zerolog.Logger
}

func newRoleHandlers(roles *roleTable, log zerolog.Logger) *roleHandlers {
	return &roleHandlers{roles: roles, log: log}
}

func (h *roleHandlers) list(c echo.Context) error {
	h.roles.mu.Lock()
	out := make([]domain.Role, len(h.roles.items))
	copy(out, h.roles.items)
	h.roles.mu.Unlock()
	return c.JSON(http.StatusOK, out)
}

func (h *roleHandlers) create(c echo.Context) error {
	var req roleRequest
	if err := c.Bind(&req); err != nil {
		return apiError(c, http.StatusBadRequest, "Invalid payload", "request body must be JSON")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	now := time.Now().UTC()
	role := req.toDomain()
	role.RoleID = uuid.NewString()
	role.CreatedAt = now
	role.UpdatedAt = now
	if req.IsActive != nil {
		role.IsActive = *req.IsActive
	}

	h.roles.mu.Lock()
	h.roles.items = append(h.roles.items, role)
	h.roles.mu.Unlock()

	h.log.Info().Str("role_id", role.RoleID).Str("title", role.Title).Msg("stub: role created")
	return c.JSON(http.StatusCreated, role)
}

func (h *roleHandlers) update(c echo.Context) error {
	var req roleRequest
	if err := c.Bind(&req); err != nil {
		return apiError(c, http.StatusBadRequest, "Invalid payload", "request body must be JSON")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	roleID := c.Param("roleId")
	h.roles.mu.Lock()
	defer h.roles.mu.Unlock()
	for i := range h.roles.items {
		if h.roles.items[i].RoleID != roleID {
			continue
		}
		existing := h.roles.items[i]
		role := req.toDomain()
		// roleId and createdAt are immutable; the active flag only moves
		// through the toggle endpoint.
		role.RoleID = existing.RoleID
		role.CreatedAt = existing.CreatedAt
		role.IsActive = existing.IsActive
		role.UpdatedAt = time.Now().UTC()
		h.roles.items[i] = role
		return c.JSON(http.StatusOK, role)
	}
	return apiError(c, http.StatusNotFound, "Not found", "Role not found")
}

func (h *roleHandlers) toggle(c echo.Context) error {
	roleID := c.Param("roleId")
	h.roles.mu.Lock()
	defer h.roles.mu.Unlock()
	for i := range h.roles.items {
		if h.roles.items[i].RoleID != roleID {
			continue
		}
		h.roles.items[i].IsActive = !h.roles.items[i].IsActive
		h.roles.items[i].UpdatedAt = time.Now().UTC()
		return c.JSON(http.StatusOK, map[string]any{
			"success":  true,
			"isActive": h.roles.items[i].IsActive,
		})
	}
	return apiError(c, http.StatusNotFound, "Not found", "Role not found")
}

func (h *roleHandlers) remove(c echo.Context) error {
	roleID := c.Param("roleId")
	h.roles.mu.Lock()
	defer h.roles.mu.Unlock()
	for i := range h.roles.items {
		if h.roles.items[i].RoleID != roleID {
			continue
		}
		h.roles.items = append(h.roles.items[:i], h.roles.items[i+1:]...)
		return c.JSON(http.StatusOK, map[string]any{"success": true})
	}
	return apiError(c, http.StatusNotFound, "Not found", "Role not found")
}

func (r roleRequest) toDomain() domain.Role {
	return domain.Role{
		Title:           r.Title,
		CardSubtitle:    r.CardSubtitle,
		Overview:        r.Overview,
		Order:           r.Order,
		ExperienceLevel: r.ExperienceLevel,
		IndustryDemand:  r.IndustryDemand,
		RemoteWork:      r.RemoteWork,
		SalaryRange: domain.SalaryRange{
			Min:      r.SalaryRange.Min,
			Max:      r.SalaryRange.Max,
			Currency: r.SalaryRange.Currency,
		},
		Responsibilities:  r.Responsibilities,
		MustHaveSkills:    r.MustHaveSkills,
		GoodToHaveSkills:  r.GoodToHaveSkills,
		Tools:             r.Tools,
		ExtraQuestions:    r.ExtraQuestions,
		InterviewTopics:   r.InterviewTopics,
		ProjectIdeas:      r.ProjectIdeas,
		LearningResources: r.LearningResources,
		FAQs:              r.FAQs,
	}
}

// seed loads a small realistic catalog.
func (t *roleTable) seed() {
	now := time.Now().UTC()
	t.mu.Lock()
	defer t.mu.Unlock()
	t.items = []domain.Role{
		{
			RoleID:          "data-analyst",
			Title:           "Data Analyst",
			CardSubtitle:    "Turn raw data into decisions",
			Overview:        "Analyzes business data and builds reporting that drives product and operations decisions.",
			Order:           1,
			IsActive:        true,
			ExperienceLevel: domain.ExperienceEntry,
			IndustryDemand:  domain.DemandHigh,
			RemoteWork:      true,
			SalaryRange:     domain.SalaryRange{Min: 55000, Max: 85000, Currency: "USD"},
			Responsibilities: []string{
				"Build and maintain dashboards",
				"Translate business questions into queries",
			},
			MustHaveSkills:   []string{"SQL", "Excel", "Data visualization"},
			GoodToHaveSkills: []string{"Python", "dbt"},
			Tools:            []string{"Tableau", "BigQuery"},
			InterviewTopics:  []string{"SQL joins and window functions", "Metric design"},
			CreatedAt:        now,
			UpdatedAt:        now,
		},
		{
			RoleID:          "backend-engineer",
			Title:           "Backend Engineer",
			CardSubtitle:    "Design and run the services behind the product",
			Overview:        "Owns API design, data modeling and the reliability of server-side systems.",
			Order:           2,
			IsActive:        true,
			ExperienceLevel: domain.ExperienceMid,
			IndustryDemand:  domain.DemandHigh,
			RemoteWork:      true,
			SalaryRange:     domain.SalaryRange{Min: 90000, Max: 140000, Currency: "USD"},
			MustHaveSkills:  []string{"Go or Java", "SQL", "HTTP APIs"},
			Tools:           []string{"PostgreSQL", "Docker", "Kubernetes"},
			ProjectIdeas:    []string{"Rate-limited URL shortener", "Event-driven order pipeline"},
			CreatedAt:       now,
			UpdatedAt:       now,
		},
		{
			RoleID:          "ml-engineer",
			Title:           "Machine Learning Engineer",
			CardSubtitle:    "Ship models to production",
			Overview:        "Bridges data science and engineering: training pipelines, serving, monitoring.",
			Order:           3,
			IsActive:        false,
			ExperienceLevel: domain.ExperienceSenior,
			IndustryDemand:  domain.DemandMedium,
			RemoteWork:      false,
			SalaryRange:     domain.SalaryRange{Min: 120000, Max: 180000, Currency: "USD"},
			MustHaveSkills:  []string{"Python", "PyTorch or TensorFlow", "MLOps"},
			CreatedAt:       now,
			UpdatedAt:       now,
		},
	}
}
