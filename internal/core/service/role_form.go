package service

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/Dharshika-112/Skill-Gap-Analyzer-sub001/internal/core/domain"
	"github.com/Dharshika-112/Skill-Gap-Analyzer-sub001/internal/core/ports"
)

var formValidator = validator.New()

// BuildRolePayload turns the raw admin form into the request body sent to the
// admin service:
//   - list fields drop entries that are blank after trimming
//   - order and salary bounds are parsed from text, blank or unparsable
//     values defaulting to zero
//
// The returned error is user-facing.
func BuildRolePayload(form ports.RoleForm) (ports.RolePayload, error) {
	if err := formValidator.Struct(form); err != nil {
		var ve validator.ValidationErrors
		if errors.As(err, &ve) {
			msgs := make([]string, 0, len(ve))
			for _, fe := range ve {
				msgs = append(msgs, fieldError(fe))
			}
			return ports.RolePayload{}, errors.New(strings.Join(msgs, "; "))
		}
		return ports.RolePayload{}, err
	}

	min := parseIntField(form.SalaryMin)
	max := parseIntField(form.SalaryMax)
	if strings.TrimSpace(form.SalaryMin) != "" && strings.TrimSpace(form.SalaryMax) != "" && min > max {
		return ports.RolePayload{}, errors.New("salary min must not exceed salary max")
	}

	return ports.RolePayload{
		Title:           form.Title,
		CardSubtitle:    form.CardSubtitle,
		Overview:        form.Overview,
		Order:           parseIntField(form.Order),
		ExperienceLevel: form.ExperienceLevel,
		IndustryDemand:  form.IndustryDemand,
		RemoteWork:      form.RemoteWork,
		SalaryRange: domain.SalaryRange{
			Min:      min,
			Max:      max,
			Currency: form.SalaryCurrency,
		},
		Responsibilities:  pruneBlank(form.Responsibilities),
		MustHaveSkills:    pruneBlank(form.MustHaveSkills),
		GoodToHaveSkills:  pruneBlank(form.GoodToHaveSkills),
		Tools:             pruneBlank(form.Tools),
		ExtraQuestions:    pruneBlank(form.ExtraQuestions),
		InterviewTopics:   pruneBlank(form.InterviewTopics),
		ProjectIdeas:      pruneBlank(form.ProjectIdeas),
		LearningResources: pruneBlank(form.LearningResources),
		FAQs:              pruneBlank(form.FAQs),
	}, nil
}

// pruneBlank keeps only entries with content, trimmed.
func pruneBlank(in []string) []string {
	out := make([]string, 0, len(in))
	for _, s := range in {
		if t := strings.TrimSpace(s); t != "" {
			out = append(out, t)
		}
	}
	return out
}

// parseIntField parses a numeric text input, treating blank or malformed
// values as zero.
func parseIntField(s string) int {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return 0
	}
	return n
}

// fieldError converts a single ValidationError into a human-readable message.
func fieldError(fe validator.FieldError) string {
	field := strings.ToLower(fe.Field())
	switch fe.Tag() {
	case "required":
		return field + " is required"
	case "oneof":
		return fmt.Sprintf("%s must be one of: %s", field, fe.Param())
	default:
		return fmt.Sprintf("%s failed validation (%s)", field, fe.Tag())
	}
}
