package seed

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/alexanderramin/skilltrade/internal/domain"
	"github.com/go-playground/validator/v10"
)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name, _, _ := strings.Cut(fld.Tag.Get("yaml"), ",")
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

// Validate checks field shapes and cross references. It returns every
// problem found rather than stopping at the first.
func Validate(doc *Document) []error {
	var errs []error
	if err := validate.Struct(doc); err != nil {
		var fieldErrs validator.ValidationErrors
		if !errors.As(err, &fieldErrs) {
			return []error{err}
		}
		for _, fe := range fieldErrs {
			errs = append(errs, fmt.Errorf("%s: %s", fieldPath(fe), describe(fe)))
		}
	}
	return append(errs, validateReferences(doc)...)
}

func fieldPath(fe validator.FieldError) string {
	ns := fe.Namespace()
	if _, rest, ok := strings.Cut(ns, "."); ok {
		return rest
	}
	return ns
}

func describe(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "is required"
	case "oneof":
		return fmt.Sprintf("invalid value %q (expected one of: %s)", fmt.Sprint(fe.Value()), fe.Param())
	case "min":
		return fmt.Sprintf("must be at least %s", fe.Param())
	case "max":
		return fmt.Sprintf("must be at most %s", fe.Param())
	case "len":
		return fmt.Sprintf("must have exactly %s entries", fe.Param())
	case "email":
		return fmt.Sprintf("invalid email %q", fmt.Sprint(fe.Value()))
	case "url":
		return fmt.Sprintf("invalid URL %q", fmt.Sprint(fe.Value()))
	default:
		return fmt.Sprintf("failed %q check", fe.Tag())
	}
}

func validateReferences(doc *Document) []error {
	var errs []error

	candidates := make(map[string]bool)
	for i, c := range doc.Candidates {
		if c.ID == "" {
			continue
		}
		if candidates[c.ID] {
			errs = append(errs, fmt.Errorf("candidates[%d].id: duplicate id %q", i, c.ID))
		}
		candidates[c.ID] = true
	}

	orgs := make(map[string]bool)
	for i, o := range doc.Organizations {
		if o.ID == "" {
			continue
		}
		if orgs[o.ID] {
			errs = append(errs, fmt.Errorf("organizations[%d].id: duplicate id %q", i, o.ID))
		}
		orgs[o.ID] = true
	}

	projects := make(map[string]bool)
	for i, p := range doc.Projects {
		prefix := fmt.Sprintf("projects[%d]", i)
		if p.ID != "" {
			if projects[p.ID] {
				errs = append(errs, fmt.Errorf("%s.id: duplicate id %q", prefix, p.ID))
			}
			projects[p.ID] = true
		}
		if p.OrganizationID != "" && !orgs[p.OrganizationID] {
			errs = append(errs, fmt.Errorf("%s.organization_id: unknown organization %q", prefix, p.OrganizationID))
		}
		errs = append(errs, validateSelection(prefix, p, candidates)...)
	}

	locked := make(map[string]bool)
	for i, e := range doc.Escrow {
		prefix := fmt.Sprintf("escrow[%d]", i)
		if e.ProjectID != "" && !projects[e.ProjectID] {
			errs = append(errs, fmt.Errorf("%s.project_id: unknown project %q", prefix, e.ProjectID))
		}
		if e.Status == string(domain.EscrowLocked) {
			if locked[e.ProjectID] {
				errs = append(errs, fmt.Errorf("%s: project %q already has a locked transaction", prefix, e.ProjectID))
			}
			locked[e.ProjectID] = true
		}
	}

	for i, c := range doc.Certificates {
		prefix := fmt.Sprintf("certificates[%d]", i)
		if c.CandidateID != "" && !candidates[c.CandidateID] {
			errs = append(errs, fmt.Errorf("%s.candidate_id: unknown candidate %q", prefix, c.CandidateID))
		}
		if c.ProjectID != "" && !projects[c.ProjectID] {
			errs = append(errs, fmt.Errorf("%s.project_id: unknown project %q", prefix, c.ProjectID))
		}
	}

	return errs
}

// validateSelection enforces that a selected candidate exists exactly when
// the status implies one, and that at most one application is accepted.
func validateSelection(prefix string, p ProjectSeed, candidates map[string]bool) []error {
	var errs []error
	status := domain.ProjectStatus(domain.CoalesceStr(p.Status, string(domain.ProjectOpen)))

	switch {
	case status.HasSelectedCandidate() && p.SelectedCandidateID == "":
		errs = append(errs, fmt.Errorf("%s.selected_candidate_id: required when status is %s", prefix, status))
	case !status.HasSelectedCandidate() && p.SelectedCandidateID != "":
		errs = append(errs, fmt.Errorf("%s.selected_candidate_id: must be empty when status is %s", prefix, status))
	case p.SelectedCandidateID != "" && !candidates[p.SelectedCandidateID]:
		errs = append(errs, fmt.Errorf("%s.selected_candidate_id: unknown candidate %q", prefix, p.SelectedCandidateID))
	}

	accepted := 0
	appIDs := make(map[string]bool)
	for j, a := range p.Applications {
		if a.ID != "" && appIDs[a.ID] {
			errs = append(errs, fmt.Errorf("%s.applications[%d].id: duplicate id %q", prefix, j, a.ID))
		}
		appIDs[a.ID] = true
		if a.CandidateID != "" && !candidates[a.CandidateID] {
			errs = append(errs, fmt.Errorf("%s.applications[%d].candidate_id: unknown candidate %q", prefix, j, a.CandidateID))
		}
		if a.Status == string(domain.ApplicationAccepted) {
			accepted++
		}
	}
	if accepted > 1 {
		errs = append(errs, fmt.Errorf("%s.applications: %d accepted applications, at most one allowed", prefix, accepted))
	}
	return errs
}
