package scenario

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"reflect"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"
)

// Actions understood by the runner.
const (
	ActionCreateProject = "create_project"
	ActionUpdateProject = "update_project"
	ActionApply         = "apply"
	ActionAccept        = "accept"
	ActionReject        = "reject"
	ActionFund          = "fund"
	ActionSubmit        = "submit"
	ActionApprove       = "approve"
	ActionRelease       = "release"
	ActionCertificate   = "certificate"
)

// Script is an ordered list of marketplace actions.
type Script struct {
	Name  string `yaml:"name"`
	Steps []Step `yaml:"steps" validate:"required,min=1,dive"`
}

// Step is one action. Which fields apply depends on Action; project and
// application fields accept either a stored id or an alias set with As.
type Step struct {
	Action          string        `yaml:"action" validate:"required,oneof=create_project update_project apply accept reject fund submit approve release certificate"`
	As              string        `yaml:"as"`
	Project         string        `yaml:"project"`
	Candidate       string        `yaml:"candidate"`
	Application     string        `yaml:"application"`
	Milestone       string        `yaml:"milestone"`
	Submission      string        `yaml:"submission"`
	Rating          int           `yaml:"rating" validate:"omitempty,min=1,max=5"`
	Comment         string        `yaml:"comment"`
	Amount          *float64      `yaml:"amount"`
	CoverLetter     string        `yaml:"cover_letter"`
	VideoPitchURL   string        `yaml:"video_pitch_url" validate:"omitempty,url"`
	NewProject      *ProjectSpec  `yaml:"new_project"`
	Patch           *ProjectPatch `yaml:"patch"`
	ExpectError     string        `yaml:"expect_error"`
	ContinueOnError bool          `yaml:"continue_on_error"`
}

// ProjectSpec describes a project created by a script.
type ProjectSpec struct {
	OrganizationID  string     `yaml:"organization_id" validate:"required"`
	Title           string     `yaml:"title" validate:"required"`
	Description     string     `yaml:"description"`
	Type            string     `yaml:"type" validate:"required,oneof=micro-internship project-gig"`
	Status          string     `yaml:"status" validate:"omitempty,oneof=draft open"`
	Skills          []string   `yaml:"skills"`
	MentorshipOffer string     `yaml:"mentorship_offer"`
	Deliverables    []string   `yaml:"deliverables"`
	Duration        string     `yaml:"duration"`
	Compensation    float64    `yaml:"compensation" validate:"min=0"`
	Deadline        *time.Time `yaml:"deadline"`
}

// ProjectPatch lists the project fields update_project may change.
type ProjectPatch struct {
	Title           *string   `yaml:"title"`
	Description     *string   `yaml:"description"`
	Status          *string   `yaml:"status" validate:"omitempty,oneof=draft open in-progress mid-check completed cancelled"`
	Skills          *[]string `yaml:"skills"`
	MentorshipOffer *string   `yaml:"mentorship_offer"`
	Duration        *string   `yaml:"duration"`
	Compensation    *float64  `yaml:"compensation" validate:"omitempty,min=0"`
}

// requiredFields lists the step fields each action needs besides Action.
var requiredFields = map[string][]string{
	ActionCreateProject: {"new_project"},
	ActionUpdateProject: {"project", "patch"},
	ActionApply:         {"project", "candidate", "cover_letter"},
	ActionAccept:        {"project", "application"},
	ActionReject:        {"project", "application"},
	ActionFund:          {"project", "amount"},
	ActionSubmit:        {"project"},
	ActionApprove:       {"project", "rating", "comment"},
	ActionRelease:       {"project"},
	ActionCertificate:   {"project"},
}

var validate = func() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name, _, _ := strings.Cut(fld.Tag.Get("yaml"), ",")
		return name
	})
	return v
}()

// Load reads and validates a script file.
func Load(path string) (*Script, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return Parse(data)
}

// Parse decodes and validates a script.
func Parse(data []byte) (*Script, error) {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)

	var s Script
	if err := dec.Decode(&s); err != nil {
		return nil, fmt.Errorf("parsing scenario: %w", err)
	}
	if err := s.Validate(); err != nil {
		return nil, err
	}
	return &s, nil
}

// Validate checks field shapes and the per-action required fields.
func (s *Script) Validate() error {
	var errs []error
	if err := validate.Struct(s); err != nil {
		var fieldErrs validator.ValidationErrors
		if !errors.As(err, &fieldErrs) {
			return err
		}
		for _, fe := range fieldErrs {
			_, path, _ := strings.Cut(fe.Namespace(), ".")
			errs = append(errs, fmt.Errorf("%s: failed %q check", path, fe.Tag()))
		}
	}
	for i, st := range s.Steps {
		for _, field := range st.missing() {
			errs = append(errs, fmt.Errorf("steps[%d]: %s requires %s", i, st.Action, field))
		}
	}
	return errors.Join(errs...)
}

func (st Step) missing() []string {
	var out []string
	for _, field := range requiredFields[st.Action] {
		var present bool
		switch field {
		case "new_project":
			present = st.NewProject != nil
		case "patch":
			present = st.Patch != nil
		case "project":
			present = st.Project != ""
		case "candidate":
			present = st.Candidate != ""
		case "cover_letter":
			present = st.CoverLetter != ""
		case "application":
			present = st.Application != ""
		case "amount":
			present = st.Amount != nil
		case "rating":
			present = st.Rating != 0
		case "comment":
			present = st.Comment != ""
		}
		if !present {
			out = append(out, field)
		}
	}
	return out
}
