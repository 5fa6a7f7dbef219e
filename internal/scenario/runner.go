package scenario

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/alexanderramin/skilltrade/internal/domain"
	"github.com/alexanderramin/skilltrade/internal/service"
	"go.uber.org/zap"
)

// Services are the contracts a script drives.
type Services struct {
	Projects     service.ProjectService
	Lifecycle    service.LifecycleService
	Escrow       service.EscrowService
	Certificates service.CertificateService
}

// StepResult records the outcome of one executed step.
type StepResult struct {
	Index  int
	Action string
	Detail string
	Err    error
}

// Report summarizes a run. ProjectIDs lists every project the script
// touched, in first-touch order.
type Report struct {
	Steps        []StepResult
	ProjectIDs   []string
	Certificates []*domain.Certificate
}

// Failed reports whether any step ended in an unexpected error.
func (r *Report) Failed() bool {
	for _, s := range r.Steps {
		if s.Err != nil {
			return true
		}
	}
	return false
}

type Runner struct {
	svc    Services
	logger *zap.Logger
}

func NewRunner(svc Services, logger *zap.Logger) *Runner {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Runner{svc: svc, logger: logger}
}

// run holds the per-execution alias table.
type run struct {
	*Runner
	aliases map[string]string
	report  *Report
	seen    map[string]bool
}

// Run executes the steps in order and stops at the first unexpected error
// unless the step sets continue_on_error. After an approval completes a
// project, a certificate is issued automatically.
func (r *Runner) Run(ctx context.Context, s *Script) (*Report, error) {
	x := &run{
		Runner:  r,
		aliases: make(map[string]string),
		report:  &Report{},
		seen:    make(map[string]bool),
	}
	for i, st := range s.Steps {
		detail, err := x.exec(ctx, st)
		err = checkExpectation(st, err)

		res := StepResult{Index: i + 1, Action: st.Action, Detail: detail, Err: err}
		x.report.Steps = append(x.report.Steps, res)

		fields := []zap.Field{zap.Int("step", res.Index), zap.String("action", st.Action)}
		if err != nil {
			r.logger.Warn("scenario step failed", append(fields, zap.Error(err))...)
			if !st.ContinueOnError {
				return x.report, fmt.Errorf("step %d (%s): %w", res.Index, st.Action, err)
			}
			continue
		}
		r.logger.Debug("scenario step", append(fields, zap.String("detail", detail))...)
	}
	return x.report, nil
}

func checkExpectation(st Step, err error) error {
	if st.ExpectError == "" {
		return err
	}
	if err == nil {
		return fmt.Errorf("expected error containing %q, got none", st.ExpectError)
	}
	if !strings.Contains(err.Error(), st.ExpectError) {
		return fmt.Errorf("expected error containing %q: %w", st.ExpectError, err)
	}
	return nil
}

func (x *run) exec(ctx context.Context, st Step) (string, error) {
	if st.Action == ActionCreateProject {
		return x.createProject(ctx, st)
	}

	projectID := x.resolve(st.Project)
	x.touch(projectID)

	switch st.Action {
	case ActionUpdateProject:
		if _, err := x.svc.Projects.Update(ctx, projectID, st.Patch.toDomain()); err != nil {
			return "", err
		}
		return "updated " + projectID, nil

	case ActionApply:
		app, err := x.svc.Projects.Apply(ctx, domain.ApplicationInput{
			ProjectID:     projectID,
			CandidateID:   st.Candidate,
			CoverLetter:   st.CoverLetter,
			VideoPitchURL: st.VideoPitchURL,
		})
		if err != nil {
			return "", err
		}
		x.alias(st.As, app.ID)
		return fmt.Sprintf("%s applied (match %d)", st.Candidate, app.MatchScore), nil

	case ActionAccept:
		p, err := x.svc.Lifecycle.AcceptApplication(ctx, projectID, x.resolve(st.Application))
		if err != nil {
			return "", err
		}
		return "selected " + p.SelectedCandidateID, nil

	case ActionReject:
		if _, err := x.svc.Lifecycle.RejectApplication(ctx, projectID, x.resolve(st.Application)); err != nil {
			return "", err
		}
		return "rejected " + st.Application, nil

	case ActionFund:
		tx, err := x.svc.Escrow.Fund(ctx, projectID, *st.Amount)
		if err != nil {
			return "", err
		}
		return fmt.Sprintf("locked %.2f", tx.Amount), nil

	case ActionSubmit:
		msID, err := x.milestone(ctx, projectID, st.Milestone)
		if err != nil {
			return "", err
		}
		if _, err := x.svc.Lifecycle.SubmitMilestone(ctx, projectID, msID, st.Submission); err != nil {
			return "", err
		}
		return "submitted " + msID, nil

	case ActionApprove:
		return x.approve(ctx, projectID, st)

	case ActionRelease:
		tx, err := x.svc.Escrow.Release(ctx, projectID)
		if err != nil {
			return "", err
		}
		if tx == nil {
			return "nothing locked", nil
		}
		return fmt.Sprintf("released %.2f", tx.Amount), nil

	case ActionCertificate:
		return x.issue(ctx, projectID)
	}
	return "", fmt.Errorf("unknown action %q", st.Action)
}

func (x *run) createProject(ctx context.Context, st Step) (string, error) {
	p, err := x.svc.Projects.Create(ctx, st.NewProject.toDomain())
	if err != nil {
		return "", err
	}
	x.alias(st.As, p.ID)
	x.touch(p.ID)
	return "created " + p.ID, nil
}

func (x *run) approve(ctx context.Context, projectID string, st Step) (string, error) {
	msID, err := x.milestone(ctx, projectID, st.Milestone)
	if err != nil {
		return "", err
	}
	res, err := x.svc.Lifecycle.ApproveMilestone(ctx, projectID, msID, service.FeedbackInput{
		Rating:  st.Rating,
		Comment: st.Comment,
	})
	if err != nil {
		return "", err
	}
	if !res.ProjectCompleted {
		return "approved " + msID, nil
	}
	detail, err := x.issue(ctx, projectID)
	if err != nil {
		return "", fmt.Errorf("issuing certificate after completion: %w", err)
	}
	return "approved " + msID + ", project completed, " + detail, nil
}

func (x *run) issue(ctx context.Context, projectID string) (string, error) {
	cert, err := x.svc.Certificates.Issue(ctx, projectID)
	if err != nil {
		return "", err
	}
	x.report.Certificates = append(x.report.Certificates, cert)
	return "certificate " + cert.ID, nil
}

// milestone resolves ref to a milestone id. ref may be an id, a 1-based
// order, or empty for the project's current milestone.
func (x *run) milestone(ctx context.Context, projectID, ref string) (string, error) {
	p, err := x.svc.Projects.GetByID(ctx, projectID)
	if err != nil {
		return "", err
	}
	if ref == "" {
		m, ok := p.CurrentMilestone()
		if !ok {
			return "", fmt.Errorf("project %s has no open milestone: %w", projectID, domain.ErrMilestoneNotFound)
		}
		return m.ID, nil
	}
	if p.MilestoneIndex(ref) >= 0 {
		return ref, nil
	}
	if order, convErr := strconv.Atoi(ref); convErr == nil && order >= 1 && order <= len(p.Milestones) {
		return p.Milestones[order-1].ID, nil
	}
	return "", fmt.Errorf("milestone %q on project %s: %w", ref, projectID, domain.ErrMilestoneNotFound)
}

func (x *run) resolve(ref string) string {
	if id, ok := x.aliases[ref]; ok {
		return id
	}
	return ref
}

func (x *run) alias(name, id string) {
	if name != "" {
		x.aliases[name] = id
	}
}

func (x *run) touch(projectID string) {
	if projectID == "" || x.seen[projectID] {
		return
	}
	x.seen[projectID] = true
	x.report.ProjectIDs = append(x.report.ProjectIDs, projectID)
}

func (s *ProjectSpec) toDomain() domain.ProjectInput {
	return domain.ProjectInput{
		OrganizationID:  s.OrganizationID,
		Title:           s.Title,
		Description:     s.Description,
		Type:            domain.ProjectType(s.Type),
		Status:          domain.ProjectStatus(s.Status),
		Skills:          s.Skills,
		MentorshipOffer: s.MentorshipOffer,
		Deliverables:    s.Deliverables,
		Duration:        s.Duration,
		Compensation:    s.Compensation,
		Deadline:        s.Deadline,
	}
}

func (p *ProjectPatch) toDomain() domain.ProjectPatch {
	out := domain.ProjectPatch{
		Title:           p.Title,
		Description:     p.Description,
		Skills:          p.Skills,
		MentorshipOffer: p.MentorshipOffer,
		Duration:        p.Duration,
		Compensation:    p.Compensation,
	}
	if p.Status != nil {
		status := domain.ProjectStatus(*p.Status)
		out.Status = &status
	}
	return out
}
