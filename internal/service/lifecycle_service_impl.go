package service

import (
	"context"
	"fmt"

	"github.com/alexanderramin/skilltrade/internal/domain"
	"github.com/alexanderramin/skilltrade/internal/repository"
)

type lifecycleService struct {
	projects      repository.ProjectRepo
	escrow        EscrowService
	notifications NotificationService
	options
}

// NewLifecycleService wires the project state machine. notifications may be
// nil, in which case no notifications are sent.
func NewLifecycleService(
	projects repository.ProjectRepo,
	escrow EscrowService,
	notifications NotificationService,
	opts ...Option,
) LifecycleService {
	return &lifecycleService{
		projects:      projects,
		escrow:        escrow,
		notifications: notifications,
		options:       buildOptions(opts),
	}
}

func (s *lifecycleService) AcceptApplication(ctx context.Context, projectID, applicationID string) (p *domain.Project, err error) {
	fields := map[string]any{"project": projectID, "application": applicationID}
	defer s.observe(ctx, "accept-application", fields)(&err)

	p, err = s.projects.GetByID(ctx, projectID)
	if err != nil {
		return nil, err
	}
	before := make(map[string]domain.ApplicationStatus, len(p.Applicants))
	for _, a := range p.Applicants {
		before[a.ID] = a.Status
	}

	var accepted *domain.Application
	accepted, err = p.Accept(applicationID)
	if err != nil {
		return nil, err
	}
	if err = s.projects.Update(ctx, p); err != nil {
		return nil, fmt.Errorf("accepting application: %w", err)
	}
	fields["candidate"] = accepted.CandidateID

	s.notify(ctx, fields, domain.Notification{
		UserID:    accepted.CandidateID,
		Type:      domain.NotifyApplication,
		Title:     "Application accepted",
		Message:   fmt.Sprintf("You were selected for %q.", p.Title),
		ActionURL: projectURL(p.ID),
	})
	for _, a := range p.Applicants {
		if a.ID == applicationID || before[a.ID] == domain.ApplicationRejected {
			continue
		}
		s.notify(ctx, fields, rejectionNotice(p, a))
	}
	return p, nil
}

func (s *lifecycleService) RejectApplication(ctx context.Context, projectID, applicationID string) (p *domain.Project, err error) {
	fields := map[string]any{"project": projectID, "application": applicationID}
	defer s.observe(ctx, "reject-application", fields)(&err)

	p, err = s.projects.GetByID(ctx, projectID)
	if err != nil {
		return nil, err
	}
	var rejected *domain.Application
	rejected, err = p.Reject(applicationID)
	if err != nil {
		return nil, err
	}
	if err = s.projects.Update(ctx, p); err != nil {
		return nil, fmt.Errorf("rejecting application: %w", err)
	}
	s.notify(ctx, fields, rejectionNotice(p, *rejected))
	return p, nil
}

func (s *lifecycleService) SubmitMilestone(ctx context.Context, projectID, milestoneID, submission string) (p *domain.Project, err error) {
	fields := map[string]any{"project": projectID, "milestone": milestoneID}
	defer s.observe(ctx, "submit-milestone", fields)(&err)

	p, err = s.projects.GetByID(ctx, projectID)
	if err != nil {
		return nil, err
	}
	var m *domain.Milestone
	m, err = p.SubmitMilestone(milestoneID, submission)
	if err != nil {
		return nil, err
	}
	if err = s.projects.Update(ctx, p); err != nil {
		return nil, fmt.Errorf("submitting milestone: %w", err)
	}
	s.notify(ctx, fields, domain.Notification{
		UserID:    p.OrganizationID,
		Type:      domain.NotifyMilestone,
		Title:     "Milestone submitted",
		Message:   fmt.Sprintf("%q on %q is ready for review.", m.Title, p.Title),
		ActionURL: projectURL(p.ID),
	})
	return p, nil
}

// ApproveMilestone validates the feedback before touching any record. On
// the last milestone the project completes and its escrow is released in
// the same call.
func (s *lifecycleService) ApproveMilestone(ctx context.Context, projectID, milestoneID string, feedback FeedbackInput) (res *ApproveResult, err error) {
	fields := map[string]any{"project": projectID, "milestone": milestoneID}
	defer s.observe(ctx, "approve-milestone", fields)(&err)

	if err = domain.ValidateFeedbackComment(feedback.Comment); err != nil {
		return nil, err
	}

	var p *domain.Project
	p, err = s.projects.GetByID(ctx, projectID)
	if err != nil {
		return nil, err
	}
	now := s.clock()
	m, completed, err := p.ApproveMilestone(milestoneID, domain.NewMilestoneFeedback(feedback.Rating, feedback.Comment, now), now)
	if err != nil {
		return nil, err
	}
	if err = s.projects.Update(ctx, p); err != nil {
		return nil, fmt.Errorf("approving milestone: %w", err)
	}

	approved := *m
	res = &ApproveResult{Project: p, Milestone: &approved, ProjectCompleted: completed}
	fields["completed"] = completed

	s.notify(ctx, fields, domain.Notification{
		UserID:    p.SelectedCandidateID,
		Type:      domain.NotifyFeedback,
		Title:     "Milestone approved",
		Message:   fmt.Sprintf("%q on %q was approved.", m.Title, p.Title),
		ActionURL: projectURL(p.ID),
	})
	if !completed {
		return res, nil
	}

	res.Released, err = s.escrow.Release(ctx, p.ID)
	if err != nil {
		return nil, fmt.Errorf("releasing escrow for completed project %s: %w", p.ID, err)
	}
	if res.Released != nil {
		s.notify(ctx, fields, domain.Notification{
			UserID:    p.SelectedCandidateID,
			Type:      domain.NotifyPayment,
			Title:     "Payment released",
			Message:   fmt.Sprintf("$%.2f from %q has been released.", res.Released.Amount, p.Title),
			ActionURL: projectURL(p.ID),
		})
	}
	return res, nil
}

// notify sends n if a notification service is wired. Failures do not undo
// the transition; they are recorded on the use-case fields.
func (s *lifecycleService) notify(ctx context.Context, fields map[string]any, n domain.Notification) {
	if s.notifications == nil || n.UserID == "" {
		return
	}
	if _, err := s.notifications.Notify(ctx, n); err != nil {
		fields["notify_error"] = err.Error()
	}
}

func rejectionNotice(p *domain.Project, a domain.Application) domain.Notification {
	return domain.Notification{
		UserID:    a.CandidateID,
		Type:      domain.NotifyApplication,
		Title:     "Application not selected",
		Message:   fmt.Sprintf("Your application to %q was not selected.", p.Title),
		ActionURL: projectURL(p.ID),
	}
}

func projectURL(id string) string {
	return "/projects/" + id
}
