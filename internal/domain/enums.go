package domain

type ProjectType string

const (
	ProjectMicroInternship ProjectType = "micro-internship"
	ProjectGig             ProjectType = "project-gig"
)

type ProjectStatus string

const (
	ProjectDraft      ProjectStatus = "draft"
	ProjectOpen       ProjectStatus = "open"
	ProjectInProgress ProjectStatus = "in-progress"
	ProjectMidCheck   ProjectStatus = "mid-check"
	ProjectCompleted  ProjectStatus = "completed"
	ProjectCancelled  ProjectStatus = "cancelled"
)

// HasSelectedCandidate reports whether a project in this status carries a
// selected candidate.
func (s ProjectStatus) HasSelectedCandidate() bool {
	switch s {
	case ProjectInProgress, ProjectMidCheck, ProjectCompleted:
		return true
	}
	return false
}

type ApplicationStatus string

const (
	ApplicationPending  ApplicationStatus = "pending"
	ApplicationAccepted ApplicationStatus = "accepted"
	ApplicationRejected ApplicationStatus = "rejected"
)

type MilestoneStatus string

const (
	MilestonePending       MilestoneStatus = "pending"
	MilestoneInProgress    MilestoneStatus = "in-progress"
	MilestoneSubmitted     MilestoneStatus = "submitted"
	MilestoneNeedsRevision MilestoneStatus = "needs-revision"
	MilestoneApproved      MilestoneStatus = "approved"
	MilestoneCompleted     MilestoneStatus = "completed"
)

type EscrowStatus string

const (
	EscrowLocked   EscrowStatus = "locked"
	EscrowReleased EscrowStatus = "released"
	EscrowRefunded EscrowStatus = "refunded"
	EscrowDisputed EscrowStatus = "disputed"
)

type NotificationType string

const (
	NotifyApplication  NotificationType = "application"
	NotifyMilestone    NotificationType = "milestone"
	NotifyPayment      NotificationType = "payment"
	NotifyVerification NotificationType = "verification"
	NotifyMatch        NotificationType = "match"
	NotifyFeedback     NotificationType = "feedback"
	NotifySystem       NotificationType = "system"
)

// ValidProjectTypes is the canonical set of accepted project type strings.
var ValidProjectTypes = map[string]bool{
	"micro-internship": true, "project-gig": true,
}

// ValidProjectStatuses is the canonical set of accepted project status strings.
var ValidProjectStatuses = map[string]bool{
	"draft": true, "open": true, "in-progress": true,
	"mid-check": true, "completed": true, "cancelled": true,
}
