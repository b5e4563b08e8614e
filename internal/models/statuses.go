package models

type UserRole string
type JobStatus string
type ExperienceLevel string
type ApplicationStatus string
type ContractStatus string
type MeetingStatus string
type MeetingType string
type WorkProgressStatus string

const (
	UserRoleClient     UserRole = "client"
	UserRoleFreelancer UserRole = "freelancer"
	UserRoleAdmin      UserRole = "admin"

	JobStatusOpen       JobStatus = "open"
	JobStatusInProgress JobStatus = "in-progress"
	JobStatusCompleted  JobStatus = "completed"
	JobStatusCancelled  JobStatus = "cancelled"

	ExperienceLevelEntry        ExperienceLevel = "entry"
	ExperienceLevelIntermediate ExperienceLevel = "intermediate"
	ExperienceLevelExpert       ExperienceLevel = "expert"

	ApplicationStatusPending  ApplicationStatus = "pending"
	ApplicationStatusAccepted ApplicationStatus = "accepted"
	ApplicationStatusRejected ApplicationStatus = "rejected"

	ContractStatusActive     ContractStatus = "active"
	ContractStatusCompleted  ContractStatus = "completed"
	ContractStatusTerminated ContractStatus = "terminated"

	MeetingStatusScheduled MeetingStatus = "scheduled"
	MeetingStatusCompleted MeetingStatus = "completed"
	MeetingStatusCancelled MeetingStatus = "cancelled"

	MeetingTypeZoom       MeetingType = "zoom"
	MeetingTypeGoogleMeet MeetingType = "google_meet"
	MeetingTypeOther      MeetingType = "other"

	WorkProgressStatusPending  WorkProgressStatus = "pending"
	WorkProgressStatusApproved WorkProgressStatus = "approved"
	WorkProgressStatusRejected WorkProgressStatus = "rejected"
)
