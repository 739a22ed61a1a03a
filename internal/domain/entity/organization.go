package entity

// OrganizationType classifies a node of the organization directory.
type OrganizationType string

const (
	OrganizationTypeMinister       OrganizationType = "MINISTER"
	OrganizationTypeStateMinister  OrganizationType = "STATE_MINISTER"
	OrganizationTypeChiefExecutive OrganizationType = "CHIEF_EXECUTIVE"
	OrganizationTypeLeadExecutive  OrganizationType = "LEAD_EXECUTIVE"
	OrganizationTypeExecutive      OrganizationType = "EXECUTIVE"
	OrganizationTypeTeamLead       OrganizationType = "TEAM_LEAD"
	OrganizationTypeDesk           OrganizationType = "DESK"
)

// Organization is an entry of the organization directory.
type Organization struct {
	ID       int64
	Name     string
	Type     OrganizationType
	ParentID *int64
}

// UserRole is the role a user holds inside their organization.
type UserRole string

const (
	UserRoleAdmin     UserRole = "ADMIN"
	UserRolePlanner   UserRole = "PLANNER"
	UserRoleEvaluator UserRole = "EVALUATOR"
)

// IsValid reports whether the role is known.
func (r UserRole) IsValid() bool {
	return r == UserRoleAdmin || r == UserRolePlanner || r == UserRoleEvaluator
}

// CanEditPlans reports whether the role may change plan content.
func (r UserRole) CanEditPlans() bool {
	return r == UserRolePlanner || r == UserRoleAdmin
}

// CanReviewPlans reports whether the role may approve or reject plans.
func (r UserRole) CanReviewPlans() bool {
	return r == UserRoleEvaluator
}
