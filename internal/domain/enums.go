package domain

// Role identifies the caller's function in a project. Roles are assigned
// at login by the embedding host and never mutated by the core.
type Role string

const (
	RoleDesigner        Role = "designer"
	RoleProductManager1 Role = "product-manager-1"
	RoleProductManager2 Role = "product-manager-2"
	RoleProductManager3 Role = "product-manager-3"
	RoleSponsor         Role = "sponsor"
	RoleOperator1       Role = "operator-1"
	RoleOperator2       Role = "operator-2"
	RoleOperator3       Role = "operator-3"
	RoleAdmin           Role = "admin"
)

// Roles lists every assignable role in stable order.
var Roles = []Role{
	RoleDesigner,
	RoleProductManager1,
	RoleProductManager2,
	RoleProductManager3,
	RoleSponsor,
	RoleOperator1,
	RoleOperator2,
	RoleOperator3,
	RoleAdmin,
}

// SectionKind names one of the five project facets that permissions and
// comment threads are scoped to.
type SectionKind string

const (
	SectionScope         SectionKind = "scope"
	SectionTimeline      SectionKind = "timeline"
	SectionResources     SectionKind = "resources"
	SectionRisks         SectionKind = "risks"
	SectionCommunication SectionKind = "communication"
)

// Sections lists every section kind in stable order.
var Sections = []SectionKind{
	SectionScope,
	SectionTimeline,
	SectionResources,
	SectionRisks,
	SectionCommunication,
}

// ValidSections is the canonical set of accepted section kind strings.
var ValidSections = map[SectionKind]bool{
	SectionScope: true, SectionTimeline: true, SectionResources: true,
	SectionRisks: true, SectionCommunication: true,
}

type ReviewStatus string

const (
	ReviewPending  ReviewStatus = "pending"
	ReviewApproved ReviewStatus = "approved"
	ReviewRejected ReviewStatus = "rejected"
)

// RiskRating grades a risk's impact or probability.
type RiskRating string

const (
	RatingHigh   RiskRating = "High"
	RatingMedium RiskRating = "Medium"
	RatingLow    RiskRating = "Low"
)

type RiskExposure string

const (
	ExposureSevere   RiskExposure = "severe"
	ExposureElevated RiskExposure = "elevated"
	ExposureLow      RiskExposure = "low"
)
