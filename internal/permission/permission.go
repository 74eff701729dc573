// Package permission holds the static role-permission table. It is a
// pure lookup layer: no state, no side effects.
package permission

import (
	"errors"
	"fmt"

	"planboard/internal/domain"
)

// ErrUnknownRole is returned when a role is not one of the nine
// enumerated values.
var ErrUnknownRole = errors.New("unknown role")

// Profile describes what a role may do across a project.
type Profile struct {
	EditableSections []domain.SectionKind
	CanComment       bool
	CanUpload        bool
	CanViewAll       bool
	IsAdmin          bool
}

// CanEdit reports whether the profile allows editing the given section.
func (p Profile) CanEdit(section domain.SectionKind) bool {
	for _, s := range p.EditableSections {
		if s == section {
			return true
		}
	}
	return false
}

// ProfileFor returns the permission profile for a role. The switch is
// exhaustive over the nine roles; anything else fails with
// ErrUnknownRole.
func ProfileFor(role domain.Role) (Profile, error) {
	switch role {
	case domain.RoleDesigner:
		return Profile{
			EditableSections: []domain.SectionKind{domain.SectionScope, domain.SectionTimeline},
			CanComment:       true,
			CanUpload:        true,
			CanViewAll:       true,
		}, nil
	case domain.RoleProductManager1, domain.RoleProductManager2, domain.RoleProductManager3:
		return Profile{
			EditableSections: []domain.SectionKind{
				domain.SectionScope, domain.SectionTimeline,
				domain.SectionResources, domain.SectionCommunication,
			},
			CanComment: true,
			CanUpload:  true,
			CanViewAll: true,
		}, nil
	case domain.RoleSponsor:
		return Profile{
			EditableSections: []domain.SectionKind{domain.SectionScope, domain.SectionResources},
			CanComment:       true,
			CanUpload:        true,
			CanViewAll:       true,
		}, nil
	case domain.RoleOperator1, domain.RoleOperator2, domain.RoleOperator3:
		return Profile{
			EditableSections: []domain.SectionKind{domain.SectionTimeline, domain.SectionRisks},
			CanComment:       true,
			CanUpload:        true,
			CanViewAll:       false,
		}, nil
	case domain.RoleAdmin:
		return Profile{
			EditableSections: append([]domain.SectionKind(nil), domain.Sections...),
			CanComment:       true,
			CanUpload:        true,
			CanViewAll:       true,
			IsAdmin:          true,
		}, nil
	default:
		return Profile{}, fmt.Errorf("role %q: %w", role, ErrUnknownRole)
	}
}

// projectCreators is the fixed allow-list for project creation. It is
// deliberately separate from the section-edit table.
var projectCreators = map[domain.Role]bool{
	domain.RoleProductManager1: true,
	domain.RoleProductManager2: true,
	domain.RoleProductManager3: true,
	domain.RoleSponsor:         true,
	domain.RoleAdmin:           true,
}

// CanCreateProjects reports whether the role is on the project-creation
// allow-list.
func CanCreateProjects(role domain.Role) bool {
	return projectCreators[role]
}
