// Package domain contains the persistence model for member portfolios: the
// exclusive join entity linking one photographer to one organization.
package domain

import (
	"time"

	"github.com/bwmarrin/snowflake"
	orgdomain "github.com/smallbiznis/photohub/internal/organization/domain"
	phdomain "github.com/smallbiznis/photohub/internal/photographer/domain"
	"github.com/smallbiznis/photohub/internal/rolestatus"
	"github.com/smallbiznis/photohub/pkg/patch"
)

// MemberPortfolio holds the membership of a photographer in an organization.
// Identity is the (OrganizationID, PhotographerID) pair; at most one record
// exists per pair. The role/status booleans are the denormalized cache of
// the canonical rolestatus mappings.
type MemberPortfolio struct {
	ID             snowflake.ID `gorm:"primaryKey" json:"id"`
	OrganizationID snowflake.ID `gorm:"not null;index;uniqueIndex:ux_portfolios_org_photographer,priority:1" json:"organization_id"`
	PhotographerID snowflake.ID `gorm:"not null;index;uniqueIndex:ux_portfolios_org_photographer,priority:2" json:"photographer_id"`

	Organization orgdomain.Organization `gorm:"foreignKey:OrganizationID" json:"organization"`
	Photographer phdomain.Photographer  `gorm:"foreignKey:PhotographerID" json:"photographer"`

	IsChairman     bool `gorm:"column:is_chairman" json:"is_chairman"`
	IsViceChairman bool `gorm:"column:is_vice_chairman" json:"is_vice_chairman"`
	IsTreasurer    bool `gorm:"column:is_treasurer" json:"is_treasurer"`
	IsSecretary    bool `gorm:"column:is_secretary" json:"is_secretary"`
	IsAdmin        bool `gorm:"column:is_admin" json:"is_admin"`

	IsFormerMember      bool `gorm:"column:is_former_member" json:"is_former_member"`
	IsHonoraryMember    bool `gorm:"column:is_honorary_member" json:"is_honorary_member"`
	IsProspectiveMember bool `gorm:"column:is_prospective_member" json:"is_prospective_member"`
	IsMentor            bool `gorm:"column:is_mentor" json:"is_mentor"`

	MembershipStart *time.Time `gorm:"column:membership_start" json:"membership_start,omitempty"`
	MembershipEnd   *time.Time `gorm:"column:membership_end" json:"membership_end,omitempty"`

	// SiteURL is the member's profile page within the club site.
	SiteURL         string `gorm:"type:text;column:site_url" json:"site_url"`
	LatestImage     string `gorm:"type:text;column:latest_image" json:"latest_image"`
	LatestThumbnail string `gorm:"type:text;column:latest_thumbnail" json:"latest_thumbnail"`

	CreatedAt time.Time `gorm:"not null;default:CURRENT_TIMESTAMP" json:"created_at"`
	UpdatedAt time.Time `gorm:"not null;default:CURRENT_TIMESTAMP" json:"updated_at"`
}

// TableName sets the database table name.
func (MemberPortfolio) TableName() string { return "member_portfolios" }

// MergeRolesAndStatus applies a partial mapping onto the cached booleans.
// Only keys present in rs are touched; missing keys leave the stored flags
// alone. The deceased status lives on the photographer and is ignored here.
// It reports whether any flag changed.
func (m *MemberPortfolio) MergeRolesAndStatus(rs rolestatus.RolesAndStatus) bool {
	changed := false
	apply := func(dst *bool, v bool, ok bool) {
		if ok && *dst != v {
			*dst = v
			changed = true
		}
	}

	v, ok := rs.Role[rolestatus.RoleChairman]
	apply(&m.IsChairman, v, ok)
	v, ok = rs.Role[rolestatus.RoleViceChairman]
	apply(&m.IsViceChairman, v, ok)
	v, ok = rs.Role[rolestatus.RoleTreasurer]
	apply(&m.IsTreasurer, v, ok)
	v, ok = rs.Role[rolestatus.RoleSecretary]
	apply(&m.IsSecretary, v, ok)
	v, ok = rs.Role[rolestatus.RoleAdmin]
	apply(&m.IsAdmin, v, ok)

	v, ok = rs.Status[rolestatus.StatusFormer]
	apply(&m.IsFormerMember, v, ok)
	v, ok = rs.Status[rolestatus.StatusHonorary]
	apply(&m.IsHonoraryMember, v, ok)
	v, ok = rs.Status[rolestatus.StatusProspective]
	apply(&m.IsProspectiveMember, v, ok)
	v, ok = rs.Status[rolestatus.StatusCoach]
	apply(&m.IsMentor, v, ok)

	return changed
}

// RolesAndStatus converts the cached booleans back to the canonical
// mappings. "Current" is derived: a member with none of former, honorary,
// prospective or coach set is a current member. The deceased status comes
// from the associated photographer, which must be loaded.
func (m *MemberPortfolio) RolesAndStatus() rolestatus.RolesAndStatus {
	rs := rolestatus.New()

	if m.Photographer.IsDeceased {
		rs.Status[rolestatus.StatusDeceased] = true
	}
	if m.IsFormerMember {
		rs.Status[rolestatus.StatusFormer] = true
	}
	if m.IsHonoraryMember {
		rs.Status[rolestatus.StatusHonorary] = true
	}
	if m.IsProspectiveMember {
		rs.Status[rolestatus.StatusProspective] = true
	}
	if m.IsMentor {
		rs.Status[rolestatus.StatusCoach] = true
	}
	if !m.IsFormerMember && !m.IsHonoraryMember && !m.IsProspectiveMember && !m.IsMentor {
		rs.Status[rolestatus.StatusCurrent] = true
	}

	if m.IsChairman {
		rs.Role[rolestatus.RoleChairman] = true
	}
	if m.IsViceChairman {
		rs.Role[rolestatus.RoleViceChairman] = true
	}
	if m.IsTreasurer {
		rs.Role[rolestatus.RoleTreasurer] = true
	}
	if m.IsSecretary {
		rs.Role[rolestatus.RoleSecretary] = true
	}
	if m.IsAdmin {
		rs.Role[rolestatus.RoleAdmin] = true
	}

	return rs
}

// RoleDescription builds the human-readable role/status phrase, e.g.
// "Chairman and secretary and current".
func (m *MemberPortfolio) RoleDescription(conjunction string) string {
	return m.RolesAndStatus().Description(conjunction)
}

// Attributes is the non-identifying attribute patch applied by
// FindCreateUpdate.
type Attributes struct {
	RolesAndStatus  rolestatus.RolesAndStatus
	MembershipStart patch.Field[time.Time]
	MembershipEnd   patch.Field[time.Time]
	SiteURL         patch.Field[string]
	LatestImage     patch.Field[string]
	LatestThumbnail patch.Field[string]
}
