package rolestatus

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDescriptionChairmanAndSecretary(t *testing.T) {
	rs := New().
		WithRole(RoleChairman, true).
		WithRole(RoleSecretary, true)

	// living current member: suffixes are [chairman, secretary, current]
	assert.Equal(t, "Chairman and secretary and current", rs.Description("and"))
}

func TestDescriptionPlainMember(t *testing.T) {
	assert.Equal(t, "Current", New().Description("and"))
}

func TestDescriptionDeceasedFormer(t *testing.T) {
	rs := New().
		WithStatus(StatusDeceased, true).
		WithStatus(StatusFormer, true)
	assert.Equal(t, "Deceased former current", rs.Description("and"))
}

func TestDescriptionHonorarySuppressesFormerPrefix(t *testing.T) {
	rs := New().
		WithStatus(StatusFormer, true).
		WithStatus(StatusHonorary, true)
	assert.Equal(t, "Honorary", rs.Description("and"))
}

func TestDescriptionStatusQualifierPriority(t *testing.T) {
	rs := New().
		WithStatus(StatusProspective, true).
		WithStatus(StatusHonorary, true).
		WithStatus(StatusCoach, true)
	assert.Equal(t, "Prospective", rs.Description("and"))

	rs = New().
		WithStatus(StatusHonorary, true).
		WithStatus(StatusCoach, true)
	assert.Equal(t, "Honorary", rs.Description("and"))

	rs = New().WithStatus(StatusCoach, true)
	assert.Equal(t, "Coach", rs.Description("and"))
}

func TestDescriptionRoleOrderIsFixed(t *testing.T) {
	rs := New().
		WithRole(RoleAdmin, true).
		WithRole(RoleTreasurer, true).
		WithRole(RoleViceChairman, true)
	assert.Equal(t, "Vice-chairman and treasurer and admin and current", rs.Description("and"))
}

func TestDescriptionLocalizedConjunction(t *testing.T) {
	rs := New().WithRole(RoleSecretary, true)
	assert.Equal(t, "Secretary en current", rs.Description("en"))
}
