package domain

import (
	"strconv"
	"strings"
)

// Bounds for the skill rating carried by UserToSkillConnector.
const (
	MinSkillLevel = 1
	MaxSkillLevel = 5
	MinSkillYears = 1
)

// UserToSkillConnector records that a user holds a skill, optionally with a
// self-assessed level and years of experience.
type UserToSkillConnector struct {
	SkillID string     `json:"skillId"         validate:"required"`
	UserID  string     `json:"userId"          validate:"required"`
	Level   FlexString `json:"level,omitempty"`
	Years   FlexString `json:"years,omitempty"`
}

func (c *UserToSkillConnector) Normalize() {
	c.SkillID = strings.TrimSpace(c.SkillID)
	c.UserID = strings.TrimSpace(c.UserID)
}

// Validate enforces the level and years ranges when they are present.
func (c *UserToSkillConnector) Validate() error {
	if c.Level != "" {
		n, err := strconv.Atoi(string(c.Level))
		if err != nil || n < MinSkillLevel || n > MaxSkillLevel {
			return NewValidationError("level", "must be an integer between 1 and 5", ErrValidation)
		}
	}
	if c.Years != "" {
		n, err := strconv.Atoi(string(c.Years))
		if err != nil || n < MinSkillYears {
			return NewValidationError("years", "must be an integer of at least 1", ErrValidation)
		}
	}
	return nil
}

// SkillToSkillGroupConnector places a skill in a skill group.
type SkillToSkillGroupConnector struct {
	SkillID      string `json:"skillId"      validate:"required"`
	SkillGroupID string `json:"skillGroupId" validate:"required"`
}

func (c *SkillToSkillGroupConnector) Normalize() {
	c.SkillID = strings.TrimSpace(c.SkillID)
	c.SkillGroupID = strings.TrimSpace(c.SkillGroupID)
}

// RoleToAttributeConnector grants an attribute to a role.
type RoleToAttributeConnector struct {
	RoleID      string `json:"roleId"      validate:"required"`
	AttributeID string `json:"attributeId" validate:"required"`
}

func (c *RoleToAttributeConnector) Normalize() {
	c.RoleID = strings.TrimSpace(c.RoleID)
	c.AttributeID = strings.TrimSpace(c.AttributeID)
}

// UserToOfficeConnector places a user at an office.
type UserToOfficeConnector struct {
	UserID   string `json:"userId"   validate:"required"`
	OfficeID string `json:"officeId" validate:"required"`
}

func (c *UserToOfficeConnector) Normalize() {
	c.UserID = strings.TrimSpace(c.UserID)
	c.OfficeID = strings.TrimSpace(c.OfficeID)
}

// UserToAssignmentConnector staffs a user on an assignment.
type UserToAssignmentConnector struct {
	UserID       string `json:"userId"       validate:"required"`
	AssignmentID string `json:"assignmentId" validate:"required"`
}

func (c *UserToAssignmentConnector) Normalize() {
	c.UserID = strings.TrimSpace(c.UserID)
	c.AssignmentID = strings.TrimSpace(c.AssignmentID)
}

// Access grants a role access to an attribute. The persistence API stores it
// with snake_case keys, unlike the other connectors.
type Access struct {
	RoleID      string `json:"role_id"      validate:"required"`
	AttributeID string `json:"attribute_id" validate:"required"`
}

func (c *Access) Normalize() {
	c.RoleID = strings.TrimSpace(c.RoleID)
	c.AttributeID = strings.TrimSpace(c.AttributeID)
}
