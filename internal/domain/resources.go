package domain

import "strings"

// DefaultIcon is the Font Awesome class given to skills and skill groups
// created without one.
const DefaultIcon = "fa fa-flask"

// Customer is a client organisation.
type Customer struct {
	Name string `json:"name" validate:"required"`
}

func (c *Customer) Normalize() { c.Name = strings.TrimSpace(c.Name) }

// Skill is a competence a user can hold.
type Skill struct {
	Name string `json:"name" validate:"required"`
	Icon string `json:"icon"`
}

func (s *Skill) Normalize() {
	s.Name = strings.TrimSpace(s.Name)
	s.Icon = strings.TrimSpace(s.Icon)
	if s.Icon == "" {
		s.Icon = DefaultIcon
	}
}

// SkillGroup groups related skills.
type SkillGroup struct {
	Name string `json:"name" validate:"required"`
	Icon string `json:"icon"`
}

func (s *SkillGroup) Normalize() {
	s.Name = strings.TrimSpace(s.Name)
	s.Icon = strings.TrimSpace(s.Icon)
	if s.Icon == "" {
		s.Icon = DefaultIcon
	}
}

// User is a person known to the system.
type User struct {
	Name  string `json:"name"  validate:"required"`
	Email string `json:"email" validate:"required,email"`
}

func (u *User) Normalize() {
	u.Name = strings.TrimSpace(u.Name)
	u.Email = strings.ToLower(strings.TrimSpace(u.Email))
}

// Office is a physical location users belong to.
type Office struct {
	Name string `json:"name" validate:"required"`
}

func (o *Office) Normalize() { o.Name = strings.TrimSpace(o.Name) }

// Assignment is a piece of work users are staffed on.
type Assignment struct {
	Name string `json:"name" validate:"required"`
}

func (a *Assignment) Normalize() { a.Name = strings.TrimSpace(a.Name) }

// Role is an authorization role.
type Role struct {
	Name string `json:"name" validate:"required"`
}

func (r *Role) Normalize() { r.Name = strings.TrimSpace(r.Name) }

// Attribute is a permission granted through roles.
type Attribute struct {
	Name string `json:"name" validate:"required"`
}

func (a *Attribute) Normalize() { a.Name = strings.TrimSpace(a.Name) }

// File is the metadata record of an uploaded file. The bytes themselves are
// stored elsewhere; GeneratedName is the storage key.
type File struct {
	GeneratedName string `json:"generatedName" validate:"required"`
	OriginalName  string `json:"originalName"  validate:"required"`
}

func (f *File) Normalize() {
	f.GeneratedName = strings.TrimSpace(f.GeneratedName)
	f.OriginalName = strings.TrimSpace(f.OriginalName)
}
