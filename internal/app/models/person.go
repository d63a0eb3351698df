package models

import (
	"fmt"

	"github.com/yigit/unirecords/internal/pkg/apperrors"
	"github.com/yigit/unirecords/internal/pkg/validation"
)

// Person is anyone known to the university
type Person interface {
	ID() string
	Name() string
	Email() string
	Age() int
	Role() RoleType
	ContactInfo() string
	Responsibilities() string
	String() string
}

// PersonParams holds the identity fields supplied when a person is created
type PersonParams struct {
	ID    string `validate:"required"`
	Name  string
	Email string
	Age   int `validate:"gte=0"`
}

// Profile is the immutable identity shared by every concrete person type
type Profile struct {
	id    string
	name  string
	email string
	age   int
	role  RoleType
}

func newProfile(params PersonParams, role RoleType) (Profile, error) {
	if err := validation.Struct(params); err != nil {
		return Profile{}, fmt.Errorf("%w: %v", apperrors.ErrInvalidPerson, err)
	}
	return Profile{
		id:    params.ID,
		name:  params.Name,
		email: params.Email,
		age:   params.Age,
		role:  role,
	}, nil
}

func (p Profile) ID() string     { return p.id }
func (p Profile) Name() string   { return p.name }
func (p Profile) Email() string  { return p.email }
func (p Profile) Age() int       { return p.age }
func (p Profile) Role() RoleType { return p.role }

// ContactInfo returns "name <email>"
func (p Profile) ContactInfo() string {
	return fmt.Sprintf("%s <%s>", p.name, p.email)
}

func (p Profile) Responsibilities() string {
	return p.role.Responsibilities()
}

func (p Profile) String() string {
	return fmt.Sprintf("%s(id=%s, name=%s, age=%d)", p.role, p.id, p.name, p.age)
}

// Staff is a non-teaching employee
type Staff struct {
	Profile
}

// NewStaff creates a staff member
func NewStaff(params PersonParams) (*Staff, error) {
	profile, err := newProfile(params, RoleStaff)
	if err != nil {
		return nil, err
	}
	return &Staff{Profile: profile}, nil
}
