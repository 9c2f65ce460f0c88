package user

import (
	"github.com/volatiletech/null/v8"

	"github.com/iecliberdade/ebdconectada/core"
)

// Roles
const (
	RoleStudent = "student"
	RoleTeacher = "teacher"
	// RoleAdmin is reserved for the fixed super-user and is never assigned
	// through the CRUD operations.
	RoleAdmin = "admin"
)

// Statuses
const (
	StatusActive   = "active"
	StatusPending  = "pending"
	StatusInactive = "inactive"
)

type User struct {
	ID         string      `json:"id"`
	Name       string      `json:"name"`
	Email      string      `json:"email"`
	Password   null.String `json:"password,omitempty"` // plain text; legacy site behavior
	BirthDate  null.String `json:"birthDate,omitempty"`
	Phone      null.String `json:"phone,omitempty"`
	Role       string      `json:"role"`
	Status     string      `json:"status"`
	JoinedDate null.String `json:"joinedDate,omitempty"`
	// TeachingClassroomID is a weak reference: the classroom may have been
	// deleted, and a lookup miss is non-fatal.
	TeachingClassroomID null.String `json:"teachingClassroomId,omitempty"`
}

func (u User) IsAdmin() bool {
	return u.Role == RoleAdmin
}

func (u User) IsTeacher() bool {
	return u.Role == RoleTeacher
}

func (u User) IsStudent() bool {
	return u.Role == RoleStudent
}

// TeacherDraft contains the editable fields of a teacher record.
type TeacherDraft struct {
	Name                string      `json:"name" validate:"required"`
	Email               string      `json:"email" validate:"required,email"`
	Phone               null.String `json:"phone"`
	Status              string      `json:"status" validate:"required,oneof=active inactive"`
	TeachingClassroomID null.String `json:"teachingClassroomId"`
}

func (d *TeacherDraft) Validate() error {
	d.Name = core.CleanString(d.Name)
	d.Email = core.CleanString(d.Email, true /* lower */)
	return core.TranslateError(core.Validate.Struct(d))
}
