package domain

import (
	"errors"
	"fmt"

	"github.com/go-playground/validator/v10"
)

// RegistrationForm is the registration payload captured at booking time. The
// lifecycle rules treat it as opaque; it is validated here at the boundary and
// stored verbatim with the booking.
type RegistrationForm struct {
	FullName       string         `json:"full_name"       validate:"required"`
	Occupation     string         `json:"occupation"      validate:"required"`
	DateOfBirth    string         `json:"date_of_birth"   validate:"required"`
	Age            int            `json:"age"             validate:"required,gt=0"`
	AddressLine    string         `json:"address_line"    validate:"required"`
	Place          string         `json:"place"           validate:"required"`
	District       string         `json:"district"`
	Phone          string         `json:"phone"           validate:"required"`
	WhatsAppNumber string         `json:"whatsapp_number" validate:"required"`
	Email          string         `json:"email"           validate:"required,email"`
	NonCatholic    bool           `json:"non_catholic"`
	Diocese        string         `json:"diocese"         validate:"required_if=NonCatholic false"`
	Parish         string         `json:"parish"          validate:"required_if=NonCatholic false"`
	FamilyMembers  []FamilyMember `json:"family_members"  validate:"dive"`
}

type FamilyMember struct {
	Name     string `json:"name"     validate:"required"`
	Age      int    `json:"age"      validate:"gte=0"`
	Gender   string `json:"gender"   validate:"omitempty,oneof=male female"`
	Relation string `json:"relation"`
}

var formValidate = validator.New(validator.WithRequiredStructEnabled())

// Validate reports the first offending field as an ErrValidation.
func (f *RegistrationForm) Validate() error {
	err := formValidate.Struct(f)
	if err == nil {
		return nil
	}

	var vErrs validator.ValidationErrors
	if errors.As(err, &vErrs) && len(vErrs) > 0 {
		ve := vErrs[0]
		return fmt.Errorf("%w: field %s failed %q", ErrValidation, ve.Field(), ve.Tag())
	}
	return fmt.Errorf("%w: %v", ErrValidation, err)
}
