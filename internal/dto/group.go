package dto

import (
	"errors"

	"github.com/go-playground/validator/v10"
)

const (
	// LibelleLengthMessage is reported when a group label is outside 2..50 characters.
	LibelleLengthMessage   = "libelle must be between 2 and 50 characters"
	LibelleRequiredMessage = "libelle is required"
)

// CreateGroupRequest describes payload for creating a group.
type CreateGroupRequest struct {
	Libelle string  `json:"libelle" validate:"required,min=2,max=50"`
	Couleur *string `json:"couleur"`
}

// CreateGroupMessage maps a validator failure on CreateGroupRequest to its message.
func CreateGroupMessage(err error) string {
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) {
		for _, fe := range verrs {
			if fe.Tag() == "required" {
				return LibelleRequiredMessage
			}
		}
	}
	return LibelleLengthMessage
}

// EditGroupeDto is a partial update of a group. An omitted field leaves the
// stored value unchanged; an explicit null clears it.
type EditGroupeDto struct {
	Libelle OptionalString `json:"libelle"`
	Couleur OptionalString `json:"couleur"`
}

// EditGroupeRules validates the string values present in an EditGroupeDto.
var EditGroupeRules = RuleTable{
	{Field: "libelle", Rules: []Rule{{Tag: "min=2,max=50", Message: LibelleLengthMessage}}},
	{Field: "couleur", Rules: nil},
}

// Values returns the non-null fields present in the payload.
func (d EditGroupeDto) Values() map[string]interface{} {
	values := make(map[string]interface{}, 2)
	if d.Libelle.Value != nil {
		values["libelle"] = *d.Libelle.Value
	}
	if d.Couleur.Value != nil {
		values["couleur"] = *d.Couleur.Value
	}
	return values
}

// Validate applies EditGroupeRules.
func (d EditGroupeDto) Validate(v *validator.Validate) error {
	return EditGroupeRules.Validate(v, d.Values())
}

// Empty reports whether the payload changes nothing.
func (d EditGroupeDto) Empty() bool {
	return !d.Libelle.Set && !d.Couleur.Set
}
