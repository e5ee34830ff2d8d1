package models

// Patient is the minimal record created during quick registration for
// walk-ins without a prior identity. Full patient management is owned by
// the external patient service.
type Patient struct {
	ID          string `json:"id,omitempty" bson:"_id,omitempty"`
	FirstName   string `json:"firstName" bson:"firstName"`
	LastName    string `json:"lastName,omitempty" bson:"lastName,omitempty"`
	Gender      string `json:"gender,omitempty" bson:"gender,omitempty"`
	BirthDate   string `json:"birthDate,omitempty" bson:"birthDate,omitempty"`
	PhoneNumber string `json:"phoneNumber,omitempty" bson:"phoneNumber,omitempty"`
	TimeModel   `bson:",inline"`
}

// DisplayName joins first and last names for board views.
func (p *Patient) DisplayName() string {
	if p.LastName == "" {
		return p.FirstName
	}
	return p.FirstName + " " + p.LastName
}
