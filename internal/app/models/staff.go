package models

// Staff is the directory record for doctors and nurses. The directory is
// maintained by the hospital identity system; this service only reads it
// for display-name joins.
type Staff struct {
	ID        string `json:"id,omitempty" bson:"_id,omitempty"`
	FirstName string `json:"firstName" bson:"firstName"`
	LastName  string `json:"lastName,omitempty" bson:"lastName,omitempty"`
	Role      string `json:"role,omitempty" bson:"role,omitempty"`
	TimeModel `bson:",inline"`
}

// DisplayName joins first and last names for board views.
func (s *Staff) DisplayName() string {
	if s.LastName == "" {
		return s.FirstName
	}
	return s.FirstName + " " + s.LastName
}
