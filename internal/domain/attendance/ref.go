package attendance

import (
	"encoding/json"
	"fmt"
)

// EmployeeRef is the employee reference carried by an attendance record. The
// upstream returns either a plain identifier string or the denormalized
// employee document; both forms occur within one collection, so the reference
// is a two-variant union rather than a string.
type EmployeeRef struct {
	id      string
	profile *EmployeeProfile
}

// EmployeeProfile is the embedded variant's payload.
type EmployeeProfile struct {
	ID         string `json:"_id,omitempty"`
	FullName   string `json:"fullName,omitempty"`
	Department string `json:"department,omitempty"`
}

// DirectRef builds the plain-identifier variant.
func DirectRef(id string) EmployeeRef {
	return EmployeeRef{id: id}
}

// EmbeddedRef builds the denormalized-document variant.
func EmbeddedRef(profile EmployeeProfile) EmployeeRef {
	return EmployeeRef{profile: &profile}
}

// IsEmbedded reports whether the reference carries an embedded profile.
func (r EmployeeRef) IsEmbedded() bool {
	return r.profile != nil
}

// ID returns the plain identifier; empty for the embedded variant.
func (r EmployeeRef) ID() string {
	return r.id
}

// Profile returns the embedded profile when present.
func (r EmployeeRef) Profile() (EmployeeProfile, bool) {
	if r.profile == nil {
		return EmployeeProfile{}, false
	}
	return *r.profile, true
}

// Matches reports whether the reference equals the given employee id.
// Filtering by employee assumes the string form: an embedded reference never
// matches, even when its profile id coincides.
func (r EmployeeRef) Matches(employeeID string) bool {
	return r.profile == nil && r.id == employeeID
}

func (r *EmployeeRef) UnmarshalJSON(data []byte) error {
	var id string
	if err := json.Unmarshal(data, &id); err == nil {
		*r = EmployeeRef{id: id}
		return nil
	}

	var profile EmployeeProfile
	if err := json.Unmarshal(data, &profile); err != nil {
		return fmt.Errorf("employee_id is neither a string nor an object: %w", err)
	}
	*r = EmployeeRef{profile: &profile}
	return nil
}

func (r EmployeeRef) MarshalJSON() ([]byte, error) {
	if r.profile != nil {
		return json.Marshal(r.profile)
	}
	return json.Marshal(r.id)
}
