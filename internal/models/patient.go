package models

// PatientStatus indicates whether a patient is actively seen by the practice
type PatientStatus string

const (
	PatientActive   PatientStatus = "Active"
	PatientInactive PatientStatus = "Inactive"
)

// Address is a simple mailing address
type Address struct {
	Street string `json:"street"`
	City   string `json:"city"`
	State  string `json:"state"`
	Zip    string `json:"zip"`
}

// Patient is a directory record. The schedule references patients weakly via
// PatientRef; this type is owned by the patient directory.
type Patient struct {
	ID               string        `json:"id"`
	FirstName        string        `json:"firstName"`
	LastName         string        `json:"lastName"`
	MRN              string        `json:"mrn"`
	DOB              string        `json:"dob"`
	Gender           string        `json:"gender"`
	Email            string        `json:"email"`
	Phone            string        `json:"phone"`
	Address          Address       `json:"address"`
	RegistrationDate string        `json:"registrationDate"`
	Status           PatientStatus `json:"status"`
	InsuranceStatus  string        `json:"insuranceStatus"`
}

// Name returns the patient's display name.
func (p Patient) Name() string {
	return p.FirstName + " " + p.LastName
}

// Ref produces the weak reference used by appointments.
func (p Patient) Ref() PatientRef {
	return PatientRef{
		ID:    p.ID,
		Name:  p.Name(),
		MRN:   p.MRN,
		DOB:   p.DOB,
		Phone: p.Phone,
		Email: p.Email,
	}
}
