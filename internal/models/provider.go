package models

// Doctor represents a provider in the doctor directory.
type Doctor struct {
	ID                   string   `json:"id"`
	Name                 string   `json:"name"`
	Location             string   `json:"location"`
	Specialties          []string `json:"specialties"`
	AcceptingNewPatients bool     `json:"acceptingNewPatients"`
	PhoneNumber          string   `json:"phoneNumber"`
}

// Hospital represents a hospital in the directory.
type Hospital struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	Location    string   `json:"location"`
	Specialties []string `json:"specialties"`
	PhoneNumber string   `json:"phoneNumber"`
	Capacity    int      `json:"capacity"`
}

// Pharmacy represents a pharmacy in the directory.
type Pharmacy struct {
	ID            string   `json:"id"`
	Name          string   `json:"name"`
	Location      string   `json:"location"`
	Specialties   []string `json:"specialties"`
	PhoneNumber   string   `json:"phoneNumber"`
	PlansAccepted int      `json:"plansAccepted"`
}

// UrgentCare represents an urgent-care center in the directory.
type UrgentCare struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	Location    string   `json:"location"`
	Services    []string `json:"services"`
	PhoneNumber string   `json:"phoneNumber"`
	WaitTime    string   `json:"waitTime"`
}

// CardiologyClinic represents a cardiology clinic in the directory.
type CardiologyClinic struct {
	ID              string   `json:"id"`
	Name            string   `json:"name"`
	Location        string   `json:"location"`
	Services        []string `json:"services"`
	PhoneNumber     string   `json:"phoneNumber"`
	YearsInPractice int      `json:"yearsInPractice"`
}

// Specialty is a browsable directory category shown on the search screen.
type Specialty struct {
	ID   string `json:"id"`
	Name string `json:"name"`
	Icon string `json:"icon"`
}
