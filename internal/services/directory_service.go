package services

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/dayaniravi123/meduber/internal/models"
)

// DirectoryServiceProvider defines the interface for the provider directory.
type DirectoryServiceProvider interface {
	GetSpecialties() ([]models.Specialty, error)
	GetDoctors(specialty, query string) ([]models.Doctor, error)
	GetDoctorByID(id string) (models.Doctor, error)
	GetHospitals() ([]models.Hospital, error)
	GetHospitalByID(id string) (models.Hospital, error)
	GetPharmacies() ([]models.Pharmacy, error)
	GetPharmacyByID(id string) (models.Pharmacy, error)
	GetUrgentCareCenters() ([]models.UrgentCare, error)
	GetUrgentCareByID(id string) (models.UrgentCare, error)
	GetCardiologyClinics() ([]models.CardiologyClinic, error)
	GetCardiologyClinicByID(id string) (models.CardiologyClinic, error)
}

// DirectoryService serves the read-only, seeded provider directory.
type DirectoryService struct {
	db *sql.DB
}

// NewDirectoryService creates a new DirectoryService.
func NewDirectoryService(db *sql.DB) *DirectoryService {
	return &DirectoryService{db: db}
}

// GetSpecialties returns the browsable categories in display order.
func (s *DirectoryService) GetSpecialties() ([]models.Specialty, error) {
	rows, err := s.db.Query("SELECT id, name, icon FROM specialties ORDER BY position")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var specialties []models.Specialty
	for rows.Next() {
		var sp models.Specialty
		if err := rows.Scan(&sp.ID, &sp.Name, &sp.Icon); err != nil {
			return nil, err
		}
		specialties = append(specialties, sp)
	}
	return specialties, rows.Err()
}

func scanDoctor(scanner interface{ Scan(...interface{}) error }) (models.Doctor, error) {
	var d models.Doctor
	var specs sql.NullString
	err := scanner.Scan(&d.ID, &d.Name, &d.Location, &specs, &d.AcceptingNewPatients, &d.PhoneNumber)
	if err != nil {
		return d, err
	}
	if specs.Valid {
		if err := json.Unmarshal([]byte(specs.String), &d.Specialties); err != nil {
			return d, err
		}
	}
	return d, nil
}

// GetDoctors returns doctors, optionally filtered by specialty and by a
// case-insensitive name substring (the app's name-search screen).
func (s *DirectoryService) GetDoctors(specialty, query string) ([]models.Doctor, error) {
	rows, err := s.db.Query("SELECT id, name, location, specialties_json, accepting_new_patients, phone_number FROM doctors ORDER BY name")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var doctors []models.Doctor
	for rows.Next() {
		d, err := scanDoctor(rows)
		if err != nil {
			return nil, err
		}
		if specialty != "" && !containsFold(d.Specialties, specialty) {
			continue
		}
		if query != "" && !strings.Contains(strings.ToLower(d.Name), strings.ToLower(query)) {
			continue
		}
		doctors = append(doctors, d)
	}
	return doctors, rows.Err()
}

// GetDoctorByID retrieves a single doctor.
func (s *DirectoryService) GetDoctorByID(id string) (models.Doctor, error) {
	row := s.db.QueryRow("SELECT id, name, location, specialties_json, accepting_new_patients, phone_number FROM doctors WHERE id = ?", id)
	d, err := scanDoctor(row)
	if err != nil {
		if err == sql.ErrNoRows {
			return models.Doctor{}, fmt.Errorf("doctor with ID %s not found", id)
		}
		return models.Doctor{}, err
	}
	return d, nil
}

// GetHospitals returns all hospitals in the directory.
func (s *DirectoryService) GetHospitals() ([]models.Hospital, error) {
	rows, err := s.db.Query("SELECT id, name, location, specialties_json, phone_number, capacity FROM hospitals ORDER BY name")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var hospitals []models.Hospital
	for rows.Next() {
		var h models.Hospital
		var specs sql.NullString
		if err := rows.Scan(&h.ID, &h.Name, &h.Location, &specs, &h.PhoneNumber, &h.Capacity); err != nil {
			return nil, err
		}
		if specs.Valid {
			if err := json.Unmarshal([]byte(specs.String), &h.Specialties); err != nil {
				return nil, err
			}
		}
		hospitals = append(hospitals, h)
	}
	return hospitals, rows.Err()
}

// GetHospitalByID retrieves a single hospital.
func (s *DirectoryService) GetHospitalByID(id string) (models.Hospital, error) {
	var h models.Hospital
	var specs sql.NullString
	row := s.db.QueryRow("SELECT id, name, location, specialties_json, phone_number, capacity FROM hospitals WHERE id = ?", id)
	if err := row.Scan(&h.ID, &h.Name, &h.Location, &specs, &h.PhoneNumber, &h.Capacity); err != nil {
		if err == sql.ErrNoRows {
			return models.Hospital{}, fmt.Errorf("hospital with ID %s not found", id)
		}
		return models.Hospital{}, err
	}
	if specs.Valid {
		if err := json.Unmarshal([]byte(specs.String), &h.Specialties); err != nil {
			return models.Hospital{}, err
		}
	}
	return h, nil
}

// GetPharmacies returns all pharmacies in the directory.
func (s *DirectoryService) GetPharmacies() ([]models.Pharmacy, error) {
	rows, err := s.db.Query("SELECT id, name, location, specialties_json, phone_number, plans_accepted FROM pharmacies ORDER BY name")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var pharmacies []models.Pharmacy
	for rows.Next() {
		var p models.Pharmacy
		var specs sql.NullString
		if err := rows.Scan(&p.ID, &p.Name, &p.Location, &specs, &p.PhoneNumber, &p.PlansAccepted); err != nil {
			return nil, err
		}
		if specs.Valid {
			if err := json.Unmarshal([]byte(specs.String), &p.Specialties); err != nil {
				return nil, err
			}
		}
		pharmacies = append(pharmacies, p)
	}
	return pharmacies, rows.Err()
}

// GetPharmacyByID retrieves a single pharmacy.
func (s *DirectoryService) GetPharmacyByID(id string) (models.Pharmacy, error) {
	var p models.Pharmacy
	var specs sql.NullString
	row := s.db.QueryRow("SELECT id, name, location, specialties_json, phone_number, plans_accepted FROM pharmacies WHERE id = ?", id)
	if err := row.Scan(&p.ID, &p.Name, &p.Location, &specs, &p.PhoneNumber, &p.PlansAccepted); err != nil {
		if err == sql.ErrNoRows {
			return models.Pharmacy{}, fmt.Errorf("pharmacy with ID %s not found", id)
		}
		return models.Pharmacy{}, err
	}
	if specs.Valid {
		if err := json.Unmarshal([]byte(specs.String), &p.Specialties); err != nil {
			return models.Pharmacy{}, err
		}
	}
	return p, nil
}

// GetUrgentCareCenters returns all urgent-care centers in the directory.
func (s *DirectoryService) GetUrgentCareCenters() ([]models.UrgentCare, error) {
	rows, err := s.db.Query("SELECT id, name, location, services_json, phone_number, wait_time FROM urgent_care_centers ORDER BY name")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var centers []models.UrgentCare
	for rows.Next() {
		var u models.UrgentCare
		var svcs sql.NullString
		if err := rows.Scan(&u.ID, &u.Name, &u.Location, &svcs, &u.PhoneNumber, &u.WaitTime); err != nil {
			return nil, err
		}
		if svcs.Valid {
			if err := json.Unmarshal([]byte(svcs.String), &u.Services); err != nil {
				return nil, err
			}
		}
		centers = append(centers, u)
	}
	return centers, rows.Err()
}

// GetUrgentCareByID retrieves a single urgent-care center.
func (s *DirectoryService) GetUrgentCareByID(id string) (models.UrgentCare, error) {
	var u models.UrgentCare
	var svcs sql.NullString
	row := s.db.QueryRow("SELECT id, name, location, services_json, phone_number, wait_time FROM urgent_care_centers WHERE id = ?", id)
	if err := row.Scan(&u.ID, &u.Name, &u.Location, &svcs, &u.PhoneNumber, &u.WaitTime); err != nil {
		if err == sql.ErrNoRows {
			return models.UrgentCare{}, fmt.Errorf("urgent care center with ID %s not found", id)
		}
		return models.UrgentCare{}, err
	}
	if svcs.Valid {
		if err := json.Unmarshal([]byte(svcs.String), &u.Services); err != nil {
			return models.UrgentCare{}, err
		}
	}
	return u, nil
}

// GetCardiologyClinics returns all cardiology clinics in the directory.
func (s *DirectoryService) GetCardiologyClinics() ([]models.CardiologyClinic, error) {
	rows, err := s.db.Query("SELECT id, name, location, services_json, phone_number, years_in_practice FROM cardiology_clinics ORDER BY name")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var clinics []models.CardiologyClinic
	for rows.Next() {
		var c models.CardiologyClinic
		var svcs sql.NullString
		if err := rows.Scan(&c.ID, &c.Name, &c.Location, &svcs, &c.PhoneNumber, &c.YearsInPractice); err != nil {
			return nil, err
		}
		if svcs.Valid {
			if err := json.Unmarshal([]byte(svcs.String), &c.Services); err != nil {
				return nil, err
			}
		}
		clinics = append(clinics, c)
	}
	return clinics, rows.Err()
}

// GetCardiologyClinicByID retrieves a single cardiology clinic.
func (s *DirectoryService) GetCardiologyClinicByID(id string) (models.CardiologyClinic, error) {
	var c models.CardiologyClinic
	var svcs sql.NullString
	row := s.db.QueryRow("SELECT id, name, location, services_json, phone_number, years_in_practice FROM cardiology_clinics WHERE id = ?", id)
	if err := row.Scan(&c.ID, &c.Name, &c.Location, &svcs, &c.PhoneNumber, &c.YearsInPractice); err != nil {
		if err == sql.ErrNoRows {
			return models.CardiologyClinic{}, fmt.Errorf("cardiology clinic with ID %s not found", id)
		}
		return models.CardiologyClinic{}, err
	}
	if svcs.Valid {
		if err := json.Unmarshal([]byte(svcs.String), &c.Services); err != nil {
			return models.CardiologyClinic{}, err
		}
	}
	return c, nil
}

func containsFold(values []string, target string) bool {
	for _, v := range values {
		if strings.EqualFold(v, target) {
			return true
		}
	}
	return false
}
