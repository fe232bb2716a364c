package database

import (
	"database/sql"
	"encoding/json"

	"github.com/dayaniravi123/meduber/internal/models"
	"github.com/google/uuid"
)

// Seed loads the provider directory fixtures on first start. It is
// idempotent: a database that already has doctors is left untouched.
func Seed(db *sql.DB) error {
	var count int
	if err := db.QueryRow("SELECT COUNT(*) FROM doctors").Scan(&count); err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	tx, err := db.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	for i, s := range seedSpecialties {
		if _, err := tx.Exec("INSERT INTO specialties (id, name, icon, position) VALUES (?, ?, ?, ?)",
			uuid.New().String(), s.Name, s.Icon, i); err != nil {
			return err
		}
	}

	for _, d := range seedDoctors {
		specs, _ := json.Marshal(d.Specialties)
		if _, err := tx.Exec(
			"INSERT INTO doctors (id, name, location, specialties_json, accepting_new_patients, phone_number) VALUES (?, ?, ?, ?, ?, ?)",
			uuid.New().String(), d.Name, d.Location, string(specs), d.AcceptingNewPatients, d.PhoneNumber); err != nil {
			return err
		}
	}

	for _, h := range seedHospitals {
		specs, _ := json.Marshal(h.Specialties)
		if _, err := tx.Exec(
			"INSERT INTO hospitals (id, name, location, specialties_json, phone_number, capacity) VALUES (?, ?, ?, ?, ?, ?)",
			uuid.New().String(), h.Name, h.Location, string(specs), h.PhoneNumber, h.Capacity); err != nil {
			return err
		}
	}

	for _, p := range seedPharmacies {
		specs, _ := json.Marshal(p.Specialties)
		if _, err := tx.Exec(
			"INSERT INTO pharmacies (id, name, location, specialties_json, phone_number, plans_accepted) VALUES (?, ?, ?, ?, ?, ?)",
			uuid.New().String(), p.Name, p.Location, string(specs), p.PhoneNumber, p.PlansAccepted); err != nil {
			return err
		}
	}

	for _, u := range seedUrgentCares {
		svcs, _ := json.Marshal(u.Services)
		if _, err := tx.Exec(
			"INSERT INTO urgent_care_centers (id, name, location, services_json, phone_number, wait_time) VALUES (?, ?, ?, ?, ?, ?)",
			uuid.New().String(), u.Name, u.Location, string(svcs), u.PhoneNumber, u.WaitTime); err != nil {
			return err
		}
	}

	for _, c := range seedCardiologyClinics {
		svcs, _ := json.Marshal(c.Services)
		if _, err := tx.Exec(
			"INSERT INTO cardiology_clinics (id, name, location, services_json, phone_number, years_in_practice) VALUES (?, ?, ?, ?, ?, ?)",
			uuid.New().String(), c.Name, c.Location, string(svcs), c.PhoneNumber, c.YearsInPractice); err != nil {
			return err
		}
	}

	return tx.Commit()
}

var seedSpecialties = []models.Specialty{
	{Name: "Primary Care", Icon: "stethoscope"},
	{Name: "Specialist", Icon: "person.3"},
	{Name: "Hospital", Icon: "cross.case"},
	{Name: "Urgent Care", Icon: "mappin.and.ellipse"},
	{Name: "Pharmacy", Icon: "pills"},
	{Name: "Cardiology", Icon: "heart.fill"},
	{Name: "Dermatology", Icon: "bandage.fill"},
	{Name: "Urology", Icon: "drop.fill"},
	{Name: "Psychiatry", Icon: "brain.head.profile"},
	{Name: "Neurology", Icon: "bolt.fill"},
	{Name: "Orthopedics", Icon: "figure.walk"},
	{Name: "Pediatrics", Icon: "person.2.fill"},
	{Name: "Ophthalmology", Icon: "eye.fill"},
}

var seedDoctors = []models.Doctor{
	{Name: "Frank A. Cammarata, LCSW", Location: "5586 Main St Ste G2, Williamsville, NY 14221", Specialties: []string{"Clinical Social Worker"}, AcceptingNewPatients: true, PhoneNumber: "(716) 630-7075"},
	{Name: "Dr Frank A Cammarata LCSW", Location: "5586 Main St Ste G2, Williamsville, NY 14221", Specialties: []string{"Multi-Specialty Group"}, AcceptingNewPatients: true, PhoneNumber: "(716) 630-7075"},
	{Name: "Amber F Blanchard LCSW", Location: "5586 Main St Ste 210, Williamsville, NY 14221", Specialties: []string{"Multi-Specialty Group"}, AcceptingNewPatients: false, PhoneNumber: "(716) 463-5602"},
	{Name: "Dr. Jane Smith", Location: "123 Health Ave, Anytown, CA 90210", Specialties: []string{"Cardiology"}, AcceptingNewPatients: true, PhoneNumber: "(555) 123-4567"},
	{Name: "Dr. John Doe", Location: "456 Main St, Metropolis, NY 10001", Specialties: []string{"Neurology"}, AcceptingNewPatients: true, PhoneNumber: "(555) 987-6543"},
	{Name: "Dr. Emily White", Location: "789 Pine Ln, Springfield, IL 62704", Specialties: []string{"Dermatology"}, AcceptingNewPatients: false, PhoneNumber: "(555) 234-5678"},
}

var seedHospitals = []models.Hospital{
	{Name: "Buffalo General Medical Center", Location: "100 High St, Buffalo, NY 14203", Specialties: []string{"Cardiology", "Oncology", "Orthopedics"}, PhoneNumber: "(716) 859-5600", Capacity: 484},
	{Name: "Mercy Hospital of Buffalo", Location: "565 Abbott Rd, Buffalo, NY 14220", Specialties: []string{"Emergency Care", "Surgery", "Maternity"}, PhoneNumber: "(716) 826-7000", Capacity: 349},
	{Name: "Sisters of Charity Hospital", Location: "2157 Main St, Buffalo, NY 14214", Specialties: []string{"Cardiac Care", "Neurology"}, PhoneNumber: "(716) 862-1000", Capacity: 467},
	{Name: "Erie County Medical Center", Location: "462 Grider St, Buffalo, NY 14215", Specialties: []string{"Trauma", "Burn Unit", "Psychiatry"}, PhoneNumber: "(716) 898-3000", Capacity: 550},
	{Name: "Millard Fillmore Suburban Hospital", Location: "1540 Maple Rd, Williamsville, NY 14221", Specialties: []string{"Internal Medicine", "Emergency", "Rehabilitation"}, PhoneNumber: "(716) 568-3600", Capacity: 265},
	{Name: "Kenmore Mercy Hospital", Location: "2950 Elmwood Ave, Kenmore, NY 14217", Specialties: []string{"Orthopedics", "Surgical Care"}, PhoneNumber: "(716) 447-6100", Capacity: 184},
}

var seedPharmacies = []models.Pharmacy{
	{Name: "RITE AID PHARMACY 03194 0", Location: "5447 MAIN STREET, WILLIAMSVILLE, NY 14221", Specialties: []string{"Community/Retail Pharmacy", "Pharmacy"}, PhoneNumber: "(716) 632-8608", PlansAccepted: 39},
	{Name: "CVS Pharmacy", Location: "8700 Main St, Clarence, NY 14031", Specialties: []string{"Retail Pharmacy"}, PhoneNumber: "(716) 759-8321", PlansAccepted: 52},
	{Name: "Walgreens Pharmacy", Location: "3510 Sheridan Dr, Amherst, NY 14226", Specialties: []string{"Retail Pharmacy"}, PhoneNumber: "(716) 835-2345", PlansAccepted: 48},
	{Name: "Wegmans Pharmacy", Location: "675 Alberta Dr, Amherst, NY 14226", Specialties: []string{"Supermarket Pharmacy"}, PhoneNumber: "(716) 839-4400", PlansAccepted: 61},
	{Name: "Kinney Drugs", Location: "9500 Transit Rd, East Amherst, NY 14051", Specialties: []string{"Community Pharmacy"}, PhoneNumber: "(716) 639-0820", PlansAccepted: 35},
	{Name: "Walmart Pharmacy", Location: "10000 McKinley Pkwy, Hamburg, NY 14075", Specialties: []string{"Retail Pharmacy"}, PhoneNumber: "(716) 646-1234", PlansAccepted: 55},
	{Name: "Target Pharmacy", Location: "1560 Niagara Falls Blvd, Amherst, NY 14228", Specialties: []string{"Retail Pharmacy"}, PhoneNumber: "(716) 564-9876", PlansAccepted: 42},
	{Name: "Erie County Medical Center Pharmacy", Location: "462 Grider St, Buffalo, NY 14215", Specialties: []string{"Hospital Pharmacy", "Outpatient Pharmacy"}, PhoneNumber: "(716) 898-3000", PlansAccepted: 28},
	{Name: "Mercy Hospital Pharmacy", Location: "5650 S Park Ave, Buffalo, NY 14224", Specialties: []string{"Hospital Pharmacy"}, PhoneNumber: "(716) 825-8353", PlansAccepted: 30},
	{Name: "Southgate Plaza Pharmacy", Location: "1049 Union Rd, West Seneca, NY 14224", Specialties: []string{"Independent Pharmacy"}, PhoneNumber: "(716) 674-3456", PlansAccepted: 25},
}

var seedUrgentCares = []models.UrgentCare{
	{Name: "WellNow Urgent Care", Location: "3925 Sheridan Dr, Amherst, NY 14226", Services: []string{"Injury Treatment", "Illness Care", "COVID-19 Testing"}, PhoneNumber: "(716) 836-5437", WaitTime: "15 min"},
	{Name: "Concentra Urgent Care", Location: "255 Aero Dr, Cheektowaga, NY 14225", Services: []string{"Physical Exams", "Occupational Health", "Injury Care"}, PhoneNumber: "(716) 634-0380", WaitTime: "20 min"},
	{Name: "Immediate Care Center", Location: "2497 Delaware Ave, Buffalo, NY 14216", Services: []string{"General Illness", "X-Rays", "Lab Testing"}, PhoneNumber: "(716) 447-6500", WaitTime: "10 min"},
	{Name: "MASH Urgent Care", Location: "3980 Sheridan Dr, Amherst, NY 14226", Services: []string{"Pediatric Care", "Infections", "Allergies"}, PhoneNumber: "(716) 250-9999", WaitTime: "25 min"},
	{Name: "UBMD Urgent Care", Location: "77 Goodell St, Buffalo, NY 14203", Services: []string{"Adult & Pediatric Care", "Diagnostics"}, PhoneNumber: "(716) 932-7777", WaitTime: "30 min"},
}

var seedCardiologyClinics = []models.CardiologyClinic{
	{Name: "Buffalo Heart Center", Location: "123 Main St, Buffalo, NY 14202", Services: []string{"Cardiac Diagnostics", "Stress Test", "Echocardiography"}, PhoneNumber: "(716) 555-1234", YearsInPractice: 15},
	{Name: "Mercy Cardiology Clinic", Location: "456 Park Ave, Buffalo, NY 14222", Services: []string{"Arrhythmia Treatment", "Heart Failure Management"}, PhoneNumber: "(716) 555-5678", YearsInPractice: 10},
	{Name: "UB Heart Institute", Location: "789 Elmwood Ave, Buffalo, NY 14222", Services: []string{"Cardiac Imaging", "Interventional Cardiology"}, PhoneNumber: "(716) 555-9012", YearsInPractice: 20},
	{Name: "CardioCare Associates", Location: "321 Oak St, Amherst, NY 14226", Services: []string{"Preventive Cardiology", "Electrophysiology"}, PhoneNumber: "(716) 555-3456", YearsInPractice: 12},
	{Name: "Western New York Heart Specialists", Location: "654 Maple Rd, Buffalo, NY 14214", Services: []string{"Heart Surgery Consultation", "Lipid Management"}, PhoneNumber: "(716) 555-7890", YearsInPractice: 18},
}
