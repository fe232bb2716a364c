package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/dayaniravi123/meduber/internal/services"
	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
)

// DirectoryHandler handles HTTP requests for the provider directory.
type DirectoryHandler struct {
	directory  services.DirectoryServiceProvider
	selections services.SelectionServiceProvider
}

// NewDirectoryHandler creates a new DirectoryHandler.
func NewDirectoryHandler(directory services.DirectoryServiceProvider, selections services.SelectionServiceProvider) *DirectoryHandler {
	return &DirectoryHandler{directory: directory, selections: selections}
}

// GetSpecialties handles the request for the browsable categories.
func (h *DirectoryHandler) GetSpecialties(w http.ResponseWriter, r *http.Request) {
	specialties, err := h.directory.GetSpecialties()
	if err != nil {
		log.Error().Err(err).Msg("Failed to retrieve specialties")
		http.Error(w, "Failed to retrieve specialties", http.StatusInternalServerError)
		return
	}
	writeJSON(w, specialties)
}

// GetDoctors lists doctors, filtered by the specialty and q query params.
func (h *DirectoryHandler) GetDoctors(w http.ResponseWriter, r *http.Request) {
	specialty := r.URL.Query().Get("specialty")
	query := r.URL.Query().Get("q")

	doctors, err := h.directory.GetDoctors(specialty, query)
	if err != nil {
		log.Error().Err(err).Msg("Failed to retrieve doctors")
		http.Error(w, "Failed to retrieve doctors", http.StatusInternalServerError)
		return
	}
	writeJSON(w, doctors)
}

// GetDoctor handles the request for a single doctor.
func (h *DirectoryHandler) GetDoctor(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	doctor, err := h.directory.GetDoctorByID(id)
	if err != nil {
		log.Warn().Err(err).Str("doctor_id", id).Msg("Failed to get doctor by ID")
		http.Error(w, "Doctor not found", http.StatusNotFound)
		return
	}
	writeJSON(w, doctor)
}

// GetHospitals handles the request for all hospitals.
func (h *DirectoryHandler) GetHospitals(w http.ResponseWriter, r *http.Request) {
	hospitals, err := h.directory.GetHospitals()
	if err != nil {
		log.Error().Err(err).Msg("Failed to retrieve hospitals")
		http.Error(w, "Failed to retrieve hospitals", http.StatusInternalServerError)
		return
	}
	writeJSON(w, hospitals)
}

// GetHospital handles the request for a single hospital.
func (h *DirectoryHandler) GetHospital(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	hospital, err := h.directory.GetHospitalByID(id)
	if err != nil {
		log.Warn().Err(err).Str("hospital_id", id).Msg("Failed to get hospital by ID")
		http.Error(w, "Hospital not found", http.StatusNotFound)
		return
	}
	writeJSON(w, hospital)
}

// GetPharmacies handles the request for all pharmacies.
func (h *DirectoryHandler) GetPharmacies(w http.ResponseWriter, r *http.Request) {
	pharmacies, err := h.directory.GetPharmacies()
	if err != nil {
		log.Error().Err(err).Msg("Failed to retrieve pharmacies")
		http.Error(w, "Failed to retrieve pharmacies", http.StatusInternalServerError)
		return
	}
	writeJSON(w, pharmacies)
}

// GetPharmacy handles the request for a single pharmacy.
func (h *DirectoryHandler) GetPharmacy(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	pharmacy, err := h.directory.GetPharmacyByID(id)
	if err != nil {
		log.Warn().Err(err).Str("pharmacy_id", id).Msg("Failed to get pharmacy by ID")
		http.Error(w, "Pharmacy not found", http.StatusNotFound)
		return
	}
	writeJSON(w, pharmacy)
}

// GetUrgentCareCenters handles the request for all urgent-care centers.
func (h *DirectoryHandler) GetUrgentCareCenters(w http.ResponseWriter, r *http.Request) {
	centers, err := h.directory.GetUrgentCareCenters()
	if err != nil {
		log.Error().Err(err).Msg("Failed to retrieve urgent care centers")
		http.Error(w, "Failed to retrieve urgent care centers", http.StatusInternalServerError)
		return
	}
	writeJSON(w, centers)
}

// GetUrgentCareCenter handles the request for a single urgent-care center.
func (h *DirectoryHandler) GetUrgentCareCenter(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	center, err := h.directory.GetUrgentCareByID(id)
	if err != nil {
		log.Warn().Err(err).Str("urgent_care_id", id).Msg("Failed to get urgent care center by ID")
		http.Error(w, "Urgent care center not found", http.StatusNotFound)
		return
	}
	writeJSON(w, center)
}

// GetCardiologyClinics handles the request for all cardiology clinics.
func (h *DirectoryHandler) GetCardiologyClinics(w http.ResponseWriter, r *http.Request) {
	clinics, err := h.directory.GetCardiologyClinics()
	if err != nil {
		log.Error().Err(err).Msg("Failed to retrieve cardiology clinics")
		http.Error(w, "Failed to retrieve cardiology clinics", http.StatusInternalServerError)
		return
	}
	writeJSON(w, clinics)
}

// GetCardiologyClinic handles the request for a single cardiology clinic.
func (h *DirectoryHandler) GetCardiologyClinic(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	clinic, err := h.directory.GetCardiologyClinicByID(id)
	if err != nil {
		log.Warn().Err(err).Str("clinic_id", id).Msg("Failed to get cardiology clinic by ID")
		http.Error(w, "Cardiology clinic not found", http.StatusNotFound)
		return
	}
	writeJSON(w, clinic)
}

// SelectionPayload defines the structure for selection requests.
type SelectionPayload struct {
	Name string `json:"name"`
}

// SelectDoctor remembers the chosen doctor.
func (h *DirectoryHandler) SelectDoctor(w http.ResponseWriter, r *http.Request) {
	var payload SelectionPayload
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	if err := h.selections.SelectDoctor(r.Context(), payload.Name); err != nil {
		log.Error().Err(err).Msg("Failed to store doctor selection")
		http.Error(w, "Failed to store selection", http.StatusInternalServerError)
		return
	}
	writeJSON(w, map[string]string{"selectedDoctorName": payload.Name})
}

// GetSelectedDoctor returns the remembered doctor name.
func (h *DirectoryHandler) GetSelectedDoctor(w http.ResponseWriter, r *http.Request) {
	name, err := h.selections.SelectedDoctor(r.Context())
	if err != nil {
		log.Error().Err(err).Msg("Failed to read doctor selection")
		http.Error(w, "Failed to read selection", http.StatusInternalServerError)
		return
	}
	writeJSON(w, map[string]string{"selectedDoctorName": name})
}

// SelectClinic remembers the chosen clinic.
func (h *DirectoryHandler) SelectClinic(w http.ResponseWriter, r *http.Request) {
	var payload SelectionPayload
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	if err := h.selections.SelectClinic(r.Context(), payload.Name); err != nil {
		log.Error().Err(err).Msg("Failed to store clinic selection")
		http.Error(w, "Failed to store selection", http.StatusInternalServerError)
		return
	}
	writeJSON(w, map[string]string{"selectedClinicName": payload.Name})
}

// GetSelectedClinic returns the remembered clinic name.
func (h *DirectoryHandler) GetSelectedClinic(w http.ResponseWriter, r *http.Request) {
	name, err := h.selections.SelectedClinic(r.Context())
	if err != nil {
		log.Error().Err(err).Msg("Failed to read clinic selection")
		http.Error(w, "Failed to read selection", http.StatusInternalServerError)
		return
	}
	writeJSON(w, map[string]string{"selectedClinicName": name})
}

func writeJSON(w http.ResponseWriter, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(v)
}
