package web

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strconv"

	"github.com/Harshit-gupta-45107/User-Management/internal/core"
	"github.com/Harshit-gupta-45107/User-Management/internal/validate"
	"github.com/go-chi/chi/v5"
)

// xlsxMIME is the only content type accepted for bulk uploads.
const xlsxMIME = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

// userPayload is the request body for create and update.
type userPayload struct {
	FirstName   string `json:"first_name"`
	LastName    string `json:"last_name"`
	Email       string `json:"email"`
	PhoneNumber string `json:"phone_number"`
	PANNumber   string `json:"pan_number"`
}

func (p userPayload) candidate() validate.Candidate {
	return validate.Candidate{
		FirstName:   p.FirstName,
		LastName:    p.LastName,
		Email:       p.Email,
		PhoneNumber: p.PhoneNumber,
		PANNumber:   p.PANNumber,
	}
}

// handleListUsers returns all users, newest first.
func (s *Server) handleListUsers(w http.ResponseWriter, r *http.Request) {
	users, err := s.service.ListUsers(r.Context())
	if err != nil {
		s.respondError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, users)
}

// handleGetUser returns a single user by id.
func (s *Server) handleGetUser(w http.ResponseWriter, r *http.Request) {
	id, ok := parseID(w, r)
	if !ok {
		return
	}

	user, err := s.service.GetUser(r.Context(), id)
	if err != nil {
		s.respondError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, user)
}

// handleCreateUser validates and inserts a new user.
func (s *Server) handleCreateUser(w http.ResponseWriter, r *http.Request) {
	var payload userPayload
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "Invalid request body"})
		return
	}

	user, err := s.service.CreateUser(r.Context(), payload.candidate())
	if err != nil {
		s.respondError(w, r, err)
		return
	}

	writeJSON(w, http.StatusCreated, map[string]any{
		"message": "User created successfully",
		"user":    user,
	})
}

// handleUpdateUser replaces all user-supplied fields of an existing user.
func (s *Server) handleUpdateUser(w http.ResponseWriter, r *http.Request) {
	id, ok := parseID(w, r)
	if !ok {
		return
	}

	var payload userPayload
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "Invalid request body"})
		return
	}

	user, err := s.service.UpdateUser(r.Context(), id, payload.candidate())
	if err != nil {
		s.respondError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"message": "User updated successfully",
		"user":    user,
	})
}

// handleDeleteUser removes a user by id.
func (s *Server) handleDeleteUser(w http.ResponseWriter, r *http.Request) {
	id, ok := parseID(w, r)
	if !ok {
		return
	}

	if err := s.service.DeleteUser(r.Context(), id); err != nil {
		s.respondError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"message": "User deleted successfully"})
}

// handleBulkUpload imports users from an uploaded .xlsx file. The batch is
// all-or-nothing: any validation or duplicate failure inserts zero rows.
func (s *Server) handleBulkUpload(w http.ResponseWriter, r *http.Request) {
	maxSize := s.cfg.Upload.MaxFileSize
	r.Body = http.MaxBytesReader(w, r.Body, maxSize)

	if err := r.ParseMultipartForm(maxSize); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "File too large"})
		return
	}

	file, header, err := r.FormFile("file")
	if err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "No file uploaded"})
		return
	}
	defer file.Close()

	if header.Header.Get("Content-Type") != xlsxMIME {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "Only .xlsx files are allowed"})
		return
	}

	data, err := io.ReadAll(file)
	if err != nil {
		s.respondError(w, r, err)
		return
	}

	count, err := s.service.ImportBatch(r.Context(), data)
	if err != nil {
		s.respondError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"message": fmt.Sprintf("Successfully uploaded %d users", count),
		"count":   count,
	})
}

// handleDownloadTemplate serves the current users (or a blank row) as an
// .xlsx template that round-trips through bulk upload.
func (s *Server) handleDownloadTemplate(w http.ResponseWriter, r *http.Request) {
	data, err := s.service.GenerateTemplate(r.Context())
	if err != nil {
		s.respondError(w, r, err)
		return
	}
	serveWorkbook(w, data)
}

// handleSampleTemplate serves a one-example-row .xlsx for illustration.
func (s *Server) handleSampleTemplate(w http.ResponseWriter, r *http.Request) {
	data, err := core.SampleTemplate()
	if err != nil {
		s.respondError(w, r, err)
		return
	}
	serveWorkbook(w, data)
}

func serveWorkbook(w http.ResponseWriter, data []byte) {
	w.Header().Set("Content-Type", xlsxMIME)
	w.Header().Set("Content-Disposition", "attachment; filename=user_template.xlsx")
	w.Write(data)
}

// parseID extracts the {id} route parameter. An unparsable id behaves like a
// missing record.
func parseID(w http.ResponseWriter, r *http.Request) (int64, bool) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		writeJSON(w, http.StatusNotFound, map[string]string{"error": "User not found"})
		return 0, false
	}
	return id, true
}
