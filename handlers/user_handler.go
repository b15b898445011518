package handlers

import (
	"encoding/json"
	"net/http"

	"tarapurtransport/auth"
	"tarapurtransport/models"
	"tarapurtransport/repository"

	"golang.org/x/crypto/bcrypt"
)

type UserHandler struct {
	Repo repository.UserRepository
	JWT  *auth.JWTManager
}

func (h *UserHandler) Signup(w http.ResponseWriter, r *http.Request) {
	var user models.AppUser
	if err := json.NewDecoder(r.Body).Decode(&user); err != nil {
		badRequest(w, "Invalid request payload: "+err.Error())
		return
	}
	if user.Name == "" || user.Email == "" || user.Password == "" {
		badRequest(w, "Name, email, and password are required")
		return
	}
	if user.Role == "" {
		user.Role = "staff"
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(user.Password), bcrypt.DefaultCost)
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, ApiResponse{
			Success: false,
			Message: "Failed to create user",
			Error:   err.Error(),
		})
		return
	}
	user.Password = string(hash)
	user.ID = ""

	if err := h.Repo.CreateUser(r.Context(), &user); err != nil {
		writeRepoError(w, err, "create user")
		return
	}

	user.Password = "" // hide password hash
	writeJSON(w, http.StatusCreated, ApiResponse{
		Success: true,
		Message: "User signed up successfully",
		Data:    user,
	})
}

func (h *UserHandler) Login(w http.ResponseWriter, r *http.Request) {
	var creds struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}
	if err := json.NewDecoder(r.Body).Decode(&creds); err != nil {
		badRequest(w, "Invalid request payload: "+err.Error())
		return
	}

	user, err := h.Repo.GetUserByEmail(r.Context(), creds.Email)
	if err != nil || user == nil {
		writeJSON(w, http.StatusUnauthorized, ApiResponse{
			Success: false,
			Message: "Invalid email or password",
		})
		return
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(creds.Password)); err != nil {
		writeJSON(w, http.StatusUnauthorized, ApiResponse{
			Success: false,
			Message: "Invalid email or password",
		})
		return
	}

	token, err := h.JWT.GenerateToken(user)
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, ApiResponse{
			Success: false,
			Message: "Failed to issue token",
			Error:   err.Error(),
		})
		return
	}

	user.Password = "" // hide password hash
	writeJSON(w, http.StatusOK, ApiResponse{
		Success: true,
		Message: "Login successful",
		Data: map[string]interface{}{
			"token": token,
			"user":  user,
		},
	})
}
