package api

import (
	"errors"
	"log"
	"net/http"

	"serwer-mediow/internal/database"

	"github.com/go-chi/chi/v5"
)

const (
	msgUserNotFound         = "User not found"
	msgPasswordIncorrect    = "Password is incorrect"
	msgOldPasswordIncorrect = "Old password is incorrect"
)

type UsersResponse struct {
	Users []string `json:"users"`
}

// PublicUser is the projection of an account exposed to other clients.
// It never carries password material.
type PublicUser struct {
	ScreenName  string `json:"screen_name"`
	DataDirName string `json:"data_dir_name"`
}

type UserResponse struct {
	User PublicUser `json:"user"`
}

type CheckPasswordResponse struct {
	Result bool `json:"result"`
}

// @Summary      List users
// @Description  Returns the screen names of all registered users.
// @Tags         users
// @Produce      json
// @Success      200  {object}  UsersResponse
// @Router       /users [get]
func (s *Server) ListUsersHandler(w http.ResponseWriter, r *http.Request) {
	names, err := s.store.ListScreenNames(r.Context())
	if err != nil {
		http.Error(w, "Failed to list users", http.StatusInternalServerError)
		return
	}

	respondJSON(w, UsersResponse{Users: names})
}

// @Summary      Get a user's public profile
// @Description  Returns the screen name and namespace identifier of a single user.
// @Tags         users
// @Produce      json
// @Param        screen_name  path      string  true  "Screen name"
// @Success      200          {object}  UserResponse
// @Router       /users/{screen_name} [get]
func (s *Server) GetUserHandler(w http.ResponseWriter, r *http.Request) {
	screenName := chi.URLParam(r, "screen_name")

	user, err := s.store.GetUser(r.Context(), screenName)
	if err != nil {
		respondError(w, msgUserNotFound)
		return
	}

	respondJSON(w, UserResponse{User: PublicUser{
		ScreenName:  user.ScreenName,
		DataDirName: user.DataDirName,
	}})
}

// @Summary      Check a password
// @Description  Verifies a password against the stored hash for a screen name.
// @Tags         users
// @Produce      json
// @Param        screen_name  query     string  true   "Screen name"
// @Param        password     query     string  false  "Password to verify"
// @Success      200          {object}  CheckPasswordResponse
// @Router       /check-password [get]
func (s *Server) CheckPasswordHandler(w http.ResponseWriter, r *http.Request) {
	screenName := r.URL.Query().Get("screen_name")
	password := r.URL.Query().Get("password")

	if screenName == "" {
		http.Error(w, "screen_name is required", http.StatusBadRequest)
		return
	}

	result, err := s.store.CheckPassword(r.Context(), screenName, password)
	if err != nil {
		respondError(w, msgUserNotFound)
		return
	}

	respondJSON(w, CheckPasswordResponse{Result: result})
}

// @Summary      Create a user or rotate their password
// @Description  Registers a new screen name, or changes the password of an existing one when old_password matches.
// @Tags         users
// @Produce      json
// @Param        screen_name   query     string  true   "Screen name"
// @Param        password      query     string  false  "New password"
// @Param        old_password  query     string  false  "Current password (required for existing users)"
// @Success      200           {object}  StatusResponse
// @Failure      400           {string}  string "screen_name is required"
// @Router       /create-or-update-user [post]
func (s *Server) CreateOrUpdateUserHandler(w http.ResponseWriter, r *http.Request) {
	screenName := r.URL.Query().Get("screen_name")
	password := r.URL.Query().Get("password")
	oldPassword := r.URL.Query().Get("old_password")

	if screenName == "" {
		http.Error(w, "screen_name is required", http.StatusBadRequest)
		return
	}

	_, err := s.store.CreateOrUpdateUser(r.Context(), screenName, password, oldPassword)
	if err != nil {
		if errors.Is(err, database.ErrOldPasswordIncorrect) {
			respondError(w, msgOldPasswordIncorrect)
			return
		}
		log.Printf("ERROR: Failed to create or update user %q: %v", screenName, err)
		respondError(w, "Failed to save user")
		return
	}

	respondOK(w)
}
