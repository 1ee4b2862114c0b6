package api

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/Toyowa5296/poliform/internal/auth"
	"github.com/Toyowa5296/poliform/internal/common"
	"github.com/Toyowa5296/poliform/internal/models/dtos"
)

// SignupHandler handles POST /api/v1/auth/signup
func SignupHandler(deps *Dependencies) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		initTime := time.Now()
		var req dtos.SignupRequest

		if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.Email == "" || req.Password == "" || req.Name == "" {
			common.RespondError(w, initTime, err, "email, password, and name are required", http.StatusBadRequest)
			return
		}

		resp, err := deps.Services.Auth.Signup(r.Context(), req)
		if err != nil {
			fail(w, r, deps.Services.EventLog, initTime, err, "signup")
			return
		}

		common.RespondSuccess(w, initTime, "Account created", resp, http.StatusCreated)
	}
}

// LoginHandler handles POST /api/v1/auth/login
func LoginHandler(deps *Dependencies) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		initTime := time.Now()
		var req dtos.LoginRequest

		if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.Email == "" || req.Password == "" {
			common.RespondError(w, initTime, err, "email and password are required", http.StatusBadRequest)
			return
		}

		resp, err := deps.Services.Auth.Login(r.Context(), req)
		if err != nil {
			fail(w, r, deps.Services.EventLog, initTime, err, "login")
			return
		}

		common.RespondSuccess(w, initTime, "Logged in", resp)
	}
}

// LogoutHandler handles POST /api/v1/auth/logout
func LogoutHandler(deps *Dependencies) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		initTime := time.Now()

		claims := auth.GetUserClaims(r.Context())
		if claims == nil {
			common.RespondError(w, initTime, nil, "Unauthorized", http.StatusUnauthorized)
			return
		}

		if err := deps.Services.Auth.Logout(r.Context(), claims); err != nil {
			fail(w, r, deps.Services.EventLog, initTime, err, "logout")
			return
		}

		common.RespondSuccess(w, initTime, "Logged out", nil)
	}
}
