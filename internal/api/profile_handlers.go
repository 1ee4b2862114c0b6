package api

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/Toyowa5296/poliform/internal/common"
	"github.com/Toyowa5296/poliform/internal/models/dtos"
)

// GetProfileHandler handles GET /api/v1/me
func GetProfileHandler(deps *Dependencies) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		initTime := time.Now()

		profile, err := deps.Services.Profile.Get(r.Context(), callerID(r))
		if err != nil {
			fail(w, r, deps.Services.EventLog, initTime, err, "get profile")
			return
		}

		common.RespondSuccess(w, initTime, "Profile fetched", profile)
	}
}

// UpdateProfileHandler handles PUT /api/v1/me
func UpdateProfileHandler(deps *Dependencies) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		initTime := time.Now()
		var req dtos.ProfileUpdateRequest

		if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.Name == "" {
			common.RespondError(w, initTime, err, "name is required", http.StatusBadRequest)
			return
		}

		profile, err := deps.Services.Profile.Update(r.Context(), callerID(r), req)
		if err != nil {
			fail(w, r, deps.Services.EventLog, initTime, err, "update profile")
			return
		}

		common.RespondSuccess(w, initTime, "Profile updated", profile)
	}
}

// UploadAvatarHandler handles POST /api/v1/me/avatar
func UploadAvatarHandler(deps *Dependencies) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		initTime := time.Now()

		if err := r.ParseMultipartForm(maxUploadBytes); err != nil {
			common.RespondError(w, initTime, err, "Invalid upload", http.StatusBadRequest)
			return
		}
		file, header, err := r.FormFile("file")
		if err != nil {
			common.RespondError(w, initTime, err, "file field is required", http.StatusBadRequest)
			return
		}
		defer file.Close()

		url, err := deps.Services.Profile.SetAvatar(r.Context(), callerID(r), header.Filename, file)
		if err != nil {
			fail(w, r, deps.Services.EventLog, initTime, err, "upload avatar")
			return
		}

		common.RespondSuccess(w, initTime, "Avatar uploaded", dtos.UploadResponse{URL: url})
	}
}

// ListTagsHandler handles GET /api/v1/tags
func ListTagsHandler(deps *Dependencies) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		initTime := time.Now()

		catalog, err := deps.Services.Tag.Catalog(r.Context())
		if err != nil {
			fail(w, r, deps.Services.EventLog, initTime, err, "list tags")
			return
		}

		common.RespondSuccess(w, initTime, "Tags fetched", catalog)
	}
}
