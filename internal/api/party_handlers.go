package api

import (
	"encoding/json"
	"net/http"
	"strings"
	"time"

	"github.com/Toyowa5296/poliform/internal/auth"
	"github.com/Toyowa5296/poliform/internal/common"
	"github.com/Toyowa5296/poliform/internal/models/dtos"

	"github.com/go-chi/chi/v5"
)

const maxUploadBytes = 5 << 20

// callerID returns the authenticated user's id, or "" on anonymous requests.
func callerID(r *http.Request) string {
	if claims := auth.GetUserClaims(r.Context()); claims != nil {
		return claims.UserID()
	}
	return ""
}

// tagFilter collects the tags query parameter. Both repeated parameters and
// comma-separated values are accepted.
func tagFilter(r *http.Request) []string {
	var tags []string
	for _, raw := range r.URL.Query()["tags"] {
		for _, tag := range strings.Split(raw, ",") {
			if tag = strings.TrimSpace(tag); tag != "" {
				tags = append(tags, tag)
			}
		}
	}
	return tags
}

// ListPartiesHandler handles GET /api/v1/parties
func ListPartiesHandler(deps *Dependencies) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		initTime := time.Now()

		resp, err := deps.Services.PartyQuery.List(r.Context(), callerID(r), r.URL.Query().Get("keyword"), tagFilter(r))
		if err != nil {
			fail(w, r, deps.Services.EventLog, initTime, err, "list parties")
			return
		}

		common.RespondSuccess(w, initTime, "Parties fetched", resp)
	}
}

// GetPartyHandler handles GET /api/v1/parties/{partyID}
func GetPartyHandler(deps *Dependencies) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		initTime := time.Now()
		partyID := chi.URLParam(r, "partyID")

		resp, err := deps.Services.PartyQuery.Detail(r.Context(), callerID(r), partyID)
		if err != nil {
			fail(w, r, deps.Services.EventLog, initTime, err, "get party")
			return
		}

		common.RespondSuccess(w, initTime, "Party fetched", resp)
	}
}

// CreatePartyHandler handles POST /api/v1/parties
func CreatePartyHandler(deps *Dependencies) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		initTime := time.Now()
		var req dtos.PartyCreateRequest

		if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.Name == "" || req.Ideology == "" {
			common.RespondError(w, initTime, err, "name and ideology are required", http.StatusBadRequest)
			return
		}

		party, err := deps.Services.Party.Create(r.Context(), callerID(r), req)
		if err != nil {
			fail(w, r, deps.Services.EventLog, initTime, err, "create party")
			return
		}

		resp, err := deps.Services.PartyQuery.Detail(r.Context(), callerID(r), party.ID)
		if err != nil {
			fail(w, r, deps.Services.EventLog, initTime, err, "create party")
			return
		}

		common.RespondSuccess(w, initTime, "Party created", resp, http.StatusCreated)
	}
}

// UpdatePartyHandler handles PUT /api/v1/parties/{partyID}
func UpdatePartyHandler(deps *Dependencies) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		initTime := time.Now()
		partyID := chi.URLParam(r, "partyID")
		var req dtos.PartyUpdateRequest

		if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.Name == "" || req.Ideology == "" {
			common.RespondError(w, initTime, err, "name and ideology are required", http.StatusBadRequest)
			return
		}

		if _, err := deps.Services.Party.Update(r.Context(), callerID(r), partyID, req); err != nil {
			fail(w, r, deps.Services.EventLog, initTime, err, "update party")
			return
		}

		resp, err := deps.Services.PartyQuery.Detail(r.Context(), callerID(r), partyID)
		if err != nil {
			fail(w, r, deps.Services.EventLog, initTime, err, "update party")
			return
		}

		common.RespondSuccess(w, initTime, "Party updated", resp)
	}
}

// DeletePartyHandler handles DELETE /api/v1/parties/{partyID}
func DeletePartyHandler(deps *Dependencies) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		initTime := time.Now()
		partyID := chi.URLParam(r, "partyID")

		if err := deps.Services.Party.Delete(r.Context(), callerID(r), partyID); err != nil {
			fail(w, r, deps.Services.EventLog, initTime, err, "delete party")
			return
		}

		common.RespondSuccess(w, initTime, "Party deleted", nil)
	}
}

// SetPartyTagsHandler handles PUT /api/v1/parties/{partyID}/tags
func SetPartyTagsHandler(deps *Dependencies) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		initTime := time.Now()
		partyID := chi.URLParam(r, "partyID")
		var req dtos.SetTagsRequest

		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			common.RespondError(w, initTime, err, "Invalid tag payload", http.StatusBadRequest)
			return
		}

		if err := deps.Services.Party.ReplaceTags(r.Context(), callerID(r), partyID, req.TagIDs); err != nil {
			fail(w, r, deps.Services.EventLog, initTime, err, "set party tags")
			return
		}

		common.RespondSuccess(w, initTime, "Tags updated", nil)
	}
}

// UploadPartyLogoHandler handles POST /api/v1/parties/{partyID}/logo
func UploadPartyLogoHandler(deps *Dependencies) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		initTime := time.Now()
		partyID := chi.URLParam(r, "partyID")

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

		url, err := deps.Services.Party.SetLogo(r.Context(), callerID(r), partyID, header.Filename, file)
		if err != nil {
			fail(w, r, deps.Services.EventLog, initTime, err, "upload party logo")
			return
		}

		common.RespondSuccess(w, initTime, "Logo uploaded", dtos.UploadResponse{URL: url})
	}
}

// MyPartiesHandler handles GET /api/v1/me/parties
func MyPartiesHandler(deps *Dependencies) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		initTime := time.Now()

		resp, err := deps.Services.PartyQuery.MyParties(r.Context(), callerID(r))
		if err != nil {
			fail(w, r, deps.Services.EventLog, initTime, err, "list my parties")
			return
		}

		common.RespondSuccess(w, initTime, "Parties fetched", resp)
	}
}
