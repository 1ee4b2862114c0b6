package api

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/Toyowa5296/poliform/internal/common"
	"github.com/Toyowa5296/poliform/internal/models/dtos"

	"github.com/go-chi/chi/v5"
)

// ListCommentsHandler handles GET /api/v1/parties/{partyID}/comments
func ListCommentsHandler(deps *Dependencies) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		initTime := time.Now()
		partyID := chi.URLParam(r, "partyID")

		comments, err := deps.Services.Comment.ListByParty(r.Context(), partyID)
		if err != nil {
			fail(w, r, deps.Services.EventLog, initTime, err, "list comments")
			return
		}

		common.RespondSuccess(w, initTime, "Comments fetched", comments)
	}
}

// CreateCommentHandler handles POST /api/v1/parties/{partyID}/comments
func CreateCommentHandler(deps *Dependencies) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		initTime := time.Now()
		partyID := chi.URLParam(r, "partyID")
		var req dtos.CommentRequest

		if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.Content == "" {
			common.RespondError(w, initTime, err, "content is required", http.StatusBadRequest)
			return
		}

		comment, err := deps.Services.Comment.Create(r.Context(), callerID(r), partyID, req.Content)
		if err != nil {
			fail(w, r, deps.Services.EventLog, initTime, err, "create comment")
			return
		}

		common.RespondSuccess(w, initTime, "Comment posted", comment, http.StatusCreated)
	}
}

// UpdateCommentHandler handles PUT /api/v1/comments/{commentID}
func UpdateCommentHandler(deps *Dependencies) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		initTime := time.Now()
		commentID := chi.URLParam(r, "commentID")
		var req dtos.CommentRequest

		if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.Content == "" {
			common.RespondError(w, initTime, err, "content is required", http.StatusBadRequest)
			return
		}

		if err := deps.Services.Comment.Update(r.Context(), callerID(r), commentID, req.Content); err != nil {
			fail(w, r, deps.Services.EventLog, initTime, err, "update comment")
			return
		}

		common.RespondSuccess(w, initTime, "Comment updated", nil)
	}
}

// DeleteCommentHandler handles DELETE /api/v1/comments/{commentID}
func DeleteCommentHandler(deps *Dependencies) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		initTime := time.Now()
		commentID := chi.URLParam(r, "commentID")

		if err := deps.Services.Comment.Delete(r.Context(), callerID(r), commentID); err != nil {
			fail(w, r, deps.Services.EventLog, initTime, err, "delete comment")
			return
		}

		common.RespondSuccess(w, initTime, "Comment deleted", nil)
	}
}

// CreatePillarHandler handles POST /api/v1/parties/{partyID}/pillars
func CreatePillarHandler(deps *Dependencies) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		initTime := time.Now()
		partyID := chi.URLParam(r, "partyID")
		var req dtos.PillarRequest

		if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.Content == "" {
			common.RespondError(w, initTime, err, "content is required", http.StatusBadRequest)
			return
		}

		pillar, err := deps.Services.Pillar.Create(r.Context(), callerID(r), partyID, req.Content)
		if err != nil {
			fail(w, r, deps.Services.EventLog, initTime, err, "create pillar")
			return
		}

		common.RespondSuccess(w, initTime, "Pillar created", pillar, http.StatusCreated)
	}
}

// UpdatePillarHandler handles PUT /api/v1/parties/{partyID}/pillars/{pillarID}
func UpdatePillarHandler(deps *Dependencies) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		initTime := time.Now()
		partyID := chi.URLParam(r, "partyID")
		pillarID := chi.URLParam(r, "pillarID")
		var req dtos.PillarRequest

		if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.Content == "" {
			common.RespondError(w, initTime, err, "content is required", http.StatusBadRequest)
			return
		}

		if err := deps.Services.Pillar.Update(r.Context(), callerID(r), partyID, pillarID, req.Content); err != nil {
			fail(w, r, deps.Services.EventLog, initTime, err, "update pillar")
			return
		}

		common.RespondSuccess(w, initTime, "Pillar updated", nil)
	}
}

// DeletePillarHandler handles DELETE /api/v1/parties/{partyID}/pillars/{pillarID}
func DeletePillarHandler(deps *Dependencies) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		initTime := time.Now()
		partyID := chi.URLParam(r, "partyID")
		pillarID := chi.URLParam(r, "pillarID")

		if err := deps.Services.Pillar.Delete(r.Context(), callerID(r), partyID, pillarID); err != nil {
			fail(w, r, deps.Services.EventLog, initTime, err, "delete pillar")
			return
		}

		common.RespondSuccess(w, initTime, "Pillar deleted", nil)
	}
}
