package api

import (
	"net/http"
	"time"

	"github.com/Toyowa5296/poliform/internal/common"
	"github.com/Toyowa5296/poliform/internal/constants"

	"github.com/go-chi/chi/v5"
)

// ApplyHandler handles POST /api/v1/parties/{partyID}/apply
func ApplyHandler(deps *Dependencies) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		initTime := time.Now()
		partyID := chi.URLParam(r, "partyID")

		resp, err := deps.Services.Membership.Apply(r.Context(), callerID(r), partyID)
		if err != nil {
			fail(w, r, deps.Services.EventLog, initTime, err, "apply to party")
			return
		}

		common.RespondSuccess(w, initTime, constants.StatusApplied, resp, http.StatusCreated)
	}
}

// CancelApplicationHandler handles DELETE /api/v1/parties/{partyID}/apply
func CancelApplicationHandler(deps *Dependencies) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		initTime := time.Now()
		partyID := chi.URLParam(r, "partyID")

		if err := deps.Services.Membership.Cancel(r.Context(), callerID(r), partyID); err != nil {
			fail(w, r, deps.Services.EventLog, initTime, err, "cancel application")
			return
		}

		common.RespondSuccess(w, initTime, constants.StatusCancelDone, nil)
	}
}

// ApproveApplicantHandler handles POST /api/v1/parties/{partyID}/applicants/{userID}/approve
func ApproveApplicantHandler(deps *Dependencies) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		initTime := time.Now()
		partyID := chi.URLParam(r, "partyID")
		applicantID := chi.URLParam(r, "userID")

		resp, err := deps.Services.Membership.Approve(r.Context(), callerID(r), partyID, applicantID)
		if err != nil {
			fail(w, r, deps.Services.EventLog, initTime, err, "approve applicant")
			return
		}

		common.RespondSuccess(w, initTime, constants.StatusApproveDone, resp)
	}
}

// RejectApplicantHandler handles POST /api/v1/parties/{partyID}/applicants/{userID}/reject
func RejectApplicantHandler(deps *Dependencies) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		initTime := time.Now()
		partyID := chi.URLParam(r, "partyID")
		applicantID := chi.URLParam(r, "userID")

		resp, err := deps.Services.Membership.Reject(r.Context(), callerID(r), partyID, applicantID)
		if err != nil {
			fail(w, r, deps.Services.EventLog, initTime, err, "reject applicant")
			return
		}

		common.RespondSuccess(w, initTime, constants.StatusRejectDone, resp)
	}
}

// ListApplicantsHandler handles GET /api/v1/parties/{partyID}/applicants
func ListApplicantsHandler(deps *Dependencies) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		initTime := time.Now()
		partyID := chi.URLParam(r, "partyID")

		applicants, err := deps.Services.Membership.Applicants(r.Context(), callerID(r), partyID)
		if err != nil {
			fail(w, r, deps.Services.EventLog, initTime, err, "list applicants")
			return
		}

		common.RespondSuccess(w, initTime, "Applicants fetched", applicants)
	}
}

// ToggleSupportHandler handles POST /api/v1/parties/{partyID}/support
func ToggleSupportHandler(deps *Dependencies) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		initTime := time.Now()
		partyID := chi.URLParam(r, "partyID")

		resp, err := deps.Services.Support.Toggle(r.Context(), callerID(r), partyID)
		if err != nil {
			fail(w, r, deps.Services.EventLog, initTime, err, "toggle support")
			return
		}

		common.RespondSuccess(w, initTime, "Support toggled", resp)
	}
}
