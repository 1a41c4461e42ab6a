package controllers

import (
	"net/http"

	"github.com/angelmondragon/shopflow-backend/api/responses"
	"github.com/angelmondragon/shopflow-backend/api/validators"
	"github.com/angelmondragon/shopflow-backend/internal/session"
	pkgerrors "github.com/angelmondragon/shopflow-backend/pkg/errors"
	"github.com/angelmondragon/shopflow-backend/pkg/logger"
	"github.com/angelmondragon/shopflow-backend/pkg/types"
	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
)

type loginRequest struct {
	Name   string `json:"name" validate:"required"`
	Email  string `json:"email" validate:"required,email"`
	Avatar string `json:"avatar"`
}

type updateProfileRequest struct {
	Name   *string `json:"name"`
	Email  *string `json:"email" validate:"omitempty,email"`
	Avatar *string `json:"avatar"`
}

type addAddressRequest struct {
	Label    string `json:"label"`
	FullName string `json:"fullName" validate:"required"`
	Line1    string `json:"line1" validate:"required"`
	City     string `json:"city" validate:"required"`
	ZipCode  string `json:"zipCode" validate:"required"`
	Phone    string `json:"phone" validate:"required"`
}

func SessionLogin(sess *session.Session, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var payload loginRequest
		if err := validators.DecodeJSONBody(r, &payload); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		profile := types.Profile{
			Name:   payload.Name,
			Email:  payload.Email,
			Avatar: payload.Avatar,
		}
		sess.Login(profile)
		logg.Info(r.Context(), "session.login")
		responses.WriteSuccess(w, profile)
	}
}

// SessionLogout ends the session and discards everything tied to it,
// including the order history and address book.
func SessionLogout(sess *session.Session, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		sess.Logout()
		logg.Info(r.Context(), "session.logout")
		responses.WriteSuccess(w, map[string]bool{"isAuthenticated": false})
	}
}

func SessionProfile(sess *session.Session, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		profile, ok := sess.Profile()
		if !ok {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeUnauthorized, "no active session"))
			return
		}
		responses.WriteSuccess(w, profile)
	}
}

func SessionUpdateProfile(sess *session.Session, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var payload updateProfileRequest
		if err := validators.DecodeJSONBody(r, &payload); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		profile, err := sess.UpdateProfile(session.ProfileUpdate{
			Name:   payload.Name,
			Email:  payload.Email,
			Avatar: payload.Avatar,
		})
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, profile)
	}
}

func SessionAddresses(sess *session.Session) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		responses.WriteSuccess(w, sess.Addresses())
	}
}

func SessionAddAddress(sess *session.Session, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var payload addAddressRequest
		if err := validators.DecodeJSONBody(r, &payload); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		saved := sess.AddAddress(types.Address{
			Label:    payload.Label,
			FullName: payload.FullName,
			Line1:    payload.Line1,
			City:     payload.City,
			ZipCode:  payload.ZipCode,
			Phone:    payload.Phone,
		})
		responses.WriteSuccessStatus(w, http.StatusCreated, saved)
	}
}

func SessionRemoveAddress(sess *session.Session, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := uuid.Parse(chi.URLParam(r, "addressId"))
		if err != nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeValidation, "addressId must be a valid uuid").WithDetails(map[string]any{"field": "addressId"}))
			return
		}
		sess.RemoveAddress(id)
		responses.WriteSuccess(w, sess.Addresses())
	}
}

func SessionOrders(sess *session.Session) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		responses.WriteSuccess(w, sess.Orders())
	}
}
