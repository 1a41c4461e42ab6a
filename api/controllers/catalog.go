package controllers

import (
	"net/http"

	"github.com/angelmondragon/shopflow-backend/api/responses"
	"github.com/angelmondragon/shopflow-backend/api/validators"
	"github.com/angelmondragon/shopflow-backend/internal/catalog"
	"github.com/angelmondragon/shopflow-backend/internal/search"
	"github.com/angelmondragon/shopflow-backend/pkg/logger"
)

type setCategoryRequest struct {
	Category string `json:"category" validate:"required"`
}

// Query is intentionally not required: committing an empty query
// clears the search filter.
type searchRequest struct {
	Query string `json:"query"`
}

// CatalogSnapshot returns the full catalog state, including the
// active category, committed query and the filtered product list.
func CatalogSnapshot(store *catalog.Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		responses.WriteSuccess(w, store.Snapshot())
	}
}

// CatalogProducts returns only the filtered product list.
func CatalogProducts(store *catalog.Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		responses.WriteSuccess(w, store.FilteredItems())
	}
}

func CatalogSetCategory(store *catalog.Store, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var payload setCategoryRequest
		if err := validators.DecodeJSONBody(r, &payload); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, store.SetCategory(payload.Category))
	}
}

func CatalogSearch(store *catalog.Store, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var payload searchRequest
		if err := validators.DecodeJSONBody(r, &payload); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, store.SetSearchQuery(payload.Query))
	}
}

// CatalogSearchTyping treats each request as one keystroke: the query
// only reaches the catalog store once it survives the debounce window.
func CatalogSearchTyping(deb *search.Debouncer, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var payload searchRequest
		if err := validators.DecodeJSONBody(r, &payload); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		deb.Schedule(payload.Query)
		responses.WriteSuccessStatus(w, http.StatusAccepted, map[string]bool{"pending": deb.Pending()})
	}
}
