package handler

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/oapi-codegen/runtime"

	"github.com/pkordes/travel-agency/backend/internal/domain"
)

// resource describes how one entity is exposed over HTTP.
type resource[T any, P any] struct {
	svc Resource[T, P]

	label    string // human name used in messages, e.g. "Written review"
	singular string // JSON key for one record, e.g. "writtenReview"
	plural   string // JSON key for a list, e.g. "writtenReviews"

	// public exposes GET / and GET /{id} to anonymous callers, narrowed to
	// visible statuses. Otherwise every read requires an admin.
	public bool

	// submit, when set, replaces the admin create with an anonymous
	// submission rate limited under limitKey.
	submit   func(ctx context.Context, v T) (T, error)
	limitKey string

	// redact, when set, strips private fields from records served on the
	// public routes.
	redact func(T) T
}

// mount registers the standard routes for res on r:
//
//	GET    /        list (public: visible only)
//	GET    /admin   admin list, any status
//	GET    /{id}    single record (public: visible only)
//	POST   /        create (admin) or submit (anonymous)
//	PUT    /{id}    partial update (admin)
//	DELETE /{id}    delete, returns the removed record (admin)
func mount[T any, P any](s *Server, r chi.Router, res resource[T, P]) {
	if res.public {
		r.Get("/", listHandler(s, res, false))
		r.Get("/{id}", getHandler(s, res, false))
	}
	if res.submit != nil {
		r.With(s.limiter.Limit(res.limitKey)).Post("/", createHandler(s, res))
	}

	r.Group(func(r chi.Router) {
		r.Use(s.admin)
		r.Get("/admin", listHandler(s, res, true))
		if !res.public {
			r.Get("/", listHandler(s, res, true))
			r.Get("/{id}", getHandler(s, res, true))
		}
		if res.submit == nil {
			r.Post("/", createHandler(s, res))
		}
		r.Put("/{id}", updateHandler(s, res))
		r.Delete("/{id}", deleteHandler(s, res))
	})
}

func listHandler[T any, P any](s *Server, res resource[T, P], admin bool) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		q, err := listQuery(r)
		if err != nil {
			s.badRequest(w, err.Error())
			return
		}

		var items []T
		if admin {
			items, err = res.svc.List(r.Context(), q)
		} else {
			items, err = res.svc.ListVisible(r.Context(), q)
		}
		if err != nil {
			s.fail(w, r, res.label, err)
			return
		}
		if !admin && res.redact != nil {
			for i := range items {
				items[i] = res.redact(items[i])
			}
		}
		writeJSON(w, http.StatusOK, map[string]any{res.plural: items, "count": len(items)})
	}
}

func getHandler[T any, P any](s *Server, res resource[T, P], admin bool) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := pathID(r)
		if err != nil {
			s.badRequest(w, err.Error())
			return
		}

		var v T
		if admin {
			v, err = res.svc.Get(r.Context(), id)
		} else {
			v, err = res.svc.GetVisible(r.Context(), id)
		}
		if err != nil {
			s.fail(w, r, res.label, err)
			return
		}
		if !admin && res.redact != nil {
			v = res.redact(v)
		}
		writeJSON(w, http.StatusOK, map[string]any{res.singular: v})
	}
}

// createHandler calls res.submit when set and the service's Create otherwise.
func createHandler[T any, P any](s *Server, res resource[T, P]) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var in T
		if !s.decode(w, r, &in) {
			return
		}
		create := res.submit
		if create == nil {
			create = res.svc.Create
		}
		created, err := create(r.Context(), in)
		if err != nil {
			s.fail(w, r, res.label, err)
			return
		}
		writeJSON(w, http.StatusCreated, map[string]any{
			"message":    res.label + " created successfully",
			res.singular: created,
		})
	}
}

func updateHandler[T any, P any](s *Server, res resource[T, P]) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := pathID(r)
		if err != nil {
			s.badRequest(w, err.Error())
			return
		}
		var p P
		if !s.decode(w, r, &p) {
			return
		}
		updated, err := res.svc.Update(r.Context(), id, p)
		if err != nil {
			s.fail(w, r, res.label, err)
			return
		}
		writeJSON(w, http.StatusOK, map[string]any{
			"message":    res.label + " updated successfully",
			res.singular: updated,
		})
	}
}

func deleteHandler[T any, P any](s *Server, res resource[T, P]) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := pathID(r)
		if err != nil {
			s.badRequest(w, err.Error())
			return
		}
		deleted, err := res.svc.Delete(r.Context(), id)
		if err != nil {
			s.fail(w, r, res.label, err)
			return
		}
		writeJSON(w, http.StatusOK, map[string]any{
			"message":    res.label + " deleted successfully",
			res.singular: deleted,
		})
	}
}

// pathID binds the {id} path parameter. Ids are positive integers.
func pathID(r *http.Request) (int64, error) {
	var id int64
	err := runtime.BindStyledParameterWithOptions("simple", "id", chi.URLParam(r, "id"), &id,
		runtime.BindStyledParameterOptions{ParamLocation: runtime.ParamLocationPath, Required: true})
	if err != nil || id < 1 {
		return 0, fmt.Errorf("invalid id %q", chi.URLParam(r, "id"))
	}
	return id, nil
}

// reservedParams are list query parameters that are not entity filters.
var reservedParams = map[string]bool{
	"search": true, "limit": true, "offset": true, "status": true, "format": true,
}

// listQuery binds search, limit, offset and status. Every other non-empty
// query parameter is passed through as an entity filter; keys an entity
// does not declare are ignored by the repository.
func listQuery(r *http.Request) (domain.ListQuery, error) {
	params := r.URL.Query()

	var (
		search        *string
		limit, offset *int
	)
	if err := runtime.BindQueryParameter("form", true, false, "search", params, &search); err != nil {
		return domain.ListQuery{}, errors.New("invalid search parameter")
	}
	if err := runtime.BindQueryParameter("form", true, false, "limit", params, &limit); err != nil {
		return domain.ListQuery{}, errors.New("invalid limit parameter")
	}
	if err := runtime.BindQueryParameter("form", true, false, "offset", params, &offset); err != nil {
		return domain.ListQuery{}, errors.New("invalid offset parameter")
	}

	q := domain.NewListQuery(search, limit, offset)
	q.Status = params.Get("status")
	for key, values := range params {
		if reservedParams[key] || len(values) == 0 || values[0] == "" {
			continue
		}
		if q.Filters == nil {
			q.Filters = map[string]string{}
		}
		q.Filters[key] = values[0]
	}
	return q, nil
}
