package handler

import (
	"context"
	"errors"
	"net/http"
	"strconv"

	"github.com/emzola/catalog/data"
	"github.com/emzola/catalog/internal/validator"
	"github.com/emzola/catalog/service"
	"github.com/emzola/catalog/view"
)

// apiContext detaches API calls from the browser request. Closing the tab or the
// form must not abort a request that is already in flight.
func apiContext(r *http.Request) context.Context {
	return context.WithoutCancel(r.Context())
}

// showCatalogHandler renders the catalog, loading it on the session's first visit
// and whenever ?reload is given.
func (h *Handler) showCatalogHandler(w http.ResponseWriter, r *http.Request) {
	s := h.contextGetSession(r)
	if !s.Catalog.Loaded() || r.URL.Query().Has("reload") {
		// Load failures are logged by the controller and leave the list unchanged.
		_ = s.Catalog.Load(apiContext(r))
	}
	h.renderPage(w, r, s, nil)
}

func (h *Handler) renderPage(w http.ResponseWriter, r *http.Request, s *Session, confirm *view.Confirm) {
	page := view.NewPage(s.Catalog.Snapshot(), s.flash.drain())
	page.Confirm = confirm
	h.render(w, r, http.StatusOK, "page", page)
}

// newBookHandler opens an empty form.
func (h *Handler) newBookHandler(w http.ResponseWriter, r *http.Request) {
	s := h.contextGetSession(r)
	s.Catalog.OpenCreate()
	h.redirectHome(w, r)
}

// editBookHandler opens the form on an existing record.
func (h *Handler) editBookHandler(w http.ResponseWriter, r *http.Request) {
	id, err := h.readIDParam(r, "bookId")
	if err != nil {
		h.notFoundResponse(w, r)
		return
	}
	s := h.contextGetSession(r)
	err = s.Catalog.OpenEditByID(apiContext(r), id)
	if errors.Is(err, service.ErrRecordNotFound) {
		h.notFoundResponse(w, r)
		return
	}
	// Any other failure has already been alerted to the user.
	h.redirectHome(w, r)
}

// confirmDeleteBookHandler asks the user before a record is deleted.
func (h *Handler) confirmDeleteBookHandler(w http.ResponseWriter, r *http.Request) {
	id, err := h.readIDParam(r, "bookId")
	if err != nil {
		h.notFoundResponse(w, r)
		return
	}
	s := h.contextGetSession(r)
	h.renderPage(w, r, s, &view.Confirm{
		Prompt: service.PromptDelete,
		Action: view.DeleteURL(id),
	})
}

// deleteBookHandler carries out a delete with the user's answer to the prompt.
func (h *Handler) deleteBookHandler(w http.ResponseWriter, r *http.Request) {
	id, err := h.readIDParam(r, "bookId")
	if err != nil {
		h.notFoundResponse(w, r)
		return
	}
	if err := r.ParseForm(); err != nil {
		h.badRequestResponse(w, r, err)
		return
	}
	answer := r.PostForm.Get("confirm")
	v := validator.New()
	if data.ValidateConfirmation(v, answer); !v.Valid() {
		h.failedValidationResponse(w, r, v.Errors)
		return
	}
	s := h.contextGetSession(r)
	// API failures are alerted by the controller.
	_ = s.Catalog.Delete(apiContext(r), id, func(string) bool {
		return answer == data.ConfirmYes
	})
	h.redirectHome(w, r)
}

// updateFormFieldsHandler receives keystrokes from the open form.
func (h *Handler) updateFormFieldsHandler(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		h.badRequestResponse(w, r, err)
		return
	}
	s := h.contextGetSession(r)
	if err := h.bindFields(s, r, true); err != nil {
		switch {
		case errors.Is(err, service.ErrFormClosed):
			h.formClosedResponse(w, r)
		default:
			h.badRequestResponse(w, r, err)
		}
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// submitFormHandler applies the posted field values and submits the form.
func (h *Handler) submitFormHandler(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		h.badRequestResponse(w, r, err)
		return
	}
	s := h.contextGetSession(r)
	err := h.bindFields(s, r, false)
	if err == nil {
		// Validation and API failures are alerted by the controller.
		err = s.Catalog.Submit(apiContext(r))
	}
	if errors.Is(err, service.ErrFormClosed) {
		h.restoreForm(s, r)
	}
	h.redirectHome(w, r)
}

// restoreForm reopens a form the session no longer holds, which happens when the
// session expired or the server restarted while the page still showed the form.
// The posted values are kept and the user is asked to submit again.
func (h *Handler) restoreForm(s *Session, r *http.Request) {
	opened := false
	if id, err := strconv.ParseInt(r.PostForm.Get(view.BookIDField), 10, 64); err == nil && id > 0 {
		opened = s.Catalog.OpenEditByID(apiContext(r), id) == nil
	}
	if !opened {
		s.Catalog.OpenCreate()
	}
	_ = h.bindFields(s, r, false)
	s.flash.Alert(service.MessageFormExpired)
}

// closeFormHandler discards the draft.
func (h *Handler) closeFormHandler(w http.ResponseWriter, r *http.Request) {
	s := h.contextGetSession(r)
	s.Catalog.CloseForm()
	h.redirectHome(w, r)
}

// bindFields copies posted values into the open form. With strict set, a field the
// form does not know is an error; otherwise it is ignored.
func (h *Handler) bindFields(s *Session, r *http.Request, strict bool) error {
	for name, values := range r.PostForm {
		if len(values) == 0 {
			continue
		}
		err := s.Catalog.SetField(name, values[len(values)-1])
		switch {
		case err == nil:
		case errors.Is(err, service.ErrUnknownField) && !strict:
		default:
			return err
		}
	}
	return nil
}

// catalogResponse documents the body of GET /v1/catalog.
type catalogResponse struct {
	Catalog service.State `json:"catalog"`
}

// ShowCatalog godoc
// @Summary Show the session's catalog
// @Description This endpoint returns the catalog screen state of the caller's session, loading it from the books API on first use
// @Tags catalog
// @Produce json
// @Success 200 {object} handler.catalogResponse
// @Failure 429
// @Failure 500
// @Router /v1/catalog [get]
func (h *Handler) showCatalogJSONHandler(w http.ResponseWriter, r *http.Request) {
	s := h.contextGetSession(r)
	if !s.Catalog.Loaded() {
		// Load failures are logged by the controller and leave the list unchanged.
		_ = s.Catalog.Load(apiContext(r))
	}
	err := h.encodeJSON(w, http.StatusOK, envelope{"catalog": s.Catalog.Snapshot()}, nil)
	if err != nil {
		h.serverErrorResponse(w, r, err)
	}
}
