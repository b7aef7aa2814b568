package handler

import (
	"expvar"
	"net/http"

	_ "github.com/emzola/catalog/docs"
	"github.com/emzola/catalog/view"
	"github.com/julienschmidt/httprouter"
	httpSwagger "github.com/swaggo/http-swagger/v2"
)

// Routes wires the catalog screen, its JSON snapshot and the operational endpoints.
func (h *Handler) Routes() http.Handler {
	router := httprouter.New()

	router.NotFound = http.HandlerFunc(h.notFoundResponse)
	router.MethodNotAllowed = http.HandlerFunc(h.methodNotAllowed)

	router.ServeFiles("/static/*filepath", http.FS(view.Static()))

	router.HandlerFunc(http.MethodGet, "/", h.session(h.showCatalogHandler))
	router.HandlerFunc(http.MethodGet, "/books/:bookId/edit", h.session(h.editBookHandler))
	router.HandlerFunc(http.MethodGet, "/books/:bookId/delete", h.session(h.confirmDeleteBookHandler))
	router.HandlerFunc(http.MethodPost, "/books/:bookId/delete", h.session(h.deleteBookHandler))

	router.HandlerFunc(http.MethodGet, "/form/new", h.session(h.newBookHandler))
	router.HandlerFunc(http.MethodPost, "/form", h.session(h.submitFormHandler))
	router.HandlerFunc(http.MethodPost, "/form/fields", h.session(h.updateFormFieldsHandler))
	router.HandlerFunc(http.MethodPost, "/form/close", h.session(h.closeFormHandler))

	router.HandlerFunc(http.MethodGet, "/v1/catalog", h.session(h.showCatalogJSONHandler))
	router.HandlerFunc(http.MethodGet, "/v1/healthcheck", h.healthcheckHandler)
	router.HandlerFunc(http.MethodGet, "/v1/swagger/*any", httpSwagger.Handler(httpSwagger.URL("/v1/swagger/doc.json")))

	if h.config.Metrics.Enabled {
		router.HandlerFunc(http.MethodGet, "/debug/vars", h.basicAuth(expvar.Handler().ServeHTTP))
	}

	return h.metrics(h.recoverPanic(h.rateLimit(router)))
}
