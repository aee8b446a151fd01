package stats

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/oratiodb/oratio/internal/platform/respond"
)

type Handler struct {
	repo Repository
}

func NewHandler(repo Repository) *Handler {
	return &Handler{repo: repo}
}

func (handler *Handler) Routes() chi.Router {
	router := chi.NewRouter()
	router.Get("/", handler.getSummary)
	return router
}

func (handler *Handler) getSummary(writer http.ResponseWriter, request *http.Request) {
	summary, err := handler.repo.Summarize(request.Context())
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, summary)
}
