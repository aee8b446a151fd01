package work

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	requestutil "github.com/oratiodb/oratio/internal/platform/request"
	"github.com/oratiodb/oratio/internal/platform/respond"
	"github.com/oratiodb/oratio/pkg/convert"
	"github.com/oratiodb/oratio/pkg/pagination"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// Routes returns the read-only work endpoints.
func (handler *Handler) Routes() chi.Router {
	router := chi.NewRouter()
	router.Get("/", handler.listWorks)
	router.Get("/{id}", handler.getWork)
	return router
}

func (handler *Handler) listWorks(writer http.ResponseWriter, request *http.Request) {
	paginationParams := pagination.FromRequest(request)
	queryValues := request.URL.Query()

	filter := Filter{
		Query:    queryValues.Get("q"),
		Lang:     queryValues.Get("lang"),
		AuthorID: convert.ToInt(queryValues.Get("author")),
	}

	works, total, err := handler.service.ListWorks(request.Context(), filter, paginationParams.Limit, paginationParams.Offset())
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.Paginated(writer, works, pagination.NewMeta(paginationParams.Page, paginationParams.Limit, total))
}

func (handler *Handler) getWork(writer http.ResponseWriter, request *http.Request) {
	workID, err := requestutil.IntParam(request, "id")
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	work, err := handler.service.GetWork(request.Context(), workID)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, work)
}
