package character

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	requestutil "github.com/oratiodb/oratio/internal/platform/request"
	"github.com/oratiodb/oratio/internal/platform/respond"
	"github.com/oratiodb/oratio/pkg/convert"
	"github.com/oratiodb/oratio/pkg/pagination"
	"github.com/oratiodb/oratio/pkg/pointer"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// Routes returns the read-only character endpoints.
func (handler *Handler) Routes() chi.Router {
	router := chi.NewRouter()
	router.Get("/", handler.listCharacters)
	router.Get("/{id}", handler.getCharacter)
	return router
}

// InstanceRoutes returns the read-only character-instance endpoints,
// mounted separately from /characters.
func (handler *Handler) InstanceRoutes() chi.Router {
	router := chi.NewRouter()
	router.Get("/", handler.listInstances)
	router.Get("/{id}", handler.getInstance)
	return router
}

func (handler *Handler) listCharacters(writer http.ResponseWriter, request *http.Request) {
	paginationParams := pagination.FromRequest(request)
	queryValues := request.URL.Query()

	filter := Filter{
		Query:  queryValues.Get("q"),
		Being:  queryValues.Get("being"),
		Number: queryValues.Get("number"),
		Gender: queryValues.Get("gender"),
	}

	characters, total, err := handler.service.ListCharacters(request.Context(), filter, paginationParams.Limit, paginationParams.Offset())
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.Paginated(writer, characters, pagination.NewMeta(paginationParams.Page, paginationParams.Limit, total))
}

func (handler *Handler) getCharacter(writer http.ResponseWriter, request *http.Request) {
	characterID, err := requestutil.IntParam(request, "id")
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	character, err := handler.service.GetCharacter(request.Context(), characterID)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, character)
}

func (handler *Handler) listInstances(writer http.ResponseWriter, request *http.Request) {
	paginationParams := pagination.FromRequest(request)
	queryValues := request.URL.Query()

	filter := InstanceFilter{
		Query:   queryValues.Get("q"),
		Context: queryValues.Get("context"),
		CharID:  convert.ToInt(queryValues.Get("char")),
	}
	if raw := queryValues.Get("anon"); raw != "" {
		filter.Anon = pointer.To(convert.ToBool(raw))
	}

	instances, total, err := handler.service.ListInstances(request.Context(), filter, paginationParams.Limit, paginationParams.Offset())
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.Paginated(writer, instances, pagination.NewMeta(paginationParams.Page, paginationParams.Limit, total))
}

func (handler *Handler) getInstance(writer http.ResponseWriter, request *http.Request) {
	instanceID, err := requestutil.IntParam(request, "id")
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	instance, err := handler.service.GetInstance(request.Context(), instanceID)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, instance)
}
