package speech

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

// Routes returns the read-only speech endpoints.
func (handler *Handler) Routes() chi.Router {
	router := chi.NewRouter()
	router.Get("/", handler.listSpeeches)
	router.Get("/{id}", handler.getSpeech)
	return router
}

// ClusterRoutes returns the read-only speech-cluster endpoints.
func (handler *Handler) ClusterRoutes() chi.Router {
	router := chi.NewRouter()
	router.Get("/", handler.listClusters)
	router.Get("/{id}", handler.getCluster)
	return router
}

func (handler *Handler) listSpeeches(writer http.ResponseWriter, request *http.Request) {
	paginationParams := pagination.FromRequest(request)
	queryValues := request.URL.Query()

	filter := Filter{
		WorkID:      convert.ToInt(queryValues.Get("work")),
		ClusterID:   convert.ToInt(queryValues.Get("cluster")),
		Type:        queryValues.Get("type"),
		SpeakerID:   convert.ToInt(queryValues.Get("speaker")),
		AddresseeID: convert.ToInt(queryValues.Get("addressee")),
		TagType:     queryValues.Get("tag"),
	}

	speeches, total, err := handler.service.ListSpeeches(request.Context(), filter, paginationParams.Limit, paginationParams.Offset())
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.Paginated(writer, speeches, pagination.NewMeta(paginationParams.Page, paginationParams.Limit, total))
}

func (handler *Handler) getSpeech(writer http.ResponseWriter, request *http.Request) {
	speechID, err := requestutil.IntParam(request, "id")
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	speech, err := handler.service.GetSpeech(request.Context(), speechID)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, speech)
}

func (handler *Handler) listClusters(writer http.ResponseWriter, request *http.Request) {
	paginationParams := pagination.FromRequest(request)

	clusters, total, err := handler.service.ListClusters(request.Context(), paginationParams.Limit, paginationParams.Offset())
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.Paginated(writer, clusters, pagination.NewMeta(paginationParams.Page, paginationParams.Limit, total))
}

func (handler *Handler) getCluster(writer http.ResponseWriter, request *http.Request) {
	clusterID, err := requestutil.IntParam(request, "id")
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	cluster, err := handler.service.GetCluster(request.Context(), clusterID)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, cluster)
}
