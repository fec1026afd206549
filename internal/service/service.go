// Package service maps the notebook REST API onto the notebook store.
package service

import (
	"context"
	"errors"
	"io"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	httpSwagger "github.com/swaggo/http-swagger"
	"github.com/swaggo/swag"
	"gitlab.com/dirk.krummacker/notebook-service/internal/docs"
	"gitlab.com/dirk.krummacker/notebook-service/internal/metrics"
	"gitlab.com/dirk.krummacker/notebook-service/internal/model"
	"gitlab.com/dirk.krummacker/notebook-service/internal/storage"
	"gitlab.com/dirk.krummacker/notebook-service/internal/validator"
	"go.uber.org/zap"
)

// BasePath prefixes every route of the API.
const BasePath = "/api/v1"

const (
	defaultPage    = 1
	defaultPerPage = 10

	msgNotFound      = "Notebook not found."
	msgDeleted       = "Notebook deleted successfully"
	msgInvalidBody   = "Invalid request body."
	msgInternalError = "Internal server error."
)

// maxInt is the largest possible int value
const maxInt = int(^uint(0) >> 1)

// NotebookStore is the storage the handlers need.
type NotebookStore interface {
	List(ctx context.Context, limit int, offset int) ([]model.Notebook, error)
	Create(ctx context.Context, n *model.Notebook) (int64, error)
	Get(ctx context.Context, id int64) (model.Notebook, error)
	Update(ctx context.Context, id int64, n *model.Notebook) error
	Delete(ctx context.Context, id int64) error
}

// Options configures the router.
type Options struct {
	// Logger receives request and error logs. Nil means no logging.
	Logger *zap.Logger

	// Metrics records request metrics and serves GET /metrics. Nil disables both.
	Metrics *metrics.Recorder

	// RequestLogging writes one log line per request.
	RequestLogging bool

	// DebugErrors adds the underlying error text to 500 responses.
	DebugErrors bool
}

type handler struct {
	store       NotebookStore
	log         *zap.Logger
	debugErrors bool
}

// SetupHttpRouter initializes the REST API router and registers all endpoints.
//
// @title Notebook API
// @version 1.0
// @description CRUD service for notebook contacts.
// @BasePath /api/v1
func SetupHttpRouter(store NotebookStore, opts Options) *gin.Engine {
	h := &handler{store: store, log: opts.Logger, debugErrors: opts.DebugErrors}
	if h.log == nil {
		h.log = zap.NewNop()
	}

	router := gin.New()
	router.Use(requestID())
	if opts.Metrics != nil {
		router.Use(opts.Metrics.Middleware())
		router.GET("/metrics", gin.WrapH(opts.Metrics.Handler()))
	}
	if opts.RequestLogging {
		router.Use(requestLogger(h.log))
	}
	router.Use(h.recovery())

	api := router.Group(BasePath)
	api.GET("/notebook/", h.findNotebooks)
	api.POST("/notebook/", h.createNotebook)
	api.GET("/notebook/:id/", h.findNotebookByID)
	api.POST("/notebook/:id/", h.updateNotebookByID)
	api.DELETE("/notebook/:id/", h.deleteNotebookByID)
	api.GET("/docs/", h.apiDocs)
	api.GET("/docs/ui/*any", gin.WrapH(httpSwagger.Handler(httpSwagger.URL(BasePath+"/docs/"))))
	return router
}

// findNotebooks responds with one page of notebooks as JSON, in insertion order.
//
// The URL parameter 'page' selects the page, starting at 1. The URL parameter 'per_page' sets the
// page size. Missing, non-numeric or non-positive values fall back to page 1 and 10 entries. A
// page past the end yields an empty list.
//
// REST API calls:
//
//	> curl "http://localhost:8080/api/v1/notebook/"
//	> curl "http://localhost:8080/api/v1/notebook/?page=3&per_page=20"
//
// @Summary List notebooks
// @Tags Notebook
// @Produce json
// @Param page query int false "Page number, starting at 1" default(1)
// @Param per_page query int false "Entries per page" default(10)
// @Success 200 {array} model.Notebook
// @Router /notebook/ [get]
func (h *handler) findNotebooks(c *gin.Context) {
	page := positiveQueryInt(c, "page", defaultPage)
	perPage := positiveQueryInt(c, "per_page", defaultPerPage)
	if page-1 > maxInt/perPage {
		// The offset would overflow; no table is that large.
		c.IndentedJSON(http.StatusOK, []model.Notebook{})
		return
	}

	notebooks, err := h.store.List(c.Request.Context(), perPage, (page-1)*perPage)
	if err != nil {
		h.fail(c, err)
		return
	}
	c.IndentedJSON(http.StatusOK, notebooks)
}

// createNotebook inserts the notebook specified in the request body into the database. It
// responds with the submitted fields plus the newly assigned id.
//
// Example REST API call:
//
//	> curl http://localhost:8080/api/v1/notebook/ --request "POST" --include --header "Content-Type: application/json" --data '{"full_name": "Erika Mustermann", "phone": "+49 0815 4711", "email": "erika@example.org"}'
//
// @Summary Create notebook
// @Tags Notebook
// @Accept json,x-www-form-urlencoded
// @Produce json
// @Param notebook body model.Notebook true "Notebook fields"
// @Success 201 {object} model.Notebook
// @Failure 400 {object} model.ErrorResponse
// @Router /notebook/ [post]
func (h *handler) createNotebook(c *gin.Context) {
	var notebook model.Notebook
	if !h.bindNotebook(c, &notebook) {
		return
	}
	id, err := h.store.Create(c.Request.Context(), &notebook)
	if err != nil {
		h.fail(c, err)
		return
	}
	notebook.Id = id
	c.IndentedJSON(http.StatusCreated, notebook)
}

// findNotebookByID locates the notebook whose ID value matches the id parameter of the request
// URL, then returns that notebook as a response.
//
// Example REST API call:
//
//	> curl http://localhost:8080/api/v1/notebook/56/
//
// @Summary Get notebook
// @Tags Notebook
// @Produce json
// @Param id path int true "Notebook id"
// @Success 200 {object} model.Notebook
// @Failure 404 {object} model.ErrorResponse
// @Router /notebook/{id}/ [get]
func (h *handler) findNotebookByID(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	notebook, err := h.store.Get(c.Request.Context(), id)
	if errors.Is(err, storage.ErrNotFound) {
		c.IndentedJSON(http.StatusNotFound, model.ErrorResponse{Error: msgNotFound})
		return
	}
	if err != nil {
		h.fail(c, err)
		return
	}
	c.IndentedJSON(http.StatusOK, notebook)
}

// updateNotebookByID replaces all fields of the notebook whose ID value matches the id parameter
// of the request URL and responds with the submitted record. There is no existence check: an
// unknown id changes nothing and is still answered with OK.
//
// Example REST API call:
//
//	> curl http://localhost:8080/api/v1/notebook/56/ --request "POST" --include --header "Content-Type: application/json" --data '{"full_name": "Rudi Völler", "phone": "+49 1234567890", "email": "rudi@example.org"}'
//
// @Summary Update notebook
// @Tags Notebook
// @Accept json,x-www-form-urlencoded
// @Produce json
// @Param id path int true "Notebook id"
// @Param notebook body model.Notebook true "Notebook fields"
// @Success 200 {object} model.Notebook
// @Failure 400 {object} model.ErrorResponse
// @Router /notebook/{id}/ [post]
func (h *handler) updateNotebookByID(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	var notebook model.Notebook
	if !h.bindNotebook(c, &notebook) {
		return
	}
	if err := h.store.Update(c.Request.Context(), id, &notebook); err != nil {
		h.fail(c, err)
		return
	}
	notebook.Id = id
	c.IndentedJSON(http.StatusOK, notebook)
}

// deleteNotebookByID deletes the notebook whose ID value matches the id parameter of the request
// URL from the database. Deleting an unknown id is answered with OK as well.
//
// Example REST API call:
//
//	> curl http://localhost:8080/api/v1/notebook/56/ --request "DELETE"
//
// @Summary Delete notebook
// @Tags Notebook
// @Produce json
// @Param id path int true "Notebook id"
// @Success 200 {object} model.MessageResponse
// @Router /notebook/{id}/ [delete]
func (h *handler) deleteNotebookByID(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	if err := h.store.Delete(c.Request.Context(), id); err != nil {
		h.fail(c, err)
		return
	}
	c.IndentedJSON(http.StatusOK, model.MessageResponse{Message: msgDeleted})
}

// apiDocs responds with the Swagger document of this API.
//
// @Summary API description
// @Tags Docs
// @Produce json
// @Success 200 {object} object
// @Router /docs/ [get]
func (h *handler) apiDocs(c *gin.Context) {
	doc, err := swag.ReadDoc(docs.SwaggerInfo.InstanceName())
	if err != nil {
		h.fail(c, err)
		return
	}
	c.Data(http.StatusOK, "application/json; charset=utf-8", []byte(doc))
}

// bindNotebook reads a JSON or form body into n and checks the required fields. An empty body
// counts as a record without fields. On failure the request has been answered and false is
// returned.
func (h *handler) bindNotebook(c *gin.Context, n *model.Notebook) bool {
	if err := c.ShouldBind(n); err != nil && !errors.Is(err, io.EOF) {
		c.AbortWithStatusJSON(http.StatusBadRequest, model.ErrorResponse{Error: msgInvalidBody})
		return false
	}
	err := validator.Required(n)
	var missing *validator.MissingFieldError
	if errors.As(err, &missing) {
		c.AbortWithStatusJSON(http.StatusBadRequest, model.ErrorResponse{Error: missing.Error()})
		return false
	}
	if err != nil {
		h.fail(c, err)
		return false
	}
	return true
}

// fail answers an unexpected error with 500 and logs it.
func (h *handler) fail(c *gin.Context, err error) {
	_ = c.Error(err)
	h.log.Error("request failed",
		zap.String("request_id", c.GetString(requestIDKey)),
		zap.String("method", c.Request.Method),
		zap.String("path", c.Request.URL.Path),
		zap.Error(err),
	)
	body := model.ErrorResponse{Error: msgInternalError}
	if h.debugErrors {
		body.Details = err.Error()
	}
	c.AbortWithStatusJSON(http.StatusInternalServerError, body)
}

// parseID reads the id path parameter. A value that is not an integer cannot name a stored
// notebook, so it is answered with NOT FOUND.
func parseID(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.AbortWithStatusJSON(http.StatusNotFound, model.ErrorResponse{Error: msgNotFound})
		return 0, false
	}
	return id, true
}

// positiveQueryInt returns the URL parameter as a positive int, or def if it is missing or
// invalid.
func positiveQueryInt(c *gin.Context, name string, def int) int {
	value, err := strconv.Atoi(c.Query(name))
	if err != nil || value < 1 {
		return def
	}
	return value
}
