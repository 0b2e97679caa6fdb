package controllers

import (
	"errors"
	"log/slog"
	"net/http"

	"twototango/internal/delivery/http/helpers"
	"twototango/internal/domain"
)

// CreateInterestRequest is the request body for POST /interests.
type CreateInterestRequest struct {
	Name string `json:"name"`
}

// Validate implements Validator.
func (c CreateInterestRequest) Validate() []string {
	var errs []string
	if c.Name == "" {
		errs = append(errs, "name is required")
	}
	return errs
}

// InterestSuccessResponse is the success envelope carrying a single interest.
type InterestSuccessResponse struct {
	Data  *domain.Interest  `json:"data"`
	Error *helpers.APIError `json:"error"`
}

type InterestController struct {
	Logger  *slog.Logger
	Service domain.InterestService
}

func NewInterestController(logger *slog.Logger, svc domain.InterestService) *InterestController {
	return &InterestController{
		Logger:  logger,
		Service: svc,
	}
}

// Create godoc
// @Summary Create an interest
// @Description Creates an interest with a sanitized name. Fails with conflict if the sanitized name already exists.
// @Tags interests
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param interest body CreateInterestRequest true "Interest name"
// @Success 201 {object} controllers.InterestSuccessResponse "data contains the created interest"
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Failure 401 {object} helpers.APIResponse "error.code: unauthorized"
// @Failure 409 {object} helpers.APIResponse "error.code: conflict"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /interests [post]
func (c *InterestController) Create(w http.ResponseWriter, r *http.Request) {
	var req CreateInterestRequest
	if !helpers.DecodeAndValidate(w, r, &req) {
		return
	}
	interest, err := c.Service.Create(r.Context(), req.Name)
	if err != nil {
		if errors.Is(err, domain.ErrConflict) {
			helpers.WriteJSONError(w, http.StatusConflict, helpers.ErrCodeConflict, "interest already exists")
			return
		}
		if errors.Is(err, domain.ErrInvalidInput) {
			helpers.WriteJSONError(w, http.StatusBadRequest, helpers.ErrCodeBadRequest, "invalid interest name")
			return
		}
		c.Logger.ErrorContext(r.Context(), "request failed", "path", r.URL.Path, "method", r.Method, "err", err)
		helpers.WriteJSONError(w, http.StatusInternalServerError, helpers.ErrCodeInternalError, err.Error())
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusCreated, interest)
}

// List godoc
// @Summary List all interests
// @Tags interests
// @Produce json
// @Success 200 {array} domain.Interest
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /interests [get]
func (c *InterestController) List(w http.ResponseWriter, r *http.Request) {
	interests, err := c.Service.List(r.Context())
	if err != nil {
		c.Logger.ErrorContext(r.Context(), "request failed", "path", r.URL.Path, "method", r.Method, "err", err)
		helpers.WriteJSONError(w, http.StatusInternalServerError, helpers.ErrCodeInternalError, err.Error())
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, interests)
}

// GetByID godoc
// @Summary Get an interest by ID
// @Tags interests
// @Produce json
// @Param interestID path string true "Interest ID (UUID)"
// @Success 200 {object} controllers.InterestSuccessResponse "data contains the interest"
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /interests/{interestID} [get]
func (c *InterestController) GetByID(w http.ResponseWriter, r *http.Request) {
	interestID := r.PathValue("interestID")
	if interestID == "" {
		helpers.WriteJSONError(w, http.StatusBadRequest, helpers.ErrCodeBadRequest, "missing interestID")
		return
	}
	interest, err := c.Service.GetByID(r.Context(), interestID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			helpers.WriteJSONError(w, http.StatusNotFound, helpers.ErrCodeNotFound, "interest not found")
			return
		}
		c.Logger.ErrorContext(r.Context(), "request failed", "path", r.URL.Path, "method", r.Method, "err", err)
		helpers.WriteJSONError(w, http.StatusInternalServerError, helpers.ErrCodeInternalError, err.Error())
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, interest)
}
