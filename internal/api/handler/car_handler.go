package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/velocar/rental-system/internal/core/ports"
)

// CarHandler handles HTTP requests for the car inventory.
type CarHandler struct {
	service ports.CarService
}

func NewCarHandler(service ports.CarService) *CarHandler {
	return &CarHandler{service: service}
}

type createCarRequest struct {
	Plate       string   `json:"plate"         validate:"required"`
	Brand       string   `json:"brand"         validate:"required"`
	Description string   `json:"description"`
	PricePerDay float64  `json:"price_per_day" validate:"required,gt=0"`
	ImageURL    string   `json:"image_url"`
	Available   *bool    `json:"available"`
	CategoryIDs []string `json:"category_ids"`
}

type updateCarRequest struct {
	Brand       string  `json:"brand"         validate:"required"`
	Description string  `json:"description"`
	PricePerDay float64 `json:"price_per_day" validate:"required,gt=0"`
	ImageURL    string  `json:"image_url"`
	Available   bool    `json:"available"`
}

type attachCategoriesRequest struct {
	CategoryIDs []string `json:"category_ids" validate:"required"`
}

// Create handles POST /v1/cars. Admin only.
//
// @Summary      Register a new car
// @Tags         cars
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      createCarRequest  true  "Car details"
// @Success      201   {object}  domain.Car
// @Failure      400   {object}  map[string]string
// @Failure      403   {object}  map[string]string
// @Failure      409   {object}  map[string]string
// @Router       /v1/cars [post]
func (h *CarHandler) Create(c echo.Context) error {
	actor, err := ctxPrincipal(c)
	if err != nil {
		return err
	}

	var req createCarRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	car, err := h.service.Create(c.Request().Context(), ports.CreateCarInput{
		Plate:       req.Plate,
		Brand:       req.Brand,
		Description: req.Description,
		PricePerDay: req.PricePerDay,
		ImageURL:    req.ImageURL,
		Available:   req.Available,
		CategoryIDs: req.CategoryIDs,
	}, actor)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusCreated, car)
}

// Get handles GET /v1/cars/:id. Public.
//
// @Summary      Get a car by id
// @Tags         cars
// @Produce      json
// @Param        id   path      string  true  "Car id"
// @Success      200  {object}  domain.Car
// @Failure      404  {object}  map[string]string
// @Router       /v1/cars/{id} [get]
func (h *CarHandler) Get(c echo.Context) error {
	car, err := h.service.GetByID(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, car)
}

// List handles GET /v1/cars. Public.
//
// @Summary      List all cars
// @Tags         cars
// @Produce      json
// @Success      200  {array}  domain.Car
// @Router       /v1/cars [get]
func (h *CarHandler) List(c echo.Context) error {
	cars, err := h.service.List(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, cars)
}

// Search handles GET /v1/cars/search?plate=... Public.
//
// @Summary      Search cars by plate
// @Tags         cars
// @Produce      json
// @Param        plate  query     string  true  "Partial plate (case-insensitive)"
// @Success      200    {array}   domain.Car
// @Failure      400    {object}  map[string]string
// @Router       /v1/cars/search [get]
func (h *CarHandler) Search(c echo.Context) error {
	plate := c.QueryParam("plate")
	if plate == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "plate is required")
	}

	cars, err := h.service.SearchByPlate(c.Request().Context(), plate)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, cars)
}

// Update handles PUT /v1/cars/:id. Admin only.
//
// @Summary      Update a car
// @Tags         cars
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      string            true  "Car id"
// @Param        body  body      updateCarRequest  true  "Car fields"
// @Success      200   {object}  domain.Car
// @Failure      400   {object}  map[string]string
// @Failure      403   {object}  map[string]string
// @Failure      404   {object}  map[string]string
// @Router       /v1/cars/{id} [put]
func (h *CarHandler) Update(c echo.Context) error {
	actor, err := ctxPrincipal(c)
	if err != nil {
		return err
	}

	var req updateCarRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	car, err := h.service.Update(c.Request().Context(), c.Param("id"), ports.CarUpdate{
		Brand:       req.Brand,
		Description: req.Description,
		PricePerDay: req.PricePerDay,
		ImageURL:    req.ImageURL,
		Available:   req.Available,
	}, actor)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, car)
}

// Delete handles DELETE /v1/cars/:id. Admin only.
//
// @Summary      Delete a car
// @Tags         cars
// @Security     BearerAuth
// @Param        id  path  string  true  "Car id"
// @Success      204
// @Failure      403  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Router       /v1/cars/{id} [delete]
func (h *CarHandler) Delete(c echo.Context) error {
	actor, err := ctxPrincipal(c)
	if err != nil {
		return err
	}

	if err := h.service.Delete(c.Request().Context(), c.Param("id"), actor); err != nil {
		return err
	}

	return c.NoContent(http.StatusNoContent)
}

// AttachCategories handles PUT /v1/cars/:id/categories. Admin only.
//
// @Summary      Replace a car's category membership
// @Tags         cars
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      string                   true  "Car id"
// @Param        body  body      attachCategoriesRequest  true  "Category ids"
// @Success      200   {object}  domain.Car
// @Failure      400   {object}  map[string]string
// @Failure      403   {object}  map[string]string
// @Failure      404   {object}  map[string]string
// @Router       /v1/cars/{id}/categories [put]
func (h *CarHandler) AttachCategories(c echo.Context) error {
	actor, err := ctxPrincipal(c)
	if err != nil {
		return err
	}

	var req attachCategoriesRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	car, err := h.service.AttachCategories(c.Request().Context(), c.Param("id"), req.CategoryIDs, actor)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, car)
}
