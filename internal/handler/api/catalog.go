package api

import (
	"net/http"
	"strings"

	reqdto "hotel-reservation/internal/handler/dto/request"
	resdto "hotel-reservation/internal/handler/dto/response"
	"hotel-reservation/internal/handler/httperr"
	"hotel-reservation/internal/usecase/commands"
	"hotel-reservation/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type CatalogHandler struct {
	cmds    commands.CatalogCommands
	queries queries.CatalogQueries
}

func NewCatalogHandler(cmds commands.CatalogCommands, q queries.CatalogQueries) *CatalogHandler {
	return &CatalogHandler{cmds: cmds, queries: q}
}

// @Summary List room types
// @Tags catalog
// @Produce json
// @Success 200 {array} resdto.RoomTypeResponse
// @Router /room-types [get]
func (h *CatalogHandler) ListRoomTypes(c *gin.Context) {
	views, err := h.queries.ListRoomTypes(c.Request.Context())
	if err != nil {
		httperr.AbortWithDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromRoomTypeViews(views))
}

// @Summary Get room type
// @Tags catalog
// @Produce json
// @Param id path string true "Room type ID"
// @Success 200 {object} resdto.RoomTypeResponse
// @Failure 404 {object} httperr.Response
// @Router /room-types/{id} [get]
func (h *CatalogHandler) GetRoomType(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid ID format", nil)
		return
	}

	view, err := h.queries.GetRoomType(c.Request.Context(), id)
	if err != nil {
		httperr.AbortWithDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromRoomTypeView(view))
}

// @Summary Create room type
// @Tags catalog
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.CreateRoomTypeRequest true "Room type"
// @Success 201 {object} resdto.RoomTypeResponse
// @Failure 403 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Failure 422 {object} httperr.Response
// @Router /room-types [post]
func (h *CatalogHandler) CreateRoomType(c *gin.Context) {
	actor, ok := actorFrom(c)
	if !ok {
		return
	}

	var req reqdto.CreateRoomTypeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request format", nil)
		return
	}

	view, err := h.cmds.CreateRoomType(c.Request.Context(), actor, commands.CreateRoomTypeInput{
		Name:         strings.TrimSpace(req.Name),
		WeekdayPrice: req.WeekdayPrice,
		WeekendPrice: req.WeekendPrice,
		Capacity:     req.Capacity,
		Amenities:    req.Amenities,
		ImageURL:     req.ImageURL,
	})
	if err != nil {
		httperr.AbortWithDomainError(c, err)
		return
	}
	c.JSON(http.StatusCreated, resdto.FromRoomTypeView(view))
}

// @Summary Update room type rates
// @Description Partial update of the weekday and weekend nightly rates. Existing reservations keep their booked totals.
// @Tags catalog
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Room type ID"
// @Param request body reqdto.UpdateRoomTypeRatesRequest true "Rates"
// @Success 200 {object} resdto.RoomTypeResponse
// @Failure 404 {object} httperr.Response
// @Router /room-types/{id} [patch]
func (h *CatalogHandler) UpdateRoomTypeRates(c *gin.Context) {
	actor, id, ok := actorAndID(c)
	if !ok {
		return
	}

	var req reqdto.UpdateRoomTypeRatesRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request format", nil)
		return
	}

	view, err := h.cmds.UpdateRoomTypeRates(c.Request.Context(), actor, id, commands.UpdateRatesInput{
		WeekdayPrice: req.WeekdayPrice,
		WeekendPrice: req.WeekendPrice,
	})
	if err != nil {
		httperr.AbortWithDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromRoomTypeView(view))
}

// @Summary List rooms
// @Tags catalog
// @Produce json
// @Security BearerAuth
// @Param status query string false "Housekeeping status"
// @Success 200 {array} resdto.RoomResponse
// @Router /rooms [get]
func (h *CatalogHandler) ListRooms(c *gin.Context) {
	var q reqdto.ListRoomsQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid query parameters", nil)
		return
	}

	views, err := h.queries.ListRooms(c.Request.Context(), q.Status)
	if err != nil {
		httperr.AbortWithDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromRoomViews(views))
}

// @Summary Create room
// @Tags catalog
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.CreateRoomRequest true "Room"
// @Success 201 {object} resdto.RoomResponse
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /rooms [post]
func (h *CatalogHandler) CreateRoom(c *gin.Context) {
	actor, ok := actorFrom(c)
	if !ok {
		return
	}

	var req reqdto.CreateRoomRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request format", nil)
		return
	}

	view, err := h.cmds.CreateRoom(c.Request.Context(), actor, commands.CreateRoomInput{
		RoomNumber: strings.TrimSpace(req.RoomNumber),
		RoomTypeID: req.RoomTypeID,
		Floor:      req.Floor,
	})
	if err != nil {
		httperr.AbortWithDomainError(c, err)
		return
	}
	c.JSON(http.StatusCreated, resdto.FromRoomView(view))
}

// @Summary Update housekeeping status
// @Tags catalog
// @Accept json
// @Security BearerAuth
// @Param id path string true "Room ID"
// @Param request body reqdto.UpdateRoomStatusRequest true "Status"
// @Success 204 "No Content"
// @Failure 404 {object} httperr.Response
// @Router /rooms/{id}/status [patch]
func (h *CatalogHandler) UpdateRoomStatus(c *gin.Context) {
	actor, id, ok := actorAndID(c)
	if !ok {
		return
	}

	var req reqdto.UpdateRoomStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request format", nil)
		return
	}

	if err := h.cmds.UpdateRoomStatus(c.Request.Context(), actor, id, req.Status); err != nil {
		httperr.AbortWithDomainError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
