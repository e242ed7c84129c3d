package handler

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/niksmo/slotkeeper/internal/domain"
	"github.com/niksmo/slotkeeper/internal/handler/dto"
	"github.com/wb-go/wbf/ginext"
)

type CatalogSvc interface {
	CreateProduct(ctx context.Context, input domain.CreateProductInput) (*domain.Product, error)
	CreateOccurrence(ctx context.Context, input domain.CreateOccurrenceInput) (*domain.Occurrence, error)
	UpdateOccurrenceStatus(ctx context.Context, id string, status domain.OccurrenceStatus) error
	CreateClosure(ctx context.Context, input domain.CreateClosureInput) (*domain.Closure, error)
	DeleteClosure(ctx context.Context, id string) error
}

type SlotSvc interface {
	ResolveSlots(ctx context.Context, productID string, from, to time.Time) ([]domain.Slot, error)
}

type ReservationSvc interface {
	Reserve(ctx context.Context, productID, occurrenceID string, qty int) (*domain.Hold, error)
	Renew(ctx context.Context, token string, ttl time.Duration) error
	Confirm(ctx context.Context, token string, details domain.BookingDetails) (string, error)
	Cancel(ctx context.Context, token string) error
}

type CapacitySvc interface {
	Describe(ctx context.Context, occurrenceID string) (*domain.OccurrenceAvailability, error)
}

type Handler struct {
	catalogService     CatalogSvc
	slotService        SlotSvc
	reservationService ReservationSvc
	capacityService    CapacitySvc
}

func NewHandler(
	catalogService CatalogSvc,
	slotService SlotSvc,
	reservationService ReservationSvc,
	capacityService CapacitySvc,
) *Handler {
	return &Handler{
		catalogService:     catalogService,
		slotService:        slotService,
		reservationService: reservationService,
		capacityService:    capacityService,
	}
}

// Products

func (h *Handler) CreateProduct(c *ginext.Context) {
	var req dto.CreateProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	product, err := h.catalogService.CreateProduct(c.Request.Context(), domain.CreateProductInput{Name: req.Name})
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToProductResponse(product))
}

// Occurrences

func (h *Handler) CreateOccurrence(c *ginext.Context) {
	productID := c.Param("id")
	if _, err := uuid.Parse(productID); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid product id"})
		return
	}

	var req dto.CreateOccurrenceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	startAt, err := time.Parse(time.RFC3339, req.StartAt)
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "invalid start_at format, expected RFC3339",
		})
		return
	}

	input := domain.CreateOccurrenceInput{
		ProductID: productID,
		StartAt:   startAt,
		Capacity:  req.Capacity,
	}
	if req.EndAt != "" {
		endAt, err := time.Parse(time.RFC3339, req.EndAt)
		if err != nil {
			c.JSON(http.StatusBadRequest, dto.ErrorResponse{
				Error: "invalid end_at format, expected RFC3339",
			})
			return
		}
		input.EndAt = &endAt
	}

	occ, err := h.catalogService.CreateOccurrence(c.Request.Context(), input)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToOccurrenceResponse(occ))
}

func (h *Handler) UpdateOccurrenceStatus(c *ginext.Context) {
	id := c.Param("id")
	if _, err := uuid.Parse(id); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid occurrence id"})
		return
	}

	var req dto.UpdateOccurrenceStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	status := domain.OccurrenceStatus(req.Status)
	if !status.Valid() {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "unknown status"})
		return
	}

	if err := h.catalogService.UpdateOccurrenceStatus(c.Request.Context(), id, status); err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, ginext.H{"status": string(status)})
}

func (h *Handler) GetAvailability(c *ginext.Context) {
	id := c.Param("id")
	if _, err := uuid.Parse(id); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid occurrence id"})
		return
	}

	availability, err := h.capacityService.Describe(c.Request.Context(), id)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToAvailabilityResponse(availability))
}

// Slots

func (h *Handler) ResolveSlots(c *ginext.Context) {
	productID := c.Param("id")
	if _, err := uuid.Parse(productID); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid product id"})
		return
	}

	from, err := parseDateParam(c.Query("from"), false)
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid from date"})
		return
	}
	to, err := parseDateParam(c.Query("to"), true)
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid to date"})
		return
	}

	slots, err := h.slotService.ResolveSlots(c.Request.Context(), productID, from, to)
	if err != nil {
		h.handleError(c, err)
		return
	}

	resp := make([]dto.SlotResponse, 0, len(slots))
	for _, s := range slots {
		resp = append(resp, dto.ToSlotResponse(s))
	}

	c.JSON(http.StatusOK, resp)
}

// Reservations

func (h *Handler) Reserve(c *ginext.Context) {
	productID := c.Param("id")
	if _, err := uuid.Parse(productID); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid product id"})
		return
	}

	var req dto.ReserveRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	hold, err := h.reservationService.Reserve(c.Request.Context(), productID, req.OccurrenceID, req.Quantity)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToHoldResponse(hold))
}

func (h *Handler) RenewHold(c *ginext.Context) {
	token := c.Param("token")
	if _, err := uuid.Parse(token); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid hold token"})
		return
	}

	var req dto.RenewHoldRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	ttl := time.Duration(req.TTLMinutes) * time.Minute
	if err := h.reservationService.Renew(c.Request.Context(), token, ttl); err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, ginext.H{"status": "renewed"})
}

func (h *Handler) ConfirmHold(c *ginext.Context) {
	token := c.Param("token")
	if _, err := uuid.Parse(token); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid hold token"})
		return
	}

	var req dto.ConfirmHoldRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	details := domain.BookingDetails{
		CustomerName:  req.CustomerName,
		CustomerEmail: req.CustomerEmail,
		Note:          req.Note,
	}
	bookingID, err := h.reservationService.Confirm(c.Request.Context(), token, details)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.BookingConfirmedResponse{BookingID: bookingID})
}

func (h *Handler) CancelHold(c *ginext.Context) {
	token := c.Param("token")
	if _, err := uuid.Parse(token); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid hold token"})
		return
	}

	if err := h.reservationService.Cancel(c.Request.Context(), token); err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, ginext.H{"status": "cancelled"})
}

// Closures

func (h *Handler) CreateClosure(c *ginext.Context) {
	var req dto.CreateClosureRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	startDate, err := parseDateParam(req.StartDate, false)
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid start_date"})
		return
	}
	endDate, err := parseDateParam(req.EndDate, true)
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid end_date"})
		return
	}

	input := domain.CreateClosureInput{
		ProductID: req.ProductID,
		StartDate: startDate,
		EndDate:   endDate,
		Reason:    req.Reason,
	}
	closure, err := h.catalogService.CreateClosure(c.Request.Context(), input)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToClosureResponse(closure))
}

func (h *Handler) DeleteClosure(c *ginext.Context) {
	id := c.Param("id")
	if _, err := uuid.Parse(id); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid closure id"})
		return
	}

	if err := h.catalogService.DeleteClosure(c.Request.Context(), id); err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, ginext.H{"status": "deleted"})
}

// parseDateParam accepts RFC3339 or a bare date. A bare date expands to
// the start or end of that day depending on which bound it is.
func parseDateParam(value string, endOfDay bool) (time.Time, error) {
	if t, err := time.Parse(time.RFC3339, value); err == nil {
		return t, nil
	}

	t, err := time.Parse("2006-01-02", value)
	if err != nil {
		return time.Time{}, err
	}
	if endOfDay {
		t = t.Add(24*time.Hour - time.Second)
	}

	return t, nil
}

func (h *Handler) handleError(c *ginext.Context, err error) {
	c.Set("error", err.Error())

	switch {
	case errors.Is(err, domain.ErrProductNotFound),
		errors.Is(err, domain.ErrOccurrenceNotFound),
		errors.Is(err, domain.ErrHoldNotFound),
		errors.Is(err, domain.ErrClosureNotFound):
		c.JSON(http.StatusNotFound, dto.ErrorResponse{Error: err.Error()})

	case errors.Is(err, domain.ErrInsufficientCapacity),
		errors.Is(err, domain.ErrOccurrenceClosed),
		errors.Is(err, domain.ErrHoldNotActive),
		errors.Is(err, domain.ErrHoldExpired),
		errors.Is(err, domain.ErrBookingPersistenceFailed):
		c.JSON(http.StatusConflict, dto.ErrorResponse{Error: err.Error()})

	case errors.Is(err, domain.ErrBusy):
		c.Header("Retry-After", "1")
		c.JSON(http.StatusServiceUnavailable, dto.ErrorResponse{Error: err.Error()})

	case errors.Is(err, domain.ErrValidation):
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})

	default:
		c.JSON(http.StatusInternalServerError, dto.ErrorResponse{
			Error:     "internal server error",
			RequestID: c.GetString("request_id"),
		})
	}
}
