package handler

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/martacruzz/tqs-hw1/internal/domain"
	"github.com/martacruzz/tqs-hw1/internal/handler/dto"
	"github.com/wb-go/wbf/ginext"
)

const dateLayout = "2006-01-02"

type BookingSvc interface {
	Create(ctx context.Context, input domain.CreateBookingInput) (*domain.Booking, error)
	GetByToken(ctx context.Context, token string) (*domain.Booking, error)
	Cancel(ctx context.Context, token string) (*domain.Booking, error)
	UpdateStatus(ctx context.Context, token string, target domain.Status) (*domain.Booking, error)
	List(ctx context.Context, filter string) ([]*domain.Booking, error)
	ListByMunicipalityAndDate(ctx context.Context, municipality string, date time.Time) ([]*domain.Booking, error)
	ListByStatus(ctx context.Context, status domain.Status) ([]*domain.Booking, error)
	ListByDateRange(ctx context.Context, start, end time.Time) ([]*domain.Booking, error)
	Municipalities(ctx context.Context) []domain.MunicipalityRef
}

type Handler struct {
	bookingService BookingSvc
}

func NewHandler(bookingService BookingSvc) *Handler {
	return &Handler{bookingService: bookingService}
}

// Citizen endpoints

func (h *Handler) CreateBooking(c *ginext.Context) {
	var req dto.CreateBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "invalid request body"})
		return
	}

	collectionDate, err := time.Parse(dateLayout, req.CollectionDate)
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Message: "invalid collection_date, expected YYYY-MM-DD",
			Field:   "collection_date",
		})
		return
	}

	input := domain.CreateBookingInput{
		ContactInfo:    req.ContactInfo,
		Address:        req.Address,
		Municipality:   req.Municipality,
		CollectionDate: collectionDate,
		TimeSlot:       req.TimeSlot,
		Description:    req.Description,
	}

	booking, err := h.bookingService.Create(c.Request.Context(), input)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToBookingResponse(booking))
}

func (h *Handler) GetBooking(c *ginext.Context) {
	token := c.Param("token")

	booking, err := h.bookingService.GetByToken(c.Request.Context(), token)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToBookingResponse(booking))
}

func (h *Handler) CancelBooking(c *ginext.Context) {
	token := c.Param("token")

	booking, err := h.bookingService.Cancel(c.Request.Context(), token)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToBookingResponse(booking))
}

// Staff endpoints

func (h *Handler) ListBookings(c *ginext.Context) {
	ctx := c.Request.Context()

	var (
		bookings []*domain.Booking
		err      error
	)

	switch {
	case c.Query("municipality") != "":
		var date time.Time
		date, err = time.Parse(dateLayout, c.Query("date"))
		if err != nil {
			c.JSON(http.StatusBadRequest, dto.ErrorResponse{
				Message: "invalid date, expected YYYY-MM-DD",
				Field:   "date",
			})
			return
		}
		bookings, err = h.bookingService.ListByMunicipalityAndDate(ctx, c.Query("municipality"), date)

	case c.Query("status") != "":
		var status domain.Status
		status, err = domain.ParseStatus(c.Query("status"))
		if err != nil {
			c.JSON(http.StatusBadRequest, dto.ErrorResponse{
				Message: "unknown status",
				Field:   "status",
			})
			return
		}
		bookings, err = h.bookingService.ListByStatus(ctx, status)

	case c.Query("from") != "" || c.Query("to") != "":
		var start, end time.Time
		start, err = time.Parse(dateLayout, c.Query("from"))
		if err != nil {
			c.JSON(http.StatusBadRequest, dto.ErrorResponse{
				Message: "invalid from, expected YYYY-MM-DD",
				Field:   "from",
			})
			return
		}
		end, err = time.Parse(dateLayout, c.Query("to"))
		if err != nil {
			c.JSON(http.StatusBadRequest, dto.ErrorResponse{
				Message: "invalid to, expected YYYY-MM-DD",
				Field:   "to",
			})
			return
		}
		bookings, err = h.bookingService.ListByDateRange(ctx, start, end)

	default:
		bookings, err = h.bookingService.List(ctx, c.Query("filter"))
	}

	if err != nil {
		h.handleError(c, err)
		return
	}

	resp := make([]dto.BookingResponse, 0, len(bookings))
	for _, b := range bookings {
		resp = append(resp, dto.ToBookingResponse(b))
	}

	c.JSON(http.StatusOK, resp)
}

func (h *Handler) UpdateBookingStatus(c *ginext.Context) {
	token := c.Param("token")

	target, err := domain.ParseStatus(c.Query("newStatus"))
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Message: "unknown status",
			Field:   "newStatus",
		})
		return
	}

	booking, err := h.bookingService.UpdateStatus(c.Request.Context(), token, target)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToBookingResponse(booking))
}

// Reference data

func (h *Handler) ListMunicipalities(c *ginext.Context) {
	refs := h.bookingService.Municipalities(c.Request.Context())

	resp := make([]dto.MunicipalityResponse, 0, len(refs))
	for _, ref := range refs {
		resp = append(resp, dto.ToMunicipalityResponse(ref))
	}

	c.JSON(http.StatusOK, resp)
}

func (h *Handler) handleError(c *ginext.Context, err error) {
	c.Set("error", err.Error())

	var fieldErr *domain.FieldError
	var transitionErr *domain.TransitionError

	switch {
	case errors.As(err, &fieldErr):
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Message: fieldErr.Error(),
			Field:   fieldErr.Field,
		})

	case errors.Is(err, domain.ErrBookingNotFound):
		c.JSON(http.StatusNotFound, dto.ErrorResponse{Message: err.Error()})

	case errors.As(err, &transitionErr):
		c.JSON(http.StatusConflict, dto.ErrorResponse{Message: transitionErr.Error()})

	case errors.Is(err, domain.ErrSlotFull),
		errors.Is(err, domain.ErrConflict):
		c.JSON(http.StatusConflict, dto.ErrorResponse{Message: err.Error()})

	case errors.Is(err, domain.ErrValidation):
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: err.Error()})

	default:
		c.JSON(http.StatusInternalServerError, dto.ErrorResponse{Message: "internal server error"})
	}
}
