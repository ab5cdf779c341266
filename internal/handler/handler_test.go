package handler

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/martacruzz/tqs-hw1/internal/domain"
	"github.com/martacruzz/tqs-hw1/internal/handler/dto"
	hmocks "github.com/martacruzz/tqs-hw1/internal/handler/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/wb-go/wbf/ginext"
)

func setupRouter(t *testing.T) (*hmocks.MockBookingSvc, http.Handler) {
	t.Helper()
	bookingSvc := hmocks.NewMockBookingSvc(t)

	h := NewHandler(bookingSvc)

	r := ginext.New("test")
	api := r.Group("/api")
	{
		api.POST("/bookings", h.CreateBooking)
		api.GET("/bookings/:token", h.GetBooking)
		api.DELETE("/bookings/:token", h.CancelBooking)

		staff := api.Group("/staff")
		{
			staff.GET("/bookings", h.ListBookings)
			staff.PATCH("/bookings/:token/update", h.UpdateBookingStatus)
		}

		api.GET("/municipalities", h.ListMunicipalities)
	}

	return bookingSvc, r
}

func sampleBooking(status domain.Status) *domain.Booking {
	now := time.Date(2026, 9, 1, 10, 0, 0, 0, time.UTC)
	return &domain.Booking{
		Token:          "AB12CD34EF56GH78IJ90",
		ContactInfo:    "maria@example.com",
		Address:        "Rua das Flores 1",
		Municipality:   "PORTO",
		CollectionDate: time.Date(2026, 9, 5, 0, 0, 0, 0, time.UTC),
		TimeSlot:       domain.SlotMorning,
		Description:    "old sofa",
		Status:         status,
		History: []domain.StatusChange{
			{Status: domain.StatusReceived, Timestamp: now},
		},
		CreatedAt: now,
		UpdatedAt: now,
	}
}

// --- Citizen endpoints ---

func TestHandler_CreateBooking_Success(t *testing.T) {
	bookingSvc, r := setupRouter(t)

	booking := sampleBooking(domain.StatusReceived)
	bookingSvc.EXPECT().Create(mock.Anything, mock.Anything).Return(booking, nil)

	body, _ := json.Marshal(dto.CreateBookingRequest{
		ContactInfo:    "maria@example.com",
		Address:        "Rua das Flores 1",
		Municipality:   "porto",
		CollectionDate: "2026-09-05",
		TimeSlot:       "MORNING",
		Description:    "old sofa",
	})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/bookings", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusCreated, w.Code)

	var resp dto.BookingResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, booking.Token, resp.Token)
	assert.Equal(t, "RECEIVED", resp.Status)
	assert.Equal(t, "2026-09-05", resp.CollectionDate)
	require.Len(t, resp.History, 1)
	assert.Equal(t, "RECEIVED", resp.History[0].Status)
}

func TestHandler_CreateBooking_BadDate(t *testing.T) {
	_, r := setupRouter(t)

	body, _ := json.Marshal(dto.CreateBookingRequest{
		ContactInfo:    "maria@example.com",
		Address:        "Rua das Flores 1",
		Municipality:   "PORTO",
		CollectionDate: "05-09-2026",
		TimeSlot:       "MORNING",
	})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/bookings", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)

	var resp dto.ErrorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "collection_date", resp.Field)
}

func TestHandler_CreateBooking_ValidationError(t *testing.T) {
	bookingSvc, r := setupRouter(t)

	bookingSvc.EXPECT().Create(mock.Anything, mock.Anything).
		Return(nil, &domain.FieldError{Field: "address", Msg: "address is required"})

	body, _ := json.Marshal(dto.CreateBookingRequest{
		ContactInfo:    "maria@example.com",
		Municipality:   "PORTO",
		CollectionDate: "2026-09-05",
		TimeSlot:       "MORNING",
	})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/bookings", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)

	var resp dto.ErrorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "address", resp.Field)
	assert.Contains(t, resp.Message, "required")
}

func TestHandler_CreateBooking_SlotFull(t *testing.T) {
	bookingSvc, r := setupRouter(t)

	bookingSvc.EXPECT().Create(mock.Anything, mock.Anything).Return(nil, domain.ErrSlotFull)

	body, _ := json.Marshal(dto.CreateBookingRequest{
		ContactInfo:    "maria@example.com",
		Address:        "Rua das Flores 1",
		Municipality:   "PORTO",
		CollectionDate: "2026-09-05",
		TimeSlot:       "MORNING",
	})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/bookings", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusConflict, w.Code)
}

func TestHandler_GetBooking_Success(t *testing.T) {
	bookingSvc, r := setupRouter(t)

	booking := sampleBooking(domain.StatusAssigned)
	bookingSvc.EXPECT().GetByToken(mock.Anything, booking.Token).Return(booking, nil)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/bookings/"+booking.Token, nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp dto.BookingResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "ASSIGNED", resp.Status)
}

func TestHandler_GetBooking_NotFound(t *testing.T) {
	bookingSvc, r := setupRouter(t)

	bookingSvc.EXPECT().GetByToken(mock.Anything, "NOSUCHTOKEN000000000").
		Return(nil, domain.ErrBookingNotFound)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/bookings/NOSUCHTOKEN000000000", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestHandler_CancelBooking_Success(t *testing.T) {
	bookingSvc, r := setupRouter(t)

	booking := sampleBooking(domain.StatusCancelled)
	bookingSvc.EXPECT().Cancel(mock.Anything, booking.Token).Return(booking, nil)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodDelete, "/api/bookings/"+booking.Token, nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp dto.BookingResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "CANCELLED", resp.Status)
}

func TestHandler_CancelBooking_AlreadyTerminal(t *testing.T) {
	bookingSvc, r := setupRouter(t)

	bookingSvc.EXPECT().Cancel(mock.Anything, mock.Anything).
		Return(nil, &domain.TransitionError{From: domain.StatusCompleted, To: domain.StatusCancelled})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodDelete, "/api/bookings/AB12CD34EF56GH78IJ90", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusConflict, w.Code)
}

// --- Staff endpoints ---

func TestHandler_ListBookings_Filter(t *testing.T) {
	bookingSvc, r := setupRouter(t)

	bookings := []*domain.Booking{sampleBooking(domain.StatusReceived)}
	bookingSvc.EXPECT().List(mock.Anything, "porto").Return(bookings, nil)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/staff/bookings?filter=porto", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp []dto.BookingResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Len(t, resp, 1)
	assert.Equal(t, "PORTO", resp[0].Municipality)
}

func TestHandler_ListBookings_Empty(t *testing.T) {
	bookingSvc, r := setupRouter(t)

	bookingSvc.EXPECT().List(mock.Anything, "").Return(nil, nil)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/staff/bookings", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, "[]", w.Body.String())
}

func TestHandler_ListBookings_MunicipalityAndDate(t *testing.T) {
	bookingSvc, r := setupRouter(t)

	date := time.Date(2026, 9, 5, 0, 0, 0, 0, time.UTC)
	bookingSvc.EXPECT().ListByMunicipalityAndDate(mock.Anything, "PORTO", date).
		Return([]*domain.Booking{sampleBooking(domain.StatusReceived)}, nil)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/staff/bookings?municipality=PORTO&date=2026-09-05", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestHandler_ListBookings_MunicipalityBadDate(t *testing.T) {
	_, r := setupRouter(t)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/staff/bookings?municipality=PORTO&date=soon", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)

	var resp dto.ErrorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "date", resp.Field)
}

func TestHandler_ListBookings_DateRange(t *testing.T) {
	bookingSvc, r := setupRouter(t)

	start := time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2026, 9, 14, 0, 0, 0, 0, time.UTC)
	bookingSvc.EXPECT().ListByDateRange(mock.Anything, start, end).
		Return([]*domain.Booking{sampleBooking(domain.StatusReceived)}, nil)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/staff/bookings?from=2026-09-01&to=2026-09-14", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp []dto.BookingResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Len(t, resp, 1)
}

func TestHandler_ListBookings_DateRangeBadBound(t *testing.T) {
	_, r := setupRouter(t)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/staff/bookings?from=2026-09-01&to=later", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)

	var resp dto.ErrorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "to", resp.Field)
}

func TestHandler_ListBookings_ByStatus(t *testing.T) {
	bookingSvc, r := setupRouter(t)

	bookingSvc.EXPECT().ListByStatus(mock.Anything, domain.StatusAssigned).
		Return([]*domain.Booking{sampleBooking(domain.StatusAssigned)}, nil)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/staff/bookings?status=ASSIGNED", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestHandler_ListBookings_UnknownStatus(t *testing.T) {
	_, r := setupRouter(t)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/staff/bookings?status=SHIPPED", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)

	var resp dto.ErrorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "status", resp.Field)
}

func TestHandler_UpdateBookingStatus_Success(t *testing.T) {
	bookingSvc, r := setupRouter(t)

	booking := sampleBooking(domain.StatusAssigned)
	bookingSvc.EXPECT().UpdateStatus(mock.Anything, booking.Token, domain.StatusAssigned).
		Return(booking, nil)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPatch, "/api/staff/bookings/"+booking.Token+"/update?newStatus=ASSIGNED", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp dto.BookingResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "ASSIGNED", resp.Status)
}

func TestHandler_UpdateBookingStatus_UnknownStatus(t *testing.T) {
	_, r := setupRouter(t)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPatch, "/api/staff/bookings/AB12CD34EF56GH78IJ90/update?newStatus=DONE", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)

	var resp dto.ErrorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "newStatus", resp.Field)
}

func TestHandler_UpdateBookingStatus_Illegal(t *testing.T) {
	bookingSvc, r := setupRouter(t)

	bookingSvc.EXPECT().UpdateStatus(mock.Anything, mock.Anything, domain.StatusCompleted).
		Return(nil, &domain.TransitionError{From: domain.StatusReceived, To: domain.StatusCompleted})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPatch, "/api/staff/bookings/AB12CD34EF56GH78IJ90/update?newStatus=COMPLETED", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusConflict, w.Code)
}

func TestHandler_UpdateBookingStatus_NotFound(t *testing.T) {
	bookingSvc, r := setupRouter(t)

	bookingSvc.EXPECT().UpdateStatus(mock.Anything, mock.Anything, domain.StatusAssigned).
		Return(nil, domain.ErrBookingNotFound)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPatch, "/api/staff/bookings/NOSUCHTOKEN000000000/update?newStatus=ASSIGNED", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

// --- Reference data ---

func TestHandler_ListMunicipalities(t *testing.T) {
	bookingSvc, r := setupRouter(t)

	bookingSvc.EXPECT().Municipalities(mock.Anything).Return([]domain.MunicipalityRef{
		{Code: "LIS", Name: "Lisboa"},
		{Code: "PORTO", Name: "Porto"},
	})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/municipalities", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp []dto.MunicipalityResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Len(t, resp, 2)
	assert.Equal(t, "LIS", resp[0].Code)
}
