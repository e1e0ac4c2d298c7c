package httpgin

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/chaitanya-codes/MovieTix/internal/domain"
	"github.com/chaitanya-codes/MovieTix/internal/repository/memory"
	postgresrepo "github.com/chaitanya-codes/MovieTix/internal/repository/postgres"
	"github.com/chaitanya-codes/MovieTix/internal/service"
	"github.com/chaitanya-codes/MovieTix/internal/service/auth"
	"github.com/chaitanya-codes/MovieTix/internal/service/booking"
	"github.com/chaitanya-codes/MovieTix/internal/service/query"
)

// newTestRouter wires the router over the in-memory store. The query
// service gets a storeless instance; catalog routes are not under test.
func newTestRouter(t *testing.T) (*gin.Engine, *memory.Store) {
	t.Helper()

	gin.SetMode(gin.TestMode)

	store := memory.NewStore()

	store.AddUser(domain.User{ID: 1, Username: "alice", Email: "alice@example.com"})
	for n := 1; n <= 4; n++ {
		store.AddSeat(domain.Seat{
			ID:         int64(n),
			ScreenID:   1,
			RowLabel:   "A",
			SeatNumber: n,
			SeatType:   "Standard",
		})
	}
	store.AddShow(domain.Show{
		ID:             1,
		MovieID:        1,
		TheaterID:      1,
		ScreenID:       1,
		Date:           time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC),
		Time:           "19:30:00",
		PriceCents:     1500,
		AvailableSeats: 4,
		Status:         domain.ShowActive,
	})

	svcs := &service.Services{
		Booking: booking.New(store, nil, nil, nil, booking.Config{}),
		Query:   query.New(postgresrepo.NewStore(nil), nil, query.Config{}),
		Auth:    auth.New(store, auth.Config{JWTSecret: []byte("test-secret")}),
	}

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	return NewRouter(svcs, nil, logger), store
}

func doJSON(t *testing.T, r *gin.Engine, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}

	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")

	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestCreateBooking(t *testing.T) {
	r, _ := newTestRouter(t)

	w := doJSON(t, r, http.MethodPost, "/api/bookings", CreateBookingRequest{
		ShowID:  1,
		SeatIDs: []int64{1, 2},
		UserID:  1,
	})
	require.Equal(t, http.StatusCreated, w.Code)

	var resp CreateBookingResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.NotZero(t, resp.BookingID)
	assert.Equal(t, int64(3000), resp.TotalAmountCents)
}

func TestCreateBooking_Errors(t *testing.T) {
	r, _ := newTestRouter(t)

	w := doJSON(t, r, http.MethodPost, "/api/bookings", CreateBookingRequest{
		ShowID:  1,
		SeatIDs: []int64{3},
		UserID:  1,
	})
	require.Equal(t, http.StatusCreated, w.Code)

	tests := []struct {
		name string
		req  any
		want int
	}{
		{"missing seats", gin.H{"showId": 1, "userId": 1}, http.StatusBadRequest},
		{"unknown show", CreateBookingRequest{ShowID: 9, SeatIDs: []int64{1}, UserID: 1}, http.StatusNotFound},
		{"seat off screen", CreateBookingRequest{ShowID: 1, SeatIDs: []int64{99}, UserID: 1}, http.StatusBadRequest},
		{"seat taken", CreateBookingRequest{ShowID: 1, SeatIDs: []int64{3}, UserID: 1}, http.StatusConflict},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			w := doJSON(t, r, http.MethodPost, "/api/bookings", tc.req)
			assert.Equal(t, tc.want, w.Code)

			var resp ErrorResponse
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
			assert.NotEmpty(t, resp.Error)
		})
	}
}

func TestCancelBooking(t *testing.T) {
	r, _ := newTestRouter(t)

	w := doJSON(t, r, http.MethodPost, "/api/bookings", CreateBookingRequest{
		ShowID:  1,
		SeatIDs: []int64{1, 2},
		UserID:  1,
	})
	require.Equal(t, http.StatusCreated, w.Code)

	var created CreateBookingResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &created))

	path := fmt.Sprintf("/api/bookings/%d/cancel", created.BookingID)

	w = doJSON(t, r, http.MethodPut, path, nil)
	require.Equal(t, http.StatusOK, w.Code)

	var cancelled CancelBookingResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &cancelled))
	assert.Equal(t, int64(3000), cancelled.RefundAmountCents)

	// Cancelling again replays the same refund.
	w = doJSON(t, r, http.MethodPut, path, nil)
	require.Equal(t, http.StatusOK, w.Code)
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &cancelled))
	assert.Equal(t, int64(3000), cancelled.RefundAmountCents)

	w = doJSON(t, r, http.MethodPut, "/api/bookings/404/cancel", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestGetBooking(t *testing.T) {
	r, _ := newTestRouter(t)

	w := doJSON(t, r, http.MethodPost, "/api/bookings", CreateBookingRequest{
		ShowID:  1,
		SeatIDs: []int64{4},
		UserID:  1,
	})
	require.Equal(t, http.StatusCreated, w.Code)

	var created CreateBookingResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &created))

	w = doJSON(t, r, http.MethodGet, fmt.Sprintf("/api/bookings/%d", created.BookingID), nil)
	require.Equal(t, http.StatusOK, w.Code)

	var got BookingResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
	assert.Equal(t, created.BookingID, got.BookingID)
	assert.Equal(t, "Confirmed", got.Status)
	require.Len(t, got.Seats, 1)
	assert.Equal(t, int64(4), got.Seats[0].SeatID)
	assert.Equal(t, int64(1500), got.Seats[0].SeatPriceCents)

	w = doJSON(t, r, http.MethodGet, "/api/bookings/404", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = doJSON(t, r, http.MethodGet, "/api/bookings/abc", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestShowSeats(t *testing.T) {
	r, _ := newTestRouter(t)

	w := doJSON(t, r, http.MethodPost, "/api/bookings", CreateBookingRequest{
		ShowID:  1,
		SeatIDs: []int64{2},
		UserID:  1,
	})
	require.Equal(t, http.StatusCreated, w.Code)

	w = doJSON(t, r, http.MethodGet, "/api/shows/1/seats", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.NotEmpty(t, w.Header().Get("ETag"))
	assert.Contains(t, w.Header().Get("Cache-Control"), "max-age=15")

	var seats []SeatResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &seats))
	require.Len(t, seats, 4)
	for _, s := range seats {
		if s.SeatID == 2 {
			assert.Equal(t, "Booked", s.Availability)
		} else {
			assert.Equal(t, "Available", s.Availability)
		}
	}

	// Conditional revalidation with the returned ETag.
	req := httptest.NewRequest(http.MethodGet, "/api/shows/1/seats", nil)
	req.Header.Set("If-None-Match", w.Header().Get("ETag"))
	w2 := httptest.NewRecorder()
	r.ServeHTTP(w2, req)
	assert.Equal(t, http.StatusNotModified, w2.Code)

	w = doJSON(t, r, http.MethodGet, "/api/shows/9/seats", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestBookingQR(t *testing.T) {
	r, _ := newTestRouter(t)

	w := doJSON(t, r, http.MethodPost, "/api/bookings", CreateBookingRequest{
		ShowID:  1,
		SeatIDs: []int64{1},
		UserID:  1,
	})
	require.Equal(t, http.StatusCreated, w.Code)

	var created CreateBookingResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &created))

	w = doJSON(t, r, http.MethodGet, fmt.Sprintf("/api/bookings/%d/qr", created.BookingID), nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "image/png", w.Header().Get("Content-Type"))
	assert.NotEmpty(t, w.Body.Bytes())
}

func TestAuthEndpoints(t *testing.T) {
	r, _ := newTestRouter(t)

	register := RegisterRequest{
		Username:  "carol",
		Email:     "carol@example.com",
		Password:  "s3cretpass",
		FirstName: "Carol",
		LastName:  "Doe",
	}

	w := doJSON(t, r, http.MethodPost, "/api/auth/register", register)
	require.Equal(t, http.StatusCreated, w.Code)

	var u UserResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &u))
	assert.NotZero(t, u.UserID)
	assert.Equal(t, "carol", u.Username)

	w = doJSON(t, r, http.MethodPost, "/api/auth/register", register)
	assert.Equal(t, http.StatusConflict, w.Code)

	w = doJSON(t, r, http.MethodPost, "/api/auth/login", LoginRequest{Username: "carol", Password: "s3cretpass"})
	require.Equal(t, http.StatusOK, w.Code)

	var login LoginResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &login))
	assert.NotEmpty(t, login.Token)

	w = doJSON(t, r, http.MethodPost, "/api/auth/login", LoginRequest{Username: "carol", Password: "nope"})
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestHealthz(t *testing.T) {
	r, _ := newTestRouter(t)

	w := doJSON(t, r, http.MethodGet, "/healthz", nil)
	assert.Equal(t, http.StatusOK, w.Code)
}
