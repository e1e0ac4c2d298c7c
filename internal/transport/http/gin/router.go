package httpgin

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	qrcode "github.com/skip2/go-qrcode"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	postgresrepo "github.com/chaitanya-codes/MovieTix/internal/repository/postgres"
	redisrepo "github.com/chaitanya-codes/MovieTix/internal/repository/redis"
	"github.com/chaitanya-codes/MovieTix/internal/service"
	"github.com/chaitanya-codes/MovieTix/internal/service/auth"
	"github.com/chaitanya-codes/MovieTix/internal/service/booking"
	"github.com/chaitanya-codes/MovieTix/internal/service/query"
)

func NewRouter(
	svcs *service.Services,
	idem *redisrepo.IdempotencyStore,
	logger *slog.Logger,
	middlewares ...gin.HandlerFunc,
) *gin.Engine {
	r := gin.New()

	r.Use(gin.Recovery(), LoggingMiddleware(logger), RequestIDMiddleware(), CORS())
	for _, m := range middlewares {
		if m != nil {
			r.Use(m)
		}
	}

	// Swagger UI
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// health
	r.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	api := r.Group("/api")
	{
		api.POST("/auth/register", handleRegister(svcs))
		api.POST("/auth/login", handleLogin(svcs))

		api.GET("/movies", handleListMovies(svcs))
		api.GET("/movies/:id", handleGetMovie(svcs))
		api.GET("/theaters", handleListTheaters(svcs))
		api.GET("/shows", handleListShows(svcs))
		api.GET("/shows/:id/seats", handleShowSeats(svcs))

		api.POST("/bookings", handleCreateBooking(svcs, idem))
		api.GET("/bookings/:id", handleGetBooking(svcs))
		api.GET("/bookings/:id/qr", handleBookingQR(svcs))
		api.PUT("/bookings/:id/cancel", handleCancelBooking(svcs))
		api.GET("/users/:id/bookings", handleUserBookings(svcs))
	}

	return r
}

// --- Handlers with Swagger annotations ---

// @Summary  Register user
// @Param    req body  RegisterRequest true "payload"
// @Success  201 {object} UserResponse
// @Failure  409 {object} ErrorResponse
// @Router   /api/auth/register [post]
func handleRegister(svcs *service.Services) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req RegisterRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			badRequest(c, err.Error())
			return
		}

		u, err := svcs.Auth.Register(
			c.Request.Context(),
			req.Username,
			req.Email,
			req.Password,
			req.FirstName,
			req.LastName,
		)
		if err != nil {
			respondErr(c, err)
			return
		}

		c.JSON(http.StatusCreated, toUserResponse(u))
	}
}

// @Summary  Login
// @Param    req body  LoginRequest true "payload"
// @Success  200 {object} LoginResponse
// @Failure  401 {object} ErrorResponse
// @Router   /api/auth/login [post]
func handleLogin(svcs *service.Services) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req LoginRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			badRequest(c, err.Error())
			return
		}

		token, u, err := svcs.Auth.Login(c.Request.Context(), req.Username, req.Password)
		if err != nil {
			respondErr(c, err)
			return
		}

		c.JSON(http.StatusOK, LoginResponse{Token: token, User: toUserResponse(u)})
	}
}

// @Summary  List movies
// @Success  200 {array} MovieResponse
// @Router   /api/movies [get]
func handleListMovies(svcs *service.Services) gin.HandlerFunc {
	return func(c *gin.Context) {
		movies, err := svcs.Query.ListMovies(c.Request.Context())
		if err != nil {
			respondErr(c, err)
			return
		}
		writeJSONWithCache(c, http.StatusOK, toMovieResponses(movies), "public, max-age=60", true)
	}
}

// @Summary  Get movie
// @Param    id  path  int  true  "Movie ID"
// @Success  200 {object} MovieResponse
// @Failure  404 {object} ErrorResponse
// @Router   /api/movies/{id} [get]
func handleGetMovie(svcs *service.Services) gin.HandlerFunc {
	return func(c *gin.Context) {
		movieID, ok := parseInt64Param(c, "id")
		if !ok {
			return
		}
		m, err := svcs.Query.GetMovie(c.Request.Context(), movieID)
		if err != nil {
			respondErr(c, err)
			return
		}
		writeJSONWithCache(c, http.StatusOK, toMovieResponse(m), "public, max-age=60", true)
	}
}

// @Summary  List theaters
// @Success  200 {array} TheaterResponse
// @Router   /api/theaters [get]
func handleListTheaters(svcs *service.Services) gin.HandlerFunc {
	return func(c *gin.Context) {
		theaters, err := svcs.Query.ListTheaters(c.Request.Context())
		if err != nil {
			respondErr(c, err)
			return
		}
		writeJSONWithCache(c, http.StatusOK, toTheaterResponses(theaters), "public, max-age=60", true)
	}
}

// @Summary  List active shows
// @Param    movieId    query  int     false "filter by movie"
// @Param    theaterId  query  int     false "filter by theater"
// @Param    date       query  string  false "filter by date (YYYY-MM-DD)"
// @Success  200 {array} ShowResponse
// @Router   /api/shows [get]
func handleListShows(svcs *service.Services) gin.HandlerFunc {
	return func(c *gin.Context) {
		var f postgresrepo.ShowFilter

		if v := c.Query("movieId"); v != "" {
			id, err := strconv.ParseInt(v, 10, 64)
			if err != nil {
				badRequest(c, "invalid movieId")
				return
			}
			f.MovieID = id
		}
		if v := c.Query("theaterId"); v != "" {
			id, err := strconv.ParseInt(v, 10, 64)
			if err != nil {
				badRequest(c, "invalid theaterId")
				return
			}
			f.TheaterID = id
		}
		if v := c.Query("date"); v != "" {
			d, err := time.Parse(dateLayout, v)
			if err != nil {
				badRequest(c, "invalid date (YYYY-MM-DD)")
				return
			}
			f.Date = &d
		}

		shows, err := svcs.Query.ListShows(c.Request.Context(), f)
		if err != nil {
			respondErr(c, err)
			return
		}
		writeJSONWithCache(c, http.StatusOK, toShowResponses(shows), "public, max-age=15", true)
	}
}

// @Summary  Show seat map
// @Param    id  path  int  true  "Show ID"
// @Success  200 {array} SeatResponse
// @Failure  404 {object} ErrorResponse
// @Router   /api/shows/{id}/seats [get]
func handleShowSeats(svcs *service.Services) gin.HandlerFunc {
	return func(c *gin.Context) {
		showID, ok := parseInt64Param(c, "id")
		if !ok {
			return
		}
		seats, err := svcs.Booking.SeatMap(c.Request.Context(), showID)
		if err != nil {
			respondErr(c, err)
			return
		}
		writeJSONWithCache(c, http.StatusOK, toSeatResponses(seats), "public, max-age=15", true)
	}
}

// @Summary  Create booking (idempotent)
// @Param    req body  CreateBookingRequest true "payload"
// @Header   201 {string} Idempotency-Key "echo"
// @Success  201 {object} CreateBookingResponse
// @Failure  400 {object} ErrorResponse "validation / insufficient availability"
// @Failure  404 {object} ErrorResponse "show not found"
// @Failure  409 {object} ErrorResponse "seat conflict / idem in progress"
// @Failure  429 {object} ErrorResponse "rate limited"
// @Router   /api/bookings [post]
func handleCreateBooking(
	svcs *service.Services,
	idem *redisrepo.IdempotencyStore,
) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req CreateBookingRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			badRequest(c, err.Error())
			return
		}

		idemKey := strings.TrimSpace(c.GetHeader("Idempotency-Key"))
		var idemStorageKey string
		if idem != nil && idemKey != "" {
			idemStorageKey = redisrepo.KeyIdemBooking(req.ShowID, idemKey)

			if payload, ok, _ := idem.GetResult(c.Request.Context(), idemStorageKey); ok {
				c.Header("Idempotency-Key", idemKey)
				c.Data(http.StatusCreated, "application/json; charset=utf-8", []byte(payload))
				return
			}

			locked, err := idem.AcquireLock(c.Request.Context(), idemStorageKey, 60*time.Second)
			if err != nil {
				respondErr(c, err)
				return
			}
			if !locked {
				if payload, ok, _ := idem.GetResult(c.Request.Context(), idemStorageKey); ok {
					c.Header("Idempotency-Key", idemKey)
					c.Data(http.StatusCreated, "application/json; charset=utf-8", []byte(payload))
					return
				}
				c.Header("Retry-After", "1")
				c.JSON(http.StatusConflict, ErrorResponse{Error: "idempotency key in progress"})
				return
			}
		}

		rlKey := "ip:" + c.ClientIP()

		b, err := svcs.Booking.Book(
			c.Request.Context(),
			req.UserID,
			req.ShowID,
			req.SeatIDs,
			rlKey,
		)
		if err != nil {
			if idemStorageKey != "" && idem != nil {
				_ = idem.Release(c.Request.Context(), idemStorageKey)
			}
			respondErr(c, err)
			return
		}

		resp := CreateBookingResponse{BookingID: b.ID, TotalAmountCents: b.TotalCents}

		if idemStorageKey != "" && idem != nil {
			payload, _ := json.Marshal(resp)
			_ = idem.SaveResult(c.Request.Context(), idemStorageKey, string(payload))
			c.Header("Idempotency-Key", idemKey)
		}

		c.JSON(http.StatusCreated, resp)
	}
}

// @Summary  Get booking with seats
// @Param    id  path  int  true  "Booking ID"
// @Success  200 {object} BookingResponse
// @Failure  404 {object} ErrorResponse
// @Router   /api/bookings/{id} [get]
func handleGetBooking(svcs *service.Services) gin.HandlerFunc {
	return func(c *gin.Context) {
		bookingID, ok := parseInt64Param(c, "id")
		if !ok {
			return
		}
		b, err := svcs.Booking.GetBooking(c.Request.Context(), bookingID)
		if err != nil {
			respondErr(c, err)
			return
		}
		c.JSON(http.StatusOK, toBookingResponse(b))
	}
}

// @Summary  Booking QR code
// @Param    id  path  int  true  "Booking ID"
// @Produce  png
// @Success  200
// @Failure  404 {object} ErrorResponse
// @Router   /api/bookings/{id}/qr [get]
func handleBookingQR(svcs *service.Services) gin.HandlerFunc {
	return func(c *gin.Context) {
		bookingID, ok := parseInt64Param(c, "id")
		if !ok {
			return
		}
		b, err := svcs.Booking.GetBooking(c.Request.Context(), bookingID)
		if err != nil {
			respondErr(c, err)
			return
		}

		ref := fmt.Sprintf("movietix:booking:%d:show:%d:user:%d", b.ID, b.ShowID, b.UserID)
		png, err := qrcode.Encode(ref, qrcode.Medium, 256)
		if err != nil {
			respondErr(c, err)
			return
		}

		c.Data(http.StatusOK, "image/png", png)
	}
}

// @Summary  Cancel booking
// @Param    id  path  int  true  "Booking ID"
// @Success  200 {object} CancelBookingResponse
// @Failure  404 {object} ErrorResponse
// @Router   /api/bookings/{id}/cancel [put]
func handleCancelBooking(svcs *service.Services) gin.HandlerFunc {
	return func(c *gin.Context) {
		bookingID, ok := parseInt64Param(c, "id")
		if !ok {
			return
		}
		refund, err := svcs.Booking.Cancel(c.Request.Context(), bookingID)
		if err != nil {
			respondErr(c, err)
			return
		}
		c.JSON(http.StatusOK, CancelBookingResponse{RefundAmountCents: refund})
	}
}

// @Summary  User booking history
// @Param    id  path  int  true  "User ID"
// @Success  200 {array} BookingSummaryResponse
// @Router   /api/users/{id}/bookings [get]
func handleUserBookings(svcs *service.Services) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := parseInt64Param(c, "id")
		if !ok {
			return
		}
		items, err := svcs.Query.ListUserBookings(c.Request.Context(), userID)
		if err != nil {
			respondErr(c, err)
			return
		}
		c.JSON(http.StatusOK, toBookingSummaryResponses(items))
	}
}

// --- Helpers ---

func parseInt64Param(c *gin.Context, name string) (int64, bool) {
	s := c.Param(name)
	v, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		badRequest(c, "invalid "+name)
		return 0, false
	}
	return v, true
}

func badRequest(c *gin.Context, msg string) {
	c.JSON(http.StatusBadRequest, ErrorResponse{Error: msg})
}

func respondErr(c *gin.Context, err error) {
	if err == nil {
		c.Status(http.StatusNoContent)
		return
	}

	switch {
	// auth service
	case errors.Is(err, auth.ErrUserExists):
		c.JSON(http.StatusConflict, ErrorResponse{Error: "username or email already exists"})
		return
	case errors.Is(err, auth.ErrInvalidCredentials):
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "invalid credentials"})
		return
	// query service
	case errors.Is(err, query.ErrMovieNotFound):
		c.JSON(http.StatusNotFound, ErrorResponse{Error: "movie not found"})
		return
	case errors.Is(err, query.ErrShowNotFound):
		c.JSON(http.StatusNotFound, ErrorResponse{Error: "show not found"})
		return
	// booking service
	case errors.Is(err, booking.ErrInvalidRequest):
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid booking request"})
		return
	case errors.Is(err, booking.ErrShowNotFound):
		c.JSON(http.StatusNotFound, ErrorResponse{Error: "show not found"})
		return
	case errors.Is(err, booking.ErrShowNotActive):
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "show is not active"})
		return
	case errors.Is(err, booking.ErrSeatNotFound):
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "seat does not belong to show"})
		return
	case errors.Is(err, booking.ErrInsufficientSeats):
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "not enough seats available"})
		return
	case errors.Is(err, booking.ErrSeatConflict):
		c.JSON(http.StatusConflict, ErrorResponse{Error: "seat already booked"})
		return
	case errors.Is(err, booking.ErrBookingNotFound):
		c.JSON(http.StatusNotFound, ErrorResponse{Error: "booking not found"})
		return
	case errors.Is(err, booking.ErrRateLimited):
		c.Header("Retry-After", "60")
		c.JSON(http.StatusTooManyRequests, ErrorResponse{Error: "rate limited"})
		return
	}

	if postgresrepo.IsRetryable(err) {
		c.Header("Retry-After", "1")
		c.JSON(http.StatusServiceUnavailable, ErrorResponse{Error: "temporary store failure, retry"})
		return
	}

	c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "internal error"})
}
