package handlers

import (
	"net/http"
	"strconv"

	"legali_app_go/logger"
	"legali_app_go/middleware"
	"legali_app_go/services"
	"legali_app_go/services/datasource"
	"legali_app_go/services/pipeline"
	"legali_app_go/services/session"
	"legali_app_go/services/wizard"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

// StartBookingRequest selects the lawyer and optional package to book
type StartBookingRequest struct {
	LawyerID  string `json:"lawyerId"`
	PackageID string `json:"packageId"`
}

// DateTimeRequest is the first booking step
type DateTimeRequest struct {
	Date     string `json:"date"`
	TimeSlot string `json:"timeSlot"`
}

func currentBooking(store *session.Session) (*wizard.Booking, error) {
	b, ok := store.Booking()
	if !ok {
		return nil, echo.NewHTTPError(http.StatusNotFound, "No booking in progress")
	}
	return b, nil
}

// StartBookingHandler opens a booking wizard, replacing any in progress
func StartBookingHandler(c echo.Context) error {
	var req StartBookingRequest
	if err := c.Bind(&req); err != nil || req.LawyerID == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "lawyerId is required")
	}

	lawyer, err := DataSource.GetLawyer(c.Request().Context(), req.LawyerID)
	if err != nil {
		return respondError(c, err)
	}

	opts := []wizard.BookingOption{wizard.WithClock(Clock)}
	if req.PackageID != "" {
		pkg, ok := lawyer.FindPackage(req.PackageID)
		if !ok {
			return respondError(c, wizard.ValidationErrors{"packageId": "Unknown pricing package"})
		}
		opts = append(opts, wizard.WithPackage(*pkg))
	}

	store := middleware.GetSessionStore(c)
	b := wizard.NewBooking(*lawyer, store.UserID, opts...)
	store.SetBooking(b)

	return c.JSON(http.StatusCreated, b.State())
}

// GetBookingStateHandler returns the in-progress booking
func GetBookingStateHandler(c echo.Context) error {
	b, err := currentBooking(middleware.GetSessionStore(c))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, b.State())
}

// BookingDateTimeHandler sets date and slot, then advances to details
func BookingDateTimeHandler(c echo.Context) error {
	b, err := currentBooking(middleware.GetSessionStore(c))
	if err != nil {
		return err
	}

	var req DateTimeRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request")
	}

	if err := b.SelectDate(req.Date); err != nil {
		return respondError(c, err)
	}
	if err := b.SelectTimeSlot(req.TimeSlot); err != nil {
		return respondError(c, err)
	}
	if err := b.Next(); err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, b.State())
}

// BookingDetailsHandler stores the client details, then advances to confirmation
func BookingDetailsHandler(c echo.Context) error {
	b, err := currentBooking(middleware.GetSessionStore(c))
	if err != nil {
		return err
	}

	var details wizard.BookingDetails
	if err := c.Bind(&details); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request")
	}
	details.FullName = services.SanitizeText(details.FullName)
	details.CaseDescription = services.SanitizeText(details.CaseDescription)

	if err := b.UpdateDetails(details); err != nil {
		return respondError(c, err)
	}
	if err := b.Next(); err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, b.State())
}

// BookingBackHandler returns to the previous step
func BookingBackHandler(c echo.Context) error {
	b, err := currentBooking(middleware.GetSessionStore(c))
	if err != nil {
		return err
	}
	if err := b.Back(); err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, b.State())
}

// SubmitBookingHandler submits the confirmed booking and emails the client
func SubmitBookingHandler(c echo.Context) error {
	b, err := currentBooking(middleware.GetSessionStore(c))
	if err != nil {
		return err
	}

	ctx := c.Request().Context()
	created, err := b.Submit(ctx, DataSource.CreateBooking)
	if err != nil {
		return respondError(c, err)
	}

	cfg := middleware.GetConfig(c)
	state := b.State()
	if email, err := services.BuildBookingConfirmationEmail(ctx, cfg, *created, state.LawyerName); err != nil {
		logger.L().Error("failed to build booking email", zap.Error(err), zap.String("booking_id", created.ID))
	} else {
		services.SendEmailAsync(cfg, email)
	}

	return c.JSON(http.StatusCreated, map[string]interface{}{
		"booking": created,
		"state":   state,
	})
}

// CancelBookingWizardHandler discards the in-progress booking
func CancelBookingWizardHandler(c echo.Context) error {
	middleware.GetSessionStore(c).SetBooking(nil)
	return c.NoContent(http.StatusNoContent)
}

// ListBookingsHandler lists the signed-in user's bookings, newest first
func ListBookingsHandler(c echo.Context) error {
	store := middleware.GetSessionStore(c)

	page, _ := strconv.Atoi(c.QueryParam("page"))
	limit, _ := strconv.Atoi(c.QueryParam("limit"))
	if page < 1 {
		page = pipeline.DefaultPage
	}
	if limit < 1 {
		limit = pipeline.DefaultPageSize
	}

	result, err := DataSource.ListUserBookings(c.Request().Context(), store.UserID, page, limit)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, result)
}

// GetBookingHandler returns one of the user's bookings
func GetBookingHandler(c echo.Context) error {
	store := middleware.GetSessionStore(c)

	booking, err := DataSource.GetBooking(c.Request().Context(), c.Param("id"))
	if err != nil {
		return respondError(c, err)
	}
	if booking.ClientID != store.UserID {
		return respondError(c, datasource.ErrNotFound)
	}
	return c.JSON(http.StatusOK, booking)
}

// CancelBookingRequest carries the optional cancellation reason
type CancelBookingRequest struct {
	Reason string `json:"reason"`
}

// CancelBookingHandler cancels a pending or confirmed booking
func CancelBookingHandler(c echo.Context) error {
	store := middleware.GetSessionStore(c)
	ctx := c.Request().Context()

	var req CancelBookingRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request")
	}

	booking, err := DataSource.GetBooking(ctx, c.Param("id"))
	if err != nil {
		return respondError(c, err)
	}
	if booking.ClientID != store.UserID {
		return respondError(c, datasource.ErrNotFound)
	}

	cancelled, err := DataSource.CancelBooking(ctx, booking.ID, services.SanitizeText(req.Reason))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, cancelled)
}
