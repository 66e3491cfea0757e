package api

import (
	"io"
	"net/http"

	"salon-booking/internal/domain/user"
	reqdto "salon-booking/internal/handler/dto/request"
	resdto "salon-booking/internal/handler/dto/response"
	"salon-booking/internal/handler/httperr"
	"salon-booking/internal/handler/middleware"
	"salon-booking/internal/pkg/errs"
	"salon-booking/internal/usecase/commands"
	"salon-booking/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type BookingHandler struct {
	cmds commands.BookingCommands
	q    queries.BookingQueries
}

func NewBookingHandler(cmds commands.BookingCommands, q queries.BookingQueries) *BookingHandler {
	return &BookingHandler{cmds: cmds, q: q}
}

// @Summary Hold a slot
// @Description Place a time-limited hold on a staff member's slot. Anonymous callers create guest holds.
// @Tags bookings
// @Accept json
// @Produce json
// @Param request body reqdto.HoldBookingRequest true "Hold request"
// @Success 201 {object} resdto.HoldResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Failure 422 {object} httperr.Response
// @Router /bookings/holds [post]
func (h *BookingHandler) Hold(c *gin.Context) {
	var req reqdto.HoldBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}

	owner, err := holdOwner(c, req.CustomerID)
	if err != nil {
		httperr.AbortWithError(c, http.StatusForbidden, err, err.Error(), nil)
		return
	}

	result, err := h.cmds.HoldBooking(c.Request.Context(), req.ToCommand(owner))
	if err != nil {
		httperr.AbortWithKind(c, err)
		return
	}
	c.JSON(http.StatusCreated, resdto.FromHoldResult(result.Booking, result.PayableAmount))
}

// holdOwner: customers always book for themselves, staff and admins may book
// for any customer or as a guest, anonymous callers only as a guest.
func holdOwner(c *gin.Context, requested *uuid.UUID) (*uuid.UUID, error) {
	p, ok := middleware.GetPrincipal(c)
	switch {
	case !ok:
		if requested != nil {
			return nil, errForeignCustomer
		}
		return nil, nil
	case p.Role.AtLeast(user.RoleStaff):
		return requested, nil
	default:
		if requested != nil && *requested != p.ID {
			return nil, errForeignCustomer
		}
		id := p.ID
		return &id, nil
	}
}

// @Summary Get booking
// @Tags bookings
// @Produce json
// @Param id path string true "Booking ID"
// @Success 200 {object} resdto.BookingResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /bookings/{id} [get]
func (h *BookingHandler) Get(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid id", nil)
		return
	}

	view, err := h.q.GetByID(c.Request.Context(), viewerOf(c), id)
	if err != nil {
		httperr.AbortWithKind(c, err)
		return
	}
	res, err := resdto.FromBookingView(view)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		return
	}
	c.JSON(http.StatusOK, res)
}

// @Summary List bookings
// @Description Admins may filter freely; other callers only see their own bookings.
// @Tags bookings
// @Produce json
// @Security BearerAuth
// @Param staff_id query string false "Staff ID"
// @Param customer_id query string false "Customer ID (admin only)"
// @Param status query string false "Status"
// @Param from query string false "RFC3339 lower bound on end_at"
// @Param to query string false "RFC3339 upper bound on start_at"
// @Param cursor query string false "Cursor from a previous page"
// @Param limit query int false "Page size"
// @Success 200 {object} resdto.BookingListResponse
// @Failure 400 {object} httperr.Response
// @Failure 401 {object} httperr.Response
// @Failure 422 {object} httperr.Response
// @Router /bookings [get]
func (h *BookingHandler) List(c *gin.Context) {
	var q reqdto.ListBookingsQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid query", nil)
		return
	}

	var after *queries.Cursor
	if q.Cursor != "" {
		after = &queries.Cursor{After: q.Cursor}
	}

	views, next, err := h.q.List(c.Request.Context(), viewerOf(c), q.ToFilter(), after, q.Limit)
	if err != nil {
		httperr.AbortWithKind(c, err)
		return
	}
	res, err := resdto.FromBookingViews(views, next)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		return
	}
	c.JSON(http.StatusOK, res)
}

// @Summary Cancel booking
// @Description Owners may cancel outside the cancellation window; admins at any time.
// @Tags bookings
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Booking ID"
// @Param request body reqdto.CancelBookingRequest false "Cancel request"
// @Success 200 {object} resdto.BookingResponse
// @Failure 400 {object} httperr.Response
// @Failure 401 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /bookings/{id}/cancel [post]
func (h *BookingHandler) Cancel(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid id", nil)
		return
	}
	p, ok := middleware.GetPrincipal(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, errUnauthenticated, "Unauthorized", nil)
		return
	}

	var req reqdto.CancelBookingRequest
	// The body is optional; chunked requests report no length, so bind
	// whenever one is present and treat an empty one as no reason.
	if c.Request.Body != nil && c.Request.Body != http.NoBody {
		if bindErr := c.ShouldBindJSON(&req); bindErr != nil && !errs.Is(bindErr, io.EOF) {
			httperr.AbortWithError(c, http.StatusBadRequest, bindErr, "Invalid request", nil)
			return
		}
	}

	uid := p.ID
	b, err := h.cmds.CancelBooking(c.Request.Context(), commands.CancelRequest{
		BookingID: id,
		Actor:     commands.Actor{UserID: &uid, IsAdmin: p.IsAdmin()},
		Reason:    req.Reason,
	})
	if err != nil {
		httperr.AbortWithKind(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromBooking(b))
}

// @Summary Complete booking
// @Tags bookings
// @Produce json
// @Security BearerAuth
// @Param id path string true "Booking ID"
// @Success 200 {object} resdto.BookingResponse
// @Failure 403 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /bookings/{id}/complete [post]
func (h *BookingHandler) Complete(c *gin.Context) {
	h.close(c, h.cmds.CompleteBooking)
}

// @Summary Mark booking as no-show
// @Tags bookings
// @Produce json
// @Security BearerAuth
// @Param id path string true "Booking ID"
// @Success 200 {object} resdto.BookingResponse
// @Failure 403 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /bookings/{id}/no-show [post]
func (h *BookingHandler) NoShow(c *gin.Context) {
	h.close(c, h.cmds.MarkNoShow)
}

func (h *BookingHandler) close(c *gin.Context, run closeFunc) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid id", nil)
		return
	}
	b, err := run(c.Request.Context(), id)
	if err != nil {
		httperr.AbortWithKind(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromBooking(b))
}

func viewerOf(c *gin.Context) queries.Viewer {
	p, ok := middleware.GetPrincipal(c)
	if !ok {
		return queries.Viewer{}
	}
	id := p.ID
	return queries.Viewer{UserID: &id, IsAdmin: p.IsAdmin()}
}
