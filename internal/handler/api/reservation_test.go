//go:build unit

package api_test

import (
	"context"
	"errors"
	"net/http"
	"testing"
	"time"

	"stayhub/internal/handler/api"
	reqdto "stayhub/internal/handler/dto/request"
	resdto "stayhub/internal/handler/dto/response"
	"stayhub/internal/pkg/errs"
	"stayhub/internal/usecase/commands"
	"stayhub/internal/usecase/queries"
	"stayhub/tests/common/httptest"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
)

type transitionCall struct {
	method string
	id     uuid.UUID
	unit   *uuid.UUID
}

type fakeReservationCommands struct {
	calls    []transitionCall
	lastStay *commands.UpdateStayInput
	err      error
}

func (f *fakeReservationCommands) Confirm(_ context.Context, id uuid.UUID, unitID *uuid.UUID) error {
	f.calls = append(f.calls, transitionCall{method: "confirm", id: id, unit: unitID})
	return f.err
}

func (f *fakeReservationCommands) CheckIn(_ context.Context, id uuid.UUID, unitID *uuid.UUID) error {
	f.calls = append(f.calls, transitionCall{method: "check-in", id: id, unit: unitID})
	return f.err
}

func (f *fakeReservationCommands) CheckOut(_ context.Context, id uuid.UUID) error {
	f.calls = append(f.calls, transitionCall{method: "check-out", id: id})
	return f.err
}

func (f *fakeReservationCommands) Cancel(_ context.Context, id uuid.UUID) error {
	f.calls = append(f.calls, transitionCall{method: "cancel", id: id})
	return f.err
}

func (f *fakeReservationCommands) UpdateStay(_ context.Context, id uuid.UUID, in commands.UpdateStayInput) error {
	f.calls = append(f.calls, transitionCall{method: "update-stay", id: id})
	f.lastStay = &in
	return f.err
}

type fakeReservationQueries struct {
	view       *queries.ReservationView
	items      []*queries.ReservationListItem
	total      int64
	counts     *queries.ReservationStatusCounts
	err        error
	lastStatus string
	lastPage   int
	lastLimit  int
}

func (f *fakeReservationQueries) GetByID(_ context.Context, _ uuid.UUID) (*queries.ReservationView, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.view, nil
}

func (f *fakeReservationQueries) List(_ context.Context, status string, page, limit int) ([]*queries.ReservationListItem, int64, error) {
	if f.err != nil {
		return nil, 0, f.err
	}
	f.lastStatus = status
	f.lastPage = page
	f.lastLimit = limit
	return f.items, f.total, nil
}

func (f *fakeReservationQueries) StatusCounts(_ context.Context) (*queries.ReservationStatusCounts, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.counts, nil
}

type ReservationHandlerTestSuite struct {
	suite.Suite
	router   *gin.Engine
	commands *fakeReservationCommands
	queries  *fakeReservationQueries
}

func (s *ReservationHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.commands = &fakeReservationCommands{}
	s.queries = &fakeReservationQueries{}
	handler := api.NewReservationHandler(s.commands, s.queries)

	s.router.GET("/admin/reservations", handler.ListReservations)
	s.router.GET("/admin/reservations/stats", handler.StatusCounts)
	s.router.GET("/admin/reservations/:id", handler.GetReservation)
	s.router.PATCH("/admin/reservations/:id", handler.UpdateStay)
	s.router.POST("/admin/reservations/:id/confirm", handler.Confirm)
	s.router.POST("/admin/reservations/:id/check-in", handler.CheckIn)
	s.router.POST("/admin/reservations/:id/check-out", handler.CheckOut)
	s.router.POST("/admin/reservations/:id/cancel", handler.Cancel)
}

func TestReservationHandlerSuite(t *testing.T) {
	suite.Run(t, new(ReservationHandlerTestSuite))
}

func sampleListItem() *queries.ReservationListItem {
	return &queries.ReservationListItem{
		ID:         uuid.New(),
		Reference:  "RSV-A1B2C3D4",
		RoomName:   "Deluxe King",
		GuestName:  "Grace Hopper",
		CheckIn:    time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC),
		CheckOut:   time.Date(2025, 6, 3, 0, 0, 0, 0, time.UTC),
		TotalCents: 59800,
		Status:     "pending",
		CreatedAt:  time.Date(2025, 5, 20, 9, 0, 0, 0, time.UTC),
	}
}

func (s *ReservationHandlerTestSuite) TestListReservations() {
	baseURL := "/admin/reservations"

	s.Run("success: returns one page with totals", func() {
		s.queries.items = []*queries.ReservationListItem{sampleListItem(), sampleListItem()}
		s.queries.total = 42

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, baseURL+"?page=2&limit=10", nil, "bearer-token")

		var body resdto.ReservationListResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Len(body.Items, 2)
		s.Equal(int64(42), body.Total)
		s.Equal(2, body.Page)
		s.Equal(10, body.Limit)
		s.Equal(2, s.queries.lastPage)
		s.Equal(10, s.queries.lastLimit)
	})

	s.Run("success: All maps to no status filter", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, baseURL+"?status=All", nil, "bearer-token")

		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, nil)
		s.Equal("", s.queries.lastStatus)
	})

	s.Run("success: empty result is an empty array", func() {
		s.queries.items = nil
		s.queries.total = 0

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, baseURL, nil, "bearer-token")

		var body resdto.ReservationListResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.NotNil(body.Items)
		s.Len(body.Items, 0)
	})

	s.Run("error: 500 on query failure", func() {
		s.queries.err = errors.New("database error")
		defer func() { s.queries.err = nil }()

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, baseURL, nil, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusInternalServerError, "Internal server error")
	})
}

func (s *ReservationHandlerTestSuite) TestStatusCounts() {
	url := "/admin/reservations/stats"

	s.Run("success: returns per-status totals", func() {
		s.queries.counts = &queries.ReservationStatusCounts{
			Pending:   3,
			Confirmed: 5,
			CheckedIn: 2,
		}

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "bearer-token")

		var body queries.ReservationStatusCounts
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Equal(int64(3), body.Pending)
		s.Equal(int64(5), body.Confirmed)
	})
}

func (s *ReservationHandlerTestSuite) TestGetReservation() {
	reservationID := uuid.New()
	url := "/admin/reservations/" + reservationID.String()

	s.Run("success: returns the full view", func() {
		s.queries.view = &queries.ReservationView{
			ID:         reservationID,
			Reference:  "RSV-A1B2C3D4",
			RoomName:   "Deluxe King",
			GuestName:  "Grace Hopper",
			Nights:     2,
			TotalCents: 59800,
			Status:     "confirmed",
		}

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "bearer-token")

		var body queries.ReservationView
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Equal(reservationID, body.ID)
		s.Equal("RSV-A1B2C3D4", body.Reference)
	})

	s.Run("error: 400 for invalid UUID", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/admin/reservations/not-a-uuid", nil, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid ID format")
	})

	s.Run("error: 404 for missing reservation", func() {
		s.queries.err = errs.ErrReservationNotFound
		defer func() { s.queries.err = nil }()

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "Reservation not found")
	})
}

func (s *ReservationHandlerTestSuite) TestTransitions() {
	reservationID := uuid.New()
	unitID := uuid.New()

	s.Run("success: confirm without a body", func() {
		url := "/admin/reservations/" + reservationID.String() + "/confirm"
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, nil, "bearer-token")

		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, nil)
		s.Require().Len(s.commands.calls, 1)
		s.Equal("confirm", s.commands.calls[0].method)
		s.Equal(reservationID, s.commands.calls[0].id)
		s.Nil(s.commands.calls[0].unit)
	})

	s.Run("success: check-in carries the unit from the body", func() {
		url := "/admin/reservations/" + reservationID.String() + "/check-in"
		body := reqdto.TransitionRequest{UnitID: &unitID}

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, body, "bearer-token")

		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, nil)
		last := s.commands.calls[len(s.commands.calls)-1]
		s.Equal("check-in", last.method)
		s.Require().NotNil(last.unit)
		s.Equal(unitID, *last.unit)
	})

	s.Run("success: check-out and cancel take no body", func() {
		for _, action := range []string{"check-out", "cancel"} {
			url := "/admin/reservations/" + reservationID.String() + "/" + action
			rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, nil, "bearer-token")

			httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, nil)
			last := s.commands.calls[len(s.commands.calls)-1]
			s.Equal(action, last.method)
		}
	})

	s.Run("error: maps command errors to proper statuses", func() {
		url := "/admin/reservations/" + reservationID.String() + "/check-in"

		testCases := []struct {
			name           string
			commandsError  error
			expectedStatus int
			expectedMsg    string
		}{
			{
				name:           "reservation not found",
				commandsError:  errs.ErrReservationNotFound,
				expectedStatus: http.StatusNotFound,
				expectedMsg:    "Reservation not found",
			},
			{
				name:           "unit not found",
				commandsError:  errs.ErrRoomUnitNotFound,
				expectedStatus: http.StatusNotFound,
				expectedMsg:    "Room unit not found",
			},
			{
				name:           "state conflict",
				commandsError:  errs.ErrStateConflict,
				expectedStatus: http.StatusConflict,
				expectedMsg:    "refresh and retry",
			},
			{
				name:           "unit not available",
				commandsError:  errs.ErrUnitNotAvailable,
				expectedStatus: http.StatusConflict,
				expectedMsg:    "not available",
			},
			{
				name:           "stay not started",
				commandsError:  errs.ErrStayNotStarted,
				expectedStatus: http.StatusUnprocessableEntity,
				expectedMsg:    "not started",
			},
			{
				name:           "no unit assigned",
				commandsError:  errs.ErrNoUnitAssigned,
				expectedStatus: http.StatusUnprocessableEntity,
				expectedMsg:    "No room unit assigned",
			},
			{
				name:           "internal server error",
				commandsError:  errors.New("database error"),
				expectedStatus: http.StatusInternalServerError,
				expectedMsg:    "Internal server error",
			},
		}

		for _, tc := range testCases {
			s.Run(tc.name, func() {
				s.commands.err = tc.commandsError
				defer func() { s.commands.err = nil }()

				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, nil, "bearer-token")
				httptest.AssertErrorResponse(s.T(), rec, tc.expectedStatus, tc.expectedMsg)
			})
		}
	})
}

func (s *ReservationHandlerTestSuite) TestUpdateStay() {
	reservationID := uuid.New()
	url := "/admin/reservations/" + reservationID.String()

	reqBody := reqdto.UpdateStayRequest{
		CheckIn:  "2025-06-10",
		CheckOut: "2025-06-14",
		Adults:   2,
		Children: 1,
	}

	s.Run("success: forwards the edited stay", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPatch, url, reqBody, "bearer-token")

		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, nil)
		s.Require().NotNil(s.commands.lastStay)
		s.Equal("2025-06-10", s.commands.lastStay.CheckIn)
		s.Equal(2, s.commands.lastStay.Adults)
		s.Equal(1, s.commands.lastStay.Children)
	})

	s.Run("error: 400 on missing dates", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPatch, url, map[string]any{"adults": 2}, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid request format")
	})

	s.Run("error: 409 when the stay already opened", func() {
		s.commands.err = errs.ErrStateConflict
		defer func() { s.commands.err = nil }()

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPatch, url, reqBody, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusConflict, "refresh and retry")
	})
}
