//go:build unit

package api_test

import (
	"net/http"
	"testing"

	"storefront/internal/handler/api"
	resdto "storefront/internal/handler/dto/response"
	"storefront/internal/usecase/commands"
	"storefront/internal/usecase/queries"
	"storefront/tests/common/httptest"
	commandsmock "storefront/tests/mock/commands"
	queriesmock "storefront/tests/mock/queries"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type OrderHandlerTestSuite struct {
	suite.Suite
	router       *gin.Engine
	mockCtrl     *gomock.Controller
	mockCommands *commandsmock.MockOrderCommands
	mockDelivery *commandsmock.MockDeliveryCommands
	mockQueries  *queriesmock.MockOrderQueries
	handler      *api.OrderHandler
}

func (s *OrderHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockCommands = commandsmock.NewMockOrderCommands(s.mockCtrl)
	s.mockDelivery = commandsmock.NewMockDeliveryCommands(s.mockCtrl)
	s.mockQueries = queriesmock.NewMockOrderQueries(s.mockCtrl)
	s.handler = api.NewOrderHandler(s.mockCommands, s.mockDelivery, s.mockQueries)

	s.router.GET("/api/orders", s.handler.List)
	s.router.GET("/api/orders/lookup", s.handler.LookupByPhone)
	s.router.GET("/api/orders/:id", s.handler.Get)
	s.router.PATCH("/api/orders/:id/status", s.handler.SetStatus)
	s.router.POST("/api/orders/:id/dispatch", s.handler.Dispatch)
}

func (s *OrderHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestOrderHandlerSuite(t *testing.T) {
	suite.Run(t, new(OrderHandlerTestSuite))
}

func (s *OrderHandlerTestSuite) TestGet() {
	s.Run("success: returns the order", func() {
		view := &queries.OrderView{ID: 42, CustomerName: "Ana Souza", Status: "pending"}
		s.mockQueries.EXPECT().GetOrder(gomock.Any(), int64(42)).Return(view, nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/api/orders/42", nil)

		var resp resdto.OrderResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &resp)
		s.Equal(int64(42), resp.ID)
		s.Equal("pending", resp.Status)
	})

	s.Run("unknown order returns 404", func() {
		s.mockQueries.EXPECT().GetOrder(gomock.Any(), int64(9)).Return(nil, queries.ErrOrderNotFound)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/api/orders/9", nil)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "Order not found")
	})

	s.Run("non-numeric id returns 400", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/api/orders/abc", nil)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid id")
	})
}

func (s *OrderHandlerTestSuite) TestList() {
	s.Run("passes filters through", func() {
		s.mockQueries.EXPECT().ListOrders(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ any, f queries.OrderFilter) ([]*queries.OrderView, error) {
				s.Require().NotNil(f.Status)
				s.Equal("pending", *f.Status)
				s.Equal(int32(10), f.Limit)
				return []*queries.OrderView{{ID: 1, Status: "pending"}}, nil
			})

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/api/orders?status=pending&limit=10", nil)

		var resp struct {
			Orders []resdto.OrderResponse `json:"orders"`
		}
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &resp)
		s.Len(resp.Orders, 1)
	})

	s.Run("invalid status returns 400", func() {
		s.mockQueries.EXPECT().ListOrders(gomock.Any(), gomock.Any()).Return(nil, queries.ErrInvalidQuery)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/api/orders?status=shipped", nil)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid request")
	})
}

func (s *OrderHandlerTestSuite) TestLookupByPhone() {
	s.Run("missing phone parameter returns 400", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/api/orders/lookup", nil)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "phone query parameter")
	})

	s.Run("returns matches", func() {
		s.mockQueries.EXPECT().LookupByPhone(gomock.Any(), "11999990000").
			Return([]*queries.OrderView{{ID: 1}}, nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/api/orders/lookup?phone=11999990000", nil)

		var resp struct {
			Orders []resdto.OrderResponse `json:"orders"`
		}
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &resp)
		s.Len(resp.Orders, 1)
	})
}

func (s *OrderHandlerTestSuite) TestSetStatus() {
	url := "/api/orders/42/status"

	s.Run("success: applies the transition and returns the fresh view", func() {
		s.mockCommands.EXPECT().SetStatus(gomock.Any(), int64(42), gomock.Any()).Return(nil)
		s.mockQueries.EXPECT().GetOrder(gomock.Any(), int64(42)).
			Return(&queries.OrderView{ID: 42, Status: "paid"}, nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPatch, url, map[string]any{"status": "paid"})

		var resp resdto.OrderResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &resp)
		s.Equal("paid", resp.Status)
	})

	s.Run("disallowed transition returns 409", func() {
		s.mockCommands.EXPECT().SetStatus(gomock.Any(), int64(42), gomock.Any()).
			Return(commands.ErrInvalidTransition)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPatch, url, map[string]any{"status": "pending"})
		httptest.AssertErrorResponse(s.T(), rec, http.StatusConflict, "transition")
	})

	s.Run("missing status field returns 400", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPatch, url, map[string]any{})
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid request")
	})
}

func (s *OrderHandlerTestSuite) TestDispatch() {
	url := "/api/orders/42/dispatch"

	s.Run("success: returns the delivery reference", func() {
		s.mockDelivery.EXPECT().Dispatch(gomock.Any(), int64(42)).Return("dlv-123", nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, nil)

		var resp struct {
			DeliveryID string `json:"deliveryId"`
		}
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &resp)
		s.Equal("dlv-123", resp.DeliveryID)
	})

	s.Run("ineligible order returns 409", func() {
		s.mockDelivery.EXPECT().Dispatch(gomock.Any(), int64(42)).Return("", commands.ErrNotDispatchable)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, nil)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusConflict, "dispatch")
	})

	s.Run("provider failure returns 502", func() {
		s.mockDelivery.EXPECT().Dispatch(gomock.Any(), int64(42)).Return("", commands.ErrDeliveryProvider)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, nil)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadGateway, "Delivery provider")
	})
}
