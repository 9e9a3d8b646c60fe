package controller

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"devops.exregcloud.cn/EquipCloud/_git/reliability-analytics/server/core"
	"devops.exregcloud.cn/EquipCloud/_git/reliability-analytics/server/domain/vo"
	"github.com/gin-gonic/gin"
	. "github.com/smartystreets/goconvey/convey"
)

type stubAnalyticsService struct {
	resp vo.DashboardResp
	err  core.ServiceError
}

func (s *stubAnalyticsService) ComputeDashboard(_ context.Context, _ *vo.DashboardQuery) (vo.DashboardResp, core.ServiceError) {
	return s.resp, s.err
}

type stubHealthService struct {
	resp vo.HealthResp
	err  core.ServiceError
}

func (s *stubHealthService) ComputeHealth(_ context.Context, _ *vo.HealthQuery) (vo.HealthResp, core.ServiceError) {
	return s.resp, s.err
}

func doRequest(router *gin.Engine, method, target string, body string) *httptest.ResponseRecorder {
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, target, nil)
	} else {
		req = httptest.NewRequest(method, target, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func newTestRouter(ac AnalyticsController) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.GET("/dashboard", ac.Dashboard)
	router.GET("/health-metrics", ac.Health)
	return router
}

func TestAnalyticsControllerDashboard(t *testing.T) {
	Convey("TestAnalyticsControllerDashboard", t, func() {
		Convey("正常请求返回 200", func() {
			ac := NewAnalyticsController(NewValidator(), &stubAnalyticsService{}, &stubHealthService{})
			router := newTestRouter(ac)

			w := doRequest(router, http.MethodGet, "/dashboard?tenant_id=t-1", "")

			So(w.Code, ShouldEqual, http.StatusOK)
		})

		Convey("缺少 tenant_id 返回 400", func() {
			ac := NewAnalyticsController(NewValidator(), &stubAnalyticsService{}, &stubHealthService{})
			router := newTestRouter(ac)

			w := doRequest(router, http.MethodGet, "/dashboard", "")

			So(w.Code, ShouldEqual, http.StatusBadRequest)
		})

		Convey("非法时间格式返回 400", func() {
			ac := NewAnalyticsController(NewValidator(), &stubAnalyticsService{}, &stubHealthService{})
			router := newTestRouter(ac)

			w := doRequest(router, http.MethodGet, "/dashboard?tenant_id=t-1&from=2026-01-10", "")

			So(w.Code, ShouldEqual, http.StatusBadRequest)
		})

		Convey("服务错误映射为对应的 HTTP 状态码", func() {
			ac := NewAnalyticsController(NewValidator(), &stubAnalyticsService{
				err: newTestServiceError("InternalError"),
			}, &stubHealthService{})
			router := newTestRouter(ac)

			w := doRequest(router, http.MethodGet, "/dashboard?tenant_id=t-1", "")

			So(w.Code, ShouldEqual, http.StatusInternalServerError)
		})
	})
}

func TestAnalyticsControllerHealth(t *testing.T) {
	Convey("TestAnalyticsControllerHealth", t, func() {
		Convey("正常请求返回 200", func() {
			ac := NewAnalyticsController(NewValidator(), &stubAnalyticsService{}, &stubHealthService{})
			router := newTestRouter(ac)

			w := doRequest(router, http.MethodGet, "/health-metrics?tenant_id=t-1&mode=overlap&severity=P1,P2", "")

			So(w.Code, ShouldEqual, http.StatusOK)
		})

		Convey("非法 mode 返回 400", func() {
			ac := NewAnalyticsController(NewValidator(), &stubAnalyticsService{}, &stubHealthService{})
			router := newTestRouter(ac)

			w := doRequest(router, http.MethodGet, "/health-metrics?tenant_id=t-1&mode=bogus", "")

			So(w.Code, ShouldEqual, http.StatusBadRequest)
		})
	})
}

type testServiceError struct {
	errType string
}

func (e *testServiceError) Error() string            { return e.errType }
func (e *testServiceError) GetError() core.RepoError { return nil }
func (e *testServiceError) Type() string             { return e.errType }

func newTestServiceError(errType string) core.ServiceError {
	return &testServiceError{errType: errType}
}
