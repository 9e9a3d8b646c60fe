package controller

import (
	"context"
	"net/http"
	"testing"

	"devops.exregcloud.cn/EquipCloud/_git/reliability-analytics/server/core"
	"devops.exregcloud.cn/EquipCloud/_git/reliability-analytics/server/domain/entity"
	"devops.exregcloud.cn/EquipCloud/_git/reliability-analytics/server/domain/vo"
	"github.com/gin-gonic/gin"
	. "github.com/smartystreets/goconvey/convey"
)

type stubSlaService struct {
	getResp vo.SlaTargetsResp
	getErr  core.ServiceError
	putErr  core.ServiceError
	putReq  *vo.SlaTargetsPutReq
}

func (s *stubSlaService) LoadMerged(_ context.Context, _ string) (entity.SlaTargets, core.ServiceError) {
	return entity.SlaTargets{}, nil
}

func (s *stubSlaService) GetTargets(_ context.Context, _ string) (vo.SlaTargetsResp, core.ServiceError) {
	return s.getResp, s.getErr
}

func (s *stubSlaService) PutTargets(_ context.Context, req *vo.SlaTargetsPutReq) core.ServiceError {
	s.putReq = req
	return s.putErr
}

func newSlaTestRouter(tc SlaController) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.GET("/sla-targets", tc.Get)
	router.PUT("/sla-targets", tc.Put)
	return router
}

func TestSlaControllerGet(t *testing.T) {
	Convey("TestSlaControllerGet", t, func() {
		Convey("正常请求返回 200", func() {
			tc := NewSlaController(NewValidator(), &stubSlaService{})
			router := newSlaTestRouter(tc)

			w := doRequest(router, http.MethodGet, "/sla-targets?tenant_id=t-1", "")

			So(w.Code, ShouldEqual, http.StatusOK)
		})

		Convey("缺少 tenant_id 返回 400", func() {
			tc := NewSlaController(NewValidator(), &stubSlaService{})
			router := newSlaTestRouter(tc)

			w := doRequest(router, http.MethodGet, "/sla-targets", "")

			So(w.Code, ShouldEqual, http.StatusBadRequest)
		})
	})
}

func TestSlaControllerPut(t *testing.T) {
	Convey("TestSlaControllerPut", t, func() {
		Convey("正常写入返回 200 并透传请求体", func() {
			svc := &stubSlaService{}
			tc := NewSlaController(NewValidator(), svc)
			router := newSlaTestRouter(tc)

			body := `{"tenant_id":"t-1","category":"maintenance","hours":{"P1":12}}`
			w := doRequest(router, http.MethodPut, "/sla-targets", body)

			So(w.Code, ShouldEqual, http.StatusOK)
			So(svc.putReq, ShouldNotBeNil)
			So(svc.putReq.Category, ShouldEqual, "maintenance")
			So(svc.putReq.Hours["P1"], ShouldEqual, 12)
		})

		Convey("非法分类返回 400", func() {
			tc := NewSlaController(NewValidator(), &stubSlaService{})
			router := newSlaTestRouter(tc)

			body := `{"tenant_id":"t-1","category":"bogus","hours":{"P1":12}}`
			w := doRequest(router, http.MethodPut, "/sla-targets", body)

			So(w.Code, ShouldEqual, http.StatusBadRequest)
		})

		Convey("空 hours 返回 400", func() {
			tc := NewSlaController(NewValidator(), &stubSlaService{})
			router := newSlaTestRouter(tc)

			body := `{"tenant_id":"t-1","category":"maintenance","hours":{}}`
			w := doRequest(router, http.MethodPut, "/sla-targets", body)

			So(w.Code, ShouldEqual, http.StatusBadRequest)
		})

		Convey("服务拒绝非法目标时返回 400", func() {
			tc := NewSlaController(NewValidator(), &stubSlaService{
				putErr: newTestServiceError("InvalidSlaTarget"),
			})
			router := newSlaTestRouter(tc)

			body := `{"tenant_id":"t-1","category":"maintenance","hours":{"P1":-1}}`
			w := doRequest(router, http.MethodPut, "/sla-targets", body)

			So(w.Code, ShouldEqual, http.StatusBadRequest)
		})
	})
}
