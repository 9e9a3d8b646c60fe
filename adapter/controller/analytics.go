package controller

import (
	"net/http"

	"devops.exregcloud.cn/EquipCloud/_git/reliability-analytics/server/common"
	"devops.exregcloud.cn/EquipCloud/_git/reliability-analytics/server/common/log"
	"devops.exregcloud.cn/EquipCloud/_git/reliability-analytics/server/domain/service"
	"devops.exregcloud.cn/EquipCloud/_git/reliability-analytics/server/domain/vo"
	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/kweaver-ai/kweaver-go-lib/rest"
)

type AnalyticsController interface {
	Dashboard(c *gin.Context)
	Health(c *gin.Context)
}

type analyticsController struct {
	analyticsService service.AnalyticsService
	healthService    service.HealthService
	validate         *validator.Validate
}

// Dashboard 仪表盘报表
func (p *analyticsController) Dashboard(c *gin.Context) {
	ctx := rest.GetLanguageCtx(c)
	req := vo.DashboardQuery{}
	if err := c.ShouldBindQuery(&req); err != nil {
		httpErr := NewRestHTTPError(ctx, InvalidParameter).WithErrorDetails(common.ErrorDetailBind + err.Error())
		rest.ReplyError(c, httpErr)
		return
	}
	log.Debugf("request dashboard from host:%s ,req:%+v", c.Request.Host, req)
	// 参数检验
	if err := p.validate.Struct(&req); err != nil {
		httpErr := HandleValidateError(ctx, err)
		log.Errorf("dashboard request validate err:%s", err.Error())
		rest.ReplyError(c, httpErr)
		return
	}
	result, err := p.analyticsService.ComputeDashboard(ctx, &req)
	if err != nil {
		log.Errorf("dashboard compute failed err:%s", err.Error())
		httpErr := HandDomainError(ctx, err)
		rest.ReplyError(c, httpErr)
		return
	}
	rest.ReplyOK(c, http.StatusOK, result)
}

// Health 健康度报表
func (p *analyticsController) Health(c *gin.Context) {
	ctx := rest.GetLanguageCtx(c)
	req := vo.HealthQuery{}
	if err := c.ShouldBindQuery(&req); err != nil {
		httpErr := NewRestHTTPError(ctx, InvalidParameter).WithErrorDetails(common.ErrorDetailBind + err.Error())
		rest.ReplyError(c, httpErr)
		return
	}
	log.Debugf("request health from host:%s ,req:%+v", c.Request.Host, req)
	// 参数检验
	if err := p.validate.Struct(&req); err != nil {
		httpErr := HandleValidateError(ctx, err)
		log.Errorf("health request validate err:%s", err.Error())
		rest.ReplyError(c, httpErr)
		return
	}
	result, err := p.healthService.ComputeHealth(ctx, &req)
	if err != nil {
		log.Errorf("health compute failed err:%s", err.Error())
		httpErr := HandDomainError(ctx, err)
		rest.ReplyError(c, httpErr)
		return
	}
	rest.ReplyOK(c, http.StatusOK, result)
}
