package controller

import (
	"net/http"

	"devops.exregcloud.cn/EquipCloud/_git/reliability-analytics/server/common"
	"devops.exregcloud.cn/EquipCloud/_git/reliability-analytics/server/common/log"
	"devops.exregcloud.cn/EquipCloud/_git/reliability-analytics/server/core"
	"devops.exregcloud.cn/EquipCloud/_git/reliability-analytics/server/domain/service"
	"devops.exregcloud.cn/EquipCloud/_git/reliability-analytics/server/domain/vo"
	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/kweaver-ai/kweaver-go-lib/rest"
)

type SummaryController interface {
	Operational(c *gin.Context)
	Status(c *gin.Context)
	Severity(c *gin.Context)
}

type summaryController struct {
	summaryService service.SummaryService
	validate       *validator.Validate
}

// Operational 运行状态快照
func (p *summaryController) Operational(c *gin.Context) {
	p.reply(c, "operational summary", func(ctx *gin.Context, req *vo.SummaryQuery) (interface{}, core.ServiceError) {
		return p.summaryService.Operational(rest.GetLanguageCtx(ctx), req)
	})
}

// Status 综合状态快照
func (p *summaryController) Status(c *gin.Context) {
	p.reply(c, "status summary", func(ctx *gin.Context, req *vo.SummaryQuery) (interface{}, core.ServiceError) {
		return p.summaryService.OverallStatus(rest.GetLanguageCtx(ctx), req)
	})
}

// Severity 受影响设备级别分布
func (p *summaryController) Severity(c *gin.Context) {
	p.reply(c, "severity summary", func(ctx *gin.Context, req *vo.SummaryQuery) (interface{}, core.ServiceError) {
		return p.summaryService.MaintenanceSeverity(rest.GetLanguageCtx(ctx), req)
	})
}

// reply 三个快照接口共用的绑定、校验、响应流程
func (p *summaryController) reply(c *gin.Context, name string,
	compute func(*gin.Context, *vo.SummaryQuery) (interface{}, core.ServiceError)) {
	ctx := rest.GetLanguageCtx(c)
	req := vo.SummaryQuery{}
	if err := c.ShouldBindQuery(&req); err != nil {
		httpErr := NewRestHTTPError(ctx, InvalidParameter).WithErrorDetails(common.ErrorDetailBind + err.Error())
		rest.ReplyError(c, httpErr)
		return
	}
	log.Debugf("request %s from host:%s ,req:%+v", name, c.Request.Host, req)
	// 参数检验
	if err := p.validate.Struct(&req); err != nil {
		httpErr := HandleValidateError(ctx, err)
		log.Errorf("%s request validate err:%s", name, err.Error())
		rest.ReplyError(c, httpErr)
		return
	}
	result, err := compute(c, &req)
	if err != nil {
		log.Errorf("%s compute failed err:%s", name, err.Error())
		httpErr := HandDomainError(ctx, err)
		rest.ReplyError(c, httpErr)
		return
	}
	rest.ReplyOK(c, http.StatusOK, result)
}
