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

type SlaController interface {
	Get(c *gin.Context)
	Put(c *gin.Context)
}

type slaController struct {
	slaService service.SlaService
	validate   *validator.Validate
}

// Get 查询租户 SLA 目标，返回值已合并默认值
func (p *slaController) Get(c *gin.Context) {
	ctx := rest.GetLanguageCtx(c)
	req := vo.SlaTargetsQuery{}
	if err := c.ShouldBindQuery(&req); err != nil {
		httpErr := NewRestHTTPError(ctx, InvalidParameter).WithErrorDetails(common.ErrorDetailBind + err.Error())
		rest.ReplyError(c, httpErr)
		return
	}
	// 参数检验
	if err := p.validate.Struct(&req); err != nil {
		httpErr := HandleValidateError(ctx, err)
		log.Errorf("sla targets request validate err:%s", err.Error())
		rest.ReplyError(c, httpErr)
		return
	}
	result, err := p.slaService.GetTargets(ctx, req.TenantID)
	if err != nil {
		log.Errorf("sla targets query failed err:%s", err.Error())
		httpErr := HandDomainError(ctx, err)
		rest.ReplyError(c, httpErr)
		return
	}
	rest.ReplyOK(c, http.StatusOK, result)
}

// Put 覆盖写入某一分类的 SLA 目标，未提交的级别回落默认值
func (p *slaController) Put(c *gin.Context) {
	ctx := rest.GetLanguageCtx(c)
	req := vo.SlaTargetsPutReq{}
	if err := c.ShouldBind(&req); err != nil {
		httpErr := NewRestHTTPError(ctx, InvalidParameter).WithErrorDetails(common.ErrorDetailBind + err.Error())
		rest.ReplyError(c, httpErr)
		return
	}
	log.Debugf("request sla targets update from host:%s ,req:%+v", c.Request.Host, req)
	// 参数检验
	if err := p.validate.Struct(&req); err != nil {
		httpErr := HandleValidateError(ctx, err)
		log.Errorf("sla targets update validate err:%s", err.Error())
		rest.ReplyError(c, httpErr)
		return
	}
	if err := p.slaService.PutTargets(ctx, &req); err != nil {
		log.Errorf("sla targets update failed err:%s", err.Error())
		httpErr := HandDomainError(ctx, err)
		rest.ReplyError(c, httpErr)
		return
	}
	rest.ReplyOK(c, http.StatusOK, vo.BaseResp{Success: 1})
}
