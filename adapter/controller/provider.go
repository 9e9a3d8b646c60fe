package controller

import (
	"devops.exregcloud.cn/EquipCloud/_git/reliability-analytics/server/common/validate"
	"devops.exregcloud.cn/EquipCloud/_git/reliability-analytics/server/core"
	"devops.exregcloud.cn/EquipCloud/_git/reliability-analytics/server/domain/service"
	"github.com/go-playground/validator/v10"
	"github.com/google/wire"
)

var ProviderSet = wire.NewSet(NewValidator, NewAnalyticsController, NewSummaryController, NewSlaController, NewHandlerRoute, NewRouterQuote)

func NewValidator() *validator.Validate {
	va := validator.New()
	_ = va.RegisterValidation("field", validate.FieldValidation)
	_ = va.RegisterValidation("windowMode", validate.WindowModeValidation)
	_ = va.RegisterValidation("severity", validate.SeverityValidation)
	_ = va.RegisterValidation("idList", validate.IDListValidation)
	return va
}

// NewHandlerRoute 返回模板的路由
func NewHandlerRoute(analyticsController AnalyticsController, summaryController SummaryController,
	slaController SlaController) core.HttpRouter {
	return &HandlerRoute{
		ac: analyticsController,
		sc: summaryController,
		tc: slaController,
	}
}

// NewRouterQuote 返回路由引用列表
func NewRouterQuote(handlerRoute core.HttpRouter) *core.RouterQuote {
	return &core.RouterQuote{Routes: []core.HttpRouter{
		handlerRoute,
	}}
}

// NewAnalyticsController 返回报表控制器
func NewAnalyticsController(validate *validator.Validate, analyticsService service.AnalyticsService,
	healthService service.HealthService) AnalyticsController {
	return &analyticsController{
		analyticsService: analyticsService,
		healthService:    healthService,
		validate:         validate,
	}
}

// NewSummaryController 返回快照控制器
func NewSummaryController(validate *validator.Validate, summaryService service.SummaryService) SummaryController {
	return &summaryController{
		summaryService: summaryService,
		validate:       validate,
	}
}

// NewSlaController 返回 SLA 目标控制器
func NewSlaController(validate *validator.Validate, slaService service.SlaService) SlaController {
	return &slaController{
		slaService: slaService,
		validate:   validate,
	}
}
