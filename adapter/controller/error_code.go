package controller

import (
	"devops.exregcloud.cn/EquipCloud/_git/reliability-analytics/server/locale"
	"github.com/kweaver-ai/kweaver-go-lib/rest"
)

const (
	ReliabilityAnalytics_InternalError_Error     = "ReliabilityAnalytics.InternalError.InternalError"
	ReliabilityAnalytics_BadRequest_InvalidParam = "ReliabilityAnalytics.BadRequest.InvalidParameter"
)

const (
	// 400 Validate
	ReliabilityAnalytics_InvalidParameter_TenantID = "ReliabilityAnalytics.InvalidParameter.TenantIDInvalidParameter"
	ReliabilityAnalytics_InvalidParameter_SiteID   = "ReliabilityAnalytics.InvalidParameter.SiteIDInvalidParameter"
	ReliabilityAnalytics_InvalidParameter_ZoneID   = "ReliabilityAnalytics.InvalidParameter.ZoneIDInvalidParameter"
	ReliabilityAnalytics_InvalidParameter_From     = "ReliabilityAnalytics.InvalidParameter.FromInvalidParameter"
	ReliabilityAnalytics_InvalidParameter_To       = "ReliabilityAnalytics.InvalidParameter.ToInvalidParameter"
	ReliabilityAnalytics_InvalidParameter_Mode     = "ReliabilityAnalytics.InvalidParameter.ModeInvalidParameter"
	ReliabilityAnalytics_InvalidParameter_Category = "ReliabilityAnalytics.InvalidParameter.CategoryInvalidParameter"
	ReliabilityAnalytics_InvalidParameter_Hours    = "ReliabilityAnalytics.InvalidParameter.HoursInvalidParameter"
	//400 内部校验
	ReliabilityAnalytics_BadRequest_InvalidWindow    = "ReliabilityAnalytics.BadRequest.InvalidWindow"
	ReliabilityAnalytics_BadRequest_InvalidSlaTarget = "ReliabilityAnalytics.BadRequest.InvalidSlaTarget"
	// 404
	ReliabilityAnalytics_NotFound_Data = "ReliabilityAnalytics.NotFound.Data"
	// 500
	ReliabilityAnalytics_InternalError_ExecuteSqlError = "ReliabilityAnalytics.InternalError.ExecuteSqlError"
	ReliabilityAnalytics_InternalError_CacheError      = "ReliabilityAnalytics.InternalError.CacheError"
)

var (
	errorCodeList = []string{
		ReliabilityAnalytics_InternalError_Error,
		ReliabilityAnalytics_BadRequest_InvalidParam,
		ReliabilityAnalytics_InvalidParameter_TenantID,
		ReliabilityAnalytics_InvalidParameter_SiteID,
		ReliabilityAnalytics_InvalidParameter_ZoneID,
		ReliabilityAnalytics_InvalidParameter_From,
		ReliabilityAnalytics_InvalidParameter_To,
		ReliabilityAnalytics_InvalidParameter_Mode,
		ReliabilityAnalytics_InvalidParameter_Category,
		ReliabilityAnalytics_InvalidParameter_Hours,
		ReliabilityAnalytics_BadRequest_InvalidWindow,
		ReliabilityAnalytics_BadRequest_InvalidSlaTarget,
		ReliabilityAnalytics_NotFound_Data,
		ReliabilityAnalytics_InternalError_ExecuteSqlError,
		ReliabilityAnalytics_InternalError_CacheError,
	}
)

func init() {
	locale.Register()
	// 注册
	rest.Register(errorCodeList)
}
