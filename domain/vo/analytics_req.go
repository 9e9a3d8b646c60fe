package vo

// 范围查询公共参数，tenant_id 必填，site_id/zone_id 为空表示不过滤
type ScopeQuery struct {
	TenantID string `form:"tenant_id" json:"tenant_id" validate:"required,field"`
	SiteID   string `form:"site_id" json:"site_id" validate:"omitempty,field"`
	ZoneID   string `form:"zone_id" json:"zone_id" validate:"omitempty,field"`
}

// 时间窗公共参数，时间为 ISO-8601 字符串，空串表示无界
type WindowQuery struct {
	From string `form:"from" json:"from" validate:"omitempty,datetime=2006-01-02T15:04:05Z07:00"`
	To   string `form:"to" json:"to" validate:"omitempty,datetime=2006-01-02T15:04:05Z07:00"`
}

// DashboardQuery 仪表盘分析查询，窗口固定按事件开始时间过滤
type DashboardQuery struct {
	ScopeQuery
	WindowQuery
}

// HealthQuery 健康度指标查询
type HealthQuery struct {
	ScopeQuery
	WindowQuery
	// 过滤模式：start，resolved，overlap，空串等价 start
	Mode string `form:"mode" json:"mode" validate:"omitempty,windowMode"`
	// 逗号分隔的严重级别列表，仅作用于维修事件，如 "P1,P2"
	Severity string `form:"severity" json:"severity"`
}

// SummaryQuery 运行状态快照查询，不接受时间窗
type SummaryQuery struct {
	ScopeQuery
}

// SlaTargetsQuery SLA 目标查询
type SlaTargetsQuery struct {
	TenantID string `form:"tenant_id" json:"tenant_id" validate:"required,field"`
}

// SlaTargetsPutReq 覆盖写入某一分类的 SLA 目标
type SlaTargetsPutReq struct {
	TenantID string             `json:"tenant_id" validate:"required,field"`
	Category string             `json:"category" validate:"required,oneof=maintenance inspection"`
	Hours    map[string]float64 `json:"hours" validate:"required,min=1"`
}
