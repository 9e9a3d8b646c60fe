package vo

// Stats 时长统计，各字段单位为小时；空集时除 count、total_hours 外均为 null
type Stats struct {
	Count       int      `json:"count"`
	TotalHours  float64  `json:"total_hours"`
	MinHours    *float64 `json:"min_hours"`
	MaxHours    *float64 `json:"max_hours"`
	MeanHours   *float64 `json:"mean_hours"`
	MedianHours *float64 `json:"median_hours"`
	P90Hours    *float64 `json:"p90_hours"`
}

// OpenAging 未关闭事件的滞留时长统计，始终按当前时刻计算
type OpenAging struct {
	OpenCount int `json:"open_count"`
	Stats
}

// Throughput 窗口内开始与关闭的事件数，两者独立计数
type Throughput struct {
	Started  int `json:"started"`
	Resolved int `json:"resolved"`
}

// RepairsHistogram 按维修次数分桶，次数 <=1 记入 "1"
type RepairsHistogram struct {
	One       int `json:"1"`
	Two       int `json:"2"`
	ThreePlus int `json:"3plus"`
}

// SlaBucket 单一级别的达标与超时计数
type SlaBucket struct {
	Within int `json:"within"`
	Breach int `json:"breach"`
}

// SlaCompliance SLA 达标统计，rate 在无样本时为 null
type SlaCompliance struct {
	Total      int                  `json:"total"`
	Within     int                  `json:"within"`
	Breach     int                  `json:"breach"`
	Rate       *float64             `json:"rate"`
	BySeverity map[string]SlaBucket `json:"by_severity"`
	Targets    map[string]float64   `json:"targets"`
}

// Recurrence 复发率统计，每台设备最后一次事件不参与检查
type Recurrence struct {
	Checked    int      `json:"checked"`
	Recurrent  int      `json:"recurrent"`
	Rate       *float64 `json:"rate"`
	WindowDays int      `json:"window_days"`
}

// Availability 可用性统计，零设备或非正窗口时 pct 为 null
type Availability struct {
	WindowHours   *float64 `json:"window_hours"`
	DowntimeHours float64  `json:"downtime_hours"`
	DowntimePct   *float64 `json:"downtime_pct"`
}

// TopOffender 高故障设备榜单行
type TopOffender struct {
	EquipmentID   string  `json:"equipment_id"`
	Name          string  `json:"name"`
	TagNo         string  `json:"tag_no"`
	DowntimeHours float64 `json:"downtime_hours"`
}

// SeverityImpact 按级别加权的停机影响评分，保留一位小数
type SeverityImpact struct {
	ScoreHoursWeighted float64        `json:"score_hours_weighted"`
	Weights            map[string]int `json:"weights"`
}

// ScopeResp 请求命中的范围回显
type ScopeResp struct {
	SiteID         string  `json:"site_id,omitempty"`
	ZoneID         string  `json:"zone_id,omitempty"`
	From           *string `json:"from"`
	To             *string `json:"to"`
	EquipmentCount int     `json:"equipment_count"`
	// 事件日志被行数上限截断时为 true，指标基于截断后的日志计算
	Truncated bool `json:"truncated,omitempty"`
}

// SlaTargetsResp 合并默认值后的租户 SLA 目标
type SlaTargetsResp struct {
	MaintenanceHours map[string]float64 `json:"maintenance_hours"`
	InspectionHours  map[string]float64 `json:"inspection_hours"`
}

// MaintenanceReport 维修侧完整指标
type MaintenanceReport struct {
	Mttr             Stats            `json:"mttr"`
	OpenAging        OpenAging        `json:"open_aging"`
	Throughput       Throughput       `json:"throughput"`
	RepairsHistogram RepairsHistogram `json:"repairs_histogram"`
	Sla              SlaCompliance    `json:"sla"`
	Recurrence       Recurrence       `json:"recurrence"`
	Mtbf             Stats            `json:"mtbf"`
	Availability     Availability     `json:"availability"`
	SeverityImpact   SeverityImpact   `json:"severity_impact"`
	TopOffenders     []TopOffender    `json:"top_offenders"`
}

// ComplianceReport 巡检侧完整指标
type ComplianceReport struct {
	Mttr         Stats         `json:"mttr"`
	OpenAging    OpenAging     `json:"open_aging"`
	Throughput   Throughput    `json:"throughput"`
	Sla          SlaCompliance `json:"sla"`
	Recurrence   Recurrence    `json:"recurrence"`
	Mtbf         Stats         `json:"mtbf"`
	Availability Availability  `json:"availability"`
	TopOffenders []TopOffender `json:"top_offenders"`
}

// DashboardResp 仪表盘分析响应
type DashboardResp struct {
	Scope       ScopeResp         `json:"scope"`
	SlaTargets  SlaTargetsResp    `json:"sla_targets"`
	Overall     DashboardOverall  `json:"overall"`
	Maintenance MaintenanceReport `json:"maintenance"`
	Compliance  ComplianceReport  `json:"compliance"`
}

type DashboardOverall struct {
	OpenAging OpenAging `json:"open_aging"`
}

// HealthStats 健康度统计，count_closed 仅统计窗口内已关闭事件
type HealthStats struct {
	CountClosed int      `json:"count_closed"`
	TotalHours  float64  `json:"total_hours"`
	MinHours    *float64 `json:"min_hours"`
	MaxHours    *float64 `json:"max_hours"`
	MeanHours   *float64 `json:"mean_hours"`
	MedianHours *float64 `json:"median_hours"`
	P90Hours    *float64 `json:"p90_hours"`
	CountOpen   int      `json:"count_open"`
}

// MaintenanceHealthStats 维修侧健康度统计
type MaintenanceHealthStats struct {
	HealthStats
	MeanRepairsPerIncident float64 `json:"mean_repairs_per_incident"`
}

// HealthScope 健康度查询范围回显
type HealthScope struct {
	SiteID         string   `json:"site_id,omitempty"`
	ZoneID         string   `json:"zone_id,omitempty"`
	EquipmentCount int      `json:"equipment_count"`
	From           *string  `json:"from"`
	To             *string  `json:"to"`
	Mode           string   `json:"mode"`
	Severity       []string `json:"severity"`
	Truncated      bool     `json:"truncated,omitempty"`
}

// HealthResp 健康度指标响应
type HealthResp struct {
	Scope       HealthScope            `json:"scope"`
	Compliance  HealthStats            `json:"compliance"`
	Maintenance MaintenanceHealthStats `json:"maintenance"`
	Overall     HealthStats            `json:"overall"`
}

// OperationalSummaryResp 运行状态快照
type OperationalSummaryResp struct {
	Total  int               `json:"total"`
	Counts OperationalCounts `json:"counts"`
}

type OperationalCounts struct {
	Operating int `json:"operating"`
	Failed    int `json:"failed"`
	Pending   int `json:"pending"`
}

// StatusSummaryResp 综合状态快照
type StatusSummaryResp struct {
	Total  int          `json:"total"`
	Counts StatusCounts `json:"counts"`
}

type StatusCounts struct {
	PassedOperating int `json:"passed_operating"`
	Failed          int `json:"failed"`
	NaPending       int `json:"na_pending"`
}

// SeveritySummaryResp 受影响设备的当前级别分布
type SeveritySummaryResp struct {
	TotalAffected int            `json:"total_affected"`
	Counts        map[string]int `json:"counts"`
}

// BaseResp 通用成功响应
type BaseResp struct {
	Success int `json:"success"`
}
