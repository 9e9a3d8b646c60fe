package entity

import "time"

// 事件类型
type EventKind string

const (
	EventKindFaultReported   EventKind = "fault_reported"   //故障上报
	EventKindRepairStarted   EventKind = "repair_started"   //维修开始
	EventKindRepairCompleted EventKind = "repair_completed" //维修完成
)

// 巡检结论
const (
	InspectionPassed = "Passed"
	InspectionFailed = "Failed"
	InspectionNA     = "NA"
)

// 巡检审核状态，pending 的记录不参与事件区间重建
const (
	ReviewStatusPending = "pending"
	ReviewStatusFinal   = "final"
)

// 设备运行状态
const (
	OperationalStatusOperating = "operating"
	OperationalStatusFailed    = "failed"
)

// 严重级别 P1 最高
const (
	SeverityP1 = "P1"
	SeverityP2 = "P2"
	SeverityP3 = "P3"
	SeverityP4 = "P4"
)

// SeverityRank 级别权重，P1=4..P4=1，未知级别为 0
func SeverityRank(severity string) int {
	switch severity {
	case SeverityP1:
		return 4
	case SeverityP2:
		return 3
	case SeverityP3:
		return 2
	case SeverityP4:
		return 1
	default:
		return 0
	}
}

// Equipment 设备档案，本引擎只读取身份与归属字段
type Equipment struct {
	ID                string `json:"id"`
	TenantID          string `json:"tenant_id"`
	Name              string `json:"name"`
	TagNo             string `json:"tag_no"`
	SiteID            string `json:"site_id"`
	ZoneID            string `json:"zone_id"`
	OperationalStatus string `json:"operational_status"` // operating，failed
	Compliance        string `json:"compliance"`         // Passed，Failed，NA
}

// MaintenanceEvent 维修生命周期事件，追加写入，
// 单台设备内的顺序由 (occurred_at, 自增主键) 共同确定
type MaintenanceEvent struct {
	ID               int64     `json:"id"`
	TenantID         string    `json:"tenant_id"`
	EquipmentID      string    `json:"equipment_id"`
	Kind             EventKind `json:"kind"`
	Severity         string    `json:"severity,omitempty"` // P1-P4，可为空
	RepairID         string    `json:"repair_id,omitempty"`
	CompletedWorking *bool     `json:"completed_working,omitempty"` // 仅 repair_completed 携带
	OccurredAt       time.Time `json:"occurred_at"`
}

// Inspection 巡检记录
type Inspection struct {
	ID             int64      `json:"id"`
	TenantID       string     `json:"tenant_id"`
	EquipmentID    string     `json:"equipment_id"`
	Status         string     `json:"status"` // Passed，Failed
	ReviewStatus   string     `json:"review_status"`
	Severity       string     `json:"severity,omitempty"`
	InspectionDate *time.Time `json:"inspection_date,omitempty"`
	CreatedAt      *time.Time `json:"created_at,omitempty"`
	FinalizedAt    *time.Time `json:"finalized_at,omitempty"`
}

// EffectiveTime 生效时间取 finalizedAt ?? createdAt ?? inspectionDate，取第一个非空值
func (i Inspection) EffectiveTime() (time.Time, bool) {
	if i.FinalizedAt != nil {
		return *i.FinalizedAt, true
	}
	if i.CreatedAt != nil {
		return *i.CreatedAt, true
	}
	if i.InspectionDate != nil {
		return *i.InspectionDate, true
	}
	return time.Time{}, false
}

// 事件来源
type IncidentSource string

const (
	IncidentSourceCompliance  IncidentSource = "compliance"
	IncidentSourceMaintenance IncidentSource = "maintenance"
)

// Incident 派生的故障区间，只存在于单次分析请求内，不落库。
// End 为 nil 表示查询时刻仍未恢复。
type Incident struct {
	EquipmentID string         `json:"equipment_id"`
	Source      IncidentSource `json:"source"`
	Severity    string         `json:"severity,omitempty"` // P1-P4，可为空
	Start       time.Time      `json:"start"`
	End         *time.Time     `json:"end,omitempty"`
	Repairs     int            `json:"repairs"` // 仅维修事件统计维修次数
}

// Closed 是否已关闭
func (in Incident) Closed() bool {
	return in.End != nil
}

// Duration 已关闭区间的持续时长，开区间返回 false
func (in Incident) Duration() (time.Duration, bool) {
	if in.End == nil {
		return 0, false
	}
	return in.End.Sub(in.Start), true
}

// SlaCategory SLA 目标分类
type SlaCategory string

const (
	SlaCategoryMaintenance SlaCategory = "maintenance"
	SlaCategoryInspection  SlaCategory = "inspection"
)

// SlaTargets 租户 SLA 目标，按级别给出允许的最长处理时长（小时），
// 缺失项回落到默认值
type SlaTargets struct {
	MaintenanceHours map[string]float64 `json:"maintenance_hours"`
	InspectionHours  map[string]float64 `json:"inspection_hours"`
}

// MergeDefaults 用配置的默认时长补齐缺失级别
func (s SlaTargets) MergeDefaults(defaultHours map[string]float64) SlaTargets {
	merged := SlaTargets{
		MaintenanceHours: make(map[string]float64, len(defaultHours)),
		InspectionHours:  make(map[string]float64, len(defaultHours)),
	}
	for severity, hours := range defaultHours {
		merged.MaintenanceHours[severity] = hours
		merged.InspectionHours[severity] = hours
	}
	for severity, hours := range s.MaintenanceHours {
		merged.MaintenanceHours[severity] = hours
	}
	for severity, hours := range s.InspectionHours {
		merged.InspectionHours[severity] = hours
	}
	return merged
}
