package service

import (
	"sort"
	"time"

	"devops.exregcloud.cn/EquipCloud/_git/reliability-analytics/server/domain/entity"
)

// complianceState 单台设备的巡检失败状态机
type complianceState struct {
	failed      bool
	failedSince time.Time
	severity    string
}

// maintenanceState 单台设备的维修停机状态机
type maintenanceState struct {
	active    bool
	startedAt time.Time
	repairs   int
	severity  string
}

// buildComplianceIncidents 将巡检记录重放为失败区间。
// 状态机按设备分别维护，输入会先按 (设备, 生效时间, 主键) 稳定排序，
// 不依赖存储层的排序承诺。
// Failed 不重复推进起点，Passed 仅在时间不早于起点时关闭区间，
// 重复 Failed 携带更高级别时保留更高级别。
// 流结束后仍处于失败态的设备各产出一个未关闭区间
func buildComplianceIncidents(records []*entity.Inspection) []entity.Incident {
	sorted := make([]*entity.Inspection, 0, len(records))
	for _, rec := range records {
		if rec == nil || rec.EquipmentID == "" {
			continue
		}
		if rec.ReviewStatus == entity.ReviewStatusPending {
			continue
		}
		if _, ok := rec.EffectiveTime(); !ok {
			continue
		}
		sorted = append(sorted, rec)
	}
	sort.SliceStable(sorted, func(i, j int) bool {
		if sorted[i].EquipmentID != sorted[j].EquipmentID {
			return sorted[i].EquipmentID < sorted[j].EquipmentID
		}
		ti, _ := sorted[i].EffectiveTime()
		tj, _ := sorted[j].EffectiveTime()
		if !ti.Equal(tj) {
			return ti.Before(tj)
		}
		return sorted[i].ID < sorted[j].ID
	})

	incidents := make([]entity.Incident, 0)
	states := map[string]*complianceState{}
	order := make([]string, 0)

	for _, rec := range sorted {
		st, ok := states[rec.EquipmentID]
		if !ok {
			st = &complianceState{}
			states[rec.EquipmentID] = st
			order = append(order, rec.EquipmentID)
		}
		t, _ := rec.EffectiveTime()

		switch rec.Status {
		case entity.InspectionFailed:
			if !st.failed {
				st.failed = true
				st.failedSince = t
				st.severity = rec.Severity
			} else if rec.Severity != "" {
				st.severity = mergeSeverity(st.severity, rec.Severity)
			}
		case entity.InspectionPassed:
			if st.failed && !t.Before(st.failedSince) {
				end := t
				incidents = append(incidents, entity.Incident{
					EquipmentID: rec.EquipmentID,
					Source:      entity.IncidentSourceCompliance,
					Severity:    st.severity,
					Start:       st.failedSince,
					End:         &end,
				})
			}
			st.failed = false
			st.severity = ""
		}
	}

	for _, eqID := range order {
		st := states[eqID]
		if st.failed {
			incidents = append(incidents, entity.Incident{
				EquipmentID: eqID,
				Source:      entity.IncidentSourceCompliance,
				Severity:    st.severity,
				Start:       st.failedSince,
			})
		}
	}
	return incidents
}

// buildMaintenanceIncidents 将维修事件重放为停机区间。
// fault_reported 打开区间，重复上报只补填缺失的级别；
// repair_started 在区间打开时累计维修次数；
// repair_completed 仅在 completed_working 为真且时间不早于起点时关闭区间，
// 失败的维修完成不结束停机。
// 流结束后仍处于打开态的设备各产出一个未关闭区间
func buildMaintenanceIncidents(events []*entity.MaintenanceEvent) []entity.Incident {
	sorted := make([]*entity.MaintenanceEvent, 0, len(events))
	for _, ev := range events {
		if ev == nil || ev.EquipmentID == "" || ev.OccurredAt.IsZero() {
			continue
		}
		sorted = append(sorted, ev)
	}
	sort.SliceStable(sorted, func(i, j int) bool {
		if sorted[i].EquipmentID != sorted[j].EquipmentID {
			return sorted[i].EquipmentID < sorted[j].EquipmentID
		}
		if !sorted[i].OccurredAt.Equal(sorted[j].OccurredAt) {
			return sorted[i].OccurredAt.Before(sorted[j].OccurredAt)
		}
		return sorted[i].ID < sorted[j].ID
	})

	incidents := make([]entity.Incident, 0)
	states := map[string]*maintenanceState{}
	order := make([]string, 0)

	for _, ev := range sorted {
		st, ok := states[ev.EquipmentID]
		if !ok {
			st = &maintenanceState{}
			states[ev.EquipmentID] = st
			order = append(order, ev.EquipmentID)
		}

		switch ev.Kind {
		case entity.EventKindFaultReported:
			if !st.active {
				st.active = true
				st.startedAt = ev.OccurredAt
				st.repairs = 0
				st.severity = ev.Severity
			} else if st.severity == "" && ev.Severity != "" {
				st.severity = ev.Severity
			}
		case entity.EventKindRepairStarted:
			if st.active {
				st.repairs++
			}
		case entity.EventKindRepairCompleted:
			if !st.active {
				continue
			}
			if ev.CompletedWorking != nil && *ev.CompletedWorking && !ev.OccurredAt.Before(st.startedAt) {
				end := ev.OccurredAt
				incidents = append(incidents, entity.Incident{
					EquipmentID: ev.EquipmentID,
					Source:      entity.IncidentSourceMaintenance,
					Severity:    st.severity,
					Start:       st.startedAt,
					End:         &end,
					Repairs:     st.repairs,
				})
				*st = maintenanceState{}
			}
		}
	}

	for _, eqID := range order {
		st := states[eqID]
		if st.active {
			incidents = append(incidents, entity.Incident{
				EquipmentID: eqID,
				Source:      entity.IncidentSourceMaintenance,
				Severity:    st.severity,
				Start:       st.startedAt,
				Repairs:     st.repairs,
			})
		}
	}
	return incidents
}

// mergeSeverity 保留更高级别，P1 最高；两者皆无效时返回空串
func mergeSeverity(current, next string) string {
	ra := entity.SeverityRank(current)
	rb := entity.SeverityRank(next)
	if rb > ra {
		return next
	}
	if ra > 0 {
		return current
	}
	return ""
}
