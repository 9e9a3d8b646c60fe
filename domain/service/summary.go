package service

import (
	"context"

	"devops.exregcloud.cn/EquipCloud/_git/reliability-analytics/server/config"
	"devops.exregcloud.cn/EquipCloud/_git/reliability-analytics/server/core"
	"devops.exregcloud.cn/EquipCloud/_git/reliability-analytics/server/domain/dependency"
	"devops.exregcloud.cn/EquipCloud/_git/reliability-analytics/server/domain/entity"
	"devops.exregcloud.cn/EquipCloud/_git/reliability-analytics/server/domain/vo"
)

type SummaryService interface {
	// Operational 当前运行状态快照：operating / failed / pending 计数
	Operational(ctx context.Context, req *vo.SummaryQuery) (vo.OperationalSummaryResp, core.ServiceError)
	// OverallStatus 综合状态快照：合规且运行 / 故障 / 待定 计数
	OverallStatus(ctx context.Context, req *vo.SummaryQuery) (vo.StatusSummaryResp, core.ServiceError)
	// MaintenanceSeverity 受影响设备的当前级别分布
	MaintenanceSeverity(ctx context.Context, req *vo.SummaryQuery) (vo.SeveritySummaryResp, core.ServiceError)
}

type summaryService struct {
	equipmentRepo dependency.EquipmentRepo
	eventRepo     dependency.MaintenanceEventRepo
}

func (svc *summaryService) Operational(ctx context.Context, req *vo.SummaryQuery) (vo.OperationalSummaryResp, core.ServiceError) {
	resp := vo.OperationalSummaryResp{}

	scope, svcErr := resolveScope(ctx, svc.equipmentRepo, req.ScopeQuery)
	if svcErr != nil {
		return resp, svcErr
	}
	resp.Total = scope.count()
	if resp.Total == 0 {
		return resp, nil
	}

	pendingSet, svcErr := svc.pendingRepairSet(ctx, req.TenantID, scope.ids)
	if svcErr != nil {
		return resp, svcErr
	}

	failed := 0
	for _, eq := range scope.equipments {
		if _, pending := pendingSet[eq.ID]; pending {
			continue
		}
		if eq.OperationalStatus == entity.OperationalStatusFailed {
			failed++
		}
	}

	pending := len(pendingSet)
	operating := resp.Total - failed - pending
	if operating < 0 {
		operating = 0
	}
	resp.Counts = vo.OperationalCounts{Operating: operating, Failed: failed, Pending: pending}
	return resp, nil
}

func (svc *summaryService) OverallStatus(ctx context.Context, req *vo.SummaryQuery) (vo.StatusSummaryResp, core.ServiceError) {
	resp := vo.StatusSummaryResp{}

	scope, svcErr := resolveScope(ctx, svc.equipmentRepo, req.ScopeQuery)
	if svcErr != nil {
		return resp, svcErr
	}
	resp.Total = scope.count()
	if resp.Total == 0 {
		return resp, nil
	}

	pendingSet, svcErr := svc.pendingRepairSet(ctx, req.TenantID, scope.ids)
	if svcErr != nil {
		return resp, svcErr
	}

	passedOperating, failed, naPending := 0, 0, 0
	for _, eq := range scope.equipments {
		if _, pending := pendingSet[eq.ID]; pending {
			naPending++
			continue
		}

		compliance := eq.Compliance
		if compliance == "" {
			compliance = entity.InspectionNA
		}
		if eq.OperationalStatus == entity.OperationalStatusFailed || compliance == entity.InspectionFailed {
			failed++
			continue
		}
		if compliance == entity.InspectionNA {
			naPending++
			continue
		}
		passedOperating++
	}

	// 兜底：三类计数之和必须覆盖全部设备，余量归入 naPending
	if accounted := passedOperating + failed + naPending; accounted < resp.Total {
		naPending += resp.Total - accounted
	}
	resp.Counts = vo.StatusCounts{PassedOperating: passedOperating, Failed: failed, NaPending: naPending}
	return resp, nil
}

func (svc *summaryService) MaintenanceSeverity(ctx context.Context, req *vo.SummaryQuery) (vo.SeveritySummaryResp, core.ServiceError) {
	resp := vo.SeveritySummaryResp{Counts: emptySeverityCounts()}

	scope, svcErr := resolveScope(ctx, svc.equipmentRepo, req.ScopeQuery)
	if svcErr != nil {
		return resp, svcErr
	}
	if scope.count() == 0 {
		return resp, nil
	}

	events, _, repoErr := svc.eventRepo.ListByEquipments(ctx, req.TenantID, scope.ids,
		allEventKinds, config.Get().Analytics.MaxEventRows)
	if repoErr != nil {
		return resp, NewSvcInternalError(repoErr)
	}

	pendingSet := pendingRepairSetFromEvents(events)
	affected := map[string]struct{}{}
	for _, eq := range scope.equipments {
		if _, pending := pendingSet[eq.ID]; pending {
			affected[eq.ID] = struct{}{}
			continue
		}
		if eq.OperationalStatus == entity.OperationalStatusFailed {
			affected[eq.ID] = struct{}{}
		}
	}
	resp.TotalAffected = len(affected)
	if resp.TotalAffected == 0 {
		return resp, nil
	}

	severityByEq := latestFaultSeverity(events)
	for eqID := range affected {
		severity := severityByEq[eqID]
		if entity.SeverityRank(severity) > 0 {
			resp.Counts[severity]++
		}
	}
	return resp, nil
}

// pendingRepairSet 查询维修事件并计算"维修中"设备集合
func (svc *summaryService) pendingRepairSet(ctx context.Context, tenantID string, equipmentIDs []string) (map[string]struct{}, core.ServiceError) {
	events, _, repoErr := svc.eventRepo.ListByEquipments(ctx, tenantID, equipmentIDs,
		[]entity.EventKind{entity.EventKindRepairStarted, entity.EventKindRepairCompleted},
		config.Get().Analytics.MaxEventRows)
	if repoErr != nil {
		return nil, NewSvcInternalError(repoErr)
	}
	return pendingRepairSetFromEvents(events), nil
}

// pendingRepairSetFromEvents 每台设备取最近一次 repair_started，
// 若同设备不存在相同 repair_id 的 repair_completed 则记为维修中
func pendingRepairSetFromEvents(events []*entity.MaintenanceEvent) map[string]struct{} {
	latestStart := map[string]*entity.MaintenanceEvent{}
	completed := map[string]struct{}{}
	for _, ev := range events {
		switch ev.Kind {
		case entity.EventKindRepairStarted:
			cur := latestStart[ev.EquipmentID]
			if cur == nil || eventAfter(ev, cur) {
				latestStart[ev.EquipmentID] = ev
			}
		case entity.EventKindRepairCompleted:
			completed[ev.EquipmentID+"\x00"+ev.RepairID] = struct{}{}
		}
	}

	pending := map[string]struct{}{}
	for eqID, start := range latestStart {
		if _, ok := completed[eqID+"\x00"+start.RepairID]; !ok {
			pending[eqID] = struct{}{}
		}
	}
	return pending
}

// latestFaultSeverity 每台设备最近一次 fault_reported 携带的级别
func latestFaultSeverity(events []*entity.MaintenanceEvent) map[string]string {
	latest := map[string]*entity.MaintenanceEvent{}
	for _, ev := range events {
		if ev.Kind != entity.EventKindFaultReported {
			continue
		}
		cur := latest[ev.EquipmentID]
		if cur == nil || eventAfter(ev, cur) {
			latest[ev.EquipmentID] = ev
		}
	}

	severityByEq := make(map[string]string, len(latest))
	for eqID, ev := range latest {
		severityByEq[eqID] = ev.Severity
	}
	return severityByEq
}

// eventAfter a 是否晚于 b，时间相同时比较自增主键
func eventAfter(a, b *entity.MaintenanceEvent) bool {
	if !a.OccurredAt.Equal(b.OccurredAt) {
		return a.OccurredAt.After(b.OccurredAt)
	}
	return a.ID > b.ID
}

func emptySeverityCounts() map[string]int {
	return map[string]int{
		entity.SeverityP1: 0, entity.SeverityP2: 0, entity.SeverityP3: 0, entity.SeverityP4: 0,
	}
}
