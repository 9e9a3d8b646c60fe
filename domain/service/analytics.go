package service

import (
	"context"
	"time"

	"devops.exregcloud.cn/EquipCloud/_git/reliability-analytics/server/common"
	"devops.exregcloud.cn/EquipCloud/_git/reliability-analytics/server/config"
	"devops.exregcloud.cn/EquipCloud/_git/reliability-analytics/server/core"
	"devops.exregcloud.cn/EquipCloud/_git/reliability-analytics/server/domain/dependency"
	"devops.exregcloud.cn/EquipCloud/_git/reliability-analytics/server/domain/entity"
	"devops.exregcloud.cn/EquipCloud/_git/reliability-analytics/server/domain/vo"
	"golang.org/x/sync/errgroup"
)

//go:generate mockgen -source ./analytics.go -destination ../../mock/service/mock_analytics_service.go -package mock
type AnalyticsService interface {
	ComputeDashboard(ctx context.Context, req *vo.DashboardQuery) (vo.DashboardResp, core.ServiceError)
}

type analyticsService struct {
	equipmentRepo  dependency.EquipmentRepo
	eventRepo      dependency.MaintenanceEventRepo
	inspectionRepo dependency.InspectionRepo
	slaService     SlaService
}

var allEventKinds = []entity.EventKind{
	entity.EventKindFaultReported, entity.EventKindRepairStarted, entity.EventKindRepairCompleted,
}

// ComputeDashboard 仪表盘报表：对命中范围内的设备重建巡检与维修两类
// 故障区间，计算全量指标。SLA 目标加载与两类区间重建互不依赖，并发执行
func (svc *analyticsService) ComputeDashboard(ctx context.Context, req *vo.DashboardQuery) (vo.DashboardResp, core.ServiceError) {
	resp := vo.DashboardResp{}

	w, svcErr := parseWindow(req.From, req.To)
	if svcErr != nil {
		return resp, svcErr
	}
	now := time.Now()
	cfg := config.Get().Analytics

	scope, svcErr := resolveScope(ctx, svc.equipmentRepo, req.ScopeQuery)
	if svcErr != nil {
		return resp, svcErr
	}

	var (
		targets              entity.SlaTargets
		complianceIncidents  []entity.Incident
		maintenanceIncidents []entity.Incident
		truncIns, truncEvt   bool
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		t, err := svc.slaService.LoadMerged(gctx, req.TenantID)
		if err != nil {
			return err
		}
		targets = t
		return nil
	})
	g.Go(func() error {
		records, truncated, repoErr := svc.inspectionRepo.ListByEquipments(gctx, req.TenantID, scope.ids, cfg.MaxEventRows)
		if repoErr != nil {
			return NewSvcInternalError(repoErr)
		}
		complianceIncidents = buildComplianceIncidents(records)
		truncIns = truncated
		return nil
	})
	g.Go(func() error {
		events, truncated, repoErr := svc.eventRepo.ListByEquipments(gctx, req.TenantID, scope.ids, allEventKinds, cfg.MaxEventRows)
		if repoErr != nil {
			return NewSvcInternalError(repoErr)
		}
		maintenanceIncidents = buildMaintenanceIncidents(events)
		truncEvt = truncated
		return nil
	})
	if err := g.Wait(); err != nil {
		if svcErr, ok := err.(core.ServiceError); ok {
			return resp, svcErr
		}
		return resp, NewSvcInternalError(dependency.NewRepoInternalError(err))
	}

	recurrenceWindow := time.Duration(cfg.RecurrenceWindowDays) * 24 * time.Hour
	allIncidents := append(append([]entity.Incident{}, maintenanceIncidents...), complianceIncidents...)

	resp.Scope = vo.ScopeResp{
		SiteID:         req.SiteID,
		ZoneID:         req.ZoneID,
		From:           echoTime(w.from),
		To:             echoTime(w.to),
		EquipmentCount: scope.count(),
		Truncated:      truncIns || truncEvt,
	}
	resp.SlaTargets = vo.SlaTargetsResp{
		MaintenanceHours: targets.MaintenanceHours,
		InspectionHours:  targets.InspectionHours,
	}
	resp.Overall = vo.DashboardOverall{OpenAging: computeOpenAging(allIncidents, now)}
	resp.Maintenance = vo.MaintenanceReport{
		Mttr:             computeMttr(maintenanceIncidents, w, now),
		OpenAging:        computeOpenAging(maintenanceIncidents, now),
		Throughput:       computeThroughput(maintenanceIncidents, w, now),
		RepairsHistogram: computeRepairsHistogram(maintenanceIncidents, w, now),
		Sla:              computeSlaCompliance(maintenanceIncidents, w, targets.MaintenanceHours, now),
		Recurrence:       computeRecurrence(maintenanceIncidents, recurrenceWindow),
		Mtbf:             computeMtbf(maintenanceIncidents),
		Availability:     computeAvailability(maintenanceIncidents, scope.count(), w, now),
		SeverityImpact:   computeSeverityImpact(maintenanceIncidents, w, now),
		TopOffenders:     computeTopOffenders(maintenanceIncidents, scope.byID, w, now, cfg.TopOffenderLimit),
	}
	resp.Compliance = vo.ComplianceReport{
		Mttr:         computeMttr(complianceIncidents, w, now),
		OpenAging:    computeOpenAging(complianceIncidents, now),
		Throughput:   computeThroughput(complianceIncidents, w, now),
		Sla:          computeSlaCompliance(complianceIncidents, w, targets.InspectionHours, now),
		Recurrence:   computeRecurrence(complianceIncidents, recurrenceWindow),
		Mtbf:         computeMtbf(complianceIncidents),
		Availability: computeAvailability(complianceIncidents, scope.count(), w, now),
		TopOffenders: computeTopOffenders(complianceIncidents, scope.byID, w, now, cfg.TopOffenderLimit),
	}
	return resp, nil
}

// parseWindow 解析请求时间窗，空串表示无界
func parseWindow(from, to string) (timeWindow, core.ServiceError) {
	w := timeWindow{}
	if from != "" {
		t, err := time.Parse(common.TimeLayout, from)
		if err != nil {
			return w, NewSvcInvalidWindowError(dependency.NewRepoInternalError(err))
		}
		w.from = &t
	}
	if to != "" {
		t, err := time.Parse(common.TimeLayout, to)
		if err != nil {
			return w, NewSvcInvalidWindowError(dependency.NewRepoInternalError(err))
		}
		w.to = &t
	}
	return w, nil
}

// echoTime 回显窗口边界，无界时为 nil
func echoTime(t *time.Time) *string {
	if t == nil {
		return nil
	}
	s := t.Format(common.TimeLayout)
	return &s
}
