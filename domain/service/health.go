package service

import (
	"context"
	"strings"
	"time"

	"devops.exregcloud.cn/EquipCloud/_git/reliability-analytics/server/config"
	"devops.exregcloud.cn/EquipCloud/_git/reliability-analytics/server/core"
	"devops.exregcloud.cn/EquipCloud/_git/reliability-analytics/server/domain/dependency"
	"devops.exregcloud.cn/EquipCloud/_git/reliability-analytics/server/domain/entity"
	"devops.exregcloud.cn/EquipCloud/_git/reliability-analytics/server/domain/vo"
	"golang.org/x/sync/errgroup"
)

type HealthService interface {
	ComputeHealth(ctx context.Context, req *vo.HealthQuery) (vo.HealthResp, core.ServiceError)
}

type healthService struct {
	equipmentRepo  dependency.EquipmentRepo
	eventRepo      dependency.MaintenanceEventRepo
	inspectionRepo dependency.InspectionRepo
}

// ComputeHealth 健康度报表：巡检与维修两侧各输出已关闭区间的时长统计
// 和未关闭计数，窗口模式由调用方选择，级别过滤仅作用于维修侧
func (svc *healthService) ComputeHealth(ctx context.Context, req *vo.HealthQuery) (vo.HealthResp, core.ServiceError) {
	resp := vo.HealthResp{}

	w, svcErr := parseWindow(req.From, req.To)
	if svcErr != nil {
		return resp, svcErr
	}
	mode := normalizeMode(req.Mode)
	severities := normalizeSeverities(req.Severity)
	now := time.Now()
	cfg := config.Get().Analytics

	scope, svcErr := resolveScope(ctx, svc.equipmentRepo, req.ScopeQuery)
	if svcErr != nil {
		return resp, svcErr
	}

	var (
		complianceIncidents  []entity.Incident
		maintenanceIncidents []entity.Incident
		truncIns, truncEvt   bool
	)
	g, gctx := errgroup.WithContext(ctx)
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

	complianceFiltered := filterByWindow(complianceIncidents, w, mode, now)
	maintenanceFiltered := filterBySeverities(filterByWindow(maintenanceIncidents, w, mode, now), severities)

	complianceClosed, complianceOpen := splitClosedDurations(complianceFiltered)
	maintenanceClosed, maintenanceOpen := splitClosedDurations(maintenanceFiltered)

	resp.Scope = vo.HealthScope{
		SiteID:         req.SiteID,
		ZoneID:         req.ZoneID,
		EquipmentCount: scope.count(),
		From:           echoTime(w.from),
		To:             echoTime(w.to),
		Mode:           mode,
		Severity:       severities,
		Truncated:      truncIns || truncEvt,
	}
	resp.Compliance = toHealthStats(complianceClosed, complianceOpen)
	resp.Maintenance = vo.MaintenanceHealthStats{
		HealthStats:            toHealthStats(maintenanceClosed, maintenanceOpen),
		MeanRepairsPerIncident: meanRepairs(maintenanceFiltered),
	}
	resp.Overall = toHealthStats(append(complianceClosed, maintenanceClosed...), complianceOpen+maintenanceOpen)
	return resp, nil
}

// normalizeSeverities 解析逗号分隔的级别列表，忽略空白与未知级别并去重，
// 无有效级别时返回 nil 表示不过滤
func normalizeSeverities(input string) []string {
	seen := map[string]struct{}{}
	out := make([]string, 0)
	for _, part := range strings.Split(input, ",") {
		severity := strings.ToUpper(strings.TrimSpace(part))
		if entity.SeverityRank(severity) == 0 {
			continue
		}
		if _, ok := seen[severity]; ok {
			continue
		}
		seen[severity] = struct{}{}
		out = append(out, severity)
	}
	if len(out) == 0 {
		return nil
	}
	return out
}

// filterBySeverities severities 为 nil 时不过滤，否则仅保留携带指定级别的区间
func filterBySeverities(incidents []entity.Incident, severities []string) []entity.Incident {
	if severities == nil {
		return incidents
	}
	allowed := map[string]struct{}{}
	for _, s := range severities {
		allowed[s] = struct{}{}
	}
	filtered := make([]entity.Incident, 0, len(incidents))
	for _, in := range incidents {
		if _, ok := allowed[strings.ToUpper(in.Severity)]; ok {
			filtered = append(filtered, in)
		}
	}
	return filtered
}

// splitClosedDurations 拆出已关闭区间的时长列表与未关闭计数
func splitClosedDurations(incidents []entity.Incident) ([]time.Duration, int) {
	closed := make([]time.Duration, 0, len(incidents))
	open := 0
	for _, in := range incidents {
		if d, ok := in.Duration(); ok {
			closed = append(closed, d)
		} else {
			open++
		}
	}
	return closed, open
}

// meanRepairs 已关闭区间的平均维修次数，无样本时为 0
func meanRepairs(incidents []entity.Incident) float64 {
	sum, n := 0, 0
	for _, in := range incidents {
		if in.Closed() {
			sum += in.Repairs
			n++
		}
	}
	if n == 0 {
		return 0
	}
	return float64(sum) / float64(n)
}
