package service

import (
	"devops.exregcloud.cn/EquipCloud/_git/reliability-analytics/server/domain/dependency"
	"devops.exregcloud.cn/EquipCloud/_git/reliability-analytics/server/infrastructure/cache"
	"github.com/google/wire"
)

var ProviderSet = wire.NewSet(cache.NewCacheAccess, NewSlaService, NewAnalyticsService, NewHealthService, NewSummaryService)

func NewAnalyticsService(equipmentRepo dependency.EquipmentRepo, eventRepo dependency.MaintenanceEventRepo,
	inspectionRepo dependency.InspectionRepo, slaService SlaService) AnalyticsService {
	return &analyticsService{
		equipmentRepo:  equipmentRepo,
		eventRepo:      eventRepo,
		inspectionRepo: inspectionRepo,
		slaService:     slaService,
	}
}

func NewHealthService(equipmentRepo dependency.EquipmentRepo, eventRepo dependency.MaintenanceEventRepo,
	inspectionRepo dependency.InspectionRepo) HealthService {
	return &healthService{
		equipmentRepo:  equipmentRepo,
		eventRepo:      eventRepo,
		inspectionRepo: inspectionRepo,
	}
}

func NewSummaryService(equipmentRepo dependency.EquipmentRepo, eventRepo dependency.MaintenanceEventRepo) SummaryService {
	return &summaryService{
		equipmentRepo: equipmentRepo,
		eventRepo:     eventRepo,
	}
}

func NewSlaService(slaTargetRepo dependency.SlaTargetRepo, cacheAccess cache.Cache) SlaService {
	return &slaService{
		slaTargetRepo: slaTargetRepo,
		cache:         cacheAccess,
	}
}
