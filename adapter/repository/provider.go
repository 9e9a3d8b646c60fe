package repository

import (
	"database/sql"

	"devops.exregcloud.cn/EquipCloud/_git/reliability-analytics/server/core"
	"devops.exregcloud.cn/EquipCloud/_git/reliability-analytics/server/domain/dependency"
	"devops.exregcloud.cn/EquipCloud/_git/reliability-analytics/server/infrastructure/db"
	"github.com/google/wire"
)

var ProviderSet = wire.NewSet(db.NewDBAccess,
	NewEquipmentRepo, NewMaintenanceEventRepo, NewInspectionRepo, NewSlaTargetRepo)

func NewEquipmentRepo(db *sql.DB) dependency.EquipmentRepo {
	return &equipmentRepo{
		Repo:      core.Repo{DB: db},
		TableName: "t_equipment",
		ZoneTable: "t_zone",
	}
}

func NewMaintenanceEventRepo(db *sql.DB) dependency.MaintenanceEventRepo {
	return &maintenanceEventRepo{
		Repo:      core.Repo{DB: db},
		TableName: "t_maintenance_event",
	}
}

func NewInspectionRepo(db *sql.DB) dependency.InspectionRepo {
	return &inspectionRepo{
		Repo:      core.Repo{DB: db},
		TableName: "t_inspection",
	}
}

func NewSlaTargetRepo(db *sql.DB) dependency.SlaTargetRepo {
	return &slaTargetRepo{
		Repo:      core.Repo{DB: db},
		TableName: "t_sla_target",
	}
}
