package __1_0

import (
	"fmt"

	"devops.exregcloud.cn/EquipCloud/_git/reliability-analytics/server/infrastructure/db"
	_ "github.com/kweaver-ai/proton-rds-sdk-go/driver"
)

func InitDataBase() {
	// 替换为你的数据库连接信息
	conn, err := db.ConnectDB()
	if err != nil {
		panic(fmt.Sprintf("Failed to connect database 'equipcloud': %v", err))
	}
	// 1. 创建数据库（如果不存在）
	createDBSQL := `CREATE DATABASE IF NOT EXISTS equipcloud CHARACTER SET utf8mb4 COLLATE utf8mb4_bin;`
	_, err = conn.Exec(createDBSQL)
	if err != nil {
		panic(fmt.Sprintf("Failed to create database 'equipcloud': %v", err))
	}
	fmt.Println("✅ Database 'equipcloud' created or already exists.")

	// 2. 切换到 equipcloud 数据库
	_, err = conn.Exec("USE equipcloud")
	if err != nil {
		panic(fmt.Sprintf("Failed to use database 'equipcloud': %v", err))
	}

	for name, stmt := range map[string]string{
		"t_zone":              createZoneSQL,
		"t_equipment":         createEquipmentSQL,
		"t_maintenance_event": createMaintenanceEventSQL,
		"t_inspection":        createInspectionSQL,
		"t_sla_target":        createSlaTargetSQL,
	} {
		if _, err = conn.Exec(stmt); err != nil {
			panic(fmt.Sprintf("Failed to create table '%s': %v", name, err))
		}
		fmt.Printf("✅ Table '%s' created or already exists.\n", name)
	}
}

const createZoneSQL = `
CREATE TABLE IF NOT EXISTS t_zone (
    f_id VARCHAR(64) NOT NULL,
    f_tenant_id VARCHAR(64) NOT NULL,
    f_name VARCHAR(255) NOT NULL,
    f_parent_id VARCHAR(64) NOT NULL DEFAULT '',
    f_ancestors TEXT,
    PRIMARY KEY (f_id),
    KEY idx_tenant (f_tenant_id)
) ENGINE=InnoDB DEFAULT CHARSET=utf8mb4 COLLATE=utf8mb4_bin;
`

const createEquipmentSQL = `
CREATE TABLE IF NOT EXISTS t_equipment (
    f_id VARCHAR(64) NOT NULL,
    f_tenant_id VARCHAR(64) NOT NULL,
    f_name VARCHAR(255) NOT NULL,
    f_tag_no VARCHAR(64) NOT NULL DEFAULT '',
    f_site_id VARCHAR(64) NOT NULL DEFAULT '',
    f_zone_id VARCHAR(64) NOT NULL DEFAULT '',
    f_operational_status VARCHAR(32) NOT NULL DEFAULT '',
    f_compliance VARCHAR(32) NOT NULL DEFAULT '',
    PRIMARY KEY (f_id),
    KEY idx_tenant_site_zone (f_tenant_id, f_site_id, f_zone_id)
) ENGINE=InnoDB DEFAULT CHARSET=utf8mb4 COLLATE=utf8mb4_bin;
`

const createMaintenanceEventSQL = `
CREATE TABLE IF NOT EXISTS t_maintenance_event (
    f_id BIGINT NOT NULL AUTO_INCREMENT,
    f_tenant_id VARCHAR(64) NOT NULL,
    f_equipment_id VARCHAR(64) NOT NULL,
    f_event_type VARCHAR(32) NOT NULL,
    f_severity VARCHAR(8) NOT NULL DEFAULT '',
    f_repair_id VARCHAR(64) NOT NULL DEFAULT '',
    f_completed_working TINYINT(1) DEFAULT NULL,
    f_occurred_at DATETIME(3) NOT NULL,
    PRIMARY KEY (f_id),
    KEY idx_tenant_equipment_time (f_tenant_id, f_equipment_id, f_occurred_at)
) ENGINE=InnoDB DEFAULT CHARSET=utf8mb4 COLLATE=utf8mb4_bin;
`

const createInspectionSQL = `
CREATE TABLE IF NOT EXISTS t_inspection (
    f_id BIGINT NOT NULL AUTO_INCREMENT,
    f_tenant_id VARCHAR(64) NOT NULL,
    f_equipment_id VARCHAR(64) NOT NULL,
    f_status VARCHAR(32) NOT NULL,
    f_review_status VARCHAR(16) NOT NULL DEFAULT 'final',
    f_severity VARCHAR(8) NOT NULL DEFAULT '',
    f_inspection_date DATETIME(3) DEFAULT NULL,
    f_created_at DATETIME(3) DEFAULT NULL,
    f_finalized_at DATETIME(3) DEFAULT NULL,
    PRIMARY KEY (f_id),
    KEY idx_tenant_equipment (f_tenant_id, f_equipment_id)
) ENGINE=InnoDB DEFAULT CHARSET=utf8mb4 COLLATE=utf8mb4_bin;
`

const createSlaTargetSQL = `
CREATE TABLE IF NOT EXISTS t_sla_target (
    f_tenant_id VARCHAR(64) NOT NULL,
    f_category VARCHAR(16) NOT NULL,
    f_severity VARCHAR(8) NOT NULL,
    f_target_hours DOUBLE NOT NULL,
    PRIMARY KEY (f_tenant_id, f_category, f_severity)
) ENGINE=InnoDB DEFAULT CHARSET=utf8mb4 COLLATE=utf8mb4_bin;
`
