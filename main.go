package main

import (
	"devops.exregcloud.cn/EquipCloud/_git/reliability-analytics/server/config"
	"devops.exregcloud.cn/EquipCloud/_git/reliability-analytics/server/core"
	"devops.exregcloud.cn/EquipCloud/_git/reliability-analytics/server/migrations/0.1.0"
)

func main() {
	// 初始化服务配置
	config.InitPremise()
	__1_0.InitDataBase()
	router := initServer()
	core.InitHttpServer(router.Routes...)
}
