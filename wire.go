//go:build wireinject
// +build wireinject

package main

import (
	"devops.exregcloud.cn/EquipCloud/_git/reliability-analytics/server/adapter/controller"
	"devops.exregcloud.cn/EquipCloud/_git/reliability-analytics/server/adapter/repository"
	"devops.exregcloud.cn/EquipCloud/_git/reliability-analytics/server/core"
	"devops.exregcloud.cn/EquipCloud/_git/reliability-analytics/server/domain/service"
	"github.com/google/wire"
)

func initServer() *core.RouterQuote {
	panic(wire.Build(repository.ProviderSet, service.ProviderSet, controller.ProviderSet))
}
