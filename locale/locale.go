package locale

import (
	"os"

	"github.com/kweaver-ai/kweaver-go-lib/i18n"
)

var localeDir = "./locale"

// Register 注册国际化错误码资源，单测模式下使用相对路径
func Register() {
	if os.Getenv("I18N_MODE_UT") == "true" {
		i18n.RegisterI18n("../locale")
		return
	}
	i18n.RegisterI18n(localeDir)
}
