package config

import (
	"os"
	"strings"
	"time"

	"devops.exregcloud.cn/EquipCloud/_git/reliability-analytics/server/common/log"
	"github.com/fsnotify/fsnotify"
	"github.com/gin-gonic/gin"
	"github.com/spf13/viper"
)

var (
	//配置文件信息
	cfgPath string = "./config/"
	cfgName string = "config"
	cfgType string = "yaml"
	//服务版本路径
	versionPath string = "./VERSION"

	gCfg *GlobalCfg
	vp   *viper.Viper
)

const (
	DBServer = "db-server"

	ReleaseMode string = "release"
	DebugMode   string = "debug"
)

type GlobalCfg struct {
	App        AppCfg     `mapstructure:"app"`
	Log        log.LogCfg `mapstructure:"log"`
	Mysql      MysqlCfg
	Redis      RedisCfg      `mapstructure:"redis"`
	HttpServer HttpServerCfg `mapstructure:"server"`
	Analytics  AnalyticsCfg  `mapstructure:"analytics"`
}

// application config
type AppCfg struct {
	Mode    string `mapstructure:"mode"`    // 启动模式 : release，debug
	Version string `mapstructure:"version"` // 应用版本
}

// http server config
type HttpServerCfg struct {
	RunMode      string        `mapstructure:"runMode"`
	Addr         int           `mapstructure:"httpPort"`
	ReadTimeout  time.Duration `mapstructure:"readTimeout"`
	WriteTimeout time.Duration `mapstructure:"writeTimeout"`
}

// db config
type MysqlCfg struct {
	Host     string `mapstructure:"host"`
	Port     int    `mapstructure:"port"`
	Username string `mapstructure:"username"`
	Password string `mapstructure:"password"`
}

// redis config
type RedisCfg struct {
	Mode       string   `mapstructure:"mode"` // standalone，sentinel
	Addr       string   `mapstructure:"addr"`
	Addrs      []string `mapstructure:"addrs"`
	MasterName string   `mapstructure:"masterName"`
	Password   string   `mapstructure:"password"`
	DB         int      `mapstructure:"db"`
}

// 分析计算相关的业务配置，缺省值在 loadSetting 中兜底
type AnalyticsCfg struct {
	RecurrenceWindowDays int                `mapstructure:"recurrenceWindowDays"` // 复发判定窗口（天）
	MaxEventRows         int                `mapstructure:"maxEventRows"`         // 单次分析的事件行数上限
	TopOffenderLimit     int                `mapstructure:"topOffenderLimit"`     // 高故障设备榜单长度
	SlaCacheTTL          time.Duration      `mapstructure:"slaCacheTTL"`          // SLA 目标缓存有效期
	SlaDefaultHours      map[string]float64 `mapstructure:"slaDefaultHours"`      // 各级别默认 SLA 时长（小时）
}

func Get() *GlobalCfg {
	return gCfg
}

// 初始化配置
func InitPremise() {
	vp = viper.New()
	vp.AddConfigPath(cfgPath)
	vp.SetConfigName(cfgName)
	vp.SetConfigType(cfgType)
	loadSetting(vp)
	vp.WatchConfig()
	vp.OnConfigChange(func(e fsnotify.Event) {
		loadSetting(vp)
	})
}
func loadSetting(vp *viper.Viper) {
	if err := vp.ReadInConfig(); err != nil {
		panic(err.Error())
	}
	if err := vp.Unmarshal(&gCfg); err != nil {
		panic(err.Error())
	}
	gCfg.App.Version, _ = parseVersion(versionPath)
	setAnalyticsDefault()
	setRunMode()
	log.InitLogger(gCfg.Log)
}

func parseVersion(versionPath string) (string, error) {
	b, err := os.ReadFile(versionPath)
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(string(b)), nil
}
func setRunMode() {
	switch gCfg.App.Mode {
	case ReleaseMode:
		gCfg.Log.Development = false
		gCfg.HttpServer.RunMode = gin.ReleaseMode
	default:
		gCfg.Log.Development = true
		gCfg.HttpServer.RunMode = gin.DebugMode
	}
}

func setAnalyticsDefault() {
	if gCfg.Analytics.RecurrenceWindowDays <= 0 {
		gCfg.Analytics.RecurrenceWindowDays = 30
	}
	if gCfg.Analytics.MaxEventRows <= 0 {
		gCfg.Analytics.MaxEventRows = 50000
	}
	if gCfg.Analytics.TopOffenderLimit <= 0 {
		gCfg.Analytics.TopOffenderLimit = 10
	}
	if gCfg.Analytics.SlaCacheTTL <= 0 {
		gCfg.Analytics.SlaCacheTTL = 5 * time.Minute
	}
	if len(gCfg.Analytics.SlaDefaultHours) == 0 {
		gCfg.Analytics.SlaDefaultHours = map[string]float64{
			"P1": 24, "P2": 72, "P3": 168, "P4": 336,
		}
	}
}
