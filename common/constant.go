package common

const (
	// ErrorDetailBind 请求体绑定失败的错误详情前缀
	ErrorDetailBind = "bind request failed: "

	// TimeLayout 请求与响应中的时间格式
	TimeLayout = "2006-01-02T15:04:05Z07:00"
)
