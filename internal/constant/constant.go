package constant

const (
	ClientIP = "client-ip"
)
