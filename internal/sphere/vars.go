package sphere

var (
	Debug = false // set to true to force debug logging regardless of config
)
