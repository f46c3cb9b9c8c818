package lispy

// Version and BuildDate identify the build; BuildDate is stamped via
// -ldflags at release time.
var (
	Version   = "0.1.0"
	BuildDate = "unknown"
)
