package constant

// runtime.GOOS values open and the install hints care about.
const (
	Windows = "windows"
	Darwin  = "darwin"
	Linux   = "linux"
	Android = "android"
)
