package styles

// Nerd Font icons (requires a Nerd Font to display correctly)
const (
	IconVersion   = "\uf02b" // tag
	IconGitBranch = "\ue725" // git branch
	IconCalendar  = "\uf073" // calendar
	IconGithub    = "\uf09b" // github
	IconGo        = "\ue627" // go gopher
	IconConfig    = "\ue615" // config
	IconLogs      = "\uf0f6" // file-text
	IconPointer   = "\uf245" // mouse pointer
	IconWarning   = "\uf071" // warning
)
