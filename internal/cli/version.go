package cli

var (
	version = "dev"
	commit  = "none"
)

func init() {
	rootCmd.Version = version + " (" + commit + ")"
	rootCmd.SetVersionTemplate("npmcheck {{.Version}}\n")
}
