package cli

import (
	"context"
	"os"
	"os/signal"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "npmcheck <name> [name...]",
	Short: "Check if npm package names are available",
	Long: `npmcheck checks whether package names are already registered in the npm
registry and reports which ones are still free.

Names are lower-cased and validated against the npm naming rules before the
registry is asked. With --similar, every taken name is followed by a list of
available alternatives such as my-<name> or <name>-js.

Every argument is a package name, so names like "validate" or "help" are
checked too. Offline modes are chosen with flags: --validate-only checks the
naming rules without lower-casing, --suggest-only lists the alternatives that
--similar would try.`,
	Example: `  npmcheck my-cool-package
  npmcheck react vue angular
  npmcheck my-app -s
  npmcheck my-app --output json
  npmcheck my-tool --oci ghcr.io/acme
  npmcheck MyPackage .hidden --validate-only
  npmcheck react --suggest-only`,
	Args:         requireNames,
	SilenceUsage: true,
	RunE:         runCheck,

	// A completion subcommand would shadow the npm package of the same name.
	CompletionOptions: cobra.CompletionOptions{DisableDefaultCmd: true},
}

func Execute() error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()
	return rootCmd.ExecuteContext(ctx)
}

func init() {
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "log registry requests to stderr")
	rootCmd.PersistentFlags().StringP("output", "o", "text", "output format: text, json or yaml")

	rootCmd.Flags().BoolP("similar", "s", false, "suggest similar available names for taken ones")
	rootCmd.Flags().String("registry", "", "npm registry URL (default https://registry.npmjs.org)")
	rootCmd.Flags().Duration("timeout", 0, "per request timeout (default 10s)")
	rootCmd.Flags().IntP("concurrency", "c", 0, "number of names checked at once (default 1)")
	rootCmd.Flags().String("oci", "", "check repository names under an OCI registry namespace instead, e.g. ghcr.io/acme[:tag]")
	rootCmd.Flags().Bool("plain-http", false, "talk to the OCI registry over plain HTTP")
	rootCmd.Flags().Bool("validate-only", false, "only validate names as given, without contacting the registry")
	rootCmd.Flags().Bool("suggest-only", false, "only list alternative names, without contacting the registry")
	rootCmd.MarkFlagsMutuallyExclusive("validate-only", "suggest-only")
}
